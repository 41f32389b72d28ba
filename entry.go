// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package description

import (
	"strconv"
	"strings"

	"github.com/pion/logging"
)

const (
	mediaTypeAudio       = "audio"
	mediaTypeVideo       = "video"
	mediaTypeApplication = "application"
)

// Entry is one m= section of a Description: a *Media carrying audio or video
// formats, or an *Application carrying data channel parameters. Entries are
// owned by their Description and dispatched with a type switch.
type Entry interface {
	// Type returns the media keyword of the m= line, e.g. "audio" or
	// "application".
	Type() string

	// Description returns the m= line remainder after the port: the transport
	// protocol followed by the format list.
	Description() string

	// Mid returns the media identifier naming the section.
	Mid() string

	Direction() Direction
	SetDirection(Direction)

	// Attributes returns a copy of the attribute lines stored verbatim on the
	// section, without their "a=" prefix.
	Attributes() []string

	parseLine(line string)
	generateSDP(out *strings.Builder, eol, addr string, port uint16)
}

// entry carries the fields every section variant shares.
type entry struct {
	typ         string
	description string
	mid         string
	direction   Direction
	attributes  []string
	log         logging.LeveledLogger
}

func (e *entry) Type() string {
	return e.typ
}

func (e *entry) Description() string {
	return e.description
}

func (e *entry) Mid() string {
	return e.mid
}

func (e *entry) Direction() Direction {
	return e.direction
}

// SetDirection sets the media flow the section advertises.
func (e *entry) SetDirection(dir Direction) {
	e.direction = dir
}

func (e *entry) Attributes() []string {
	return append([]string(nil), e.attributes...)
}

func (e *entry) clone() entry {
	clone := *e
	clone.attributes = append([]string(nil), e.attributes...)

	return clone
}

// parseAttribute handles the attribute forms every section shares, storing
// anything unrecognized verbatim.
func (e *entry) parseAttribute(attr string) {
	key, value := splitAttribute(attr)
	switch key {
	case "mid":
		e.mid = value
	case directionSendOnlyStr, directionRecvOnlyStr, directionSendRecvStr, directionInactiveStr:
		e.direction = NewDirection(key)
	default:
		e.attributes = append(e.attributes, attr)
	}
}

// generateHeader writes the m= and c= lines shared by every section variant.
func (e *entry) generateHeader(out *strings.Builder, eol, addr string, port uint16, description string) {
	out.WriteString("m=" + e.typ + " " + strconv.FormatUint(uint64(port), 10) + " " + description + eol)

	family := "IP4"
	if strings.Contains(addr, ":") {
		family = "IP6"
	}
	out.WriteString("c=IN " + family + " " + addr + eol)
}

// generateAttributes writes the mid, direction and verbatim attribute lines.
func (e *entry) generateAttributes(out *strings.Builder, eol string) {
	out.WriteString("a=mid:" + e.mid + eol)
	if e.direction != Direction(Unknown) {
		out.WriteString("a=" + e.direction.String() + eol)
	}
	for _, attr := range e.attributes {
		out.WriteString("a=" + attr + eol)
	}
}
