// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package description

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pion/logging"
)

// applicationDescription is the m= line remainder advertised for data channel
// sections.
const applicationDescription = "UDP/DTLS/SCTP webrtc-datachannel"

// Application is the data channel section of a Description, negotiating the
// SCTP association the channels run over.
//
// An Application is not safe for concurrent use.
type Application struct {
	entry

	sctpPort       *uint16
	maxMessageSize *uint64
}

// NewApplication creates a data channel section. Mid is conventionally
// "data".
func NewApplication(mid string) *Application {
	return &Application{entry: entry{
		typ:         mediaTypeApplication,
		description: applicationDescription,
		mid:         mid,
		log:         defaultLogger(),
	}}
}

// newApplicationFromMline builds a data channel section from an m= line
// remainder. Legacy DTLS/SCTP lines advertise the SCTP port as the only m=
// format token.
func newApplicationFromMline(mline, mid string, log logging.LeveledLogger) (*Application, error) {
	fields := strings.Fields(mline)
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedSection, mline)
	}
	if _, err := strconv.ParseUint(fields[1], 10, 16); err != nil {
		return nil, fmt.Errorf("%w: invalid port in %q", ErrMalformedSection, mline)
	}

	app := &Application{entry: entry{
		typ:         fields[0],
		description: strings.Join(fields[2:], " "),
		mid:         mid,
		log:         log,
	}}

	if len(fields) == 4 {
		if port, err := strconv.ParseUint(fields[3], 10, 16); err == nil {
			sctpPort := uint16(port)
			app.sctpPort = &sctpPort
		}
	}

	return app, nil
}

// Description returns the m= line remainder in its modern form, regardless of
// the form the section was parsed from.
func (a *Application) Description() string {
	return applicationDescription
}

// SetSCTPPort sets the SCTP port the data channels run over.
func (a *Application) SetSCTPPort(port uint16) {
	a.sctpPort = &port
}

// HintSCTPPort sets the SCTP port only when no port is set yet.
func (a *Application) HintSCTPPort(port uint16) {
	if a.sctpPort == nil {
		a.sctpPort = &port
	}
}

// SCTPPort returns the negotiated SCTP port, if any.
func (a *Application) SCTPPort() (uint16, bool) {
	if a.sctpPort == nil {
		return 0, false
	}

	return *a.sctpPort, true
}

// SetMaxMessageSize sets the largest data channel message size in bytes the
// peer accepts.
func (a *Application) SetMaxMessageSize(size uint64) {
	a.maxMessageSize = &size
}

// MaxMessageSize returns the advertised maximum message size, if any.
func (a *Application) MaxMessageSize() (uint64, bool) {
	if a.maxMessageSize == nil {
		return 0, false
	}

	return *a.maxMessageSize, true
}

// Reciprocate builds the answering side of the section: same mid and
// transport parameters, for the answerer to adjust before finalizing.
func (a *Application) Reciprocate() *Application {
	reciprocated := &Application{entry: a.entry.clone()}
	if a.sctpPort != nil {
		port := *a.sctpPort
		reciprocated.sctpPort = &port
	}
	if a.maxMessageSize != nil {
		size := *a.maxMessageSize
		reciprocated.maxMessageSize = &size
	}

	return reciprocated
}

func (a *Application) parseLine(line string) {
	attr, ok := strings.CutPrefix(line, "a=")
	if !ok {
		return
	}

	key, value := splitAttribute(attr)
	switch key {
	case "sctp-port":
		port, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			a.log.Warnf("invalid sctp-port value: %s", value)
			a.attributes = append(a.attributes, attr)

			return
		}
		sctpPort := uint16(port)
		a.sctpPort = &sctpPort
	case "max-message-size":
		size, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			a.log.Warnf("invalid max-message-size value: %s", value)
			a.attributes = append(a.attributes, attr)

			return
		}
		a.maxMessageSize = &size
	default:
		a.parseAttribute(attr)
	}
}

func (a *Application) generateSDP(out *strings.Builder, eol, addr string, port uint16) {
	a.generateHeader(out, eol, addr, port, a.Description())
	a.generateAttributes(out, eol)

	if a.sctpPort != nil {
		out.WriteString("a=sctp-port:" + strconv.FormatUint(uint64(*a.sctpPort), 10) + eol)
	}
	if a.maxMessageSize != nil {
		out.WriteString("a=max-message-size:" + strconv.FormatUint(*a.maxMessageSize, 10) + eol)
	}
}
