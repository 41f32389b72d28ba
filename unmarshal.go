// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package description

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pion/description/pkg/candidate"
)

// Parse builds a description from SDP text received from a remote peer. Line
// endings may be "\n" or "\r\n". The negotiation type never appears in the
// text itself: set it with WithType or WithTypeString, or later through
// HintType.
func Parse(raw string, options ...func(*Description)) (*Description, error) {
	d := New(options...)

	var current Entry
	index := 0
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		if mline, ok := strings.CutPrefix(line, "m="); ok {
			e, err := d.createEntry(mline, strconv.Itoa(index))
			if err != nil {
				return nil, err
			}
			current = e
			index++

			continue
		}

		if origin, ok := strings.CutPrefix(line, "o="); ok {
			d.parseOrigin(origin)

			continue
		}

		if attr, ok := strings.CutPrefix(line, "a="); ok {
			if d.parseSessionAttribute(attr) {
				continue
			}
		}

		if current != nil {
			current.parseLine(line)
		}
	}

	if err := d.validateMids(); err != nil {
		return nil, err
	}

	return d, nil
}

// ParseMedia builds a media section from an SDP fragment beginning with its
// m= line, e.g. a single section lifted out of a full document. The mid
// defaults to "0" until an a=mid line overrides it.
func ParseMedia(section string) (*Media, error) {
	var media *Media
	log := defaultLogger()
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		if mline, ok := strings.CutPrefix(line, "m="); ok {
			if media != nil {
				break
			}
			var err error
			media, err = newMediaFromMline(mline, "0", log)
			if err != nil {
				return nil, err
			}

			continue
		}

		if media != nil {
			media.parseLine(line)
		}
	}
	if media == nil {
		return nil, fmt.Errorf("%w: missing m= line", ErrMalformedSection)
	}

	return media, nil
}

// createEntry builds the entry variant for an m= line remainder and appends
// it. A second application section replaces the first.
func (d *Description) createEntry(mline, mid string) (Entry, error) {
	keyword, _, _ := strings.Cut(mline, " ")
	if keyword == mediaTypeApplication {
		app, err := newApplicationFromMline(mline, mid, d.log)
		if err != nil {
			return nil, err
		}
		if d.application != nil {
			d.log.Warnf("replacing application entry %s", d.application.Mid())
			d.removeApplication()
		}
		d.application = app
		d.entries = append(d.entries, app)

		return app, nil
	}

	media, err := newMediaFromMline(mline, mid, d.log)
	if err != nil {
		return nil, err
	}
	d.entries = append(d.entries, media)

	return media, nil
}

// removeApplication drops the current application entry from the sequence.
func (d *Description) removeApplication() {
	entries := make([]Entry, 0, len(d.entries))
	for _, e := range d.entries {
		if e == d.application {
			continue
		}
		entries = append(entries, e)
	}
	d.entries = entries
	d.application = nil
}

func (d *Description) parseOrigin(value string) {
	fields := strings.Fields(value)
	if len(fields) < 2 {
		d.log.Warnf("invalid origin line: %s", value)

		return
	}
	d.username = fields[0]
	d.sessionID = fields[1]
}

// parseSessionAttribute handles the attribute keys hoisted to the session
// level wherever they appear, reporting whether the attribute was consumed.
func (d *Description) parseSessionAttribute(attr string) bool {
	key, value := splitAttribute(attr)
	switch key {
	case "setup":
		d.role = NewRole(value)
	case "fingerprint":
		algorithm, fingerprint, found := strings.Cut(value, " ")
		if !found || !strings.EqualFold(algorithm, "sha-256") {
			d.log.Warnf("unknown fingerprint format: %s", value)

			return true
		}
		d.fingerprint = fingerprint
	case "ice-ufrag":
		d.iceUfrag = value
	case "ice-pwd":
		d.icePwd = value
	case "candidate":
		d.AddCandidate(candidate.New(value, d.BundleMid()))
	case "end-of-candidates":
		d.ended = true
	default:
		return false
	}

	return true
}

// validateMids rejects parsed documents with colliding media IDs.
func (d *Description) validateMids() error {
	seen := make(map[string]bool, len(d.entries))
	for _, e := range d.entries {
		if seen[e.Mid()] {
			return fmt.Errorf("%w: %s", ErrDuplicateMid, e.Mid())
		}
		seen[e.Mid()] = true
	}

	return nil
}
