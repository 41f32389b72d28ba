// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package description

import (
	"strings"
)

// GenerateSDP renders the full description, session lines first and entries
// in insertion order. The caller chooses the line ending, "\r\n" for wire
// use or "\n" for logs and tests.
func (d *Description) GenerateSDP(eol string) string {
	return d.generate(eol, d.entries)
}

// GenerateApplicationSDP renders a description containing only the
// application entry. Without one the output carries the session lines alone.
func (d *Description) GenerateApplicationSDP(eol string) string {
	if d.application == nil {
		return d.generate(eol, nil)
	}

	return d.generate(eol, []Entry{d.application})
}

func (d *Description) String() string {
	return d.GenerateSDP("\r\n")
}

func (d *Description) generate(eol string, entries []Entry) string {
	addr, port := "0.0.0.0", uint16(9)
	if def := d.defaultCandidate(); def != nil && def.Resolved() {
		addr, port = def.Address, def.Port
	}

	var out strings.Builder
	out.WriteString("v=0" + eol)
	out.WriteString("o=" + d.username + " " + d.sessionID + " 0 IN IP4 127.0.0.1" + eol)
	out.WriteString("s=-" + eol)
	out.WriteString("t=0 0" + eol)

	if len(entries) > 0 {
		out.WriteString("a=group:BUNDLE")
		for _, e := range entries {
			out.WriteString(" " + e.Mid())
		}
		out.WriteString(eol)
	}

	out.WriteString("a=msid-semantic: WMS *" + eol)
	out.WriteString("a=setup:" + d.role.String() + eol)

	if d.iceUfrag != "" {
		out.WriteString("a=ice-ufrag:" + d.iceUfrag + eol)
	}
	if d.icePwd != "" {
		out.WriteString("a=ice-pwd:" + d.icePwd + eol)
	}
	if d.fingerprint != "" {
		out.WriteString("a=fingerprint:sha-256 " + d.fingerprint + eol)
	}

	for _, e := range entries {
		e.generateSDP(&out, eol, addr, port)
	}

	for _, c := range d.candidates {
		out.WriteString("a=" + c.Marshal() + eol)
	}
	if d.ended {
		out.WriteString("a=end-of-candidates" + eol)
	}

	return out.String()
}
