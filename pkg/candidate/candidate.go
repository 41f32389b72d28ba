// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package candidate carries ICE candidates between a gathering agent and the
// session descriptions that advertise them. The candidate grammar itself is
// never interpreted here, values travel as opaque attribute text.
package candidate

import (
	"fmt"
	"strings"

	"github.com/pion/ice/v4"
)

const prefix = "candidate:"

// Candidate is a single ICE candidate attached to a media section. Value
// holds the attribute value exactly as it appears after "a=" on the wire.
type Candidate struct {
	Value     string
	Mid       string
	Address   string
	Port      uint16
	Preferred bool
}

// New wraps raw candidate attribute text for the given mid. The
// "candidate:" prefix is added when missing so that Value is always in
// wire form.
func New(raw, mid string) Candidate {
	if !strings.HasPrefix(raw, prefix) {
		raw = prefix + raw
	}

	return Candidate{Value: raw, Mid: mid}
}

// FromICE converts a gathered agent candidate. Host candidates are flagged
// preferred so they win the default address selection.
func FromICE(c ice.Candidate, mid string) Candidate {
	return Candidate{
		Value:     fmt.Sprintf("%s%s", prefix, c.Marshal()),
		Mid:       mid,
		Address:   c.Address(),
		Port:      uint16(c.Port()), //nolint:gosec // candidate ports fit in 16 bits
		Preferred: c.Type() == ice.CandidateTypeHost,
	}
}

// Resolved reports whether the transport address is known, which only
// happens for candidates built from a local agent.
func (c Candidate) Resolved() bool {
	return c.Address != "" && c.Port != 0
}

// Marshal returns the attribute value in wire form.
func (c Candidate) Marshal() string {
	return c.Value
}
