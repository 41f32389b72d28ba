// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package fmtp implements parsing of SDP format parameter values.
package fmtp

import (
	"strconv"
	"strings"
)

// Parameters holds the key value pairs of one format parameter string,
// e.g. "minptime=10;useinbandfec=1". Keys compare case insensitively.
type Parameters map[string]string

// Parse splits a format parameter string into its key value pairs. A bare
// key without a value is kept with an empty value.
func Parse(line string) Parameters {
	params := Parameters{}
	for _, p := range strings.Split(line, ";") {
		key, value, _ := strings.Cut(strings.TrimSpace(p), "=")
		key = strings.ToLower(key)
		if key == "" {
			continue
		}
		params[key] = value
	}

	return params
}

// Get returns the value for a key, if present.
func (p Parameters) Get(key string) (string, bool) {
	value, ok := p[strings.ToLower(key)]

	return value, ok
}

// Apt returns the payload type an apt parameter references, as the format
// parameter strings of rtx formats carry it.
func (p Parameters) Apt() (uint8, bool) {
	value, ok := p.Get("apt")
	if !ok {
		return 0, false
	}
	apt, err := strconv.ParseUint(value, 10, 8)
	if err != nil {
		return 0, false
	}

	return uint8(apt), true
}
