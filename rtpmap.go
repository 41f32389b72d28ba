// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package description

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pion/description/internal/fmtp"
)

// RTPMap describes one payload type of a media entry: the codec it maps to
// and the feedback and format parameters negotiated for it.
//
// An RTPMap is not safe for concurrent use.
type RTPMap struct {
	PayloadType    uint8
	Format         string
	ClockRate      int
	EncodingParams string

	// RTCPFeedback holds a=rtcp-fb values and FormatParams a=fmtp values,
	// both in insertion order.
	RTCPFeedback []string
	FormatParams []string
}

// ParseRTPMap parses the value of an a=rtpmap attribute, of the form
// "<payload type> <format>/<clock rate>[/<encoding parameters>]".
func ParseRTPMap(value string) (*RTPMap, error) {
	ptRaw, codec, found := strings.Cut(value, " ")
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRTPMap, value)
	}

	pt, err := strconv.ParseUint(ptRaw, 10, 8)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRTPMap, value)
	}

	parts := strings.Split(codec, "/")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRTPMap, value)
	}
	clockRate, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRTPMap, value)
	}

	rtpMap := &RTPMap{
		PayloadType: uint8(pt),
		Format:      parts[0],
		ClockRate:   clockRate,
	}
	if len(parts) > 2 {
		rtpMap.EncodingParams = parts[2]
	}

	return rtpMap, nil
}

// AddFeedback appends an RTCP feedback value, e.g. "nack pli".
func (r *RTPMap) AddFeedback(fb string) {
	r.RTCPFeedback = append(r.RTCPFeedback, fb)
}

// RemoveFeedback removes every RTCP feedback value containing s.
func (r *RTPMap) RemoveFeedback(s string) {
	feedback := make([]string, 0, len(r.RTCPFeedback))
	for _, fb := range r.RTCPFeedback {
		if !strings.Contains(fb, s) {
			feedback = append(feedback, fb)
		}
	}
	r.RTCPFeedback = feedback
}

// AddParameter appends a format parameter carried in the entry's a=fmtp line
// for this payload type.
func (r *RTPMap) AddParameter(p string) {
	r.FormatParams = append(r.FormatParams, p)
}

// Parameter returns the value of a format parameter key across the format's
// a=fmtp values, e.g. "42001f" for "profile-level-id".
func (r *RTPMap) Parameter(key string) (string, bool) {
	for _, param := range r.FormatParams {
		if value, ok := fmtp.Parse(param).Get(key); ok {
			return value, ok
		}
	}

	return "", false
}

func (r *RTPMap) clone() *RTPMap {
	clone := *r
	clone.RTCPFeedback = append([]string(nil), r.RTCPFeedback...)
	clone.FormatParams = append([]string(nil), r.FormatParams...)

	return &clone
}
