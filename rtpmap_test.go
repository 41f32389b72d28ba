// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package description

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRTPMap(t *testing.T) {
	testCases := []struct {
		value    string
		expected *RTPMap
	}{
		{"111 opus/48000/2", &RTPMap{PayloadType: 111, Format: "opus", ClockRate: 48000, EncodingParams: "2"}},
		{"96 VP8/90000", &RTPMap{PayloadType: 96, Format: "VP8", ClockRate: 90000}},
		{"0 PCMU/8000", &RTPMap{PayloadType: 0, Format: "PCMU", ClockRate: 8000}},
	}

	for i, testCase := range testCases {
		rtpMap, err := ParseRTPMap(testCase.value)
		assert.NoError(t, err, "testCase: %d %v", i, testCase)
		assert.Equal(t, testCase.expected, rtpMap, "testCase: %d %v", i, testCase)
	}
}

func TestParseRTPMap_Invalid(t *testing.T) {
	testCases := []string{
		"",
		"111",
		"abc opus/48000",
		"256 opus/48000",
		"111 opus",
		"111 opus/fast",
	}

	for i, value := range testCases {
		_, err := ParseRTPMap(value)
		assert.ErrorIs(t, err, ErrInvalidRTPMap, "testCase: %d %q", i, value)
	}
}

func TestRTPMap_Feedback(t *testing.T) {
	rtpMap := &RTPMap{PayloadType: 96, Format: "VP8", ClockRate: 90000}
	rtpMap.AddFeedback("goog-remb")
	rtpMap.AddFeedback("nack")
	rtpMap.AddFeedback("nack pli")
	assert.Equal(t, []string{"goog-remb", "nack", "nack pli"}, rtpMap.RTCPFeedback)

	// Removal matches by substring, dropping plain nack and nack pli alike.
	rtpMap.RemoveFeedback("nack")
	assert.Equal(t, []string{"goog-remb"}, rtpMap.RTCPFeedback)
}

func TestRTPMap_AddParameter(t *testing.T) {
	rtpMap := &RTPMap{PayloadType: 97, Format: "rtx", ClockRate: 90000}
	rtpMap.AddParameter("apt=96")
	assert.Equal(t, []string{"apt=96"}, rtpMap.FormatParams)
}

func TestRTPMap_Parameter(t *testing.T) {
	rtpMap := &RTPMap{PayloadType: 102, Format: "H264", ClockRate: 90000}
	rtpMap.AddParameter("level-asymmetry-allowed=1;packetization-mode=1;profile-level-id=42001f")

	profile, ok := rtpMap.Parameter("profile-level-id")
	assert.True(t, ok)
	assert.Equal(t, "42001f", profile)

	_, ok = rtpMap.Parameter("apt")
	assert.False(t, ok)
}
