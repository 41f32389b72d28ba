// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package description

// videoFeedback returns the RTCP feedback negotiated for video formats by
// default.
func videoFeedback() []string {
	return []string{"goog-remb", "ccm fir", "nack", "nack pli"}
}

// AddAudioCodec maps an audio format with the default 48 kHz stereo clock.
// Use AddRTPMap for formats needing other parameters.
func (m *Media) AddAudioCodec(payloadType uint8, name string) {
	m.AddRTPMap(&RTPMap{
		PayloadType:    payloadType,
		Format:         name,
		ClockRate:      48000,
		EncodingParams: "2",
	})
}

// AddOpusCodec maps Opus with its default minptime and FEC parameters.
func (m *Media) AddOpusCodec(payloadType uint8) {
	m.AddRTPMap(&RTPMap{
		PayloadType:    payloadType,
		Format:         "opus",
		ClockRate:      48000,
		EncodingParams: "2",
		FormatParams:   []string{"minptime=10;useinbandfec=1"},
	})
}

// AddVideoCodec maps a video format with the default 90 kHz clock and
// feedback set.
func (m *Media) AddVideoCodec(payloadType uint8, name string) {
	m.AddRTPMap(&RTPMap{
		PayloadType:  payloadType,
		Format:       name,
		ClockRate:    90000,
		RTCPFeedback: videoFeedback(),
	})
}

// AddH264Codec maps H264 with its constrained baseline profile parameters.
func (m *Media) AddH264Codec(payloadType uint8) {
	m.AddRTPMap(&RTPMap{
		PayloadType:  payloadType,
		Format:       "H264",
		ClockRate:    90000,
		RTCPFeedback: videoFeedback(),
		FormatParams: []string{"level-asymmetry-allowed=1;packetization-mode=1;profile-level-id=42001f"},
	})
}

// AddVP8Codec maps VP8 with the default feedback set.
func (m *Media) AddVP8Codec(payloadType uint8) {
	m.AddRTPMap(&RTPMap{
		PayloadType:  payloadType,
		Format:       "VP8",
		ClockRate:    90000,
		RTCPFeedback: videoFeedback(),
	})
}

// AddVP9Codec maps VP9 with its default profile parameter.
func (m *Media) AddVP9Codec(payloadType uint8) {
	m.AddRTPMap(&RTPMap{
		PayloadType:  payloadType,
		Format:       "VP9",
		ClockRate:    90000,
		RTCPFeedback: videoFeedback(),
		FormatParams: []string{"profile-id=0"},
	})
}
