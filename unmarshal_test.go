// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package description

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_Application(t *testing.T) {
	raw := "v=0\r\n" +
		"o=- 1 1 IN IP4 0.0.0.0\r\n" +
		"s=-\r\n" +
		"t=0 0\r\n" +
		"m=application 9 DTLS/SCTP 5000\r\n" +
		"c=IN IP4 0.0.0.0\r\n" +
		"a=mid:data\r\n" +
		"a=sctp-port:5000\r\n"

	d, err := Parse(raw, WithTypeString("offer"))
	assert.NoError(t, err)
	assert.Equal(t, TypeOffer, d.Type())
	assert.Equal(t, 1, d.EntryCount())

	app := d.Application()
	assert.NotNil(t, app)
	assert.Equal(t, "data", app.Mid())
	port, ok := app.SCTPPort()
	assert.True(t, ok)
	assert.Equal(t, uint16(5000), port)
}

const offerSDP = "v=0\n" +
	"o=- 4596489990601351948 2 IN IP4 127.0.0.1\n" +
	"s=-\n" +
	"t=0 0\n" +
	"a=group:BUNDLE audio video data\n" +
	"a=msid-semantic: WMS *\n" +
	"a=setup:actpass\n" +
	"a=ice-ufrag:EsAw\n" +
	"a=ice-pwd:P2uYro0UCOQ4zxjKXaWCBui1\n" +
	"a=fingerprint:sha-256 E6:52:43:CC:32:39:71:A4:31:1C:1A:F0:9C:F1:08:5C:05:33:34:3E:C9:D7:10:B1:18:E2:1C:17:E0:F3:C7:1C\n" +
	"m=audio 9 UDP/TLS/RTP/SAVPF 111\n" +
	"c=IN IP4 0.0.0.0\n" +
	"b=AS:256\n" +
	"a=mid:audio\n" +
	"a=sendrecv\n" +
	"a=rtpmap:111 opus/48000/2\n" +
	"a=fmtp:111 minptime=10;useinbandfec=1\n" +
	"a=ssrc:3735928559 cname:stream\n" +
	"m=video 9 UDP/TLS/RTP/SAVPF 96 97\n" +
	"c=IN IP4 0.0.0.0\n" +
	"a=mid:video\n" +
	"a=recvonly\n" +
	"a=rtpmap:96 VP8/90000\n" +
	"a=rtcp-fb:96 nack\n" +
	"a=rtcp-fb:96 nack pli\n" +
	"a=rtpmap:97 rtx/90000\n" +
	"a=fmtp:97 apt=96\n" +
	"m=application 9 UDP/DTLS/SCTP webrtc-datachannel\n" +
	"c=IN IP4 0.0.0.0\n" +
	"a=mid:data\n" +
	"a=sctp-port:5000\n" +
	"a=max-message-size:262144\n" +
	"a=candidate:1 1 UDP 2122317823 192.168.1.1 54321 typ host\n" +
	"a=end-of-candidates\n"

func TestParse_Offer(t *testing.T) { //nolint:cyclop
	d, err := Parse(offerSDP, WithType(TypeOffer))
	assert.NoError(t, err)

	assert.Equal(t, RoleActPass, d.Role())
	assert.Equal(t, "4596489990601351948", d.sessionID)

	ufrag, ok := d.ICEUfrag()
	assert.True(t, ok)
	assert.Equal(t, "EsAw", ufrag)
	pwd, ok := d.ICEPwd()
	assert.True(t, ok)
	assert.Equal(t, "P2uYro0UCOQ4zxjKXaWCBui1", pwd)
	fingerprint, ok := d.Fingerprint()
	assert.True(t, ok)
	assert.True(t, strings.HasPrefix(fingerprint, "E6:52:43:CC"))

	assert.Equal(t, 3, d.EntryCount())
	assert.Equal(t, "audio", d.BundleMid())

	e, err := d.Entry(0)
	assert.NoError(t, err)
	audio, ok := e.(*Media)
	assert.True(t, ok)
	assert.Equal(t, "audio", audio.Type())
	assert.Equal(t, DirectionSendRecv, audio.Direction())
	assert.Equal(t, 256, audio.Bitrate())
	opus, err := audio.Format(111)
	assert.NoError(t, err)
	assert.Equal(t, "opus", opus.Format)
	assert.Equal(t, 48000, opus.ClockRate)
	assert.Equal(t, "2", opus.EncodingParams)
	assert.Equal(t, []string{"minptime=10;useinbandfec=1"}, opus.FormatParams)
	assert.True(t, audio.HasSSRC(3735928559))
	cname, ok := audio.CNameForSSRC(3735928559)
	assert.True(t, ok)
	assert.Equal(t, "stream", cname)

	e, err = d.Entry(1)
	assert.NoError(t, err)
	video, ok := e.(*Media)
	assert.True(t, ok)
	assert.Equal(t, DirectionRecvOnly, video.Direction())
	assert.Equal(t, []uint8{96, 97}, video.PayloadTypes())
	vp8, err := video.Format(96)
	assert.NoError(t, err)
	assert.Equal(t, []string{"nack", "nack pli"}, vp8.RTCPFeedback)
	rtx, err := video.Format(97)
	assert.NoError(t, err)
	assert.Equal(t, []string{"apt=96"}, rtx.FormatParams)

	app := d.Application()
	assert.NotNil(t, app)
	assert.Equal(t, "data", app.Mid())
	size, ok := app.MaxMessageSize()
	assert.True(t, ok)
	assert.Equal(t, uint64(262144), size)

	assert.True(t, d.Ended())
	candidates := d.ExtractCandidates()
	assert.Len(t, candidates, 1)
	assert.Equal(t, "candidate:1 1 UDP 2122317823 192.168.1.1 54321 typ host", candidates[0].Value)
	assert.Equal(t, "audio", candidates[0].Mid)
}

func TestParse_BothLineEndings(t *testing.T) {
	crlf := strings.ReplaceAll(offerSDP, "\n", "\r\n")

	lf, err := Parse(offerSDP)
	assert.NoError(t, err)
	parsed, err := Parse(crlf)
	assert.NoError(t, err)

	assert.Equal(t, lf.EntryCount(), parsed.EntryCount())
	for i := 0; i < lf.EntryCount(); i++ {
		expected, err := lf.Entry(i)
		assert.NoError(t, err)
		actual, err := parsed.Entry(i)
		assert.NoError(t, err)
		assert.Equal(t, expected.Mid(), actual.Mid())
		assert.Equal(t, expected.Direction(), actual.Direction())
		assert.Equal(t, expected.Description(), actual.Description())
	}
}

func TestParse_UnknownMediaKeyword(t *testing.T) {
	raw := "v=0\n" +
		"o=- 1 1 IN IP4 0.0.0.0\n" +
		"s=-\n" +
		"t=0 0\n" +
		"m=message 9 UDP/DTLS/SCTP *\n" +
		"a=mid:msg\n"

	d, err := Parse(raw)
	assert.NoError(t, err)
	assert.Equal(t, 1, d.EntryCount())

	e, err := d.Entry(0)
	assert.NoError(t, err)
	media, ok := e.(*Media)
	assert.True(t, ok)
	assert.Equal(t, "message", media.Type())
	assert.Equal(t, "UDP/DTLS/SCTP *", media.Description())
	assert.Equal(t, "msg", media.Mid())
}

func TestParse_MalformedSection(t *testing.T) {
	testCases := []string{
		"m=audio\n",
		"m=audio 9\n",
		"m=video nine UDP/TLS/RTP/SAVPF 96\n",
		"m=application nine DTLS/SCTP 5000\n",
	}

	for i, section := range testCases {
		_, err := Parse("v=0\no=- 1 1 IN IP4 0.0.0.0\ns=-\nt=0 0\n" + section)
		assert.ErrorIs(t, err, ErrMalformedSection, "testCase: %d %q", i, section)
	}
}

func TestParse_DuplicateMid(t *testing.T) {
	raw := "v=0\n" +
		"m=audio 9 UDP/TLS/RTP/SAVPF 111\n" +
		"a=mid:0\n" +
		"m=video 9 UDP/TLS/RTP/SAVPF 96\n" +
		"a=mid:0\n"

	_, err := Parse(raw)
	assert.ErrorIs(t, err, ErrDuplicateMid)
}

func TestParse_UnknownFingerprintAlgorithm(t *testing.T) {
	raw := "v=0\n" +
		"a=fingerprint:sha-1 AA:BB:CC\n" +
		"m=audio 9 UDP/TLS/RTP/SAVPF 111\n" +
		"a=mid:audio\n"

	d, err := Parse(raw)
	assert.NoError(t, err)
	_, ok := d.Fingerprint()
	assert.False(t, ok)
}

func TestParse_ReplacesSecondApplication(t *testing.T) {
	raw := "v=0\n" +
		"m=application 9 UDP/DTLS/SCTP webrtc-datachannel\n" +
		"a=mid:data1\n" +
		"a=sctp-port:5000\n" +
		"m=application 9 UDP/DTLS/SCTP webrtc-datachannel\n" +
		"a=mid:data2\n" +
		"a=sctp-port:6000\n"

	d, err := Parse(raw)
	assert.NoError(t, err)
	assert.Equal(t, 1, d.EntryCount())

	app := d.Application()
	assert.NotNil(t, app)
	assert.Equal(t, "data2", app.Mid())
	port, ok := app.SCTPPort()
	assert.True(t, ok)
	assert.Equal(t, uint16(6000), port)
}

func TestParse_SessionAttributesInsideSection(t *testing.T) {
	raw := "v=0\n" +
		"m=audio 9 UDP/TLS/RTP/SAVPF 111\n" +
		"a=mid:audio\n" +
		"a=setup:active\n" +
		"a=ice-ufrag:EsAw\n" +
		"a=ice-pwd:P2uYro0UCOQ4zxjKXaWCBui1\n"

	d, err := Parse(raw)
	assert.NoError(t, err)
	assert.Equal(t, RoleActive, d.Role())
	ufrag, ok := d.ICEUfrag()
	assert.True(t, ok)
	assert.Equal(t, "EsAw", ufrag)

	// Hoisted attributes never end up as generic section attributes.
	e, err := d.Entry(0)
	assert.NoError(t, err)
	assert.Empty(t, e.Attributes())
}

func TestParse_UnknownAttributePreserved(t *testing.T) {
	raw := "v=0\n" +
		"m=audio 9 UDP/TLS/RTP/SAVPF 111\n" +
		"a=mid:audio\n" +
		"a=rtcp-mux\n" +
		"a=extmap:1 urn:ietf:params:rtp-hdrext:ssrc-audio-level\n"

	d, err := Parse(raw)
	assert.NoError(t, err)
	e, err := d.Entry(0)
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"rtcp-mux",
		"extmap:1 urn:ietf:params:rtp-hdrext:ssrc-audio-level",
	}, e.Attributes())
}

func TestParse_InvalidRTPMapPreserved(t *testing.T) {
	raw := "v=0\n" +
		"m=audio 9 UDP/TLS/RTP/SAVPF 111\n" +
		"a=mid:audio\n" +
		"a=rtpmap:111 opus\n"

	d, err := Parse(raw)
	assert.NoError(t, err)

	e, err := d.Entry(0)
	assert.NoError(t, err)
	media, ok := e.(*Media)
	assert.True(t, ok)

	// A mapping without a clock rate stays a verbatim attribute and the
	// format list keeps its placeholder.
	assert.Equal(t, []string{"rtpmap:111 opus"}, media.Attributes())
	rtpMap, err := media.Format(111)
	assert.NoError(t, err)
	assert.Equal(t, "", rtpMap.Format)

	generated := d.GenerateSDP("\n")
	assert.Contains(t, generated, "a=rtpmap:111 opus\n")
	assert.NotContains(t, generated, "opus/0")
}

func TestParse_DefaultMid(t *testing.T) {
	raw := "v=0\n" +
		"m=audio 9 UDP/TLS/RTP/SAVPF 111\n" +
		"m=video 9 UDP/TLS/RTP/SAVPF 96\n"

	d, err := Parse(raw)
	assert.NoError(t, err)

	e, err := d.Entry(0)
	assert.NoError(t, err)
	assert.Equal(t, "0", e.Mid())
	e, err = d.Entry(1)
	assert.NoError(t, err)
	assert.Equal(t, "1", e.Mid())
}

func TestParseMedia(t *testing.T) {
	section := "m=video 9 UDP/TLS/RTP/SAVPF 96\r\n" +
		"a=mid:video\r\n" +
		"a=sendonly\r\n" +
		"a=rtpmap:96 VP8/90000\r\n"

	media, err := ParseMedia(section)
	assert.NoError(t, err)
	assert.Equal(t, "video", media.Mid())
	assert.Equal(t, DirectionSendOnly, media.Direction())
	assert.True(t, media.HasPayloadType(96))

	_, err = ParseMedia("a=mid:video\n")
	assert.ErrorIs(t, err, ErrMalformedSection)
}
