// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package description

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pion/description/internal/fmtp"
	"github.com/pion/logging"
)

// defaultMediaProfile is the transport protocol advertised for media sections
// built programmatically.
const defaultMediaProfile = "UDP/TLS/RTP/SAVPF"

// Media is an audio or video section of a Description. It owns the payload
// type to format mapping of the section and the synchronization sources the
// peer announces on it.
//
// Create Media sections with NewAudio, NewVideo, NewMedia or ParseMedia.
// A Media is not safe for concurrent use.
type Media struct {
	entry

	rtpMaps map[uint8]*RTPMap
	ssrcs   []ssrcRecord
	bitrate int
}

// ssrcRecord is one announced synchronization source with its optional cname.
type ssrcRecord struct {
	ssrc uint32
	name string
}

// NewAudio creates an empty audio section. Mid is conventionally "audio".
func NewAudio(mid string, dir Direction) *Media {
	return newMedia(mediaTypeAudio, mid, dir)
}

// NewVideo creates an empty video section. Mid is conventionally "video".
func NewVideo(mid string, dir Direction) *Media {
	return newMedia(mediaTypeVideo, mid, dir)
}

func newMedia(typ, mid string, dir Direction) *Media {
	return &Media{
		entry: entry{
			typ:         typ,
			description: defaultMediaProfile,
			mid:         mid,
			direction:   dir,
			log:         defaultLogger(),
		},
		rtpMaps: map[uint8]*RTPMap{},
		bitrate: -1,
	}
}

// NewMedia creates a media section from an m= line remainder of the form
// "<keyword> <port> <proto> [<fmt> ...]". Numeric format tokens become
// payload type placeholders, completed by AddRTPMap or a parsed a=rtpmap
// line.
func NewMedia(mline, mid string, dir Direction) (*Media, error) {
	media, err := newMediaFromMline(mline, mid, defaultLogger())
	if err != nil {
		return nil, err
	}
	media.direction = dir

	return media, nil
}

func newMediaFromMline(mline, mid string, log logging.LeveledLogger) (*Media, error) {
	fields := strings.Fields(mline)
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedSection, mline)
	}
	if _, err := strconv.ParseUint(fields[1], 10, 16); err != nil {
		return nil, fmt.Errorf("%w: invalid port in %q", ErrMalformedSection, mline)
	}

	media := &Media{
		entry: entry{
			typ:         fields[0],
			description: strings.Join(fields[2:], " "),
			mid:         mid,
			log:         log,
		},
		rtpMaps: map[uint8]*RTPMap{},
		bitrate: -1,
	}
	for _, field := range fields[3:] {
		pt, err := strconv.ParseUint(field, 10, 8)
		if err != nil {
			continue
		}
		media.rtpMaps[uint8(pt)] = &RTPMap{PayloadType: uint8(pt)}
	}

	return media, nil
}

// Description returns the m= line remainder: the transport protocol followed
// by the payload types in ascending order, or the stored remainder while the
// section carries no formats.
func (m *Media) Description() string {
	if len(m.rtpMaps) == 0 {
		return m.description
	}

	proto, _, _ := strings.Cut(m.description, " ")
	var description strings.Builder
	description.WriteString(proto)
	for _, pt := range m.PayloadTypes() {
		description.WriteString(" " + strconv.Itoa(int(pt)))
	}

	return description.String()
}

// AddRTPMap inserts a format, overwriting any format already mapped to its
// payload type.
func (m *Media) AddRTPMap(rtpMap *RTPMap) {
	m.rtpMaps[rtpMap.PayloadType] = rtpMap
}

// Format returns the format mapped to the payload type.
func (m *Media) Format(payloadType uint8) (*RTPMap, error) {
	if rtpMap, ok := m.rtpMaps[payloadType]; ok {
		return rtpMap, nil
	}

	return nil, fmt.Errorf("%w: payload type %d", ErrFormatNotFound, payloadType)
}

// FormatByName returns the first format whose codec name matches, comparing
// case insensitively. Formats are ordered by payload type.
func (m *Media) FormatByName(name string) (*RTPMap, error) {
	for _, pt := range m.PayloadTypes() {
		if rtpMap := m.rtpMaps[pt]; strings.EqualFold(rtpMap.Format, name) {
			return rtpMap, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrFormatNotFound, name)
}

// HasPayloadType reports whether a format is mapped to the payload type.
func (m *Media) HasPayloadType(payloadType uint8) bool {
	_, ok := m.rtpMaps[payloadType]

	return ok
}

// PayloadTypes returns the mapped payload types in ascending order.
func (m *Media) PayloadTypes() []uint8 {
	pts := make([]uint8, 0, len(m.rtpMaps))
	for pt := range m.rtpMaps {
		pts = append(pts, pt)
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i] < pts[j] })

	return pts
}

// RemoveFormat removes every format whose codec name matches, together with
// the rtx formats referencing a removed payload type through their apt
// parameter.
func (m *Media) RemoveFormat(name string) {
	removed := map[uint8]bool{}
	for pt, rtpMap := range m.rtpMaps {
		if strings.EqualFold(rtpMap.Format, name) {
			removed[pt] = true
			delete(m.rtpMaps, pt)
		}
	}
	if len(removed) == 0 {
		return
	}

	for pt, rtpMap := range m.rtpMaps {
		for _, param := range rtpMap.FormatParams {
			if apt, ok := fmtp.Parse(param).Apt(); ok && removed[apt] {
				delete(m.rtpMaps, pt)

				break
			}
		}
	}
}

// AddSSRC announces a synchronization source on the section, with an optional
// cname carried on the a=ssrc line ("" for none).
func (m *Media) AddSSRC(ssrc uint32, name string) {
	m.ssrcs = append(m.ssrcs, ssrcRecord{ssrc: ssrc, name: name})
}

// ReplaceSSRC renumbers and renames a source in place, keeping its position.
// A source that is not announced is left alone.
func (m *Media) ReplaceSSRC(old, ssrc uint32, name string) {
	for i := range m.ssrcs {
		if m.ssrcs[i].ssrc == old {
			m.ssrcs[i] = ssrcRecord{ssrc: ssrc, name: name}

			return
		}
	}
}

// HasSSRC reports whether the source is announced on the section.
func (m *Media) HasSSRC(ssrc uint32) bool {
	for i := range m.ssrcs {
		if m.ssrcs[i].ssrc == ssrc {
			return true
		}
	}

	return false
}

// CNameForSSRC returns the cname announced for a source, if any.
func (m *Media) CNameForSSRC(ssrc uint32) (string, bool) {
	for i := range m.ssrcs {
		if m.ssrcs[i].ssrc == ssrc {
			return m.ssrcs[i].name, m.ssrcs[i].name != ""
		}
	}

	return "", false
}

// SSRCs returns a snapshot of the announced sources in order.
func (m *Media) SSRCs() []uint32 {
	ssrcs := make([]uint32, len(m.ssrcs))
	for i, record := range m.ssrcs {
		ssrcs[i] = record.ssrc
	}

	return ssrcs
}

// SetBitrate sets the advertised bandwidth in kilobits per second, carried in
// a b=AS line. A negative value clears it.
func (m *Media) SetBitrate(bitrate int) {
	if bitrate < 0 {
		bitrate = -1
	}
	m.bitrate = bitrate
}

// Bitrate returns the advertised bandwidth in kilobits per second, or -1 when
// not specified.
func (m *Media) Bitrate() int {
	return m.bitrate
}

// Reciprocate builds the answering side of the section: same mid and formats,
// direction reversed. Sources are not carried over, the answerer announces
// its own.
func (m *Media) Reciprocate() *Media {
	reciprocated := &Media{
		entry:   m.entry.clone(),
		rtpMaps: make(map[uint8]*RTPMap, len(m.rtpMaps)),
		bitrate: m.bitrate,
	}
	reciprocated.direction = m.direction.Reverse()
	for pt, rtpMap := range m.rtpMaps {
		reciprocated.rtpMaps[pt] = rtpMap.clone()
	}

	return reciprocated
}

// formatOrCreate returns the format for the payload type, creating a
// placeholder when a=rtcp-fb or a=fmtp lines arrive before the a=rtpmap line.
func (m *Media) formatOrCreate(payloadType uint8) *RTPMap {
	if rtpMap, ok := m.rtpMaps[payloadType]; ok {
		return rtpMap
	}
	rtpMap := &RTPMap{PayloadType: payloadType}
	m.rtpMaps[payloadType] = rtpMap

	return rtpMap
}

// mergeRTPMap completes a placeholder in place so feedback and format
// parameters collected earlier survive.
func (m *Media) mergeRTPMap(rtpMap *RTPMap) {
	if existing, ok := m.rtpMaps[rtpMap.PayloadType]; ok {
		existing.Format = rtpMap.Format
		existing.ClockRate = rtpMap.ClockRate
		existing.EncodingParams = rtpMap.EncodingParams

		return
	}
	m.rtpMaps[rtpMap.PayloadType] = rtpMap
}

// mergeSSRC records a source parsed from an a=ssrc line, keeping the first
// cname seen for it.
func (m *Media) mergeSSRC(ssrc uint32, name string) {
	for i := range m.ssrcs {
		if m.ssrcs[i].ssrc == ssrc {
			if m.ssrcs[i].name == "" {
				m.ssrcs[i].name = name
			}

			return
		}
	}
	m.ssrcs = append(m.ssrcs, ssrcRecord{ssrc: ssrc, name: name})
}

func (m *Media) parseLine(line string) {
	if value, ok := strings.CutPrefix(line, "b=AS:"); ok {
		bitrate, err := strconv.Atoi(value)
		if err != nil {
			m.log.Warnf("invalid bandwidth value: %s", value)

			return
		}
		m.SetBitrate(bitrate)

		return
	}

	attr, ok := strings.CutPrefix(line, "a=")
	if !ok {
		return
	}

	key, value := splitAttribute(attr)
	switch key {
	case "rtpmap":
		rtpMap, err := ParseRTPMap(value)
		if err != nil {
			m.log.Warnf("invalid rtpmap: %s", value)
			m.attributes = append(m.attributes, attr)

			return
		}
		m.mergeRTPMap(rtpMap)
	case "rtcp-fb":
		pt, fb, ok := splitPayloadValue(value)
		if !ok {
			m.log.Warnf("invalid rtcp-fb: %s", value)
			m.attributes = append(m.attributes, attr)

			return
		}
		m.formatOrCreate(pt).AddFeedback(fb)
	case "fmtp":
		pt, params, ok := splitPayloadValue(value)
		if !ok {
			m.log.Warnf("invalid fmtp: %s", value)
			m.attributes = append(m.attributes, attr)

			return
		}
		m.formatOrCreate(pt).AddParameter(params)
	case "ssrc":
		ssrcRaw, rest, _ := strings.Cut(value, " ")
		ssrc, err := strconv.ParseUint(ssrcRaw, 10, 32)
		if err != nil {
			m.log.Warnf("invalid ssrc: %s", value)
			m.attributes = append(m.attributes, attr)

			return
		}
		name := ""
		if cname, ok := strings.CutPrefix(rest, "cname:"); ok {
			name = cname
		}
		m.mergeSSRC(uint32(ssrc), name)
	default:
		m.parseAttribute(attr)
	}
}

func (m *Media) generateSDP(out *strings.Builder, eol, addr string, port uint16) {
	m.generateHeader(out, eol, addr, port, m.Description())
	if m.bitrate >= 0 {
		out.WriteString("b=AS:" + strconv.Itoa(m.bitrate) + eol)
	}
	m.generateAttributes(out, eol)

	for _, pt := range m.PayloadTypes() {
		rtpMap := m.rtpMaps[pt]
		ptStr := strconv.Itoa(int(pt))
		if rtpMap.Format != "" {
			out.WriteString("a=rtpmap:" + ptStr + " " + rtpMap.Format + "/" + strconv.Itoa(rtpMap.ClockRate))
			if rtpMap.EncodingParams != "" {
				out.WriteString("/" + rtpMap.EncodingParams)
			}
			out.WriteString(eol)
		}
		for _, fb := range rtpMap.RTCPFeedback {
			out.WriteString("a=rtcp-fb:" + ptStr + " " + fb + eol)
		}
		for _, param := range rtpMap.FormatParams {
			out.WriteString("a=fmtp:" + ptStr + " " + param + eol)
		}
	}

	for _, record := range m.ssrcs {
		out.WriteString("a=ssrc:" + strconv.FormatUint(uint64(record.ssrc), 10))
		if record.name != "" {
			out.WriteString(" cname:" + record.name)
		}
		out.WriteString(eol)
	}
}
