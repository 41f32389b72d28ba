// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package description

import (
	"strconv"
	"strings"

	"github.com/pion/logging"
	"github.com/pion/randutil"
)

func defaultLogger() logging.LeveledLogger {
	return logging.NewDefaultLoggerFactory().NewLogger("sdp")
}

// newSessionID returns a random session identifier with the high bit cleared,
// as JSEP recommends for o= lines.
func newSessionID(log logging.LeveledLogger) string {
	id, err := randutil.CryptoUint64()
	if err != nil {
		log.Warnf("failed to generate session id: %v", err)

		return "0"
	}

	return strconv.FormatUint(id&^(uint64(1)<<63), 10)
}

// splitAttribute splits an a= line body into its key and value. Attributes
// without a value yield the whole body as key.
func splitAttribute(attr string) (string, string) {
	key, value, _ := strings.Cut(attr, ":")

	return key, value
}

// splitPayloadValue splits attribute values of the form
// "<payload type> <rest>", as used by a=rtcp-fb and a=fmtp.
func splitPayloadValue(value string) (uint8, string, bool) {
	ptRaw, rest, found := strings.Cut(value, " ")
	if !found {
		return 0, "", false
	}
	pt, err := strconv.ParseUint(ptRaw, 10, 8)
	if err != nil {
		return 0, "", false
	}

	return uint8(pt), rest, true
}

