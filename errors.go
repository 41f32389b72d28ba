// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package description

import "errors"

var (
	// ErrUnknownType indicates an unknown or unspecified enum value.
	ErrUnknownType = errors.New("unknown")

	// ErrMalformedSection indicates an m= line missing its required media,
	// port or protocol tokens.
	ErrMalformedSection = errors.New("malformed media section")

	// ErrDuplicateMid indicates an entry whose mid is already used by another
	// entry of the description.
	ErrDuplicateMid = errors.New("duplicate mid")

	// ErrDuplicateApplication indicates an application entry was added to a
	// description that already has one.
	ErrDuplicateApplication = errors.New("duplicate application entry")

	// ErrFormatNotFound indicates a format lookup by payload type or codec
	// name matched nothing.
	ErrFormatNotFound = errors.New("format not found")

	// ErrEntryNotFound indicates an entry index outside the entry sequence.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrInvalidRTPMap indicates an a=rtpmap value that could not be parsed.
	ErrInvalidRTPMap = errors.New("invalid rtpmap")
)
