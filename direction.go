// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package description

import "strings"

// Direction describes the media flow an entry advertises.
type Direction int

const (
	// DirectionSendOnly indicates the entry only sends media.
	DirectionSendOnly Direction = iota + 1

	// DirectionRecvOnly indicates the entry only receives media.
	DirectionRecvOnly

	// DirectionSendRecv indicates the entry sends and receives media.
	DirectionSendRecv

	// DirectionInactive indicates the entry neither sends nor receives media.
	DirectionInactive
)

// This is done this way because of a linter.
const (
	directionSendOnlyStr = "sendonly"
	directionRecvOnlyStr = "recvonly"
	directionSendRecvStr = "sendrecv"
	directionInactiveStr = "inactive"
)

// NewDirection defines a procedure for creating a new Direction from a raw
// string naming an SDP direction attribute. The match is case insensitive; a
// string naming no known direction yields Direction(Unknown), which is never
// serialized.
func NewDirection(raw string) Direction {
	switch strings.ToLower(raw) {
	case directionSendOnlyStr:
		return DirectionSendOnly
	case directionRecvOnlyStr:
		return DirectionRecvOnly
	case directionSendRecvStr:
		return DirectionSendRecv
	case directionInactiveStr:
		return DirectionInactive
	default:
		return Direction(Unknown)
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionSendOnly:
		return directionSendOnlyStr
	case DirectionRecvOnly:
		return directionRecvOnlyStr
	case DirectionSendRecv:
		return directionSendRecvStr
	case DirectionInactive:
		return directionInactiveStr
	default:
		return ErrUnknownType.Error()
	}
}

// Reverse returns the direction the answering side advertises for an entry
// with direction d: SendOnly and RecvOnly invert, SendRecv and Inactive are
// kept.
func (d Direction) Reverse() Direction {
	switch d {
	case DirectionSendOnly:
		return DirectionRecvOnly
	case DirectionRecvOnly:
		return DirectionSendOnly
	default:
		return d
	}
}
