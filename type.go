// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package description

import "strings"

// Type describes which stage of the offer/answer exchange a session
// description belongs to.
type Type int

const (
	// TypeOffer indicates that a description MUST be treated as an SDP offer.
	TypeOffer Type = iota + 1

	// TypePranswer indicates that a description MUST be treated as an SDP answer, but not a final answer.
	TypePranswer

	// TypeAnswer indicates that a description MUST be treated as an SDP final answer, and the offer-answer
	// exchange MUST be considered complete.
	TypeAnswer

	// TypeRollback indicates that a description MUST be treated as canceling the current SDP
	// negotiation and moving the SDP offer and answer back to what it was in the previous stable state.
	TypeRollback
)

// This is done this way because of a linter.
const (
	typeOfferStr    = "offer"
	typePranswerStr = "pranswer"
	typeAnswerStr   = "answer"
	typeRollbackStr = "rollback"
)

// NewType defines a procedure for creating a new Type from a raw string
// naming the description type. The match is case insensitive; a string naming
// no known type yields Type(Unknown).
func NewType(raw string) Type {
	switch strings.ToLower(raw) {
	case typeOfferStr:
		return TypeOffer
	case typePranswerStr:
		return TypePranswer
	case typeAnswerStr:
		return TypeAnswer
	case typeRollbackStr:
		return TypeRollback
	default:
		return Type(Unknown)
	}
}

func (t Type) String() string {
	switch t {
	case TypeOffer:
		return typeOfferStr
	case TypePranswer:
		return typePranswerStr
	case TypeAnswer:
		return typeAnswerStr
	case TypeRollback:
		return typeRollbackStr
	default:
		return ErrUnknownType.Error()
	}
}
