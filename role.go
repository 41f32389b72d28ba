// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package description

import "strings"

// Role describes the DTLS role a peer signals in the a=setup attribute.
type Role int

const (
	// RoleActPass indicates the peer accepts either role and leaves the
	// choice to the remote. It is the undetermined default.
	RoleActPass Role = iota + 1

	// RolePassive indicates the peer will act as the DTLS server.
	RolePassive

	// RoleActive indicates the peer will act as the DTLS client.
	RoleActive
)

// This is done this way because of a linter.
const (
	roleActPassStr = "actpass"
	rolePassiveStr = "passive"
	roleActiveStr  = "active"
)

// NewRole defines a procedure for creating a new Role from a raw string
// naming an a=setup value. A string naming no known role yields RoleActPass,
// the undetermined default.
func NewRole(raw string) Role {
	switch strings.ToLower(raw) {
	case rolePassiveStr:
		return RolePassive
	case roleActiveStr:
		return RoleActive
	default:
		return RoleActPass
	}
}

func (r Role) String() string {
	switch r {
	case RoleActPass:
		return roleActPassStr
	case RolePassive:
		return rolePassiveStr
	case RoleActive:
		return roleActiveStr
	default:
		return ErrUnknownType.Error()
	}
}
