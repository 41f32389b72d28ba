// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package fmtp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	for _, ca := range []struct {
		name     string
		line     string
		key      string
		expected string
	}{
		{
			"one param",
			"key-name=value",
			"key-name",
			"value",
		},
		{
			"one param with white spaces",
			"\tkey-name=value ",
			"key-name",
			"value",
		},
		{
			"two params",
			"key-name=value;key2=value2",
			"key2",
			"value2",
		},
		{
			"two params with white spaces",
			"key-name=value;  \n\tkey2=value2 ",
			"key2",
			"value2",
		},
		{
			"upper case key",
			"KEY-NAME=value",
			"key-name",
			"value",
		},
		{
			"bare key",
			"stereo",
			"stereo",
			"",
		},
	} {
		t.Run(ca.name, func(t *testing.T) {
			value, ok := Parse(ca.line).Get(ca.key)
			assert.True(t, ok)
			assert.Equal(t, ca.expected, value)
		})
	}
}

func TestParameters_Get(t *testing.T) {
	params := Parse("minptime=10;useinbandfec=1")

	value, ok := params.Get("MinPTime")
	assert.True(t, ok)
	assert.Equal(t, "10", value)

	_, ok = params.Get("maxptime")
	assert.False(t, ok)
}

func TestParameters_Apt(t *testing.T) {
	for _, ca := range []struct {
		name        string
		line        string
		expectedApt uint8
		expectedOK  bool
	}{
		{"rtx", "apt=96", 96, true},
		{"rtx with extra params", "apt=102;rtx-time=3000", 102, true},
		{"no apt", "minptime=10;useinbandfec=1", 0, false},
		{"invalid apt", "apt=chrome", 0, false},
		{"out of range apt", "apt=300", 0, false},
	} {
		t.Run(ca.name, func(t *testing.T) {
			apt, ok := Parse(ca.line).Apt()
			assert.Equal(t, ca.expectedOK, ok)
			assert.Equal(t, ca.expectedApt, apt)
		})
	}
}
