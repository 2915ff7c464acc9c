// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToBool(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{name: "lowercase true", raw: "true", want: true},
		{name: "uppercase true", raw: "TRUE", want: true},
		{name: "mixed case yes", raw: "Yes", want: true},
		{name: "one", raw: "1", want: true},
		{name: "t", raw: "t", want: true},
		{name: "y", raw: "y", want: true},
		{name: "on", raw: "on", want: true},
		{name: "false", raw: "false", want: false},
		{name: "zero", raw: "0", want: false},
		{name: "off", raw: "off", want: false},
		{name: "empty string", raw: "", want: false},
		{name: "garbage", raw: "maybe", want: false},
		{name: "numeric non-one", raw: "2", want: false},
		{name: "padded true", raw: " true", want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, ToBool(test.raw))
		})
	}
}

func TestBoolValid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{name: "canonical true token", raw: "TRUE", want: true},
		{name: "canonical false token", raw: "no", want: true},
		{name: "empty string is a false token", raw: "", want: true},
		{name: "garbage coerces to false but is no false token", raw: "maybe", want: false},
		{name: "number coerces to false but is no false token", raw: "2", want: false},
		{name: "padded token", raw: " yes", want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, BoolValid(test.raw, ToBool(test.raw)))
		})
	}
}

func TestToLong(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int64
	}{
		{name: "plain digits", raw: "42", want: 42},
		{name: "negative", raw: "-3", want: -3},
		{name: "explicit plus", raw: "+7", want: 7},
		{name: "leading whitespace", raw: "  19", want: 19},
		{name: "digit prefix of a float", raw: "4.2", want: 4},
		{name: "digit prefix with trailing text", raw: "10 apples", want: 10},
		{name: "no digits", raw: "apples", want: 0},
		{name: "empty string", raw: "", want: 0},
		{name: "sign only", raw: "-", want: 0},
		{name: "overflow saturates high", raw: "99999999999999999999", want: 1<<63 - 1},
		{name: "overflow saturates low", raw: "-99999999999999999999", want: -1 << 63},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, ToLong(test.raw))
		})
	}
}

func TestLongValid(t *testing.T) {
	assert.True(t, LongValid("42"))
	assert.True(t, LongValid("0"))

	// Anything beyond a bare unsigned digit run is best-effort only.
	assert.False(t, LongValid("-3"))
	assert.False(t, LongValid("+7"))
	assert.False(t, LongValid("4.2"))
	assert.False(t, LongValid(" 42"))
	assert.False(t, LongValid(""))
	assert.False(t, LongValid("10 apples"))
}

func TestToDouble(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "plain float", raw: "4.2", want: 4.2},
		{name: "negative float", raw: "-0.5", want: -0.5},
		{name: "integer form", raw: "12", want: 12},
		{name: "exponent form", raw: "1e3", want: 1000},
		{name: "leading whitespace", raw: "  2.5", want: 2.5},
		{name: "numeric prefix with trailing text", raw: "3.14stuff", want: 3.14},
		{name: "no numeric prefix", raw: "stuff", want: 0},
		{name: "empty string", raw: "", want: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.InDelta(t, test.want, ToDouble(test.raw), 1e-9)
		})
	}
}

func TestDoubleValid(t *testing.T) {
	assert.True(t, DoubleValid("4.2"))
	assert.True(t, DoubleValid("-0.5"))
	assert.True(t, DoubleValid("12"))
	assert.True(t, DoubleValid("1e3"))

	assert.False(t, DoubleValid("3.14stuff"))
	assert.False(t, DoubleValid(" 4.2"))
	assert.False(t, DoubleValid(""))
	assert.False(t, DoubleValid("stuff"))
}
