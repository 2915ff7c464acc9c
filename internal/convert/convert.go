// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package convert implements typed coercion of raw configuration values.
//
// Every function is a pure function of its input. Coercions come in pairs:
// a best-effort conversion that always produces a value, and a validity check
// that reports whether the textual form strictly matches the target type.
// Callers surface the validity flag through models.ValueInfo instead of
// failing the lookup.
package convert

import (
	"regexp"
	"strconv"
	"strings"
)

// Canonical token sets for boolean values. The empty string counts as false.
var (
	boolTrueRe  = regexp.MustCompile(`^(1|true|t|yes|y|on)$`)
	boolFalseRe = regexp.MustCompile(`^(0|false|f|no|n|off|)$`)

	longRe = regexp.MustCompile(`^[0-9]+$`)
)

// ToBool coerces raw to a boolean: true iff the lower-cased text is one of
// the canonical true tokens. Everything else, including garbage, is false.
func ToBool(raw string) bool {
	return boolTrueRe.MatchString(strings.ToLower(raw))
}

// BoolValid reports whether raw is a trustworthy textual form of the
// already-coerced boolean value.
//
// The check is deliberately asymmetric: the token set to match against is
// selected by the coerced boolean rather than by validating raw against both
// sets independently. Clients on other platforms resolve validity the same
// way, so keep it as is.
func BoolValid(raw string, coerced bool) bool {
	lower := strings.ToLower(raw)
	if coerced {
		return boolTrueRe.MatchString(lower)
	}
	return boolFalseRe.MatchString(lower)
}

// ToLong coerces raw to an int64 the way C's strtol does: optional leading
// whitespace, optional sign, then the longest run of decimal digits. Returns
// 0 when no digits are found.
func ToLong(raw string) int64 {
	s := strings.TrimLeft(raw, " \t\n\r")

	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		// Digit run overflows int64; saturate like strtol.
		if neg {
			return -1 << 63
		}
		return 1<<63 - 1
	}
	if neg {
		return -n
	}
	return n
}

// LongValid reports whether raw is an exact unsigned decimal integer:
// digits only, no sign, no whitespace.
func LongValid(raw string) bool {
	return longRe.MatchString(raw)
}

// ToDouble coerces raw to a float64 the way C's strtod does: the longest
// prefix that parses as a locale-independent decimal number. Returns 0 when
// no prefix parses.
func ToDouble(raw string) float64 {
	s := strings.TrimLeft(raw, " \t\n\r")

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}

	for end := len(s) - 1; end > 0; end-- {
		if f, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return f
		}
	}
	return 0
}

// DoubleValid reports whether the whole of raw parses as a decimal number
// under locale-independent formatting rules.
func DoubleValid(raw string) bool {
	_, err := strconv.ParseFloat(raw, 64)
	return err == nil
}
