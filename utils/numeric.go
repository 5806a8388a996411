package utils

import (
	"strconv"
	"strings"
)

// Lenient numeric parsing for values coming out of the language model,
// which returns numbers as bare numerics ("1234"), comma-formatted
// strings ("1,234") or garbage ("a lot"). Commas are stripped before
// parsing. On failure the value is reported absent (ok=false), never
// silently 0 or NaN, so callers can distinguish "unparseable" from a
// real zero.

func LenientInt(s string) (int, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, false
	}
	// The model sometimes writes integers as "5000.0".
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), true
	}
	return 0, false
}

func LenientFloat(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
