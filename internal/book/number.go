package book

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// parseNumber converts a path segment the way a loosely typed client would
// coerce a string to a number: blank is zero, decimals and exponents are
// accepted, as are 0x/0o/0b integers and signed Infinity. ok is false for
// anything else.
func parseNumber(s string) (n float64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			u, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(u), true
		}
	}

	if !decimalPattern.MatchString(s) {
		return 0, false
	}
	// the pattern admits only well-formed input, so the sole possible error
	// is ErrRange, and f then already holds the saturated ±Inf or 0
	f, _ := strconv.ParseFloat(s, 64)
	return f, true
}

// asIndex reports whether n names a collection position.
func asIndex(n float64) (int, bool) {
	if n != math.Trunc(n) || n < 0 || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}
