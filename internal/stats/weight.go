package stats

import (
	"strconv"
	"strings"
)

// ParseWeight extracts a number from free text weights, such as "135 lbs", "62.5kg" or "200".
// Everything but digits and decimal points is dropped, and the longest numeric prefix of
// the rest is parsed. Returns false when no number can be read.
func ParseWeight(raw string) (float64, bool) {
	if strings.TrimSpace(raw) == "" {
		return 0, false
	}

	stripped := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, raw)

	numStr := numericPrefix(stripped)
	if numStr == "" {
		return 0, false
	}

	weight, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return 0, false
	}
	return weight, true
}

// numericPrefix returns the leading "123.45" part of s, or "" if there are no digits in it,
// so "1.2.3" gives "1.2" and "." gives "".
func numericPrefix(s string) string {
	end := 0
	digits := 0
	dotSeen := false
	for end < len(s) {
		c := s[end]
		if c == '.' {
			if dotSeen {
				break
			}
			dotSeen = true
		} else {
			digits++
		}
		end++
	}
	if digits == 0 {
		return ""
	}
	return strings.TrimSuffix(s[:end], ".")
}
