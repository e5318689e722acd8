package Billing

import (
	"strconv"
	"strings"
)

// ParseNumber coerces a raw string field to a float. Blank or non-numeric
// input yields 0; a numeric prefix followed by junk parses like the legacy
// sheet did ("12abc" -> 12). Every numeric field in the system goes through
// this one helper so the coercion stays consistent.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	end := 0
	seenDot := false
	for i, r := range s {
		if r == '+' || r == '-' {
			if i != 0 {
				break
			}
		} else if r == '.' {
			if seenDot {
				break
			}
			seenDot = true
		} else if r < '0' || r > '9' {
			break
		}
		end = i + 1
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatNumber renders a float the way the legacy forms did: shortest
// representation, no trailing zeros ("4", "4.25", "-12.5").
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatFixed renders a float with exactly the given number of decimals.
func FormatFixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// roundTo rounds to the given number of decimals by way of the fixed-point
// string form, so stored numbers and displayed numbers can never disagree.
func roundTo(v float64, decimals int) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	return r
}
