// Package numfmt renders the integer fields of a date pattern: zero-padded
// numbers, English ordinal suffixes and timezone offsets.
//
// All functions are total over integer input.  Callers that hold a float
// value must truncate it first; non-integral input is outside the contract.
package numfmt

import (
	"strconv"
	"strings"
)

// Sign returns -1 when n is negative and +1 otherwise.  Zero is positive.
func Sign(n int64) int64 {
	if n < 0 {
		return -1
	}
	return 1
}

// abs returns |n| as a uint64.  math.MinInt64 has no positive int64
// counterpart, so the magnitude is computed in the unsigned domain.
func abs(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}

// Pad renders |n| in decimal, left-padded with '0' to at least width digits,
// and prefixes '-' when n is negative.  Longer values are never truncated.
//
//	Pad(7, 2)    → "07"
//	Pad(-5, 2)   → "-05"
//	Pad(2024, 2) → "2024"
func Pad(n int64, width int) string {
	digits := strconv.FormatUint(abs(n), 10)
	if len(digits) < width {
		digits = strings.Repeat("0", width-len(digits)) + digits
	}
	if Sign(n) < 0 {
		return "-" + digits
	}
	return digits
}

// Suffix returns the English ordinal suffix for n ("st", "nd", "rd" or "th").
// Only the last two decimal digits of |n| matter: any value whose tens digit
// is 1 takes "th".
func Suffix(n int64) string {
	a := abs(n)
	if (a/10)%10 != 1 {
		switch a % 10 {
		case 1:
			return "st"
		case 2:
			return "nd"
		case 3:
			return "rd"
		}
	}
	return "th"
}

// Ordinal renders n unpadded with its ordinal suffix, e.g. 21 → "21st".
func Ordinal(n int64) string {
	return Pad(n, 0) + Suffix(n)
}
