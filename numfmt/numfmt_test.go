package numfmt_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/TsubasaBE/go-datefmt/numfmt"
)

// ── Sign ──────────────────────────────────────────────────────────────────────

func TestSign(t *testing.T) {
	tests := []struct {
		n    int64
		want int64
	}{
		{-5, -1},
		{-1, -1},
		{0, 1},
		{1, 1},
		{math.MinInt64, -1},
	}
	for _, tc := range tests {
		if got := numfmt.Sign(tc.n); got != tc.want {
			t.Errorf("Sign(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

// -0 is not negative.
func TestSignNegativeZero(t *testing.T) {
	if got := numfmt.Sign(int64(math.Copysign(0, -1))); got != 1 {
		t.Errorf("Sign(-0) = %d, want 1", got)
	}
}

// ── Pad ───────────────────────────────────────────────────────────────────────

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		n     int64
		width int
		want  string
	}{
		{"single digit to two", 7, 2, "07"},
		{"already wide enough", 42, 2, "42"},
		{"longer is not truncated", 2024, 2, "2024"},
		{"zero", 0, 3, "000"},
		{"zero width", 5, 0, "5"},
		{"negative padded after sign", -5, 2, "-05"},
		{"negative year", -44, 4, "-0044"},
		{"min int64", math.MinInt64, 1, "-9223372036854775808"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := numfmt.Pad(tc.n, tc.width); got != tc.want {
				t.Errorf("Pad(%d, %d) = %q, want %q", tc.n, tc.width, got, tc.want)
			}
		})
	}
}

// TestPadProperties checks that Pad output is at least width digits long
// and parses back to the input.
func TestPadProperties(t *testing.T) {
	for n := int64(-1200); n <= 1200; n += 7 {
		for width := 0; width <= 6; width++ {
			s := numfmt.Pad(n, width)
			digits := len(s)
			if n < 0 {
				digits--
			}
			if digits < width {
				t.Fatalf("Pad(%d, %d) = %q: fewer than %d digits", n, width, s, width)
			}
			back, err := strconv.ParseInt(s, 10, 64)
			if err != nil || back != n {
				t.Fatalf("Pad(%d, %d) = %q does not parse back (got %d, %v)", n, width, s, back, err)
			}
		}
	}
}

// ── Suffix ────────────────────────────────────────────────────────────────────

func TestSuffix(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "th"},
		{1, "st"},
		{2, "nd"},
		{3, "rd"},
		{4, "th"},
		{11, "th"},
		{12, "th"},
		{13, "th"},
		{21, "st"},
		{22, "nd"},
		{23, "rd"},
		{101, "st"},
		{111, "th"},
		{112, "th"},
		{1003, "rd"},
		{-1, "st"},
		{-11, "th"},
		{-22, "nd"},
		{-4983, "rd"},
		{-4913, "th"},
	}
	for _, tc := range tests {
		if got := numfmt.Suffix(tc.n); got != tc.want {
			t.Errorf("Suffix(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestSuffixTeens(t *testing.T) {
	for n := int64(-5000); n <= 5000; n++ {
		got := numfmt.Suffix(n)
		switch got {
		case "st", "nd", "rd", "th":
		default:
			t.Fatalf("Suffix(%d) = %q, not an ordinal suffix", n, got)
		}
		// The last two digits of the magnitude decide: -4983 is "83rd".
		m := n % 100
		if m < 0 {
			m = -m
		}
		if m >= 10 && m < 20 && got != "th" {
			t.Fatalf("Suffix(%d) = %q, want th for last two digits %02d", n, got, m)
		}
	}
}

func TestOrdinal(t *testing.T) {
	if got := numfmt.Ordinal(21); got != "21st" {
		t.Errorf("Ordinal(21) = %q, want %q", got, "21st")
	}
	if got := numfmt.Ordinal(112); got != "112th" {
		t.Errorf("Ordinal(112) = %q, want %q", got, "112th")
	}
}

// ── Offset ────────────────────────────────────────────────────────────────────

func TestOffset(t *testing.T) {
	const (
		sec  = 1000
		min  = 60 * sec
		hour = 60 * min
	)
	tests := []struct {
		name     string
		offset   int64
		extended bool
		zulu     bool
		want     string
	}{
		{"UTC+1 extended", -hour, true, true, "+01:00"},
		{"UTC+1 basic", -hour, false, true, "+0100"},
		{"zero zulu", 0, true, true, "Z"},
		{"zero zulu basic", 0, false, true, "Z"},
		{"zero no zulu extended", 0, true, false, "+00:00"},
		{"zero no zulu basic", 0, false, false, "+0000"},
		{"UTC-5 extended", 5 * hour, true, false, "-05:00"},
		{"UTC+5:30", -(5*hour + 30*min), true, true, "+05:30"},
		{"UTC-9:30 basic", 9*hour + 30*min, false, false, "-0930"},
		{"seconds component", -(10*hour + 4*min + 52*sec), true, true, "+10:04:52"},
		{"seconds component basic", -(10*hour + 4*min + 52*sec), false, true, "+100452"},
		{"seconds with milliseconds", -(hour + 5*sec + 250), true, true, "+01:00:05.250"},
		{"milliseconds without seconds are dropped", -(hour + 250), true, true, "+01:00"},
		{"hours wrap at 60", 61 * hour, true, false, "-01:00"},
		{"hours beyond 24 kept", -30 * hour, true, false, "+30:00"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := numfmt.Offset(tc.offset, tc.extended, tc.zulu)
			if got != tc.want {
				t.Errorf("Offset(%d, %v, %v) = %q, want %q", tc.offset, tc.extended, tc.zulu, got, tc.want)
			}
		})
	}
}
