package numfmt

// ── timezone offset rendering ─────────────────────────────────────────────────

// Millisecond spans used to decompose an offset.
const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
)

// Offset renders a timezone offset given in milliseconds.
//
// offsetMS follows the "UTC minus local" convention of a host
// getTimezoneOffset call: negative values are east of UTC, so -3600000 renders
// as "+01:00".  extended selects the "+HH:MM" form over the basic "+HHMM";
// zulu renders an exactly-zero offset as "Z".
//
// The seconds component is emitted only when non-zero, followed by ".mmm"
// when the milliseconds are non-zero as well.  ISO 8601 has no seconds field
// in offsets, so output for such offsets (historical local mean time) is not
// ISO 8601 compliant.
//
// The hour component is taken modulo 60, not 24.
func Offset(offsetMS int64, extended, zulu bool) string {
	if offsetMS == 0 && zulu {
		return "Z"
	}

	symbol := "+"
	if offsetMS > 0 {
		symbol = "-"
	}
	a := int64(abs(offsetMS))

	ms := a % msPerSecond
	ss := a / msPerSecond % 60
	mm := a / msPerMinute % 60
	hh := a / msPerHour % 60

	sep := ""
	if extended {
		sep = ":"
	}

	out := symbol + Pad(hh, 2) + sep + Pad(mm, 2)
	if ss != 0 {
		out += sep + Pad(ss, 2)
		if ms != 0 {
			out += "." + Pad(ms, 3)
		}
	}
	return out
}
