package datefmt

import (
	"github.com/TsubasaBE/go-datefmt/calendar"
	"github.com/TsubasaBE/go-datefmt/names"
	"github.com/TsubasaBE/go-datefmt/numfmt"
	"github.com/TsubasaBE/go-datefmt/pattern"
)

// Context carries the per-call settings a token may need besides the
// calendar fields.
type Context struct {
	Offset int64 // milliseconds, UTC minus local
	Locale string
	Names  names.Provider
}

// Component renders a single token against f.  Literal tokens and
// unrecognised symbols render as their own text.
func Component(f calendar.Fields, tok pattern.Token, ctx Context) string {
	if tok.Kind != pattern.Symbol {
		return tok.Text
	}

	// num renders a numeric field, padded to width, with the ordinal suffix
	// when the token asks for one.
	num := func(v, width int) string {
		switch {
		case !tok.Suffix:
			return numfmt.Pad(int64(v), width)
		case width == 0:
			return numfmt.Ordinal(int64(v))
		}
		return numfmt.Pad(int64(v), width) + numfmt.Suffix(int64(v))
	}

	switch tok.Text {
	// ── year ────────────────────────────────────────────────────────────────
	case "YY":
		return num(f.Year%100, 2)
	case "YYYY":
		return num(f.Year, 4)
	case "yy", "WW":
		return num(f.ISOWeekYear()%100, 2)
	case "yyyy", "WWWW":
		return num(f.ISOWeekYear(), 4)

	// ── century / era ───────────────────────────────────────────────────────
	case "C":
		return num(calendar.Century(f.Year), 0)
	case "CC":
		return num(calendar.Century(f.Year), 2)
	case "c":
		return num(calendar.OrdinalCentury(f.Year), 0)
	case "cc":
		return num(calendar.OrdinalCentury(f.Year), 2)
	case "E":
		if f.Year > 0 {
			return "CE"
		}
		return "BCE"
	case "EE":
		if f.Year > 0 {
			return "Common Era"
		}
		return "Before Common Era"

	// ── month ───────────────────────────────────────────────────────────────
	case "M":
		return num(f.Month+1, 0)
	case "MM":
		return num(f.Month+1, 2)
	case "MMM":
		return ctx.names().Month(f.Instant, ctx.Locale, names.Abbreviated)
	case "MMMM":
		return ctx.names().Month(f.Instant, ctx.Locale, names.Wide)

	// ── day ─────────────────────────────────────────────────────────────────
	case "D":
		return num(f.Day, 0)
	case "DD":
		return num(f.Day, 2)
	case "DDD":
		return num(f.OrdinalDay(), 3)
	case "DDDD":
		return num(calendar.DaysInMonth(f.Year, f.Month), 0)

	// ── weekday / week ──────────────────────────────────────────────────────
	case "d":
		return num(f.ISOWeekday(), 0)
	case "dd":
		return ctx.names().Weekday(f.Instant, ctx.Locale, names.Narrow)
	case "ddd":
		return ctx.names().Weekday(f.Instant, ctx.Locale, names.Abbreviated)
	case "dddd":
		return ctx.names().Weekday(f.Instant, ctx.Locale, names.Wide)
	case "w":
		return num(f.ISOWeek(), 0)
	case "ww":
		return num(f.ISOWeek(), 2)

	// ── time of day ─────────────────────────────────────────────────────────
	case "h":
		return num(hour12(f.Hour), 0)
	case "hh":
		return num(hour12(f.Hour), 2)
	case "H":
		return num(f.Hour, 0)
	case "HH":
		return num(f.Hour, 2)
	case "m":
		return num(f.Minute, 0)
	case "mm":
		return num(f.Minute, 2)
	case "s":
		return num(f.Second, 0)
	case "ss":
		return num(f.Second, 2)
	case "f":
		return num(f.Millisecond/100, 1)
	case "ff":
		return num(f.Millisecond/10, 2)
	case "fff":
		return num(f.Millisecond, 3)

	// ── meridiem ────────────────────────────────────────────────────────────
	case "a", "p":
		return meridiem(f.Hour, "a", "p")
	case "aa", "pp":
		return meridiem(f.Hour, "am", "pm")
	case "A", "P":
		return meridiem(f.Hour, "A", "P")
	case "AA", "PP":
		return meridiem(f.Hour, "AM", "PM")

	// ── offset ──────────────────────────────────────────────────────────────
	case "z":
		return numfmt.Offset(ctx.Offset, false, true)
	case "zz":
		return numfmt.Offset(ctx.Offset, false, false)
	case "Z":
		return numfmt.Offset(ctx.Offset, true, true)
	case "ZZ":
		return numfmt.Offset(ctx.Offset, true, false)
	}
	return tok.Text
}

func (c Context) names() names.Provider {
	if c.Names == nil {
		return names.English{}
	}
	return c.Names
}

// hour12 maps 0–23 onto the 12-hour clock, 1–12.
func hour12(h int) int {
	if h%12 == 0 {
		return 12
	}
	return h % 12
}

// meridiem picks am or pm.  Hour 0 counts as 24 for the comparison, so
// midnight through 00:59 is pm.
func meridiem(hour int, am, pm string) string {
	if hour == 0 {
		hour = 24
	}
	if hour < 12 {
		return am
	}
	return pm
}
