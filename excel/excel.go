// Package excel bridges spreadsheet date formats and datefmt patterns.
//
// Excel stores dates as serial day numbers and describes their display with
// number-format codes such as "m/d/yy h:mm AM/PM".  [Convert] rewrites the
// date part of such a code as a datefmt pattern, [ConvertSerial] turns a
// serial into an instant, and [FormatSerial] combines the two.
//
// Format-code parsing is delegated to [github.com/xuri/nfp]; this package
// only maps the resulting token stream onto datefmt symbols.
package excel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/nfp"

	"github.com/TsubasaBE/go-datefmt"
	"github.com/TsubasaBE/go-datefmt/pattern"
)

// Errors
var (
	ErrNotDateFormat = errors.New("not a date format")
	ErrElapsed       = errors.New("elapsed-time format")
	ErrInvalidSerial = errors.New("invalid serial")
)

// FormatSerial renders an Excel serial with an Excel format code.  The
// serial carries no timezone, so it is formatted at offset zero.
func FormatSerial(serial float64, code string, date1904 bool) (string, error) {
	layout, err := Convert(code)
	if err != nil {
		return "", err
	}
	t, err := ConvertSerial(serial, date1904)
	if err != nil {
		return "", err
	}
	return render(t, layout, datefmt.WithOffset(0)), nil
}

// Convert rewrites the first section of an Excel number-format code as a
// datefmt pattern.
//
// Month and minute share "m" in Excel: "m" and "mm" directly after an hour
// token or directly before a seconds token (literals in between are allowed)
// are minutes.  Hours use the
// 12-hour symbols when the section has an AM/PM marker.  Literal text is
// quoted; colours, conditions and locale tags are dropped.
//
// Elapsed-time codes such as "[h]:mm" have no datefmt equivalent and yield
// [ErrElapsed]; a section without any date token yields [ErrNotDateFormat].
//
// The result is a plain datefmt pattern, so formatting it directly counts
// 00:00–00:59 as pm.  [FormatSerial] and [FormatTime] follow Excel instead
// and render that hour as AM.
func Convert(code string) (string, error) {
	ps := nfp.NumberFormatParser()
	sections := ps.Parse(code)
	if len(sections) == 0 {
		return "", fmt.Errorf("excel: Convert: %w: %q", ErrNotDateFormat, code)
	}
	items := sections[0].Items

	// Pre-scan for an AM/PM marker; it changes how hours are rendered.
	hasAmPm := false
	for _, tok := range items {
		if tok.TType == nfp.TokenTypeDateTimes {
			upper := strings.ToUpper(tok.TValue)
			if upper == "AM/PM" || upper == "A/P" {
				hasAmPm = true
				break
			}
		}
	}

	var (
		w             writer
		lastWasHour   bool
		lastWasSecond bool
		hasDate       bool
	)
	for i := 0; i < len(items); i++ {
		tok := items[i]
		switch tok.TType {

		case nfp.TokenTypeDateTimes:
			upper := strings.ToUpper(tok.TValue)
			if sec, frac, ok := strings.Cut(upper, "."); ok && (sec == "S" || sec == "SS") {
				// Some codes arrive with the fraction attached: "ss.00".
				w.symbol(strings.ToLower(sec))
				w.literal(".")
				w.symbol(fraction(len(frac)))
				hasDate = true
				lastWasHour, lastWasSecond = false, false
				continue
			}
			minute := lastWasHour || secondFollows(items[i+1:])
			sym, ok := dateSymbol(upper, tok.TValue, hasAmPm, minute)
			if !ok {
				w.literal(tok.TValue)
				continue
			}
			w.symbol(sym)
			hasDate = true
			lastWasHour = upper == "H" || upper == "HH"
			lastWasSecond = upper == "S" || upper == "SS"

		case nfp.TokenTypeElapsedDateTimes:
			return "", fmt.Errorf("excel: Convert: %w: %q", ErrElapsed, code)

		case nfp.TokenTypeDecimalPoint:
			if lastWasSecond && i+1 < len(items) && items[i+1].TType == nfp.TokenTypeZeroPlaceHolder {
				w.literal(".")
				w.symbol(fraction(len(items[i+1].TValue)))
				i++
				lastWasSecond = false
				continue
			}
			w.literal(".")

		case nfp.TokenTypeLiteral:
			// A separator between an hour and a following "mm" must not
			// break the minute disambiguation, so lastWasHour survives.
			w.literal(tok.TValue)

		default:
			lastWasHour, lastWasSecond = false, false
		}
	}

	if !hasDate {
		return "", fmt.Errorf("excel: Convert: %w: %q", ErrNotDateFormat, code)
	}
	return w.String(), nil
}

// secondFollows reports whether the next date token in items, skipping
// literals, is a seconds token.
func secondFollows(items []nfp.Token) bool {
	for _, tok := range items {
		switch tok.TType {
		case nfp.TokenTypeLiteral:
			continue
		case nfp.TokenTypeDateTimes:
			return strings.HasPrefix(strings.ToUpper(tok.TValue), "S")
		}
		return false
	}
	return false
}

// dateSymbol maps one upper-cased Excel date token onto a datefmt symbol.
// raw is the token as written, used to keep the case of AM/PM markers.
// minute selects minutes for an ambiguous "m" or "mm".
func dateSymbol(upper, raw string, hasAmPm, minute bool) (string, bool) {
	switch upper {
	case "YYYY", "YYY":
		return "YYYY", true
	case "YY", "Y":
		return "YY", true

	case "MMMM":
		return "MMMM", true
	case "MMM":
		return "MMM", true
	case "MM":
		if minute {
			return "mm", true
		}
		return "MM", true
	case "M":
		if minute {
			return "m", true
		}
		return "M", true

	case "DDDD":
		return "dddd", true
	case "DDD":
		return "ddd", true
	case "DD":
		return "DD", true
	case "D":
		return "D", true

	case "HH":
		if hasAmPm {
			return "hh", true
		}
		return "HH", true
	case "H":
		if hasAmPm {
			return "h", true
		}
		return "H", true

	case "SS":
		return "ss", true
	case "S":
		return "s", true

	case "AM/PM":
		if raw == strings.ToLower(raw) {
			return "aa", true
		}
		return "AA", true
	case "A/P":
		if raw == strings.ToLower(raw) {
			return "a", true
		}
		return "A", true
	}
	return "", false
}

// fraction returns the fractional-second symbol for n digits; datefmt
// resolves at most milliseconds.
func fraction(n int) string {
	switch {
	case n <= 1:
		return "f"
	case n == 2:
		return "ff"
	}
	return "fff"
}

// writer assembles a pattern, merging adjacent literal text into one quoted
// run.
type writer struct {
	sb      strings.Builder
	pending strings.Builder
	last    rune // last character of the previous symbol, 0 after a literal
}

func (w *writer) literal(s string) {
	w.pending.WriteString(s)
}

func (w *writer) symbol(sym string) {
	w.flush()
	if first := rune(sym[0]); first == w.last {
		// Two runs of the same letter would merge into one symbol.
		w.sb.WriteString("''")
	}
	w.sb.WriteString(sym)
	w.last = rune(sym[len(sym)-1])
}

func (w *writer) flush() {
	if w.pending.Len() == 0 {
		return
	}
	w.sb.WriteString(quote(w.pending.String()))
	w.pending.Reset()
	w.last = 0
}

func (w *writer) String() string {
	w.flush()
	return w.sb.String()
}

// quote renders s as pattern literal text.
func quote(s string) string {
	switch {
	case !strings.ContainsRune(s, '\''):
		return "'" + s + "'"
	case !strings.ContainsRune(s, '"'):
		return `"` + s + `"`
	}
	var b strings.Builder
	for _, r := range s {
		b.WriteByte('\\')
		b.WriteRune(r)
	}
	return b.String()
}

// FormatTime is a convenience for callers holding an instant rather than a
// serial: it renders t, at its own offset, with an Excel format code.
func FormatTime(t time.Time, code string) (string, error) {
	layout, err := Convert(code)
	if err != nil {
		return "", err
	}
	return render(t, layout), nil
}

// meridiems holds the Excel AM/PM rendering of the markers Convert emits.
var meridiems = map[string][2]string{
	"AA": {"AM", "PM"},
	"aa": {"am", "pm"},
	"A":  {"A", "P"},
	"a":  {"a", "p"},
}

// render formats t with a converted layout the way Excel displays it: the
// instant is rounded to the finest unit the layout shows, and hours before
// noon, midnight included, are AM.
func render(t time.Time, layout string, opts ...datefmt.Option) string {
	tokens := pattern.Tokenize(layout)
	t = t.Round(precision(tokens))

	f := datefmt.New(opts...)
	fields := f.Resolve(t)
	ctx := datefmt.Context{Offset: f.Offset(t), Locale: f.Locale()}

	var sb strings.Builder
	for _, tok := range tokens {
		if m, ok := meridiems[tok.Text]; ok && tok.Kind == pattern.Symbol {
			if fields.Hour < 12 {
				sb.WriteString(m[0])
			} else {
				sb.WriteString(m[1])
			}
			continue
		}
		sb.WriteString(datefmt.Component(fields, tok, ctx))
	}
	return sb.String()
}

// precision returns the display unit of tokens: whole seconds unless a
// fractional-second symbol asks for more.
func precision(tokens []pattern.Token) time.Duration {
	p := time.Second
	for _, tok := range tokens {
		if tok.Kind != pattern.Symbol {
			continue
		}
		switch tok.Text {
		case "f":
			p = min(p, 100*time.Millisecond)
		case "ff":
			p = min(p, 10*time.Millisecond)
		case "fff":
			p = time.Millisecond
		}
	}
	return p
}
