// Package datefmt formats instants with a compact pattern language, in the
// spirit of strftime but with ISO 8601 week dates, ordinal suffixes and
// sub-second fields.
//
// # Quick start
//
//	t := time.Date(2024, 3, 5, 7, 8, 9, 40e6, time.UTC)
//	datefmt.Format(t, "YYYY-MM-DDTHH:mm:ss.fffZ") // "2024-03-05T07:08:09.040Z"
//	datefmt.Format(t, "dddd, MMMM D#")           // "Tuesday, March 5th"
//
// # Patterns
//
// A pattern is a sequence of symbol runs and literal text.  Symbols are runs
// of one repeated letter and are case-sensitive; "M", "MM", "MMM" and "MMMM"
// are four different symbols.  A '#' after a numeric symbol appends an
// English ordinal suffix.  Text in single or double quotes, and any character
// after a backslash, is copied verbatim.  Unrecognised symbols and runs of
// punctuation are copied verbatim as well, so formatting never fails.
//
//	YY YYYY       calendar year, 2 and 4 digits
//	yy yyyy       ISO week-numbering year (legacy: WW WWWW)
//	C CC          century, truncated (2024 → 20)
//	c cc          ordinal century (2024 → 21)
//	E EE          era: CE / BCE, Common Era / Before Common Era
//	M MM          month number
//	MMM MMMM      month name, short and long
//	D DD          day of month
//	DDD           day of year, 3 digits
//	DDDD          number of days in the month
//	d             ISO weekday, 1 (Monday) to 7 (Sunday)
//	dd ddd dddd   weekday name, 1 letter, short and long
//	w ww          ISO week number
//	h hh          hour, 12-hour clock
//	H HH          hour, 24-hour clock
//	m mm          minute
//	s ss          second
//	f ff fff      tenths, hundredths and milliseconds
//	a aa A AA     meridiem: a, am, A, AM (p, pp, P, PP are aliases)
//	z zz          offset, basic form: +0100; z prints Z for UTC
//	Z ZZ          offset, extended form: +01:00; Z prints Z for UTC
//
// # Offsets
//
// Offsets are milliseconds in the "UTC minus local" convention of a host
// getTimezoneOffset call, so UTC+01:00 is -3600000.  Without [WithOffset] the
// offset recorded in the time value's own location is used; see
// [LocalOffset].  The [zone] package computes offsets for named regions.
package datefmt

import (
	"strings"
	"time"

	"github.com/TsubasaBE/go-datefmt/calendar"
	"github.com/TsubasaBE/go-datefmt/names"
	"github.com/TsubasaBE/go-datefmt/pattern"
)

// Version is the current version of the go-datefmt library.
const Version = "1.0.0"

// DefaultLocale is the locale used when none is configured.
const DefaultLocale = "en"

// defaultCache is shared by every Formatter built without WithCache.
var defaultCache = pattern.NewCache(pattern.DefaultCacheSize)

// Formatter renders instants with patterns.  A Formatter is immutable after
// New and safe for concurrent use.
type Formatter struct {
	offset    int64
	hasOffset bool
	locale    string
	names     names.Provider
	cache     *pattern.Cache
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithOffset fixes the offset, in milliseconds (UTC minus local), that every
// instant is shifted by before formatting.
func WithOffset(ms int64) Option {
	return func(f *Formatter) {
		f.offset = ms
		f.hasOffset = true
	}
}

// WithLocale sets the locale passed to the names provider.  Empty means
// [DefaultLocale].
func WithLocale(locale string) Option {
	return func(f *Formatter) {
		if locale != "" {
			f.locale = locale
		}
	}
}

// WithNames sets the provider of month and weekday names.  nil means
// [names.English].
func WithNames(p names.Provider) Option {
	return func(f *Formatter) {
		if p != nil {
			f.names = p
		}
	}
}

// WithCache sets the pattern cache.  nil means the package-wide cache.
func WithCache(c *pattern.Cache) Option {
	return func(f *Formatter) {
		if c != nil {
			f.cache = c
		}
	}
}

// New returns a Formatter configured by opts.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		locale: DefaultLocale,
		names:  names.English{},
		cache:  defaultCache,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format renders t with layout using a Formatter configured by opts.
func Format(t time.Time, layout string, opts ...Option) string {
	return New(opts...).Format(t, layout)
}

// LocalOffset returns the offset of t's own location at t, in milliseconds
// (UTC minus local).
func LocalOffset(t time.Time) int64 {
	_, east := t.Zone()
	return -int64(east) * 1000
}

// Offset returns the offset f applies to t.
func (f *Formatter) Offset(t time.Time) int64 {
	if f.hasOffset {
		return f.offset
	}
	return LocalOffset(t)
}

// Locale returns the configured locale.
func (f *Formatter) Locale() string { return f.locale }

// Resolve returns the calendar fields of t as f would format them.
func (f *Formatter) Resolve(t time.Time) calendar.Fields {
	return calendar.Resolve(t, f.Offset(t))
}

// Format renders t with layout.
func (f *Formatter) Format(t time.Time, layout string) string {
	offset := f.Offset(t)
	fields := calendar.Resolve(t, offset)
	ctx := Context{Offset: offset, Locale: f.locale, Names: f.names}

	var sb strings.Builder
	for _, tok := range f.cache.Tokens(layout) {
		sb.WriteString(Component(fields, tok, ctx))
	}
	return sb.String()
}
