// Package names supplies month and weekday names to the date pattern
// resolver.
//
// A [Provider] is chosen once, when a formatter is configured.  [English]
// uses fixed tables and never consults the locale.  [CLDR] and [Monday] look
// names up per locale and fall back to [English] for locales they do not
// know.
package names

import (
	"errors"
	"fmt"
	"time"
)

const logModule = "names"

// Width selects the length of a name.
type Width int

const (
	// Narrow is a single letter: "M", "S".
	Narrow Width = iota
	// Abbreviated is the short form: "Mar", "Sun".
	Abbreviated
	// Wide is the full name: "March", "Sunday".
	Wide
)

func (w Width) String() string {
	switch w {
	case Narrow:
		return "narrow"
	case Abbreviated:
		return "abbreviated"
	case Wide:
		return "wide"
	}
	return fmt.Sprintf("Width(%d)", int(w))
}

// Provider renders the month or weekday of t in the given locale.  t is
// already shifted to the wall time being formatted, so implementations read
// its UTC fields.
type Provider interface {
	Month(t time.Time, locale string, w Width) string
	Weekday(t time.Time, locale string, w Width) string
}

// ErrUnknownProvider is returned by [ByName] for an unrecognised name.
var ErrUnknownProvider = errors.New("unknown names provider")

// ByName returns the provider registered under name: "english" (or ""),
// "cldr" or "monday".
func ByName(name string) (Provider, error) {
	switch name {
	case "", "english":
		return English{}, nil
	case "cldr":
		return NewCLDR(), nil
	case "monday":
		return Monday{}, nil
	}
	return nil, fmt.Errorf("names: ByName: %w: %q", ErrUnknownProvider, name)
}

// ── fixed English tables ──────────────────────────────────────────────────────

var (
	monthsNarrow = [12]string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"}
	monthsShort  = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	monthsWide = [12]string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}

	// Indexed by time.Weekday, so Sunday comes first.
	daysNarrow = [7]string{"S", "M", "T", "W", "T", "F", "S"}
	daysShort  = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	daysWide   = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
)

// English returns English names regardless of the locale.
type English struct{}

var _ Provider = English{}

func (English) Month(t time.Time, _ string, w Width) string {
	m := int(t.UTC().Month()) - 1
	switch w {
	case Narrow:
		return monthsNarrow[m]
	case Abbreviated:
		return monthsShort[m]
	}
	return monthsWide[m]
}

func (English) Weekday(t time.Time, _ string, w Width) string {
	d := t.UTC().Weekday()
	switch w {
	case Narrow:
		return daysNarrow[d]
	case Abbreviated:
		return daysShort[d]
	}
	return daysWide[d]
}
