package names

import (
	"time"
	"unicode/utf8"

	"github.com/goodsign/monday"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// Monday translates English names with goodsign/monday.  Locales are
// canonicalised to monday's language_REGION form, inferring the most likely
// region when the tag has none ("de" → "de_DE", "pt" → "pt_BR").
type Monday struct{}

var _ Provider = Monday{}

// mondayLocale converts a BCP 47 locale into a monday locale.  ok is false
// when locale does not parse.
func mondayLocale(locale string) (monday.Locale, bool) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	region, _ := tag.Region()
	return monday.Locale(base.String() + "_" + region.String()), true
}

// format renders layout for t in locale, or in English when the locale does
// not parse.
func (Monday) format(t time.Time, locale, layout string) string {
	u := t.UTC()
	loc, ok := mondayLocale(locale)
	if !ok {
		log.WithFields(log.Fields{"module": logModule, "locale": locale}).Debug("unparseable locale, using English names")
		return u.Format(layout)
	}
	return monday.Format(u, layout, loc)
}

// narrow returns the first letter of s.
func narrow(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}

func (m Monday) Month(t time.Time, locale string, w Width) string {
	switch w {
	case Narrow:
		return narrow(m.format(t, locale, "January"))
	case Abbreviated:
		return m.format(t, locale, "Jan")
	}
	return m.format(t, locale, "January")
}

func (m Monday) Weekday(t time.Time, locale string, w Width) string {
	switch w {
	case Narrow:
		return narrow(m.format(t, locale, "Monday"))
	case Abbreviated:
		return m.format(t, locale, "Mon")
	}
	return m.format(t, locale, "Monday")
}
