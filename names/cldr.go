package names

import (
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pt"
	"github.com/go-playground/locales/ru"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// CLDR looks names up in Unicode CLDR data compiled into go-playground
// translators.  The requested locale is matched against the available
// translators with BCP 47 matching, so "de-AT" and "de-CH" resolve to German.
type CLDR struct {
	translators []locales.Translator
	matcher     language.Matcher
}

var _ Provider = (*CLDR)(nil)

// NewCLDR returns a provider over the given translators, or over a built-in
// set of common languages when none are given.
func NewCLDR(translators ...locales.Translator) *CLDR {
	if len(translators) == 0 {
		translators = []locales.Translator{
			en.New(), de.New(), es.New(), fr.New(), it.New(),
			ja.New(), nl.New(), pt.New(), ru.New(),
		}
	}
	tags := make([]language.Tag, len(translators))
	for i, tr := range translators {
		tags[i] = language.Make(strings.ReplaceAll(tr.Locale(), "_", "-"))
	}
	return &CLDR{
		translators: translators,
		matcher:     language.NewMatcher(tags),
	}
}

// translator returns the translator matching locale, or nil.
func (c *CLDR) translator(locale string) locales.Translator {
	tag, err := language.Parse(locale)
	if err != nil {
		log.WithFields(log.Fields{"module": logModule, "locale": locale, "err": err}).Debug("unparseable locale, using English names")
		return nil
	}
	_, idx, conf := c.matcher.Match(tag)
	if conf == language.No {
		log.WithFields(log.Fields{"module": logModule, "locale": locale}).Debug("no CLDR data for locale, using English names")
		return nil
	}
	return c.translators[idx]
}

func (c *CLDR) Month(t time.Time, locale string, w Width) string {
	tr := c.translator(locale)
	if tr == nil {
		return English{}.Month(t, locale, w)
	}
	m := t.UTC().Month()
	switch w {
	case Narrow:
		return tr.MonthNarrow(m)
	case Abbreviated:
		return tr.MonthAbbreviated(m)
	}
	return tr.MonthWide(m)
}

func (c *CLDR) Weekday(t time.Time, locale string, w Width) string {
	tr := c.translator(locale)
	if tr == nil {
		return English{}.Weekday(t, locale, w)
	}
	d := t.UTC().Weekday()
	switch w {
	case Narrow:
		return tr.WeekdayNarrow(d)
	case Abbreviated:
		return tr.WeekdayAbbreviated(d)
	}
	return tr.WeekdayWide(d)
}
