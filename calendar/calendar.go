// Package calendar implements the proleptic Gregorian arithmetic needed by the
// date pattern resolver: leap years, ordinal days, ISO 8601 week dates and
// century numbers.
//
// Months are 0-based (0 = January) throughout, matching [Fields].  Years are
// astronomical: year 0 is 1 BCE, year -1 is 2 BCE.  No function validates its
// input; out-of-range dates are normalised by the day arithmetic the same way
// [time.Date] normalises them.
package calendar

import "time"

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}

// DaysInMonth returns the number of days in the 0-based month of year.
func DaysInMonth(year, month int) int {
	switch month {
	case 1:
		if IsLeap(year) {
			return 29
		}
		return 28
	case 3, 5, 8, 10:
		return 30
	}
	return 31
}

// DaysFromCivil returns the number of days from 1970-01-01 to the given
// date.  It is exact for every year representable in an int, including
// years ≤ 0, and does not go through a platform date type.
func DaysFromCivil(year, month, day int) int {
	m := month + 1
	y := year
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := m + 9
	if m > 2 {
		mp = m - 3
	}
	doy := (153*mp+2)/5 + day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// CivilFromDays is the inverse of [DaysFromCivil].
func CivilFromDays(days int) (year, month, day int) {
	z := days + 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day = doy - (153*mp+2)/5 + 1
	m := mp + 3
	if mp >= 10 {
		m = mp - 9
	}
	year = yoe + era*400
	if m <= 2 {
		year++
	}
	return year, m - 1, day
}

// OrdinalDay returns the 1-based day of the year (1 for January 1st).
func OrdinalDay(year, month, day int) int {
	return DaysFromCivil(year, month, day) - DaysFromCivil(year, 0, 1) + 1
}

// ── ISO 8601 week dates ───────────────────────────────────────────────────────

// thursday returns the date of the Thursday in the same ISO week as the given
// date.  weekday is ISO numbered: 1 = Monday … 7 = Sunday.
func thursday(year, month, day, weekday int) (int, int, int) {
	return CivilFromDays(DaysFromCivil(year, month, day) + 4 - weekday)
}

// ISOWeek returns the ISO 8601 week number (1–53) of the given date.
// weekday is ISO numbered: 1 = Monday … 7 = Sunday.
func ISOWeek(year, month, day, weekday int) int {
	ty, tm, td := thursday(year, month, day, weekday)
	return (OrdinalDay(ty, tm, td)-1)/7 + 1
}

// ISOWeekYear returns the ISO 8601 week-numbering year of the given date,
// which is the calendar year holding the Thursday of its week.  It differs
// from year only for dates in the first or last days of December/January.
func ISOWeekYear(year, month, day, weekday int) int {
	ty, _, _ := thursday(year, month, day, weekday)
	return ty
}

// ── centuries ─────────────────────────────────────────────────────────────────

// Century returns the truncated century component of year:
// sign(year) * floor(|year| / 100).  2024 → 20, -250 → -2.
func Century(year int) int {
	if year < 0 {
		return -(-year / 100)
	}
	return year / 100
}

// OrdinalCentury returns the ordinal century of year: 2000 is in the 20th,
// 2001 in the 21st.  Years ≤ 0 count away from zero: 0 and -99 are in the 1st.
func OrdinalCentury(year int) int {
	if year > 0 {
		return (year-1)/100 + 1
	}
	return -year/100 + 1
}

// ── time.Time helpers ─────────────────────────────────────────────────────────

// isoWeekday maps a time.Weekday to 1 = Monday … 7 = Sunday.
func isoWeekday(wd time.Weekday) int {
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}

// OrdinalDayOf returns the ordinal day of t's UTC date.
func OrdinalDayOf(t time.Time) int {
	u := t.UTC()
	return OrdinalDay(u.Year(), int(u.Month())-1, u.Day())
}

// WeekOf returns the ISO week number of t's UTC date.
func WeekOf(t time.Time) int {
	u := t.UTC()
	return ISOWeek(u.Year(), int(u.Month())-1, u.Day(), isoWeekday(u.Weekday()))
}

// WeekYearOf returns the ISO week-numbering year of t's UTC date.
func WeekYearOf(t time.Time) int {
	u := t.UTC()
	return ISOWeekYear(u.Year(), int(u.Month())-1, u.Day(), isoWeekday(u.Weekday()))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
