package calendar

import "time"

// Fields is an instant broken into UTC calendar fields after the target
// offset has been applied.  It is the only view of the instant the pattern
// resolver sees.
type Fields struct {
	Year        int // astronomical, may be ≤ 0
	Month       int // 0 = January … 11 = December
	Day         int // 1–31
	Weekday     int // 0 = Sunday … 6 = Saturday
	Hour        int // 0–23
	Minute      int
	Second      int
	Millisecond int

	// Instant is the shifted instant the fields were read from, in UTC.
	// Locale name providers receive it.
	Instant time.Time
}

// Resolve shifts t by offsetMS (UTC minus local, so -3600000 moves the
// instant one hour forward to UTC+01:00 wall time) and splits the result into
// UTC calendar fields.
func Resolve(t time.Time, offsetMS int64) Fields {
	u := t.UTC().Add(-time.Duration(offsetMS) * time.Millisecond)
	return Fields{
		Year:        u.Year(),
		Month:       int(u.Month()) - 1,
		Day:         u.Day(),
		Weekday:     int(u.Weekday()),
		Hour:        u.Hour(),
		Minute:      u.Minute(),
		Second:      u.Second(),
		Millisecond: u.Nanosecond() / int(time.Millisecond),
		Instant:     u,
	}
}

// ISOWeekday returns the weekday numbered 1 = Monday … 7 = Sunday.
func (f Fields) ISOWeekday() int {
	if f.Weekday == 0 {
		return 7
	}
	return f.Weekday
}

// OrdinalDay returns the 1-based day of the year.
func (f Fields) OrdinalDay() int {
	return OrdinalDay(f.Year, f.Month, f.Day)
}

// ISOWeek returns the ISO 8601 week number.
func (f Fields) ISOWeek() int {
	return ISOWeek(f.Year, f.Month, f.Day, f.ISOWeekday())
}

// ISOWeekYear returns the ISO 8601 week-numbering year.
func (f Fields) ISOWeekYear() int {
	return ISOWeekYear(f.Year, f.Month, f.Day, f.ISOWeekday())
}
