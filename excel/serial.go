package excel

import (
	"fmt"
	"math"
	"time"
)

// Serial bounds.  Excel serials stop at 9999-12-31, day 2,958,465 in the
// 1900 system, so the first rejected serial is 2,958,466.  The 1904 system
// starts 1462 days later.
const (
	endSerial1900 = 2_958_466
	endSerial1904 = endSerial1900 - 1462
)

const msPerDay = 86_400_000

// ConvertSerial converts an Excel date serial to a UTC instant.
//
// In the 1900 system Excel keeps Lotus 1-2-3's phantom 1900-02-29, so
// serials ≥ 61 are shifted back one day, serial 60 lands on 1900-03-01 and
// serial 0 is midnight on 1900-01-01.  In the 1904 system serial 0 is
// 1904-01-01 and no correction applies.
//
// The fraction of the day is rounded to whole milliseconds; a fraction that
// rounds to a full day rolls over into the next day.
func ConvertSerial(serial float64, date1904 bool) (time.Time, error) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) {
		return time.Time{}, fmt.Errorf("excel: ConvertSerial: %w: %v", ErrInvalidSerial, serial)
	}
	if serial < 0 {
		return time.Time{}, fmt.Errorf("excel: ConvertSerial: %w: negative serial %v", ErrInvalidSerial, serial)
	}
	end := endSerial1900
	if date1904 {
		end = endSerial1904
	}

	ms, rollover := dayMillis(serial)
	days := int(serial) + rollover
	if days >= end {
		return time.Time{}, fmt.Errorf("excel: ConvertSerial: %w: %v is past 9999-12-31", ErrInvalidSerial, serial)
	}
	clock := time.Duration(ms) * time.Millisecond

	if date1904 {
		return time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days).Add(clock), nil
	}
	base := time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC)
	switch {
	case days == 0:
		return time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC).Add(clock), nil
	case days >= 61:
		days--
	}
	return base.AddDate(0, 0, days).Add(clock), nil
}

// dayMillis returns the fractional-day part of serial as whole milliseconds
// (0–86399999) and whether rounding rolled over into the next day.
func dayMillis(serial float64) (ms int64, rollover int) {
	frac := serial - math.Trunc(serial)
	ms = int64(math.Round(frac * msPerDay))
	if ms >= msPerDay {
		return ms - msPerDay, 1
	}
	return ms, 0
}
