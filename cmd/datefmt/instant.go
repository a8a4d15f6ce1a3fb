package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

// parseInstant reads an instant argument: "" or "now" for the clock's
// current time, "@<unix-ms>" for a Unix millisecond timestamp in UTC, or an
// RFC 3339 timestamp, which keeps its own offset.
func parseInstant(s string, clock clockwork.Clock) (time.Time, error) {
	switch {
	case s == "" || s == "now":
		return clock.Now(), nil
	case strings.HasPrefix(s, "@"):
		ms, err := strconv.ParseInt(s[1:], 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid unix milliseconds %q: %w", s, err)
		}
		return time.UnixMilli(ms).UTC(), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid instant %q: %w", s, err)
	}
	return t, nil
}
