package countdown

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidDuration = errors.New("invalid duration")
	ErrInvalidTarget   = errors.New("invalid target time")
)

// ParseDuration accepts a bare number of seconds ("45"), a single unit
// ("1h", "90m", "30s") or any compound form time.ParseDuration knows ("1h30m").
// Units are case-insensitive. Durations must be positive.
func ParseDuration(input string) (time.Duration, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidDuration)
	}

	var d time.Duration
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		d = time.Duration(n) * time.Second
	} else {
		d, err = time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("%w %q: use 30s, 10m, 1h, 1h30m or plain seconds", ErrInvalidDuration, input)
		}
	}

	if d <= 0 {
		return 0, fmt.Errorf("%w %q: must be positive", ErrInvalidDuration, input)
	}
	return d, nil
}

var (
	dateTimeLayouts = []string{"2006-01-02 15:04:05", "2006-01-02 15:04"}
	clockLayouts    = []string{"15:04:05", "15:04"}
)

// ParseTarget resolves a target instant in now's location.
// A full date ("2025-07-19 12:00[:00]") is taken as is. A bare time of day
// ("12:00[:00]") means today, or tomorrow when it is not after now.
func ParseTarget(input string, now time.Time) (time.Time, error) {
	s := strings.TrimSpace(input)
	loc := now.Location()

	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	for _, layout := range clockLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			continue
		}
		y, mo, d := now.Date()
		today := time.Date(y, mo, d, t.Hour(), t.Minute(), t.Second(), 0, loc)
		if !today.After(now) {
			return today.AddDate(0, 0, 1), nil
		}
		return today, nil
	}

	return time.Time{}, fmt.Errorf("%w %q: use HH:MM[:SS] or YYYY-MM-DD HH:MM[:SS]", ErrInvalidTarget, input)
}
