// Package clock models wall-clock times of day at minute resolution, the
// granularity every attendance rule is expressed in.
package clock

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	ErrEmpty       = errors.New("empty time value")
	ErrInvalidTime = errors.New("invalid time value")
)

// Clock is a time of day expressed as minutes after midnight.
type Clock int

const minutesPerDay = 24 * 60

// New builds a Clock from an hour and minute.
func New(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// MustParse is Parse for package-level defaults; it panics on bad input.
func MustParse(s string) Clock {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Sub returns c - o in minutes.
func (c Clock) Sub(o Clock) int {
	return int(c) - int(o)
}

func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Clock) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

var layouts = []string{
	"15:04",
	"15:04:05",
	"3:04PM",
	"3:04:05PM",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"2006-01-02 3:04PM",
	"01/02/2006 3:04PM",
	"01/02/2006 3:04:05PM",
}

// Parse normalizes a time-clock cell into a Clock. It accepts "HH:MM[:SS]"
// strings with an optional AM/PM marker, date-time strings, and spreadsheet
// serial numbers (a bare fraction of a day or a date serial with a time part).
// Seconds are truncated.
func Parse(raw string) (Clock, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrEmpty
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return fromSerial(f, raw)
	}

	s = normalizeMeridiem(s)
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return New(t.Hour(), t.Minute()), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
}

func fromSerial(f float64, raw string) (Clock, error) {
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
	}
	whole, frac := math.Modf(f)
	if frac == 0 && whole >= 1 {
		// a date serial without a time component
		return 0, fmt.Errorf("%w: %q has no time of day", ErrInvalidTime, raw)
	}
	seconds := int(math.Round(frac * 24 * 60 * 60))
	minutes := seconds / 60
	if minutes >= minutesPerDay {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
	}
	return Clock(minutes), nil
}

// normalizeMeridiem turns "8:15 a. m." or "8:15 pm" into "8:15AM"/"8:15PM".
func normalizeMeridiem(s string) string {
	compact := strings.ReplaceAll(strings.ToLower(s), ".", "")
	compact = strings.Join(strings.Fields(compact), " ")
	markers := []struct {
		suffixes []string
		marker   string
	}{
		{[]string{" a m", " am", "am"}, "AM"},
		{[]string{" p m", " pm", "pm"}, "PM"},
	}
	for _, m := range markers {
		for _, suffix := range m.suffixes {
			if strings.HasSuffix(compact, suffix) {
				return strings.TrimSuffix(compact, suffix) + m.marker
			}
		}
	}
	return s
}
