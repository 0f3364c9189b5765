package schedule

import (
	"fmt"
	"strings"
	"time"
)

const ClockLayout = "15:04"

// Clock is a time of day expressed in minutes since midnight.
type Clock int

func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("schedule: invalid time of day %q", s)
	}
	return Clock(t.Hour()*60 + t.Minute()), nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// On places the clock on the calendar day of d, in d's location.
func (c Clock) On(d time.Time) time.Time {
	return time.Date(
		d.Year(), d.Month(), d.Day(),
		int(c)/60, int(c)%60, 0, 0,
		d.Location(),
	)
}

// Range is a half-open opening window [Start, End).
type Range struct {
	Start Clock
	End   Clock
}

func NewRange(start, end string) (Range, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Range{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Range{}, err
	}
	if s >= e {
		return Range{}, fmt.Errorf("schedule: range %s-%s must start before it ends", s, e)
	}
	return Range{Start: s, End: e}, nil
}

// ParseRanges reads a comma separated list such as "09:00-13:00,17:30-22:30".
func ParseRanges(raw string) ([]Range, error) {
	var out []Range
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		bounds := strings.SplitN(part, "-", 2)
		if len(bounds) != 2 {
			return nil, fmt.Errorf("schedule: invalid range %q", part)
		}
		r, err := NewRange(bounds[0], bounds[1])
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (r Range) String() string {
	return r.Start.String() + "-" + r.End.String()
}
