package schedule

import (
	"errors"
	"fmt"
	"time"
)

// Config is the default opening schedule of the shop. It is process-wide and read-only.
type Config struct {
	Ranges       []Range
	SlotDuration time.Duration
}

func (c Config) Validate() error {
	if len(c.Ranges) == 0 {
		return errors.New("schedule: at least one opening range is required")
	}
	if c.SlotDuration < time.Minute || c.SlotDuration%time.Minute != 0 {
		return fmt.Errorf("schedule: slot duration %s must be a whole number of minutes", c.SlotDuration)
	}
	for i, r := range c.Ranges {
		if r.Start >= r.End {
			return fmt.Errorf("schedule: range %s must start before it ends", r)
		}
		if i > 0 && r.Start < c.Ranges[i-1].End {
			return fmt.Errorf("schedule: range %s overlaps or precedes %s", r, c.Ranges[i-1])
		}
	}
	return nil
}

// Slots walks every range in order and emits the slot starts that fall
// strictly before the range end.
func Slots(ranges []Range, step time.Duration) []Clock {
	stepMin := Clock(step / time.Minute)
	if stepMin <= 0 {
		return nil
	}

	var out []Clock
	for _, r := range ranges {
		for cur := r.Start; cur < r.End; cur += stepMin {
			out = append(out, cur)
		}
	}
	return out
}

// Contains reports whether c is one of the slot starts generated for ranges.
func Contains(ranges []Range, step time.Duration, c Clock) bool {
	for _, s := range Slots(ranges, step) {
		if s == c {
			return true
		}
	}
	return false
}
