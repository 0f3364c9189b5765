package schedule

import (
	"fmt"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const DateLayout = "2006-01-02"

// Day is the effective opening plan of one calendar date.
type Day struct {
	Ranges []Range
	Closed bool
	Reason string
}

// PlanDay applies an override and a blocked-date marker on top of the default
// ranges. A non-closed override replaces the defaults; it is never merged.
// A closed day keeps its ranges so the grid can still be rendered.
func PlanDay(cfg Config, override *models.ScheduleOverride, blocked *models.BlockedDate) (Day, error) {
	day := Day{Ranges: cfg.Ranges}

	if override != nil && !override.IsClosed {
		if override.StartTime == nil || override.EndTime == nil {
			return Day{}, fmt.Errorf("schedule: override for %s has no hours", override.OverrideDate)
		}
		r, err := NewRange(*override.StartTime, *override.EndTime)
		if err != nil {
			return Day{}, fmt.Errorf("schedule: override for %s: %w", override.OverrideDate, err)
		}
		day.Ranges = []Range{r}
	}

	switch {
	case blocked != nil:
		day.Closed = true
		day.Reason = deref(blocked.Reason)
	case override != nil && override.IsClosed:
		day.Closed = true
		day.Reason = deref(override.Reason)
	}

	return day, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
