package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// Settings is the shop-wide configuration shared by the appointment use cases.
type Settings struct {
	Schedule    schedule.Config
	Location    *time.Location
	PhoneRegion string
	Prices      domain.PriceTable
}

func (s Settings) location() *time.Location {
	if s.Location == nil {
		return timezone.Location("")
	}
	return s.Location
}

// dayState is what the store says about one calendar date.
type dayState struct {
	date     time.Time
	key      string
	blocked  *models.BlockedDate
	override *models.ScheduleOverride
}

func loadDay(
	ctx context.Context,
	schedules schedule.Repository,
	date time.Time,
) (*dayState, error) {

	key := date.Format(schedule.DateLayout)

	blocked, err := schedules.GetBlockedDate(ctx, key)
	if err != nil {
		return nil, err
	}

	override, err := schedules.GetScheduleOverride(ctx, key)
	if err != nil {
		return nil, err
	}

	return &dayState{
		date:     date,
		key:      key,
		blocked:  blocked,
		override: override,
	}, nil
}

func dayWindow(date time.Time) (time.Time, time.Time) {
	return date, date.AddDate(0, 0, 1)
}
