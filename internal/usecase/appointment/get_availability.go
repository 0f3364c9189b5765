package appointment

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type GetAvailability struct {
	repo      domain.Repository
	schedules schedule.Repository
	settings  Settings
	now       func() time.Time
}

func NewGetAvailability(
	repo domain.Repository,
	schedules schedule.Repository,
	settings Settings,
) *GetAvailability {
	return &GetAvailability{
		repo:      repo,
		schedules: schedules,
		settings:  settings,
		now:       time.Now,
	}
}

// WithClock replaces the time source. Used by tests.
func (uc *GetAvailability) WithClock(now func() time.Time) *GetAvailability {
	uc.now = now
	return uc
}

// Execute resolves the grid of date ("YYYY-MM-DD"). When the store cannot be
// read it returns a degraded, fully unselectable grid together with a
// store_unavailable error.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) (*domain.DayAvailability, error) {

	loc := uc.settings.location()

	day, err := timezone.ParseDate(strings.TrimSpace(date), loc)
	if err != nil {
		return nil, httperr.ErrBusiness(domain.CodeInvalidDateOrTime)
	}

	barberCount := 0
	failClosed := func(cause error) (*domain.DayAvailability, error) {
		return &domain.DayAvailability{
			Date:     day.Format(schedule.DateLayout),
			Degraded: true,
			Slots:    domain.FailClosedSlots(uc.settings.Schedule, barberCount),
		}, domain.StoreUnavailable(cause)
	}

	// --------------------------------------------------
	// 1. Blocked date / override
	// --------------------------------------------------

	state, err := loadDay(ctx, uc.schedules, day)
	if err != nil {
		return failClosed(err)
	}

	plan, err := schedule.PlanDay(uc.settings.Schedule, state.override, state.blocked)
	if err != nil {
		return failClosed(err)
	}

	// --------------------------------------------------
	// 2. Capacity
	// --------------------------------------------------

	barbers, err := uc.repo.ListBarbers(ctx)
	if err != nil {
		return failClosed(err)
	}
	barberCount = len(barbers)

	// --------------------------------------------------
	// 3. Bookings of the day (always live)
	// --------------------------------------------------

	var booked []time.Time
	if !plan.Closed {
		from, to := dayWindow(day)
		corte := domain.ServiceCorte

		list, err := uc.repo.ListAppointments(ctx, domain.ListFilter{
			From:        &from,
			To:          &to,
			ServiceType: &corte,
		})
		if err != nil {
			return failClosed(err)
		}

		booked = make([]time.Time, 0, len(list))
		for _, ap := range list {
			booked = append(booked, ap.AppointmentDate)
		}
	}

	slots := domain.ResolveDaySlots(domain.DayInput{
		Date:         day,
		Plan:         plan,
		SlotDuration: uc.settings.Schedule.SlotDuration,
		BarberCount:  barberCount,
		Booked:       booked,
		Now:          uc.now(),
	})

	return &domain.DayAvailability{
		Date:   state.key,
		Closed: plan.Closed,
		Reason: plan.Reason,
		Slots:  slots,
	}, nil
}
