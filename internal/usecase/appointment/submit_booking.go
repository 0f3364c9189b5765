package appointment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type SubmitBookingInput struct {
	Date string `json:"date" validate:"required"` // YYYY-MM-DD
	Time string `json:"time" validate:"required"` // HH:mm

	ClientName  string `json:"client_name" validate:"required,max=100"`
	ClientPhone string `json:"client_phone" validate:"required,max=30"`

	BarberID    *uint  `json:"barber_id,omitempty"`
	ServiceType string `json:"service_type,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

type SubmitBooking struct {
	repo      domain.Repository
	schedules schedule.Repository
	audit     *audit.Dispatcher
	validate  *validator.Validate
	settings  Settings
	now       func() time.Time
}

func NewSubmitBooking(
	repo domain.Repository,
	schedules schedule.Repository,
	dispatcher *audit.Dispatcher,
	validate *validator.Validate,
	settings Settings,
) *SubmitBooking {
	if validate == nil {
		validate = validator.New()
	}
	return &SubmitBooking{
		repo:      repo,
		schedules: schedules,
		audit:     dispatcher,
		validate:  validate,
		settings:  settings,
		now:       time.Now,
	}
}

// WithClock replaces the time source. Used by tests.
func (uc *SubmitBooking) WithClock(now func() time.Time) *SubmitBooking {
	uc.now = now
	return uc
}

// Location is the shop timezone bookings are interpreted in.
func (uc *SubmitBooking) Location() *time.Location {
	return uc.settings.location()
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SubmitBooking) Execute(
	ctx context.Context,
	in SubmitBookingInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Input (no store access)
	// --------------------------------------------------

	in.ClientName = strings.TrimSpace(in.ClientName)
	in.ClientPhone = strings.TrimSpace(in.ClientPhone)
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)

	if err := uc.validate.Struct(in); err != nil {
		return nil, httperr.Wrap(domain.CodeValidation, err)
	}

	serviceType := domain.ServiceCorte
	if raw := strings.TrimSpace(in.ServiceType); raw != "" {
		st, err := domain.ParseServiceType(raw)
		if err != nil {
			return nil, httperr.Wrap(domain.CodeValidation, err)
		}
		serviceType = st
	}
	if !serviceType.Timed() {
		return nil, httperr.ErrBusiness(domain.CodeServiceNotBookable)
	}

	phone, err := validators.NormalizePhone(in.ClientPhone, uc.settings.PhoneRegion)
	if err != nil {
		return nil, httperr.Wrap(domain.CodeInvalidPhone, err)
	}

	loc := uc.settings.location()

	day, err := time.ParseInLocation(schedule.DateLayout, in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness(domain.CodeInvalidDateOrTime)
	}
	clock, err := schedule.ParseClock(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness(domain.CodeInvalidDateOrTime)
	}

	// --------------------------------------------------
	// 2. Blocked / closed day
	// --------------------------------------------------

	state, err := loadDay(ctx, uc.schedules, day)
	if err != nil {
		return nil, domain.StoreUnavailable(err)
	}
	if state.blocked != nil {
		return nil, httperr.ErrBusiness(domain.CodeDateBlocked)
	}
	if state.override != nil && state.override.IsClosed {
		return nil, httperr.ErrBusiness(domain.CodeDateClosed)
	}

	plan, err := schedule.PlanDay(uc.settings.Schedule, state.override, state.blocked)
	if err != nil {
		return nil, domain.StoreUnavailable(err)
	}

	// --------------------------------------------------
	// 3. Slot
	// --------------------------------------------------

	step := uc.settings.Schedule.SlotDuration
	if !schedule.Contains(plan.Ranges, step, clock) {
		return nil, httperr.ErrBusiness(domain.CodeInvalidSlot)
	}

	start := clock.On(day)
	if start.Before(uc.now()) {
		return nil, httperr.ErrBusiness(domain.CodeSlotInPast)
	}

	// --------------------------------------------------
	// 4. Barber + insert
	// --------------------------------------------------

	barbers, err := uc.repo.ListBarbers(ctx)
	if err != nil {
		return nil, domain.StoreUnavailable(err)
	}

	ap := &models.Appointment{
		ClientName:      in.ClientName,
		ClientPhone:     phone,
		AppointmentDate: start,
		ServiceType:     string(serviceType),
	}

	if in.BarberID != nil {
		err = uc.bookPreferred(ctx, ap, barbers, *in.BarberID, step)
	} else {
		err = uc.bookFirstFree(ctx, ap, barbers, step)
	}
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Audit
	// --------------------------------------------------

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"barber_id":    ap.BarberID,
			"date":         state.key,
			"time":         clock.String(),
			"service_type": ap.ServiceType,
		},
	})

	return ap, nil
}

func (uc *SubmitBooking) bookPreferred(
	ctx context.Context,
	ap *models.Appointment,
	barbers []models.Barber,
	barberID uint,
	step time.Duration,
) error {

	barber, ok := findBarber(barbers, barberID)
	if !ok {
		return httperr.ErrBusiness(domain.CodeBarberNotFound)
	}

	busy, err := uc.isBusy(ctx, barber.ID, ap, step)
	if err != nil {
		return domain.StoreUnavailable(err)
	}
	if busy {
		return httperr.ErrBusiness(domain.CodeBarberUnavailable)
	}

	ap.BarberID = barber.ID
	if err := uc.repo.InsertAppointment(ctx, ap); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			return httperr.Wrap(domain.CodeSlotTaken, err)
		}
		return domain.StoreUnavailable(err)
	}

	ap.Barber = barber
	return nil
}

// bookFirstFree walks the roster in id order. A barber lost to a concurrent
// insert is skipped and the next free one is tried, at most once per barber.
func (uc *SubmitBooking) bookFirstFree(
	ctx context.Context,
	ap *models.Appointment,
	barbers []models.Barber,
	step time.Duration,
) error {

	tried := make(map[uint]bool, len(barbers))

	for range barbers {
		barber, found, err := uc.firstFree(ctx, ap, barbers, tried, step)
		if err != nil {
			return domain.StoreUnavailable(err)
		}
		if !found {
			break
		}

		ap.ID = 0
		ap.BarberID = barber.ID

		err = uc.repo.InsertAppointment(ctx, ap)
		if err == nil {
			ap.Barber = barber
			return nil
		}
		if !errors.Is(err, domain.ErrSlotTaken) {
			return domain.StoreUnavailable(err)
		}

		tried[barber.ID] = true
	}

	return httperr.ErrBusiness(domain.CodeNoAvailability)
}

func (uc *SubmitBooking) firstFree(
	ctx context.Context,
	ap *models.Appointment,
	barbers []models.Barber,
	tried map[uint]bool,
	step time.Duration,
) (models.Barber, bool, error) {

	for _, b := range barbers {
		if tried[b.ID] {
			continue
		}
		busy, err := uc.isBusy(ctx, b.ID, ap, step)
		if err != nil {
			return models.Barber{}, false, err
		}
		if !busy {
			return b, true, nil
		}
		tried[b.ID] = true
	}
	return models.Barber{}, false, nil
}

func (uc *SubmitBooking) isBusy(
	ctx context.Context,
	barberID uint,
	ap *models.Appointment,
	step time.Duration,
) (bool, error) {

	n, err := uc.repo.CountAppointments(ctx, domain.CountFilter{
		BarberID:    &barberID,
		ServiceType: domain.ServiceType(ap.ServiceType),
		From:        ap.AppointmentDate,
		To:          ap.AppointmentDate.Add(step),
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func findBarber(barbers []models.Barber, id uint) (models.Barber, bool) {
	for _, b := range barbers {
		if b.ID == id {
			return b, true
		}
	}
	return models.Barber{}, false
}
