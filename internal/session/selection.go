package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

const (
	CodeSessionNotFound = "session_not_found"
	CodeDateRequired    = "date_required"
	CodeSlotUnavailable = "slot_unavailable"

	selectionPrefix = "selection:"
)

// Selection is the client's in-progress choice of date and slot. It is
// advisory: holding a selection reserves nothing.
type Selection struct {
	ID          string    `json:"id"`
	Date        string    `json:"date,omitempty"`
	Time        string    `json:"time,omitempty"`
	ServiceType string    `json:"service_type"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Availability resolves the live grid of a date.
type Availability interface {
	Execute(ctx context.Context, date string) (*domain.DayAvailability, error)
}

type SelectionService struct {
	store        Store
	availability Availability
	ttl          time.Duration
	now          func() time.Time
}

func NewSelectionService(store Store, availability Availability, ttl time.Duration) *SelectionService {
	return &SelectionService{
		store:        store,
		availability: availability,
		ttl:          ttl,
		now:          time.Now,
	}
}

func (s *SelectionService) Create(ctx context.Context, serviceType string) (*Selection, error) {
	st := domain.ServiceCorte
	if raw := strings.TrimSpace(serviceType); raw != "" {
		parsed, err := domain.ParseServiceType(raw)
		if err != nil {
			return nil, httperr.Wrap(domain.CodeValidation, err)
		}
		st = parsed
	}

	sel := &Selection{
		ID:          uuid.NewString(),
		ServiceType: string(st),
	}
	if err := s.save(ctx, sel); err != nil {
		return nil, err
	}
	return sel, nil
}

func (s *SelectionService) Get(ctx context.Context, id string) (*Selection, error) {
	var sel Selection
	if err := s.store.Get(ctx, selectionPrefix+id, &sel); err != nil {
		if errors.Is(err, ErrMiss) {
			return nil, httperr.ErrBusiness(CodeSessionNotFound)
		}
		return nil, domain.StoreUnavailable(err)
	}
	return &sel, nil
}

// SelectDate sets the date; a different date invalidates the chosen slot.
func (s *SelectionService) SelectDate(ctx context.Context, id, date string) (*Selection, error) {
	date = strings.TrimSpace(date)
	if _, err := time.Parse(schedule.DateLayout, date); err != nil {
		return nil, httperr.ErrBusiness(domain.CodeInvalidDateOrTime)
	}

	sel, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if sel.Date != date {
		sel.Date = date
		sel.Time = ""
	}

	if err := s.save(ctx, sel); err != nil {
		return nil, err
	}
	return sel, nil
}

// SelectSlot records the slot only if a fresh availability read says it is
// selectable right now.
func (s *SelectionService) SelectSlot(ctx context.Context, id, clock string) (*Selection, error) {
	sel, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sel.Date == "" {
		return nil, httperr.ErrBusiness(CodeDateRequired)
	}
	if !domain.ServiceType(sel.ServiceType).Timed() {
		return nil, httperr.ErrBusiness(domain.CodeServiceNotBookable)
	}

	c, err := schedule.ParseClock(clock)
	if err != nil {
		return nil, httperr.ErrBusiness(domain.CodeInvalidDateOrTime)
	}

	grid, err := s.availability.Execute(ctx, sel.Date)
	if err != nil {
		return nil, err
	}

	if !selectable(grid.Slots, c.String()) {
		return nil, httperr.ErrBusiness(CodeSlotUnavailable)
	}

	sel.Time = c.String()
	if err := s.save(ctx, sel); err != nil {
		return nil, err
	}
	return sel, nil
}

// ClearSlot forgets the chosen slot but keeps the date.
func (s *SelectionService) ClearSlot(ctx context.Context, id string) error {
	sel, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	sel.Time = ""
	return s.save(ctx, sel)
}

func (s *SelectionService) Clear(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, selectionPrefix+id); err != nil {
		return domain.StoreUnavailable(err)
	}
	return nil
}

func (s *SelectionService) save(ctx context.Context, sel *Selection) error {
	sel.UpdatedAt = s.now()
	if err := s.store.Set(ctx, selectionPrefix+sel.ID, sel, s.ttl); err != nil {
		return domain.StoreUnavailable(err)
	}
	return nil
}

func selectable(slots []domain.DaySlot, clock string) bool {
	for _, sl := range slots {
		if sl.Time == clock {
			return sl.Selectable
		}
	}
	return false
}
