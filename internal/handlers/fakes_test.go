package handlers

import (
	"context"
	"errors"
	"sort"
	"sync"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// fakeStore serves both repository contracts from memory.
type fakeStore struct {
	mu sync.Mutex

	barbers      []models.Barber
	appointments map[uint]models.Appointment
	blocked      map[string]models.BlockedDate
	overrides    map[string]models.ScheduleOverride
	nextID       uint

	fail error
}

func newFakeStore(names ...string) *fakeStore {
	s := &fakeStore{
		appointments: map[uint]models.Appointment{},
		blocked:      map[string]models.BlockedDate{},
		overrides:    map[string]models.ScheduleOverride{},
	}
	for i, n := range names {
		s.barbers = append(s.barbers, models.Barber{ID: uint(i + 1), Name: n})
	}
	return s
}

func (s *fakeStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) ListBarbers(context.Context) ([]models.Barber, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	return append([]models.Barber(nil), s.barbers...), nil
}

func (s *fakeStore) CountAppointments(_ context.Context, f domain.CountFilter) (int64, error) {
	if s.fail != nil {
		return 0, s.fail
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, ap := range s.appointments {
		if ap.ServiceType != string(f.ServiceType) {
			continue
		}
		if f.BarberID != nil && ap.BarberID != *f.BarberID {
			continue
		}
		if ap.AppointmentDate.Before(f.From) || !ap.AppointmentDate.Before(f.To) {
			continue
		}
		n++
	}
	return n, nil
}

func (s *fakeStore) InsertAppointment(_ context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, other := range s.appointments {
		if other.BarberID == ap.BarberID &&
			other.ServiceType == ap.ServiceType &&
			other.AppointmentDate.Equal(ap.AppointmentDate) {
			return domain.ErrSlotTaken
		}
	}
	ap.ID = s.id()
	s.appointments[ap.ID] = *ap
	return nil
}

func (s *fakeStore) ListAppointments(_ context.Context, f domain.ListFilter) ([]models.Appointment, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Appointment
	for _, ap := range s.appointments {
		if f.From != nil && ap.AppointmentDate.Before(*f.From) {
			continue
		}
		if f.To != nil && !ap.AppointmentDate.Before(*f.To) {
			continue
		}
		if f.BarberID != nil && ap.BarberID != *f.BarberID {
			continue
		}
		ap.Barber = s.barber(ap.BarberID)
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AppointmentDate.Equal(out[j].AppointmentDate) {
			return out[i].BarberID < out[j].BarberID
		}
		return out[i].AppointmentDate.Before(out[j].AppointmentDate)
	})
	return out, nil
}

func (s *fakeStore) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ap, ok := s.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	ap.Barber = s.barber(ap.BarberID)
	return &ap, nil
}

func (s *fakeStore) DeleteAppointment(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.appointments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.appointments, id)
	return nil
}

func (s *fakeStore) barber(id uint) models.Barber {
	for _, b := range s.barbers {
		if b.ID == id {
			return b
		}
	}
	return models.Barber{}
}

// -------- schedule --------

func (s *fakeStore) GetBlockedDate(_ context.Context, date string) (*models.BlockedDate, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if bd, ok := s.blocked[date]; ok {
		return &bd, nil
	}
	return nil, nil
}

func (s *fakeStore) ListBlockedDates(context.Context, string) ([]models.BlockedDate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.BlockedDate, 0, len(s.blocked))
	for _, bd := range s.blocked {
		out = append(out, bd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BlockedDate < out[j].BlockedDate })
	return out, nil
}

func (s *fakeStore) InsertBlockedDate(_ context.Context, bd *models.BlockedDate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blocked[bd.BlockedDate]; ok {
		return schedule.ErrDuplicateDate
	}
	bd.ID = s.id()
	s.blocked[bd.BlockedDate] = *bd
	return nil
}

func (s *fakeStore) DeleteBlockedDate(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, bd := range s.blocked {
		if bd.ID == id {
			delete(s.blocked, k)
			return nil
		}
	}
	return schedule.ErrNotFound
}

func (s *fakeStore) GetScheduleOverride(_ context.Context, date string) (*models.ScheduleOverride, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if o, ok := s.overrides[date]; ok {
		return &o, nil
	}
	return nil, nil
}

func (s *fakeStore) ListScheduleOverrides(context.Context, string) ([]models.ScheduleOverride, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ScheduleOverride, 0, len(s.overrides))
	for _, o := range s.overrides {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OverrideDate < out[j].OverrideDate })
	return out, nil
}

func (s *fakeStore) UpsertScheduleOverride(_ context.Context, o *models.ScheduleOverride) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.overrides[o.OverrideDate]; ok {
		o.ID = prev.ID
	} else {
		o.ID = s.id()
	}
	s.overrides[o.OverrideDate] = *o
	return nil
}

func (s *fakeStore) DeleteScheduleOverride(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, o := range s.overrides {
		if o.ID == id {
			delete(s.overrides, k)
			return nil
		}
	}
	return schedule.ErrNotFound
}

var errStoreDown = errors.New("connection refused")
