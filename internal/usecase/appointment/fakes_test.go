package appointment

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// memoryStore is an in-memory store that enforces the same unique
// (barber, slot start, service type) rule as the database.
type memoryStore struct {
	mu sync.Mutex

	barbers      []models.Barber
	appointments []models.Appointment
	blocked      map[string]*models.BlockedDate
	overrides    map[string]*models.ScheduleOverride
	nextID       uint

	calls  int
	writes int

	// countGate, when set, holds every CountAppointments caller until all
	// expected callers have counted.
	countGate *sync.WaitGroup

	listErr error
}

var (
	_ domain.Repository   = (*memoryStore)(nil)
	_ schedule.Repository = (*memoryStore)(nil)
)

func newMemoryStore(names ...string) *memoryStore {
	s := &memoryStore{
		blocked:   map[string]*models.BlockedDate{},
		overrides: map[string]*models.ScheduleOverride{},
	}
	for i, n := range names {
		s.barbers = append(s.barbers, models.Barber{ID: uint(i + 1), Name: n})
	}
	return s
}

func (s *memoryStore) touch() {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
}

func (s *memoryStore) ListBarbers(context.Context) ([]models.Barber, error) {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Barber(nil), s.barbers...), nil
}

func (s *memoryStore) CountAppointments(_ context.Context, f domain.CountFilter) (int64, error) {
	s.touch()

	s.mu.Lock()
	var n int64
	for _, ap := range s.appointments {
		if f.BarberID != nil && ap.BarberID != *f.BarberID {
			continue
		}
		if ap.ServiceType != string(f.ServiceType) {
			continue
		}
		if !ap.AppointmentDate.Before(f.From) && ap.AppointmentDate.Before(f.To) {
			n++
		}
	}
	gate := s.countGate
	s.mu.Unlock()

	if gate != nil {
		gate.Done()
		gate.Wait()
	}
	return n, nil
}

func (s *memoryStore) InsertAppointment(_ context.Context, ap *models.Appointment) error {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.appointments {
		if existing.BarberID == ap.BarberID &&
			existing.ServiceType == ap.ServiceType &&
			existing.AppointmentDate.Equal(ap.AppointmentDate) {
			return domain.ErrSlotTaken
		}
	}

	s.nextID++
	s.writes++
	ap.ID = s.nextID
	if ap.CreatedAt.IsZero() {
		ap.CreatedAt = time.Now()
	}
	row := *ap
	row.Barber = models.Barber{}
	s.appointments = append(s.appointments, row)
	return nil
}

func (s *memoryStore) ListAppointments(_ context.Context, f domain.ListFilter) ([]models.Appointment, error) {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listErr != nil {
		return nil, s.listErr
	}

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
		if f.ServiceType != nil && ap.ServiceType != string(*f.ServiceType) {
			continue
		}
		ap.Barber = s.barberLocked(ap.BarberID)
		out = append(out, ap)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppointmentDate.Before(out[j].AppointmentDate)
	})
	return out, nil
}

func (s *memoryStore) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ap := range s.appointments {
		if ap.ID == id {
			ap.Barber = s.barberLocked(ap.BarberID)
			return &ap, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *memoryStore) DeleteAppointment(_ context.Context, id uint) error {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, ap := range s.appointments {
		if ap.ID == id {
			s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
			s.writes++
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *memoryStore) barberLocked(id uint) models.Barber {
	for _, b := range s.barbers {
		if b.ID == id {
			return b
		}
	}
	return models.Barber{}
}

// -------- schedule.Repository --------

func (s *memoryStore) GetBlockedDate(_ context.Context, date string) (*models.BlockedDate, error) {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blocked[date], nil
}

func (s *memoryStore) ListBlockedDates(context.Context, string) ([]models.BlockedDate, error) {
	return nil, nil
}

func (s *memoryStore) InsertBlockedDate(_ context.Context, bd *models.BlockedDate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocked[bd.BlockedDate] = bd
	return nil
}

func (s *memoryStore) DeleteBlockedDate(context.Context, uint) error { return nil }

func (s *memoryStore) GetScheduleOverride(_ context.Context, date string) (*models.ScheduleOverride, error) {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overrides[date], nil
}

func (s *memoryStore) ListScheduleOverrides(context.Context, string) ([]models.ScheduleOverride, error) {
	return nil, nil
}

func (s *memoryStore) UpsertScheduleOverride(_ context.Context, o *models.ScheduleOverride) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[o.OverrideDate] = o
	return nil
}

func (s *memoryStore) DeleteScheduleOverride(context.Context, uint) error { return nil }
