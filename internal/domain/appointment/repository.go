package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// CountFilter selects appointments of one service type whose start lies in [From, To).
type CountFilter struct {
	BarberID    *uint
	ServiceType ServiceType
	From        time.Time
	To          time.Time
}

// ListFilter selects appointments whose start lies in [From, To) when set.
type ListFilter struct {
	From        *time.Time
	To          *time.Time
	BarberID    *uint
	ServiceType *ServiceType
}

type Repository interface {
	// -------- Barbers --------
	ListBarbers(ctx context.Context) ([]models.Barber, error)

	// -------- Appointment (conflict) --------
	CountAppointments(ctx context.Context, f CountFilter) (int64, error)

	// InsertAppointment returns ErrSlotTaken when the unique index rejects the row.
	InsertAppointment(ctx context.Context, ap *models.Appointment) error

	// -------- Appointment (read / cancel) --------
	ListAppointments(ctx context.Context, f ListFilter) ([]models.Appointment, error)
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, id uint) error
}
