package schedule

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var (
	ErrNotFound      = errors.New("schedule.repository: record not found")
	ErrDuplicateDate = errors.New("schedule.repository: date already registered")
)

// Repository is the store contract for blocked dates and overrides.
// Dates are "YYYY-MM-DD" strings. Get* return (nil, nil) when nothing exists.
type Repository interface {
	GetBlockedDate(ctx context.Context, date string) (*models.BlockedDate, error)
	ListBlockedDates(ctx context.Context, from string) ([]models.BlockedDate, error)
	InsertBlockedDate(ctx context.Context, bd *models.BlockedDate) error
	DeleteBlockedDate(ctx context.Context, id uint) error

	GetScheduleOverride(ctx context.Context, date string) (*models.ScheduleOverride, error)
	ListScheduleOverrides(ctx context.Context, from string) ([]models.ScheduleOverride, error)
	UpsertScheduleOverride(ctx context.Context, o *models.ScheduleOverride) error
	DeleteScheduleOverride(ctx context.Context, id uint) error
}
