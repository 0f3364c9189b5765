package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

var _ schedule.Repository = (*ScheduleGormRepository)(nil)

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Blocked dates
// --------------------------------------------------

func (r *ScheduleGormRepository) GetBlockedDate(
	ctx context.Context,
	date string,
) (*models.BlockedDate, error) {

	var bd models.BlockedDate
	err := r.db.WithContext(ctx).
		Where("blocked_date = ?", date).
		First(&bd).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bd, nil
}

func (r *ScheduleGormRepository) ListBlockedDates(
	ctx context.Context,
	from string,
) ([]models.BlockedDate, error) {

	q := r.db.WithContext(ctx)
	if from != "" {
		q = q.Where("blocked_date >= ?", from)
	}

	var list []models.BlockedDate
	if err := q.Order("blocked_date ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ScheduleGormRepository) InsertBlockedDate(
	ctx context.Context,
	bd *models.BlockedDate,
) error {

	err := r.db.WithContext(ctx).Create(bd).Error
	if httperr.IsUniqueViolation(err) {
		return schedule.ErrDuplicateDate
	}
	return err
}

func (r *ScheduleGormRepository) DeleteBlockedDate(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.BlockedDate{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return schedule.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Schedule overrides
// --------------------------------------------------

func (r *ScheduleGormRepository) GetScheduleOverride(
	ctx context.Context,
	date string,
) (*models.ScheduleOverride, error) {

	var o models.ScheduleOverride
	err := r.db.WithContext(ctx).
		Where("override_date = ?", date).
		First(&o).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *ScheduleGormRepository) ListScheduleOverrides(
	ctx context.Context,
	from string,
) ([]models.ScheduleOverride, error) {

	q := r.db.WithContext(ctx)
	if from != "" {
		q = q.Where("override_date >= ?", from)
	}

	var list []models.ScheduleOverride
	if err := q.Order("override_date ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// UpsertScheduleOverride inserts or replaces the override of o.OverrideDate.
func (r *ScheduleGormRepository) UpsertScheduleOverride(
	ctx context.Context,
	o *models.ScheduleOverride,
) error {

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "override_date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"start_time",
				"end_time",
				"is_closed",
				"reason",
				"updated_at",
			}),
		}).
		Create(o).Error
}

func (r *ScheduleGormRepository) DeleteScheduleOverride(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.ScheduleOverride{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return schedule.ErrNotFound
	}
	return nil
}
