package schedule

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type SaveOverrideInput struct {
	Date      string
	StartTime string
	EndTime   string
	IsClosed  bool
	Reason    string
}

// ======================================================
// UPSERT
// ======================================================

type SaveOverride struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSaveOverride(repo domain.Repository, audit *audit.Dispatcher) *SaveOverride {
	return &SaveOverride{repo: repo, audit: audit}
}

// Execute creates or replaces the override of in.Date. Closed overrides
// carry no hours.
func (uc *SaveOverride) Execute(ctx context.Context, in SaveOverrideInput) (*models.ScheduleOverride, error) {
	date, err := normalizeDate(in.Date)
	if err != nil {
		return nil, err
	}

	o := &models.ScheduleOverride{
		OverrideDate: date,
		IsClosed:     in.IsClosed,
		Reason:       optional(in.Reason),
	}

	if !in.IsClosed {
		r, err := domain.NewRange(in.StartTime, in.EndTime)
		if err != nil {
			return nil, httperr.Wrap(CodeInvalidTimeRange, err)
		}
		start, end := r.Start.String(), r.End.String()
		o.StartTime = &start
		o.EndTime = &end
	}

	if err := uc.repo.UpsertScheduleOverride(ctx, o); err != nil {
		return nil, httperr.Wrap(CodeStoreUnavailable, err)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionOverrideSaved,
		Entity:   "schedule_override",
		EntityID: &o.ID,
		Metadata: map[string]any{
			"date":      date,
			"is_closed": o.IsClosed,
		},
	})

	return o, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteOverride struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteOverride(repo domain.Repository, audit *audit.Dispatcher) *DeleteOverride {
	return &DeleteOverride{repo: repo, audit: audit}
}

func (uc *DeleteOverride) Execute(ctx context.Context, id uint) error {
	if err := uc.repo.DeleteScheduleOverride(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrBusiness(CodeOverrideNotFound)
		}
		return httperr.Wrap(CodeStoreUnavailable, err)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionOverrideDeleted,
		Entity:   "schedule_override",
		EntityID: &id,
	})
	return nil
}

// ======================================================
// LIST
// ======================================================

type ListOverrides struct {
	repo domain.Repository
}

func NewListOverrides(repo domain.Repository) *ListOverrides {
	return &ListOverrides{repo: repo}
}

func (uc *ListOverrides) Execute(ctx context.Context, from string) ([]models.ScheduleOverride, error) {
	if from != "" {
		var err error
		if from, err = normalizeDate(from); err != nil {
			return nil, err
		}
	}

	list, err := uc.repo.ListScheduleOverrides(ctx, from)
	if err != nil {
		return nil, httperr.Wrap(CodeStoreUnavailable, err)
	}
	if list == nil {
		list = []models.ScheduleOverride{}
	}
	return list, nil
}
