package schedule

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BlockDateInput struct {
	Date   string
	Reason string
}

// ======================================================
// BLOCK
// ======================================================

type BlockDate struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBlockDate(repo domain.Repository, audit *audit.Dispatcher) *BlockDate {
	return &BlockDate{repo: repo, audit: audit}
}

func (uc *BlockDate) Execute(ctx context.Context, in BlockDateInput) (*models.BlockedDate, error) {
	date, err := normalizeDate(in.Date)
	if err != nil {
		return nil, err
	}

	bd := &models.BlockedDate{
		BlockedDate: date,
		Reason:      optional(in.Reason),
	}

	if err := uc.repo.InsertBlockedDate(ctx, bd); err != nil {
		if errors.Is(err, domain.ErrDuplicateDate) {
			return nil, httperr.Wrap(CodeDateAlreadyBlocked, err)
		}
		return nil, httperr.Wrap(CodeStoreUnavailable, err)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionDateBlocked,
		Entity:   "blocked_date",
		EntityID: &bd.ID,
		Metadata: map[string]any{"date": date},
	})

	return bd, nil
}

// ======================================================
// UNBLOCK
// ======================================================

type UnblockDate struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUnblockDate(repo domain.Repository, audit *audit.Dispatcher) *UnblockDate {
	return &UnblockDate{repo: repo, audit: audit}
}

func (uc *UnblockDate) Execute(ctx context.Context, id uint) error {
	if err := uc.repo.DeleteBlockedDate(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrBusiness(CodeBlockedNotFound)
		}
		return httperr.Wrap(CodeStoreUnavailable, err)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionDateUnblocked,
		Entity:   "blocked_date",
		EntityID: &id,
	})
	return nil
}

// ======================================================
// LIST
// ======================================================

type ListBlockedDates struct {
	repo domain.Repository
}

func NewListBlockedDates(repo domain.Repository) *ListBlockedDates {
	return &ListBlockedDates{repo: repo}
}

// Execute lists blocked dates on or after from; an empty from lists all.
func (uc *ListBlockedDates) Execute(ctx context.Context, from string) ([]models.BlockedDate, error) {
	if from != "" {
		var err error
		if from, err = normalizeDate(from); err != nil {
			return nil, err
		}
	}

	list, err := uc.repo.ListBlockedDates(ctx, from)
	if err != nil {
		return nil, httperr.Wrap(CodeStoreUnavailable, err)
	}
	if list == nil {
		list = []models.BlockedDate{}
	}
	return list, nil
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func normalizeDate(raw string) (string, error) {
	d, err := time.Parse(domain.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return "", httperr.ErrBusiness(CodeInvalidDate)
	}
	return d.Format(domain.DateLayout), nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
