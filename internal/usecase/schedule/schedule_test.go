package schedule

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type memoryRepo struct {
	mu        sync.Mutex
	nextID    uint
	blocked   []models.BlockedDate
	overrides []models.ScheduleOverride
	err       error
}

var _ domain.Repository = (*memoryRepo)(nil)

func (r *memoryRepo) GetBlockedDate(_ context.Context, date string) (*models.BlockedDate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.blocked {
		if b.BlockedDate == date {
			return &b, nil
		}
	}
	return nil, nil
}

func (r *memoryRepo) ListBlockedDates(_ context.Context, from string) ([]models.BlockedDate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []models.BlockedDate
	for _, b := range r.blocked {
		if b.BlockedDate >= from {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BlockedDate < out[j].BlockedDate })
	return out, nil
}

func (r *memoryRepo) InsertBlockedDate(_ context.Context, bd *models.BlockedDate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.blocked {
		if b.BlockedDate == bd.BlockedDate {
			return domain.ErrDuplicateDate
		}
	}
	r.nextID++
	bd.ID = r.nextID
	r.blocked = append(r.blocked, *bd)
	return nil
}

func (r *memoryRepo) DeleteBlockedDate(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.blocked {
		if b.ID == id {
			r.blocked = append(r.blocked[:i], r.blocked[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memoryRepo) GetScheduleOverride(_ context.Context, date string) (*models.ScheduleOverride, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.overrides {
		if o.OverrideDate == date {
			return &o, nil
		}
	}
	return nil, nil
}

func (r *memoryRepo) ListScheduleOverrides(_ context.Context, from string) ([]models.ScheduleOverride, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ScheduleOverride
	for _, o := range r.overrides {
		if o.OverrideDate >= from {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OverrideDate < out[j].OverrideDate })
	return out, nil
}

func (r *memoryRepo) UpsertScheduleOverride(_ context.Context, o *models.ScheduleOverride) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for i, existing := range r.overrides {
		if existing.OverrideDate == o.OverrideDate {
			o.ID = existing.ID
			r.overrides[i] = *o
			return nil
		}
	}
	r.nextID++
	o.ID = r.nextID
	r.overrides = append(r.overrides, *o)
	return nil
}

func (r *memoryRepo) DeleteScheduleOverride(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, o := range r.overrides {
		if o.ID == id {
			r.overrides = append(r.overrides[:i], r.overrides[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ======================================================
// Blocked dates
// ======================================================

func TestBlockDate_CreateListDelete(t *testing.T) {
	repo := &memoryRepo{}
	ctx := context.Background()

	_, err := NewBlockDate(repo, nil).Execute(ctx, BlockDateInput{Date: "2030-02-01", Reason: " Vacaciones "})
	require.NoError(t, err)
	bd, err := NewBlockDate(repo, nil).Execute(ctx, BlockDateInput{Date: "2030-01-07"})
	require.NoError(t, err)
	assert.Nil(t, bd.Reason)

	list, err := NewListBlockedDates(repo).Execute(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2030-01-07", list[0].BlockedDate)
	require.NotNil(t, list[1].Reason)
	assert.Equal(t, "Vacaciones", *list[1].Reason)

	list, err = NewListBlockedDates(repo).Execute(ctx, "2030-01-15")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, NewUnblockDate(repo, nil).Execute(ctx, bd.ID))
	err = NewUnblockDate(repo, nil).Execute(ctx, bd.ID)
	assert.True(t, httperr.IsBusiness(err, CodeBlockedNotFound))
}

func TestBlockDate_Duplicate(t *testing.T) {
	repo := &memoryRepo{}
	ctx := context.Background()

	_, err := NewBlockDate(repo, nil).Execute(ctx, BlockDateInput{Date: "2030-01-07"})
	require.NoError(t, err)

	_, err = NewBlockDate(repo, nil).Execute(ctx, BlockDateInput{Date: "2030-01-07"})
	assert.True(t, httperr.IsBusiness(err, CodeDateAlreadyBlocked))
}

func TestBlockDate_InvalidDate(t *testing.T) {
	_, err := NewBlockDate(&memoryRepo{}, nil).Execute(context.Background(), BlockDateInput{Date: "07-01-2030"})
	assert.True(t, httperr.IsBusiness(err, CodeInvalidDate))
}

func TestListBlockedDates_StoreError(t *testing.T) {
	repo := &memoryRepo{err: errors.New("timeout")}
	_, err := NewListBlockedDates(repo).Execute(context.Background(), "")
	assert.True(t, httperr.IsBusiness(err, CodeStoreUnavailable))
}

// ======================================================
// Overrides
// ======================================================

func TestSaveOverride_UpsertByDate(t *testing.T) {
	repo := &memoryRepo{}
	ctx := context.Background()

	first, err := NewSaveOverride(repo, nil).Execute(ctx, SaveOverrideInput{
		Date:      "2030-01-07",
		StartTime: "10:00",
		EndTime:   "14:00",
	})
	require.NoError(t, err)
	require.NotNil(t, first.StartTime)
	assert.Equal(t, "10:00", *first.StartTime)

	second, err := NewSaveOverride(repo, nil).Execute(ctx, SaveOverrideInput{
		Date:      "2030-01-07",
		StartTime: "11:00",
		EndTime:   "12:00",
		Reason:    "Capacitación",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	list, err := NewListOverrides(repo).Execute(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "11:00", *list[0].StartTime)
}

func TestSaveOverride_ClosedStoresNoHours(t *testing.T) {
	repo := &memoryRepo{}

	o, err := NewSaveOverride(repo, nil).Execute(context.Background(), SaveOverrideInput{
		Date:      "2024-06-10",
		StartTime: "10:00",
		EndTime:   "09:00",
		IsClosed:  true,
	})
	require.NoError(t, err)
	assert.True(t, o.IsClosed)
	assert.Nil(t, o.StartTime)
	assert.Nil(t, o.EndTime)
}

func TestSaveOverride_RequiresStartBeforeEnd(t *testing.T) {
	repo := &memoryRepo{}
	ctx := context.Background()

	for _, in := range []SaveOverrideInput{
		{Date: "2030-01-07", StartTime: "14:00", EndTime: "10:00"},
		{Date: "2030-01-07", StartTime: "10:00", EndTime: "10:00"},
		{Date: "2030-01-07"},
	} {
		_, err := NewSaveOverride(repo, nil).Execute(ctx, in)
		assert.True(t, httperr.IsBusiness(err, CodeInvalidTimeRange))
	}
	assert.Empty(t, repo.overrides)
}

func TestDeleteOverride(t *testing.T) {
	repo := &memoryRepo{}
	ctx := context.Background()

	o, err := NewSaveOverride(repo, nil).Execute(ctx, SaveOverrideInput{Date: "2030-01-07", IsClosed: true})
	require.NoError(t, err)

	require.NoError(t, NewDeleteOverride(repo, nil).Execute(ctx, o.ID))
	err = NewDeleteOverride(repo, nil).Execute(ctx, o.ID)
	assert.True(t, httperr.IsBusiness(err, CodeOverrideNotFound))
}
