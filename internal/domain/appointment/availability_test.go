package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
)

func mustRanges(t *testing.T, raw string) []schedule.Range {
	t.Helper()
	r, err := schedule.ParseRanges(raw)
	require.NoError(t, err)
	return r
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation(schedule.DateLayout, s, time.UTC)
	require.NoError(t, err)
	return d
}

func times(slots []DaySlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Time)
	}
	return out
}

func TestResolveDaySlots_HalfOpenRanges(t *testing.T) {
	d := day(t, "2030-01-07")
	slots := ResolveDaySlots(DayInput{
		Date:         d,
		Plan:         schedule.Day{Ranges: mustRanges(t, "09:00-10:00,17:30-18:30")},
		SlotDuration: 30 * time.Minute,
		BarberCount:  2,
		Now:          d,
	})

	assert.Equal(t, []string{"09:00", "09:30", "17:30", "18:00"}, times(slots))
	for _, s := range slots {
		assert.True(t, s.Selectable)
		assert.Zero(t, s.BookedCount)
	}
}

func TestResolveDaySlots_ClosedDayUsesRealBarberCount(t *testing.T) {
	d := day(t, "2030-01-07")
	slots := ResolveDaySlots(DayInput{
		Date:         d,
		Plan:         schedule.Day{Ranges: mustRanges(t, "09:00-10:00"), Closed: true},
		SlotDuration: 30 * time.Minute,
		BarberCount:  3,
		Now:          d,
	})

	require.Len(t, slots, 2)
	for _, s := range slots {
		assert.False(t, s.Selectable)
		assert.Equal(t, 3, s.BookedCount)
	}
}

func TestResolveDaySlots_CapacityRule(t *testing.T) {
	d := day(t, "2030-01-07")
	nine := d.Add(9 * time.Hour)

	in := DayInput{
		Date:         d,
		Plan:         schedule.Day{Ranges: mustRanges(t, "09:00-10:00")},
		SlotDuration: 30 * time.Minute,
		BarberCount:  2,
		Booked:       []time.Time{nine},
		Now:          d,
	}

	slots := ResolveDaySlots(in)
	assert.Equal(t, DaySlot{Time: "09:00", BookedCount: 1, Selectable: true}, slots[0])

	in.Booked = append(in.Booked, nine)
	slots = ResolveDaySlots(in)
	assert.Equal(t, DaySlot{Time: "09:00", BookedCount: 2, Selectable: false}, slots[0])
	assert.Equal(t, DaySlot{Time: "09:30", BookedCount: 0, Selectable: true}, slots[1])
}

func TestResolveDaySlots_BookingInsideWindowCounts(t *testing.T) {
	d := day(t, "2030-01-07")
	slots := ResolveDaySlots(DayInput{
		Date:         d,
		Plan:         schedule.Day{Ranges: mustRanges(t, "09:00-10:00")},
		SlotDuration: 30 * time.Minute,
		BarberCount:  1,
		Booked:       []time.Time{d.Add(9*time.Hour + 45*time.Minute)},
		Now:          d,
	})

	assert.True(t, slots[0].Selectable)
	assert.False(t, slots[1].Selectable)
}

func TestResolveDaySlots_PastSlotsAreNotSelectable(t *testing.T) {
	d := day(t, "2030-01-07")
	slots := ResolveDaySlots(DayInput{
		Date:         d,
		Plan:         schedule.Day{Ranges: mustRanges(t, "09:00-10:30")},
		SlotDuration: 30 * time.Minute,
		BarberCount:  1,
		Now:          d.Add(9*time.Hour + 30*time.Minute),
	})

	assert.False(t, slots[0].Selectable)
	assert.True(t, slots[1].Selectable, "a slot starting exactly now is still open")
	assert.True(t, slots[2].Selectable)
}

func TestResolveDaySlots_NoBarbers(t *testing.T) {
	d := day(t, "2030-01-07")
	slots := ResolveDaySlots(DayInput{
		Date:         d,
		Plan:         schedule.Day{Ranges: mustRanges(t, "09:00-10:00")},
		SlotDuration: 30 * time.Minute,
		Now:          d,
	})

	for _, s := range slots {
		assert.False(t, s.Selectable)
	}
}

func TestResolveDaySlots_Idempotent(t *testing.T) {
	d := day(t, "2030-01-07")
	in := DayInput{
		Date:         d,
		Plan:         schedule.Day{Ranges: mustRanges(t, "09:00-13:00,17:30-22:30")},
		SlotDuration: 30 * time.Minute,
		BarberCount:  2,
		Booked:       []time.Time{d.Add(10 * time.Hour), d.Add(18 * time.Hour)},
		Now:          d,
	}

	assert.Equal(t, ResolveDaySlots(in), ResolveDaySlots(in))
}

func TestFailClosedSlots(t *testing.T) {
	cfg := schedule.Config{Ranges: mustRanges(t, "09:00-10:00"), SlotDuration: 30 * time.Minute}
	slots := FailClosedSlots(cfg, 2)

	assert.Equal(t, []string{"09:00", "09:30"}, times(slots))
	for _, s := range slots {
		assert.False(t, s.Selectable)
	}
}
