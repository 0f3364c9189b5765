package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
)

// DaySlot is one entry of the availability grid.
type DaySlot struct {
	Time        string `json:"time"`
	BookedCount int    `json:"booked_count"`
	Selectable  bool   `json:"selectable"`
}

// DayAvailability is the grid of a date plus the state it was computed from.
type DayAvailability struct {
	Date     string    `json:"date"`
	Closed   bool      `json:"closed"`
	Reason   string    `json:"reason,omitempty"`
	Degraded bool      `json:"degraded"`
	Slots    []DaySlot `json:"slots"`
}

// DayInput carries everything the resolver needs. Date is midnight of the
// calendar day in the shop location; Booked holds the start of every timed
// appointment of that day across all barbers.
type DayInput struct {
	Date         time.Time
	Plan         schedule.Day
	SlotDuration time.Duration
	BarberCount  int
	Booked       []time.Time
	Now          time.Time
}

// ResolveDaySlots builds the ordered grid of a day. It is pure: the same
// input always yields the same grid.
func ResolveDaySlots(in DayInput) []DaySlot {
	clocks := schedule.Slots(in.Plan.Ranges, in.SlotDuration)
	out := make([]DaySlot, 0, len(clocks))

	for _, c := range clocks {
		if in.Plan.Closed {
			out = append(out, DaySlot{
				Time:        c.String(),
				BookedCount: in.BarberCount,
				Selectable:  false,
			})
			continue
		}

		start := c.On(in.Date)
		booked := countInWindow(in.Booked, start, start.Add(in.SlotDuration))

		out = append(out, DaySlot{
			Time:        c.String(),
			BookedCount: booked,
			Selectable:  booked < in.BarberCount && !start.Before(in.Now),
		})
	}

	return out
}

// FailClosedSlots renders the default grid with nothing selectable. It is
// what clients see when the store cannot be read.
func FailClosedSlots(cfg schedule.Config, barberCount int) []DaySlot {
	clocks := schedule.Slots(cfg.Ranges, cfg.SlotDuration)
	out := make([]DaySlot, 0, len(clocks))
	for _, c := range clocks {
		out = append(out, DaySlot{
			Time:        c.String(),
			BookedCount: barberCount,
			Selectable:  false,
		})
	}
	return out
}

// countInWindow counts starts in [from, to).
func countInWindow(starts []time.Time, from, to time.Time) int {
	n := 0
	for _, s := range starts {
		if !s.Before(from) && s.Before(to) {
			n++
		}
	}
	return n
}
