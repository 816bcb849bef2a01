package booking

import (
	"context"

	"nourishcoach/internal/timegrid"
)

// Ledger is the authoritative record of booked slots, keyed by date.
// TryCommit is the only mutator; there is no cancel operation and entries are
// never expired.
type Ledger interface {
	// IsBooked reports whether the (date, time) pair is already committed.
	IsBooked(ctx context.Context, date string, t timegrid.TimeOfDay) (bool, error)

	// BookedTimes returns every committed time for the date, ascending.
	BookedTimes(ctx context.Context, date string) ([]timegrid.TimeOfDay, error)

	// TryCommit atomically inserts the appointment unless its slot is taken.
	// committed=false with a nil error means the slot was already booked;
	// re-committing never changes ledger state.
	TryCommit(ctx context.Context, appt *Appointment) (committed bool, err error)
}
