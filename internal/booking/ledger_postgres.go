package booking

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"nourishcoach/internal/timegrid"
)

type postgresLedger struct {
	db *sqlx.DB
}

func NewPostgresLedger(db *sqlx.DB) Ledger {
	return &postgresLedger{db: db}
}

func (r *postgresLedger) IsBooked(ctx context.Context, date string, t timegrid.TimeOfDay) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM appointments
			WHERE appt_date = $1 AND appt_time = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, date, t.String())
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *postgresLedger) BookedTimes(ctx context.Context, date string) ([]timegrid.TimeOfDay, error) {
	query := `
		SELECT appt_time
		FROM appointments
		WHERE appt_date = $1
		ORDER BY appt_time ASC
	`

	var raw []string
	err := r.db.SelectContext(ctx, &raw, query, date)
	if err != nil {
		return nil, err
	}

	times := make([]timegrid.TimeOfDay, 0, len(raw))
	for _, s := range raw {
		t, err := timegrid.Parse(s)
		if err != nil {
			return nil, err
		}
		times = append(times, t)
	}

	return times, nil
}

// TryCommit relies on the unique (appt_date, appt_time) constraint: two
// clients that both observed the slot as available race on the insert and the
// loser sees zero returned rows. No check-then-act window exists.
func (r *postgresLedger) TryCommit(ctx context.Context, appt *Appointment) (bool, error) {
	query := `
		INSERT INTO appointments (appt_date, appt_time, client_name, client_phone, client_email, goal, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (appt_date, appt_time) DO NOTHING
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		appt.Date, appt.Time, appt.Name, appt.Phone, appt.Email, appt.Goal, appt.Notes,
	).Scan(&appt.ID, &appt.CreatedAt)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
