package booking

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"nourishcoach/internal/timegrid"
)

func setupMock(t *testing.T) (Ledger, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	ledger := NewPostgresLedger(sqlxDB)

	closer := func() {
		sqlxDB.Close()
	}

	return ledger, mock, closer
}

func TestTryCommitInsertsRow(t *testing.T) {
	ledger, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments (appt_date, appt_time, client_name, client_phone, client_email, goal, notes) VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT (appt_date, appt_time) DO NOTHING RETURNING id, created_at")).
		WithArgs("2026-08-29", "11:00", "Asha Patel", "+919913348004", "asha@example.com", "Weight Loss", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, now))

	appt := &Appointment{
		Date:  "2026-08-29",
		Time:  "11:00",
		Name:  "Asha Patel",
		Phone: "+919913348004",
		Email: "asha@example.com",
		Goal:  "Weight Loss",
	}

	committed, err := ledger.TryCommit(context.Background(), appt)
	require.NoError(t, err)
	require.True(t, committed)
	require.Equal(t, 7, appt.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTryCommitConflictReturnsNoRows(t *testing.T) {
	ledger, mock, close := setupMock(t)
	defer close()

	// ON CONFLICT DO NOTHING produces an empty result set for the loser.
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WithArgs("2026-08-29", "11:00", "B", "+919913348004", "", "", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}))

	appt := &Appointment{Date: "2026-08-29", Time: "11:00", Name: "B", Phone: "+919913348004"}

	committed, err := ledger.TryCommit(context.Background(), appt)
	require.NoError(t, err)
	require.False(t, committed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIsBooked(t *testing.T) {
	ledger, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS( SELECT 1 FROM appointments WHERE appt_date = $1 AND appt_time = $2 )")).
		WithArgs("2026-08-29", "11:00").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	booked, err := ledger.IsBooked(context.Background(), "2026-08-29", timegrid.TimeOfDay{Hour: 11})
	require.NoError(t, err)
	require.True(t, booked)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookedTimesOrdered(t *testing.T) {
	ledger, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT appt_time FROM appointments WHERE appt_date = $1 ORDER BY appt_time ASC")).
		WithArgs("2026-08-29").
		WillReturnRows(sqlmock.NewRows([]string{"appt_time"}).AddRow("10:00").AddRow("14:30"))

	times, err := ledger.BookedTimes(context.Background(), "2026-08-29")
	require.NoError(t, err)
	require.Equal(t, []timegrid.TimeOfDay{{Hour: 10}, {Hour: 14, Minute: 30}}, times)
	require.NoError(t, mock.ExpectationsWereMet())
}
