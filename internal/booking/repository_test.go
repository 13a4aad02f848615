package booking

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() {
		sqlxDB.Close()
	}

	return repo, mock, closer
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestGetOverlapping(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	from := mustDate(t, "2024-03-09")
	to := mustDate(t, "2024-03-13")

	rows := sqlmock.NewRows([]string{"start_date", "end_date"}).
		AddRow(mustDate(t, "2024-03-10"), mustDate(t, "2024-03-12"))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT start_date, end_date FROM bookings WHERE start_date <= $2 AND end_date >= $1")).
		WithArgs(from, to).
		WillReturnRows(rows)

	ranges, err := repo.GetOverlapping(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	require.Equal(t, mustDate(t, "2024-03-10"), ranges[0].StartDate)
	require.Equal(t, mustDate(t, "2024-03-12"), ranges[0].EndDate)
}

func TestRepositoryCreateBooking(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	b := &Booking{
		StartDate:  mustDate(t, "2024-04-01"),
		EndDate:    mustDate(t, "2024-04-02"),
		Technology: "Kubernetes",
		ClientName: "Acme Corp",
		Mode:       "on-site",
		CostPerDay: 900,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS( SELECT 1 FROM bookings WHERE start_date <= $2 AND end_date >= $1 )")).
		WithArgs(b.StartDate, b.EndDate).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings (start_date, end_date, technology, client_name, mode, location, cost_per_day, outline_path) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at")).
		WithArgs(b.StartDate, b.EndDate, b.Technology, b.ClientName, b.Mode, nil, b.CostPerDay, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(3, time.Now()))
	mock.ExpectCommit()

	err := repo.CreateBooking(context.Background(), b)
	require.NoError(t, err)
	require.Equal(t, 3, b.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreateBookingConflict(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	b := &Booking{
		StartDate: mustDate(t, "2024-03-11"),
		EndDate:   mustDate(t, "2024-03-15"),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS( SELECT 1 FROM bookings WHERE start_date <= $2 AND end_date >= $1 )")).
		WithArgs(b.StartDate, b.EndDate).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := repo.CreateBooking(context.Background(), b)
	require.ErrorIs(t, err, ErrDateConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingExclusionViolation(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	b := &Booking{
		StartDate: mustDate(t, "2024-03-11"),
		EndDate:   mustDate(t, "2024-03-15"),
	}

	// Racing insert slipped past the check; the exclusion constraint fires.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS( SELECT 1 FROM bookings WHERE start_date <= $2 AND end_date >= $1 )")).
		WithArgs(b.StartDate, b.EndDate).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: "23P01"})
	mock.ExpectRollback()

	err := repo.CreateBooking(context.Background(), b)
	require.ErrorIs(t, err, ErrDateConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBookingByID(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	location := "Berlin"
	outline := "1712000000000000000-outline.pdf"

	rows := sqlmock.NewRows([]string{"id", "start_date", "end_date", "technology", "client_name", "mode", "location", "cost_per_day", "outline_path", "created_at"}).
		AddRow(7, mustDate(t, "2024-04-01"), mustDate(t, "2024-04-02"), "Go", "Acme Corp", "on-site", location, 750.0, outline, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, start_date, end_date, technology, client_name, mode, location, cost_per_day, outline_path, created_at FROM bookings WHERE id = $1")).
		WithArgs(7).
		WillReturnRows(rows)

	got, err := repo.GetBookingByID(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, 7, got.ID)
	require.Equal(t, mustDate(t, "2024-04-01"), got.StartDate)
	require.Equal(t, mustDate(t, "2024-04-02"), got.EndDate)
	require.NotNil(t, got.OutlinePath)
	require.Equal(t, outline, *got.OutlinePath)
}

func TestGetBookingByIDNotFound(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery("SELECT id, start_date, end_date").
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetBookingByID(context.Background(), 99)
	require.ErrorIs(t, err, ErrBookingNotFound)
}
