package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	// ErrDateConflict is returned when a candidate booking overlaps an
	// existing one, whether caught by the in-transaction check or by the
	// exclusion constraint on the bookings table.
	ErrDateConflict = errors.New("requested dates overlap an existing booking")

	ErrBookingNotFound = errors.New("booking not found")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetOverlapping(ctx context.Context, from, to time.Time) ([]DateRange, error) {
	query := `
		SELECT start_date, end_date
		FROM bookings
		WHERE start_date <= $2 AND end_date >= $1
	`

	var ranges []DateRange
	err := r.db.SelectContext(ctx, &ranges, query, from, to)
	if err != nil {
		return nil, err
	}

	return ranges, nil
}

// CreateBooking checks for overlap and inserts in one serializable
// transaction, so two racing admissions for overlapping ranges cannot both
// pass the check. The exclusion constraint on the table backstops the
// transaction; its violation is reported as ErrDateConflict too.
func (r *repository) CreateBooking(ctx context.Context, b *Booking) error {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	checkQuery := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE start_date <= $2 AND end_date >= $1
		)
	`
	if err := tx.GetContext(ctx, &exists, checkQuery, b.StartDate, b.EndDate); err != nil {
		return err
	}
	if exists {
		return ErrDateConflict
	}

	insertQuery := `
		INSERT INTO bookings (start_date, end_date, technology, client_name, mode, location, cost_per_day, outline_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err = tx.QueryRowxContext(ctx, insertQuery,
		b.StartDate, b.EndDate, b.Technology, b.ClientName, b.Mode, b.Location, b.CostPerDay, b.OutlinePath,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		if isOverlapViolation(err) {
			return ErrDateConflict
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		if isOverlapViolation(err) {
			return ErrDateConflict
		}
		return err
	}

	return nil
}

func (r *repository) GetBookingByID(ctx context.Context, id int) (*Booking, error) {
	query := `
		SELECT id, start_date, end_date, technology, client_name, mode, location, cost_per_day, outline_path, created_at
		FROM bookings
		WHERE id = $1
	`

	var booking Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return &booking, nil
}

// 23P01 is exclusion_violation, raised by the daterange exclusion
// constraint when a racing insert slipped past the check.
func isOverlapViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23P01"
}
