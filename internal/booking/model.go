package booking

import "time"

// Booking is a confirmed training engagement occupying an inclusive range
// of calendar days. Bookings are immutable once created.
type Booking struct {
	ID          int       `db:"id" json:"id"`
	StartDate   time.Time `db:"start_date" json:"startDate"`
	EndDate     time.Time `db:"end_date" json:"endDate"`
	Technology  string    `db:"technology" json:"technology"`
	ClientName  string    `db:"client_name" json:"clientName"`
	Mode        string    `db:"mode" json:"mode"`
	Location    *string   `db:"location" json:"location,omitempty"`
	CostPerDay  float64   `db:"cost_per_day" json:"costPerDay"`
	OutlinePath *string   `db:"outline_path" json:"outlinePath,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// DateRange carries only the date columns of a booking, which is all the
// availability calendar needs.
type DateRange struct {
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
}

// CreateBookingRequest is the typed shape of the JSON "data" form field on
// POST /book. Dates arrive as YYYY-MM-DD strings and are parsed at the
// boundary; a malformed costPerDay fails the JSON decode instead of being
// coerced.
type CreateBookingRequest struct {
	StartDate  string  `json:"startDate" validate:"required"`
	EndDate    string  `json:"endDate" validate:"required"`
	Technology string  `json:"technology" validate:"required"`
	ClientName string  `json:"clientName" validate:"required"`
	Mode       string  `json:"mode" validate:"required"`
	Location   string  `json:"location"`
	CostPerDay float64 `json:"costPerDay" validate:"gte=0"`
}

// AvailabilityDay is one entry of the per-day calendar returned by
// GET /availability.
type AvailabilityDay struct {
	Date   string `json:"date"`
	Booked bool   `json:"booked"`
}
