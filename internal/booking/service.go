package booking

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/satyensinh/trainer-booking-backend/internal/logger"
	"github.com/satyensinh/trainer-booking-backend/internal/metrics"
	"github.com/satyensinh/trainer-booking-backend/internal/storage"
)

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDateRange = errors.New("endDate must not be before startDate")
)

// Notifier delivers a heads-up about a newly admitted booking.
type Notifier interface {
	SendBookingNotification(ctx context.Context, to, clientName, technology, startDate, endDate string) error
}

type Service interface {
	GetAvailability(ctx context.Context, fromStr, toStr string) ([]AvailabilityDay, error)
	CreateBooking(ctx context.Context, req CreateBookingRequest, outline *multipart.FileHeader) (*Booking, error)
	GetBooking(ctx context.Context, id int) (*Booking, error)
}

type service struct {
	repo        Repository
	store       storage.Store
	notifier    Notifier
	notifyEmail string
}

func NewService(repo Repository, store storage.Store, notifier Notifier, notifyEmail string) Service {
	return &service{
		repo:        repo,
		store:       store,
		notifier:    notifier,
		notifyEmail: notifyEmail,
	}
}

// GetAvailability returns one {date, booked} entry per calendar day of the
// inclusive range [fromStr, toStr]. An inverted range is answered with an
// empty calendar rather than an error.
func (s *service) GetAvailability(ctx context.Context, fromStr, toStr string) ([]AvailabilityDay, error) {
	from, err := ParseDate(fromStr)
	if err != nil {
		return nil, ErrInvalidDate
	}
	to, err := ParseDate(toStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	metrics.RecordAvailabilityCheck()

	if from.After(to) {
		return []AvailabilityDay{}, nil
	}

	booked, err := s.repo.GetOverlapping(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return BuildCalendar(from, to, booked), nil
}

// CreateBooking validates the candidate, stores the optional outline file,
// and admits the booking through the conflict-checked insert.
func (s *service) CreateBooking(ctx context.Context, req CreateBookingRequest, outline *multipart.FileHeader) (*Booking, error) {
	start, err := ParseDate(req.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	end, err := ParseDate(req.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	b := &Booking{
		StartDate:  start,
		EndDate:    end,
		Technology: req.Technology,
		ClientName: req.ClientName,
		Mode:       req.Mode,
		CostPerDay: req.CostPerDay,
	}
	if req.Location != "" {
		b.Location = &req.Location
	}

	if outline != nil {
		path, err := s.store.Save(outline)
		if err != nil {
			return nil, err
		}
		b.OutlinePath = &path
		metrics.RecordUpload("outline")
	}

	if err := s.repo.CreateBooking(ctx, b); err != nil {
		if b.OutlinePath != nil {
			// The stored outline is orphaned now. Names are unique, so it
			// will never block a later insert.
			logger.WithError(err).Error("booking insert failed after outline was stored", "outline", *b.OutlinePath)
		}
		if errors.Is(err, ErrDateConflict) {
			metrics.RecordBooking("conflict")
		}
		return nil, err
	}

	metrics.RecordBooking("created")

	if s.notifier != nil && s.notifyEmail != "" {
		if err := s.notifier.SendBookingNotification(ctx, s.notifyEmail, b.ClientName, b.Technology, req.StartDate, req.EndDate); err != nil {
			logger.WithError(err).Error("failed to queue booking notification")
		}
	}

	return b, nil
}

func (s *service) GetBooking(ctx context.Context, id int) (*Booking, error) {
	return s.repo.GetBookingByID(ctx, id)
}
