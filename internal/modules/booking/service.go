package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"salonbook/internal/domain"
)

const dateLayout = "2006-01-02"

const DefaultSlotStepMinutes = 30

type Service struct {
	bookings    BookingRepository
	workers     WorkerRepository
	salons      SalonRepository
	stepMinutes int
}

func NewService(bookings BookingRepository, workers WorkerRepository, salons SalonRepository, stepMinutes int) *Service {
	if stepMinutes <= 0 {
		stepMinutes = DefaultSlotStepMinutes
	}
	return &Service{
		bookings:    bookings,
		workers:     workers,
		salons:      salons,
		stepMinutes: stepMinutes,
	}
}

// Availability returns the bookable start labels for a worker on a date:
// the salon's slot grid minus times held by pending or confirmed bookings.
// Pure read; nothing is reserved. Past dates are accepted, hiding them is
// the picker's job.
func (s *Service) Availability(ctx context.Context, workerID int64, dateStr string) ([]string, error) {
	if _, err := time.Parse(dateLayout, dateStr); err != nil {
		return nil, ErrValidation
	}

	worker, err := s.workers.GetByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}

	salon, err := s.salons.GetByID(ctx, worker.SalonID)
	if err != nil {
		return nil, err
	}

	if salon.OpenTime == "" || salon.CloseTime == "" {
		return []string{}, nil
	}

	grid, err := slotGrid(salon.OpenTime, salon.CloseTime, s.stepMinutes)
	if err != nil {
		return nil, fmt.Errorf("salon %d operating hours: %w", salon.ID, err)
	}

	occupied, err := s.bookings.BookedTimes(ctx, workerID, dateStr)
	if err != nil {
		return nil, err
	}

	return freeSlots(grid, occupied), nil
}

// Create admits a booking for an exact slot. The count precheck rejects the
// common case; the partial unique index on (worker_id, date, time) for
// occupying statuses makes the loser of a concurrent race fail instead of
// silently double-booking.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, ErrValidation
	}
	if _, err := time.Parse(timeLayout, req.Time); err != nil {
		return nil, ErrValidation
	}

	if _, err := s.workers.GetByID(ctx, req.WorkerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}

	cnt, err := s.bookings.CountActiveAt(ctx, req.WorkerID, req.Date, req.Time)
	if err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, ErrSlotTaken
	}

	b := &domain.Booking{
		Reference:     uuid.NewString(),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		SalonID:       req.SalonID,
		WorkerID:      req.WorkerID,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Time:          req.Time,
		Status:        domain.BookingPending,
		Notes:         req.Notes,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if isDuplicateSlot(err) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	return b, nil
}

// SetStatus moves a booking to any of the enumerated statuses. There is no
// transition graph; completed -> pending is as legal as pending -> confirmed.
func (s *Service) SetStatus(ctx context.Context, id int64, status string) (*domain.Booking, error) {
	newStatus := domain.BookingStatus(status)
	if !newStatus.Valid() {
		return nil, ErrInvalidStatus
	}

	if err := s.bookings.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.bookings.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.GetAll(ctx)
}

func (s *Service) ListByCustomer(ctx context.Context, email string) ([]domain.Booking, error) {
	return s.bookings.GetByCustomerEmail(ctx, email)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.bookings.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// isDuplicateSlot recognizes a unique violation on idx_no_double_booking
// from either backend.
func isDuplicateSlot(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "idx_no_double_booking"
	}
	// modernc sqlite reports constraint violations by message only.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
