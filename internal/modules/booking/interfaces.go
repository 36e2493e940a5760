package booking

import (
	"context"

	"salonbook/internal/domain"
)

// BookingRepository defines the store operations the booking flows need.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetAll(ctx context.Context) ([]domain.Booking, error)
	GetByCustomerEmail(ctx context.Context, email string) ([]domain.Booking, error)
	BookedTimes(ctx context.Context, workerID int64, date string) ([]string, error)
	CountActiveAt(ctx context.Context, workerID int64, date, timeLabel string) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Delete(ctx context.Context, id int64) error
}

type WorkerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Worker, error)
}

type SalonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Salon, error)
}
