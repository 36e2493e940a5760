package repository

import (
	"context"

	"gorm.io/gorm"

	"salonbook/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) GetAll(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Order("date DESC, time DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) GetByCustomerEmail(ctx context.Context, email string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Where("customer_email = ?", email).
		Order("date DESC").
		Find(&bookings).Error
	return bookings, err
}

// BookedTimes returns the occupied time labels for a worker on a date,
// ascending. Only pending and confirmed bookings hold a slot.
func (r *BookingRepository) BookedTimes(ctx context.Context, workerID int64, date string) ([]string, error) {
	var times []string
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("worker_id = ? AND date = ? AND status IN ?",
			workerID, date, []string{"pending", "confirmed"}).
		Order("time").
		Pluck("time", &times).Error
	return times, err
}

// CountActiveAt counts occupying bookings at an exact (worker, date, time).
func (r *BookingRepository) CountActiveAt(ctx context.Context, workerID int64, date, timeLabel string) (int64, error) {
	var cnt int64
	q := `
SELECT COUNT(1)
FROM bookings
WHERE worker_id = ?
  AND date = ?
  AND time = ?
  AND status IN ('pending', 'confirmed')
`
	tx := r.db.WithContext(ctx).Raw(q, workerID, date, timeLabel).Scan(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", id).
		Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Booking{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
