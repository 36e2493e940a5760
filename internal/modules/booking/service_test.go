package booking

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"salonbook/internal/domain"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && args.Error(0) == nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByCustomerEmail(ctx context.Context, email string) ([]domain.Booking, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) BookedTimes(ctx context.Context, workerID int64, date string) ([]string, error) {
	args := m.Called(ctx, workerID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBookingRepository) CountActiveAt(ctx context.Context, workerID int64, date, timeLabel string) (int64, error) {
	args := m.Called(ctx, workerID, date, timeLabel)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockWorkerRepository struct {
	mock.Mock
}

func (m *MockWorkerRepository) GetByID(ctx context.Context, id int64) (*domain.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}

type MockSalonRepository struct {
	mock.Mock
}

func (m *MockSalonRepository) GetByID(ctx context.Context, id int64) (*domain.Salon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Salon), args.Error(1)
}

func newTestService() (*Service, *MockBookingRepository, *MockWorkerRepository, *MockSalonRepository) {
	mockBookings := new(MockBookingRepository)
	mockWorkers := new(MockWorkerRepository)
	mockSalons := new(MockSalonRepository)
	return NewService(mockBookings, mockWorkers, mockSalons, 30), mockBookings, mockWorkers, mockSalons
}

func TestService_Availability_FullGrid(t *testing.T) {
	service, mockBookings, mockWorkers, mockSalons := newTestService()

	mockWorkers.On("GetByID", mock.Anything, int64(7)).Return(&domain.Worker{ID: 7, SalonID: 3}, nil)
	mockSalons.On("GetByID", mock.Anything, int64(3)).Return(&domain.Salon{
		ID: 3, OpenTime: "09:00", CloseTime: "11:00",
	}, nil)
	mockBookings.On("BookedTimes", mock.Anything, int64(7), "2026-09-15").Return([]string{}, nil)

	slots, err := service.Availability(context.Background(), 7, "2026-09-15")

	assert.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slots)
}

func TestService_Availability_ExcludesBookedSlot(t *testing.T) {
	service, mockBookings, mockWorkers, mockSalons := newTestService()

	mockWorkers.On("GetByID", mock.Anything, int64(7)).Return(&domain.Worker{ID: 7, SalonID: 3}, nil)
	mockSalons.On("GetByID", mock.Anything, int64(3)).Return(&domain.Salon{
		ID: 3, OpenTime: "09:00", CloseTime: "11:00",
	}, nil)
	mockBookings.On("BookedTimes", mock.Anything, int64(7), "2026-09-15").Return([]string{"10:00"}, nil)

	slots, err := service.Availability(context.Background(), 7, "2026-09-15")

	assert.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:30"}, slots)
}

func TestService_Availability_WorkerNotFound(t *testing.T) {
	service, _, mockWorkers, _ := newTestService()

	mockWorkers.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Availability(context.Background(), 404, "2026-09-15")

	assert.ErrorIs(t, err, ErrWorkerNotFound)
}

func TestService_Availability_BadDate(t *testing.T) {
	service, _, _, _ := newTestService()

	_, err := service.Availability(context.Background(), 7, "15/09/2026")

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Availability_SalonWithoutHours(t *testing.T) {
	service, _, mockWorkers, mockSalons := newTestService()

	mockWorkers.On("GetByID", mock.Anything, int64(7)).Return(&domain.Worker{ID: 7, SalonID: 3}, nil)
	mockSalons.On("GetByID", mock.Anything, int64(3)).Return(&domain.Salon{ID: 3}, nil)

	slots, err := service.Availability(context.Background(), 7, "2026-09-15")

	assert.NoError(t, err)
	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

// Two identical reads with no intervening writes must agree.
func TestService_Availability_Idempotent(t *testing.T) {
	service, mockBookings, mockWorkers, mockSalons := newTestService()

	mockWorkers.On("GetByID", mock.Anything, int64(7)).Return(&domain.Worker{ID: 7, SalonID: 3}, nil)
	mockSalons.On("GetByID", mock.Anything, int64(3)).Return(&domain.Salon{
		ID: 3, OpenTime: "09:00", CloseTime: "12:00",
	}, nil)
	mockBookings.On("BookedTimes", mock.Anything, int64(7), "2026-09-15").Return([]string{"09:30", "11:00"}, nil)

	first, err := service.Availability(context.Background(), 7, "2026-09-15")
	assert.NoError(t, err)
	second, err := service.Availability(context.Background(), 7, "2026-09-15")
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestService_Create_Success(t *testing.T) {
	service, mockBookings, mockWorkers, _ := newTestService()

	mockWorkers.On("GetByID", mock.Anything, int64(7)).Return(&domain.Worker{ID: 7, SalonID: 3}, nil)
	mockBookings.On("CountActiveAt", mock.Anything, int64(7), "2026-09-15", "10:00").Return(int64(0), nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	req := CreateBookingRequest{
		CustomerName:  "Maria Lopez",
		CustomerEmail: "maria@example.com",
		SalonID:       3,
		WorkerID:      7,
		ServiceID:     2,
		Date:          "2026-09-15",
		Time:          "10:00",
		Notes:         "First visit",
	}

	b, err := service.Create(context.Background(), req)

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.NotEmpty(t, b.Reference)
	mockBookings.AssertExpectations(t)
}

func TestService_Create_SlotTaken(t *testing.T) {
	service, mockBookings, mockWorkers, _ := newTestService()

	mockWorkers.On("GetByID", mock.Anything, int64(7)).Return(&domain.Worker{ID: 7, SalonID: 3}, nil)
	mockBookings.On("CountActiveAt", mock.Anything, int64(7), "2026-09-15", "10:00").Return(int64(1), nil)

	req := CreateBookingRequest{
		CustomerName:  "Maria Lopez",
		CustomerEmail: "maria@example.com",
		SalonID:       3,
		WorkerID:      7,
		ServiceID:     2,
		Date:          "2026-09-15",
		Time:          "10:00",
	}

	_, err := service.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotTaken)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// The loser of the check-then-insert race hits the partial unique index;
// that must surface as SlotTaken, not an internal error.
func TestService_Create_SlotTaken_UniqueViolation(t *testing.T) {
	service, mockBookings, mockWorkers, _ := newTestService()

	mockWorkers.On("GetByID", mock.Anything, int64(7)).Return(&domain.Worker{ID: 7, SalonID: 3}, nil)
	mockBookings.On("CountActiveAt", mock.Anything, int64(7), "2026-09-15", "10:00").Return(int64(0), nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "idx_no_double_booking",
	})

	req := CreateBookingRequest{
		CustomerName:  "Maria Lopez",
		CustomerEmail: "maria@example.com",
		SalonID:       3,
		WorkerID:      7,
		ServiceID:     2,
		Date:          "2026-09-15",
		Time:          "10:00",
	}

	_, err := service.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestService_Create_WorkerNotFound(t *testing.T) {
	service, _, mockWorkers, _ := newTestService()

	mockWorkers.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	req := CreateBookingRequest{
		CustomerName:  "Maria Lopez",
		CustomerEmail: "maria@example.com",
		SalonID:       3,
		WorkerID:      404,
		ServiceID:     2,
		Date:          "2026-09-15",
		Time:          "10:00",
	}

	_, err := service.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrWorkerNotFound)
}

func TestService_Create_MalformedTime(t *testing.T) {
	service, _, _, _ := newTestService()

	req := CreateBookingRequest{
		CustomerName:  "Maria Lopez",
		CustomerEmail: "maria@example.com",
		SalonID:       3,
		WorkerID:      7,
		ServiceID:     2,
		Date:          "2026-09-15",
		Time:          "10am",
	}

	_, err := service.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_SetStatus_Success(t *testing.T) {
	service, mockBookings, _, _ := newTestService()

	mockBookings.On("UpdateStatus", mock.Anything, int64(123), domain.BookingConfirmed).Return(nil)
	mockBookings.On("GetByID", mock.Anything, int64(123)).Return(&domain.Booking{
		ID:     123,
		Status: domain.BookingConfirmed,
	}, nil)

	b, err := service.SetStatus(context.Background(), 123, "confirmed")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	mockBookings.AssertExpectations(t)
}

func TestService_SetStatus_InvalidStatus(t *testing.T) {
	service, mockBookings, _, _ := newTestService()

	_, err := service.SetStatus(context.Background(), 123, "bogus")

	assert.ErrorIs(t, err, ErrInvalidStatus)
	mockBookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_SetStatus_NotFound(t *testing.T) {
	service, mockBookings, _, _ := newTestService()

	mockBookings.On("UpdateStatus", mock.Anything, int64(999), domain.BookingCancelled).Return(gorm.ErrRecordNotFound)

	_, err := service.SetStatus(context.Background(), 999, "cancelled")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete_NotFound(t *testing.T) {
	service, mockBookings, _, _ := newTestService()

	mockBookings.On("Delete", mock.Anything, int64(999)).Return(gorm.ErrRecordNotFound)

	err := service.Delete(context.Background(), 999)

	assert.ErrorIs(t, err, ErrNotFound)
}
