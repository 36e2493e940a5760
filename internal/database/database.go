package database

import (
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	// registers the pure-Go "sqlite" driver used below
	_ "modernc.org/sqlite"

	"salonbook/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		logrus.Info("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	logrus.Infof("Using SQLite for local development: %s", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate brings the schema up to date and installs the booking uniqueness
// guard. Safe to run on every start.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Salon{},
		&domain.SalonService{},
		&domain.Worker{},
		&domain.WorkerAvailability{},
		&domain.Booking{},
	); err != nil {
		return err
	}
	return EnsureBookingIndexes(db)
}

// EnsureBookingIndexes creates the partial unique index that makes the
// check-then-insert admission race lose deterministically: at most one
// occupying booking (pending or confirmed) per worker, date and time.
// The predicate syntax is accepted by both PostgreSQL and SQLite.
func EnsureBookingIndexes(db *gorm.DB) error {
	return db.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS idx_no_double_booking
ON bookings (worker_id, date, time)
WHERE status IN ('pending', 'confirmed')
`).Error
}
