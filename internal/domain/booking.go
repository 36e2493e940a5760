package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the enumerated booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Occupies reports whether a booking in this status holds its slot.
// Completed and cancelled bookings free the slot for reuse.
func (s BookingStatus) Occupies() bool {
	return s == BookingPending || s == BookingConfirmed
}

type Booking struct {
	ID            int64  `json:"id"`
	Reference     string `json:"reference"`
	CustomerName  string `json:"customer_name" validate:"required,min=2"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	SalonID       int64  `json:"salon_id" validate:"required"`
	WorkerID      int64  `json:"worker_id" validate:"required"`
	ServiceID     int64  `json:"service_id" validate:"required"`

	// Calendar day and grid-aligned start label, kept as the same strings the
	// slot grid produces so collisions are exact-label matches.
	Date string `json:"date" gorm:"index"`
	Time string `json:"time"`

	Status    BookingStatus `json:"status"`
	Notes     string        `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
