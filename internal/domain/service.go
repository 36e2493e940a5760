package domain

import "time"

// SalonService is a service offered by a salon. DurationMinutes informs the
// UI only; slot generation uses a fixed grid step.
type SalonService struct {
	ID              int64     `json:"id"`
	SalonID         int64     `json:"salon_id" validate:"required"`
	Name            string    `json:"name" validate:"required,min=2"`
	Description     string    `json:"description,omitempty"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	Price           float64   `json:"price" validate:"gte=0"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (SalonService) TableName() string { return "salon_services" }
