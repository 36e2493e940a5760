package domain

import "time"

type Worker struct {
	ID         int64     `json:"id"`
	SalonID    int64     `json:"salon_id" validate:"required"`
	Name       string    `json:"name" validate:"required,min=2"`
	Specialty  string    `json:"specialty,omitempty"`
	ImageURL   string    `json:"image_url,omitempty"`
	Rating     float64   `json:"rating,omitempty"`
	Experience string    `json:"experience,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Declared working weekdays. Stored for the UI; slot generation does not
	// consult them.
	Weekdays []string `json:"availability,omitempty" gorm:"-"`
}

type WorkerAvailability struct {
	ID       int64  `json:"id"`
	WorkerID int64  `json:"worker_id" gorm:"index"`
	Weekday  string `json:"weekday"`
}
