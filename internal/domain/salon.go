package domain

import "time"

// Salon operating hours are wall-clock HH:MM labels, one timezone per salon.
// Invariant enforced on create/update: OpenTime < CloseTime.
type Salon struct {
	ID          int64     `json:"id"`
	OwnerUserID int64     `json:"owner_user_id"`
	Name        string    `json:"name" validate:"required,min=2"`
	Description string    `json:"description,omitempty"`
	Address     string    `json:"address,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	OpenTime    string    `json:"open_time"`
	CloseTime   string    `json:"close_time"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
