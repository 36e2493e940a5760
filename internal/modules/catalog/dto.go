package catalog

type SalonRequest struct {
	Name        string  `json:"name" binding:"required,min=2"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	ImageURL    string  `json:"image_url"`
	OpenTime    string  `json:"open_time"`
	CloseTime   string  `json:"close_time"`
	Rating      float64 `json:"rating"`
}

type ServiceRequest struct {
	SalonID         int64   `json:"salon_id" binding:"required"`
	Name            string  `json:"name" binding:"required,min=2"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price" binding:"gte=0"`
}

type WorkerRequest struct {
	SalonID      int64    `json:"salon_id" binding:"required"`
	Name         string   `json:"name" binding:"required,min=2"`
	Specialty    string   `json:"specialty"`
	ImageURL     string   `json:"image_url"`
	Rating       float64  `json:"rating"`
	Experience   string   `json:"experience"`
	Availability []string `json:"availability"`
}
