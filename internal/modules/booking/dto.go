package booking

type CreateBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required,min=2"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone"`
	SalonID       int64  `json:"salon_id" binding:"required"`
	WorkerID      int64  `json:"worker_id" binding:"required"`
	ServiceID     int64  `json:"service_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	Notes         string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
