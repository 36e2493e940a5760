package booking

import "errors"

var (
	ErrValidation     = errors.New("validation error")
	ErrNotFound       = errors.New("booking not found")
	ErrWorkerNotFound = errors.New("worker not found")
	ErrSlotTaken      = errors.New("time slot not available")
	ErrInvalidStatus  = errors.New("invalid booking status")
)
