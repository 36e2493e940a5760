package catalog

import "errors"

var (
	ErrInvalidHours = errors.New("open_time must be before close_time")
)
