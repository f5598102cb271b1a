package utils

import "errors"

var (
	ErrPlaceNotFound   = errors.New("place not found")
	ErrClosureNotFound = errors.New("closure not found")
	ErrTripNotFound    = errors.New("trip not found")
	ErrTripDayNotFound = errors.New("trip day not found")
	ErrLeadNotFound    = errors.New("lead not found")
	ErrInvalidDate     = errors.New("invalid schedule date")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
)
