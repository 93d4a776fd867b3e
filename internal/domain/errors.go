package domain

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrInvalidState       = errors.New("operation not valid for current state")
	ErrInvalidTransition  = errors.New("invalid order status transition")
	ErrNotVerified        = errors.New("renter documents are not verified")
	ErrVehicleUnavailable = errors.New("vehicle is unavailable")
	ErrSignature          = errors.New("signature verification failed")
	ErrNotAuthorized      = errors.New("actor is not allowed to perform this action")
)
