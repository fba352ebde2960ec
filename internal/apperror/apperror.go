package apperror

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Services wrap these with context using %w so
// controllers can map them to HTTP statuses with errors.Is.
var (
	ErrNotFound            = errors.New("not found")
	ErrNotAuthorized       = errors.New("not authorized")
	ErrConflict            = errors.New("conflict")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrInvalidInput        = errors.New("invalid input")
)

func NotFound(what string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, what)
}

func NotAuthorized(reason string) error {
	return fmt.Errorf("%w: %s", ErrNotAuthorized, reason)
}

func Conflict(reason string) error {
	return fmt.Errorf("%w: %s", ErrConflict, reason)
}

func UpstreamUnavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
}

func InvalidInput(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}
