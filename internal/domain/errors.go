package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the core services. The HTTP layer maps each
// to a status code; the core never retries or swallows them.
var (
	ErrInstrumentNotFound   = errors.New("instrument not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrInsufficientHoldings = errors.New("insufficient holdings")
	ErrInvalidTransition    = errors.New("invalid order status transition")
)

// ValidationError reports a rejected order request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validation builds a ValidationError for the given field.
func Validation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrInstrumentNotFound) || errors.Is(err, ErrOrderNotFound)
}
