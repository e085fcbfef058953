package utils

import "errors"

var (
	ErrDatabaseError = errors.New("database error")

	ErrInvalidLimit        = errors.New("invalid limit parameter")
	ErrInvalidID           = errors.New("invalid id parameter")
	ErrMissingDateRange    = errors.New("start date and end date are required")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidDateRange    = errors.New("start date is after end date")
	ErrImageRequired       = errors.New("base64 image is required")
	ErrInvalidImage        = errors.New("image is not valid base64")
	ErrDescriptionRequired = errors.New("description is required")

	ErrUserNotFound         = errors.New("user not found")
	ErrFoodEntryNotFound    = errors.New("food entry not found")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrDocumentNotFound     = errors.New("medical document not found")
	ErrConversationNotFound = errors.New("conversation not found")

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// UpstreamError wraps a failure of the external analysis provider. Its
// cause is shown to the caller.
type UpstreamError struct {
	Cause error
}

func (e *UpstreamError) Error() string { return "upstream: " + e.Cause.Error() }

func (e *UpstreamError) Unwrap() error { return e.Cause }
