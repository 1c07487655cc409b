package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrMissingFields is returned when a signup or feedback submission omits required fields.
	ErrMissingFields = errors.New("please fill in all the details")
	// ErrEmailAlreadyRegistered is returned when signing up with an email that is already taken.
	ErrEmailAlreadyRegistered = errors.New("this email is already registered")
	// ErrIncompleteBooking is returned when a booking is confirmed without date, theme or venue.
	ErrIncompleteBooking = errors.New("booking is missing required fields")
	// ErrNotFound is returned when the referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrUnauthorized is returned when no session is active.
	ErrUnauthorized = errors.New("sign in required")
	// ErrForbidden is returned when the active session lacks the required role or ownership.
	ErrForbidden = errors.New("not allowed")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_FIELDS")
	case errors.Is(err, ErrEmailAlreadyRegistered):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_ALREADY_REGISTERED")
	case errors.Is(err, ErrIncompleteBooking):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INCOMPLETE_BOOKING")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHORIZED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
