package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrUnauthorized = errors.New("unauthorized access")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Class errors
var (
	ErrClassNotFound  = errors.New("class not found")
	ErrInvalidStatus  = errors.New("invalid class status")
	ErrClassNotOpen   = errors.New("class is not open for enrollment")
	ErrSeatsExhausted = errors.New("no seats available")
)

// Cart errors
var (
	ErrCartEntryNotFound = errors.New("cart entry not found")
	ErrAlreadyInCart     = errors.New("class already in cart")
)

// Payment errors
var (
	ErrDuplicatePayment  = errors.New("payment already recorded for this cart entry")
	ErrPartialCompletion = errors.New("payment recorded but enrollment accounting incomplete")
)

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError pairs a sentinel error with a human-readable message. The
// sentinel stays reachable through errors.Is so middleware can still map
// the error to a status code.
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
