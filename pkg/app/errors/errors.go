// Package errors contains the service error type shared by the registry and the HTTP boundary
package errors

import (
	"errors"
	"net/http"
)

// Category defines error category
type Category int

const (
	// CategoryNoError is used when a call completed without error.
	CategoryNoError Category = iota
	// CategoryDataError the client sent a payload that could not be decoded.
	CategoryDataError
	// CategoryValidation the payload was decoded but violates field constraints
	// (missing required fields, length bounds).
	CategoryValidation
	// CategoryPersistence reading from or writing to storage failed; the in-flight change was rolled back.
	CategoryPersistence
	// CategoryGeneralError The service failed in an unexpected way
	CategoryGeneralError
)

func (c Category) String() string {
	switch c {
	case CategoryNoError:
		return "CategoryNoError"
	case CategoryDataError:
		return "CategoryDataError"
	case CategoryValidation:
		return "CategoryValidation"
	case CategoryPersistence:
		return "CategoryPersistence"
	default:
		return "CategoryGeneralError"
	}
}

// ServiceError represents service specific type that
// is used all over the services.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

// Error method to comply with error interface
func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err ServiceError) Unwrap() error {
	return err.Err
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Category == cat {
		return true
	}
	return false
}

// IsInternalError reports whether err should be treated as a server-side failure.
func IsInternalError(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Category < CategoryPersistence {
		return false
	}
	return true
}

// BadRequestError returns an error with category DataError
// the error message provided is returned to the user
func BadRequestError(err error, message string) error {
	if err == nil {
		err = errors.New("bad request: " + message)
	}
	return &ServiceError{
		Category: CategoryDataError,
		Message:  message,
		Err:      err,
	}
}

// ValidationError returns an error with category Validation.
// The message is returned to the user; no persistence was attempted.
func ValidationError(err error, message string) error {
	if err == nil {
		err = errors.New("validation failed: " + message)
	}
	return &ServiceError{
		Category: CategoryValidation,
		Message:  message,
		Err:      err,
	}
}

// PersistenceError returns an error with category Persistence.
// The cause is appended to the message returned to the user.
func PersistenceError(err error, message string) error {
	if err == nil {
		err = errors.New("persistence failure")
	}
	return &ServiceError{
		Category: CategoryPersistence,
		Message:  message + ": " + err.Error(),
		Err:      err,
	}
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	switch err.Category {
	case CategoryNoError:
		return http.StatusOK
	case CategoryDataError:
		return http.StatusBadRequest
	case CategoryValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
