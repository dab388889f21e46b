package errors

import (
	"net/http"
)

// APIError is the error type every handler reports through gin's error list.
// Message is what the client sees; Internal is the underlying cause and is
// only logged.
type APIError struct {
	Status   int    `json:"-"`
	Message  string `json:"error"`
	Internal error  `json:"-"`
}

// Error returns the error message
func (e *APIError) Error() string {
	if e.Internal != nil {
		return e.Message + ": " + e.Internal.Error()
	}
	return e.Message
}

// Unwrap returns the original error
func (e *APIError) Unwrap() error {
	return e.Internal
}

func New(status int, message string, err error) *APIError {
	return &APIError{
		Status:   status,
		Message:  message,
		Internal: err,
	}
}

func BadRequest(message string, err error) *APIError {
	return New(http.StatusBadRequest, message, err)
}

func NotFound(message string, err error) *APIError {
	return New(http.StatusNotFound, message, err)
}

func UnprocessableEntity(message string, err error) *APIError {
	return New(http.StatusUnprocessableEntity, message, err)
}

// NewValidationError wraps a binding/validation failure
func NewValidationError(err error) *APIError {
	return New(http.StatusUnprocessableEntity, "Validation failed", err)
}

func Internal(err error) *APIError {
	return New(http.StatusInternalServerError, "Internal server error", err)
}

// StorageFailure marks a failed read or write to the persistence backend.
// In-memory state is not rolled back; the caller may retry the save.
func StorageFailure(err error) *APIError {
	return New(http.StatusInternalServerError, "Failed to save changes", err)
}

// UploadFailure marks a rejected or unreachable remote asset upload. The
// triggering mutation aborts and prior state stays untouched.
func UploadFailure(err error) *APIError {
	return New(http.StatusBadGateway, "Image upload failed", err)
}
