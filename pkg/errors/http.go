package errors

import "net/http"

// HTTPError represents an HTTP error with status code and message.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// NewHTTPError returns a new HTTPError with the given code, message, and status code.
// If statusCode is 0, it defaults to http.StatusBadRequest.
func NewHTTPError(code int, message string, statusCode int) *HTTPError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewNotFoundHTTPError returns a 404 error with the given code.
func NewNotFoundHTTPError(code int, message string) *HTTPError {
	if message == "" {
		message = MessageNotFound
	}
	return NewHTTPError(code, message, http.StatusNotFound)
}

// NewBadRequestHTTPError returns a 400 error with the given code.
func NewBadRequestHTTPError(code int, message string) *HTTPError {
	if message == "" {
		message = MessageBadRequest
	}
	return NewHTTPError(code, message, http.StatusBadRequest)
}

// Error returns the error message.
func (e *HTTPError) Error() string {
	return e.Message
}
