package response

import "member-admin/pkg/errors"

// Resp is the JSON envelope of every API response.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorMapping maps domain errors to the HTTP errors sent for them.
type ErrorMapping map[error]*errors.HTTPError
