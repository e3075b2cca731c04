package member

import "errors"

var (
	ErrViewNotFound = errors.New("view not found")
	ErrTooManyViews = errors.New("too many open views")
	ErrInvalidField = errors.New("field is not editable")
	ErrInvalidValue = errors.New("invalid field value")
)
