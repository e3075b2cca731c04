package repository

import "errors"

var (
	ErrNotFound     = errors.New("member not found")
	ErrInvalidField = errors.New("field is not editable")
)
