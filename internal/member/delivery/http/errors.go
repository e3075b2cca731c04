package http

import (
	"net/http"

	"member-admin/internal/member"
	pkgErrors "member-admin/pkg/errors"
	"member-admin/pkg/response"
)

var (
	errViewNotFound = pkgErrors.NewNotFoundHTTPError(140001, "View not found")
	errTooManyViews = pkgErrors.NewHTTPError(140002, "Too many open views", http.StatusServiceUnavailable)
	errInvalidField = pkgErrors.NewBadRequestHTTPError(140003, "Field is not editable")
	errWrongBody    = pkgErrors.NewBadRequestHTTPError(140005, "Wrong body")
	errWrongParam   = pkgErrors.NewBadRequestHTTPError(140006, "Wrong path parameter")
)

// member.ErrInvalidValue is not mapped: it travels with a ValidationError that carries the details.
var errorMapping = response.ErrorMapping{
	member.ErrViewNotFound: errViewNotFound,
	member.ErrTooManyViews: errTooManyViews,
	member.ErrInvalidField: errInvalidField,
}
