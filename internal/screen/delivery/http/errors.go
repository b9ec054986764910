package http

import (
	"errors"
	"net/http"

	"social-admin-dashboard/internal/screen"
	pkgErrors "social-admin-dashboard/pkg/errors"
	"social-admin-dashboard/pkg/listing"
)

// mapError translates screen errors into HTTP errors from pkg/errors.
func (h *handler[T]) mapError(err error) error {
	if _, ok := pkgErrors.AsHTTPError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, listing.ErrUnknownFilter),
		errors.Is(err, listing.ErrInvalidFilterValue),
		errors.Is(err, listing.ErrInvalidPageSize),
		errors.Is(err, screen.ErrUnknownAction),
		errors.Is(err, screen.ErrConfirmationNotRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, screen.ErrRecordNotFound),
		errors.Is(err, screen.ErrConfirmationNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, screen.ErrConfirmationExpired):
		return pkgErrors.NewHTTPError(http.StatusGone, err.Error())
	case errors.Is(err, screen.ErrClosed):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, screen.ErrReadOnly):
		return pkgErrors.NewHTTPError(http.StatusMethodNotAllowed, err.Error())
	}
	return pkgErrors.ErrInternalServerError
}
