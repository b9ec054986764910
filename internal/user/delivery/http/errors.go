package http

import (
	"errors"
	"net/http"

	"social-admin-dashboard/internal/screen"
	"social-admin-dashboard/internal/user"
	"social-admin-dashboard/pkg/backend"
	pkgErrors "social-admin-dashboard/pkg/errors"
	"social-admin-dashboard/pkg/listing"
)

// mapError translates user errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	if _, ok := pkgErrors.AsHTTPError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, user.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "User not found")
	case errors.Is(err, listing.ErrUnknownFilter),
		errors.Is(err, listing.ErrInvalidFilterValue):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, screen.ErrAuthMissing):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Please log in to view users")
	}
	if he := backend.ToHTTPError(err); he != nil {
		return he
	}
	return pkgErrors.ErrInternalServerError
}
