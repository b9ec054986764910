package http

import (
	"errors"
	"net/http"

	"social-admin-dashboard/internal/auth"
	"social-admin-dashboard/pkg/backend"
	pkgErrors "social-admin-dashboard/pkg/errors"
	"social-admin-dashboard/pkg/googleauth"
)

// mapError translates auth errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrMissingCredentials),
		errors.Is(err, auth.ErrInvalidPayload),
		errors.Is(err, googleauth.ErrMissingCode):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrSessionNotFound),
		errors.Is(err, auth.ErrInvalidState):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, auth.ErrTooManyAttempts):
		return pkgErrors.NewHTTPError(http.StatusTooManyRequests, err.Error())
	case errors.Is(err, auth.ErrGoogleDisabled):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if he := backend.ToHTTPError(err); he != nil {
		return he
	}
	return pkgErrors.ErrInternalServerError
}
