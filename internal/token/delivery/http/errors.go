package http

import (
	"errors"
	"net/http"

	"social-admin-dashboard/internal/token"
	"social-admin-dashboard/internal/token/repository"
	pkgErrors "social-admin-dashboard/pkg/errors"
)

// mapError translates token errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	if _, ok := pkgErrors.AsHTTPError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, token.ErrInvalidInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid input")
	case errors.Is(err, token.ErrInvalidPrice):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid price")
	case errors.Is(err, repository.ErrInsufficientSupply):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return pkgErrors.ErrInternalServerError
}
