package http

import (
	"errors"
	"net/http"

	"social-admin-dashboard/internal/content"
	"social-admin-dashboard/internal/screen"
	"social-admin-dashboard/pkg/backend"
	pkgErrors "social-admin-dashboard/pkg/errors"
)

// mapError translates content errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	if _, ok := pkgErrors.AsHTTPError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, content.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Content not found")
	case errors.Is(err, content.ErrNothingToUpdate),
		errors.Is(err, content.ErrInvalidStatus),
		errors.Is(err, content.ErrInvalidContentType),
		errors.Is(err, content.ErrInvalidMediaType),
		errors.Is(err, content.ErrEmptyNote),
		errors.Is(err, content.ErrNoteTooLong):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, screen.ErrAuthMissing):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Please log in to view content")
	}
	if he := backend.ToHTTPError(err); he != nil {
		return he
	}
	return pkgErrors.ErrInternalServerError
}
