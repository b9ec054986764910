package http

import (
	"github.com/gin-gonic/gin"

	"social-admin-dashboard/internal/screen"
	pkgErrors "social-admin-dashboard/pkg/errors"
	"social-admin-dashboard/pkg/scope"
)

// bind returns the session's screen for the request.
func (h *handler[T]) bind(c *gin.Context) (*screen.Screen[T], error) {
	ctx := c.Request.Context()
	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		return nil, pkgErrors.ErrUnauthorized
	}
	return h.binder.Bind(ctx, sc), nil
}

func (h *handler[T]) processViewReq(c *gin.Context) (viewReq, error) {
	var req viewReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}

func (h *handler[T]) processFiltersReq(c *gin.Context) (filtersReq, error) {
	var req filtersReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}

func (h *handler[T]) processPageReq(c *gin.Context) (pageReq, error) {
	var req pageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}

func (h *handler[T]) processActReq(c *gin.Context) (string, screen.Action, error) {
	id := c.Param("id")
	if id == "" {
		return "", "", pkgErrors.ErrBadRequest
	}
	action, err := screen.ParseAction(c.Param("action"))
	if err != nil {
		return "", "", err
	}
	return id, action, nil
}
