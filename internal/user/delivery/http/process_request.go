package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"social-admin-dashboard/internal/model"
	pkgErrors "social-admin-dashboard/pkg/errors"
	"social-admin-dashboard/pkg/scope"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

func (h *handler) processProfileReq(c *gin.Context) (profileReq, error) {
	var req profileReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}
