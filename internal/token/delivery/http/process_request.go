package http

import (
	"github.com/gin-gonic/gin"

	"social-admin-dashboard/internal/model"
	"social-admin-dashboard/internal/token"
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

// processSupplyReq binds the mint and burn form. A body that does not parse
// is reported like an empty form.
func (h *handler) processSupplyReq(c *gin.Context) (supplyReq, error) {
	var req supplyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, token.ErrInvalidInput
	}
	return req, nil
}

func (h *handler) processSaleReq(c *gin.Context) (saleReq, error) {
	var req saleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, token.ErrInvalidPrice
	}
	return req, nil
}
