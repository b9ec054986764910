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

// processUpdateReq binds the update form body and the URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}

// processNoteReq binds the note body and the URI param.
func (h *handler) processNoteReq(c *gin.Context) (noteReq, error) {
	var req noteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.ContentID = c.Param("id")
	if req.ContentID == "" {
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}
