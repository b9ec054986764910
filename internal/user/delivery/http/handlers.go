package http

import (
	"github.com/gin-gonic/gin"

	"social-admin-dashboard/pkg/response"
)

// Profile godoc
// @Summary     Load a user profile
// @Description Returns the account, one page of the reels it authored and its last
// @Description ten token transactions with the completed balance.
// @Tags        Users
// @Produce     json
// @Security    Bearer
// @Param       id             path  string true  "User ID"
// @Param       content_type   query string false "Content type filter (post, comment, all)"
// @Param       content_status query string false "Content status filter"
// @Param       content_page   query int    false "Content tab page"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Please log in to view users"
// @Failure     404 {object} response.Resp "User not found"
// @Router      /api/v1/users/{id}/profile [GET]
func (h *handler) Profile(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processProfileReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Profile(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Profile: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProfileResp(out))
}
