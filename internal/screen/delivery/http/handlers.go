package http

import (
	"github.com/gin-gonic/gin"

	"social-admin-dashboard/pkg/listing"
	"social-admin-dashboard/pkg/response"
)

// View godoc
// @Summary     Render the list screen
// @Description Returns the current page of the session's screen. The first call mounts the
// @Description screen and starts loading; wait=true blocks until the latest load settles.
// @Tags        Screens
// @Produce     json
// @Security    Bearer
// @Param       wait query bool false "Wait for the in-flight load"
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/{domain}/screen [GET]
func (h *handler[T]) View(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processViewReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.bind(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if req.Wait {
		if err := s.Await(ctx); err != nil {
			h.l.Warnf(ctx, "screen.View Await: %v", err)
		}
	}

	response.OK(c, s.Snapshot())
}

// SetFilters godoc
// @Summary     Change filters and search
// @Description Absent filters are kept, "all" clears one, reset clears everything. Always returns to page 1.
// @Tags        Screens
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body filtersReq true "Filters"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Unknown filter or value"
// @Router      /api/v1/{domain}/screen/filters [PUT]
func (h *handler[T]) SetFilters(c *gin.Context) {
	req, err := h.processFiltersReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.bind(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	next := s.Filters()
	if req.Reset {
		next = listing.FilterState{}
	}
	for name, value := range req.Filters {
		next = next.With(name, value)
	}
	if req.Search != nil {
		next = next.WithSearch(*req.Search)
	}

	if err := s.SetFilters(c.Request.Context(), next); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, s.Snapshot())
}

// SetPage godoc
// @Summary     Move the page window
// @Description page jumps to a local page, step moves one page, page_size resizes the window,
// @Description remote_page and remote_limit refetch a different backend page.
// @Tags        Screens
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body pageReq true "Page"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Invalid page size"
// @Router      /api/v1/{domain}/screen/page [PUT]
func (h *handler[T]) SetPage(c *gin.Context) {
	req, err := h.processPageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.bind(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if req.RemotePage > 0 || req.RemoteLimit > 0 {
		s.SetRemote(c.Request.Context(), req.RemotePage, req.RemoteLimit)
	}
	if req.PageSize > 0 {
		if err := s.SetPageSize(req.PageSize); err != nil {
			response.Error(c, h.mapError(err))
			return
		}
	}
	switch {
	case req.Step == "next":
		s.NextPage()
	case req.Step == "prev":
		s.PrevPage()
	case req.Page > 0:
		s.SetPage(req.Page)
	}

	response.OK(c, s.Snapshot())
}

// Reload godoc
// @Summary     Reload the screen
// @Description Re-issues the current query; this is the only retry after a failed load.
// @Tags        Screens
// @Produce     json
// @Security    Bearer
// @Success     200 {object} response.Resp
// @Router      /api/v1/{domain}/screen/reload [POST]
func (h *handler[T]) Reload(c *gin.Context) {
	s, err := h.bind(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	s.Reload(c.Request.Context())
	response.OK(c, s.Snapshot())
}

// OpenDetail godoc
// @Summary     Open the detail view
// @Tags        Screens
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Record ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Record not in the current fetch"
// @Router      /api/v1/{domain}/screen/detail/{id} [POST]
func (h *handler[T]) OpenDetail(c *gin.Context) {
	s, err := h.bind(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if _, err := s.OpenDetail(c.Param("id")); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, s.Snapshot())
}

// CloseDetail godoc
// @Summary     Close the detail view
// @Tags        Screens
// @Produce     json
// @Security    Bearer
// @Success     200 {object} response.Resp
// @Router      /api/v1/{domain}/screen/detail [DELETE]
func (h *handler[T]) CloseDetail(c *gin.Context) {
	s, err := h.bind(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	s.CloseDetail()
	response.OK(c, s.Snapshot())
}

// Act godoc
// @Summary     Act on a record
// @Description approve and reject run at once. delete and update return a confirmation
// @Description that must be accepted through the confirmations endpoint.
// @Tags        Screens
// @Produce     json
// @Security    Bearer
// @Param       id     path string true "Record ID"
// @Param       action path string true "approve, reject, delete or update"
// @Success     200 {object} actResp
// @Failure     400 {object} response.Resp "Unknown action"
// @Router      /api/v1/{domain}/{id}/actions/{action} [POST]
func (h *handler[T]) Act(c *gin.Context) {
	ctx := c.Request.Context()

	id, action, err := h.processActReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	s, err := h.bind(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	res, err := s.Act(ctx, id, action)
	if err != nil {
		h.l.Errorf(ctx, "screen.Act %s %s: %v", action, id, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newActResp(res))
}

// Confirm godoc
// @Summary     Accept a confirmation
// @Description Runs the destructive action. A failed backend call is reported as an error notice.
// @Tags        Screens
// @Produce     json
// @Security    Bearer
// @Param       cid path string true "Confirmation ID"
// @Success     200 {object} actResp
// @Failure     404 {object} response.Resp "Confirmation not found"
// @Failure     410 {object} response.Resp "Confirmation expired"
// @Router      /api/v1/{domain}/confirmations/{cid} [POST]
func (h *handler[T]) Confirm(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.bind(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := s.Confirm(ctx, c.Param("cid"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, actResp{Outcome: &out})
}

// Cancel godoc
// @Summary     Decline a confirmation
// @Tags        Screens
// @Produce     json
// @Security    Bearer
// @Param       cid path string true "Confirmation ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Confirmation not found"
// @Router      /api/v1/{domain}/confirmations/{cid} [DELETE]
func (h *handler[T]) Cancel(c *gin.Context) {
	s, err := h.bind(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := s.Cancel(c.Param("cid")); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
