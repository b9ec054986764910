package http

import (
	"github.com/gin-gonic/gin"

	"social-admin-dashboard/pkg/response"
)

// Detail godoc
// @Summary     Load the update form
// @Description Returns the reel and the current form values.
// @Tags        Content
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Reel ID"
// @Success     200 {object} formResp
// @Failure     401 {object} response.Resp "Please log in to view content"
// @Failure     404 {object} response.Resp "Content not found"
// @Router      /api/v1/content/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	item, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newFormResp(item))
}

// Update godoc
// @Summary     Submit the update form
// @Description Patches description, status, contentType and mediaType. On success the content
// @Description screen refetches and the detail view closes.
// @Tags        Content
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id   path string    true "Reel ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/content/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	if !out.OK() {
		response.ErrorWithData(c, h.mapError(out.Err), map[string]interface{}{"outcome": out})
		return
	}

	response.OK(c, updateResp{Outcome: out})
}

// Reports godoc
// @Summary     List reports against a reel
// @Tags        Content
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Reel ID"
// @Success     200 {object} reportsResp
// @Failure     401 {object} response.Resp "Please log in to view content"
// @Router      /api/v1/content/{id}/reports [GET]
func (h *handler) Reports(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Reports(ctx, sc, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newReportsResp(out))
}

// Notes godoc
// @Summary     List moderator notes on a reel
// @Description Internal notes, newest first. They are never shown to the author.
// @Tags        Content
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Reel ID"
// @Success     200 {object} notesResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/content/{id}/notes [GET]
func (h *handler) Notes(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	notes, err := h.uc.Notes(ctx, sc, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newNotesResp(notes))
}

// AddNote godoc
// @Summary     Add a moderator note to a reel
// @Description The note is signed by the signed-in admin.
// @Tags        Content
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id   path string  true "Reel ID"
// @Param       body body noteReq true "Note text"
// @Success     200 {object} noteResp
// @Failure     400 {object} response.Resp "note is empty"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/content/{id}/notes [POST]
func (h *handler) AddNote(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processNoteReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	n, err := h.uc.AddNote(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, noteResp{Note: n})
}
