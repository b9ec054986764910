package http

import (
	"social-admin-dashboard/internal/content"
	"social-admin-dashboard/internal/screen"
)

// --- Request DTOs ---

// updateReq is the update form. Omitted or empty fields are left unchanged.
type updateReq struct {
	ID          string  `json:"-"`
	Description *string `json:"description" binding:"omitempty,max=2200"`
	Status      *string `json:"status"`
	ContentType *string `json:"contentType"`
	MediaType   *string `json:"mediaType"`
}

func (r updateReq) toInput() content.UpdateInput {
	return content.UpdateInput{
		ID:          r.ID,
		Description: r.Description,
		Status:      r.Status,
		ContentType: r.ContentType,
		MediaType:   r.MediaType,
	}
}

// noteReq is a new moderator note.
type noteReq struct {
	ContentID string `json:"-"`
	Note      string `json:"note" binding:"required"`
}

func (r noteReq) toInput() content.AddNoteInput {
	return content.AddNoteInput{ContentID: r.ContentID, Note: r.Note}
}

// --- Response DTOs ---

// formResp pre-fills the update form.
type formResp struct {
	Item        content.ContentItem `json:"item"`
	Description string              `json:"description"`
	Status      string              `json:"status"`
	ContentType string              `json:"contentType"`
	MediaType   string              `json:"mediaType"`
}

func (h *handler) newFormResp(item content.ContentItem) formResp {
	return formResp{
		Item:        item,
		Description: item.Description,
		Status:      valueOf(item.Status),
		ContentType: valueOf(item.ContentType),
		MediaType:   valueOf(item.MediaType),
	}
}

type updateResp struct {
	Outcome screen.Outcome `json:"outcome"`
}

type reportsResp struct {
	Reports []content.Report `json:"reports"`
	Total   int              `json:"total"`
}

func (h *handler) newReportsResp(out content.ReportsOutput) reportsResp {
	reports := out.Reports
	if reports == nil {
		reports = []content.Report{}
	}
	return reportsResp{Reports: reports, Total: out.Total}
}

type notesResp struct {
	Notes []content.Note `json:"notes"`
	Total int            `json:"total"`
}

func (h *handler) newNotesResp(notes []content.Note) notesResp {
	if notes == nil {
		notes = []content.Note{}
	}
	return notesResp{Notes: notes, Total: len(notes)}
}

type noteResp struct {
	Note content.Note `json:"note"`
}

func valueOf(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
