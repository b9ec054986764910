package http

import (
	"social-admin-dashboard/internal/screen"
)

// --- Request DTOs ---

type viewReq struct {
	Wait bool `form:"wait"`
}

// filtersReq changes filters and search. Absent fields are left unchanged;
// "all" clears one filter.
type filtersReq struct {
	Search  *string           `json:"search"`
	Filters map[string]string `json:"filters"`
	Reset   bool              `json:"reset"`
}

// pageReq moves the local page window or the backend page.
type pageReq struct {
	Page        int    `json:"page"`
	Step        string `json:"step"        binding:"omitempty,oneof=next prev"`
	PageSize    int    `json:"page_size"`
	RemotePage  int    `json:"remote_page"`
	RemoteLimit int    `json:"remote_limit"`
}

// --- Response DTOs ---

type actResp struct {
	Confirmation *screen.Confirmation `json:"confirmation,omitempty"`
	Outcome      *screen.Outcome      `json:"outcome,omitempty"`
}

func newActResp(r screen.ActResult) actResp {
	return actResp{Confirmation: r.Confirmation, Outcome: r.Outcome}
}
