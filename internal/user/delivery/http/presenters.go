package http

import (
	"social-admin-dashboard/internal/content"
	"social-admin-dashboard/internal/token"
	"social-admin-dashboard/internal/user"
	"social-admin-dashboard/pkg/listing"
)

// --- Request DTOs ---

// profileReq selects a profile and the state of its content tab.
type profileReq struct {
	ID            string `uri:"id" binding:"required"`
	ContentType   string `form:"content_type"`
	ContentStatus string `form:"content_status"`
	ContentPage   int    `form:"content_page" binding:"omitempty,min=1"`
}

func (r profileReq) toInput() user.ProfileInput {
	return user.ProfileInput{
		ID:            r.ID,
		ContentType:   r.ContentType,
		ContentStatus: r.ContentStatus,
		ContentPage:   r.ContentPage,
	}
}

// --- Response DTOs ---

type accountResp struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Status     string `json:"status"`
	Bio        string `json:"bio,omitempty"`
	ProfilePic string `json:"profile_pic,omitempty"`
	Followers  int    `json:"followers"`
	Following  int    `json:"following"`
	CreatedAt  string `json:"created_at"`
}

type balanceResp struct {
	Tokens   int64  `json:"tokens"`
	Received int64  `json:"received"`
	Spent    int64  `json:"spent"`
	Symbol   string `json:"symbol"`
}

type profileResp struct {
	User         accountResp                       `json:"user"`
	Content      listing.Page[content.ContentItem] `json:"content"`
	Transactions []token.Transaction               `json:"transactions"`
	Balance      balanceResp                       `json:"balance"`
}

func (h *handler) newProfileResp(o user.ProfileOutput) profileResp {
	u := o.User
	txs := o.Transactions
	if txs == nil {
		txs = []token.Transaction{}
	}
	return profileResp{
		User: accountResp{
			ID:         u.ID,
			Name:       u.FullName(),
			Username:   u.Username,
			Email:      u.Email,
			Role:       u.Role,
			Status:     u.Status(),
			Bio:        u.Bio,
			ProfilePic: u.ProfilePic,
			Followers:  len(u.Followers),
			Following:  len(u.Following),
			CreatedAt:  u.CreatedAt,
		},
		Content:      o.Content,
		Transactions: txs,
		Balance: balanceResp{
			Tokens:   o.Balance.Tokens,
			Received: o.Balance.Received,
			Spent:    o.Balance.Spent,
			Symbol:   token.Symbol,
		},
	}
}
