package http

import (
	"social-admin-dashboard/internal/token"
	"social-admin-dashboard/pkg/response"
)

type supplyReq struct {
	Address string `json:"address"`
	Amount  int64  `json:"amount"`
}

func (r supplyReq) toInput() token.SupplyInput {
	return token.SupplyInput{Address: r.Address, Amount: r.Amount}
}

type saleReq struct {
	Price  float64 `json:"price"`
	Active bool    `json:"active"`
}

func (r saleReq) toInput() token.SaleInput {
	return token.SaleInput{Price: r.Price, Active: r.Active}
}

type statsResp struct {
	Circulation       int64             `json:"circulation"`
	CirculationChange int64             `json:"circulation_change"`
	Minted            int64             `json:"minted"`
	MintedChange      int64             `json:"minted_change"`
	Burned            int64             `json:"burned"`
	BurnedChange      int64             `json:"burned_change"`
	Price             float64           `json:"price"`
	PriceChange       float64           `json:"price_change"`
	SaleActive        bool              `json:"sale_active"`
	LastUpdated       response.DateTime `json:"last_updated"`
}

// pricePointResp is one history row; To is absent for the current price.
type pricePointResp struct {
	Price float64        `json:"price"`
	From  response.Date  `json:"from"`
	To    *response.Date `json:"to,omitempty"`
}

type supplyResp struct {
	Transaction token.Transaction `json:"transaction"`
	Stats       statsResp         `json:"stats"`
	Notice      token.Notice      `json:"notice"`
}

type saleResp struct {
	Stats   statsResp        `json:"stats"`
	History []pricePointResp `json:"history"`
	Notice  token.Notice     `json:"notice"`
}

func (h *handler) newStatsResp(s token.Stats) statsResp {
	return statsResp{
		Circulation:       s.Circulation,
		CirculationChange: s.CirculationChange,
		Minted:            s.Minted,
		MintedChange:      s.MintedChange,
		Burned:            s.Burned,
		BurnedChange:      s.BurnedChange,
		Price:             s.Price,
		PriceChange:       s.PriceChange,
		SaleActive:        s.SaleActive,
		LastUpdated:       response.DateTime(s.LastUpdated),
	}
}

func (h *handler) newHistoryResp(history []token.PricePoint) []pricePointResp {
	out := make([]pricePointResp, len(history))
	for i, p := range history {
		out[i] = pricePointResp{Price: p.Price, From: response.Date(p.From)}
		if p.To != nil {
			to := response.Date(*p.To)
			out[i].To = &to
		}
	}
	return out
}

func (h *handler) newSupplyResp(o token.SupplyOutput) supplyResp {
	return supplyResp{
		Transaction: o.Transaction,
		Stats:       h.newStatsResp(o.Stats),
		Notice:      o.Notice,
	}
}

func (h *handler) newSaleResp(o token.SaleOutput) saleResp {
	return saleResp{
		Stats:   h.newStatsResp(o.Stats),
		History: h.newHistoryResp(o.History),
		Notice:  o.Notice,
	}
}
