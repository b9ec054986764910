package memory

import (
	"context"
	"math"
	"slices"

	"social-admin-dashboard/internal/token"
	"social-admin-dashboard/internal/token/repository"
)

func (r *implRepository) ListPriceHistory(ctx context.Context) ([]token.PricePoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return historyNewestFirst(r.history), nil
}

// UpdateSale stores the sale settings. A new price closes the current
// history period and opens another one.
func (r *implRepository) UpdateSale(ctx context.Context, opt repository.UpdateSaleOptions) (token.Stats, []token.PricePoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	old := r.stats.Price
	if opt.Price != old {
		if n := len(r.history); n > 0 && r.history[n-1].To == nil {
			r.history[n-1].To = &now
		}
		r.history = append(r.history, token.PricePoint{Price: opt.Price, From: now})
		if old > 0 {
			r.stats.PriceChange = math.Round((opt.Price-old)/old*1000) / 10
		}
		r.stats.Price = opt.Price
	}
	r.stats.SaleActive = opt.Active
	r.stats.LastUpdated = now

	return r.stats, historyNewestFirst(r.history), nil
}

func historyNewestFirst(h []token.PricePoint) []token.PricePoint {
	out := slices.Clone(h)
	slices.Reverse(out)
	return out
}
