package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"social-admin-dashboard/internal/token"
	"social-admin-dashboard/internal/token/repository"
)

func (r *implRepository) GetStats(ctx context.Context) (token.Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats, nil
}

// ListTransactions returns the ledger newest first.
func (r *implRepository) ListTransactions(ctx context.Context, opt repository.ListTransactionsOptions) ([]token.Transaction, error) {
	r.mu.RLock()
	sorted := slices.Clone(r.txs)
	r.mu.RUnlock()

	slices.SortStableFunc(sorted, func(a, b token.Transaction) int {
		return b.Date.Compare(a.Date)
	})

	if opt.Limit <= 0 {
		return sorted, nil
	}
	page := max(opt.Page, 1)
	start := (page - 1) * opt.Limit
	if start >= len(sorted) {
		return []token.Transaction{}, nil
	}
	end := min(start+opt.Limit, len(sorted))
	return sorted[start:end], nil
}

func (r *implRepository) ApplySupply(ctx context.Context, opt repository.ApplySupplyOptions) (token.Transaction, token.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch opt.Type {
	case token.TypeMint:
		r.stats.Minted += opt.Amount
		r.stats.MintedChange += opt.Amount
		r.stats.Circulation += opt.Amount
		r.stats.CirculationChange += opt.Amount
	case token.TypeBurn:
		if opt.Amount > r.stats.Circulation {
			return token.Transaction{}, token.Stats{}, repository.ErrInsufficientSupply
		}
		r.stats.Burned += opt.Amount
		r.stats.BurnedChange += opt.Amount
		r.stats.Circulation -= opt.Amount
		r.stats.CirculationChange -= opt.Amount
	default:
		return token.Transaction{}, token.Stats{}, fmt.Errorf("%w: %q", repository.ErrUnsupportedType, opt.Type)
	}

	now := r.now().UTC()
	r.stats.LastUpdated = now

	tx := token.Transaction{
		ID:          fmt.Sprintf("tx%d", r.nextID),
		UserAddress: opt.Address,
		UserName:    opt.UserName,
		Type:        opt.Type,
		Amount:      opt.Amount,
		Date:        now,
		TxHash:      "0x" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		Status:      token.StatusPending,
	}
	r.nextID++
	r.txs = append(r.txs, tx)
	return tx, r.stats, nil
}

func (r *implRepository) SetTransactionStatus(ctx context.Context, opt repository.SetTransactionStatusOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.txs {
		if r.txs[i].ID == opt.ID {
			r.txs[i].Status = opt.Status
			return nil
		}
	}
	return repository.ErrTransactionNotFound
}
