package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"social-admin-dashboard/internal/token"
	"social-admin-dashboard/internal/token/repository"
	"social-admin-dashboard/pkg/log"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestRepo() *implRepository {
	return newRepository(log.NewNop(), func() time.Time { return fixedNow })
}

func TestListTransactions(t *testing.T) {
	r := newTestRepo()
	ctx := context.Background()

	tests := []struct {
		name    string
		opt     repository.ListTransactionsOptions
		wantIDs []string
	}{
		{name: "all newest first", opt: repository.ListTransactionsOptions{}, wantIDs: []string{"tx1", "tx2", "tx3", "tx4", "tx5", "tx6", "tx7", "tx8", "tx9", "tx10"}},
		{name: "second page", opt: repository.ListTransactionsOptions{Page: 2, Limit: 3}, wantIDs: []string{"tx4", "tx5", "tx6"}},
		{name: "past the end", opt: repository.ListTransactionsOptions{Page: 5, Limit: 3}, wantIDs: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ListTransactions(ctx, tt.opt)
			if err != nil {
				t.Fatalf("ListTransactions() error = %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("ListTransactions() len = %d, want %d", len(got), len(tt.wantIDs))
			}
			for i, tx := range got {
				if tx.ID != tt.wantIDs[i] {
					t.Errorf("ListTransactions()[%d] = %s, want %s", i, tx.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestApplySupply(t *testing.T) {
	ctx := context.Background()

	t.Run("mint", func(t *testing.T) {
		r := newTestRepo()
		tx, stats, err := r.ApplySupply(ctx, repository.ApplySupplyOptions{Type: token.TypeMint, Address: "0xabc", Amount: 1000})
		if err != nil {
			t.Fatalf("ApplySupply() error = %v", err)
		}
		if tx.ID != "tx11" || tx.Status != token.StatusPending || !tx.Date.Equal(fixedNow) {
			t.Errorf("ApplySupply() tx = %+v", tx)
		}
		if stats.Minted != 12_001_000 || stats.Circulation != 10_001_000 || stats.MintedChange != 301_000 {
			t.Errorf("ApplySupply() stats = %+v", stats)
		}

		list, _ := r.ListTransactions(ctx, repository.ListTransactionsOptions{Limit: 1})
		if list[0].ID != "tx11" {
			t.Errorf("newest transaction = %s, want tx11", list[0].ID)
		}
	})

	t.Run("burn", func(t *testing.T) {
		r := newTestRepo()
		_, stats, err := r.ApplySupply(ctx, repository.ApplySupplyOptions{Type: token.TypeBurn, Address: "0xabc", Amount: 500})
		if err != nil {
			t.Fatalf("ApplySupply() error = %v", err)
		}
		if stats.Burned != 2_000_500 || stats.Circulation != 9_999_500 {
			t.Errorf("ApplySupply() stats = %+v", stats)
		}
	})

	t.Run("burn more than circulating", func(t *testing.T) {
		r := newTestRepo()
		_, _, err := r.ApplySupply(ctx, repository.ApplySupplyOptions{Type: token.TypeBurn, Address: "0xabc", Amount: 20_000_000})
		if !errors.Is(err, repository.ErrInsufficientSupply) {
			t.Fatalf("ApplySupply() error = %v, want ErrInsufficientSupply", err)
		}
		stats, _ := r.GetStats(ctx)
		if stats.Circulation != 10_000_000 {
			t.Errorf("stats changed after failed burn: %+v", stats)
		}
	})

	t.Run("unsupported type", func(t *testing.T) {
		r := newTestRepo()
		_, _, err := r.ApplySupply(ctx, repository.ApplySupplyOptions{Type: token.TypeGift, Amount: 1})
		if !errors.Is(err, repository.ErrUnsupportedType) {
			t.Fatalf("ApplySupply() error = %v, want ErrUnsupportedType", err)
		}
	})
}

func TestSetTransactionStatus(t *testing.T) {
	r := newTestRepo()
	ctx := context.Background()

	if err := r.SetTransactionStatus(ctx, repository.SetTransactionStatusOptions{ID: "tx7", Status: token.StatusCompleted}); err != nil {
		t.Fatalf("SetTransactionStatus() error = %v", err)
	}
	list, _ := r.ListTransactions(ctx, repository.ListTransactionsOptions{})
	for _, tx := range list {
		if tx.ID == "tx7" && tx.Status != token.StatusCompleted {
			t.Errorf("tx7 status = %s", tx.Status)
		}
	}

	err := r.SetTransactionStatus(ctx, repository.SetTransactionStatusOptions{ID: "nope", Status: token.StatusCompleted})
	if !errors.Is(err, repository.ErrTransactionNotFound) {
		t.Errorf("SetTransactionStatus() error = %v, want ErrTransactionNotFound", err)
	}
}

func TestUpdateSale(t *testing.T) {
	r := newTestRepo()
	ctx := context.Background()

	stats, history, err := r.UpdateSale(ctx, repository.UpdateSaleOptions{Price: 0.06, Active: false})
	if err != nil {
		t.Fatalf("UpdateSale() error = %v", err)
	}
	if stats.Price != 0.06 || stats.SaleActive || stats.PriceChange != 20 {
		t.Errorf("UpdateSale() stats = %+v", stats)
	}
	if len(history) != 4 || history[0].Price != 0.06 || history[0].To != nil {
		t.Fatalf("UpdateSale() history = %+v", history)
	}
	if history[1].To == nil || !history[1].To.Equal(fixedNow) {
		t.Errorf("previous period not closed: %+v", history[1])
	}

	// Same price only toggles the sale.
	_, history, _ = r.UpdateSale(ctx, repository.UpdateSaleOptions{Price: 0.06, Active: true})
	if len(history) != 4 {
		t.Errorf("history grew on unchanged price: %d", len(history))
	}
}
