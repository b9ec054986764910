package usecase

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-admin-dashboard/internal/model"
	"social-admin-dashboard/internal/screen"
	"social-admin-dashboard/internal/token"
	"social-admin-dashboard/internal/token/repository"
	"social-admin-dashboard/internal/token/repository/memory"
	"social-admin-dashboard/pkg/log"
)

var testScope = model.Scope{SessionID: "s1", Email: "admin@example.com", AccessToken: "tok"}

func newTestUseCase(opts Options) token.UseCase {
	opts.Debounce = 10 * time.Millisecond
	opts.RegistrySize = 10
	opts.RegistryTTL = time.Minute
	return New(memory.New(log.NewNop()), log.NewNop(), opts)
}

func TestMint(t *testing.T) {
	uc := newTestUseCase(Options{})
	ctx := context.Background()

	out, err := uc.Mint(ctx, testScope, token.SupplyInput{Address: "0x1a2b3c4d5e6f7g8h9i0j1k2l3m4n5o6p7q8r9s", Amount: 1000})
	require.NoError(t, err)

	assert.Equal(t, "Tokens minted successfully", out.Notice.Title)
	assert.Equal(t, "1,000 STARS have been minted to 0x1a2b...8r9s", out.Notice.Description)
	assert.Equal(t, token.StatusCompleted, out.Transaction.Status)
	assert.Equal(t, token.TypeMint, out.Transaction.Type)
	assert.Equal(t, int64(12_001_000), out.Stats.Minted)
	assert.Equal(t, int64(10_001_000), out.Stats.Circulation)
}

func TestSupplyValidation(t *testing.T) {
	uc := newTestUseCase(Options{})
	ctx := context.Background()

	tests := []struct {
		name  string
		input token.SupplyInput
	}{
		{name: "empty address", input: token.SupplyInput{Address: "  ", Amount: 10}},
		{name: "zero amount", input: token.SupplyInput{Address: "0xabc", Amount: 0}},
		{name: "negative amount", input: token.SupplyInput{Address: "0xabc", Amount: -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Burn(ctx, testScope, tt.input)
			assert.ErrorIs(t, err, token.ErrInvalidInput)
			assert.Equal(t, "Invalid input", out.Notice.Title)
			assert.True(t, out.Notice.Destructive)
		})
	}

	stats, err := uc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2_000_000), stats.Burned)
}

func TestBurnFailure(t *testing.T) {
	uc := newTestUseCase(Options{})

	out, err := uc.Burn(context.Background(), testScope, token.SupplyInput{Address: "0xabc", Amount: 50_000_000})
	assert.ErrorIs(t, err, repository.ErrInsufficientSupply)
	assert.Equal(t, "Burn operation failed", out.Notice.Title)
	assert.Equal(t, "There was an error processing your request. Please try again.", out.Notice.Description)
}

func TestBurnNotice(t *testing.T) {
	uc := newTestUseCase(Options{})

	out, err := uc.Burn(context.Background(), testScope, token.SupplyInput{Address: "0xdef456ghi789", Amount: 12500})
	require.NoError(t, err)
	assert.Equal(t, "Tokens burned successfully", out.Notice.Title)
	assert.Equal(t, "12,500 STARS have been burned from 0xdef4...i789", out.Notice.Description)
}

func TestUpdateSale(t *testing.T) {
	uc := newTestUseCase(Options{})
	ctx := context.Background()

	t.Run("invalid price", func(t *testing.T) {
		for _, p := range []float64{0, -1, math.NaN()} {
			out, err := uc.UpdateSale(ctx, testScope, token.SaleInput{Price: p, Active: true})
			assert.ErrorIs(t, err, token.ErrInvalidPrice)
			assert.Equal(t, "Invalid price", out.Notice.Title)
		}
	})

	t.Run("saved", func(t *testing.T) {
		out, err := uc.UpdateSale(ctx, testScope, token.SaleInput{Price: 0.06, Active: false})
		require.NoError(t, err)
		assert.Equal(t, "Settings updated successfully", out.Notice.Title)
		assert.Equal(t, "Token sale is now inactive with a price of $0.06 per STAR.", out.Notice.Description)
		assert.False(t, out.Stats.SaleActive)
		require.NotEmpty(t, out.History)
		assert.Equal(t, 0.06, out.History[0].Price)

		history, err := uc.PriceHistory(ctx)
		require.NoError(t, err)
		assert.Equal(t, out.History, history)
	})
}

func TestLedgerScreen(t *testing.T) {
	uc := newTestUseCase(Options{})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	s := uc.Bind(context.Background(), testScope)
	require.NoError(t, s.Await(ctx))

	v := s.Snapshot()
	assert.Equal(t, screen.StatusReady, v.Status)
	assert.Equal(t, 5, v.PageSize)
	assert.Equal(t, 10, v.TotalItems)
	assert.Equal(t, 2, v.TotalPages)

	require.NoError(t, s.SetFilter("type", token.TypeBurn))
	v = s.Snapshot()
	require.Len(t, v.Items, 2)
	assert.Equal(t, "tx3", v.Items[0].ID)
	assert.Equal(t, "tx8", v.Items[1].ID)

	require.NoError(t, s.SetFilter("type", "all"))
	s.SetSearch(context.Background(), "olivia")
	v = s.Snapshot()
	require.Len(t, v.Items, 1)
	assert.Equal(t, "tx10", v.Items[0].ID)
}

func TestMintRefreshesLedger(t *testing.T) {
	uc := newTestUseCase(Options{SettleDelay: 20 * time.Millisecond})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	s := uc.Bind(context.Background(), testScope)
	require.NoError(t, s.Await(ctx))

	out, err := uc.Mint(ctx, testScope, token.SupplyInput{Address: "0xfeedbeef00112233", Amount: 42})
	require.NoError(t, err)
	assert.Equal(t, token.StatusPending, out.Transaction.Status)

	assert.Eventually(t, func() bool {
		if err := s.Await(ctx); err != nil {
			return false
		}
		items := s.Snapshot().Items
		return len(items) > 0 && items[0].ID == out.Transaction.ID && items[0].Status == token.StatusCompleted
	}, time.Second, 10*time.Millisecond)
}

func TestShortAddress(t *testing.T) {
	assert.Equal(t, "0x1234", ShortAddress("0x1234"))
	assert.Equal(t, "0x1a2b...8r9s", ShortAddress("0x1a2b3c4d5e6f7g8h9i0j1k2l3m4n5o6p7q8r9s"))
}
