package token

import (
	"context"

	"social-admin-dashboard/internal/model"
	"social-admin-dashboard/internal/screen"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Screen
	Bind(ctx context.Context, sc model.Scope) *screen.Screen[Transaction]
	CloseSession(sessionID string) int

	// Supply
	Stats(ctx context.Context) (Stats, error)
	Mint(ctx context.Context, sc model.Scope, input SupplyInput) (SupplyOutput, error)
	Burn(ctx context.Context, sc model.Scope, input SupplyInput) (SupplyOutput, error)

	// Sale
	PriceHistory(ctx context.Context) ([]PricePoint, error)
	UpdateSale(ctx context.Context, sc model.Scope, input SaleInput) (SaleOutput, error)
}
