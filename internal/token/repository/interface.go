package repository

import (
	"context"

	"social-admin-dashboard/internal/token"
)

// Repository is the composed interface for the token domain data store.
type Repository interface {
	LedgerRepository
	SaleRepository
}

// LedgerRepository holds the supply stats and the transaction ledger.
type LedgerRepository interface {
	GetStats(ctx context.Context) (token.Stats, error)
	ListTransactions(ctx context.Context, opt ListTransactionsOptions) ([]token.Transaction, error)
	ApplySupply(ctx context.Context, opt ApplySupplyOptions) (token.Transaction, token.Stats, error)
	SetTransactionStatus(ctx context.Context, opt SetTransactionStatusOptions) error
}

// SaleRepository holds the sale settings and the price history.
type SaleRepository interface {
	ListPriceHistory(ctx context.Context) ([]token.PricePoint, error)
	UpdateSale(ctx context.Context, opt UpdateSaleOptions) (token.Stats, []token.PricePoint, error)
}
