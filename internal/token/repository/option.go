package repository

// ListTransactionsOptions selects one page of the ledger, newest first.
// Limit <= 0 returns everything from Page on.
type ListTransactionsOptions struct {
	Page  int
	Limit int
}

// ApplySupplyOptions records a mint or burn. The entry starts pending.
type ApplySupplyOptions struct {
	Type     string
	Address  string
	UserName string
	Amount   int64
}

type SetTransactionStatusOptions struct {
	ID     string
	Status string
}

type UpdateSaleOptions struct {
	Price  float64
	Active bool
}
