package token

import "time"

// ScreenName is the registry name of the transaction ledger screen.
const ScreenName = "token-transactions"

// Symbol is the ticker shown next to token amounts.
const Symbol = "STARS"

// Transaction types.
const (
	TypeBuy  = "buy"
	TypeGift = "gift"
	TypeBurn = "burn"
	TypeMint = "mint"
)

// Transaction statuses.
const (
	StatusCompleted = "completed"
	StatusPending   = "pending"
	StatusFailed    = "failed"
)

// Types are the values of the transaction type filter.
var Types = []string{TypeBuy, TypeGift, TypeBurn, TypeMint}

// Stats is the token supply overview.
type Stats struct {
	Circulation       int64     `json:"circulation"`
	CirculationChange int64     `json:"circulationChange"`
	Minted            int64     `json:"minted"`
	MintedChange      int64     `json:"mintedChange"`
	Burned            int64     `json:"burned"`
	BurnedChange      int64     `json:"burnedChange"`
	Price             float64   `json:"price"`
	PriceChange       float64   `json:"priceChange"`
	SaleActive        bool      `json:"saleActive"`
	LastUpdated       time.Time `json:"lastUpdated"`
}

// Transaction is one ledger entry.
type Transaction struct {
	ID          string    `json:"id"`
	UserAddress string    `json:"userAddress"`
	UserName    string    `json:"userName"`
	UserAvatar  string    `json:"userAvatar,omitempty"`
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Date        time.Time `json:"date"`
	TxHash      string    `json:"txHash"`
	Status      string    `json:"status"`
}

// PricePoint is one period of the sale price history. To is nil for the
// current price.
type PricePoint struct {
	Price float64    `json:"price"`
	From  time.Time  `json:"from"`
	To    *time.Time `json:"to,omitempty"`
}

// SupplyInput is the mint and burn form.
type SupplyInput struct {
	Address string
	Amount  int64
}

// SaleInput is the sale settings form.
type SaleInput struct {
	Price  float64
	Active bool
}

// Notice is the toast shown after a token operation.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Destructive bool   `json:"destructive,omitempty"`
}

// SupplyOutput is the result of a mint or burn.
type SupplyOutput struct {
	Transaction Transaction `json:"transaction"`
	Stats       Stats       `json:"stats"`
	Notice      Notice      `json:"notice"`
}

// SaleOutput is the result of saving the sale settings.
type SaleOutput struct {
	Stats   Stats        `json:"stats"`
	History []PricePoint `json:"history"`
	Notice  Notice       `json:"notice"`
}
