package memory

import (
	"time"

	"social-admin-dashboard/internal/token"
)

const placeholderAvatar = "/placeholder.svg?height=40&width=40"

func seedStats(now time.Time) token.Stats {
	return token.Stats{
		Circulation:       10_000_000,
		CirculationChange: 250_000,
		Minted:            12_000_000,
		MintedChange:      300_000,
		Burned:            2_000_000,
		BurnedChange:      50_000,
		Price:             0.05,
		PriceChange:       5.2,
		SaleActive:        true,
		LastUpdated:       now.UTC(),
	}
}

func seedTransactions() []token.Transaction {
	tx := func(id, addr, name, typ string, amount int64, date, hash, status string) token.Transaction {
		return token.Transaction{
			ID:          id,
			UserAddress: addr,
			UserName:    name,
			UserAvatar:  placeholderAvatar,
			Type:        typ,
			Amount:      amount,
			Date:        mustParse(date),
			TxHash:      hash,
			Status:      status,
		}
	}
	return []token.Transaction{
		tx("tx1", "0x1a2b3c4d5e6f7g8h9i0j1k2l3m4n5o6p7q8r9s", "Alex Johnson", token.TypeBuy, 500,
			"2023-11-05T10:30:00Z", "0xabc123def456ghi789jkl012mno345pqr678stu901vwx234yza", token.StatusCompleted),
		tx("tx2", "0xdef456ghi789jkl012mno345pqr678stu901vwx234yzaabc123", "Sarah Williams", token.TypeGift, 150,
			"2023-11-03T15:45:00Z", "0xdef456ghi789jkl012mno345pqr678stu901vwx234yzaabc123", token.StatusCompleted),
		tx("tx3", "0xghi789jkl012mno345pqr678stu901vwx234yzaabc123def456", "Michael Brown", token.TypeBurn, 200,
			"2023-10-28T09:00:00Z", "0xghi789jkl012mno345pqr678stu901vwx234yzaabc123def456", token.StatusCompleted),
		tx("tx4", "0xjkl012mno345pqr678stu901vwx234yzaabc123def456ghi789", "Emily Davis", token.TypeBuy, 1000,
			"2023-10-22T18:20:00Z", "0xjkl012mno345pqr678stu901vwx234yzaabc123def456ghi789", token.StatusCompleted),
		tx("tx5", "0xmno345pqr678stu901vwx234yzaabc123def456ghi789jkl012", "David Wilson", token.TypeMint, 5000,
			"2023-10-15T12:10:00Z", "0xmno345pqr678stu901vwx234yzaabc123def456ghi789jkl012", token.StatusCompleted),
		tx("tx6", "0xpqr678stu901vwx234yzaabc123def456ghi789jkl012mno345", "Jessica Taylor", token.TypeGift, 75,
			"2023-10-08T20:55:00Z", "0xpqr678stu901vwx234yzaabc123def456ghi789jkl012mno345", token.StatusCompleted),
		tx("tx7", "0xstu901vwx234yzaabc123def456ghi789jkl012mno345pqr678", "Robert Garcia", token.TypeBuy, 250,
			"2023-10-01T14:05:00Z", "0xstu901vwx234yzaabc123def456ghi789jkl012mno345pqr678", token.StatusPending),
		tx("tx8", "0xvwx234yzaabc123def456ghi789jkl012mno345pqr678stu901", "Amanda Martinez", token.TypeBurn, 100,
			"2023-09-24T07:30:00Z", "0xvwx234yzaabc123def456ghi789jkl012mno345pqr678stu901", token.StatusFailed),
		tx("tx9", "0xyzaabc123def456ghi789jkl012mno345pqr678stu901vwx234", "Thomas Anderson", token.TypeMint, 10000,
			"2023-09-17T11:15:00Z", "0xyzaabc123def456ghi789jkl012mno345pqr678stu901vwx234", token.StatusCompleted),
		tx("tx10", "0xzaabc123def456ghi789jkl012mno345pqr678stu901vwx234y", "Olivia White", token.TypeBuy, 300,
			"2023-09-10T19:00:00Z", "0xzaabc123def456ghi789jkl012mno345pqr678stu901vwx234y", token.StatusCompleted),
	}
}

func seedHistory() []token.PricePoint {
	end := func(s string) *time.Time {
		t := mustParse(s)
		return &t
	}
	return []token.PricePoint{
		{Price: 0.03, From: mustParse("2023-01-01T00:00:00Z"), To: end("2023-02-14T00:00:00Z")},
		{Price: 0.04, From: mustParse("2023-02-15T00:00:00Z"), To: end("2023-04-30T00:00:00Z")},
		{Price: 0.05, From: mustParse("2023-05-01T00:00:00Z")},
	}
}

func mustParse(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}
