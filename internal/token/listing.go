package token

import "social-admin-dashboard/pkg/listing"

// DefaultPageSize is how many ledger rows one page shows.
const DefaultPageSize = 5

// ListConfig is the search and filter setup of the transaction ledger.
func ListConfig(pageSize int) listing.Config[Transaction] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return listing.Config[Transaction]{
		SearchFields: []listing.SearchField[Transaction]{
			{Name: "userAddress", Get: func(tx Transaction) string { return tx.UserAddress }},
			{Name: "userName", Get: func(tx Transaction) string { return tx.UserName }},
		},
		Filters: []listing.Filter[Transaction]{
			{Name: "type", Value: func(tx Transaction) string { return tx.Type }, Options: Types},
		},
		PageSize: pageSize,
	}
}

// TransactionID returns the id of a ledger entry.
func TransactionID(tx Transaction) string { return tx.ID }
