package usecase

import (
	"fmt"

	"social-admin-dashboard/internal/token"
)

var (
	invalidInputNotice = token.Notice{
		Title:       "Invalid input",
		Description: "Please provide a valid wallet address and amount.",
		Destructive: true,
	}
	invalidPriceNotice = token.Notice{
		Title:       "Invalid price",
		Description: "Please enter a valid token price greater than zero.",
		Destructive: true,
	}
	saleFailedNotice = token.Notice{
		Title:       "Failed to update settings",
		Description: "There was an error saving your changes. Please try again.",
		Destructive: true,
	}
)

func supplyFailedNotice(typ string) token.Notice {
	title := "Mint operation failed"
	if typ == token.TypeBurn {
		title = "Burn operation failed"
	}
	return token.Notice{
		Title:       title,
		Description: "There was an error processing your request. Please try again.",
		Destructive: true,
	}
}

func (uc *implUseCase) supplyNotice(typ string, input token.SupplyInput) token.Notice {
	amount := uc.printer.Sprintf("%d", input.Amount)
	if typ == token.TypeBurn {
		return token.Notice{
			Title:       "Tokens burned successfully",
			Description: fmt.Sprintf("%s %s have been burned from %s", amount, token.Symbol, ShortAddress(input.Address)),
		}
	}
	return token.Notice{
		Title:       "Tokens minted successfully",
		Description: fmt.Sprintf("%s %s have been minted to %s", amount, token.Symbol, ShortAddress(input.Address)),
	}
}

func saleNotice(input token.SaleInput) token.Notice {
	state := "inactive"
	if input.Active {
		state = "active"
	}
	return token.Notice{
		Title:       "Settings updated successfully",
		Description: fmt.Sprintf("Token sale is now %s with a price of $%.2f per STAR.", state, input.Price),
	}
}

// ShortAddress keeps the first six and last four characters of a wallet
// address ("0x1a2b...7q8r").
func ShortAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}
