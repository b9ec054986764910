package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"social-admin-dashboard/internal/model"
	"social-admin-dashboard/internal/token"
	"social-admin-dashboard/internal/token/repository/memory"
	tokenUC "social-admin-dashboard/internal/token/usecase"
)

var txFlags listFlags

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Token administration (demo ledger)",
}

var tokensTxCmd = &cobra.Command{
	Use:   "transactions",
	Short: "List token transactions",
	Long: `Transactions lists the demo ledger. It is held in memory and needs no
sign-in.

Filters: type (buy, gift, burn, mint).

Example:
  admin tokens transactions --filter type=mint
  admin tokens transactions --search 0x1a2b`,
	RunE: runTokensTransactions,
}

var tokensStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the supply overview",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := newTokenUseCase().Stats(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Circulation  %d (%+d)\n", stats.Circulation, stats.CirculationChange)
		fmt.Printf("Minted       %d (%+d)\n", stats.Minted, stats.MintedChange)
		fmt.Printf("Burned       %d (%+d)\n", stats.Burned, stats.BurnedChange)
		fmt.Printf("Price        $%.2f (%+.1f%%)\n", stats.Price, stats.PriceChange)
		fmt.Printf("Sale active  %t\n", stats.SaleActive)
		return nil
	},
}

func init() {
	txFlags.register(tokensTxCmd)
	tokensCmd.AddCommand(tokensTxCmd)
	tokensCmd.AddCommand(tokensStatsCmd)
}

func newTokenUseCase() token.UseCase {
	return tokenUC.New(memory.New(logger), logger, tokenUC.Options{
		Debounce:     cliDebounce,
		RegistrySize: 1,
	})
}

func runTokensTransactions(cmd *cobra.Command, args []string) error {
	uc := newTokenUseCase()
	sc := model.Scope{SessionID: cliSession, AccessToken: "local"}
	defer uc.CloseSession(sc.SessionID)

	ctx := cmd.Context()
	return showScreen(ctx, uc.Bind(ctx, sc), txFlags, []column[token.Transaction]{
		{title: "ID", value: token.TransactionID},
		{title: "USER", value: func(tx token.Transaction) string { return tx.UserName }},
		{title: "ADDRESS", value: func(tx token.Transaction) string { return tokenUC.ShortAddress(tx.UserAddress) }},
		{title: "TYPE", value: func(tx token.Transaction) string { return tx.Type }},
		{title: "AMOUNT", value: func(tx token.Transaction) string { return strconv.FormatInt(tx.Amount, 10) }},
		{title: "DATE", value: func(tx token.Transaction) string { return tx.Date.Format("2006-01-02 15:04") }},
		{title: "STATUS", value: func(tx token.Transaction) string { return tx.Status }},
	})
}
