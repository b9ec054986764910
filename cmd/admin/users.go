package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"social-admin-dashboard/internal/content"
	"social-admin-dashboard/internal/content/repository/reelapi"
	"social-admin-dashboard/internal/token"
	tokenMemory "social-admin-dashboard/internal/token/repository/memory"
	"social-admin-dashboard/internal/user"
	"social-admin-dashboard/internal/user/repository/authapi"
	userUC "social-admin-dashboard/internal/user/usecase"
)

var userFlags listFlags

var profileFlags struct {
	contentType   string
	contentStatus string
	contentPage   int
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "User management",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List platform accounts",
	Long: `List fetches the accounts and shows one page. Search text is also sent
to the backend search endpoint.

Filters: status (Active, Suspended, Verified).

Example:
  admin users list --token $ADMIN_TOKEN
  admin users list --search dan --filter status=Active --page-size 10`,
	RunE: runUsersList,
}

var usersProfileCmd = &cobra.Command{
	Use:   "profile <id>",
	Short: "Show one account with its reels and token balance",
	Long: `Profile shows the account, one page of the reels it authored and its
last ten token transactions. Transactions are matched on the account's
display name or username in the demo ledger.

Example:
  admin users profile 64f1c0 --token $ADMIN_TOKEN
  admin users profile 64f1c0 --content-type post --content-status pending`,
	Args: cobra.ExactArgs(1),
	RunE: runUsersProfile,
}

func init() {
	userFlags.register(usersListCmd)
	usersCmd.AddCommand(usersListCmd)

	usersProfileCmd.Flags().StringVar(&profileFlags.contentType, "content-type", "", "content tab type filter (post, comment, all)")
	usersProfileCmd.Flags().StringVar(&profileFlags.contentStatus, "content-status", "", "content tab status filter")
	usersProfileCmd.Flags().IntVar(&profileFlags.contentPage, "content-page", 1, "content tab page")
	usersCmd.AddCommand(usersProfileCmd)
}

func newUserUseCase() user.UseCase {
	return userUC.New(authapi.New(client, logger), reelapi.New(client, logger), tokenMemory.New(logger), logger, userUC.Options{
		Debounce:     cliDebounce,
		RegistrySize: 1,
	})
}

func runUsersList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	sc, err := backendScope(ctx)
	if err != nil {
		return err
	}

	uc := newUserUseCase()
	defer uc.CloseSession(sc.SessionID)

	return showScreen(ctx, uc.Bind(ctx, sc), userFlags, []column[user.User]{
		{title: "ID", value: user.UserID},
		{title: "NAME", value: user.User.FullName},
		{title: "USERNAME", value: func(u user.User) string { return u.Username }},
		{title: "EMAIL", value: func(u user.User) string { return u.Email }},
		{title: "STATUS", value: user.User.Status},
		{title: "FOLLOWERS", value: func(u user.User) string { return strconv.Itoa(len(u.Followers)) }},
	})
}

func runUsersProfile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	sc, err := backendScope(ctx)
	if err != nil {
		return err
	}

	out, err := newUserUseCase().Profile(ctx, sc, user.ProfileInput{
		ID:            args[0],
		ContentType:   profileFlags.contentType,
		ContentStatus: profileFlags.contentStatus,
		ContentPage:   profileFlags.contentPage,
	})
	if err != nil {
		return err
	}
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	u := out.User
	fmt.Printf("%s (@%s) <%s>  %s\n", u.FullName(), u.Username, u.Email, u.Status())
	fmt.Printf("Balance: %d %s (received %d, spent %d)\n\n",
		out.Balance.Tokens, token.Symbol, out.Balance.Received, out.Balance.Spent)

	printTable(out.Content.Items, []column[content.ContentItem]{
		{title: "ID", value: content.ItemID},
		{title: "DESCRIPTION", value: func(c content.ContentItem) string { return truncate(c.Description, 40) }},
		{title: "TYPE", value: func(c content.ContentItem) string { return deref(c.ContentType) }},
		{title: "STATUS", value: func(c content.ContentItem) string { return deref(c.Status) }},
	})
	fmt.Printf("\nContent page %d of %d (%d reels)\n\n", out.Content.Page, out.Content.TotalPages, out.Content.TotalItems)

	printTable(out.Transactions, []column[token.Transaction]{
		{title: "ID", value: token.TransactionID},
		{title: "TYPE", value: func(tx token.Transaction) string { return tx.Type }},
		{title: "AMOUNT", value: func(tx token.Transaction) string { return strconv.FormatInt(tx.Amount, 10) }},
		{title: "DATE", value: func(tx token.Transaction) string { return tx.Date.Format("2006-01-02 15:04") }},
		{title: "STATUS", value: func(tx token.Transaction) string { return tx.Status }},
	})
	return nil
}
