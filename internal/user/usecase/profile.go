package usecase

import (
	"context"
	"errors"
	"strings"

	"social-admin-dashboard/internal/content"
	contentRepo "social-admin-dashboard/internal/content/repository"
	"social-admin-dashboard/internal/model"
	"social-admin-dashboard/internal/screen"
	"social-admin-dashboard/internal/token"
	tokenRepo "social-admin-dashboard/internal/token/repository"
	"social-admin-dashboard/internal/user"
	"social-admin-dashboard/internal/user/repository"
	"social-admin-dashboard/pkg/listing"
)

// Profile assembles the profile page: the account, one page of the reels it
// authored and its recent token transactions.
func (uc *implUseCase) Profile(ctx context.Context, sc model.Scope, input user.ProfileInput) (user.ProfileOutput, error) {
	if sc.AccessToken == "" {
		return user.ProfileOutput{}, screen.ErrAuthMissing
	}

	cfg := content.ListConfig(user.ProfileContentPageSize)
	filters := listing.FilterState{}.
		With("contentType", input.ContentType).
		With("status", input.ContentStatus)
	if err := cfg.Validate(filters); err != nil {
		return user.ProfileOutput{}, err
	}

	u, err := uc.repo.GetUser(ctx, repository.GetUserOptions{Token: sc.AccessToken, ID: input.ID})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.ProfileOutput{}, user.ErrNotFound
		}
		uc.l.Errorf(ctx, "uc.Profile GetUser: %v", err)
		return user.ProfileOutput{}, err
	}

	reels, err := uc.authoredReels(ctx, sc.AccessToken, u.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Profile authoredReels: %v", err)
		return user.ProfileOutput{}, err
	}

	txs, err := uc.transactionsOf(ctx, u)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Profile transactionsOf: %v", err)
		return user.ProfileOutput{}, err
	}

	recent := txs
	if len(recent) > user.ProfileTransactionLimit {
		recent = recent[:user.ProfileTransactionLimit]
	}

	return user.ProfileOutput{
		User:         u,
		Content:      listing.Paginate(cfg.Apply(reels, filters), input.ContentPage, user.ProfileContentPageSize),
		Transactions: recent,
		Balance:      balanceOf(txs),
	}, nil
}

// authoredReels fetches the first remote page of reels and keeps the ones
// whose author is userID.
func (uc *implUseCase) authoredReels(ctx context.Context, accessToken, userID string) ([]content.ContentItem, error) {
	items, _, err := uc.reels.ListReels(ctx, contentRepo.ListReelsOptions{
		Token: accessToken,
		Page:  1,
		Limit: uc.opts.ReelLimit,
	})
	if err != nil {
		return nil, err
	}

	out := make([]content.ContentItem, 0, len(items))
	for _, it := range items {
		if it.Profile != nil && it.Profile.ID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

// transactionsOf returns the ledger entries booked under the user's display
// name or username, newest first.
func (uc *implUseCase) transactionsOf(ctx context.Context, u user.User) ([]token.Transaction, error) {
	txs, err := uc.ledger.ListTransactions(ctx, tokenRepo.ListTransactionsOptions{Page: 1})
	if err != nil {
		return nil, err
	}

	name := u.FullName()
	var out []token.Transaction
	for _, tx := range txs {
		if (name != "" && strings.EqualFold(tx.UserName, name)) ||
			(u.Username != "" && strings.EqualFold(tx.UserName, u.Username)) {
			out = append(out, tx)
		}
	}
	return out, nil
}

func balanceOf(txs []token.Transaction) user.Balance {
	var b user.Balance
	for _, tx := range txs {
		if tx.Status != token.StatusCompleted {
			continue
		}
		switch tx.Type {
		case token.TypeBurn:
			b.Spent += tx.Amount
		default:
			b.Received += tx.Amount
		}
	}
	b.Tokens = b.Received - b.Spent
	return b
}
