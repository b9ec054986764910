package usecase

import (
	"context"
	"strings"
	"time"

	"social-admin-dashboard/internal/model"
	"social-admin-dashboard/internal/token"
	"social-admin-dashboard/internal/token/repository"
)

// Stats returns the supply overview.
func (uc *implUseCase) Stats(ctx context.Context) (token.Stats, error) {
	stats, err := uc.repo.GetStats(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats GetStats: %v", err)
		return token.Stats{}, err
	}
	return stats, nil
}

// Mint issues new tokens to a wallet.
func (uc *implUseCase) Mint(ctx context.Context, sc model.Scope, input token.SupplyInput) (token.SupplyOutput, error) {
	return uc.supply(ctx, sc, token.TypeMint, input)
}

// Burn destroys tokens held by a wallet.
func (uc *implUseCase) Burn(ctx context.Context, sc model.Scope, input token.SupplyInput) (token.SupplyOutput, error) {
	return uc.supply(ctx, sc, token.TypeBurn, input)
}

func (uc *implUseCase) supply(ctx context.Context, sc model.Scope, typ string, input token.SupplyInput) (token.SupplyOutput, error) {
	input.Address = strings.TrimSpace(input.Address)
	if input.Address == "" || input.Amount <= 0 {
		return token.SupplyOutput{Notice: invalidInputNotice}, token.ErrInvalidInput
	}

	tx, stats, err := uc.repo.ApplySupply(ctx, repository.ApplySupplyOptions{
		Type:     typ,
		Address:  input.Address,
		UserName: ShortAddress(input.Address),
		Amount:   input.Amount,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.supply ApplySupply %s: %v", typ, err)
		return token.SupplyOutput{Notice: supplyFailedNotice(typ)}, err
	}
	uc.l.Infof(ctx, "uc.supply %s %d to %s by %s", typ, input.Amount, input.Address, sc.Email)

	if uc.opts.SettleDelay <= 0 {
		if uc.settle(ctx, sc.SessionID, tx.ID) {
			tx.Status = token.StatusCompleted
		}
	} else {
		uc.refresh(ctx, sc.SessionID)
		settleCtx := context.WithoutCancel(ctx)
		time.AfterFunc(uc.opts.SettleDelay, func() {
			uc.settle(settleCtx, sc.SessionID, tx.ID)
		})
	}

	return token.SupplyOutput{
		Transaction: tx,
		Stats:       stats,
		Notice:      uc.supplyNotice(typ, input),
	}, nil
}

// settle completes a pending supply transaction and refreshes the ledger.
func (uc *implUseCase) settle(ctx context.Context, sessionID, id string) bool {
	defer uc.refresh(ctx, sessionID)
	err := uc.repo.SetTransactionStatus(ctx, repository.SetTransactionStatusOptions{
		ID:     id,
		Status: token.StatusCompleted,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.settle SetTransactionStatus %s: %v", id, err)
		return false
	}
	return true
}
