package usecase

import (
	"context"
	"math"

	"social-admin-dashboard/internal/model"
	"social-admin-dashboard/internal/token"
	"social-admin-dashboard/internal/token/repository"
)

// PriceHistory lists the sale price periods, current first.
func (uc *implUseCase) PriceHistory(ctx context.Context) ([]token.PricePoint, error) {
	history, err := uc.repo.ListPriceHistory(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.PriceHistory ListPriceHistory: %v", err)
		return nil, err
	}
	return history, nil
}

// UpdateSale saves the sale price and whether the sale is open.
func (uc *implUseCase) UpdateSale(ctx context.Context, sc model.Scope, input token.SaleInput) (token.SaleOutput, error) {
	if math.IsNaN(input.Price) || math.IsInf(input.Price, 0) || input.Price <= 0 {
		return token.SaleOutput{Notice: invalidPriceNotice}, token.ErrInvalidPrice
	}

	stats, history, err := uc.repo.UpdateSale(ctx, repository.UpdateSaleOptions{
		Price:  input.Price,
		Active: input.Active,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateSale UpdateSale: %v", err)
		return token.SaleOutput{Notice: saleFailedNotice}, err
	}
	uc.l.Infof(ctx, "uc.UpdateSale price=%.2f active=%t by %s", input.Price, input.Active, sc.Email)

	return token.SaleOutput{
		Stats:   stats,
		History: history,
		Notice:  saleNotice(input),
	}, nil
}
