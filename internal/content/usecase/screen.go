package usecase

import (
	"context"

	"social-admin-dashboard/internal/content"
	repo "social-admin-dashboard/internal/content/repository"
	"social-admin-dashboard/internal/model"
	"social-admin-dashboard/internal/screen"
)

// Bind returns the session's content screen, mounting it on first use.
func (uc *implUseCase) Bind(ctx context.Context, sc model.Scope) *screen.Screen[content.ContentItem] {
	return uc.binding.Bind(ctx, sc)
}

// CloseSession unmounts the session's content screen.
func (uc *implUseCase) CloseSession(sessionID string) int {
	return uc.binding.CloseSession(sessionID)
}

// fetch is the screen's Source: one backend page of reels.
func (uc *implUseCase) fetch(ctx context.Context, q screen.Query) ([]content.ContentItem, error) {
	items, _, err := uc.repo.ListReels(ctx, repo.ListReelsOptions{
		Token: q.AccessToken,
		Page:  q.Page,
		Limit: q.Limit,
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// mutate is the screen's Mutator for the row actions.
func (uc *implUseCase) mutate(ctx context.Context, token, id string, action screen.Action) error {
	sc := model.Scope{AccessToken: token}
	switch action {
	case screen.ActionApprove:
		return uc.SetStatus(ctx, sc, id, content.StatusApproved)
	case screen.ActionReject:
		return uc.SetStatus(ctx, sc, id, content.StatusRejected)
	case screen.ActionDelete:
		return uc.Delete(ctx, sc, id)
	default:
		return screen.ErrUnknownAction
	}
}
