package usecase

import (
	"context"
	"errors"
	"slices"

	"social-admin-dashboard/internal/content"
	repo "social-admin-dashboard/internal/content/repository"
	"social-admin-dashboard/internal/model"
	"social-admin-dashboard/internal/screen"
)

// Detail loads one reel for the update form.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (content.ContentItem, error) {
	if sc.AccessToken == "" {
		return content.ContentItem{}, screen.ErrAuthMissing
	}
	item, err := uc.repo.GetReel(ctx, repo.GetReelOptions{Token: sc.AccessToken, ID: id})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return content.ContentItem{}, content.ErrNotFound
		}
		uc.l.Errorf(ctx, "uc.Detail GetReel: %v", err)
		return content.ContentItem{}, err
	}
	return item, nil
}

// Update submits the update form. On success the screen refetches, closes
// the detail view and queues "Content updated successfully".
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input content.UpdateInput) (screen.Outcome, error) {
	input = normalize(input)
	if err := validateUpdate(input); err != nil {
		return screen.Outcome{}, err
	}

	s := uc.Bind(ctx, sc)
	out := s.Submit(ctx, input.ID, func(ctx context.Context, token string) error {
		return uc.repo.PatchReel(ctx, repo.PatchReelOptions{
			Token:       token,
			ID:          input.ID,
			Description: input.Description,
			Status:      input.Status,
			ContentType: input.ContentType,
			MediaType:   input.MediaType,
		})
	})
	if !out.OK() {
		uc.l.Warnf(ctx, "uc.Update %s: %v", input.ID, out.Err)
	}
	return out, nil
}

// SetStatus moves a reel to a moderation status.
func (uc *implUseCase) SetStatus(ctx context.Context, sc model.Scope, id, status string) error {
	if !slices.Contains(content.Statuses, status) {
		return content.ErrInvalidStatus
	}
	if sc.AccessToken == "" {
		return screen.ErrAuthMissing
	}
	if err := uc.repo.PatchReel(ctx, repo.PatchReelOptions{Token: sc.AccessToken, ID: id, Status: &status}); err != nil {
		uc.l.Errorf(ctx, "uc.SetStatus PatchReel: %v", err)
		return err
	}
	return nil
}

// Delete removes a reel.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if sc.AccessToken == "" {
		return screen.ErrAuthMissing
	}
	if err := uc.repo.DeleteReel(ctx, repo.DeleteReelOptions{Token: sc.AccessToken, ID: id}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteReel: %v", err)
		return err
	}
	return nil
}

// Reports lists the user reports filed against a reel.
func (uc *implUseCase) Reports(ctx context.Context, sc model.Scope, id string) (content.ReportsOutput, error) {
	if sc.AccessToken == "" {
		return content.ReportsOutput{}, screen.ErrAuthMissing
	}
	reports, total, err := uc.repo.ListReports(ctx, repo.GetReelOptions{Token: sc.AccessToken, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reports ListReports: %v", err)
		return content.ReportsOutput{}, err
	}
	return content.ReportsOutput{Reports: reports, Total: total}, nil
}
