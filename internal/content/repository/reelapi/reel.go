package reelapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"social-admin-dashboard/internal/content"
	"social-admin-dashboard/internal/content/repository"
	"social-admin-dashboard/pkg/backend"
)

type patchReq struct {
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	ContentType *string `json:"contentType,omitempty"`
	MediaType   *string `json:"mediaType,omitempty"`
}

// ListReels fetches one backend page of reels. The body may be a bare array
// or a {data, total, page, limit} envelope.
func (r *implRepository) ListReels(ctx context.Context, opt repository.ListReelsOptions) ([]content.ContentItem, int, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(opt.Page))
	q.Set("limit", strconv.Itoa(opt.Limit))

	list, err := backend.GetList[content.ContentItem](ctx, r.client, backend.Request{
		Method: http.MethodGet,
		Path:   "/reel/many",
		Query:  q,
		Token:  opt.Token,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}
	return list.Items, list.Total, nil
}

// GetReel fetches a single reel.
func (r *implRepository) GetReel(ctx context.Context, opt repository.GetReelOptions) (content.ContentItem, error) {
	var item content.ContentItem
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   reelPath(opt.ID),
		Token:  opt.Token,
	}, &item)
	if err != nil {
		if he, ok := backend.AsHTTPError(err); ok && he.StatusCode == http.StatusNotFound {
			return content.ContentItem{}, repository.ErrNotFound
		}
		return content.ContentItem{}, fmt.Errorf("%w: %w", repository.ErrFailedToGet, err)
	}
	if item.ID == "" {
		return content.ContentItem{}, repository.ErrNotFound
	}
	return item, nil
}

// PatchReel sends a partial update.
func (r *implRepository) PatchReel(ctx context.Context, opt repository.PatchReelOptions) error {
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPatch,
		Path:   reelPath(opt.ID),
		Token:  opt.Token,
		Body: patchReq{
			Description: opt.Description,
			Status:      opt.Status,
			ContentType: opt.ContentType,
			MediaType:   opt.MediaType,
		},
	}, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", repository.ErrFailedToUpdate, err)
	}
	return nil
}

// DeleteReel removes a reel.
func (r *implRepository) DeleteReel(ctx context.Context, opt repository.DeleteReelOptions) error {
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodDelete,
		Path:   reelPath(opt.ID),
		Token:  opt.Token,
	}, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", repository.ErrFailedToDelete, err)
	}
	return nil
}
