package reelapi

import (
	"context"
	"fmt"
	"net/http"

	"social-admin-dashboard/internal/content"
	"social-admin-dashboard/internal/content/repository"
	"social-admin-dashboard/pkg/backend"
)

// ListReports returns the reports filed against a reel.
func (r *implRepository) ListReports(ctx context.Context, opt repository.GetReelOptions) ([]content.Report, int, error) {
	list, err := backend.GetList[content.Report](ctx, r.client, backend.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/reel/report/%s", opt.ID),
		Token:  opt.Token,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", repository.ErrFailedToGet, err)
	}
	return list.Items, list.Total, nil
}
