package usecase

import (
	"slices"

	"social-admin-dashboard/internal/content"
)

// normalize drops empty form fields so they are not sent.
func normalize(in content.UpdateInput) content.UpdateInput {
	in.Status = nonEmpty(in.Status)
	in.ContentType = nonEmpty(in.ContentType)
	in.MediaType = nonEmpty(in.MediaType)
	return in
}

func validateUpdate(in content.UpdateInput) error {
	if in.Description == nil && in.Status == nil && in.ContentType == nil && in.MediaType == nil {
		return content.ErrNothingToUpdate
	}
	if in.Status != nil && !slices.Contains(content.Statuses, *in.Status) {
		return content.ErrInvalidStatus
	}
	if in.ContentType != nil && !slices.Contains(content.ContentTypes, *in.ContentType) {
		return content.ErrInvalidContentType
	}
	if in.MediaType != nil && !slices.Contains(content.MediaTypes, *in.MediaType) {
		return content.ErrInvalidMediaType
	}
	return nil
}

func nonEmpty(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return p
}
