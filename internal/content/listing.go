package content

import "social-admin-dashboard/pkg/listing"

// DefaultPageSize is how many rows the content table shows.
const DefaultPageSize = 10

// ListConfig is the search and filter setup of the content screen.
func ListConfig(pageSize int) listing.Config[ContentItem] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return listing.Config[ContentItem]{
		SearchFields: []listing.SearchField[ContentItem]{
			{Name: "description", Get: func(c ContentItem) string { return c.Description }},
			{Name: "profile.name", Get: ContentItem.AuthorName},
		},
		Filters: []listing.Filter[ContentItem]{
			{Name: "contentType", Value: func(c ContentItem) string { return deref(c.ContentType) }, Options: ContentTypes},
			{Name: "mediaType", Value: func(c ContentItem) string { return deref(c.MediaType) }, Options: MediaTypes},
			{Name: "status", Value: func(c ContentItem) string { return deref(c.Status) }, Options: Statuses},
		},
		PageSize: pageSize,
	}
}

// ItemID returns the id of a content item.
func ItemID(c ContentItem) string { return c.ID }
