package user

import "social-admin-dashboard/pkg/listing"

const DefaultPageSize = 5

// PageSizes are the page sizes the user table offers.
var PageSizes = []int{5, 10, 20}

// ListConfig is the search and filter setup of the user screen. Search text
// is also sent to the backend search endpoint.
func ListConfig(pageSize int) listing.Config[User] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return listing.Config[User]{
		SearchFields: []listing.SearchField[User]{
			{Name: "name", Get: User.FullName},
			{Name: "email", Get: func(u User) string { return u.Email }},
			{Name: "username", Get: func(u User) string { return u.Username }},
		},
		Filters: []listing.Filter[User]{
			{
				Name: "status",
				Derived: map[string]func(User) bool{
					StatusActive:    func(u User) bool { return u.Role != RoleSuspended },
					StatusSuspended: func(u User) bool { return u.Role == RoleSuspended },
					StatusVerified:  func(u User) bool { return u.Role == RoleAdmin },
				},
				Options: []string{StatusActive, StatusSuspended, StatusVerified},
			},
		},
		PageSize:         pageSize,
		PageSizes:        PageSizes,
		ServerSideSearch: true,
	}
}

// UserID returns the id of a user.
func UserID(u User) string { return u.ID }
