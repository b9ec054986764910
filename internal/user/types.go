package user

import (
	"strings"

	"social-admin-dashboard/internal/content"
	"social-admin-dashboard/internal/token"
	"social-admin-dashboard/pkg/listing"
)

// ScreenName is the registry name of the user management screen.
const ScreenName = "users"

// Roles the status filter is derived from.
const (
	RoleAdmin     = "Admin"
	RoleSuspended = "Suspended"
)

// ProfileContentPageSize is how many reels the profile's content tab shows.
const ProfileContentPageSize = 5

// ProfileTransactionLimit caps the profile's transaction history.
const ProfileTransactionLimit = 10

// Derived status filter values.
const (
	StatusActive    = "Active"
	StatusSuspended = "Suspended"
	StatusVerified  = "Verified"
)

// User is a platform account as the backend returns it.
type User struct {
	ID         string   `json:"_id"`
	Email      string   `json:"email"`
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Role       string   `json:"role"`
	Username   string   `json:"username"`
	Bio        string   `json:"bio,omitempty"`
	ProfilePic string   `json:"profilePic,omitempty"`
	Following  []string `json:"following"`
	Followers  []string `json:"followers"`
	CreatedAt  string   `json:"createdAt"`
	UpdatedAt  string   `json:"updatedAt"`
}

// FullName is "first last", trimmed.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Status is the badge shown for the account.
func (u User) Status() string {
	if u.Role == RoleSuspended {
		return StatusSuspended
	}
	return StatusActive
}

// --- UseCase Inputs ---

// ProfileInput selects a profile and the page of its content tab. Empty or
// "all" filters leave the tab unconstrained.
type ProfileInput struct {
	ID            string
	ContentType   string
	ContentStatus string
	ContentPage   int
}

// --- UseCase Outputs ---

// Balance sums a user's completed token transactions. Buys, gifts and mints
// are received; burns are spent.
type Balance struct {
	Tokens   int64
	Received int64
	Spent    int64
}

// ProfileOutput is the user profile page.
type ProfileOutput struct {
	User         User
	Content      listing.Page[content.ContentItem]
	Transactions []token.Transaction
	Balance      Balance
}

