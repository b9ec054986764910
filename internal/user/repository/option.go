package repository

// ListUsersOptions selects the full user list, or the backend search when
// Search is set.
type ListUsersOptions struct {
	Token  string
	Search string
}

// GetUserOptions identifies a single account.
type GetUserOptions struct {
	Token string
	ID    string
}
