package model

import "time"

// Provider is how a session was signed in.
type Provider string

const (
	ProviderCredentials Provider = "credentials"
	ProviderGoogle      Provider = "google"
)

// Profile is the signed-in admin as known to the backend.
type Profile struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
	Picture  string `json:"picture,omitempty"`
}

// Session is one signed-in dashboard session. AccessToken is the backend
// bearer token; it is empty for sessions that never reached the backend.
type Session struct {
	ID          string    `json:"id"`
	Provider    Provider  `json:"provider"`
	Profile     Profile   `json:"profile"`
	AccessToken string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// HasBackendToken reports whether data screens can be loaded.
func (s Session) HasBackendToken() bool {
	return s.AccessToken != ""
}

// Scope is the explicit authentication context handed to use cases.
type Scope struct {
	SessionID   string
	UserID      string
	Name        string
	Email       string
	Role        string
	AccessToken string
}

// DisplayName is the name shown on records the admin authors; the email
// stands in when the profile has no name.
func (sc Scope) DisplayName() string {
	if sc.Name != "" {
		return sc.Name
	}
	return sc.Email
}

// ScopeFromSession builds a Scope from a session.
func ScopeFromSession(s Session) Scope {
	return Scope{
		SessionID:   s.ID,
		UserID:      s.Profile.ID,
		Name:        s.Profile.Name,
		Email:       s.Profile.Email,
		Role:        s.Profile.Role,
		AccessToken: s.AccessToken,
	}
}
