package googleauth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

var (
	ErrNotConfigured = errors.New("google sign-in is not configured")
	ErrMissingCode   = errors.New("authorization code is missing")
)

// Config holds the OAuth client registered for the dashboard.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	// Endpoint overrides google.Endpoint.
	Endpoint *oauth2.Endpoint
	// APIEndpoint overrides the userinfo API root.
	APIEndpoint string
}

// UserInfo is the Google account that signed in.
type UserInfo struct {
	ID            string
	Email         string
	Name          string
	Picture       string
	VerifiedEmail bool
}

// Client runs the OAuth2 authorization code flow against Google.
type Client struct {
	cfg         *oauth2.Config
	apiEndpoint string
}

// New creates a Google sign-in client. A config without a client id gives a
// client whose Enabled is false.
func New(c Config) *Client {
	endpoint := google.Endpoint
	if c.Endpoint != nil {
		endpoint = *c.Endpoint
	}
	return &Client{
		cfg: &oauth2.Config{
			ClientID:     c.ClientID,
			ClientSecret: c.ClientSecret,
			RedirectURL:  c.RedirectURL,
			Endpoint:     endpoint,
			Scopes:       []string{"openid", goauth2.UserinfoEmailScope, goauth2.UserinfoProfileScope},
		},
		apiEndpoint: c.APIEndpoint,
	}
}

// Enabled reports whether a client id is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.cfg.ClientID != ""
}

// AuthCodeURL returns the consent page URL carrying state.
func (c *Client) AuthCodeURL(state string) (string, error) {
	if !c.Enabled() {
		return "", ErrNotConfigured
	}
	return c.cfg.AuthCodeURL(state, oauth2.AccessTypeOnline), nil
}

// Exchange trades code for a token and loads the account behind it.
func (c *Client) Exchange(ctx context.Context, code string) (UserInfo, error) {
	if !c.Enabled() {
		return UserInfo{}, ErrNotConfigured
	}
	if code == "" {
		return UserInfo{}, ErrMissingCode
	}

	tok, err := c.cfg.Exchange(ctx, code)
	if err != nil {
		return UserInfo{}, fmt.Errorf("failed to exchange google auth code: %w", err)
	}

	opts := []option.ClientOption{option.WithTokenSource(c.cfg.TokenSource(ctx, tok))}
	if c.apiEndpoint != "" {
		opts = append(opts, option.WithEndpoint(c.apiEndpoint))
	}
	svc, err := goauth2.NewService(ctx, opts...)
	if err != nil {
		return UserInfo{}, fmt.Errorf("failed to create google oauth2 service: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return UserInfo{}, fmt.Errorf("failed to fetch google userinfo: %w", err)
	}

	out := UserInfo{
		ID:      info.Id,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}
	if info.VerifiedEmail != nil {
		out.VerifiedEmail = *info.VerifiedEmail
	}
	return out, nil
}
