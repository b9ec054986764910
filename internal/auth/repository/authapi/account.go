package authapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"social-admin-dashboard/internal/auth/repository"
	"social-admin-dashboard/internal/model"
	"social-admin-dashboard/pkg/backend"
)

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	AccessToken string `json:"accessToken"`
}

type profileResp struct {
	ID         string `json:"id"`
	MongoID    string `json:"_id"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	ProfilePic string `json:"profilePic"`
}

type registerReq struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Gender    string `json:"gender,omitempty"`
	Role      string `json:"role"`
}

type verifyEmailReq struct {
	Email            string `json:"email"`
	VerificationCode string `json:"verificationCode"`
}

type resendOTPReq struct {
	Email string `json:"email"`
}

// Login exchanges credentials for a backend access token.
func (r *implRepository) Login(ctx context.Context, opt repository.LoginOptions) (string, error) {
	var resp loginResp
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   loginReq{Email: opt.Email, Password: opt.Password},
	}, &resp)
	if err != nil {
		return "", fmt.Errorf("authapi.Login: %w", err)
	}
	if resp.AccessToken == "" {
		return "", repository.ErrNoAccessToken
	}
	return resp.AccessToken, nil
}

// Profile loads the account behind an access token.
func (r *implRepository) Profile(ctx context.Context, accessToken string) (model.Profile, error) {
	var resp profileResp
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   "/auth/profile",
		Token:  accessToken,
	}, &resp)
	if err != nil {
		return model.Profile{}, fmt.Errorf("authapi.Profile: %w", err)
	}

	id := resp.ID
	if id == "" {
		id = resp.MongoID
	}
	return model.Profile{
		ID:       id,
		Email:    resp.Email,
		Name:     strings.TrimSpace(resp.FirstName + " " + resp.LastName),
		Username: resp.Username,
		Role:     resp.Role,
		Picture:  resp.ProfilePic,
	}, nil
}

// Register creates a backend account.
func (r *implRepository) Register(ctx context.Context, opt repository.RegisterOptions) error {
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Body: registerReq{
			FirstName: opt.FirstName,
			LastName:  opt.LastName,
			Email:     opt.Email,
			Password:  opt.Password,
			Gender:    opt.Gender,
			Role:      opt.Role,
		},
	}, nil)
	if err != nil {
		return fmt.Errorf("authapi.Register: %w", err)
	}
	return nil
}

// VerifyEmail submits the emailed one-time code.
func (r *implRepository) VerifyEmail(ctx context.Context, opt repository.VerifyEmailOptions) error {
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   "/auth/verifyEmail",
		Body:   verifyEmailReq{Email: opt.Email, VerificationCode: opt.VerificationCode},
	}, nil)
	if err != nil {
		return fmt.Errorf("authapi.VerifyEmail: %w", err)
	}
	return nil
}

// ResendOTP asks the backend to email a new code.
func (r *implRepository) ResendOTP(ctx context.Context, email string) error {
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   "/auth/resend-otp",
		Body:   resendOTPReq{Email: email},
	}, nil)
	if err != nil {
		return fmt.Errorf("authapi.ResendOTP: %w", err)
	}
	return nil
}
