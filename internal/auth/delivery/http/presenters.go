package http

import (
	"time"

	"social-admin-dashboard/internal/auth"
	"social-admin-dashboard/internal/model"
)

// --- Request DTOs ---

type signInReq struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r signInReq) toInput() auth.SignInInput {
	return auth.SignInInput{Email: r.Email, Password: r.Password}
}

type signUpReq struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName"  binding:"required,max=100"`
	Email     string `json:"email"     binding:"required,email"`
	Password  string `json:"password"  binding:"required,min=6"`
	Gender    string `json:"gender"    binding:"omitempty,oneof=male female other"`
}

func (r signUpReq) toInput() auth.SignUpInput {
	return auth.SignUpInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
		Gender:    r.Gender,
	}
}

type verifyEmailReq struct {
	Email            string `json:"email"            binding:"required,email"`
	VerificationCode string `json:"verificationCode" binding:"required"`
}

func (r verifyEmailReq) toInput() auth.VerifyEmailInput {
	return auth.VerifyEmailInput{Email: r.Email, VerificationCode: r.VerificationCode}
}

type resendOTPReq struct {
	Email string `json:"email" binding:"required,email"`
}

type googleCallbackReq struct {
	State string `form:"state"`
	Code  string `form:"code"`
}

// --- Response DTOs ---

type profileResp struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
	Picture  string `json:"picture,omitempty"`
}

type sessionResp struct {
	ID              string      `json:"id"`
	Provider        string      `json:"provider"`
	Profile         profileResp `json:"profile"`
	HasBackendToken bool        `json:"has_backend_token"`
	ExpiresAt       time.Time   `json:"expires_at"`
}

func newSessionResp(s model.Session) sessionResp {
	return sessionResp{
		ID:       s.ID,
		Provider: string(s.Provider),
		Profile: profileResp{
			ID:       s.Profile.ID,
			Email:    s.Profile.Email,
			Name:     s.Profile.Name,
			Username: s.Profile.Username,
			Role:     s.Profile.Role,
			Picture:  s.Profile.Picture,
		},
		HasBackendToken: s.HasBackendToken(),
		ExpiresAt:       s.ExpiresAt,
	}
}

type signInResp struct {
	Token   string      `json:"token"`
	Session sessionResp `json:"session"`
}

func (h *handler) newSignInResp(out auth.SignInOutput) signInResp {
	return signInResp{Token: out.Token, Session: newSessionResp(out.Session)}
}

type signUpResp struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *handler) newSignUpResp(out auth.SignUpOutput) signUpResp {
	return signUpResp{
		Email:   out.Email,
		Message: "Registration successful. Please check your email for the verification code.",
	}
}

type googleLoginResp struct {
	URL string `json:"url"`
}
