package auth

import "social-admin-dashboard/internal/model"

// --- UseCase Inputs ---

type SignInInput struct {
	Email    string
	Password string
}

type SignUpInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Gender    string
}

type VerifyEmailInput struct {
	Email            string
	VerificationCode string
}

type ResendOTPInput struct {
	Email string
}

type GoogleCallbackInput struct {
	State         string
	ExpectedState string
	Code          string
}

// --- UseCase Outputs ---

// SignInOutput is a fresh dashboard session and the token that names it.
type SignInOutput struct {
	Session model.Session
	Token   string
}

type SignUpOutput struct {
	Email string
}
