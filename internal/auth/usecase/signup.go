package usecase

import (
	"context"
	"strings"

	"social-admin-dashboard/internal/auth"
	"social-admin-dashboard/internal/auth/repository"
)

// signUpRole is the only role the dashboard registers accounts with.
const signUpRole = "user"

// SignUp registers a new backend account; the backend then emails a code.
func (uc *implUseCase) SignUp(ctx context.Context, input auth.SignUpInput) (auth.SignUpOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return auth.SignUpOutput{}, auth.ErrMissingCredentials
	}

	err := uc.accounts.Register(ctx, repository.RegisterOptions{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     email,
		Password:  input.Password,
		Gender:    input.Gender,
		Role:      signUpRole,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SignUp Register: %v", err)
		return auth.SignUpOutput{}, err
	}
	return auth.SignUpOutput{Email: email}, nil
}

// VerifyEmail submits the one-time code sent after sign-up.
func (uc *implUseCase) VerifyEmail(ctx context.Context, input auth.VerifyEmailInput) error {
	if input.Email == "" || input.VerificationCode == "" {
		return auth.ErrInvalidPayload
	}
	if err := uc.accounts.VerifyEmail(ctx, repository.VerifyEmailOptions{
		Email:            input.Email,
		VerificationCode: input.VerificationCode,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.VerifyEmail: %v", err)
		return err
	}
	return nil
}

// ResendOTP asks for a new verification code.
func (uc *implUseCase) ResendOTP(ctx context.Context, input auth.ResendOTPInput) error {
	if input.Email == "" {
		return auth.ErrInvalidPayload
	}
	if err := uc.accounts.ResendOTP(ctx, input.Email); err != nil {
		uc.l.Errorf(ctx, "uc.ResendOTP: %v", err)
		return err
	}
	return nil
}
