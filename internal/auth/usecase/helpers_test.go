package usecase

import (
	"context"

	"social-admin-dashboard/internal/auth/repository"
	"social-admin-dashboard/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock account repository for testing
type mockAccounts struct {
	token      string
	loginErr   error
	profile    model.Profile
	profileErr error
	registered []repository.RegisterOptions
	logins     int
}

func (m *mockAccounts) Login(ctx context.Context, opt repository.LoginOptions) (string, error) {
	m.logins++
	return m.token, m.loginErr
}

func (m *mockAccounts) Profile(ctx context.Context, accessToken string) (model.Profile, error) {
	return m.profile, m.profileErr
}

func (m *mockAccounts) Register(ctx context.Context, opt repository.RegisterOptions) error {
	m.registered = append(m.registered, opt)
	return nil
}

func (m *mockAccounts) VerifyEmail(ctx context.Context, opt repository.VerifyEmailOptions) error {
	return nil
}

func (m *mockAccounts) ResendOTP(ctx context.Context, email string) error {
	return nil
}

// Mock session closer for testing
type mockCloser struct {
	closed []string
}

func (m *mockCloser) CloseSession(sessionID string) int {
	m.closed = append(m.closed, sessionID)
	return 1
}
