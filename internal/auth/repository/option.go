package repository

// LoginOptions is the body of POST /auth/login.
type LoginOptions struct {
	Email    string
	Password string
}

// RegisterOptions is the body of POST /auth/register.
type RegisterOptions struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Gender    string
	Role      string
}

// VerifyEmailOptions is the body of POST /auth/verifyEmail.
type VerifyEmailOptions struct {
	Email            string
	VerificationCode string
}
