package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-admin-dashboard/config"
	"social-admin-dashboard/internal/auth"
	"social-admin-dashboard/internal/middleware"
	"social-admin-dashboard/internal/model"
	"social-admin-dashboard/pkg/backend"
	"social-admin-dashboard/pkg/log"
)

type fakeUseCase struct {
	signInErr  error
	signedOut  []string
	googleURL  string
	googleErr  error
	callbackIn auth.GoogleCallbackInput
	session    model.Session
}

func (f *fakeUseCase) SignIn(ctx context.Context, input auth.SignInInput) (auth.SignInOutput, error) {
	if f.signInErr != nil {
		return auth.SignInOutput{}, f.signInErr
	}
	return auth.SignInOutput{Session: f.session, Token: "dash-token"}, nil
}

func (f *fakeUseCase) SignUp(ctx context.Context, input auth.SignUpInput) (auth.SignUpOutput, error) {
	return auth.SignUpOutput{Email: input.Email}, nil
}

func (f *fakeUseCase) VerifyEmail(ctx context.Context, input auth.VerifyEmailInput) error {
	return &backend.HTTPError{StatusCode: 400, Status: "400 Bad Request", Message: "Invalid verification code"}
}

func (f *fakeUseCase) ResendOTP(ctx context.Context, input auth.ResendOTPInput) error { return nil }

func (f *fakeUseCase) GoogleAuthURL(ctx context.Context, state string) (string, error) {
	return f.googleURL + "?state=" + state, f.googleErr
}

func (f *fakeUseCase) GoogleCallback(ctx context.Context, input auth.GoogleCallbackInput) (auth.SignInOutput, error) {
	f.callbackIn = input
	if input.State != input.ExpectedState {
		return auth.SignInOutput{}, auth.ErrInvalidState
	}
	return auth.SignInOutput{Session: f.session, Token: "google-token"}, nil
}

func (f *fakeUseCase) Authenticate(ctx context.Context, token string) (model.Session, error) {
	if token != "dash-token" {
		return model.Session{}, auth.ErrSessionNotFound
	}
	return f.session, nil
}

func (f *fakeUseCase) SignOut(ctx context.Context, sessionID string) error {
	f.signedOut = append(f.signedOut, sessionID)
	return nil
}

func setupRouter(uc *fakeUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cookie := config.CookieConfig{Name: "dashboard_session"}
	l := log.NewNop()
	mw := middleware.New(l, uc, cookie, config.CORSConfig{})

	r := gin.New()
	RegisterRoutes(r.Group("/auth"), New(l, uc, cookie), mw)
	return r
}

func doJSON(r http.Handler, method, path, body string, mod func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if mod != nil {
		mod(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func testSession() model.Session {
	return model.Session{
		ID:          "sess-1",
		Provider:    model.ProviderCredentials,
		Profile:     model.Profile{ID: "u1", Email: "admin@example.com", Name: "Admin"},
		AccessToken: "backend",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
}

func TestSignIn(t *testing.T) {
	t.Run("sets the session cookie", func(t *testing.T) {
		uc := &fakeUseCase{session: testSession()}
		w := doJSON(setupRouter(uc), http.MethodPost, "/auth/signin", `{"email":"admin@example.com","password":"pw"}`, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Set-Cookie"), "dashboard_session=dash-token")

		var body struct {
			Data signInResp `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "dash-token", body.Data.Token)
		assert.True(t, body.Data.Session.HasBackendToken)
	})

	t.Run("missing password", func(t *testing.T) {
		w := doJSON(setupRouter(&fakeUseCase{}), http.MethodPost, "/auth/signin", `{"email":"admin@example.com"}`, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Email and password are required")
	})

	t.Run("rejected credentials", func(t *testing.T) {
		uc := &fakeUseCase{signInErr: auth.ErrInvalidCredentials}
		w := doJSON(setupRouter(uc), http.MethodPost, "/auth/signin", `{"email":"a@b.c","password":"x"}`, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rate limited", func(t *testing.T) {
		uc := &fakeUseCase{signInErr: auth.ErrTooManyAttempts}
		w := doJSON(setupRouter(uc), http.MethodPost, "/auth/signin", `{"email":"a@b.c","password":"x"}`, nil)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})
}

func TestVerifyEmailPassesBackendMessage(t *testing.T) {
	w := doJSON(setupRouter(&fakeUseCase{}), http.MethodPost, "/auth/verify-email", `{"email":"a@b.c","verificationCode":"123"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid verification code")
}

func TestSessionAndSignOut(t *testing.T) {
	uc := &fakeUseCase{session: testSession()}
	r := setupRouter(uc)

	w := doJSON(r, http.MethodGet, "/auth/session", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	bearer := func(req *http.Request) { req.Header.Set("Authorization", "Bearer dash-token") }
	w = doJSON(r, http.MethodGet, "/auth/session", "", bearer)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@example.com")

	cookie := func(req *http.Request) { req.AddCookie(&http.Cookie{Name: "dashboard_session", Value: "dash-token"}) }
	w = doJSON(r, http.MethodPost, "/auth/signout", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"sess-1"}, uc.signedOut)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestGoogleFlow(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		uc := &fakeUseCase{googleErr: auth.ErrGoogleDisabled}
		w := doJSON(setupRouter(uc), http.MethodGet, "/auth/google/login", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("login then callback", func(t *testing.T) {
		uc := &fakeUseCase{googleURL: "https://accounts.example.com/auth", session: testSession()}
		r := setupRouter(uc)

		w := doJSON(r, http.MethodGet, "/auth/google/login", "", nil)
		require.Equal(t, http.StatusFound, w.Code)
		assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "https://accounts.example.com/auth?state="))

		var state string
		for _, c := range w.Result().Cookies() {
			if c.Name == stateCookieName {
				state = c.Value
			}
		}
		require.NotEmpty(t, state)

		w = doJSON(r, http.MethodGet, "/auth/google/callback?state="+state+"&code=abc", "", func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: stateCookieName, Value: state})
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "abc", uc.callbackIn.Code)
		assert.Contains(t, w.Body.String(), "google-token")
	})

	t.Run("state mismatch", func(t *testing.T) {
		uc := &fakeUseCase{session: testSession()}
		w := doJSON(setupRouter(uc), http.MethodGet, "/auth/google/callback?state=a&code=abc", "", func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: stateCookieName, Value: "b"})
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
