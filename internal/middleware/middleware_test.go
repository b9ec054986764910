package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-admin-dashboard/config"
	"social-admin-dashboard/internal/model"
	"social-admin-dashboard/pkg/log"
	"social-admin-dashboard/pkg/scope"
)

type fakeAuth struct{}

func (fakeAuth) Authenticate(ctx context.Context, token string) (model.Session, error) {
	if token != "good" {
		return model.Session{}, errors.New("bad token")
	}
	return model.Session{ID: "s1", AccessToken: "backend", Profile: model.Profile{ID: "u1", Email: "a@example.com"}}, nil
}

func setup(origins ...string) (*gin.Engine, Middleware) {
	gin.SetMode(gin.TestMode)
	mw := New(log.NewNop(), fakeAuth{}, config.CookieConfig{Name: "dashboard_session"}, config.CORSConfig{AllowedOrigins: origins})
	r := gin.New()
	r.Use(mw.RequestID(), mw.CORS())
	r.GET("/private", mw.Auth(), func(c *gin.Context) {
		sc, ok := scope.GetScopeFromContext(c.Request.Context())
		sess, _ := GetSession(c)
		c.JSON(http.StatusOK, gin.H{"ok": ok, "session": sc.SessionID, "backend": sc.AccessToken, "email": sess.Profile.Email, "token": GetToken(c)})
	})
	return r, mw
}

func TestAuth(t *testing.T) {
	r, _ := setup()

	tests := []struct {
		name     string
		prepare  func(*http.Request)
		wantCode int
	}{
		{name: "no token", prepare: func(*http.Request) {}, wantCode: http.StatusUnauthorized},
		{name: "bad bearer", prepare: func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, wantCode: http.StatusUnauthorized},
		{name: "bearer", prepare: func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") }, wantCode: http.StatusOK},
		{name: "cookie", prepare: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "dashboard_session", Value: "good"}) }, wantCode: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			tt.prepare(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.JSONEq(t, `{"ok":true,"session":"s1","backend":"backend","email":"a@example.com","token":"good"}`, w.Body.String())
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	r, _ := setup()

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set(requestIDHeader, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-1", w.Header().Get(requestIDHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestCORS(t *testing.T) {
	r, _ := setup("http://dashboard.test")

	req := httptest.NewRequest(http.MethodOptions, "/private", nil)
	req.Header.Set("Origin", "http://dashboard.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://dashboard.test", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodOptions, "/private", nil)
	req.Header.Set("Origin", "http://evil.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
