package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"social-admin-dashboard/internal/model"
	pkgErrors "social-admin-dashboard/pkg/errors"
	"social-admin-dashboard/pkg/log"
	"social-admin-dashboard/pkg/response"
	"social-admin-dashboard/pkg/scope"
)

const (
	// SessionKey is the gin context key holding the model.Session.
	SessionKey = "session"
	// TokenKey is the gin context key holding the raw session token.
	TokenKey = "session_token"

	requestIDHeader = "X-Request-ID"
)

// Auth requires a valid dashboard session, read from the bearer header or
// the session cookie.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.tokenFrom(c)
		if token == "" {
			response.Unauthorized(c)
			return
		}

		ctx := c.Request.Context()
		sess, err := m.auth.Authenticate(ctx, token)
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			response.Error(c, pkgErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		ctx = scope.SetScopeToContext(ctx, model.ScopeFromSession(sess))
		c.Request = c.Request.WithContext(ctx)
		c.Set(SessionKey, sess)
		c.Set(TokenKey, token)
		c.Next()
	}
}

// RequestID tags every request with an id, reusing the caller's X-Request-ID.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// Logger writes one line per request.
func (m Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.l.Infof(c.Request.Context(), "%s %s %d %s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// CORS allows the dashboard front end to call the API with credentials.
func (m Middleware) CORS() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders:    []string{requestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(m.corsConfig.AllowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = m.corsConfig.AllowedOrigins
	}
	return cors.New(cfg)
}

func (m Middleware) tokenFrom(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if after, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(after)
		}
	}
	if m.cookieConfig.Name != "" {
		if v, err := c.Cookie(m.cookieConfig.Name); err == nil {
			return v
		}
	}
	return ""
}

// GetSession returns the session set by Auth.
func GetSession(c *gin.Context) (model.Session, bool) {
	v, ok := c.Get(SessionKey)
	if !ok {
		return model.Session{}, false
	}
	sess, ok := v.(model.Session)
	return sess, ok
}

// GetToken returns the raw session token set by Auth.
func GetToken(c *gin.Context) string {
	return c.GetString(TokenKey)
}
