package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"social-admin-dashboard/config"
	"social-admin-dashboard/pkg/backend"
	"social-admin-dashboard/pkg/googleauth"
	"social-admin-dashboard/pkg/log"
	"social-admin-dashboard/pkg/scope"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Infrastructure
	backend *backend.Client
	scope   scope.Manager
	google  *googleauth.Client

	// Domain settings
	session  config.SessionConfig
	cookie   config.CookieConfig
	cors     config.CORSConfig
	auth     config.AuthConfig
	screens  config.ScreensConfig
	tokenCfg config.TokensConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Backend *backend.Client
	Scope   scope.Manager
	// Google is optional; without it Google sign-in answers 404.
	Google *googleauth.Client

	Session config.SessionConfig
	Cookie  config.CookieConfig
	CORS    config.CORSConfig
	Auth    config.AuthConfig
	Screens config.ScreensConfig
	Tokens  config.TokensConfig
}

// New creates a new HTTPServer instance and maps every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		backend:     cfg.Backend,
		scope:       cfg.Scope,
		google:      cfg.Google,
		session:     cfg.Session,
		cookie:      cfg.Cookie,
		cors:        cfg.CORS,
		auth:        cfg.Auth,
		screens:     cfg.Screens,
		tokenCfg:    cfg.Tokens,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.backend == nil {
		return errors.New("backend client is required")
	}
	if srv.scope == nil {
		return errors.New("session token manager is required")
	}
	return nil
}
