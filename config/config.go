package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Platform backend
	Backend BackendConfig

	// Sessions & sign-in
	Session     SessionConfig
	Cookie      CookieConfig
	GoogleOAuth GoogleOAuthConfig
	Auth        AuthConfig

	// List screens
	Screens ScreensConfig
	Tokens  TokensConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type BackendConfig struct {
	URL             string
	Timeout         time.Duration
	RateLimitPerSec float64
	RateLimitBurst  int
}

type SessionConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
	Size   int
}

type CookieConfig struct {
	Name   string
	Domain string
	Secure bool
}

type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type AuthConfig struct {
	LoginAttemptsPerMin int
}

// ScreensConfig tunes every list screen.
type ScreensConfig struct {
	Debounce       time.Duration
	ConfirmTTL     time.Duration
	RegistrySize   int
	RegistryTTL    time.Duration
	ContentLimit   int
	ContentPerPage int
	UserPageSize   int
	TxPageSize     int
}

// TokensConfig tunes the token administration demo ledger.
type TokensConfig struct {
	SettleDelay time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))

	// Platform backend
	cfg.Backend.URL = viper.GetString("backend.url")
	cfg.Backend.Timeout = viper.GetDuration("backend.timeout")
	cfg.Backend.RateLimitPerSec = viper.GetFloat64("backend.rate_limit_per_sec")
	cfg.Backend.RateLimitBurst = viper.GetInt("backend.rate_limit_burst")
	if backendURL := viper.GetString("backend_url"); backendURL != "" {
		cfg.Backend.URL = backendURL
	}

	// Sessions
	cfg.Session.Secret = expandEnvVar(viper.GetString("session.secret"))
	cfg.Session.Issuer = viper.GetString("session.issuer")
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.Size = viper.GetInt("session.size")
	if secret := viper.GetString("session_secret"); secret != "" {
		cfg.Session.Secret = secret
	}
	cfg.Cookie.Name = viper.GetString("cookie.name")
	cfg.Cookie.Domain = viper.GetString("cookie.domain")
	cfg.Cookie.Secure = viper.GetBool("cookie.secure")

	// Google sign-in (optional)
	cfg.GoogleOAuth.ClientID = expandEnvVar(viper.GetString("google_oauth.client_id"))
	cfg.GoogleOAuth.ClientSecret = expandEnvVar(viper.GetString("google_oauth.client_secret"))
	cfg.GoogleOAuth.RedirectURL = viper.GetString("google_oauth.redirect_url")

	cfg.Auth.LoginAttemptsPerMin = viper.GetInt("auth.login_attempts_per_min")

	// Screens
	cfg.Screens.Debounce = viper.GetDuration("screens.debounce")
	cfg.Screens.ConfirmTTL = viper.GetDuration("screens.confirm_ttl")
	cfg.Screens.RegistrySize = viper.GetInt("screens.registry_size")
	cfg.Screens.RegistryTTL = viper.GetDuration("screens.registry_ttl")
	cfg.Screens.ContentLimit = viper.GetInt("screens.content_limit")
	cfg.Screens.ContentPerPage = viper.GetInt("screens.content_per_page")
	cfg.Screens.UserPageSize = viper.GetInt("screens.user_page_size")
	cfg.Screens.TxPageSize = viper.GetInt("screens.tx_page_size")
	cfg.Tokens.SettleDelay = viper.GetDuration("tokens.settle_delay")

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", "http://localhost:3001")

	viper.SetDefault("backend.url", "http://localhost:3000")
	viper.SetDefault("backend.timeout", "15s")
	viper.SetDefault("backend.rate_limit_per_sec", 0)
	viper.SetDefault("backend.rate_limit_burst", 10)

	viper.SetDefault("session.issuer", "social-admin-dashboard")
	viper.SetDefault("session.ttl", "24h")
	viper.SetDefault("session.size", 10000)
	viper.SetDefault("cookie.name", "dashboard_session")
	viper.SetDefault("cookie.secure", false)
	viper.SetDefault("google_oauth.redirect_url", "http://localhost:8080/api/v1/auth/google/callback")
	viper.SetDefault("auth.login_attempts_per_min", 10)

	viper.SetDefault("screens.debounce", "500ms")
	viper.SetDefault("screens.confirm_ttl", "5m")
	viper.SetDefault("screens.registry_size", 1024)
	viper.SetDefault("screens.registry_ttl", "30m")
	viper.SetDefault("screens.content_limit", 100)
	viper.SetDefault("tokens.settle_delay", "1500ms")
	viper.SetDefault("screens.content_per_page", 10)
	viper.SetDefault("screens.user_page_size", 5)
	viper.SetDefault("screens.tx_page_size", 5)
}

func validate(cfg *Config) error {
	if cfg.Backend.URL == "" {
		return fmt.Errorf("backend.url is required")
	}
	if len(cfg.Session.Secret) < 32 {
		return fmt.Errorf("session.secret must be at least 32 characters")
	}
	if cfg.Screens.ContentLimit <= 0 || cfg.Screens.ContentPerPage <= 0 {
		return fmt.Errorf("screens.content_limit and screens.content_per_page must be positive")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// splitList splits a comma separated value, since viper does not parse
// lists from env vars.
func splitList(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
