package config

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// CallbackPath is where Google sends the user back after consent.
const CallbackPath = "/login/google/authorized"

// Config holds all configuration for the application.
type Config struct {
	SecretKey string `env:"SECRET_KEY" envDefault:"you-will-never-guess" validate:"required"`

	GoogleClientID     string   `env:"GOOGLE_OAUTH_CLIENT_ID" validate:"required"`
	GoogleClientSecret string   `env:"GOOGLE_OAUTH_CLIENT_SECRET" validate:"required"`
	GoogleScopes       []string `env:"GOOGLE_OAUTH_SCOPES" envSeparator:"," envDefault:"openid,https://www.googleapis.com/auth/userinfo.email,https://www.googleapis.com/auth/userinfo.profile" validate:"min=1"`
	GoogleAPIBaseURL   string   `env:"GOOGLE_API_BASE_URL" envDefault:"https://www.googleapis.com" validate:"required,url"`
	GoogleRevokeURL    string   `env:"GOOGLE_REVOKE_URL" envDefault:"https://accounts.google.com/o/oauth2/revoke" validate:"required,url"`

	// InsecureTransport allows the session cookie over plain HTTP, for local development.
	InsecureTransport bool `env:"OAUTH_INSECURE_TRANSPORT" envDefault:"false"`

	AppBaseURL    string        `env:"APP_BASE_URL" envDefault:"http://localhost:5000" validate:"required,url"`
	ServerAddress string        `env:"SERVER_ADDRESS" envDefault:":5000" validate:"required"`
	StaticDir     string        `env:"STATIC_DIR"`
	SessionMaxAge time.Duration `env:"SESSION_MAX_AGE" envDefault:"168h" validate:"gt=0"`

	LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"debug" validate:"oneof=debug info warn error"`
}

// New loads configuration from a .env file (if present) and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// slog is not configured yet at this point.
		log.Println("No .env file found, relying on environment variables")
	}
	return Parse()
}

// Parse reads the configuration from the process environment and validates it.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values. Failures are reported by env variable name.
func (c *Config) Validate() error {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("env"), ",")
		return name
	})

	err := v.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// RedirectURL is the OAuth callback registered with Google.
func (c *Config) RedirectURL() string {
	return strings.TrimRight(c.AppBaseURL, "/") + CallbackPath
}
