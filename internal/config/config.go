package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	defaultServerAddr  = ":8080"
	defaultBaseURL     = "http://localhost:8080"
	defaultSubmitDelay = time.Second
)

// Provider is the read-only view of the configuration consumed by the server and handlers.
type Provider interface {
	GetServerAddr() string
	GetAppBaseURL() string
	GetAppEnv() string
	GetSessionSecret() string
	GetSubmitDelay() time.Duration
	GetSimulatedOutcome() string
	GetRequireAuth() bool
	GetCSRFEnabled() bool
	GetSecureCookies() bool
	GetLogFormat() string
	GetLogLevel() string
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr    string
	AppBaseURL    string
	AppEnv        string
	SessionSecret string
	// SubmitDelay is the fixed latency of the simulated backend.
	SubmitDelay time.Duration
	// SimulatedOutcome forces the simulated backend to "success", "reject" or "fail".
	SimulatedOutcome string
	// RequireAuth enables the dashboard route guard. Off by default: the dashboard is
	// reachable without logging in.
	RequireAuth   bool
	CSRFEnabled   bool
	SecureCookies bool
	LogFormat     string
	LogLevel      string
}

// New loads configuration from a .env file (if any) and the environment.
// It exits the process when the configuration is invalid, like the rest of startup.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := FromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

// FromEnv builds a Config from the given lookup function. It never touches .env files,
// which keeps it usable from tests.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		ServerAddr:       stringOr(getenv("SERVER_ADDR"), defaultServerAddr),
		AppBaseURL:       stringOr(getenv("APP_BASE_URL"), defaultBaseURL),
		AppEnv:           stringOr(getenv("APP_ENV"), EnvDevelopment),
		SessionSecret:    getenv("SESSION_SECRET"),
		SimulatedOutcome: stringOr(getenv("SIMULATED_OUTCOME"), "success"),
		LogFormat:        stringOr(getenv("LOG_FORMAT"), "text"),
		LogLevel:         stringOr(getenv("LOG_LEVEL"), "debug"),
	}

	var err error
	if cfg.SubmitDelay, err = durationOr(getenv("SUBMIT_DELAY"), defaultSubmitDelay); err != nil {
		return nil, fmt.Errorf("SUBMIT_DELAY: %w", err)
	}
	if cfg.SubmitDelay < 0 {
		return nil, errors.New("SUBMIT_DELAY must not be negative")
	}
	if cfg.RequireAuth, err = boolOr(getenv("REQUIRE_AUTH"), false); err != nil {
		return nil, fmt.Errorf("REQUIRE_AUTH: %w", err)
	}
	if cfg.CSRFEnabled, err = boolOr(getenv("CSRF_ENABLED"), true); err != nil {
		return nil, fmt.Errorf("CSRF_ENABLED: %w", err)
	}

	switch cfg.AppEnv {
	case EnvDevelopment, EnvProduction:
	default:
		return nil, fmt.Errorf("APP_ENV must be %q or %q, got %q", EnvDevelopment, EnvProduction, cfg.AppEnv)
	}

	switch cfg.SimulatedOutcome {
	case "success", "reject", "fail":
	default:
		return nil, fmt.Errorf("SIMULATED_OUTCOME must be success, reject or fail, got %q", cfg.SimulatedOutcome)
	}

	if cfg.SecureCookies, err = boolOr(getenv("SECURE_COOKIES"), cfg.AppEnv == EnvProduction); err != nil {
		return nil, fmt.Errorf("SECURE_COOKIES: %w", err)
	}

	if cfg.SessionSecret == "" {
		if cfg.AppEnv == EnvProduction {
			return nil, errors.New("SESSION_SECRET is required in production")
		}
		// Sessions do not survive a restart in development.
		cfg.SessionSecret = randomSecret()
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string         { return c.ServerAddr }
func (c *Config) GetAppBaseURL() string         { return c.AppBaseURL }
func (c *Config) GetAppEnv() string             { return c.AppEnv }
func (c *Config) GetSessionSecret() string      { return c.SessionSecret }
func (c *Config) GetSubmitDelay() time.Duration { return c.SubmitDelay }
func (c *Config) GetSimulatedOutcome() string   { return c.SimulatedOutcome }
func (c *Config) GetRequireAuth() bool          { return c.RequireAuth }
func (c *Config) GetCSRFEnabled() bool          { return c.CSRFEnabled }
func (c *Config) GetSecureCookies() bool        { return c.SecureCookies }
func (c *Config) GetLogFormat() string          { return c.LogFormat }
func (c *Config) GetLogLevel() string           { return c.LogLevel }

func stringOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func boolOr(v string, fallback bool) (bool, error) {
	if v == "" {
		return fallback, nil
	}
	return strconv.ParseBool(v)
}

func durationOr(v string, fallback time.Duration) (time.Duration, error) {
	if v == "" {
		return fallback, nil
	}
	return time.ParseDuration(v)
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatalf("could not generate session secret: %v", err)
	}
	return hex.EncodeToString(b)
}
