package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress  string
	DatabaseURI string

	TokenSecret string
	TokenTTL    time.Duration

	PaystackBaseURL   string
	PaystackSecretKey string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	SMSGatewayURL    string
	SMSAPIKey        string
	SMSSenderMask    string
	SMSCountryPrefix string

	AllowedOrigins []string

	AdminName     string
	AdminEmail    string
	AdminPassword string

	LogLevel        string
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress       = ":4001"
	defaultTokenSecret      = "change-me-in-production"
	defaultTokenTTL         = 24 * time.Hour
	defaultPaystackBaseURL  = "https://api.paystack.co"
	defaultSMTPHost         = "smtp.gmail.com"
	defaultSMTPPort         = 587
	defaultSMSSenderMask    = "NativeDplus"
	defaultSMSCountryPrefix = "234"
	defaultLogLevel         = "info"
	defaultShutdownTimeout  = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		TokenSecret:       getString(lookup, "TOKEN_SECRET", defaultTokenSecret),
		TokenTTL:          getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		PaystackBaseURL:   getString(lookup, "PAYSTACK_BASE_URL", defaultPaystackBaseURL),
		PaystackSecretKey: getString(lookup, "PAYSTACK_SECRET_KEY", ""),
		SMTPHost:          getString(lookup, "SMTP_HOST", defaultSMTPHost),
		SMTPPort:          getInt(lookup, "SMTP_PORT", defaultSMTPPort),
		SMTPUsername:      getString(lookup, "SMTP_USER", ""),
		SMTPPassword:      getString(lookup, "SMTP_PASSWORD", ""),
		SMTPFrom:          getString(lookup, "SMTP_FROM", ""),
		SMSGatewayURL:     getString(lookup, "SMS_GATEWAY_URL", ""),
		SMSAPIKey:         getString(lookup, "SMS_API_KEY", ""),
		SMSSenderMask:     getString(lookup, "SMS_SENDER_MASK", defaultSMSSenderMask),
		SMSCountryPrefix:  getString(lookup, "SMS_COUNTRY_PREFIX", defaultSMSCountryPrefix),
		AllowedOrigins:    splitOrigins(getString(lookup, "CORS_ALLOWED_ORIGINS", "")),
		AdminName:         getString(lookup, "ADMIN_NAME", "Admin User"),
		AdminEmail:        getString(lookup, "ADMIN_EMAIL", ""),
		AdminPassword:     getString(lookup, "ADMIN_PASSWORD", ""),
		LogLevel:          getString(lookup, "LOG_LEVEL", defaultLogLevel),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()
	tokenTTLStr := cfg.TokenTTL.String()
	origins := strings.Join(cfg.AllowedOrigins, ",")

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.PaystackBaseURL, "paystack-url", cfg.PaystackBaseURL, "Paystack API base URL")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing auth tokens")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Auth token lifetime")
	fs.StringVar(&origins, "cors-origins", origins, "Comma separated CORS origin allow-list")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	cfg.AllowedOrigins = splitOrigins(origins)

	if secretFile, ok := lookup("TOKEN_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}
		cfg.TokenSecret = strings.TrimSpace(string(content))
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.SMTPPort <= 0 {
		cfg.SMTPPort = defaultSMTPPort
	}

	if cfg.SMTPFrom == "" {
		cfg.SMTPFrom = cfg.SMTPUsername
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.PaystackSecretKey == "" {
		return nil, fmt.Errorf("paystack secret key must be provided")
	}

	return cfg, nil
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
