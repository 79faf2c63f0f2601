package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	PayPal     PayPalConfig     `yaml:"paypal"`
	Mail       MailConfig       `yaml:"mail"`
	Settlement SettlementConfig `yaml:"settlement"`
	Reconcile  ReconcileConfig  `yaml:"reconcile"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds session and password-reset settings.
type AuthConfig struct {
	SessionTTL        time.Duration `yaml:"session_ttl"         env:"AUTH_SESSION_TTL"         env-default:"72h"`
	SessionCookieName string        `yaml:"session_cookie_name" env:"AUTH_SESSION_COOKIE_NAME" env-default:"givefund_session"`
	CookieSecure      bool          `yaml:"cookie_secure"       env:"AUTH_COOKIE_SECURE"       env-default:"true"`
	PasswordHashCost  int           `yaml:"password_hash_cost"  env:"AUTH_PASSWORD_HASH_COST"  env-default:"12"`
	ResetTokenSecret  string        `yaml:"reset_token_secret"  env:"AUTH_RESET_TOKEN_SECRET"  env-required:"true"`
	ResetTokenIssuer  string        `yaml:"reset_token_issuer"  env:"AUTH_RESET_TOKEN_ISSUER"  env-default:"givefund"`
	ResetTokenTTL     time.Duration `yaml:"reset_token_ttl"     env:"AUTH_RESET_TOKEN_TTL"     env-default:"10m"`
	SessionRetention  time.Duration `yaml:"session_retention"   env:"AUTH_SESSION_RETENTION"   env-default:"168h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"     env-default:"120"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP" env-default:"5m"`
}

// PayPalConfig holds payment gateway credentials.
type PayPalConfig struct {
	Mode         string        `yaml:"mode"          env:"PAYPAL_MODE"          env-default:"sandbox"`
	BaseURL      string        `yaml:"base_url"      env:"PAYPAL_BASE_URL"`
	ClientID     string        `yaml:"client_id"     env:"PAYPAL_CLIENT_ID"     env-required:"true"`
	ClientSecret string        `yaml:"client_secret" env:"PAYPAL_CLIENT_SECRET" env-required:"true"`
	Currency     string        `yaml:"currency"      env:"PAYPAL_CURRENCY"      env-default:"USD"`
	Timeout      time.Duration `yaml:"timeout"       env:"PAYPAL_TIMEOUT"       env-default:"15s"`
}

// Endpoint returns the API base URL for the configured mode unless overridden.
func (c PayPalConfig) Endpoint() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	if c.Mode == "live" {
		return "https://api-m.paypal.com"
	}
	return "https://api-m.sandbox.paypal.com"
}

// MailConfig holds transactional email settings. An empty SendGridAPIKey
// switches the application to a logging mailer.
type MailConfig struct {
	SendGridAPIKey   string        `yaml:"sendgrid_api_key"   env:"MAIL_SENDGRID_API_KEY"`
	SendGridBaseURL  string        `yaml:"sendgrid_base_url"  env:"MAIL_SENDGRID_BASE_URL"  env-default:"https://api.sendgrid.com"`
	Sender           string        `yaml:"sender"             env:"MAIL_SENDER"             env-default:"no-reply@givefund.org"`
	FrontendBaseURL  string        `yaml:"frontend_base_url"  env:"MAIL_FRONTEND_BASE_URL"  env-default:"http://localhost:3000"`
	VerifyTemplateID string        `yaml:"verify_template_id" env:"MAIL_VERIFY_TEMPLATE_ID"`
	ResetTemplateID  string        `yaml:"reset_template_id"  env:"MAIL_RESET_TEMPLATE_ID"`
	Timeout          time.Duration `yaml:"timeout"            env:"MAIL_TIMEOUT"            env-default:"10s"`
}

// SettlementConfig bounds the settlement of captured payments.
type SettlementConfig struct {
	StoreTimeout    time.Duration `yaml:"store_timeout"    env:"SETTLEMENT_STORE_TIMEOUT"    env-default:"5s"`
	ConflictRetries int           `yaml:"conflict_retries" env:"SETTLEMENT_CONFLICT_RETRIES" env-default:"3"`
	ConflictBackoff time.Duration `yaml:"conflict_backoff" env:"SETTLEMENT_CONFLICT_BACKOFF" env-default:"50ms"`
	StoreRetries    int           `yaml:"store_retries"    env:"SETTLEMENT_STORE_RETRIES"    env-default:"2"`
	StoreRetryDelay time.Duration `yaml:"store_retry_delay" env:"SETTLEMENT_STORE_RETRY_DELAY" env-default:"200ms"`
}

// ReconcileConfig controls the capture journal and its periodic replay.
type ReconcileConfig struct {
	Enabled     bool   `yaml:"enabled"      env:"RECONCILE_ENABLED"      env-default:"true"`
	Schedule    string `yaml:"schedule"     env:"RECONCILE_SCHEDULE"     env-default:"@every 5m"`
	JournalPath string `yaml:"journal_path" env:"RECONCILE_JOURNAL_PATH" env-default:"./data/settlement-journal.db"`
	BatchSize   int    `yaml:"batch_size"   env:"RECONCILE_BATCH_SIZE"   env-default:"100"`
}
