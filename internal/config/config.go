package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Storage   StorageConfig   `yaml:"storage"`
	Email     EmailConfig     `yaml:"email"`
	Migration MigrationConfig `yaml:"migration"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
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

// AuthConfig holds token, password hashing and one-time code settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"stride"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"168h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
	OTPTTL           time.Duration `yaml:"otp_ttl"            env:"AUTH_OTP_TTL"            env-default:"10m"`
	OTPLength        int           `yaml:"otp_length"         env:"AUTH_OTP_LENGTH"         env-default:"4"`
	// OTPResendInterval is the minimum spacing between resend requests of one user.
	OTPResendInterval time.Duration `yaml:"otp_resend_interval" env:"AUTH_OTP_RESEND_INTERVAL" env-default:"30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	RequestsPerMin  int           `yaml:"requests_per_min" env:"RATE_LIMIT_REQUESTS_PER_MIN" env-default:"300"`
	AuthPerMin      int           `yaml:"auth_per_min"     env:"RATE_LIMIT_AUTH_PER_MIN"     env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// StorageConfig holds S3-compatible object storage settings.
type StorageConfig struct {
	Bucket         string        `yaml:"bucket"           env:"STORAGE_BUCKET"`
	Region         string        `yaml:"region"           env:"STORAGE_REGION"           env-default:"us-east-1"`
	Endpoint       string        `yaml:"endpoint"         env:"STORAGE_ENDPOINT"`
	AccessKeyID    string        `yaml:"access_key_id"    env:"STORAGE_ACCESS_KEY_ID"`
	SecretKey      string        `yaml:"secret_key"       env:"STORAGE_SECRET_KEY"`
	UsePathStyle   bool          `yaml:"use_path_style"   env:"STORAGE_USE_PATH_STYLE"   env-default:"false"`
	PublicBaseURL  string        `yaml:"public_base_url"  env:"STORAGE_PUBLIC_BASE_URL"`
	PresignTTL     time.Duration `yaml:"presign_ttl"      env:"STORAGE_PRESIGN_TTL"      env-default:"15m"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes" env:"STORAGE_MAX_UPLOAD_BYTES" env-default:"10485760"`
}

// Enabled reports whether uploads are configured.
func (c StorageConfig) Enabled() bool {
	return c.Bucket != ""
}

// EmailConfig holds SMTP settings. With Disabled set, messages are logged instead of sent.
type EmailConfig struct {
	Disabled bool   `yaml:"disabled" env:"EMAIL_DISABLED" env-default:"false"`
	Host     string `yaml:"host"     env:"EMAIL_SMTP_HOST"`
	Port     int    `yaml:"port"     env:"EMAIL_SMTP_PORT" env-default:"587"`
	Username string `yaml:"username" env:"EMAIL_SMTP_USERNAME"`
	Password string `yaml:"password" env:"EMAIL_SMTP_PASSWORD"`
	From     string `yaml:"from"     env:"EMAIL_FROM"      env-default:"no-reply@stride.app"`
	TLS      string `yaml:"tls"      env:"EMAIL_TLS"       env-default:"opportunistic"`
}

// MigrationConfig holds settings of the offline relationship migration.
type MigrationConfig struct {
	Timeout   time.Duration `yaml:"timeout"   env:"MIGRATION_TIMEOUT"   env-default:"30m"`
	Relations string        `yaml:"relations" env:"MIGRATION_RELATIONS" env-default:"community_follow,post_like"`
}

// RelationNames splits Relations into trimmed, non-empty names.
func (c MigrationConfig) RelationNames() []string {
	var out []string
	for _, p := range strings.Split(c.Relations, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
