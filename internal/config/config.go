package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Questions QuestionsConfig `yaml:"questions"`
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

// Storage drivers.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN              string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns         int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns         int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime  time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime  time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStartup bool          `yaml:"migrate_on_startup" env:"DATABASE_MIGRATE_ON_STARTUP" env-default:"true"`
}

// AuthConfig holds access token validation settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"pawerflow"`
	JWTAudience    string        `yaml:"jwt_audience"     env:"AUTH_JWT_AUDIENCE"     env-default:"pawerflow"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig throttles mutating requests per client IP.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"             env:"RATELIMIT_ENABLED"             env-default:"true"`
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"RATELIMIT_REQUESTS_PER_SECOND" env-default:"5"`
	Burst             int           `yaml:"burst"               env:"RATELIMIT_BURST"               env-default:"20"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATELIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}

// QuestionsConfig holds question listing and tag catalog settings.
type QuestionsConfig struct {
	DefaultPageSize   int  `yaml:"default_page_size"    env:"QUESTIONS_DEFAULT_PAGE_SIZE"    env-default:"20"`
	MaxPageSize       int  `yaml:"max_page_size"        env:"QUESTIONS_MAX_PAGE_SIZE"        env-default:"100"`
	SeedTagsOnStartup bool `yaml:"seed_tags_on_startup" env:"QUESTIONS_SEED_TAGS_ON_STARTUP" env-default:"true"`
}

// AllowedOriginList splits the comma-separated origin list.
func (c CORSConfig) AllowedOriginList() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
