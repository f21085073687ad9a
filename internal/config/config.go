package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Environment string `toml:"-"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// storage
	PostgresHost    string `toml:"postgres_host"`
	PostgresPort    string `toml:"postgres_port"`
	PostgresDBName  string `toml:"postgres_db_name"`
	PostgresUser    string `toml:"postgres_user"`
	PostgresSSLMode string `toml:"postgres_ssl_mode"`
	RedisHost       string `toml:"redis_host"`
	RedisPort       string `toml:"redis_port"`
	// http
	CorsAllowedOrigins []string `toml:"cors_allowed_origins"`
	CorsTrustedAgents  []string `toml:"cors_trusted_agents"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// achievements
	RecomputeRateLimitPerMin int `toml:"recompute_rate_limit_per_min"`
	ReportCacheTTLSeconds    int `toml:"report_cache_ttl_seconds"`
	ReportCacheSizeMB        int `toml:"report_cache_size_mb"`

	Secrets Secrets `toml:"-"`
}

// Secrets are never kept in the config file.
type Secrets struct {
	APISecretHash    string `env:"GYMRANK_API_SECRET_HASH"`
	RedisPassword    string `env:"GYMRANK_REDIS_PASS"`
	PostgresPassword string `env:"GYMRANK_POSTGRES_PASS"`
	SentryDSN        string `env:"SENTRY_DSN"`
	HoneycombEnabled bool   `env:"HONEYCOMB_ENABLED, default=false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_API_KEY"`
}

func (c *Config) ReportCacheTTL() time.Duration {
	return time.Duration(c.ReportCacheTTLSeconds) * time.Second
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the section for env from the TOML file at path and fills in
// the secrets from the environment.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml config: %w", err)
	}
	return fromToml(&t, env, envconfig.OsLookuper())
}

func fromToml(t *Toml, env string, lookuper envconfig.Lookuper) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(env)

	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg.Secrets,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env secrets: %w", err)
	}

	if cfg.Port <= 0 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.PostgresUser == "" {
		cfg.PostgresUser = "postgres"
	}
	if cfg.RecomputeRateLimitPerMin <= 0 {
		cfg.RecomputeRateLimitPerMin = 10
	}
	if cfg.ReportCacheTTLSeconds <= 0 {
		cfg.ReportCacheTTLSeconds = 300
	}
	if cfg.ReportCacheSizeMB <= 0 {
		cfg.ReportCacheSizeMB = 64
	}
	if len(cfg.CorsAllowedOrigins) == 0 {
		cfg.CorsAllowedOrigins = []string{"https://gymrank.2beens.online", "http://localhost:8080"}
	}
	if len(cfg.CorsTrustedAgents) == 0 {
		cfg.CorsTrustedAgents = []string{"GymRank/", "curl/"}
	}

	return cfg, nil
}
