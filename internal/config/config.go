package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host string
	Port int
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	LogMaxSizeMB  int    `toml:"log_max_size_mb"`
	LogMaxBackups int    `toml:"log_max_backups"`
	LogMaxAgeDays int    `toml:"log_max_age_days"`
	LogLocalTime  bool   `toml:"log_local_time"`
	// sentry
	SentryEnabled    bool   `toml:"sentry_enabled"`
	SentryServerName string `toml:"sentry_server_name"`
	// postgres
	PostgresHost string `toml:"postgres_host"`
	PostgresPort string `toml:"postgres_port"`
	PostgresUser string `toml:"postgres_user"`
	PostgresDB   string `toml:"postgres_db"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// metrics
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	PrometheusMetricsPath string `toml:"prometheus_metrics_path"`
	// stats, a zero ttl disables the overview cache
	StatsCacheSizeMB     int `toml:"stats_cache_size_mb"`
	StatsCacheTTLSeconds int `toml:"stats_cache_ttl_seconds"`
	// writes per minute, per client ip
	WriteRateLimit int      `toml:"write_rate_limit"`
	AllowedOrigins []string `toml:"allowed_origins"`
	MCPEnabled     bool     `toml:"mcp_enabled"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	section, err := sectionName(env)
	if err != nil {
		return nil, err
	}
	if section == "development" {
		return t.Development, nil
	}
	return t.Production, nil
}

func sectionName(env string) (string, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return "development", nil
	case "prod", "production":
		return "production", nil
	default:
		return "", fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the toml file and returns the section of the given env.
func Load(env, path string) (*Config, error) {
	var cfgToml Toml
	meta, err := toml.DecodeFile(path, &cfgToml)
	if err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := cfgToml.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no [%s] section in %s", env, path)
	}

	section, _ := sectionName(env)
	if !meta.IsDefined(section, "stats_cache_ttl_seconds") {
		cfg.StatsCacheTTLSeconds = defaultStatsCacheTTLSeconds
	}
	cfg.applyDefaults()
	return cfg, nil
}

const (
	defaultStatsCacheSizeMB     = 64
	defaultStatsCacheTTLSeconds = 60
)

func (c *Config) applyDefaults() {
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.PrometheusMetricsPath == "" {
		c.PrometheusMetricsPath = "/metrics"
	}
	if c.SentryServerName == "" {
		c.SentryServerName = "achilles-backend"
	}
	if c.StatsCacheSizeMB <= 0 {
		c.StatsCacheSizeMB = defaultStatsCacheSizeMB
	}
	if c.StatsCacheTTLSeconds < 0 {
		c.StatsCacheTTLSeconds = 0
	}
	if c.WriteRateLimit <= 0 {
		c.WriteRateLimit = 60
	}
}
