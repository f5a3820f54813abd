// Package config loads the application configuration from TOML and
// environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App       AppConfig
	Log       LogConfig
	HTTP      HTTPConfig
	Redis     RedisConfig
	Commerce  CommerceConfig
	Marketing MarketingConfig
	Sync      SyncConfig
	Dedupe    DedupeConfig
	Telemetry TelemetryConfig
}

// AppConfig holds application-specific settings.
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int
	MaxBodySize    int64
	TrustedProxies []string
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// CommerceConfig holds the commerce platform API settings.
type CommerceConfig struct {
	APIBaseURL     string
	ProjectKey     string
	AuthToken      string
	TimeoutSeconds int
}

// MarketingConfig holds the marketing platform API settings.
type MarketingConfig struct {
	APIKey         string
	CompanyID      string
	APIBaseURL     string
	Revision       string
	TimeoutSeconds int
}

// SyncConfig holds the event processor configuration. The state
// allow-lists are comma or space separated.
type SyncConfig struct {
	OrderCreatedStates      string
	OrderStateChangedStates string
	CustomerCreatedMetric   string
	DisabledEvents          []string
}

// DedupeConfig holds inbound message deduplication settings.
type DedupeConfig struct {
	Enabled bool
	TTL     time.Duration
}

// TelemetryConfig holds OpenTelemetry configuration.
type TelemetryConfig struct {
	Enabled           bool
	CollectorEndpoint string
	SamplingRatio     float64
	ServiceName       string
	Insecure          bool
}

// Load loads configuration from a TOML file and environment variables.
// Priority (highest to lowest):
// 1. Environment variables with MKTSYNC_ prefix (e.g. MKTSYNC_MARKETING_API_KEY)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("MKTSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:    v.GetDuration("http.read_timeout"),
			WriteTimeout:   v.GetDuration("http.write_timeout"),
			IdleTimeout:    v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes: v.GetInt("http.max_header_bytes"),
			MaxBodySize:    v.GetInt64("http.max_body_size"),
			TrustedProxies: v.GetStringSlice("http.trusted_proxies"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Commerce: CommerceConfig{
			APIBaseURL:     v.GetString("commerce.api_base_url"),
			ProjectKey:     v.GetString("commerce.project_key"),
			AuthToken:      v.GetString("commerce.auth_token"),
			TimeoutSeconds: v.GetInt("commerce.timeout_seconds"),
		},
		Marketing: MarketingConfig{
			APIKey:         v.GetString("marketing.api_key"),
			CompanyID:      v.GetString("marketing.company_id"),
			APIBaseURL:     v.GetString("marketing.api_base_url"),
			Revision:       v.GetString("marketing.revision"),
			TimeoutSeconds: v.GetInt("marketing.timeout_seconds"),
		},
		Sync: SyncConfig{
			OrderCreatedStates:      v.GetString("sync.order_created_states"),
			OrderStateChangedStates: v.GetString("sync.order_state_changed_states"),
			CustomerCreatedMetric:   v.GetString("sync.customer_created_metric"),
			DisabledEvents:          v.GetStringSlice("sync.disabled_events"),
		},
		Dedupe: DedupeConfig{
			Enabled: v.GetBool("dedupe.enabled"),
			TTL:     v.GetDuration("dedupe.ttl"),
		},
		Telemetry: TelemetryConfig{
			Enabled:           v.GetBool("telemetry.enabled"),
			CollectorEndpoint: v.GetString("telemetry.collector_endpoint"),
			SamplingRatio:     v.GetFloat64("telemetry.sampling_ratio"),
			ServiceName:       v.GetString("telemetry.service_name"),
			Insecure:          v.GetBool("telemetry.insecure"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields.
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "mktsync-backend"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if cfg.HTTP.MaxBodySize == 0 {
		cfg.HTTP.MaxBodySize = 10 << 20 // 10MB
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Sync.OrderCreatedStates == "" {
		cfg.Sync.OrderCreatedStates = "Open"
	}
	if cfg.Sync.OrderStateChangedStates == "" {
		cfg.Sync.OrderStateChangedStates = "Cancelled,Complete"
	}
	if cfg.Sync.CustomerCreatedMetric == "" {
		cfg.Sync.CustomerCreatedMetric = "Account created"
	}
	if cfg.Dedupe.TTL == 0 {
		cfg.Dedupe.TTL = 24 * time.Hour
	}
	if cfg.Telemetry.CollectorEndpoint == "" {
		cfg.Telemetry.CollectorEndpoint = "localhost:4317"
	}
	if cfg.Telemetry.SamplingRatio == 0 {
		cfg.Telemetry.SamplingRatio = 1.0
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = "mktsync-backend"
	}
}

// validate performs validation on the configuration.
func (c *Config) validate() error {
	if c.App.Env == "production" {
		if c.Marketing.APIKey == "" {
			return fmt.Errorf("marketing.api_key is required in production")
		}
		if c.Marketing.CompanyID == "" {
			return fmt.Errorf("marketing.company_id is required in production")
		}
		if c.Commerce.AuthToken == "" {
			return fmt.Errorf("commerce.auth_token is required in production")
		}
	}

	if c.Telemetry.SamplingRatio < 0.0 || c.Telemetry.SamplingRatio > 1.0 {
		return fmt.Errorf("telemetry.sampling_ratio must be between 0.0 and 1.0, got %f", c.Telemetry.SamplingRatio)
	}

	return nil
}

// RedisAddr returns the host:port address for the Redis client.
func (r *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
