package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Advisor   AdvisorConfig   `yaml:"advisor" mapstructure:"advisor"`
	Session   SessionConfig   `yaml:"session" mapstructure:"session"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port             int      `yaml:"port" mapstructure:"port"`
	CORSOrigins      []string `yaml:"cors_origins" mapstructure:"cors_origins"`
	ReadTimeoutSecs  int      `yaml:"read_timeout_secs" mapstructure:"read_timeout_secs"`
	WriteTimeoutSecs int      `yaml:"write_timeout_secs" mapstructure:"write_timeout_secs"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	Key       string `yaml:"key" mapstructure:"key"`
	Model     string `yaml:"model" mapstructure:"model"`
	MaxTokens int64  `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// AdvisorConfig configures the text-generation collaborator.
type AdvisorConfig struct {
	Provider         string  `yaml:"provider" mapstructure:"provider"` // "anthropic" or "stub"
	TimeoutSecs      int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	RequestsPerSec   float64 `yaml:"requests_per_sec" mapstructure:"requests_per_sec"`
	Burst            int     `yaml:"burst" mapstructure:"burst"`
	MaxAttempts      int     `yaml:"max_attempts" mapstructure:"max_attempts"`
	BreakerThreshold int     `yaml:"breaker_threshold" mapstructure:"breaker_threshold"`
	BreakerResetSecs int     `yaml:"breaker_reset_secs" mapstructure:"breaker_reset_secs"`
}

// Timeout returns the per-call advisor timeout.
func (a AdvisorConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSecs) * time.Second
}

// SessionConfig configures the in-process session store.
type SessionConfig struct {
	DSN               string `yaml:"dsn" mapstructure:"dsn"`
	TTLMinutes        int    `yaml:"ttl_minutes" mapstructure:"ttl_minutes"`
	SweepIntervalSecs int    `yaml:"sweep_interval_secs" mapstructure:"sweep_interval_secs"`
}

// TTL returns how long an idle session lives.
func (s SessionConfig) TTL() time.Duration {
	return time.Duration(s.TTLMinutes) * time.Minute
}

// SweepInterval returns how often expired sessions are removed.
func (s SessionConfig) SweepInterval() time.Duration {
	return time.Duration(s.SweepIntervalSecs) * time.Second
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("NAVIGATOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.read_timeout_secs", 15)
	v.SetDefault("server.write_timeout_secs", 90)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("anthropic.key", "")
	v.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	v.SetDefault("anthropic.max_tokens", 2048)
	v.SetDefault("advisor.provider", "anthropic")
	v.SetDefault("advisor.timeout_secs", 60)
	v.SetDefault("advisor.requests_per_sec", 2.0)
	v.SetDefault("advisor.burst", 4)
	v.SetDefault("advisor.max_attempts", 3)
	v.SetDefault("advisor.breaker_threshold", 5)
	v.SetDefault("advisor.breaker_reset_secs", 30)
	v.SetDefault("session.dsn", "file:navigator?mode=memory&cache=shared")
	v.SetDefault("session.ttl_minutes", 120)
	v.SetDefault("session.sweep_interval_secs", 60)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings a command needs. Mode is one of "serve",
// "advise" or "calculate".
func (c *Config) Validate(mode string) error {
	var errs []string

	switch mode {
	case "serve":
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			errs = append(errs, "server.port must be > 0 and <= 65535")
		}
		if c.Session.TTLMinutes <= 0 {
			errs = append(errs, "session.ttl_minutes must be > 0")
		}
		if c.Session.DSN == "" {
			errs = append(errs, "session.dsn is required")
		}
		errs = append(errs, c.validateAdvisor()...)
	case "advise":
		errs = append(errs, c.validateAdvisor()...)
	case "calculate":
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(errs) > 0 {
		return eris.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}

func (c *Config) validateAdvisor() []string {
	var errs []string
	switch c.Advisor.Provider {
	case "anthropic":
		if c.Anthropic.Key == "" {
			errs = append(errs, "anthropic.key is required when advisor.provider is anthropic")
		}
		if c.Anthropic.Model == "" {
			errs = append(errs, "anthropic.model is required")
		}
	case "stub":
	default:
		errs = append(errs, fmt.Sprintf("advisor.provider must be anthropic or stub (got %q)", c.Advisor.Provider))
	}
	if c.Advisor.RequestsPerSec <= 0 {
		errs = append(errs, "advisor.requests_per_sec must be > 0")
	}
	if c.Advisor.MaxAttempts < 1 {
		errs = append(errs, "advisor.max_attempts must be >= 1")
	}
	return errs
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
