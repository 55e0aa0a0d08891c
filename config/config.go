package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultPort is used when PORT is unset or not a valid TCP port.
const DefaultPort = 8000

type configKey struct{}

// WithContext returns a new context with the config stored.
func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config from context.
func FromContext(ctx context.Context) (*Config, error) {
	cfg, ok := ctx.Value(configKey{}).(*Config)
	if !ok || cfg == nil {
		return nil, errors.New("config: not found in context")
	}
	return cfg, nil
}

// Config is the runtime configuration of the sprout server.
type Config struct {
	// Port is resolved from the raw port value by ParsePort and never fails validation.
	Port int `mapstructure:"-"`

	Host            string        `mapstructure:"host"`
	Env             string        `mapstructure:"app_env" validate:"required,oneof=development production test"`
	LogLevel        string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat       string        `mapstructure:"log_format" validate:"omitempty,oneof=json pretty text"`
	SentryDSN       string        `mapstructure:"sentry_dsn" validate:"omitempty,url"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gte=0"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout" validate:"gte=0"`
	Compress        bool          `mapstructure:"compress"`
	// DocsDir serves markdown docs from disk instead of the embedded copy.
	DocsDir string `mapstructure:"docs_dir"`
	// RedisURL enables the shared stylesheet cache.
	RedisURL string `mapstructure:"redis_url" validate:"omitempty,url"`
}

// Address returns the listen address in host:port form.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ParsePort converts a raw PORT value to a port number.
// Empty, non-integer and out of range values yield DefaultPort.
func ParsePort(s string) int {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || p < 1 || p > 65535 {
		return DefaultPort
	}
	return p
}

// flagToViperKey maps CLI flag names to viper keys.
var flagToViperKey = map[string]string{
	"log-level":        "log_level",
	"log-format":       "log_format",
	"shutdown-timeout": "shutdown_timeout",
	"request-timeout":  "request_timeout",
	"docs-dir":         "docs_dir",
	"redis-url":        "redis_url",
}

// bindFlags binds explicitly set CLI flags so they override env and file values.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || !f.Changed {
			return
		}
		key := f.Name
		if mapped, ok := flagToViperKey[key]; ok {
			key = mapped
		}
		_ = v.BindPFlag(key, f)
	})
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", "")
	v.SetDefault("app_env", "production")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "")
	v.SetDefault("sentry_dsn", "")
	v.SetDefault("shutdown_timeout", 30*time.Second)
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("compress", true)
	v.SetDefault("docs_dir", "")
	v.SetDefault("redis_url", "")
}

// Load reads configuration and returns a validated Config.
// Order of precedence (highest to lowest): flags > env > config file > defaults.
//
// An explicit configFile must exist. Without one, ./config.yaml is read when present.
// flags may be nil.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				slog.Warn("error reading config file", "err", err)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		bindFlags(v, flags)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Port = ParsePort(v.GetString("port"))
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
