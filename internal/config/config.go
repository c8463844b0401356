// Package config loads CLI settings from flags, the environment, an optional
// config file and a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	triumph "github.com/triumpharcade/triumph-go"
)

// EnvPrefix is prepended to every environment variable, e.g. TRIUMPH_API_KEY.
const EnvPrefix = "TRIUMPH"

// Config holds the CLI configuration.
type Config struct {
	Organization string              `mapstructure:"organization"`
	APIKey       string              `mapstructure:"api_key"`
	EnvName      string              `mapstructure:"env"`
	Env          triumph.Environment `mapstructure:"-"`
	BaseURL      string              `mapstructure:"base_url"`
	Timeout      time.Duration       `mapstructure:"timeout"`
	LogLevel     string              `mapstructure:"log_level"`
	LogFormat    string              `mapstructure:"log_format"`
}

// Options controls where configuration is read from.
type Options struct {
	// Viper is the instance flags were bound to. Nil means a fresh one.
	Viper *viper.Viper
	// ConfigFile is an optional yaml/json/toml file. A missing file is an error.
	ConfigFile string
	// EnvFile is loaded with godotenv before the environment is read. A
	// missing file is ignored. Empty means ".env".
	EnvFile string
}

var (
	// ErrMissingOrganization is returned when no organization is configured.
	ErrMissingOrganization = errors.New("organization is required (--org or TRIUMPH_ORGANIZATION)")
	// ErrMissingAPIKey is returned when no API key is configured.
	ErrMissingAPIKey = errors.New("API key is required (--api-key or TRIUMPH_API_KEY)")
)

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("organization", "")
	v.SetDefault("api_key", "")
	v.SetDefault("env", string(triumph.EnvSandbox))
	v.SetDefault("base_url", "")
	v.SetDefault("timeout", triumph.DefaultTimeout.String())
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "console")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads configuration. Precedence: flags bound to opts.Viper, then
// environment (including the .env file), then the config file, then defaults.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := opts.Viper
	if v == nil {
		v = NewViper()
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	env, err := triumph.ParseEnvironment(cfg.EnvName)
	if err != nil {
		return nil, err
	}
	cfg.Env = env

	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("invalid timeout %s (must be positive)", cfg.Timeout)
	}

	return &cfg, nil
}

// RequireKey reports an error if no API key is configured.
func (c *Config) RequireKey() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// RequireCredentials reports an error if the organization or API key is missing.
func (c *Config) RequireCredentials() error {
	if c.Organization == "" {
		return ErrMissingOrganization
	}
	return c.RequireKey()
}

// Configuration converts the loaded settings into a client configuration.
func (c *Config) Configuration() *triumph.Configuration {
	return triumph.NewConfiguration(triumph.ConfigurationParameters{
		Organization: c.Organization,
		APIKey:       c.APIKey,
		Env:          c.Env,
	})
}

// ClientOptions returns the client options implied by the settings.
func (c *Config) ClientOptions() []triumph.Option {
	opts := []triumph.Option{triumph.WithTimeout(c.Timeout)}
	if c.BaseURL != "" {
		opts = append(opts, triumph.WithBaseURL(c.BaseURL))
	}
	return opts
}

// Redacted returns a copy safe to log.
func (c *Config) Redacted() Config {
	out := *c
	if out.APIKey != "" {
		out.APIKey = "[redacted]"
	}
	return out
}
