package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ConstantEnvPrefix marks environment variables that override a constant,
// e.g. SUI_CONST_CETUS_POOLS_ID.
const ConstantEnvPrefix = "SUI_CONST_"

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment" validate:"required,oneof=development test staging production"`
	LogLevel    string          `mapstructure:"log_level" validate:"required,oneof=debug info warn warning error"`
	Server      ServerConfig    `mapstructure:"server"`
	Constants   ConstantsConfig `mapstructure:"constants"`
	Tracing     TracingConfig   `mapstructure:"tracing"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int      `mapstructure:"port" validate:"min=1,max=65535"`
	Host            string   `mapstructure:"host" validate:"required"`
	ReadTimeout     int      `mapstructure:"read_timeout" validate:"min=1"`
	WriteTimeout    int      `mapstructure:"write_timeout" validate:"min=1"`
	RateLimitPerMin int      `mapstructure:"rate_limit_per_min" validate:"min=1"`
	AllowedOrigins  []string `mapstructure:"allowed_origins" validate:"min=1"`
}

// ConstantsConfig carries per-deployment replacements for the compiled-in
// constant set. Keys are the canonical upper snake case names.
type ConstantsConfig struct {
	Overrides map[string]string `mapstructure:"overrides"`
}

// TracingConfig controls OTLP span export
type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	CollectorURL string  `mapstructure:"collector_url" validate:"required_if=Enabled true"`
	SampleRate   float64 `mapstructure:"sample_rate" validate:"min=0,max=1"`
	Insecure     bool    `mapstructure:"insecure"`
}

// Addr returns the listen address
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	return load(v, os.Environ())
}

// LoadFile loads configuration from an explicit file path
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v, os.Environ())
}

func load(v *viper.Viper, environ []string) (*Config, error) {
	setDefaults(v)

	// Read from config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	overrideFromEnv(v, environ)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	config.Constants.Overrides = normalizeOverrides(config.Constants.Overrides)
	for k, val := range normalizeOverrides(constantOverridesFromEnv(environ)) {
		config.Constants.Overrides[k] = val
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")

	// Server defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.rate_limit_per_min", 100)
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Tracing defaults
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.collector_url", "localhost:4317")
	v.SetDefault("tracing.sample_rate", 1.0)
	v.SetDefault("tracing.insecure", false)
}

func overrideFromEnv(v *viper.Viper, environ []string) {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, val, ok := strings.Cut(kv, "="); ok {
			env[k] = val
		}
	}

	if e := env["ENVIRONMENT"]; e != "" {
		v.Set("environment", e)
	}
	if level := env["LOG_LEVEL"]; level != "" {
		v.Set("log_level", level)
	}

	// Server
	if port := env["PORT"]; port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			v.Set("server.port", p)
		}
	}
	if origins := env["ALLOWED_ORIGINS"]; origins != "" {
		var list []string
		for _, part := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				list = append(list, trimmed)
			}
		}
		if len(list) > 0 {
			v.Set("server.allowed_origins", list)
		}
	}

	// Tracing
	if endpoint := env["OTEL_EXPORTER_OTLP_ENDPOINT"]; endpoint != "" {
		v.Set("tracing.enabled", true)
		v.Set("tracing.collector_url", endpoint)
	}
}

// constantOverridesFromEnv collects API_BASE_URL and SUI_CONST_* variables.
// They are merged after unmarshaling so they win over the config file.
func constantOverridesFromEnv(environ []string) map[string]string {
	overrides := make(map[string]string)
	for _, kv := range environ {
		k, val, ok := strings.Cut(kv, "=")
		if !ok || val == "" {
			continue
		}
		switch {
		case k == "API_BASE_URL":
			overrides["API_BASE_URL"] = val
		case strings.HasPrefix(k, ConstantEnvPrefix):
			overrides[strings.TrimPrefix(k, ConstantEnvPrefix)] = val
		}
	}
	return overrides
}

// viper lower-cases map keys, constant keys are upper case
func normalizeOverrides(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[strings.ToUpper(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}
	return out
}

var structValidator = validator.New()

func validate(config *Config) error {
	if err := structValidator.Struct(config); err != nil {
		var msgs []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}

	for k, v := range config.Constants.Overrides {
		if v == "" {
			return fmt.Errorf("constant override %s is empty", k)
		}
	}

	return nil
}
