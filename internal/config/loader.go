package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/yourusername/scoreline/internal/poisson"
	"github.com/yourusername/scoreline/internal/projection"
	"github.com/yourusername/scoreline/internal/solver"
)

const (
	// DefaultConfigPath is used when no path is given
	DefaultConfigPath = "config/config.yaml"
	envPrefix         = "SCORELINE"
	configPathEnv     = "SCORELINE_CONFIG_PATH"
)

// ResolvePath picks the config path from the flag value, then SCORELINE_CONFIG_PATH,
// then the default location
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envPath := os.Getenv(configPathEnv); envPath != "" {
		return envPath
	}
	return DefaultConfigPath
}

// Load reads and parses the configuration from file and environment variables.
// It expands environment variable placeholders in the YAML file (${VAR_NAME}).
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	v := newViper()
	if err := v.ReadConfig(bytes.NewBufferString(os.ExpandEnv(string(data)))); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return unmarshal(v)
}

// LoadWithDefaults loads configuration with default values for every field, so
// a missing file still yields a runnable configuration
func LoadWithDefaults(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	v := newViper()
	setDefaults(v)

	if data, err := os.ReadFile(configPath); err == nil {
		if err := v.ReadConfig(bytes.NewBufferString(os.ExpandEnv(string(data)))); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "scoreline")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("engine.tolerance", solver.DefaultTolerance)
	v.SetDefault("engine.max_iterations", solver.DefaultMaxIterations)
	v.SetDefault("engine.bracket_low", solver.DefaultBracketLow)
	v.SetDefault("engine.bracket_high", solver.DefaultBracketHigh)
	v.SetDefault("engine.bracket_cap", solver.DefaultBracketCap)
	v.SetDefault("engine.max_expansions", solver.DefaultMaxExpansions)
	v.SetDefault("engine.solver_max_k", poisson.SolverMaxK)
	v.SetDefault("engine.derived_totals_max_k", poisson.DerivedTotalsMaxK)
	v.SetDefault("engine.alloc_max_goals", solver.DefaultAllocMaxGoals)
	v.SetDefault("engine.display_max_goals", projection.DefaultDisplayMaxGoals)
	v.SetDefault("engine.moneyline_max_goals", projection.DefaultMoneylineMaxGoals)

	v.SetDefault("api.port", 8080)
	v.SetDefault("api.rate_limit", 50.0)
	v.SetDefault("api.burst", 100)
	v.SetDefault("api.request_timeout_seconds", 10)
	v.SetDefault("api.max_body_bytes", 1<<20)

	v.SetDefault("health.port", 8081)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl_seconds", 30)
	v.SetDefault("cache.max_size", 10000)
	v.SetDefault("cache.maintenance_schedule", "@every 1m")
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return cfg, nil
}
