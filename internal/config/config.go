// Package config provides configuration management for the scoreline projector.
package config

import (
	"time"

	"github.com/yourusername/scoreline/internal/projection"
	"github.com/yourusername/scoreline/internal/solver"
)

// Config represents the complete application configuration
type Config struct {
	App     AppConfig     `mapstructure:"app" validate:"required"`
	Engine  EngineConfig  `mapstructure:"engine" validate:"required"`
	API     APIConfig     `mapstructure:"api" validate:"required"`
	Health  HealthConfig  `mapstructure:"health" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics" validate:"required"`
	Cache   CacheConfig   `mapstructure:"cache" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// EngineConfig holds the numerical parameters of inference and projection
type EngineConfig struct {
	Tolerance         float64 `mapstructure:"tolerance" validate:"required,gt=0,lt=0.001"`
	MaxIterations     int     `mapstructure:"max_iterations" validate:"required,gt=0,lte=500"`
	BracketLow        float64 `mapstructure:"bracket_low" validate:"required,gt=0"`
	BracketHigh       float64 `mapstructure:"bracket_high" validate:"required,gt=0"`
	BracketCap        float64 `mapstructure:"bracket_cap" validate:"required,gt=0"`
	MaxExpansions     int     `mapstructure:"max_expansions" validate:"gte=0,lte=200"`
	SolverMaxK        int     `mapstructure:"solver_max_k" validate:"required,gt=0,lte=170"`
	DerivedTotalsMaxK int     `mapstructure:"derived_totals_max_k" validate:"required,gt=0,lte=170"`
	AllocMaxGoals     int     `mapstructure:"alloc_max_goals" validate:"required,gt=0,lte=100"`
	DisplayMaxGoals   int     `mapstructure:"display_max_goals" validate:"required,gt=0,lte=100"`
	MoneylineMaxGoals int     `mapstructure:"moneyline_max_goals" validate:"required,gt=0,lte=100"`
}

// APIConfig represents the projection HTTP API configuration
type APIConfig struct {
	Port                  int     `mapstructure:"port" validate:"required,min=1,max=65535"`
	RateLimit             float64 `mapstructure:"rate_limit" validate:"required,gt=0"`
	Burst                 int     `mapstructure:"burst" validate:"required,gt=0"`
	RequestTimeoutSeconds int     `mapstructure:"request_timeout_seconds" validate:"required,gt=0"`
	MaxBodyBytes          int64   `mapstructure:"max_body_bytes" validate:"required,gt=0"`
}

// HealthConfig represents the health server configuration
type HealthConfig struct {
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required,startswith=/"`
}

// CacheConfig represents the projection result cache configuration
type CacheConfig struct {
	Enabled             bool   `mapstructure:"enabled"`
	TTLSeconds          int    `mapstructure:"ttl_seconds" validate:"required,gt=0"`
	MaxSize             int    `mapstructure:"max_size" validate:"required,gt=0"`
	MaintenanceSchedule string `mapstructure:"maintenance_schedule" validate:"required,cronspec"`
}

// TTL returns the cache entry lifetime
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// RequestTimeout returns the per-request deadline
func (c APIConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// SolverConfig maps the engine section onto the solver parameters
func (c EngineConfig) SolverConfig() solver.Config {
	cfg := solver.DefaultConfig()
	cfg.Tolerance = c.Tolerance
	cfg.MaxIterations = c.MaxIterations
	cfg.BracketLow = c.BracketLow
	cfg.BracketHigh = c.BracketHigh
	cfg.BracketCap = c.BracketCap
	cfg.MaxExpansions = c.MaxExpansions
	cfg.MaxK = c.SolverMaxK
	cfg.AllocMaxGoals = c.AllocMaxGoals
	return cfg
}

// ProjectionConfig maps the engine section onto the projection parameters
func (c EngineConfig) ProjectionConfig() projection.Config {
	cfg := projection.DefaultConfig()
	cfg.DisplayMaxGoals = c.DisplayMaxGoals
	cfg.MoneylineMaxGoals = c.MoneylineMaxGoals
	cfg.DerivedTotalsMaxK = c.DerivedTotalsMaxK
	return cfg
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsStaging checks if the application is running in staging mode
func (c *Config) IsStaging() bool {
	return c.App.Environment == "staging"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
