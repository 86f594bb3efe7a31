// Package solver recovers Poisson scoring rates from market-implied probabilities
// by bracketed bisection.
package solver

import (
	"fmt"

	"github.com/yourusername/scoreline/internal/poisson"
)

// Numerical defaults
const (
	DefaultTolerance      = 1e-9
	DefaultMaxIterations  = 60
	DefaultBracketLow     = 1e-8
	DefaultBracketHigh    = 8.0
	DefaultBracketCap     = 1000.0
	DefaultMaxExpansions  = 50
	DefaultAllocMaxGoals  = 40
	DefaultEpsilon        = 1e-9
	DefaultZeroRate       = 1e-9
	DefaultSaturationRate = 100.0
)

// Component names used in recovered bracketing errors
const (
	ComponentTotalRate = "total_rate_solver"
	ComponentAllocator = "rate_allocator"
)

// Config holds the root-finding parameters shared by the solvers
type Config struct {
	Tolerance      float64
	MaxIterations  int
	BracketLow     float64
	BracketHigh    float64
	BracketCap     float64
	MaxExpansions  int
	MaxK           int
	AllocMaxGoals  int
	Epsilon        float64
	ZeroRate       float64
	SaturationRate float64
}

// DefaultConfig returns the tuned defaults
func DefaultConfig() Config {
	return Config{
		Tolerance:      DefaultTolerance,
		MaxIterations:  DefaultMaxIterations,
		BracketLow:     DefaultBracketLow,
		BracketHigh:    DefaultBracketHigh,
		BracketCap:     DefaultBracketCap,
		MaxExpansions:  DefaultMaxExpansions,
		MaxK:           poisson.SolverMaxK,
		AllocMaxGoals:  DefaultAllocMaxGoals,
		Epsilon:        DefaultEpsilon,
		ZeroRate:       DefaultZeroRate,
		SaturationRate: DefaultSaturationRate,
	}
}

// Validate validates solver parameters
func (c Config) Validate() error {
	if c.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive")
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max iterations must be positive")
	}
	if c.BracketLow <= 0 || c.BracketLow >= c.BracketHigh {
		return fmt.Errorf("bracket low must be positive and below bracket high")
	}
	if c.BracketHigh > c.BracketCap {
		return fmt.Errorf("bracket high cannot exceed bracket cap")
	}
	if c.MaxExpansions < 0 {
		return fmt.Errorf("max expansions cannot be negative")
	}
	if c.MaxK <= 0 || c.AllocMaxGoals <= 0 {
		return fmt.Errorf("truncation points must be positive")
	}
	if c.Epsilon <= 0 {
		return fmt.Errorf("epsilon must be positive")
	}
	return nil
}
