package projection

import (
	"fmt"

	"github.com/yourusername/scoreline/internal/poisson"
)

const (
	DefaultDisplayMaxGoals   = 10
	DefaultMoneylineMaxGoals = 30
	DefaultCorrectScoreMax   = 3
)

// Config controls truncation of the derived markets
type Config struct {
	DisplayMaxGoals   int
	MoneylineMaxGoals int
	DerivedTotalsMaxK int
	// CorrectScoreMax is the highest per-side final score quoted individually;
	// anything above is folded into the 4+ aggregates.
	CorrectScoreMax int
}

// DefaultConfig returns the standard truncation points
func DefaultConfig() Config {
	return Config{
		DisplayMaxGoals:   DefaultDisplayMaxGoals,
		MoneylineMaxGoals: DefaultMoneylineMaxGoals,
		DerivedTotalsMaxK: poisson.DerivedTotalsMaxK,
		CorrectScoreMax:   DefaultCorrectScoreMax,
	}
}

// Validate validates the truncation points
func (c Config) Validate() error {
	if c.DisplayMaxGoals <= 0 || c.MoneylineMaxGoals <= 0 || c.DerivedTotalsMaxK <= 0 {
		return fmt.Errorf("truncation points must be positive")
	}
	if c.CorrectScoreMax < 0 {
		return fmt.Errorf("correct score max cannot be negative")
	}
	return nil
}
