package solver

import (
	"github.com/yourusername/scoreline/internal/models"
	"github.com/yourusername/scoreline/internal/poisson"
)

// Estimate is a solved rate. Recovered is set when the bracket search failed and
// Value holds the deterministic fallback instead of a root.
type Estimate struct {
	Value     float64
	Recovered *models.RootNotBracketedError
}

// TotalRateSolver finds the aggregate rate mu with P(Poisson(mu) > line) = pOver
type TotalRateSolver struct {
	cfg Config
}

// NewTotalRateSolver creates a new total rate solver
func NewTotalRateSolver(cfg Config) *TotalRateSolver {
	return &TotalRateSolver{cfg: cfg}
}

// Solve inverts the over-line probability. The line is the remaining line, i.e.
// already shifted by the current total.
func (s *TotalRateSolver) Solve(line, pOver float64) Estimate {
	if pOver <= 0 {
		return Estimate{Value: s.cfg.ZeroRate}
	}
	if pOver >= 1 {
		return Estimate{Value: s.cfg.SaturationRate}
	}

	f := func(mu float64) float64 {
		return poisson.ProbOverLine(line, mu, s.cfg.MaxK) - pOver
	}

	low, high := s.cfg.BracketLow, s.cfg.BracketHigh
	fLow, fHigh := f(low), f(high)
	for tries := 0; sameSign(fLow, fHigh) && tries < s.cfg.MaxExpansions; tries++ {
		high *= 2
		fHigh = f(high)
		if high > s.cfg.BracketCap {
			break
		}
	}
	if sameSign(fLow, fHigh) {
		return Estimate{
			Value:     high,
			Recovered: models.NewRootNotBracketedError(ComponentTotalRate, low, high),
		}
	}

	return Estimate{Value: bisect(f, low, high, s.cfg)}
}
