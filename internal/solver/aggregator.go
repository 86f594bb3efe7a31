package solver

import (
	"math"
	"sort"

	"github.com/yourusername/scoreline/internal/models"
)

// LinePoint is a remaining totals line with its implied over probability
type LinePoint struct {
	Line     float64
	OverProb float64
}

// Consensus is the aggregate rate agreed by all usable totals lines
type Consensus struct {
	Mu           float64
	Candidates   []float64
	UsedFallback bool
	Recovered    []*models.RootNotBracketedError
}

// Aggregate solves every informative line and returns the median rate, so a single
// stale or mispriced line cannot drag the consensus. A line is informative when its
// remaining line lies in [0, MaxK) and its probability strictly inside (0, 1).
// With no informative line the fallback point is solved and used directly.
func Aggregate(s *TotalRateSolver, points []LinePoint, fallback LinePoint) Consensus {
	var out Consensus
	for _, pt := range points {
		if pt.Line < 0 || pt.Line >= float64(s.cfg.MaxK) || pt.OverProb <= 0 || pt.OverProb >= 1 {
			continue
		}
		est := s.Solve(pt.Line, pt.OverProb)
		if est.Recovered != nil {
			out.Recovered = append(out.Recovered, est.Recovered)
		}
		out.Candidates = append(out.Candidates, est.Value)
	}

	if len(out.Candidates) == 0 {
		est := s.Solve(fallback.Line, fallback.OverProb)
		if est.Recovered != nil {
			out.Recovered = append(out.Recovered, est.Recovered)
		}
		out.Mu = est.Value
		out.UsedFallback = true
		return out
	}

	out.Mu = Median(out.Candidates)
	return out
}

// Median returns the median of values without reordering them; NaN when empty
func Median(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return 0.5 * (sorted[mid-1] + sorted[mid])
}
