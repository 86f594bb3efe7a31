package solver

import (
	"math"

	"github.com/yourusername/scoreline/internal/models"
	"github.com/yourusername/scoreline/internal/poisson"
)

// MoneylineTarget is the margin-free moneyline the allocation must reproduce
type MoneylineTarget struct {
	Home   float64
	Away   float64
	TwoWay bool
}

// Allocation is a split of the aggregate rate between the two sides
type Allocation struct {
	Rates     models.Rates
	Recovered *models.RootNotBracketedError
}

// RateAllocator splits mu into (lambda_home, mu - lambda_home) so that the modelled
// home-win probability matches the market
type RateAllocator struct {
	cfg Config
}

// NewRateAllocator creates a new rate allocator
func NewRateAllocator(cfg Config) *RateAllocator {
	return &RateAllocator{cfg: cfg}
}

// Allocate solves for lambda_home. The modelled home-win probability increases
// with lambda_home, so bisection over [eps, mu-eps] applies. When the target is
// outside the reachable range the split falls back to the market's home/away ratio.
func (a *RateAllocator) Allocate(target MoneylineTarget, mu float64, offset models.ScoreOffset) Allocation {
	eps := a.cfg.Epsilon
	if mu <= eps {
		return Allocation{}
	}

	homeWin := func(x float64) float64 {
		probs := poisson.MatchProbs(x, mu-x, offset.Home, offset.Away, a.cfg.AllocMaxGoals)
		if !target.TwoWay {
			return probs.Home
		}
		decisive := probs.Decisive()
		if decisive <= 0 {
			return 0
		}
		return probs.Home / decisive
	}
	f := func(x float64) float64 {
		return homeWin(x) - target.Home
	}

	low, high := eps, math.Max(mu-eps, eps)
	if sameSign(f(low), f(high)) {
		return Allocation{
			Rates:     proportionalSplit(target, mu, eps),
			Recovered: models.NewRootNotBracketedError(ComponentAllocator, low, high),
		}
	}

	x := bisect(f, low, high, a.cfg)
	return Allocation{Rates: models.Rates{Home: x, Away: mu - x}}
}

func proportionalSplit(target MoneylineTarget, mu, eps float64) models.Rates {
	home := math.Max(target.Home, eps)
	away := math.Max(target.Away, eps)
	lamHome := mu * home / (home + away)
	return models.Rates{Home: lamHome, Away: mu - lamHome}
}
