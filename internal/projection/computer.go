package projection

import (
	"fmt"
	"strconv"

	"github.com/yourusername/scoreline/internal/models"
	"github.com/yourusername/scoreline/internal/poisson"
)

// Input is everything the derived markets depend on
type Input struct {
	Teams  models.Teams
	Score  models.ScoreOffset
	Rates  models.Rates
	Lines  []float64
	TwoWay bool
}

// Computer prices the derived markets from a pair of rates
type Computer struct {
	cfg Config
}

// NewComputer creates a new derived market computer
func NewComputer(cfg Config) *Computer {
	return &Computer{cfg: cfg}
}

// Config returns the computer's truncation settings
func (c *Computer) Config() Config {
	return c.cfg
}

// Compute emits moneyline, totals, correct score and 4+ aggregates, in that order
func (c *Computer) Compute(in Input) []models.DerivedMarket {
	markets := make([]models.DerivedMarket, 0, 32)
	markets = append(markets, c.Moneyline(in)...)
	markets = append(markets, c.Totals(in)...)
	markets = append(markets, c.CorrectScore(in, BuildMatrix(in.Rates, in.Score, c.cfg.DisplayMaxGoals))...)
	return markets
}

// Moneyline prices the match result from the model. A two-way input drops the
// draw and renormalizes over decisive outcomes.
func (c *Computer) Moneyline(in Input) []models.DerivedMarket {
	probs := poisson.MatchProbs(in.Rates.Home, in.Rates.Away, in.Score.Home, in.Score.Away, c.cfg.MoneylineMaxGoals)

	var out []models.DerivedMarket
	if in.TwoWay {
		decisive := probs.Decisive()
		if decisive <= 0 {
			return nil
		}
		out = appendPriced(out, models.MarketTypeMoneyline, in.Teams.Home, probs.Home/decisive)
		out = appendPriced(out, models.MarketTypeMoneyline, in.Teams.Away, probs.Away/decisive)
		return out
	}

	out = appendPriced(out, models.MarketTypeMoneyline, in.Teams.Home, probs.Home)
	out = appendPriced(out, models.MarketTypeMoneyline, models.DrawLabel, probs.Draw)
	out = appendPriced(out, models.MarketTypeMoneyline, in.Teams.Away, probs.Away)
	return out
}

// Totals prices over/under for every input line against the remaining line
func (c *Computer) Totals(in Input) []models.DerivedMarket {
	mu := in.Rates.Total()
	current := float64(in.Score.Total())

	var out []models.DerivedMarket
	for _, line := range in.Lines {
		pOver := 1.0
		if remaining := line - current; remaining >= 0 {
			pOver = poisson.ProbOverLine(remaining, mu, c.cfg.DerivedTotalsMaxK)
		}
		pUnder := 1 - pOver
		if pUnder < 0 {
			pUnder = 0
		}

		label := strconv.FormatFloat(line, 'f', -1, 64)
		out = appendPriced(out, models.MarketTypeTotals, "Over "+label, pOver)
		out = appendPriced(out, models.MarketTypeTotals, "Under "+label, pUnder)
	}
	return out
}

// CorrectScore quotes every final score up to CorrectScoreMax per side, then the
// home, draw and away 4+ aggregates
func (c *Computer) CorrectScore(in Input, m *Matrix) []models.DerivedMarket {
	var out []models.DerivedMarket
	var home4, draw4, away4 float64
	limit := c.cfg.CorrectScoreMax
	high := limit + 1

	m.Each(func(h, a int, p float64) {
		if h <= limit && a <= limit {
			out = appendPriced(out, models.MarketTypeCorrectScore, fmt.Sprintf("%d-%d", h, a), p)
		}
		switch {
		case h >= high && h > a:
			home4 += p
		case a >= high && a > h:
			away4 += p
		case h == a && h >= high:
			draw4 += p
		}
	})

	suffix := fmt.Sprintf(" %d+", high)
	out = appendPriced(out, models.MarketTypeCorrectScore, in.Teams.Home+suffix, home4)
	out = appendPriced(out, models.MarketTypeCorrectScore, models.DrawLabel+suffix, draw4)
	out = appendPriced(out, models.MarketTypeCorrectScore, in.Teams.Away+suffix, away4)
	return out
}

func appendPriced(out []models.DerivedMarket, marketType, outcome string, p float64) []models.DerivedMarket {
	odds, ok := FairOdds(p)
	if !ok {
		return out
	}
	return append(out, models.DerivedMarket{MarketType: marketType, Outcome: outcome, FairOdds: odds})
}
