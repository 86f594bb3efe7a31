package projection

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/yourusername/scoreline/internal/models"
	"github.com/yourusername/scoreline/internal/pricing"
)

var thresholdLabel = regexp.MustCompile(`^(\d+)(\+?)$`)

// ParseThreshold reads a team goals label. "N" is the line N and "N+" the line
// N + 0.5; anything else is not a threshold.
func ParseThreshold(label string) (float64, bool) {
	m := thresholdLabel.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	line := float64(n)
	if m[2] != "" {
		line += 0.5
	}
	return line, true
}

// TeamGoalRate estimates one side's remaining scoring rate as the probability
// weighted distance from its current score to each threshold. Unparseable
// labels still take part in the margin removal.
func TeamGoalRate(market string, m models.TeamGoalsMarket, currentScore int) (float64, error) {
	probs, err := pricing.NormalizeQuotes(market, m.Quotes, 1)
	if err != nil {
		return 0, err
	}

	var rate float64
	for _, lp := range probs {
		line, ok := ParseThreshold(lp.Label)
		if !ok {
			continue
		}
		rate += lp.Probability * math.Max(line-float64(currentScore), 0)
	}
	return RoundRate(rate), nil
}

// TeamGoalRates estimates both sides' rates from their team goals markets
func TeamGoalRates(home, away models.TeamGoalsMarket, score models.ScoreOffset) (models.Rates, error) {
	lamHome, err := TeamGoalRate("home team goals", home, score.Home)
	if err != nil {
		return models.Rates{}, err
	}
	lamAway, err := TeamGoalRate("away team goals", away, score.Away)
	if err != nil {
		return models.Rates{}, err
	}
	return models.Rates{Home: lamHome, Away: lamAway}, nil
}
