package engine

import (
	"errors"
	"fmt"

	"github.com/yourusername/scoreline/internal/models"
	"github.com/yourusername/scoreline/internal/pricing"
)

// Input market names used in skip reports and metrics
const (
	MarketMoneyline = "moneyline"
	MarketTotals    = "totals"
	MarketTeamGoals = "team_goals"
)

// ErrInvalidLine marks a totals line that is negative, non-finite or above models.MaxTotalsLine
var ErrInvalidLine = errors.New("invalid totals line")

// SkippedMarket is an input market dropped during classification
type SkippedMarket struct {
	Market string
	Err    error
}

// Classify turns a raw snapshot into evidence. A usable moneyline needs at least one
// usable totals line; without a usable moneyline both sides' team goals markets are
// used. Anything else is an *InsufficientMarketDataError.
func Classify(s *models.MarketSnapshot) (models.Evidence, error) {
	ev, _, err := classify(s)
	return ev, err
}

func classify(s *models.MarketSnapshot) (models.Evidence, []SkippedMarket, error) {
	if s == nil {
		return nil, nil, models.ErrNilSnapshot
	}

	var skipped []SkippedMarket

	var ml *moneylineProbs
	if s.Moneyline != nil {
		probs, err := moneylineEvidence(s.Moneyline)
		if err != nil {
			skipped = append(skipped, SkippedMarket{Market: MarketMoneyline, Err: err})
		} else {
			ml = probs
		}
	}

	totals := make([]models.TotalsEvidence, 0, len(s.Totals))
	for _, t := range s.Totals {
		if !models.IsValidLine(t.Line) {
			skipped = append(skipped, SkippedMarket{Market: MarketTotals, Err: fmt.Errorf("%w: %g", ErrInvalidLine, t.Line)})
			continue
		}
		pOver, err := pricing.ImpliedOver(t)
		if err != nil {
			skipped = append(skipped, SkippedMarket{Market: MarketTotals, Err: fmt.Errorf("line %g: %w", t.Line, err)})
			continue
		}
		totals = append(totals, models.TotalsEvidence{Line: t.Line, OverProb: pOver})
	}

	ctx := models.EventContext{
		EventID: s.EventID,
		Teams:   s.Teams,
		Score:   s.Score,
		Lines:   evidenceLines(totals),
	}

	if ml != nil {
		if len(totals) == 0 {
			return nil, skipped, models.NewInsufficientMarketDataError(s.EventID, insufficientReason(true, 0))
		}
		return models.MoneylinePlusTotals{
			EventContext: ctx,
			HomeProb:     ml.home,
			DrawProb:     ml.draw,
			AwayProb:     ml.away,
			TwoWay:       ml.twoWay,
			Totals:       totals,
		}, skipped, nil
	}

	if tg := s.TeamGoals; tg != nil && tg.Home.HasQuotes() && tg.Away.HasQuotes() {
		return models.TeamGoalsOnly{
			EventContext: ctx,
			Home:         tg.Home,
			Away:         tg.Away,
		}, skipped, nil
	}

	return nil, skipped, models.NewInsufficientMarketDataError(s.EventID, insufficientReason(false, len(totals)))
}

// evidenceLines lists the distinct usable totals lines in input order
func evidenceLines(totals []models.TotalsEvidence) []float64 {
	seen := make(map[float64]bool, len(totals))
	lines := make([]float64, 0, len(totals))
	for _, t := range totals {
		if !seen[t.Line] {
			seen[t.Line] = true
			lines = append(lines, t.Line)
		}
	}
	return lines
}

type moneylineProbs struct {
	home, draw, away float64
	twoWay           bool
}

// moneylineEvidence reads quotes positionally as home, [draw,] away. Both sides
// must be priced; an unusable draw leaves a two-way market.
func moneylineEvidence(m *models.MoneylineMarket) (*moneylineProbs, error) {
	quotes := m.Quotes
	if len(quotes) < 2 || len(quotes) > 3 {
		return nil, fmt.Errorf("moneyline has %d quotes, want 2 or 3: %w", len(quotes), models.ErrInvalidPrice)
	}

	home, away := quotes[0], quotes[len(quotes)-1]
	if !home.IsValid() || !away.IsValid() {
		return nil, models.NewInvalidPriceError(MarketMoneyline, countValid(quotes), 2)
	}

	if len(quotes) == 3 && quotes[1].IsValid() {
		probs, err := pricing.Normalize([]float64{home.Price, quotes[1].Price, away.Price})
		if err != nil {
			return nil, err
		}
		return &moneylineProbs{home: probs[0], draw: probs[1], away: probs[2]}, nil
	}

	probs, err := pricing.Normalize([]float64{home.Price, away.Price})
	if err != nil {
		return nil, err
	}
	return &moneylineProbs{home: probs[0], away: probs[1], twoWay: true}, nil
}

func countValid(quotes []models.PriceQuote) int {
	n := 0
	for _, q := range quotes {
		if q.IsValid() {
			n++
		}
	}
	return n
}

func insufficientReason(hasMoneyline bool, totals int) string {
	switch {
	case hasMoneyline && totals == 0:
		return "moneyline without usable totals"
	case !hasMoneyline && totals > 0:
		return "totals without usable moneyline and no team goals"
	default:
		return "no usable moneyline or team goals"
	}
}

// IsInsufficient reports whether err means the event cannot be projected
func IsInsufficient(err error) bool {
	return errors.Is(err, models.ErrInsufficientMarketData)
}
