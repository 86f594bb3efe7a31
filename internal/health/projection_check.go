package health

import (
	"context"
	"fmt"

	"github.com/yourusername/scoreline/internal/models"
)

// Projector is the part of the engine the self-check exercises.
type Projector interface {
	ProjectSnapshot(ctx context.Context, s *models.MarketSnapshot) (*models.Projection, error)
}

func price(v float64) *float64 { return &v }

// cannedSnapshot is an even pre-match event every healthy engine can price.
func cannedSnapshot() *models.MarketSnapshot {
	return &models.MarketSnapshot{
		EventID: "health-check",
		Teams:   models.Teams{Home: "Home", Away: "Away"},
		Moneyline: &models.MoneylineMarket{Quotes: []models.PriceQuote{
			{Label: "Home", Price: 2.10},
			{Label: models.DrawLabel, Price: 3.40},
			{Label: "Away", Price: 3.60},
		}},
		Totals: []models.TotalsLine{{Line: 2.5, OverPrice: price(1.95), UnderPrice: price(1.95)}},
	}
}

// ProjectionCheck projects a canned snapshot and verifies a full market set comes back.
func ProjectionCheck(p Projector) Checker {
	return CheckFunc(func(ctx context.Context) error {
		proj, err := p.ProjectSnapshot(ctx, cannedSnapshot())
		if err != nil {
			return err
		}
		if proj.Path != models.PathMoneylineTotals {
			return fmt.Errorf("unexpected projection path %q", proj.Path)
		}
		for _, marketType := range []string{models.MarketTypeMoneyline, models.MarketTypeTotals, models.MarketTypeCorrectScore} {
			if len(proj.MarketsOfType(marketType)) == 0 {
				return fmt.Errorf("projection is missing %s", marketType)
			}
		}
		return nil
	})
}
