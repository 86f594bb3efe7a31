package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/scoreline/internal/models"
)

func TestClassifyMoneylinePlusTotals(t *testing.T) {
	ev, err := Classify(scenarioA())
	require.NoError(t, err)

	ml, ok := ev.(models.MoneylinePlusTotals)
	require.True(t, ok)
	assert.False(t, ml.TwoWay)
	assert.InDelta(t, 1.0, ml.HomeProb+ml.DrawProb+ml.AwayProb, 1e-12)
	require.Len(t, ml.Totals, 1)
	assert.InDelta(t, 0.5, ml.Totals[0].OverProb, 1e-12)
	assert.Equal(t, []float64{2.5}, ml.Event().Lines)
}

func TestClassifyInvalidDrawIsTwoWay(t *testing.T) {
	s := scenarioA()
	s.Moneyline.Quotes[1].Price = -1

	ev, err := Classify(s)
	require.NoError(t, err)

	ml := ev.(models.MoneylinePlusTotals)
	assert.True(t, ml.TwoWay)
	assert.Zero(t, ml.DrawProb)
	assert.InDelta(t, 1.0, ml.HomeProb+ml.AwayProb, 1e-12)
}

func TestClassifySkipsUnusableMarkets(t *testing.T) {
	s := scenarioA()
	s.Totals = append(s.Totals,
		models.TotalsLine{Line: 3.5},
		models.TotalsLine{Line: 1.5, OverPrice: ptr(1.4)},
	)

	ev, skipped, err := classify(s)
	require.NoError(t, err)
	require.Len(t, skipped, 1)
	assert.Equal(t, MarketTotals, skipped[0].Market)
	assert.True(t, errors.Is(skipped[0].Err, models.ErrInvalidPrice))

	ml := ev.(models.MoneylinePlusTotals)
	require.Len(t, ml.Totals, 2)
	assert.InDelta(t, 1/1.4, ml.Totals[1].OverProb, 1e-12)
	assert.Equal(t, []float64{2.5, 1.5}, ml.Event().Lines)
}

func TestClassifySkipsInvalidLines(t *testing.T) {
	s := scenarioA()
	s.Totals = append(s.Totals,
		models.TotalsLine{Line: 1e19, OverPrice: ptr(1.9), UnderPrice: ptr(1.9)},
		models.TotalsLine{Line: math.Inf(1), OverPrice: ptr(1.9), UnderPrice: ptr(1.9)},
		models.TotalsLine{Line: math.NaN(), OverPrice: ptr(1.9), UnderPrice: ptr(1.9)},
		models.TotalsLine{Line: -1, OverPrice: ptr(1.9), UnderPrice: ptr(1.9)},
	)

	ev, skipped, err := classify(s)
	require.NoError(t, err)
	require.Len(t, skipped, 4)
	for _, sk := range skipped {
		assert.Equal(t, MarketTotals, sk.Market)
		assert.ErrorIs(t, sk.Err, ErrInvalidLine)
	}

	ml := ev.(models.MoneylinePlusTotals)
	require.Len(t, ml.Totals, 1)
	assert.Equal(t, []float64{2.5}, ml.Event().Lines)
}

func TestClassifyMoneylineWithoutTotalsIgnoresTeamGoals(t *testing.T) {
	s := teamGoalsSnapshot()
	s.Moneyline = &models.MoneylineMarket{Quotes: quotes(mlLabels, 1.80, 3.60, 4.50)}
	s.Totals = []models.TotalsLine{{Line: 2.5}}

	_, err := Classify(s)
	require.True(t, IsInsufficient(err))

	var insufficient *models.InsufficientMarketDataError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, "moneyline without usable totals", insufficient.Reason)
}

func TestClassifyMoneylineQuoteCount(t *testing.T) {
	s := scenarioA()
	s.Moneyline.Quotes = append(s.Moneyline.Quotes, models.PriceQuote{Label: "Other", Price: 9})

	_, skipped, err := classify(s)
	assert.True(t, IsInsufficient(err))
	require.Len(t, skipped, 1)
	assert.Equal(t, MarketMoneyline, skipped[0].Market)
}

func TestClassifyMissingSide(t *testing.T) {
	s := scenarioA()
	s.Moneyline.Quotes[2].Price = 0

	_, skipped, err := classify(s)
	require.Error(t, err)

	var insufficient *models.InsufficientMarketDataError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, "evt-a", insufficient.EventID)
	assert.Contains(t, insufficient.Reason, "totals without usable moneyline")

	var priceErr *models.InvalidPriceError
	require.True(t, errors.As(skipped[0].Err, &priceErr))
	assert.Equal(t, 2, priceErr.Valid)
}

func TestClassifyTeamGoalsNeedsBothSides(t *testing.T) {
	s := teamGoalsSnapshot()
	s.TeamGoals.Away.Quotes = nil

	_, err := Classify(s)
	assert.True(t, IsInsufficient(err))
}

func TestClassifyNil(t *testing.T) {
	_, err := Classify(nil)
	assert.ErrorIs(t, err, models.ErrNilSnapshot)
}
