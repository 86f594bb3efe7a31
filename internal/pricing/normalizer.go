// Package pricing converts quoted decimal prices into margin-free probabilities.
package pricing

import (
	"math"

	"github.com/yourusername/scoreline/internal/models"
)

// MinOutcomes is the number of valid prices a mutually exclusive market needs
const MinOutcomes = 2

// Normalize removes the bookmaker margin from a set of mutually exclusive prices.
// Invalid prices are dropped; the result is aligned with the valid prices only.
func Normalize(prices []float64) ([]float64, error) {
	return NormalizeAtLeast(prices, MinOutcomes)
}

// NormalizeAtLeast is Normalize with a caller-chosen minimum of valid prices
func NormalizeAtLeast(prices []float64, minValid int) ([]float64, error) {
	raw := make([]float64, 0, len(prices))
	for _, p := range prices {
		if models.IsValidPrice(p) {
			raw = append(raw, 1.0/p)
		}
	}
	if len(raw) < minValid || len(raw) == 0 {
		return nil, models.NewInvalidPriceError("", len(raw), minValid)
	}

	sum := 0.0
	for _, r := range raw {
		sum += r
	}
	probs := make([]float64, len(raw))
	for i, r := range raw {
		probs[i] = r / sum
	}
	return probs, nil
}

// LabelledProbability is a margin-free probability with its outcome label
type LabelledProbability struct {
	Label       string
	Probability float64
}

// NormalizeQuotes de-vigs a quote list, keeping the labels of the valid quotes
func NormalizeQuotes(market string, quotes []models.PriceQuote, minValid int) ([]LabelledProbability, error) {
	valid := make([]models.PriceQuote, 0, len(quotes))
	for _, q := range quotes {
		if q.IsValid() {
			valid = append(valid, q)
		}
	}
	probs, err := NormalizeAtLeast(models.Prices(valid), minValid)
	if err != nil {
		return nil, models.NewInvalidPriceError(market, len(valid), minValid)
	}

	out := make([]LabelledProbability, len(valid))
	for i, q := range valid {
		out[i] = LabelledProbability{Label: q.Label, Probability: probs[i]}
	}
	return out, nil
}

// ImpliedOver returns the margin-free probability of the over side of a totals pair.
// With a single usable side the raw implied probability is used, since no margin
// can be measured.
func ImpliedOver(t models.TotalsLine) (float64, error) {
	overOK := t.OverPrice != nil && models.IsValidPrice(*t.OverPrice)
	underOK := t.UnderPrice != nil && models.IsValidPrice(*t.UnderPrice)

	switch {
	case overOK && underOK:
		probs, err := Normalize([]float64{*t.OverPrice, *t.UnderPrice})
		if err != nil {
			return 0, err
		}
		return probs[0], nil
	case overOK:
		return clamp01(1.0 / *t.OverPrice), nil
	case underOK:
		return clamp01(1.0 - 1.0 / *t.UnderPrice), nil
	default:
		return 0, models.NewInvalidPriceError("totals", 0, 1)
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
