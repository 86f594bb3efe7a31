package models

import "math"

// PriceQuote represents one quoted decimal price for a labelled outcome
type PriceQuote struct {
	Label string  `json:"label" yaml:"label"`
	Price float64 `json:"price" yaml:"price"`
}

// IsValid reports whether the quote carries a usable decimal price
func (q PriceQuote) IsValid() bool {
	return IsValidPrice(q.Price)
}

// GetImpliedProbability returns the raw (margin-inclusive) implied probability
func (q PriceQuote) GetImpliedProbability() float64 {
	if !q.IsValid() {
		return 0
	}
	return 1.0 / q.Price
}

// IsValidPrice reports whether a decimal price is positive and finite
func IsValidPrice(price float64) bool {
	return price > 0 && !math.IsNaN(price) && !math.IsInf(price, 0)
}

// Prices extracts the decimal prices of a quote list in order
func Prices(quotes []PriceQuote) []float64 {
	prices := make([]float64, len(quotes))
	for i, q := range quotes {
		prices[i] = q.Price
	}
	return prices
}
