package projection

import (
	"math"

	"github.com/shopspring/decimal"
)

// OddsPrecision is the number of decimal places fair odds are rounded to
const OddsPrecision = 3

var one = decimal.NewFromInt(1)

// FairOdds converts a probability to rounded decimal odds. The second return is
// false when the outcome must not be emitted: zero probability, or odds that
// round to 1.000 or below.
func FairOdds(p float64) (float64, bool) {
	if !(p > 0) {
		return 0, false
	}
	inv := 1 / p
	if math.IsInf(inv, 0) || math.IsNaN(inv) {
		return 0, false
	}

	odds := decimal.NewFromFloat(inv).Round(OddsPrecision)
	if !odds.GreaterThan(one) {
		return 0, false
	}
	return odds.InexactFloat64(), true
}

// RoundRate rounds a scoring rate to the odds precision
func RoundRate(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(OddsPrecision).InexactFloat64()
}
