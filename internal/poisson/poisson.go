// Package poisson holds the forward probability functions of the scoring model:
// the Poisson pmf, over-line tail probabilities and independent double-Poisson
// match outcome probabilities.
package poisson

import "math"

// Truncation points for tail sums. Beyond them the Poisson tail is below 1e-9
// for every rate the solvers produce in practice.
const (
	SolverMaxK        = 60
	DerivedTotalsMaxK = 80
)

var factorials = NewFactorialTable()

// Factorial returns n! from the package memo table
func Factorial(n int) float64 {
	return factorials.Factorial(n)
}

// PMF returns P(X = k) for X ~ Poisson(lambda). A non-positive rate is a point mass at zero.
func PMF(k int, lambda float64) float64 {
	if k < 0 {
		return 0
	}
	if lambda <= 0 {
		if k == 0 {
			return 1
		}
		return 0
	}

	f := factorials.Factorial(k)
	pow := math.Pow(lambda, float64(k))
	decay := math.Exp(-lambda)
	if !math.IsInf(f, 0) && !math.IsInf(pow, 0) && decay > 0 {
		return decay * pow / f
	}
	lg, _ := math.Lgamma(float64(k + 1))
	return math.Exp(float64(k)*math.Log(lambda) - lambda - lg)
}

// ProbOverLine returns P(X > line) for X ~ Poisson(mu), summing the pmf up to maxK.
// A negative line (already exceeded) yields the whole truncated mass; a line at or
// beyond maxK, or NaN, yields 0.
func ProbOverLine(line, mu float64, maxK int) float64 {
	if math.IsNaN(line) || line >= float64(maxK) {
		return 0
	}
	start := 0
	if line >= 0 {
		start = int(math.Floor(line)) + 1
	}
	sum := 0.0
	for k := start; k <= maxK; k++ {
		sum += PMF(k, mu)
	}
	return sum
}

// ThreeWay holds home-win / draw / away-win probabilities
type ThreeWay struct {
	Home float64
	Draw float64
	Away float64
}

// Decisive returns the probability that the contest does not end level
func (t ThreeWay) Decisive() float64 {
	return t.Home + t.Away
}

// MatchProbs sums the independent double-Poisson grid of future goals [0, maxGoals]²
// by comparing final scores (offset plus future goals). The truncated residual is
// left out, not renormalized.
func MatchProbs(lamHome, lamAway float64, offsetHome, offsetAway, maxGoals int) ThreeWay {
	pH := make([]float64, maxGoals+1)
	pA := make([]float64, maxGoals+1)
	for i := 0; i <= maxGoals; i++ {
		pH[i] = PMF(i, lamHome)
		pA[i] = PMF(i, lamAway)
	}

	var out ThreeWay
	for i := 0; i <= maxGoals; i++ {
		for j := 0; j <= maxGoals; j++ {
			p := pH[i] * pA[j]
			finalH := offsetHome + i
			finalA := offsetAway + j
			switch {
			case finalH > finalA:
				out.Home += p
			case finalH == finalA:
				out.Draw += p
			default:
				out.Away += p
			}
		}
	}
	return out
}
