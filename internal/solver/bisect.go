package solver

import "math"

// bisect halves [low, high] until |f(mid)| drops below the tolerance or the
// iteration budget runs out. f(low) and f(high) must not share a sign.
func bisect(f func(float64) float64, low, high float64, cfg Config) float64 {
	fLow := f(low)
	for it := 0; it < cfg.MaxIterations; it++ {
		mid := 0.5 * (low + high)
		fMid := f(mid)
		if math.Abs(fMid) < cfg.Tolerance {
			return mid
		}
		if fMid*fLow <= 0 {
			high = mid
		} else {
			low = mid
			fLow = fMid
		}
	}
	return 0.5 * (low + high)
}

func sameSign(a, b float64) bool {
	return a*b > 0
}
