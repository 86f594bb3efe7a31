// Package projection turns a pair of scoring rates into a final-score
// distribution and the fair-priced markets derived from it.
package projection

import (
	"github.com/yourusername/scoreline/internal/models"
	"github.com/yourusername/scoreline/internal/poisson"
)

// Matrix is a truncated joint distribution over final scores. Cell (i, j) holds
// the probability of i further home and j further away scores; mass beyond
// maxGoals is dropped, never renormalized.
type Matrix struct {
	offset   models.ScoreOffset
	maxGoals int
	cells    [][]float64
}

// BuildMatrix builds the independent-Poisson final-score matrix
func BuildMatrix(rates models.Rates, offset models.ScoreOffset, maxGoals int) *Matrix {
	if maxGoals < 0 {
		maxGoals = 0
	}

	pHome := make([]float64, maxGoals+1)
	pAway := make([]float64, maxGoals+1)
	for k := 0; k <= maxGoals; k++ {
		pHome[k] = poisson.PMF(k, rates.Home)
		pAway[k] = poisson.PMF(k, rates.Away)
	}

	cells := make([][]float64, maxGoals+1)
	for i := range cells {
		cells[i] = make([]float64, maxGoals+1)
		for j := range cells[i] {
			cells[i][j] = pHome[i] * pAway[j]
		}
	}

	return &Matrix{offset: offset, maxGoals: maxGoals, cells: cells}
}

// At returns the probability of the final score; zero outside the matrix
func (m *Matrix) At(finalHome, finalAway int) float64 {
	i := finalHome - m.offset.Home
	j := finalAway - m.offset.Away
	if i < 0 || j < 0 || i > m.maxGoals || j > m.maxGoals {
		return 0
	}
	return m.cells[i][j]
}

// Total returns the probability mass captured by the matrix
func (m *Matrix) Total() float64 {
	var total float64
	for _, row := range m.cells {
		for _, p := range row {
			total += p
		}
	}
	return total
}

// MaxGoals returns the per-side truncation point
func (m *Matrix) MaxGoals() int {
	return m.maxGoals
}

// Each visits every cell by final score in home-major order
func (m *Matrix) Each(fn func(finalHome, finalAway int, p float64)) {
	for i, row := range m.cells {
		for j, p := range row {
			fn(m.offset.Home+i, m.offset.Away+j, p)
		}
	}
}
