package odds

import (
	"math"

	"github.com/orifhon74/task3/internal/domain"
)

// Compare returns the probability that a uniformly random face of a
// strictly exceeds a uniformly random face of b, rounded half-to-even
// to four decimal places. Ties count as neither win nor loss.
func Compare(a, b domain.Die) float64 {
	wins := 0
	for _, fa := range a.Faces() {
		for _, fb := range b.Faces() {
			if fa > fb {
				wins++
			}
		}
	}
	total := a.Len() * b.Len()
	return math.RoundToEven(float64(wins)/float64(total)*1e4) / 1e4
}

// Matrix builds the pairwise win-probability matrix for a set. Entry
// [i][j] is the probability that die i beats die j; the diagonal is die
// i against an independent roll of the same die.
func Matrix(set *domain.DiceSet) [][]float64 {
	n := set.Len()
	m := make([][]float64, n)
	for i := 0; i < n; i++ {
		m[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			m[i][j] = Compare(set.Die(i), set.Die(j))
		}
	}
	return m
}
