// Package odds computes win probabilities between dice.
//
// Compare enumerates every face pair of two dice and counts strict wins for
// the first die; the ratio is rounded half-to-even to four decimal places.
// Matrix applies Compare to every ordered pair of a set. Diagonal entries
// are the die compared against an independent roll of an identical die, not
// a hardcoded tie constant.
package odds
