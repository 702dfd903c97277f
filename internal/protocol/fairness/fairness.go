package fairness

import (
	"io"

	"github.com/orifhon74/task3/internal/crypto"
)

// Pending holds the committed value and key between Commit and Reveal.
// It backs exactly one exchange.
type Pending struct {
	value int
	key   []byte
}

// Commit draws a fresh secret key and a uniform value in [min, max] from r,
// and returns the commitment tag for publication together with the pending
// record to be revealed once the counterparty's contribution is fixed.
func Commit(r io.Reader, min, max int) ([]byte, *Pending, error) {
	key, err := crypto.NewKey(r)
	if err != nil {
		return nil, nil, err
	}
	value, err := crypto.UniformInt(r, min, max)
	if err != nil {
		return nil, nil, err
	}
	return crypto.CommitmentTag(key, value), &Pending{value: value, key: key}, nil
}

// Reveal returns the committed value and key verbatim.
func (p *Pending) Reveal() (value int, key []byte) {
	return p.value, p.key
}

// Combine folds the two contributions into the agreed result,
// (a + b) mod modulus. The result is non-negative for any inputs
// with modulus > 0.
func Combine(a, b, modulus int) int {
	return ((a+b)%modulus + modulus) % modulus
}

// Verify recomputes the tag from a revealed value and key and compares it
// to the published one in constant time. This is the counterparty's check
// that the commitment was honest.
func Verify(tag []byte, value int, key []byte) bool {
	return crypto.TagEqual(tag, crypto.CommitmentTag(key, value))
}
