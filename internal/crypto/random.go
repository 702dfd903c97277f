package crypto

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// KeyBytes is the commitment secret key length (256 bits).
const KeyBytes = 32

// NewKey draws a fresh commitment key from r.
func NewKey(r io.Reader) ([]byte, error) {
	key := make([]byte, KeyBytes)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("secure random source: %w", err)
	}
	return key, nil
}

// UniformInt draws a uniformly distributed integer in [min, max] from r.
//
// It uses rejection sampling: a raw 64-bit draw is discarded when it falls
// into the short tail above the largest multiple of the range size, so the
// result carries no modulo bias.
func UniformInt(r io.Reader, min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("uniform int: empty range [%d,%d]", min, max)
	}
	n := uint64(max-min) + 1
	// Largest multiple of n representable in 64 bits.
	limit := math.MaxUint64 - math.MaxUint64%n

	var buf [8]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, fmt.Errorf("secure random source: %w", err)
		}
		v := binary.BigEndian.Uint64(buf[:])
		if v < limit {
			return min + int(v%n), nil
		}
	}
}
