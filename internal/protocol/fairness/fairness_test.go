package fairness_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/orifhon74/task3/internal/crypto"
	"github.com/orifhon74/task3/internal/protocol/fairness"
)

func TestCommitRevealRoundTrip(t *testing.T) {
	tag, pending, err := fairness.Commit(rand.Reader, 0, 5)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if len(tag) != crypto.TagBytes {
		t.Fatalf("want %d-byte tag, got %d", crypto.TagBytes, len(tag))
	}

	value, key := pending.Reveal()
	if value < 0 || value > 5 {
		t.Fatalf("want committed value in [0,5], got %d", value)
	}
	if len(key) != crypto.KeyBytes {
		t.Fatalf("want %d-byte key, got %d", crypto.KeyBytes, len(key))
	}
	if !fairness.Verify(tag, value, key) {
		t.Fatal("honest reveal failed verification")
	}
}

func TestVerifyRejectsTamperedReveal(t *testing.T) {
	tag, pending, err := fairness.Commit(rand.Reader, 0, 5)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	value, key := pending.Reveal()

	if fairness.Verify(tag, (value+1)%6, key) {
		t.Fatal("verification passed for a different value")
	}
	flipped := bytes.Clone(key)
	flipped[0] ^= 0x01
	if fairness.Verify(tag, value, flipped) {
		t.Fatal("verification passed for a tampered key")
	}
}

func TestCommitUsesIndependentKeys(t *testing.T) {
	_, first, err := fairness.Commit(rand.Reader, 0, 1)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	_, second, err := fairness.Commit(rand.Reader, 0, 1)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	_, keyA := first.Reveal()
	_, keyB := second.Reveal()
	if bytes.Equal(keyA, keyB) {
		t.Fatal("two exchanges shared a commitment key")
	}
}

func TestCombineIsUniformPermutation(t *testing.T) {
	// For any fixed user digit, Combine must map the computer's digits
	// onto [0,5] one-to-one, so a uniform computer draw stays uniform.
	for user := 0; user < 6; user++ {
		seen := make(map[int]bool)
		for computer := 0; computer < 6; computer++ {
			r := fairness.Combine(computer, user, 6)
			if r < 0 || r > 5 {
				t.Fatalf("Combine(%d,%d,6) = %d out of range", computer, user, r)
			}
			if seen[r] {
				t.Fatalf("Combine(%d,%d,6) = %d repeats a residue", computer, user, r)
			}
			seen[r] = true
		}
	}
}

func TestCombineNegativeInputs(t *testing.T) {
	if got := fairness.Combine(-1, 2, 6); got != 1 {
		t.Fatalf("Combine(-1,2,6): want 1, got %d", got)
	}
	if got := fairness.Combine(-7, -8, 6); got != 3 {
		t.Fatalf("Combine(-7,-8,6): want 3, got %d", got)
	}
}
