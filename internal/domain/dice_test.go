package domain_test

import (
	"errors"
	"testing"

	"github.com/orifhon74/task3/internal/domain"
)

func TestParseDiceSet(t *testing.T) {
	set, err := domain.ParseDiceSet([]string{"2,2,4,4,9,9", "1,1,6,6,8,8", "3,3,5,5,7,7"})
	if err != nil {
		t.Fatalf("ParseDiceSet: %v", err)
	}
	if set.Len() != 3 {
		t.Fatalf("want 3 dice, got %d", set.Len())
	}
	if set.FaceCount() != 6 {
		t.Fatalf("want face count 6, got %d", set.FaceCount())
	}
	if got := set.Face(0, 4); got != 9 {
		t.Fatalf("Face(0,4): want 9, got %d", got)
	}
	if got := set.Die(2).String(); got != "3,3,5,5,7,7" {
		t.Fatalf("Die(2).String(): want 3,3,5,5,7,7, got %q", got)
	}
}

func TestParseDiceSetNegativeFaces(t *testing.T) {
	set, err := domain.ParseDiceSet([]string{"-1,0,1", "2,3,4", "5,6,7"})
	if err != nil {
		t.Fatalf("ParseDiceSet: %v", err)
	}
	if got := set.Face(0, 0); got != -1 {
		t.Fatalf("Face(0,0): want -1, got %d", got)
	}
}

func TestParseDiceSetTooFewDice(t *testing.T) {
	_, err := domain.ParseDiceSet([]string{"1,2,3,4,5,6", "1,2,3,4,5,6"})
	assertValidation(t, err, domain.TooFewDice)
}

func TestParseDiceSetWrongFaceCount(t *testing.T) {
	_, err := domain.ParseDiceSet([]string{"1,2,3,4,5,6", "1,2,3,4,5", "1,2,3,4,5,6"})
	assertValidation(t, err, domain.WrongFaceCount)
}

func TestParseDiceSetNonIntegerFace(t *testing.T) {
	_, err := domain.ParseDiceSet([]string{"1,2,3,4,5,6", "1,2,x,4,5,6", "1,2,3,4,5,6"})
	assertValidation(t, err, domain.NonIntegerFace)
}

func TestDieIsImmutable(t *testing.T) {
	faces := []int{1, 2, 3}
	die := domain.NewDie(faces)
	faces[0] = 99
	if got := die.Face(0); got != 1 {
		t.Fatalf("die shares backing array with caller: got %d", got)
	}
	out := die.Faces()
	out[1] = 99
	if got := die.Face(1); got != 2 {
		t.Fatalf("Faces() aliases internal storage: got %d", got)
	}
}

func TestFaceOutOfRangePanics(t *testing.T) {
	die := domain.NewDie([]int{1, 2, 3})
	defer func() {
		if recover() == nil {
			t.Fatal("want panic for out-of-range face index")
		}
	}()
	die.Face(3)
}

func assertValidation(t *testing.T, err error, kind domain.ValidationKind) {
	t.Helper()
	if err == nil {
		t.Fatal("want validation error, got nil")
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want *domain.ValidationError, got %T", err)
	}
	if verr.Kind != kind {
		t.Fatalf("want kind %v, got %v", kind, verr.Kind)
	}
}
