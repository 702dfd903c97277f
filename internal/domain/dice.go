package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// MinDice is the smallest number of dice that makes a playable game.
const MinDice = 3

// Die is a fixed, ordered sequence of integer face values.
// It is immutable after construction.
type Die struct {
	faces []int
}

// NewDie copies faces into a new die.
func NewDie(faces []int) Die {
	out := make([]int, len(faces))
	copy(out, faces)
	return Die{faces: out}
}

// Len reports the number of faces.
func (d Die) Len() int { return len(d.faces) }

// Face returns the face value at index i.
func (d Die) Face(i int) int {
	if i < 0 || i >= len(d.faces) {
		panic(fmt.Errorf("die face: want index in [0,%d), got %d", len(d.faces), i))
	}
	return d.faces[i]
}

// Faces returns a copy of the face values.
func (d Die) Faces() []int {
	out := make([]int, len(d.faces))
	copy(out, d.faces)
	return out
}

// String renders the faces as a comma-separated list, matching the
// CLI argument format.
func (d Die) String() string {
	parts := make([]string, len(d.faces))
	for i, f := range d.faces {
		parts[i] = strconv.Itoa(f)
	}
	return strings.Join(parts, ",")
}

// DiceSet is an ordered, immutable collection of at least MinDice dice,
// all with the same face count.
type DiceSet struct {
	dice      []Die
	faceCount int
}

// NewDiceSet validates the dice and builds a set. The face count of the
// first die fixes the face count for the whole set.
func NewDiceSet(dice []Die) (*DiceSet, error) {
	if len(dice) < MinDice {
		return nil, &ValidationError{
			Kind:   TooFewDice,
			Detail: fmt.Sprintf("at least %d dice are required, got %d", MinDice, len(dice)),
		}
	}
	faceCount := dice[0].Len()
	if faceCount == 0 {
		return nil, &ValidationError{
			Kind:   WrongFaceCount,
			Detail: "die 1 has no faces",
		}
	}
	for i, d := range dice {
		if d.Len() != faceCount {
			return nil, &ValidationError{
				Kind:   WrongFaceCount,
				Detail: fmt.Sprintf("die %d has %d faces, want %d", i+1, d.Len(), faceCount),
			}
		}
	}
	out := make([]Die, len(dice))
	copy(out, dice)
	return &DiceSet{dice: out, faceCount: faceCount}, nil
}

// ParseDiceSet builds a set from CLI arguments, one comma-separated
// face list per die.
func ParseDiceSet(args []string) (*DiceSet, error) {
	dice := make([]Die, 0, len(args))
	for i, arg := range args {
		fields := strings.Split(arg, ",")
		faces := make([]int, 0, len(fields))
		for _, field := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, &ValidationError{
					Kind:   NonIntegerFace,
					Detail: fmt.Sprintf("die %d: face %q is not an integer", i+1, field),
				}
			}
			faces = append(faces, v)
		}
		dice = append(dice, NewDie(faces))
	}
	return NewDiceSet(dice)
}

// Len reports the number of dice.
func (s *DiceSet) Len() int { return len(s.dice) }

// FaceCount reports the uniform face count shared by every die.
func (s *DiceSet) FaceCount() int { return s.faceCount }

// Die returns the die at index i.
func (s *DiceSet) Die(i int) Die {
	if i < 0 || i >= len(s.dice) {
		panic(fmt.Errorf("dice set: want index in [0,%d), got %d", len(s.dice), i))
	}
	return s.dice[i]
}

// Face is a bounds-checked lookup of one face of one die.
func (s *DiceSet) Face(dieIndex, faceIndex int) int {
	return s.Die(dieIndex).Face(faceIndex)
}
