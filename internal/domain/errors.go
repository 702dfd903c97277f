package domain

// ValidationKind classifies why a dice configuration was rejected.
type ValidationKind int

const (
	// TooFewDice means fewer than MinDice dice were supplied.
	TooFewDice ValidationKind = iota
	// WrongFaceCount means a die's face count differs from the set's.
	WrongFaceCount
	// NonIntegerFace means a face value did not parse as an integer.
	NonIntegerFace
)

func (k ValidationKind) String() string {
	switch k {
	case TooFewDice:
		return "too few dice"
	case WrongFaceCount:
		return "wrong face count"
	case NonIntegerFace:
		return "non-integer face"
	default:
		return "unknown"
	}
}

// ValidationError reports a malformed dice configuration. It is fatal:
// the game never starts on top of a bad set.
type ValidationError struct {
	Kind   ValidationKind
	Detail string
}

func (e *ValidationError) Error() string { return e.Detail }
