package game

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/orifhon74/task3/internal/crypto"
	"github.com/orifhon74/task3/internal/domain"
	"github.com/orifhon74/task3/internal/protocol/fairness"
)

// ErrExit reports that the player asked to leave the game. Callers treat
// it as normal completion, not a failure.
var ErrExit = errors.New("exit requested")

// Config carries the injected dependencies of a session.
type Config struct {
	Rand io.Reader       // secure random source; defaults to crypto/rand.Reader
	In   io.Reader       // player input; defaults to os.Stdin
	Out  io.Writer       // transcript output; defaults to os.Stdout
	Help func(io.Writer) // odds/help renderer; optional
}

// Session drives one game between the computer and the player.
type Session struct {
	dice *domain.DiceSet
	rand io.Reader
	in   *bufio.Scanner
	out  io.Writer
	help func(io.Writer)

	// Indices of dice still selectable; owned exclusively by the session.
	remaining []int
}

// New builds a session over a validated dice set.
func New(set *domain.DiceSet, cfg Config) *Session {
	if cfg.Rand == nil {
		cfg.Rand = rand.Reader
	}
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Help == nil {
		cfg.Help = func(io.Writer) {}
	}
	remaining := make([]int, set.Len())
	for i := range remaining {
		remaining[i] = i
	}
	return &Session{
		dice:      set,
		rand:      cfg.Rand,
		in:        bufio.NewScanner(cfg.In),
		out:       cfg.Out,
		help:      cfg.Help,
		remaining: remaining,
	}
}

// Run plays one full game. It returns ErrExit when the player leaves and
// a non-nil error only when the random source or input stream fails.
func (s *Session) Run() error {
	computerFirst, err := s.determineFirstMover()
	if err != nil {
		return err
	}

	var computerDie, userDie domain.Die
	if computerFirst {
		computerDie = s.computerSelect(true)
		if userDie, err = s.userSelect(); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(s.out, "You make the first move.")
		if userDie, err = s.userSelect(); err != nil {
			return err
		}
		computerDie = s.computerSelect(false)
	}

	computerThrow, err := s.playThrow(computerDie, false)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "My throw is %d.\n", computerThrow)

	userThrow, err := s.playThrow(userDie, true)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Your throw is %d.\n", userThrow)

	switch {
	case userThrow > computerThrow:
		fmt.Fprintf(s.out, "You win (%d > %d)!\n", userThrow, computerThrow)
	case userThrow < computerThrow:
		fmt.Fprintf(s.out, "I win (%d > %d)!\n", computerThrow, userThrow)
	default:
		fmt.Fprintf(s.out, "It's a tie (%d = %d)!\n", userThrow, computerThrow)
	}
	return nil
}

// determineFirstMover runs one fairness exchange over {0,1}. The computer
// moves first iff its committed value differs from the player's guess, so
// guessing correctly hands the player the first move. Each retry starts a
// fresh commitment cycle.
func (s *Session) determineFirstMover() (bool, error) {
	for {
		tag, pending, err := fairness.Commit(s.rand, 0, 1)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(s.out, "\nLet's determine who makes the first move.")
		fmt.Fprintf(s.out, "I selected a random value in the range 0..1 (HMAC=%s).\n", crypto.Hex(tag))
		fmt.Fprintln(s.out, "Try to guess my selection.")

		sel, err := s.prompt([]string{"0 - 0", "1 - 1"})
		if err != nil {
			return false, err
		}
		switch strings.ToLower(sel) {
		case "x":
			return false, ErrExit
		case "?":
			s.help(s.out)
			continue
		}
		guess, err := strconv.Atoi(sel)
		if err != nil || guess < 0 || guess > 1 {
			fmt.Fprintln(s.out, "Invalid input. Please choose 0 or 1.")
			continue
		}

		value, key := pending.Reveal()
		fmt.Fprintf(s.out, "My selection: %d (KEY=%s).\n", value, crypto.Hex(key))
		crypto.Zero(key)
		return value != guess, nil
	}
}

// computerSelect takes the lowest remaining die index. No strategy.
func (s *Session) computerSelect(first bool) domain.Die {
	idx := s.remaining[0]
	s.remaining = s.remaining[1:]
	die := s.dice.Die(idx)
	if first {
		fmt.Fprintf(s.out, "I make the first move and choose the [%s] dice.\n", die)
	} else {
		fmt.Fprintf(s.out, "I choose the [%s] dice.\n", die)
	}
	return die
}

// userSelect prompts until the player picks a remaining die index.
func (s *Session) userSelect() (domain.Die, error) {
	for {
		fmt.Fprintln(s.out, "\nChoose your dice:")
		options := make([]string, 0, len(s.remaining))
		for _, i := range s.remaining {
			options = append(options, fmt.Sprintf("%d - %s", i, s.dice.Die(i)))
		}

		sel, err := s.prompt(options)
		if err != nil {
			return domain.Die{}, err
		}
		switch strings.ToLower(sel) {
		case "x":
			return domain.Die{}, ErrExit
		case "?":
			s.help(s.out)
			continue
		}
		idx, err := strconv.Atoi(sel)
		if err == nil && s.take(idx) {
			die := s.dice.Die(idx)
			fmt.Fprintf(s.out, "You choose the [%s] dice.\n", die)
			return die, nil
		}
		fmt.Fprintln(s.out, "Invalid choice. Try again.")
	}
}

// take removes idx from the remaining pool, reporting whether it was there.
func (s *Session) take(idx int) bool {
	for i, v := range s.remaining {
		if v == idx {
			s.remaining = append(s.remaining[:i], s.remaining[i+1:]...)
			return true
		}
	}
	return false
}

// playThrow runs one fairness exchange over [0, F-1] and maps the combined
// result onto the die's faces. The tag is published once; malformed input
// re-prompts against the same still-unconsumed commitment.
func (s *Session) playThrow(die domain.Die, user bool) (int, error) {
	if user {
		fmt.Fprintln(s.out, "\nIt's time for your throw.")
	} else {
		fmt.Fprintln(s.out, "\nIt's time for my throw.")
	}

	faces := s.dice.FaceCount()
	tag, pending, err := fairness.Commit(s.rand, 0, faces-1)
	if err != nil {
		return 0, err
	}
	fmt.Fprintf(s.out, "I selected a random value in the range 0..%d (HMAC=%s).\n", faces-1, crypto.Hex(tag))

	for {
		fmt.Fprintf(s.out, "Add your number modulo %d.\n", faces)
		options := make([]string, 0, faces)
		for i := 0; i < faces; i++ {
			options = append(options, fmt.Sprintf("%d - %d", i, i))
		}

		sel, err := s.prompt(options)
		if err != nil {
			return 0, err
		}
		switch strings.ToLower(sel) {
		case "x":
			return 0, ErrExit
		case "?":
			s.help(s.out)
			continue
		}
		n, err := strconv.Atoi(sel)
		if err != nil || n < 0 || n >= faces {
			fmt.Fprintln(s.out, "Invalid input. Try again.")
			continue
		}

		value, key := pending.Reveal()
		fmt.Fprintf(s.out, "My number is %d (KEY=%s).\n", value, crypto.Hex(key))
		crypto.Zero(key)
		result := fairness.Combine(value, n, faces)
		fmt.Fprintf(s.out, "The result is %d + %d = %d (mod %d).\n", value, n, result, faces)
		return die.Face(result), nil
	}
}

// prompt prints the menu plus the exit and help entries, and reads one
// trimmed line. A closed input stream reads as an exit request.
func (s *Session) prompt(options []string) (string, error) {
	for _, o := range options {
		fmt.Fprintln(s.out, o)
	}
	fmt.Fprintln(s.out, "X - exit")
	fmt.Fprintln(s.out, "? - help")
	fmt.Fprint(s.out, "Your selection: ")
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read selection: %w", err)
		}
		return "", ErrExit
	}
	return strings.TrimSpace(s.in.Text()), nil
}
