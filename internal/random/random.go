// Package random is the single source of chance for a competition.
//
// Every probabilistic decision the engine makes goes through a Source. Two
// variants exist: Seeded, backed by a deterministic generator, and
// Interactive, which asks an operator for each outcome. Callers never need to
// know which one they hold.
package random

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Source provides chance rolls and bounded random numbers. The description
// names the decision being made; it never influences the result.
type Source interface {
	// RollChance reports true with the given probability in percent (0..100).
	RollChance(probability float64, description string) bool
	// RandomReal returns a value in [min, max).
	RandomReal(min, max float64, description string) float64
	// RandomInt returns a value in [min, max].
	RandomInt(min, max int, description string) int
}

// Mode selects the Source variant.
type Mode int

const (
	ModeSeeded Mode = iota
	ModeInteractive
)

func (m Mode) String() string {
	switch m {
	case ModeSeeded:
		return "seeded"
	case ModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// ErrInputClosed is the panic value of an Interactive source whose input ended
// while a decision was pending.
var ErrInputClosed = errors.New("random: operator input closed")

// New builds the Source for mode. The seed is only used by ModeSeeded; in and
// out are only used by ModeInteractive.
func New(mode Mode, seed int64, in *bufio.Scanner, out io.Writer) Source {
	if mode == ModeInteractive {
		return NewInteractive(in, out)
	}
	return NewSeeded(seed)
}

func checkProbability(p float64) {
	if p < 0 || p > 100 {
		panic(fmt.Sprintf("random: probability %v outside 0..100", p))
	}
}
