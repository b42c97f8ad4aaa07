package random

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Interactive asks an operator for every outcome. Input is read line by line
// from a scanner that may be shared with a command shell; invalid answers are
// reported and the same question is asked again.
type Interactive struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewInteractive(in *bufio.Scanner, out io.Writer) *Interactive {
	return &Interactive{in: in, out: out}
}

func (it *Interactive) RollChance(probability float64, description string) bool {
	checkProbability(probability)
	for {
		fmt.Fprintf(it.out, "Decide %s: yes or no (y/n)? ", description)
		switch strings.ToLower(it.readLine()) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		fmt.Fprintln(it.out, "Error, enter y or n.")
	}
}

func (it *Interactive) RandomReal(min, max float64, description string) float64 {
	for {
		fmt.Fprintf(it.out, "Decide %s: a number between %.2f and %.2f? ", description, min, max)
		v, err := strconv.ParseFloat(it.readLine(), 64)
		switch {
		case err != nil:
			fmt.Fprintln(it.out, "Error, invalid number format.")
		case !inHalfOpen(v, min, max):
			fmt.Fprintln(it.out, "Error, out of range.")
		default:
			return v
		}
	}
}

func (it *Interactive) RandomInt(min, max int, description string) int {
	for {
		fmt.Fprintf(it.out, "Decide %s: an integer between %d and %d? ", description, min, max)
		v, err := strconv.Atoi(it.readLine())
		switch {
		case err != nil:
			fmt.Fprintln(it.out, "Error, invalid number format.")
		case v < min || v > max:
			fmt.Fprintln(it.out, "Error, out of range.")
		default:
			return v
		}
	}
}

func (it *Interactive) readLine() string {
	if !it.in.Scan() {
		panic(ErrInputClosed)
	}
	return strings.TrimSpace(it.in.Text())
}

// inHalfOpen reports whether v lies in [min, max); a degenerate range only
// admits min itself.
func inHalfOpen(v, min, max float64) bool {
	if max <= min {
		return v == min
	}
	return v >= min && v < max
}
