// Package shell reads line commands from an operator and drives a
// competition through its phases.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"monstersim/internal/combat"
	"monstersim/internal/random"
)

var (
	ErrNoCompetition = errors.New("no competition is running")
	ErrUnknownAction = errors.New("unknown action")
)

// Shell dispatches commands against one catalog. At most one competition runs
// at a time; starting another replaces it.
type Shell struct {
	cat  *combat.Catalog
	src  random.Source
	in   *bufio.Scanner
	out  io.Writer
	comp *combat.Competition
}

// New builds a shell. in is shared with an interactive random source, so
// chance prompts and commands are read from the same stream.
func New(cat *combat.Catalog, src random.Source, in *bufio.Scanner, out io.Writer) *Shell {
	return &Shell{cat: cat, src: src, in: in, out: out}
}

// Run reads commands until quit or the end of input. Input ending while the
// random source waits for an answer is returned as random.ErrInputClosed.
func (s *Shell) Run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.Is(e, random.ErrInputClosed) {
				err = e
				return
			}
			panic(r)
		}
	}()
	for s.in.Scan() {
		if s.Execute(s.in.Text()) {
			return nil
		}
	}
	return s.in.Err()
}

// Execute runs one command line and reports whether the shell should stop.
func (s *Shell) Execute(line string) (quit bool) {
	f := strings.Fields(line)
	if len(f) == 0 {
		return false
	}
	var err error
	switch cmd, args := f[0], f[1:]; cmd {
	case "quit":
		return true
	case "competition":
		err = s.competition(args)
	case "action":
		err = s.action(args)
	case "pass":
		err = s.choose(combat.Choice{})
	case "show":
		err = s.show(args)
	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
	return false
}

func (s *Shell) competition(names []string) error {
	comp, events, err := combat.NewCompetition(s.cat, names, s.src)
	if err != nil {
		return err
	}
	s.comp = comp
	s.print(events)
	s.prompt(comp.NextForSelection())
	return nil
}

func (s *Shell) action(args []string) error {
	if s.comp == nil {
		return ErrNoCompetition
	}
	if len(args) < 1 || len(args) > 2 {
		return errors.New("usage: action <action> [target]")
	}
	m := s.comp.Current()
	if m == nil {
		return ErrNoCompetition
	}
	a, ok := m.Monster.Action(args[0])
	if !ok {
		return fmt.Errorf("%w: %s does not know %s", ErrUnknownAction, m.Name, args[0])
	}
	ch := combat.Choice{Action: a}
	if len(args) == 2 {
		t, ok := s.comp.Competitor(args[1])
		if !ok {
			return fmt.Errorf("unknown target: %s", args[1])
		}
		ch.Target = t
	}
	return s.choose(ch)
}

func (s *Shell) choose(ch combat.Choice) error {
	if s.comp == nil {
		return ErrNoCompetition
	}
	if err := s.comp.Choose(ch); err != nil {
		return err
	}
	s.advance()
	return nil
}

// advance moves on to the next competitor or, once everyone has chosen,
// plays out the round.
func (s *Shell) advance() {
	if next := s.comp.NextForSelection(); next != nil {
		s.prompt(next)
		return
	}
	events, err := s.comp.ExecuteRound()
	if err != nil {
		panic(err)
	}
	s.print(events)
	if s.finished() {
		return
	}
	if events, err = s.comp.EndOfRound(); err != nil {
		panic(err)
	}
	s.print(events)
	if s.finished() {
		return
	}
	s.prompt(s.comp.NextForSelection())
}

func (s *Shell) finished() bool {
	if s.comp.Phase() != combat.PhaseFinished {
		return false
	}
	s.comp = nil
	return true
}

func (s *Shell) prompt(m *combat.Competitor) {
	if m != nil {
		fmt.Fprintf(s.out, "What should %s do?\n", m.Name)
	}
}

func (s *Shell) print(events []combat.Event) {
	for _, ev := range events {
		if ev.Kind == combat.EventResult && strings.HasPrefix(ev.Text, "===") {
			fmt.Fprintln(s.out)
		}
		fmt.Fprintln(s.out, ev.Text)
	}
}
