package shell

import (
	"errors"
	"fmt"
	"strconv"

	"monstersim/internal/combat"
)

func (s *Shell) show(args []string) error {
	what := ""
	if len(args) > 0 {
		what = args[0]
	}
	switch what {
	case "":
		return s.showCompetitors()
	case "actions":
		return s.showActions()
	case "monsters":
		s.showMonsters()
		return nil
	case "stats":
		return s.showStats()
	}
	return fmt.Errorf("unknown show target: %s", what)
}

func (s *Shell) showCompetitors() error {
	if s.comp == nil {
		return ErrNoCompetition
	}
	current := s.comp.Current()
	for i, m := range s.comp.Competitors() {
		marker := " "
		if m == current {
			marker = "*"
		}
		line := fmt.Sprintf("%s %d %s %d/%d HP", marker, i+1, m.Name, m.Health, m.MaxHealth())
		switch {
		case !m.Alive():
			line += " (fainted)"
		case m.Condition != combat.NoCondition:
			line += " (" + m.Condition.String() + ")"
		}
		fmt.Fprintln(s.out, line)
	}
	return nil
}

func (s *Shell) showActions() error {
	if s.comp == nil || s.comp.Current() == nil {
		return ErrNoCompetition
	}
	m := s.comp.Current()
	fmt.Fprintf(s.out, "ACTIONS OF %s\n", m.Name)
	for _, a := range m.Monster.Actions {
		uses := "inf"
		if n, ok := m.RemainingUses(a); ok {
			uses = strconv.Itoa(n)
		}
		fmt.Fprintf(s.out, "%s: ELEMENT %s, Uses %s\n", a.Name, a.Element, uses)
	}
	return nil
}

func (s *Shell) showMonsters() {
	for _, m := range s.cat.Monsters() {
		st := m.Stats
		fmt.Fprintf(s.out, "%s: ELEMENT %s, HP %d, ATK %d, DEF %d, SPD %d\n",
			m.Name, m.Element, st.HP, st.ATK, st.DEF, st.SPD)
	}
}

func (s *Shell) showStats() error {
	if s.comp == nil || s.comp.Current() == nil {
		return errors.New("no monster is choosing")
	}
	m := s.comp.Current()
	fmt.Fprintf(s.out, "STATS OF %s\n", m.Name)
	fmt.Fprintf(s.out, "HP %d/%d", m.Health, m.MaxHealth())
	for _, st := range []combat.Stat{combat.ATK, combat.DEF, combat.SPD, combat.PRC, combat.AGL} {
		fmt.Fprintf(s.out, ", %s %.0f", st, m.Effective(st))
		if stage := m.Stage(st); stage != 0 {
			fmt.Fprintf(s.out, "(%+d)", stage)
		}
	}
	fmt.Fprintln(s.out)
	return nil
}
