package combat

import (
	"strings"
	"testing"

	"monstersim/internal/config"
)

const arena = `
action Tackle NORMAL
  damage target base 10 100
action Shield NORMAL
  protectStat HEALTH 2 100
action Nap NORMAL
  inflictStatusCondition target SLEEP 100
action Scorch FIRE
  inflictStatusCondition target BURN 100
action Boom NORMAL
  damage target abs 100 100
  damage user abs 100 100
action Once NORMAL
  damage target abs 1 100
  uses 1
action Wild NORMAL
  damage target abs 5 0
  damage target abs 5 100
action Sweep NORMAL
  damage target abs 5 100
  damage target abs 5 0
  damage target abs 2 100
action Flurry NORMAL
  repeat random 2 4
    damage target abs 1 100
  end repeat
action Growl NORMAL
  inflictStatChange target ATK -1 100
action Mend NORMAL
  heal user rel 50 100

monster Dummy NORMAL 20 10 10 10 Tackle Shield Nap Scorch Boom Once Wild Sweep Flurry Growl
monster Pebble EARTH 20 10 10 5 Tackle Mend
monster Puddle WATER 20 10 10 5 Tackle
monster Rock EARTH 20 10 10 8 Tackle
monster Wisp NORMAL 1 10 10 1 Tackle
`

func loadCatalog(t *testing.T, text string) *Catalog {
	t.Helper()
	cfg, errs := config.Parse(strings.NewReader(text))
	if len(errs) != 0 {
		t.Fatalf("parse: %v", errs)
	}
	cat, dropped, err := NewCatalog(cfg)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if len(dropped) != 0 {
		t.Fatalf("dropped: %v", dropped)
	}
	return cat
}

// scripted is a Source whose answers are fixed by the test. By default only
// certain events happen, reals are at their minimum and ints come from the
// queue or are at their minimum once it is empty.
type scripted struct {
	chance func(p float64, desc string) bool
	real   float64
	ints   []int
	asked  []string
}

func (s *scripted) RollChance(p float64, desc string) bool {
	s.asked = append(s.asked, desc)
	if s.chance != nil {
		return s.chance(p, desc)
	}
	return p >= 100
}

func (s *scripted) RandomReal(min, max float64, desc string) float64 {
	s.asked = append(s.asked, desc)
	if s.real != 0 {
		return s.real
	}
	return min
}

func (s *scripted) RandomInt(min, max int, desc string) int {
	s.asked = append(s.asked, desc)
	if len(s.ints) == 0 {
		return min
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func compete(t *testing.T, cat *Catalog, src *scripted, names ...string) *Competition {
	t.Helper()
	c, _, err := NewCompetition(cat, names, src)
	if err != nil {
		t.Fatalf("new competition: %v", err)
	}
	return c
}

// playRound lets every living competitor choose an action by name ("" passes)
// and runs the round through to the next selection or the end.
func playRound(t *testing.T, c *Competition, picks map[string]string) []Event {
	t.Helper()
	for m := c.NextForSelection(); m != nil; m = c.NextForSelection() {
		var ch Choice
		if name := picks[m.Name]; name != "" {
			a, ok := m.Monster.Action(name)
			if !ok {
				t.Fatalf("%s does not know %s", m.Name, name)
			}
			ch.Action = a
		}
		if err := c.Choose(ch); err != nil {
			t.Fatalf("choose for %s: %v", m.Name, err)
		}
	}
	events, err := c.ExecuteRound()
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if c.Phase() == PhaseFinished {
		return events
	}
	more, err := c.EndOfRound()
	if err != nil {
		t.Fatalf("end of round: %v", err)
	}
	return append(events, more...)
}

func hasLine(events []Event, text string) bool {
	for _, ev := range events {
		if ev.Text == text {
			return true
		}
	}
	return false
}

func competitor(t *testing.T, c *Competition, name string) *Competitor {
	t.Helper()
	m, ok := c.Competitor(name)
	if !ok {
		t.Fatalf("no competitor %s", name)
	}
	return m
}
