package combat

import (
	"encoding/json"

	"monstersim/internal/random"
)

// Chooser decides what a competitor does this round.
type Chooser interface {
	Choose(c *Competition, m *Competitor) Choice
}

type ChooserFunc func(c *Competition, m *Competitor) Choice

func (f ChooserFunc) Choose(c *Competition, m *Competitor) Choice { return f(c, m) }

// RandomChooser picks uniformly among the usable actions of a competitor and
// aims at a uniformly chosen opponent. It passes when nothing is usable.
type RandomChooser struct{}

func (RandomChooser) Choose(c *Competition, m *Competitor) Choice {
	var usable []*Action
	for _, a := range m.Monster.Actions {
		if m.canUse(a) {
			usable = append(usable, a)
		}
	}
	if len(usable) == 0 {
		return Choice{}
	}
	src := c.Source()
	ch := Choice{Action: usable[src.RandomInt(0, len(usable)-1, "action of "+m.Name)]}
	if opp := c.Opponents(m); len(opp) > 1 {
		ch.Target = opp[src.RandomInt(0, len(opp)-1, "target of "+m.Name)]
	}
	return ch
}

type Result struct {
	Winner   string  `json:"winner,omitempty"`
	Draw     bool    `json:"draw"`
	Rounds   int     `json:"rounds"`
	Finished bool    `json:"finished"`
	Events   []Event `json:"events,omitempty"`
}

// Run drives a competition until it is decided or maxRounds rounds have been
// played. A maxRounds of zero or less means no cap.
func Run(comp *Competition, chooser Chooser, maxRounds int) Result {
	var events []Event
	for comp.Phase() != PhaseFinished {
		if maxRounds > 0 && comp.Round() > maxRounds {
			break
		}
		for m := comp.NextForSelection(); m != nil; m = comp.NextForSelection() {
			if err := comp.Choose(chooser.Choose(comp, m)); err != nil {
				// an invalid choice falls back to passing
				_ = comp.Choose(Choice{})
			}
		}
		evs, err := comp.ExecuteRound()
		if err != nil {
			panic(err)
		}
		events = append(events, evs...)
		if comp.Phase() == PhaseFinished {
			break
		}
		if evs, err = comp.EndOfRound(); err != nil {
			panic(err)
		}
		events = append(events, evs...)
	}

	out := comp.Outcome()
	res := Result{
		Draw:     out.Draw,
		Rounds:   comp.Round(),
		Finished: comp.Phase() == PhaseFinished,
		Events:   events,
	}
	if !res.Finished {
		res.Rounds = maxRounds
	}
	if out.Winner != nil {
		res.Winner = out.Winner.Name
	}
	return res
}

// Simulate runs a fresh competition between the named monsters.
func Simulate(cat *Catalog, names []string, src random.Source, chooser Chooser, maxRounds int) (Result, error) {
	comp, start, err := NewCompetition(cat, names, src)
	if err != nil {
		return Result{}, err
	}
	res := Run(comp, chooser, maxRounds)
	res.Events = append(start, res.Events...)
	return res, nil
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
