package combat

import (
	"errors"
	"fmt"
	"sort"

	"monstersim/internal/random"
)

// Phase is the stage of the round a competition is in.
type Phase int

const (
	PhaseSelection Phase = iota + 1
	PhaseExecution
	PhaseEndOfRound
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseSelection:
		return "selection"
	case PhaseExecution:
		return "execution"
	case PhaseEndOfRound:
		return "end of round"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

var (
	ErrWrongPhase    = errors.New("operation not allowed in this phase")
	ErrInvalidChoice = errors.New("invalid choice")
)

// Choice is what a competitor does this round. A nil Action passes; a nil
// Target lets the engine pick the first other living competitor.
type Choice struct {
	Action *Action
	Target *Competitor
}

// Outcome is the result of a win check. Neither a winner nor a draw means the
// competition goes on.
type Outcome struct {
	Winner *Competitor
	Draw   bool
}

func (o Outcome) Decided() bool { return o.Draw || o.Winner != nil }

// Lines renders a decided outcome for display.
func (o Outcome) Lines() []string {
	if !o.Decided() {
		return nil
	}
	if o.Draw {
		return []string{"=== Contest Results ===", "The contest ended in a draw!"}
	}
	return []string{"=== Contest Results ===", "Winner: " + o.Winner.Name}
}

// Competition runs one contest between competitors through the phases
// selection, execution and end of round until a win check is decided. It is
// not safe for concurrent use and cannot be restarted.
type Competition struct {
	competitors []*Competitor
	choices     map[*Competitor]Choice
	phase       Phase
	round       int
	cursor      int
	current     *Competitor
	src         random.Source
	outcome     Outcome
}

// NewCompetition assembles the roster and opens the first selection phase.
func NewCompetition(cat *Catalog, names []string, src random.Source) (*Competition, []Event, error) {
	roster, err := AssembleRoster(cat, names)
	if err != nil {
		return nil, nil, err
	}
	c := &Competition{
		competitors: roster,
		choices:     map[*Competitor]Choice{},
		phase:       PhaseSelection,
		round:       1,
		src:         src,
	}
	start := Event{Round: 1, Kind: EventStart, Amount: len(roster),
		Text: fmt.Sprintf("The %d monsters enter the competition!", len(roster))}
	return c, []Event{start}, nil
}

func (c *Competition) Phase() Phase          { return c.phase }
func (c *Competition) Round() int            { return c.round }
func (c *Competition) Source() random.Source { return c.src }
func (c *Competition) Outcome() Outcome      { return c.outcome }
func (c *Competition) Current() *Competitor  { return c.current }
func (c *Competition) Competitors() []*Competitor {
	return append([]*Competitor(nil), c.competitors...)
}

// Competitor finds a competitor by display name, ignoring case.
func (c *Competition) Competitor(name string) (*Competitor, bool) {
	for _, m := range c.competitors {
		if equalName(m.Name, name) {
			return m, true
		}
	}
	return nil, false
}

// Opponents lists the living competitors other than m in roster order.
func (c *Competition) Opponents(m *Competitor) []*Competitor {
	var out []*Competitor
	for _, o := range c.competitors {
		if o != m && o.Alive() {
			out = append(out, o)
		}
	}
	return out
}

// NextForSelection yields the next living competitor that still has to
// choose this round. Nil means everyone has chosen and the competition moved
// on to execution; it is also nil outside the selection phase.
func (c *Competition) NextForSelection() *Competitor {
	if c.phase != PhaseSelection {
		return nil
	}
	c.current = nil
	for c.cursor < len(c.competitors) {
		m := c.competitors[c.cursor]
		c.cursor++
		if m.Alive() {
			c.current = m
			return m
		}
	}
	c.phase = PhaseExecution
	return nil
}

// Choose records the choice of the competitor last yielded by NextForSelection.
func (c *Competition) Choose(ch Choice) error {
	if c.phase != PhaseSelection {
		return fmt.Errorf("choose in %s: %w", c.phase, ErrWrongPhase)
	}
	m := c.current
	if m == nil {
		return fmt.Errorf("%w: no monster is choosing", ErrInvalidChoice)
	}
	if a := ch.Action; a != nil {
		if !m.Monster.knows(a) {
			return fmt.Errorf("%w: %s does not know %s", ErrInvalidChoice, m.Name, a.Name)
		}
		if !m.canUse(a) {
			return fmt.Errorf("%w: %s has no uses of %s left", ErrInvalidChoice, m.Name, a.Name)
		}
	}
	if t := ch.Target; t != nil {
		if t == m || !t.Alive() || !c.inRoster(t) {
			return fmt.Errorf("%w: %s is not a valid target", ErrInvalidChoice, t.Name)
		}
	}
	c.choices[m] = ch
	return nil
}

func (c *Competition) inRoster(m *Competitor) bool {
	for _, o := range c.competitors {
		if o == m {
			return true
		}
	}
	return false
}

// ExecuteRound resolves the chosen actions, fastest competitor first.
// Afterwards the competition is either finished or waits for EndOfRound.
func (c *Competition) ExecuteRound() ([]Event, error) {
	if c.phase != PhaseExecution {
		return nil, fmt.Errorf("execute in %s: %w", c.phase, ErrWrongPhase)
	}
	rc := newRoundContext(c)
	for _, m := range c.turnOrder() {
		if !m.Alive() {
			continue
		}
		rc.perform(m, c.choices[m])
	}
	c.choices = map[*Competitor]Choice{}
	c.current = nil

	if out := c.CheckWinner(); out.Decided() {
		c.finish(rc, out)
	} else {
		c.phase = PhaseEndOfRound
	}
	return rc.events, nil
}

// EndOfRound applies the once-per-round effects and either finishes the
// competition or opens the next selection phase.
func (c *Competition) EndOfRound() ([]Event, error) {
	if c.phase != PhaseEndOfRound {
		return nil, fmt.Errorf("end round in %s: %w", c.phase, ErrWrongPhase)
	}
	rc := newRoundContext(c)
	for _, m := range c.competitors {
		if m.Alive() {
			rc.endOfRound(m)
		}
	}
	if out := c.CheckWinner(); out.Decided() {
		c.finish(rc, out)
		return rc.events, nil
	}
	c.round++
	c.cursor = 0
	c.phase = PhaseSelection
	rc.add(Event{Kind: EventRound, Amount: c.round, Text: fmt.Sprintf("Round %d begins.", c.round)})
	return rc.events, nil
}

// CheckWinner reports the sole survivor, a draw when nobody survived, or an
// undecided outcome while two or more are still standing.
func (c *Competition) CheckWinner() Outcome {
	if len(c.competitors) == 0 {
		panic("combat: win check without competitors")
	}
	var alive []*Competitor
	for _, m := range c.competitors {
		if m.Alive() {
			alive = append(alive, m)
		}
	}
	switch len(alive) {
	case 0:
		return Outcome{Draw: true}
	case 1:
		return Outcome{Winner: alive[0]}
	}
	return Outcome{}
}

func (c *Competition) finish(rc *roundContext, out Outcome) {
	c.phase = PhaseFinished
	c.outcome = out
	for _, line := range out.Lines() {
		ev := Event{Kind: EventResult, Text: line}
		if out.Winner != nil {
			ev.Actor = out.Winner.Name
		}
		rc.add(ev)
	}
}

// turnOrder sorts the living competitors by effective speed, fastest first.
// Competitors of exactly equal speed are shuffled with the random source.
func (c *Competition) turnOrder() []*Competitor {
	var order []*Competitor
	for _, m := range c.competitors {
		if m.Alive() {
			order = append(order, m)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Effective(SPD) > order[j].Effective(SPD)
	})
	for lo := 0; lo < len(order); {
		hi := lo + 1
		for hi < len(order) && order[hi].Effective(SPD) == order[lo].Effective(SPD) {
			hi++
		}
		group := order[lo:hi]
		for i := len(group) - 1; i > 0; i-- {
			j := c.src.RandomInt(0, i, fmt.Sprintf("turn order position %d of %d among equally fast monsters", i+1, len(group)))
			group[i], group[j] = group[j], group[i]
		}
		lo = hi
	}
	return order
}
