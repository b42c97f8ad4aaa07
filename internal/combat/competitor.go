package combat

import "strings"

const (
	minStage = -5
	maxStage = 5
)

// Competitor is the per-competition copy of a catalog monster. Only the
// Competition that created it changes it.
type Competitor struct {
	Name      string
	Monster   *Monster
	Health    int
	Condition Condition

	stages        [AGL + 1]int
	protection    Protection
	protectRounds int
	uses          map[*Action]int
}

func newCompetitor(m *Monster, name string) *Competitor {
	c := &Competitor{Name: name, Monster: m, Health: m.Stats.HP, uses: map[*Action]int{}}
	for _, a := range m.Actions {
		if a.Limited() {
			c.uses[a] = a.Uses
		}
	}
	return c
}

func (c *Competitor) MaxHealth() int { return c.Monster.Stats.HP }
func (c *Competitor) Alive() bool    { return c.Health > 0 }
func (c *Competitor) Stage(s Stat) int {
	if s <= HP || s > AGL {
		return 0
	}
	return c.stages[s]
}

// Protection returns the active protection and the rounds it has left.
func (c *Competitor) Protection() (Protection, int) {
	if c.protectRounds <= 0 {
		return NoProtection, 0
	}
	return c.protection, c.protectRounds
}

func (c *Competitor) protectedFrom(p Protection) bool {
	kind, rounds := c.Protection()
	return rounds > 0 && kind == p
}

// RemainingUses reports the uses left for a limited action; ok is false for
// unlimited actions.
func (c *Competitor) RemainingUses(a *Action) (n int, ok bool) {
	n, ok = c.uses[a]
	return n, ok
}

func (c *Competitor) canUse(a *Action) bool {
	if n, limited := c.uses[a]; limited {
		return n > 0
	}
	return true
}

// stageFactor scales a stat by its stage. ATK, DEF and SPD move in steps of
// one half, PRC and AGL in steps of one third.
func stageFactor(s Stat, stage int) float64 {
	base := 2.0
	if s == PRC || s == AGL {
		base = 3.0
	}
	if stage >= 0 {
		return (base + float64(stage)) / base
	}
	return base / (base - float64(stage))
}

// Effective returns the stat after stages and status conditions. PRC and AGL
// have a base value of one.
func (c *Competitor) Effective(s Stat) float64 {
	var v float64
	switch s {
	case HP:
		return float64(c.MaxHealth())
	case ATK:
		v = float64(c.Monster.Stats.ATK)
		if c.Condition == Burn {
			v *= 0.75
		}
	case DEF:
		v = float64(c.Monster.Stats.DEF)
		if c.Condition == Wet {
			v *= 0.75
		}
	case SPD:
		v = float64(c.Monster.Stats.SPD)
		if c.Condition == Quicksand {
			v *= 0.75
		}
	default:
		v = 1
	}
	return v * stageFactor(s, c.stages[s])
}

func (c *Competitor) takeDamage(n int) int {
	if n > c.Health {
		n = c.Health
	}
	c.Health -= n
	return n
}

func (c *Competitor) heal(n int) int {
	if room := c.MaxHealth() - c.Health; n > room {
		n = room
	}
	c.Health += n
	return n
}

// shift moves a stage and returns the change actually applied.
func (c *Competitor) shift(s Stat, delta int) int {
	old := c.stages[s]
	next := max(minStage, min(maxStage, old+delta))
	c.stages[s] = next
	return next - old
}

func equalName(a, b string) bool { return strings.EqualFold(a, b) }
