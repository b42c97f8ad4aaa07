package combat

import (
	"math"

	"monstersim/internal/random"
)

const (
	critFactor        = 2.0
	sameElementFactor = 1.5
	randomFactorMin   = 0.85
	randomFactorMax   = 1.0
	normalFactor      = 1.0 / 3.0
	burnPercent       = 10
	conditionEndOdds  = 100.0 / 3.0
)

type damageRoll struct {
	amount        int
	critical      bool
	effectiveness float64
}

// baseDamage applies the damage formula to a base strength:
// base * element * ATK/DEF * critical * same element * random / 3, rounded up.
func baseDamage(src random.Source, base int, a *Action, user, target *Competitor) damageRoll {
	atk := user.Effective(ATK)
	def := target.Effective(DEF)
	eff := Effectiveness(a.Element, target.Monster.Element)

	crit := src.RollChance(clampPercent(math.Pow(10, -def/atk)*100), "critical hit")
	critF := 1.0
	if crit {
		critF = critFactor
	}
	same := 1.0
	if a.Element == user.Monster.Element {
		same = sameElementFactor
	}
	rnd := src.RandomReal(randomFactorMin, randomFactorMax, "random factor")

	raw := float64(base) * eff * (atk / def) * critF * same * rnd * normalFactor
	return damageRoll{amount: int(math.Ceil(raw)), critical: crit, effectiveness: eff}
}

// percentOf returns pct percent of total, rounded up.
func percentOf(total, pct int) int {
	return int(math.Ceil(float64(total) * float64(pct) / 100))
}

// hitChance is the probability in percent that an effect lands. Precision of
// the user raises it; agility of an opposing recipient lowers it.
func hitChance(e Effect, user, recipient *Competitor) float64 {
	p := float64(e.HitRate) * user.Effective(PRC)
	if e.Target == TargetOpponent && recipient != nil {
		p /= recipient.Effective(AGL)
	}
	return clampPercent(p)
}

func clampPercent(p float64) float64 {
	return math.Max(0, math.Min(100, p))
}
