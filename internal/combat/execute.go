package combat

import "fmt"

// roundContext collects the events of one phase.
type roundContext struct {
	c      *Competition
	events []Event
}

func newRoundContext(c *Competition) *roundContext {
	return &roundContext{c: c, events: make([]Event, 0, 16)}
}

func (rc *roundContext) add(ev Event) {
	ev.Round = rc.c.round
	rc.events = append(rc.events, ev)
}

func (rc *roundContext) say(kind EventKind, actor, target *Competitor, amount int, format string, args ...any) {
	ev := Event{Kind: kind, Amount: amount, Text: fmt.Sprintf(format, args...)}
	if actor != nil {
		ev.Actor = actor.Name
	}
	if target != nil {
		ev.Target = target.Name
	}
	rc.add(ev)
}

// defaultTarget is the first other living competitor in roster order.
func (rc *roundContext) defaultTarget(actor *Competitor) *Competitor {
	if opp := rc.c.Opponents(actor); len(opp) > 0 {
		return opp[0]
	}
	return nil
}

func (rc *roundContext) perform(actor *Competitor, ch Choice) {
	a := ch.Action
	if a == nil {
		rc.say(EventPass, actor, nil, 0, "%s passes!", actor.Name)
		return
	}
	if actor.Condition == Sleep {
		rc.say(EventCondition, actor, nil, 0, "%s is asleep and cannot act!", actor.Name)
		return
	}
	if n, limited := actor.uses[a]; limited {
		actor.uses[a] = n - 1
	}
	rc.say(EventUse, actor, ch.Target, 0, "%s uses %s!", actor.Name, a.Name)

	target := ch.Target
	if target == nil {
		target = rc.defaultTarget(actor)
	}
	ex := &execution{rc: rc, action: a, user: actor, target: target, first: true}
	for _, e := range a.Effects {
		if !ex.run(e) {
			return
		}
	}
}

// execution tracks one action as its effects resolve.
type execution struct {
	rc     *roundContext
	action *Action
	user   *Competitor
	target *Competitor
	first  bool
}

// run resolves one effect and reports whether the action goes on.
func (ex *execution) run(e Effect) bool {
	src := ex.rc.c.src
	if e.Kind == EffectRepeat {
		n := e.Count.Min
		if !e.Count.Fixed() {
			n = src.RandomInt(e.Count.Min, e.Count.Max, "repetitions of "+ex.action.Name)
		}
		for i := 0; i < n; i++ {
			for _, b := range e.Body {
				if !ex.run(b) {
					return false
				}
			}
		}
		return true
	}
	if !ex.user.Alive() {
		return false
	}

	recipient := ex.user
	if e.Target == TargetOpponent {
		recipient = ex.target
		if recipient == nil || !recipient.Alive() {
			return true
		}
	}
	if !src.RollChance(hitChance(e, ex.user, recipient), "hit of "+ex.action.Name) {
		if ex.first {
			ex.rc.say(EventMiss, ex.user, recipient, 0, "The action failed...")
			return false
		}
		return true
	}
	ex.first = false
	ex.apply(e, recipient)
	return ex.user.Alive()
}

func (ex *execution) apply(e Effect, r *Competitor) {
	rc := ex.rc
	foreign := r != ex.user
	switch e.Kind {
	case EffectDamage:
		if foreign && r.protectedFrom(ProtectHealth) {
			rc.say(EventBlocked, ex.user, r, 0, "%s is protected and takes no damage!", r.Name)
			return
		}
		amount := e.Strength.Value
		switch e.Strength.Kind {
		case StrengthBase:
			roll := baseDamage(rc.c.src, e.Strength.Value, ex.action, ex.user, r)
			amount = roll.amount
			if roll.critical {
				rc.say(EventCritical, ex.user, r, 0, "Critical hit!")
			}
			switch {
			case roll.effectiveness > 1:
				rc.say(EventEffective, ex.user, r, 0, "It is very effective!")
			case roll.effectiveness < 1:
				rc.say(EventEffective, ex.user, r, 0, "It is not very effective...")
			}
		case StrengthRelative:
			amount = percentOf(r.MaxHealth(), e.Strength.Value)
		}
		rc.damage(ex.user, r, amount)
	case EffectHeal:
		amount := e.Strength.Value
		if e.Strength.Kind == StrengthRelative {
			amount = percentOf(r.MaxHealth(), e.Strength.Value)
		}
		healed := r.heal(amount)
		rc.say(EventHeal, ex.user, r, healed, "%s gains back %d health!", r.Name, healed)
	case EffectStatusCondition:
		if foreign && r.protectedFrom(ProtectHealth) {
			rc.say(EventBlocked, ex.user, r, 0, "%s is protected and is not affected!", r.Name)
			return
		}
		if r.Condition != NoCondition {
			rc.say(EventCondition, ex.user, r, 0, "%s is already %s.", r.Name, conditionState[r.Condition])
			return
		}
		r.Condition = e.Condition
		rc.say(EventCondition, ex.user, r, 0, conditionStart[e.Condition], r.Name)
	case EffectStatChange:
		if e.Delta < 0 && foreign && r.protectedFrom(ProtectStats) {
			rc.say(EventBlocked, ex.user, r, 0, "%s is protected and its stats are not changed!", r.Name)
			return
		}
		applied := r.shift(e.Stat, e.Delta)
		switch {
		case applied > 0:
			rc.say(EventStatChange, ex.user, r, applied, "%s's %s rises!", r.Name, e.Stat)
		case applied < 0:
			rc.say(EventStatChange, ex.user, r, applied, "%s's %s decreases!", r.Name, e.Stat)
		case e.Delta > 0:
			rc.say(EventStatChange, ex.user, r, 0, "%s's %s cannot go any higher!", r.Name, e.Stat)
		default:
			rc.say(EventStatChange, ex.user, r, 0, "%s's %s cannot go any lower!", r.Name, e.Stat)
		}
	case EffectProtect:
		rounds := e.Count.Min
		if !e.Count.Fixed() {
			rounds = rc.c.src.RandomInt(e.Count.Min, e.Count.Max, "protection duration of "+ex.action.Name)
		}
		r.protection = e.Protection
		r.protectRounds = rounds
		if e.Protection == ProtectHealth {
			rc.say(EventProtect, ex.user, r, rounds, "%s is now protected against damage!", r.Name)
		} else {
			rc.say(EventProtect, ex.user, r, rounds, "%s is now protected against status changes!", r.Name)
		}
	case EffectContinue:
	}
}

func (rc *roundContext) damage(source, r *Competitor, amount int) {
	dealt := r.takeDamage(amount)
	rc.say(EventDamage, source, r, dealt, "%s takes %d damage!", r.Name, dealt)
	if !r.Alive() {
		rc.say(EventFaint, source, r, 0, "%s faints!", r.Name)
	}
}
