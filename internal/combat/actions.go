package combat

import (
	"errors"
	"fmt"
	"strings"

	"monstersim/internal/config"
)

type StrengthKind int

const (
	StrengthBase StrengthKind = iota
	StrengthRelative
	StrengthAbsolute
)

// Strength is the size of a damage or heal effect. Base strength goes through
// the damage formula, relative strength is a percentage of the target's max
// health and absolute strength is a flat amount.
type Strength struct {
	Kind  StrengthKind
	Value int
}

// Count is a fixed number when Min == Max and a random one in [Min, Max] otherwise.
type Count struct {
	Min, Max int
}

func (c Count) Fixed() bool { return c.Min == c.Max }

type EffectKind int

const (
	EffectDamage EffectKind = iota
	EffectHeal
	EffectStatusCondition
	EffectStatChange
	EffectProtect
	EffectContinue
	EffectRepeat
)

type Effect struct {
	Kind       EffectKind
	Target     Target
	Strength   Strength
	Condition  Condition
	Stat       Stat
	Delta      int
	Protection Protection
	Count      Count
	HitRate    int
	Body       []Effect
}

// Action is immutable catalog data. Competitors track remaining uses of
// limited actions themselves.
type Action struct {
	Name    string
	Element Element
	Uses    int // 0 means unlimited
	Effects []Effect
}

func (a *Action) Limited() bool { return a.Uses > 0 }

var errNoEffects = errors.New("no effects")

func newAction(d config.ActionDecl) (*Action, error) {
	el, err := ParseElement(d.Element)
	if err != nil {
		return nil, err
	}
	if d.Uses < 0 {
		return nil, fmt.Errorf("negative uses %d", d.Uses)
	}
	if len(d.Effects) == 0 {
		return nil, errNoEffects
	}
	a := &Action{Name: d.Name, Element: el, Uses: d.Uses, Effects: make([]Effect, 0, len(d.Effects))}
	for i, ed := range d.Effects {
		e, err := newEffect(ed, false)
		if err != nil {
			return nil, fmt.Errorf("effect %d: %w", i+1, err)
		}
		a.Effects = append(a.Effects, e)
	}
	return a, nil
}

func newEffect(d config.EffectDecl, nested bool) (Effect, error) {
	var e Effect
	var err error
	if d.Type != config.EffectRepeat {
		if d.Hit < 0 || d.Hit > 100 {
			return e, fmt.Errorf("hit rate %d outside 0..100", d.Hit)
		}
		e.HitRate = d.Hit
	}
	switch d.Type {
	case config.EffectDamage, config.EffectHeal:
		e.Kind = EffectDamage
		if d.Type == config.EffectHeal {
			e.Kind = EffectHeal
		}
		if e.Target, err = parseTarget(d.Target); err != nil {
			return e, err
		}
		e.Strength, err = newStrength(d.Strength, e.Kind == EffectHeal)
	case config.EffectStatusCondition:
		e.Kind = EffectStatusCondition
		if e.Target, err = parseTarget(d.Target); err != nil {
			return e, err
		}
		e.Condition, err = ParseCondition(d.Condition)
	case config.EffectStatChange:
		e.Kind = EffectStatChange
		if e.Target, err = parseTarget(d.Target); err != nil {
			return e, err
		}
		if e.Stat, err = ParseStat(d.Stat); err != nil {
			return e, err
		}
		if e.Stat == HP {
			return e, errors.New("HP has no stages")
		}
		if d.Delta == 0 {
			return e, errors.New("stat change of zero")
		}
		e.Delta = d.Delta
	case config.EffectProtect:
		e.Kind = EffectProtect
		e.Target = TargetUser
		if e.Protection, err = parseProtection(d.Protect); err != nil {
			return e, err
		}
		e.Count, err = newCount(d.Count)
	case config.EffectContinue:
		e.Kind = EffectContinue
		e.Target = TargetUser
	case config.EffectRepeat:
		if nested {
			return e, errors.New("nested repeat")
		}
		e.Kind = EffectRepeat
		if e.Count, err = newCount(d.Count); err != nil {
			return e, err
		}
		if len(d.Effects) == 0 {
			return e, errors.New("empty repeat")
		}
		for _, bd := range d.Effects {
			b, err := newEffect(bd, true)
			if err != nil {
				return e, err
			}
			e.Body = append(e.Body, b)
		}
	default:
		return e, fmt.Errorf("unknown effect %q", d.Type)
	}
	return e, err
}

func newStrength(d *config.StrengthDecl, heal bool) (Strength, error) {
	if d == nil {
		return Strength{}, errors.New("missing strength")
	}
	if d.Value <= 0 {
		return Strength{}, fmt.Errorf("strength %d must be positive", d.Value)
	}
	s := Strength{Value: d.Value}
	switch strings.ToLower(d.Kind) {
	case "base":
		if heal {
			return Strength{}, errors.New("heal cannot use base strength")
		}
		s.Kind = StrengthBase
	case "rel":
		s.Kind = StrengthRelative
	case "abs":
		s.Kind = StrengthAbsolute
	default:
		return Strength{}, fmt.Errorf("unknown strength %q", d.Kind)
	}
	return s, nil
}

func newCount(d *config.CountDecl) (Count, error) {
	if d == nil {
		return Count{}, errors.New("missing count")
	}
	if d.Min < 1 || d.Max < d.Min {
		return Count{}, fmt.Errorf("bad count %d..%d", d.Min, d.Max)
	}
	return Count{Min: d.Min, Max: d.Max}, nil
}
