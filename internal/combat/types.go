package combat

import (
	"fmt"
	"strings"
)

type Element int

const (
	Normal Element = iota
	Fire
	Water
	Earth
)

var elementNames = [...]string{"NORMAL", "FIRE", "WATER", "EARTH"}

func (e Element) String() string {
	if int(e) < len(elementNames) {
		return elementNames[e]
	}
	return "UNKNOWN"
}

// ParseElement accepts element names in any case.
func ParseElement(s string) (Element, error) {
	for i, n := range elementNames {
		if strings.EqualFold(s, n) {
			return Element(i), nil
		}
	}
	return 0, fmt.Errorf("unknown element %q", s)
}

// beats lists the element each element is very effective against.
var beats = map[Element]Element{
	Water: Fire,
	Fire:  Earth,
	Earth: Water,
}

// Effectiveness is the damage factor of an attack element against a defender.
func Effectiveness(attack, defend Element) float64 {
	if attack == Normal || defend == Normal {
		return 1
	}
	if v, ok := beats[attack]; ok && v == defend {
		return 2
	}
	if v, ok := beats[defend]; ok && v == attack {
		return 0.5
	}
	return 1
}

type Stat int

const (
	HP Stat = iota
	ATK
	DEF
	SPD
	PRC
	AGL
)

var statNames = [...]string{"HP", "ATK", "DEF", "SPD", "PRC", "AGL"}

func (s Stat) String() string {
	if int(s) < len(statNames) {
		return statNames[s]
	}
	return "UNKNOWN"
}

func ParseStat(s string) (Stat, error) {
	for i, n := range statNames {
		if strings.EqualFold(s, n) {
			return Stat(i), nil
		}
	}
	return 0, fmt.Errorf("unknown stat %q", s)
}

type Condition int

const (
	NoCondition Condition = iota
	Wet
	Quicksand
	Sleep
	Burn
)

var conditionNames = [...]string{"", "WET", "QUICKSAND", "SLEEP", "BURN"}

func (c Condition) String() string {
	if int(c) < len(conditionNames) {
		return conditionNames[c]
	}
	return "UNKNOWN"
}

func ParseCondition(s string) (Condition, error) {
	for i, n := range conditionNames {
		if i > 0 && strings.EqualFold(s, n) {
			return Condition(i), nil
		}
	}
	return NoCondition, fmt.Errorf("unknown status condition %q", s)
}

// Target says at whom an effect is aimed.
type Target int

const (
	TargetOpponent Target = iota
	TargetUser
)

func parseTarget(s string) (Target, error) {
	switch strings.ToLower(s) {
	case "target":
		return TargetOpponent, nil
	case "user":
		return TargetUser, nil
	}
	return 0, fmt.Errorf("unknown effect target %q", s)
}

// Protection is what a protectStat effect shields against.
type Protection int

const (
	NoProtection Protection = iota
	ProtectHealth
	ProtectStats
)

func (p Protection) String() string {
	switch p {
	case ProtectHealth:
		return "HEALTH"
	case ProtectStats:
		return "STATS"
	default:
		return ""
	}
}

func parseProtection(s string) (Protection, error) {
	switch strings.ToUpper(s) {
	case "HEALTH":
		return ProtectHealth, nil
	case "STATS":
		return ProtectStats, nil
	}
	return NoProtection, fmt.Errorf("unknown protection %q", s)
}
