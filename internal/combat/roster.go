package combat

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrUnknownMonster = errors.New("unknown monster")
	ErrRosterTooSmall = errors.New("competition requires at least two monsters")
)

// AssembleRoster clones the named catalog monsters into fresh competitors.
// Repeated names are told apart by a "#n" suffix on every instance after the
// first, so two Drakelings become "Drakeling" and "Drakeling#2".
func AssembleRoster(cat *Catalog, names []string) ([]*Competitor, error) {
	if len(names) < 2 {
		return nil, ErrRosterTooSmall
	}
	seen := map[string]int{}
	out := make([]*Competitor, 0, len(names))
	for _, name := range names {
		m, ok := cat.Monster(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownMonster, name)
		}
		seen[m.Name]++
		display := m.Name
		if n := seen[m.Name]; n > 1 {
			display += "#" + strconv.Itoa(n)
		}
		out = append(out, newCompetitor(m, display))
	}
	return out, nil
}
