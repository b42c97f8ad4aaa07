package combat

import (
	"errors"
	"fmt"

	"monstersim/internal/config"
)

var (
	// ErrInvalidConfiguration means a configuration produced no actions or no
	// monsters; nothing can be simulated from it.
	ErrInvalidConfiguration = errors.New("invalid or empty configuration")
	// ErrInvalidDeclaration marks a declaration dropped while building the catalog.
	ErrInvalidDeclaration = errors.New("invalid declaration")
	ErrUnknownAction      = errors.New("unknown action")
)

type Stats struct {
	HP, ATK, DEF, SPD int
}

// Monster is the catalog form of a monster. Actions point into the catalog
// that built it.
type Monster struct {
	Name    string
	Element Element
	Stats   Stats
	Actions []*Action
}

// Action finds one of the monster's actions by name, ignoring case.
func (m *Monster) Action(name string) (*Action, bool) {
	for _, a := range m.Actions {
		if equalName(a.Name, name) {
			return a, true
		}
	}
	return nil, false
}

func (m *Monster) knows(a *Action) bool {
	for _, k := range m.Actions {
		if k == a {
			return true
		}
	}
	return false
}

// Catalog holds every loaded action and monster. It is never modified after
// NewCatalog returns and may be shared by concurrent competitions.
type Catalog struct {
	actions      map[string]*Action
	actionOrder  []string
	monsters     map[string]*Monster
	monsterOrder []string
}

// NewCatalog turns raw declarations into typed, cross-referenced values.
// Declarations that do not make sense are dropped and reported in the slice;
// the error is only set when the result would be empty. Every action is
// known before any monster is resolved, so monsters may reference actions
// declared after them.
func NewCatalog(cfg *config.CatalogConfig) (*Catalog, []error, error) {
	c := &Catalog{actions: map[string]*Action{}, monsters: map[string]*Monster{}}
	var errs []error
	drop := func(kind, name string, line int, err error) {
		errs = append(errs, &config.BlockError{Kind: kind, Name: name, Line: line,
			Err: fmt.Errorf("%w: %w", ErrInvalidDeclaration, err)})
	}

	for _, d := range cfg.Actions {
		if d.Name == "" {
			drop("action", d.Name, d.Line, errors.New("missing name"))
			continue
		}
		a, err := newAction(d)
		if err != nil {
			drop("action", d.Name, d.Line, err)
			continue
		}
		if _, dup := c.actions[a.Name]; !dup {
			c.actionOrder = append(c.actionOrder, a.Name)
		}
		c.actions[a.Name] = a
	}

	for _, d := range cfg.Monsters {
		m, err := c.newMonster(d)
		if err != nil {
			drop("monster", d.Name, d.Line, err)
			continue
		}
		if _, dup := c.monsters[m.Name]; !dup {
			c.monsterOrder = append(c.monsterOrder, m.Name)
		}
		c.monsters[m.Name] = m
	}

	if len(c.actions) == 0 || len(c.monsters) == 0 {
		return nil, errs, fmt.Errorf("%w: %d actions, %d monsters", ErrInvalidConfiguration, len(c.actions), len(c.monsters))
	}
	return c, errs, nil
}

func (c *Catalog) newMonster(d config.MonsterDecl) (*Monster, error) {
	if d.Name == "" {
		return nil, errors.New("missing name")
	}
	el, err := ParseElement(d.Element)
	if err != nil {
		return nil, err
	}
	st := Stats{HP: d.HP, ATK: d.ATK, DEF: d.DEF, SPD: d.SPD}
	if st.HP <= 0 || st.ATK <= 0 || st.DEF <= 0 || st.SPD <= 0 {
		return nil, fmt.Errorf("stats must be positive, got %+v", st)
	}
	if len(d.Actions) == 0 {
		return nil, errors.New("knows no actions")
	}
	m := &Monster{Name: d.Name, Element: el, Stats: st, Actions: make([]*Action, 0, len(d.Actions))}
	for _, name := range d.Actions {
		a, ok := c.actions[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAction, name)
		}
		m.Actions = append(m.Actions, a)
	}
	return m, nil
}

func (c *Catalog) Action(name string) (*Action, bool) {
	a, ok := c.actions[name]
	return a, ok
}

func (c *Catalog) Monster(name string) (*Monster, bool) {
	m, ok := c.monsters[name]
	return m, ok
}

// Actions lists actions in order of first declaration.
func (c *Catalog) Actions() []*Action {
	out := make([]*Action, len(c.actionOrder))
	for i, n := range c.actionOrder {
		out[i] = c.actions[n]
	}
	return out
}

// Monsters lists monsters in order of first declaration.
func (c *Catalog) Monsters() []*Monster {
	out := make([]*Monster, len(c.monsterOrder))
	for i, n := range c.monsterOrder {
		out[i] = c.monsters[n]
	}
	return out
}

// LoadCatalog reads a catalog file and builds it. Blocks dropped while parsing
// or resolving are returned together; the error is set when the file cannot
// be read or nothing usable is left.
func LoadCatalog(path string) (*Catalog, []error, error) {
	cfg, dropped, err := config.LoadCatalogFile(path)
	if err != nil {
		return nil, nil, err
	}
	cat, more, err := NewCatalog(cfg)
	return cat, append(dropped, more...), err
}
