package config

// CatalogConfig is the raw, untyped form of a catalog as declared in a
// configuration file. Names, elements and stats are plain strings here; the
// combat package turns them into typed values and checks references.
type CatalogConfig struct {
	Actions  []ActionDecl  `yaml:"actions"`
	Monsters []MonsterDecl `yaml:"monsters"`
}

type ActionDecl struct {
	Name    string       `yaml:"name"`
	Element string       `yaml:"element"`
	Uses    int          `yaml:"uses"`
	Effects []EffectDecl `yaml:"effects"`
	Line    int          `yaml:"-"`
}

// EffectDecl covers every effect kind; only the fields of Type are read.
type EffectDecl struct {
	Type      string        `yaml:"type"`
	Target    string        `yaml:"target"`
	Strength  *StrengthDecl `yaml:"strength,omitempty"`
	Condition string        `yaml:"condition,omitempty"`
	Stat      string        `yaml:"stat,omitempty"`
	Delta     int           `yaml:"delta,omitempty"`
	Protect   string        `yaml:"protect,omitempty"`
	Count     *CountDecl    `yaml:"count,omitempty"`
	Hit       int           `yaml:"hit"`
	Effects   []EffectDecl  `yaml:"effects,omitempty"`
}

type StrengthDecl struct {
	Kind  string `yaml:"kind"`
	Value int    `yaml:"value"`
}

// CountDecl is a fixed count when Min == Max, a random one in [Min, Max] otherwise.
type CountDecl struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type MonsterDecl struct {
	Name    string   `yaml:"name"`
	Element string   `yaml:"element"`
	HP      int      `yaml:"hp"`
	ATK     int      `yaml:"atk"`
	DEF     int      `yaml:"def"`
	SPD     int      `yaml:"spd"`
	Actions []string `yaml:"actions"`
	Line    int      `yaml:"-"`
}

// Effect type names shared by the text and YAML formats.
const (
	EffectDamage          = "damage"
	EffectHeal            = "heal"
	EffectStatusCondition = "inflictStatusCondition"
	EffectStatChange      = "inflictStatChange"
	EffectProtect         = "protectStat"
	EffectContinue        = "continue"
	EffectRepeat          = "repeat"
)
