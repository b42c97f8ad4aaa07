package config

import "fmt"

// Scenario describes a batch of automatically played competitions.
type Scenario struct {
	Seed      int64    `yaml:"seed"`
	Runs      int      `yaml:"runs"`
	Workers   int      `yaml:"workers"`
	Roster    []string `yaml:"roster"`
	MaxRounds int      `yaml:"max_rounds"`
}

const (
	defaultWorkers   = 8
	defaultMaxRounds = 100
)

func LoadScenario(path string) (*Scenario, error) {
	var sc Scenario
	if err := loadYAML(path, &sc); err != nil {
		return nil, fmt.Errorf("load scenario %s: %w", path, err)
	}
	sc.Normalize()
	return &sc, nil
}

// Normalize fills in defaults for unset or non-positive fields.
func (sc *Scenario) Normalize() {
	if sc.Runs <= 0 {
		sc.Runs = 1
	}
	if sc.Workers <= 0 {
		sc.Workers = defaultWorkers
	}
	if sc.MaxRounds <= 0 {
		sc.MaxRounds = defaultMaxRounds
	}
}
