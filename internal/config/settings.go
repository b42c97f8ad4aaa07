package config

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Settings configures the interactive command.
type Settings struct {
	ConfigPath string `env:"MONSTERSIM_CONFIG"`
	Seed       int64  `env:"MONSTERSIM_SEED"  envDefault:"0"`
	Debug      bool   `env:"MONSTERSIM_DEBUG"`
}

// ParseSettings layers environment defaults, then flags, then the positional
// arguments "<config> [seed|debug]". A seed argument that is not an integer
// falls back to 0.
func ParseSettings(fs *flag.FlagSet, args []string) (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&s.ConfigPath, "config", s.ConfigPath, "path to the monster configuration")
	fs.Int64Var(&s.Seed, "seed", s.Seed, "seed for the random source")
	fs.BoolVar(&s.Debug, "debug", s.Debug, "ask the operator for every random decision")
	if err := fs.Parse(args); err != nil {
		return Settings{}, err
	}

	rest := fs.Args()
	if len(rest) > 0 {
		s.ConfigPath = rest[0]
	}
	if len(rest) > 1 {
		if strings.EqualFold(rest[1], "debug") {
			s.Debug = true
		} else if seed, err := strconv.ParseInt(rest[1], 10, 64); err == nil {
			s.Seed = seed
		} else {
			s.Seed = 0
		}
	}
	if s.ConfigPath == "" {
		return Settings{}, errors.New("config path is required")
	}
	return s, nil
}
