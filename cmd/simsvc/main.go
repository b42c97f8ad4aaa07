package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"monstersim/internal/combat"
	"monstersim/internal/config"
	"monstersim/internal/logging"
	"monstersim/internal/random"
)

func main() {
	var cfgPath, scenarioPath, out, roster string
	var seed int64
	var n int
	var saveLog bool
	flag.StringVar(&cfgPath, "config", "assets/monsters.txt", "catalog file (.txt or .yaml)")
	flag.StringVar(&scenarioPath, "scenario", "", "scenario YAML; flags override its seed and runs when set")
	flag.StringVar(&out, "out", "out.json", "output file (single) or summary file (batch)")
	flag.StringVar(&roster, "roster", "", "comma separated monster names, default every monster")
	flag.Int64Var(&seed, "seed", 12345, "seed")
	flag.IntVar(&n, "n", 0, "number of simulations")
	flag.BoolVar(&saveLog, "log", true, "save full event log when n==1")
	flag.Parse()

	cat, dropped, err := combat.LoadCatalog(cfgPath)
	for _, d := range dropped {
		logging.Info("dropped declaration", logging.Fields{"path": cfgPath, "reason": d.Error()})
	}
	if err != nil {
		logging.Fatal("load catalog", err, logging.Fields{"path": cfgPath})
	}

	sc := &config.Scenario{Seed: seed}
	if scenarioPath != "" {
		if sc, err = config.LoadScenario(scenarioPath); err != nil {
			logging.Fatal("load scenario", err, nil)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			sc.Seed = seed
		case "n":
			sc.Runs = n
		case "roster":
			sc.Roster = strings.Split(roster, ",")
		}
	})
	if len(sc.Roster) == 0 {
		for _, m := range cat.Monsters() {
			sc.Roster = append(sc.Roster, m.Name)
		}
	}
	sc.Normalize()

	if sc.Runs <= 1 {
		res, err := combat.Simulate(cat, sc.Roster, random.NewSeeded(sc.Seed), combat.RandomChooser{}, sc.MaxRounds)
		if err != nil {
			logging.Fatal("simulate", err, logging.Fields{"roster": sc.Roster})
		}
		if !saveLog {
			res.Events = nil
		}
		if err := os.WriteFile(out, combat.MarshalPretty(res), 0644); err != nil {
			logging.Fatal("write result", err, logging.Fields{"out": out})
		}
		fmt.Printf("Single simsvc finished. Winner=%q, Draw=%v, Rounds=%d -> %s\n", res.Winner, res.Draw, res.Rounds, out)
		return
	}

	summary, err := runBatch(context.Background(), cat, sc)
	if err != nil {
		logging.Fatal("batch", err, logging.Fields{"runs": sc.Runs})
	}
	if err := os.WriteFile(out, combat.MarshalPretty(summary), 0644); err != nil {
		logging.Fatal("write summary", err, logging.Fields{"out": out})
	}
	logging.Info("batch finished", logging.Fields{"runs": sc.Runs, "workers": sc.Workers, "draws": summary.Draws})
	fmt.Printf("Batch %d done -> %s\n", sc.Runs, filepath.Base(out))
}
