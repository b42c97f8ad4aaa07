package main

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"monstersim/internal/combat"
	"monstersim/internal/config"
	"monstersim/internal/random"
)

type Summary struct {
	Runs       int                `json:"runs"`
	Wins       map[string]int     `json:"wins"`
	WinRate    map[string]float64 `json:"win_rate"`
	Draws      int                `json:"draws"`
	Unfinished int                `json:"unfinished"`
	AvgRounds  float64            `json:"avg_rounds"`
}

// runBatch plays sc.Runs competitions, run i seeded with sc.Seed+i, on at
// most sc.Workers goroutines. The summary does not depend on scheduling.
func runBatch(ctx context.Context, cat *combat.Catalog, sc *config.Scenario) (Summary, error) {
	st := Summary{Runs: sc.Runs, Wins: map[string]int{}, WinRate: map[string]float64{}}
	sumRounds := 0
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(sc.Workers)
	for i := 0; i < sc.Runs; i++ {
		i := i // per-iteration copy; go directive is 1.21 (pre-1.22 loop semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src := random.NewSeeded(sc.Seed + int64(i))
			res, err := combat.Simulate(cat, sc.Roster, src, combat.RandomChooser{}, sc.MaxRounds)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			switch {
			case !res.Finished:
				st.Unfinished++
			case res.Draw:
				st.Draws++
			default:
				st.Wins[res.Winner]++
			}
			sumRounds += res.Rounds
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	for name, w := range st.Wins {
		st.WinRate[name] = float64(w) / float64(st.Runs)
	}
	if st.Runs > 0 {
		st.AvgRounds = float64(sumRounds) / float64(st.Runs)
	}
	return st, nil
}
