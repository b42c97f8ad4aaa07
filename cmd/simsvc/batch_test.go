package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"monstersim/internal/combat"
	"monstersim/internal/config"
)

const catalog = `
action Tackle NORMAL
  damage target base 10 95
action Soak WATER
  inflictStatusCondition target WET 80
monster Rock EARTH 30 12 10 8 Tackle
monster Puddle WATER 28 10 12 9 Tackle Soak
`

func loadCatalog(t *testing.T) *combat.Catalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), "monsters.txt")
	if err := os.WriteFile(path, []byte(catalog), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cat, dropped, err := combat.LoadCatalog(path)
	if err != nil || len(dropped) != 0 {
		t.Fatalf("load: %v %v", err, dropped)
	}
	return cat
}

func TestRunBatchIsReproducible(t *testing.T) {
	cat := loadCatalog(t)
	sc := &config.Scenario{Seed: 3, Runs: 40, Workers: 4, Roster: []string{"Rock", "Puddle"}, MaxRounds: 100}
	a, err := runBatch(context.Background(), cat, sc)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	sc.Workers = 1
	b, err := runBatch(context.Background(), cat, sc)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("summaries differ:\n%+v\n%+v", a, b)
	}
	total := a.Draws + a.Unfinished
	for _, w := range a.Wins {
		total += w
	}
	if total != sc.Runs {
		t.Fatalf("outcomes add up to %d, want %d", total, sc.Runs)
	}
}

func TestRunBatchUnknownMonster(t *testing.T) {
	cat := loadCatalog(t)
	sc := &config.Scenario{Runs: 3, Workers: 2, Roster: []string{"Rock", "Ghost"}, MaxRounds: 10}
	if _, err := runBatch(context.Background(), cat, sc); !errors.Is(err, combat.ErrUnknownMonster) {
		t.Fatalf("err = %v, want ErrUnknownMonster", err)
	}
}
