package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const sampleYAML = `
actions:
  - name: Scratch
    element: NORMAL
    effects:
      - type: damage
        target: target
        strength: {kind: base, value: 5}
        hit: 100
  - name: Ember
    element: FIRE
    uses: 10
    effects:
      - type: damage
        target: target
        strength: {kind: base, value: 8}
        hit: 95
      - type: inflictStatusCondition
        target: target
        condition: BURN
        hit: 30
monsters:
  - name: Drakeling
    element: FIRE
    hp: 42
    atk: 12
    def: 8
    spd: 10
    actions: [Ember, Scratch]
`

const sampleText = `
action Scratch NORMAL
  damage target base 5 100
end action
action Ember FIRE
  damage target base 8 95
  inflictStatusCondition target BURN 30
  uses 10
end action
monster Drakeling FIRE 42 12 8 10 Ember Scratch
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func stripLines(cfg *CatalogConfig) {
	for i := range cfg.Actions {
		cfg.Actions[i].Line = 0
	}
	for i := range cfg.Monsters {
		cfg.Monsters[i].Line = 0
	}
}

func TestLoadCatalogFileFormatsAgree(t *testing.T) {
	fromYAML, errs, err := LoadCatalogFile(writeFile(t, "catalog.yaml", sampleYAML))
	if err != nil || len(errs) != 0 {
		t.Fatalf("yaml load: err=%v errs=%v", err, errs)
	}
	fromText, errs, err := LoadCatalogFile(writeFile(t, "catalog.txt", sampleText))
	if err != nil || len(errs) != 0 {
		t.Fatalf("text load: err=%v errs=%v", err, errs)
	}
	stripLines(fromText)
	if !reflect.DeepEqual(fromYAML, fromText) {
		t.Fatalf("formats disagree:\nyaml %+v\ntext %+v", fromYAML, fromText)
	}
}

func TestLoadCatalogFileMissing(t *testing.T) {
	_, _, err := LoadCatalogFile(filepath.Join(t.TempDir(), "nope.txt"))
	if !os.IsNotExist(unwrapAll(err)) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}

func unwrapAll(err error) error {
	for {
		u, ok := err.(interface{ Unwrap() error })
		if !ok || u.Unwrap() == nil {
			return err
		}
		err = u.Unwrap()
	}
}

func TestLoadScenarioDefaults(t *testing.T) {
	sc, err := LoadScenario(writeFile(t, "run.yaml", "seed: 42\nroster: [Drakeling, Drakeling]\n"))
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	want := &Scenario{Seed: 42, Runs: 1, Workers: defaultWorkers, Roster: []string{"Drakeling", "Drakeling"}, MaxRounds: defaultMaxRounds}
	if !reflect.DeepEqual(sc, want) {
		t.Fatalf("scenario = %+v, want %+v", sc, want)
	}
}
