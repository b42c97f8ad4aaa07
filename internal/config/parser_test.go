package config

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

const sampleConfig = `
# starter set
action Scratch NORMAL
  damage target base 5 100
end action

monster Drakeling FIRE 42 12 8 10 Ember Scratch

action Ember FIRE
  damage target base 8 95
  inflictStatusCondition target BURN 30
  uses 10
end action

action Bubbles WATER
  repeat random 2 4
    damage target abs 3 90
  end repeat
  protectStat HEALTH random 1 3 100
  continue 80
  inflictStatChange user SPD -1 100

monster Aqualing WATER 40
  10 10 12
  Bubbles Scratch
`

func TestParseSample(t *testing.T) {
	cfg, errs := Parse(strings.NewReader(sampleConfig))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(cfg.Actions) != 3 || len(cfg.Monsters) != 2 {
		t.Fatalf("got %d actions, %d monsters", len(cfg.Actions), len(cfg.Monsters))
	}

	ember := cfg.Actions[1]
	if ember.Name != "Ember" || ember.Element != "FIRE" || ember.Uses != 10 {
		t.Fatalf("unexpected ember: %+v", ember)
	}
	wantEmber := []EffectDecl{
		{Type: EffectDamage, Target: "target", Strength: &StrengthDecl{Kind: "base", Value: 8}, Hit: 95},
		{Type: EffectStatusCondition, Target: "target", Condition: "BURN", Hit: 30},
	}
	if !reflect.DeepEqual(ember.Effects, wantEmber) {
		t.Fatalf("ember effects = %+v, want %+v", ember.Effects, wantEmber)
	}

	bubbles := cfg.Actions[2]
	if len(bubbles.Effects) != 4 {
		t.Fatalf("bubbles effects = %+v", bubbles.Effects)
	}
	rep := bubbles.Effects[0]
	if rep.Type != EffectRepeat || *rep.Count != (CountDecl{Min: 2, Max: 4}) || len(rep.Effects) != 1 {
		t.Fatalf("unexpected repeat: %+v", rep)
	}
	prot := bubbles.Effects[1]
	if prot.Protect != "HEALTH" || *prot.Count != (CountDecl{Min: 1, Max: 3}) || prot.Hit != 100 {
		t.Fatalf("unexpected protect: %+v", prot)
	}
	if got := bubbles.Effects[3]; got.Stat != "SPD" || got.Delta != -1 || got.Target != "user" {
		t.Fatalf("unexpected stat change: %+v", got)
	}

	want := MonsterDecl{Name: "Aqualing", Element: "WATER", HP: 40, ATK: 10, DEF: 10, SPD: 12,
		Actions: []string{"Bubbles", "Scratch"}, Line: cfg.Monsters[1].Line}
	if !reflect.DeepEqual(cfg.Monsters[1], want) {
		t.Fatalf("aqualing = %+v, want %+v", cfg.Monsters[1], want)
	}
	if got := cfg.Monsters[0].Actions; !reflect.DeepEqual(got, []string{"Ember", "Scratch"}) {
		t.Fatalf("drakeling actions = %v", got)
	}
}

func TestParseDropsMalformedBlocks(t *testing.T) {
	tcs := []struct {
		name  string
		input string
	}{
		{name: "missing element", input: "action Tackle\n damage target base 5 100\n"},
		{name: "unknown effect", input: "action Tackle NORMAL\n explode target 100\n"},
		{name: "bad hit rate", input: "action Tackle NORMAL\n damage target base 5 often\n"},
		{name: "unclosed repeat", input: "action Tackle NORMAL\n repeat 2\n damage target abs 1 100\n"},
		{name: "stray end repeat", input: "action Tackle NORMAL\n end repeat\n"},
		{name: "content after end", input: "action Tackle NORMAL\n continue 100\nend action\n continue 100\n"},
		{name: "short monster", input: "monster Blob NORMAL 10 10\n"},
		{name: "bad monster stat", input: "monster Blob NORMAL ten 1 1 1 Tackle\n"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg, errs := Parse(strings.NewReader(tc.input + "action Fine NORMAL\n continue 100\n"))
			if len(errs) != 1 {
				t.Fatalf("errs = %v, want exactly one", errs)
			}
			var be *BlockError
			if !errors.As(errs[0], &be) || !errors.Is(errs[0], ErrMalformedBlock) {
				t.Fatalf("error %v is not a malformed block error", errs[0])
			}
			if len(cfg.Actions) != 1 || cfg.Actions[0].Name != "Fine" {
				t.Fatalf("following block should survive, got %+v", cfg.Actions)
			}
		})
	}
}

func TestParseReportsStrayLines(t *testing.T) {
	_, errs := Parse(strings.NewReader("hello\naction A NORMAL\n continue 100\n"))
	if len(errs) != 1 {
		t.Fatalf("errs = %v", errs)
	}
	var be *BlockError
	if !errors.As(errs[0], &be) || be.Kind != "line" || be.Line != 1 {
		t.Fatalf("unexpected error %v", errs[0])
	}
}

func TestBlockErrorMessage(t *testing.T) {
	err := &BlockError{Kind: "action", Name: "Ember", Line: 3, Err: malformed("bad hit rate %q", "x")}
	if got, want := err.Error(), `action Ember (line 3): malformed block: bad hit rate "x"`; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
