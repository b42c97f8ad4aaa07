package shell

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"monstersim/internal/combat"
	"monstersim/internal/config"
	"monstersim/internal/random"
)

const catalogText = `
action Tackle NORMAL
  damage target abs 5 100
action Boom NORMAL
  damage target abs 100 100
  damage user abs 100 100
monster Dummy NORMAL 20 10 10 10 Tackle Boom
monster Wisp NORMAL 1 10 10 1 Tackle
`

func newCatalog(t *testing.T) *combat.Catalog {
	t.Helper()
	cfg, errs := config.Parse(strings.NewReader(catalogText))
	if len(errs) != 0 {
		t.Fatalf("parse: %v", errs)
	}
	cat, _, err := combat.NewCatalog(cfg)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return cat
}

func run(t *testing.T, mode random.Mode, input string) (string, error) {
	t.Helper()
	in := bufio.NewScanner(strings.NewReader(input))
	var out bytes.Buffer
	sh := New(newCatalog(t), random.New(mode, 1, in, &out), in, &out)
	err := sh.Run()
	return out.String(), err
}

func TestCommandErrors(t *testing.T) {
	out, err := run(t, random.ModeSeeded, strings.Join([]string{
		"competition Dummy",
		"competition Dummy Ghost",
		"pass",
		"show",
		"dance",
		"quit",
		"show monsters",
	}, "\n"))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{
		"Error: competition requires at least two monsters\n",
		"Error: unknown monster: Ghost\n",
		"Error: no competition is running\n",
		"Error: unknown command: dance\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output %q lacks %q", out, want)
		}
	}
	if strings.Contains(out, "ELEMENT") {
		t.Fatalf("command after quit ran: %q", out)
	}
}

func TestShowMonsters(t *testing.T) {
	out, err := run(t, random.ModeSeeded, "show monsters\n")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "Dummy: ELEMENT NORMAL, HP 20, ATK 10, DEF 10, SPD 10\n" +
		"Wisp: ELEMENT NORMAL, HP 1, ATK 10, DEF 10, SPD 1\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestCompetitionToTheEnd(t *testing.T) {
	out, err := run(t, random.ModeSeeded, strings.Join([]string{
		"competition Dummy Dummy",
		"show",
		"action Boom Dummy#2",
		"action Tackle",
	}, "\n"))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{
		"The 2 monsters enter the competition!\n",
		"What should Dummy do?\n",
		"* 1 Dummy 20/20 HP\n",
		"What should Dummy#2 do?\n",
		"Dummy uses Boom!\n",
		"\n=== Contest Results ===\nThe contest ended in a draw!\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output %q lacks %q", out, want)
		}
	}
}

func TestInvalidChoiceIsReasked(t *testing.T) {
	out, err := run(t, random.ModeSeeded, strings.Join([]string{
		"competition Wisp Dummy",
		"action Boom",
		"action Tackle Wisp",
		"show actions",
	}, "\n"))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "Error: unknown action: Wisp does not know Boom\n") {
		t.Fatalf("output %q", out)
	}
	if !strings.Contains(out, "Error: invalid choice: Wisp is not a valid target\n") {
		t.Fatalf("output %q", out)
	}
	if !strings.Contains(out, "ACTIONS OF Wisp\nTackle: ELEMENT NORMAL, Uses inf\n") {
		t.Fatalf("output %q", out)
	}
}

func TestInteractiveInputEnds(t *testing.T) {
	out, err := run(t, random.ModeInteractive, "competition Dummy Wisp\naction Tackle\npass\n")
	if !errors.Is(err, random.ErrInputClosed) {
		t.Fatalf("err = %v, want ErrInputClosed (output %q)", err, out)
	}
	if !strings.Contains(out, "Decide ") {
		t.Fatalf("no decision was asked: %q", out)
	}
}
