package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedBlock marks a declaration the parser could not read. The block
// is dropped; the rest of the input is still parsed.
var ErrMalformedBlock = errors.New("malformed block")

// BlockError reports a dropped declaration.
type BlockError struct {
	Kind string // "action", "monster" or "line"
	Name string
	Line int
	Err  error
}

func (e *BlockError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s (line %d): %v", e.Kind, e.Line, e.Err)
	}
	return fmt.Sprintf("%s %s (line %d): %v", e.Kind, e.Name, e.Line, e.Err)
}

func (e *BlockError) Unwrap() error { return e.Err }

type line struct {
	no     int
	tokens []string
}

type block struct {
	header line
	body   []line
}

func (b block) kind() string { return b.header.tokens[0] }

func (b block) name() string {
	if len(b.header.tokens) < 2 {
		return ""
	}
	return b.header.tokens[1]
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedBlock, fmt.Sprintf(format, args...))
}

// Parse reads the block-oriented text format. Every block starts with an
// "action <name> <element>" or "monster <name> ..." header and runs until the
// next header or the end of input. Blocks that cannot be read are returned as
// *BlockError values and left out of the result.
func Parse(r io.Reader) (*CatalogConfig, []error) {
	cfg := &CatalogConfig{}
	var errs []error

	blocks, err := splitBlocks(r, &errs)
	if err != nil {
		errs = append(errs, err)
	}
	for _, b := range blocks {
		switch b.kind() {
		case "action":
			a, err := parseAction(b)
			if err != nil {
				errs = append(errs, &BlockError{Kind: "action", Name: b.name(), Line: b.header.no, Err: err})
				continue
			}
			cfg.Actions = append(cfg.Actions, a)
		case "monster":
			m, err := parseMonster(b)
			if err != nil {
				errs = append(errs, &BlockError{Kind: "monster", Name: b.name(), Line: b.header.no, Err: err})
				continue
			}
			cfg.Monsters = append(cfg.Monsters, m)
		}
	}
	return cfg, errs
}

func splitBlocks(r io.Reader, errs *[]error) ([]block, error) {
	var blocks []block
	sc := bufio.NewScanner(r)
	no := 0
	for sc.Scan() {
		no++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		ln := line{no: no, tokens: strings.Fields(text)}
		if t := ln.tokens[0]; t == "action" || t == "monster" {
			blocks = append(blocks, block{header: ln})
			continue
		}
		if len(blocks) == 0 {
			*errs = append(*errs, &BlockError{Kind: "line", Line: no, Err: malformed("%q outside of a block", text)})
			continue
		}
		last := &blocks[len(blocks)-1]
		last.body = append(last.body, ln)
	}
	if err := sc.Err(); err != nil {
		return blocks, fmt.Errorf("read config: %w", err)
	}
	return blocks, nil
}

func parseAction(b block) (ActionDecl, error) {
	h := b.header.tokens
	if len(h) != 3 {
		return ActionDecl{}, malformed("action header needs a name and an element")
	}
	a := ActionDecl{Name: h[1], Element: h[2], Line: b.header.no}

	// stack of open repeat effects; the action itself is the bottom frame
	var open []*EffectDecl
	appendEffect := func(e EffectDecl) {
		if len(open) == 0 {
			a.Effects = append(a.Effects, e)
			return
		}
		top := open[len(open)-1]
		top.Effects = append(top.Effects, e)
	}
	closed := false
	for _, ln := range b.body {
		t := ln.tokens
		if closed {
			return ActionDecl{}, malformed("line %d: content after end action", ln.no)
		}
		switch t[0] {
		case "end":
			if len(t) != 2 {
				return ActionDecl{}, malformed("line %d: bad end", ln.no)
			}
			switch t[1] {
			case "repeat":
				if len(open) == 0 {
					return ActionDecl{}, malformed("line %d: end repeat without repeat", ln.no)
				}
				done := *open[len(open)-1]
				open = open[:len(open)-1]
				appendEffect(done)
			case "action":
				closed = true
			default:
				return ActionDecl{}, malformed("line %d: unknown end %q", ln.no, t[1])
			}
		case "uses":
			if len(t) != 2 {
				return ActionDecl{}, malformed("line %d: uses needs one value", ln.no)
			}
			n, err := strconv.Atoi(t[1])
			if err != nil || n < 0 {
				return ActionDecl{}, malformed("line %d: bad uses %q", ln.no, t[1])
			}
			a.Uses = n
		case EffectRepeat:
			count, rest, err := parseCount(t[1:])
			if err != nil || len(rest) != 0 {
				return ActionDecl{}, malformed("line %d: bad repeat count", ln.no)
			}
			open = append(open, &EffectDecl{Type: EffectRepeat, Count: &count})
		default:
			e, err := parseEffect(t)
			if err != nil {
				return ActionDecl{}, fmt.Errorf("line %d: %w", ln.no, err)
			}
			appendEffect(e)
		}
	}
	if len(open) > 0 {
		return ActionDecl{}, malformed("repeat is never closed")
	}
	return a, nil
}

func parseEffect(t []string) (EffectDecl, error) {
	e := EffectDecl{Type: t[0]}
	var err error
	switch t[0] {
	case EffectDamage, EffectHeal:
		if len(t) != 5 {
			return e, malformed("%s needs target, strength and hit rate", t[0])
		}
		e.Target = t[1]
		v, convErr := strconv.Atoi(t[3])
		if convErr != nil {
			return e, malformed("bad strength value %q", t[3])
		}
		e.Strength = &StrengthDecl{Kind: t[2], Value: v}
		e.Hit, err = parseHit(t[4])
	case EffectStatusCondition:
		if len(t) != 4 {
			return e, malformed("%s needs target, condition and hit rate", t[0])
		}
		e.Target, e.Condition = t[1], t[2]
		e.Hit, err = parseHit(t[3])
	case EffectStatChange:
		if len(t) != 5 {
			return e, malformed("%s needs target, stat, change and hit rate", t[0])
		}
		e.Target, e.Stat = t[1], t[2]
		d, convErr := strconv.Atoi(t[3])
		if convErr != nil {
			return e, malformed("bad stat change %q", t[3])
		}
		e.Delta = d
		e.Hit, err = parseHit(t[4])
	case EffectProtect:
		if len(t) < 4 {
			return e, malformed("%s needs a kind, a count and a hit rate", t[0])
		}
		e.Target = "user"
		e.Protect = t[1]
		count, rest, countErr := parseCount(t[2:])
		if countErr != nil || len(rest) != 1 {
			return e, malformed("bad protection count")
		}
		e.Count = &count
		e.Hit, err = parseHit(rest[0])
	case EffectContinue:
		if len(t) != 2 {
			return e, malformed("continue needs a hit rate")
		}
		e.Target = "user"
		e.Hit, err = parseHit(t[1])
	default:
		return e, malformed("unknown effect %q", t[0])
	}
	return e, err
}

// parseCount reads "<n>" or "random <min> <max>" and returns the tokens left over.
func parseCount(t []string) (CountDecl, []string, error) {
	if len(t) == 0 {
		return CountDecl{}, nil, malformed("missing count")
	}
	if t[0] == "random" {
		if len(t) < 3 {
			return CountDecl{}, nil, malformed("random count needs min and max")
		}
		lo, err1 := strconv.Atoi(t[1])
		hi, err2 := strconv.Atoi(t[2])
		if err1 != nil || err2 != nil {
			return CountDecl{}, nil, malformed("bad random count")
		}
		return CountDecl{Min: lo, Max: hi}, t[3:], nil
	}
	n, err := strconv.Atoi(t[0])
	if err != nil {
		return CountDecl{}, nil, malformed("bad count %q", t[0])
	}
	return CountDecl{Min: n, Max: n}, t[1:], nil
}

func parseHit(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, malformed("bad hit rate %q", s)
	}
	return n, nil
}

func parseMonster(b block) (MonsterDecl, error) {
	tokens := append([]string(nil), b.header.tokens[2:]...)
	for _, ln := range b.body {
		tokens = append(tokens, ln.tokens...)
	}
	if b.name() == "" {
		return MonsterDecl{}, malformed("monster header needs a name")
	}
	if len(tokens) < 5 {
		return MonsterDecl{}, malformed("monster needs an element and four stats")
	}
	stats := make([]int, 4)
	for i := range stats {
		n, err := strconv.Atoi(tokens[1+i])
		if err != nil {
			return MonsterDecl{}, malformed("bad stat %q", tokens[1+i])
		}
		stats[i] = n
	}
	return MonsterDecl{
		Name:    b.name(),
		Element: tokens[0],
		HP:      stats[0],
		ATK:     stats[1],
		DEF:     stats[2],
		SPD:     stats[3],
		Actions: tokens[5:],
		Line:    b.header.no,
	}, nil
}
