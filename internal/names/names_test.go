package names

import (
	"errors"
	"strings"
	"testing"
)

func TestOneDeterministic(t *testing.T) {
	g := New()
	for seed := int64(0); seed < 100; seed++ {
		if a, b := g.One(seed), g.One(seed); a != b {
			t.Fatalf("seed %d: %q != %q", seed, a, b)
		}
	}
}

// Every name starts with a prefix and continues with table entries only.
func TestOneComposedFromTables(t *testing.T) {
	g := New()
	for seed := int64(0); seed < 500; seed++ {
		name := g.One(seed)

		rest := ""
		for _, p := range g.prefixes {
			if strings.HasPrefix(name, p) {
				rest = name[len(p):]
				break
			}
		}
		if rest == "" && name != "" {
			// A prefix matched nothing, or the whole name was a prefix,
			// which the structure rules never produce.
			t.Fatalf("seed %d: name %q does not start with a known prefix", seed, name)
		}

		if !tailFromTables(g, rest) {
			t.Fatalf("seed %d: name %q has unrecognized tail %q", seed, name, rest)
		}
	}
}

// tailFromTables reports whether rest is middle+suffix, suffix, or middle.
func tailFromTables(g *Generator, rest string) bool {
	for _, m := range g.middles {
		if rest == m {
			return true
		}
		for _, s := range g.suffixes {
			if rest == m+s {
				return true
			}
		}
	}
	for _, s := range g.suffixes {
		if rest == s {
			return true
		}
	}
	return false
}

func TestBatchUnique(t *testing.T) {
	g := New()
	batch, err := g.Batch(5042, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(batch) != 100 {
		t.Fatalf("got %d names, want 100", len(batch))
	}
	seen := make(map[string]bool)
	for _, name := range batch {
		if seen[name] {
			t.Fatalf("duplicate name %q", name)
		}
		seen[name] = true
	}
}

func TestBatchDeterministic(t *testing.T) {
	g := New()
	a, err := g.Batch(77, 40)
	if err != nil {
		t.Fatal(err)
	}
	b, err := g.Batch(77, 40)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("batch diverged at %d: %q vs %q", i, a[i], b[i])
		}
	}
}

// With tables this tiny only four names exist, so asking for more must
// fail with ErrExhausted instead of spinning.
func TestBatchExhaustion(t *testing.T) {
	g := &Generator{
		prefixes: []string{"Ka", "Lo"},
		middles:  []string{"ra"},
		suffixes: []string{"ton"},
	}
	if _, err := g.Batch(0, 40); !errors.Is(err, ErrExhausted) {
		t.Fatalf("got %v, want ErrExhausted", err)
	}
}
