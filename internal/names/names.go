// Package names builds medieval-sounding territory names from syllable
// tables and hands out batches that are unique within one generation run.
package names

import (
	"errors"
	"fmt"

	"github.com/talgya/realmgen/internal/rng"
)

var (
	prefixes = []string{
		"Ald", "Bren", "Cael", "Dorn", "Eber", "Fal", "Gal", "Hart",
		"Ivar", "Kald", "Lor", "Mor", "Nor", "Ost", "Pel", "Quar",
		"Rav", "Stan", "Thor", "Ulm", "Vald", "Wess", "Yor", "Zan",
	}
	middles = []string{
		"ara", "bor", "cas", "den", "eth", "fen", "gar", "hal",
		"ing", "kel", "lan", "mer", "nor", "or", "ren", "sal",
		"tan", "um", "ver", "wic",
	}
	suffixes = []string{
		"burg", "dale", "ford", "gard", "ham", "haven", "hold", "keep",
		"land", "mark", "moor", "mouth", "shire", "stead", "ton", "vale",
		"wall", "watch", "wick", "wood",
	}
)

// attemptFactor bounds the uniqueness search at attemptFactor x count
// seeds. The tables are finite, so a request near their combined
// cardinality must fail instead of spinning forever.
const attemptFactor = 50

// ErrExhausted is returned when the uniqueness search runs out of attempts.
var ErrExhausted = errors.New("names: syllable tables exhausted before reaching requested count")

// Generator assembles names from syllable tables. Construct with New; the
// zero value has empty tables.
type Generator struct {
	prefixes []string
	middles  []string
	suffixes []string
}

// New returns a Generator over the default syllable tables.
func New() *Generator {
	return &Generator{prefixes: prefixes, middles: middles, suffixes: suffixes}
}

// One returns the name for a single seed. The structure draw comes first,
// then one index into each table, so the same seed always yields the same
// name.
func (g *Generator) One(seed int64) string {
	src := rng.New(seed)
	r := src.Next()
	p := g.prefixes[src.Between(0, len(g.prefixes)-1)]
	m := g.middles[src.Between(0, len(g.middles)-1)]
	s := g.suffixes[src.Between(0, len(g.suffixes)-1)]
	switch {
	case r < 0.6:
		return p + m + s
	case r < 0.9:
		return p + s
	default:
		return p + m
	}
}

// Batch returns count distinct names, walking seeds upward from base one
// at a time and skipping collisions.
func (g *Generator) Batch(base int64, count int) ([]string, error) {
	out := make([]string, 0, count)
	seen := make(map[string]struct{}, count)
	seed := base
	for attempts := 0; len(out) < count; attempts++ {
		if attempts >= attemptFactor*count {
			return nil, fmt.Errorf("%w: %d unique after %d attempts", ErrExhausted, len(out), attempts)
		}
		name := g.One(seed)
		seed++
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out, nil
}
