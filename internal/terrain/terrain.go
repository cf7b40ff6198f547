// Package terrain defines the closed set of terrain categories and the
// positional classifier that assigns one to each territory.
package terrain

import "fmt"

// Terrain is one of the six fixed terrain categories.
type Terrain uint8

const (
	Plains Terrain = iota
	Forest
	Mountains
	Desert
	Hills
	Coastal
)

var tokens = [...]string{
	Plains:    "plains",
	Forest:    "forest",
	Mountains: "mountains",
	Desert:    "desert",
	Hills:     "hills",
	Coastal:   "coastal",
}

// All returns every terrain in declaration order.
func All() []Terrain {
	return []Terrain{Plains, Forest, Mountains, Desert, Hills, Coastal}
}

// String returns the lowercase wire token for the terrain.
func (t Terrain) String() string {
	if int(t) >= len(tokens) {
		return fmt.Sprintf("terrain(%d)", uint8(t))
	}
	return tokens[t]
}

// Parse maps a wire token back to its Terrain.
func Parse(s string) (Terrain, error) {
	for i, tok := range tokens {
		if tok == s {
			return Terrain(i), nil
		}
	}
	return Plains, fmt.Errorf("terrain: unknown token %q", s)
}

// MarshalText encodes the terrain as its wire token, for JSON and friends.
func (t Terrain) MarshalText() ([]byte, error) {
	if int(t) >= len(tokens) {
		return nil, fmt.Errorf("terrain: cannot encode invalid value %d", uint8(t))
	}
	return []byte(tokens[t]), nil
}

// UnmarshalText decodes a wire token.
func (t *Terrain) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
