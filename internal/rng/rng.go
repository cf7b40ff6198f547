// Package rng provides the seeded pseudo-random source that drives every
// stage of map generation. The generator is a small linear-congruential
// recurrence chosen for bit-for-bit reproducibility: the same seed always
// yields the same stream, so a whole map is replayable from one integer.
package rng

const (
	multiplier = 9301
	increment  = 49297
	modulus    = 233280
)

// Source is a deterministic random stream. Each subsystem constructs its
// own Source from a derived seed, so draw order in one subsystem can never
// disturb the draws of another.
type Source struct {
	state int64
}

// New returns a Source seeded with the given value.
func New(seed int64) *Source {
	return &Source{state: seed}
}

// Next advances the generator and returns a float64 in [0, 1).
func (s *Source) Next() float64 {
	s.state = (s.state*multiplier + increment) % modulus
	if s.state < 0 {
		// Negative seeds would otherwise leak a negative remainder.
		s.state += modulus
	}
	return float64(s.state) / modulus
}

// Between returns an integer in [min, max], both ends inclusive.
func (s *Source) Between(min, max int) int {
	return int(s.Next()*float64(max-min+1)) + min
}
