package common

import "time"

// SeededRNG implements a Mulberry32 seeded pseudo-random number generator.
// Spawning draws every random decision from it so a run can be replayed from its seed.
type SeededRNG struct {
	state       uint32
	initialSeed uint32
}

// NewSeededRNG creates a new seeded random number generator.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{
		state:       seed,
		initialSeed: seed,
	}
}

// SetSeed sets a new seed and resets the generator state.
func (r *SeededRNG) SetSeed(seed uint32) {
	r.state = seed
	r.initialSeed = seed
}

// Seed returns the seed the generator was last reset to.
func (r *SeededRNG) Seed() uint32 {
	return r.initialSeed
}

// Reset resets the generator to its initial seed.
func (r *SeededRNG) Reset() {
	r.state = r.initialSeed
}

// Random returns the next value in [0, 1).
func (r *SeededRNG) Random() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// RandomInt returns an integer in [min, max).
func (r *SeededRNG) RandomInt(min, max int) int {
	return int(r.Random()*float64(max-min)) + min
}

// RandomFloat returns a float in [min, max).
func (r *SeededRNG) RandomFloat(min, max float64) float64 {
	return r.Random()*(max-min) + min
}

// Between returns an integer in [min, max], both ends inclusive.
func (r *SeededRNG) Between(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return r.RandomInt(min, max+1)
}

// Chance reports true with probability p.
func (r *SeededRNG) Chance(p float64) bool {
	return r.Random() < p
}

// RunSeed derives a deterministic seed for the n-th run played from a base seed.
func RunSeed(baseSeed uint32, run int) uint32 {
	seed := baseSeed ^ (uint32(run) * 2654435761)
	seed = (seed ^ (seed >> 16)) * 0x85ebca6b
	seed = (seed ^ (seed >> 13)) * 0xc2b2ae35
	return seed ^ (seed >> 16)
}

// DaySeed derives a seed shared by every player on the same UTC day.
func DaySeed(t time.Time) uint32 {
	y, m, d := t.UTC().Date()
	return RunSeed(uint32(y*10000+int(m)*100+d), 0)
}
