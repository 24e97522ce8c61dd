package main

import (
	"math/rand"
	"time"
)

// Random is the uniform source every simulation step draws from.
// Float64 returns a value in [0, 1).
type Random interface {
	Float64() float64
}

// Mulberry32 is a small fast PRNG with a single 32-bit state word.
// Its output is bit-for-bit reproducible for a given seed, which is what
// makes --seed runs comparable across machines.
type Mulberry32 struct {
	state uint32
}

// NewMulberry32 creates a generator starting from seed.
func NewMulberry32(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// Uint32 advances the state and returns the next mixed 32-bit value.
func (m *Mulberry32) Uint32() uint32 {
	m.state += 0x6D2B79F5
	t := m.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return t ^ (t >> 14)
}

// Float64 returns the next value normalized to [0, 1).
func (m *Mulberry32) Float64() float64 {
	return float64(m.Uint32()) / 4294967296.0
}

// newRandom picks the seeded generator when a seed was given and a
// time-seeded one otherwise.
func newRandom(seed *int64) Random {
	if seed != nil {
		return NewMulberry32(uint32(*seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// intn draws an integer in [0, n) from r.
func intn(r Random, n int) int {
	i := int(r.Float64() * float64(n))
	if i >= n {
		return n - 1
	}
	return i
}
