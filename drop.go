package main

import (
	"math"
	"time"
)

// glyphs is the fixed ordered alphabet drops draw from.
var glyphs = []rune("アァカサタナハマヤャラワガザダバパイィキシチニヒミリヰギジヂビピウゥクスツヌフムユュルグズブヅプエェケセテネヘメレヱゲゼデベペオォコソトノホモヨョロヲゴゾドボポヴッン" +
	"0123456789" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ")

const (
	minSpeed     = 0.3
	maxSpeed     = 1.0
	stepInterval = 100 * time.Millisecond // divided by speed
	mutateChance = 0.3
)

// Drop is the falling trail owned by a single column.
type Drop struct {
	Position   float64       // Head row, may be off-screen in either direction
	Speed      float64       // In [minSpeed, maxSpeed), fixed for the drop's life
	Glyphs     []int         // Alphabet indices, head first, always trailLength long
	NextUpdate time.Duration // Clock time of the next advance
}

// NewDrop creates a drop for a screen of the given height. Scattered drops
// start a random distance above the screen; the rest sit just above row 0.
// Draw order is glyphs, speed, then position.
func NewDrop(random Random, trailLength, height int, now time.Duration, scatter bool) *Drop {
	d := &Drop{
		Glyphs:     make([]int, trailLength),
		NextUpdate: now,
	}
	for i := range d.Glyphs {
		d.Glyphs[i] = intn(random, len(glyphs))
	}
	d.Speed = minSpeed + random.Float64()*(maxSpeed-minSpeed)
	if scatter {
		d.Position = -(random.Float64() * float64(height))
	} else {
		d.Position = -float64(trailLength)
	}
	return d
}

// Due reports whether the drop should advance at now.
func (d *Drop) Due(now time.Duration) bool {
	return now >= d.NextUpdate
}

// Advance moves the head down one row, schedules the next step and
// occasionally swaps one glyph for shimmer.
func (d *Drop) Advance(random Random, now time.Duration) {
	d.Position++
	d.NextUpdate = now + time.Duration(float64(stepInterval)/d.Speed)
	if random.Float64() < mutateChance {
		slot := intn(random, len(d.Glyphs))
		d.Glyphs[slot] = intn(random, len(glyphs))
	}
}

// Row returns the screen row of trail offset i.
func (d *Drop) Row(i int) int {
	return int(math.Floor(d.Position)) - i
}

// Tail returns the row just past the end of the trail.
func (d *Drop) Tail() int {
	return d.Row(len(d.Glyphs))
}

// Exited reports whether the whole trail has left a screen of height rows.
func (d *Drop) Exited(height int) bool {
	return d.Position-float64(len(d.Glyphs)) > float64(height)
}

// Glyph returns the rune drawn at trail offset i.
func (d *Drop) Glyph(i int) rune {
	return glyphs[d.Glyphs[i]]
}
