package main

import (
	"fmt"
	"math"

	"github.com/muesli/termenv"
)

// Color represents an RGB color value for terminal output.
type Color struct{ R, G, B uint8 }

// white is used for the sparkle highlight on drop heads.
var white = Color{255, 255, 255}

// Hex returns the color in #rrggbb form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Sequence returns the foreground escape sequence for c under profile p.
// The true color form is built from integers so channels are exact.
// Ascii yields an empty string.
func (c Color) Sequence(p termenv.Profile) string {
	if p == termenv.TrueColor {
		return fmt.Sprintf("%s%s;2;%d;%d;%dm", termenv.CSI, termenv.Foreground, c.R, c.G, c.B)
	}
	converted := p.Convert(termenv.RGBColor(c.Hex()))
	if converted == nil {
		return ""
	}
	seq := converted.Sequence(false)
	if seq == "" {
		return ""
	}
	return termenv.CSI + seq + "m"
}

// Gradient holds the per-trail-offset colors, head first.
type Gradient struct {
	colors    []Color
	sequences []string
}

// NewGradient computes the trail colors for trailLength offsets.
// A single-cell trail is treated as t=0, a bare white head.
func NewGradient(trailLength int, profile termenv.Profile) *Gradient {
	g := &Gradient{
		colors:    make([]Color, trailLength),
		sequences: make([]string, trailLength),
	}
	for i := range g.colors {
		t := 0.0
		if trailLength > 1 {
			t = float64(i) / float64(trailLength-1)
		}
		c := Color{
			R: channel(255 * math.Pow(1-t, 3)),
			G: channel(255 - 180*smoothstep(t)),
			B: channel(255 * math.Pow(1-t, 4)),
		}
		g.colors[i] = c
		g.sequences[i] = c.Sequence(profile)
	}
	return g
}

// steps returns the number of trail offsets covered.
func (g *Gradient) steps() int {
	return len(g.colors)
}

// Color returns the color for trail offset i.
func (g *Gradient) Color(i int) Color {
	return g.colors[i]
}

// Sequence returns the precomputed escape string for trail offset i.
func (g *Gradient) Sequence(i int) string {
	return g.sequences[i]
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// channel rounds v to the nearest integer within [0, 255].
func channel(v float64) uint8 {
	return uint8(clamp(0, 255, math.Round(v)))
}

// clamp limits a float64 value to [lo, hi].
func clamp(lo, hi, val float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
