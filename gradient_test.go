package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestGradient_Golden(t *testing.T) {
	g := NewGradient(5, termenv.TrueColor)

	var buf bytes.Buffer
	for i := 0; i < g.steps(); i++ {
		c := g.Color(i)
		fmt.Fprintf(&buf, "%d %3d %3d %3d %q\n", i, c.R, c.G, c.B, g.Sequence(i))
	}

	gold := goldie.New(t)
	gold.Assert(t, "gradient_trail5", buf.Bytes())
}

func TestGradient_Monotonic(t *testing.T) {
	for n := 2; n <= 40; n++ {
		g := NewGradient(n, termenv.TrueColor)
		assert.Equal(t, n, g.steps())
		assert.Equal(t, white, g.Color(0), "head must be white for n=%d", n)
		assert.Equal(t, Color{0, 75, 0}, g.Color(n-1), "tail color for n=%d", n)

		for i := 1; i < n; i++ {
			prev, cur := g.Color(i-1), g.Color(i)
			assert.LessOrEqual(t, cur.R, prev.R, "red rises at n=%d i=%d", n, i)
			assert.LessOrEqual(t, cur.G, prev.G, "green rises at n=%d i=%d", n, i)
			assert.LessOrEqual(t, cur.B, prev.B, "blue rises at n=%d i=%d", n, i)
		}
	}
}

func TestGradient_SmoothstepMidpoint(t *testing.T) {
	g := NewGradient(3, termenv.TrueColor)
	assert.Equal(t, Color{32, 165, 16}, g.Color(1))
}

func TestGradient_SingleCell(t *testing.T) {
	g := NewGradient(1, termenv.TrueColor)
	assert.Equal(t, 1, g.steps())
	assert.Equal(t, white, g.Color(0))
	assert.Equal(t, "\x1b[38;2;255;255;255m", g.Sequence(0))
}

func TestColor_Sequence(t *testing.T) {
	c := Color{12, 200, 7}
	assert.Equal(t, "\x1b[38;2;12;200;7m", c.Sequence(termenv.TrueColor))
	assert.Equal(t, "#0cc807", c.Hex())
	assert.Empty(t, c.Sequence(termenv.Ascii))

	seq := c.Sequence(termenv.ANSI256)
	assert.True(t, strings.HasPrefix(seq, "\x1b[38;5;"), "got %q", seq)
	assert.True(t, strings.HasSuffix(seq, "m"), "got %q", seq)
}

func TestGradient_AsciiHasNoSequences(t *testing.T) {
	g := NewGradient(4, termenv.Ascii)
	for i := 0; i < g.steps(); i++ {
		assert.Empty(t, g.Sequence(i))
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, clamp(0, 255, -3))
	assert.Equal(t, 255.0, clamp(0, 255, 300))
	assert.Equal(t, 17.0, clamp(0, 255, 17))
	assert.Equal(t, uint8(255), channel(255.4))
	assert.Equal(t, uint8(108), channel(107.578125))
}
