package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

const sparkleChance = 0.1

// EngineStats counts work done over the engine's lifetime.
type EngineStats struct {
	Frames   int
	Recycles int
}

// Engine owns the drop grid and turns it into terminal updates.
type Engine struct {
	width, height int
	trailLength   int
	drops         []*Drop
	random        Random
	gradient      *Gradient
	sparkle       string
	screen        *Screen
	clock         time.Duration // Time of the most recent render
	started       bool
	stats         EngineStats
}

// NewEngine creates an engine drawing to out. Call Resize before the first
// Render to size the grid.
func NewEngine(cfg *Config, random Random, out io.Writer) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Engine{
		trailLength: cfg.TrailLength,
		random:      random,
		gradient:    NewGradient(cfg.TrailLength, cfg.Profile),
		sparkle:     white.Sequence(cfg.Profile),
		screen:      NewScreen(out),
	}, nil
}

// Start hides the cursor and clears the screen ahead of the first frame.
func (e *Engine) Start() error {
	e.screen.HideCursor()
	e.screen.Clear()
	e.started = true
	if err := e.screen.Flush(); err != nil {
		return fmt.Errorf("start screen: %w", err)
	}
	return nil
}

// Close puts the terminal back: default color, visible cursor, clean
// screen, cursor at the origin.
func (e *Engine) Close() error {
	e.screen.ResetColor()
	e.screen.ShowCursor()
	e.screen.Clear()
	return e.screen.Flush()
}

// Resize adopts new terminal dimensions. Existing columns keep their drops,
// new columns get scattered ones and the screen is cleared.
func (e *Engine) Resize(width, height int) {
	e.height = height
	if width != e.width {
		drops := make([]*Drop, width)
		kept := copy(drops, e.drops)
		for col := kept; col < width; col++ {
			drops[col] = e.newDrop(true)
		}
		e.drops = drops
		e.width = width
	}
	e.screen.Resize(e.width, e.height)
	if e.started {
		e.screen.Clear()
	}
	slog.Debug("engine resized", "width", e.width, "height", e.height, "trail", e.gradient.steps())
}

// Render runs one frame pass at clock time now and flushes it.
// Columns are visited in ascending order so seeded runs consume the
// random stream identically.
func (e *Engine) Render(now time.Duration) error {
	e.clock = now
	for col := range e.drops {
		if e.drops[col].Due(now) {
			e.advance(col, now)
		}
		e.draw(col, e.drops[col])
	}
	e.stats.Frames++
	return e.screen.Flush()
}

// advance erases the cell leaving the trail, steps the drop and recycles
// it once it has fallen past the bottom.
func (e *Engine) advance(col int, now time.Duration) {
	d := e.drops[col]
	e.screen.Erase(d.Tail(), col)
	d.Advance(e.random, now)
	if d.Exited(e.height) {
		e.drops[col] = e.newDrop(false)
		e.stats.Recycles++
	}
}

func (e *Engine) draw(col int, d *Drop) {
	for i := range d.Glyphs {
		row := d.Row(i)
		if row < 0 || row >= e.height {
			continue
		}
		color := e.gradient.Sequence(i)
		if i == 0 && e.random.Float64() < sparkleChance {
			color = e.sparkle
		}
		e.screen.Put(row, col, d.Glyph(i), color)
	}
}

func (e *Engine) newDrop(scatter bool) *Drop {
	return NewDrop(e.random, e.trailLength, e.height, e.clock, scatter)
}

// Drops returns the current drop grid, indexed by column.
func (e *Engine) Drops() []*Drop {
	return e.drops
}

// Stats returns the engine counters.
func (e *Engine) Stats() EngineStats {
	return e.stats
}

// Size returns the grid dimensions.
func (e *Engine) Size() (width, height int) {
	return e.width, e.height
}
