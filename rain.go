package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Rain ties the engine to a clock, a frame budget and a terminal, and runs
// them on a single goroutine so resizes and shutdown never land mid-frame.
type Rain struct {
	engine    *Engine
	scheduler *Scheduler
	clock     Clock
	terminal  Terminal
	life      lifecycle
}

// NewRain creates a rain sized to the terminal's current dimensions.
func NewRain(cfg *Config, out io.Writer, terminal Terminal, clock Clock) (*Rain, error) {
	engine, err := NewEngine(cfg, newRandom(cfg.Seed), out)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	engine.Resize(terminal.Size())
	return &Rain{
		engine:    engine,
		scheduler: NewScheduler(cfg.FPS),
		clock:     clock,
		terminal:  terminal,
	}, nil
}

// Run animates until ctx is cancelled or a write fails. The terminal is
// restored on every exit path.
func (r *Rain) Run(ctx context.Context) (err error) {
	if !r.life.running() {
		return nil
	}
	defer func() {
		if p := recover(); p != nil {
			r.terminal.Restore()
			panic(p)
		}
	}()
	defer func() {
		if stopErr := r.Stop(); err == nil && stopErr != nil {
			err = fmt.Errorf("restore screen: %w", stopErr)
		}
	}()

	if err := r.engine.Start(); err != nil {
		return err
	}
	width, height := r.engine.Size()
	slog.Debug("rain started", "width", width, "height", height, "interval", r.scheduler.Interval())

	yield := time.NewTimer(yieldInterval)
	defer yield.Stop()

	for r.life.running() {
		if now := r.clock.Now(); r.scheduler.Due(now) {
			if err := r.engine.Render(now); err != nil {
				return fmt.Errorf("render frame: %w", err)
			}
		}
		yield.Reset(yieldInterval)
		select {
		case <-ctx.Done():
			slog.Debug("rain stopping", "cause", ctx.Err())
			return nil
		case ev := <-r.terminal.Resizes():
			r.engine.Resize(ev.Width, ev.Height)
		case <-yield.C:
		}
	}
	return nil
}

// Stop tears the rain down. Only the first call does anything.
func (r *Rain) Stop() error {
	var err error
	r.life.stop(func() {
		r.terminal.Close()
		err = r.engine.Close()
		stats := r.engine.Stats()
		slog.Debug("rain stopped", "frames", stats.Frames, "recycles", stats.Recycles)
	})
	return err
}
