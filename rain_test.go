package main

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTerminal reports a fixed size and lets tests push resize events.
type fakeTerminal struct {
	width, height int
	resizes       chan ResizeEvent
	closed        int
	restored      int
}

func newFakeTerminal(width, height int) *fakeTerminal {
	return &fakeTerminal{width: width, height: height, resizes: make(chan ResizeEvent, 1)}
}

func (f *fakeTerminal) Size() (int, int) { return f.width, f.height }

func (f *fakeTerminal) Resizes() <-chan ResizeEvent { return f.resizes }

func (f *fakeTerminal) Close() { f.closed++ }

func (f *fakeTerminal) Restore() { f.restored++ }

// stepClock advances by a fixed step on every reading.
type stepClock struct {
	mu   sync.Mutex
	now  time.Duration
	step time.Duration
}

func (c *stepClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += c.step
	return c.now
}

const restoreSeq = "\x1b[0m\x1b[?25h\x1b[2J\x1b[1;1H"

func TestRain_RunUntilCancelled(t *testing.T) {
	term := newFakeTerminal(20, 8)
	var out bytes.Buffer
	rain, err := NewRain(testConfig(5, 42), &out, term, &stepClock{step: 10 * time.Millisecond})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	require.NoError(t, rain.Run(ctx))

	s := out.String()
	assert.True(t, strings.HasPrefix(s, "\x1b[?25l\x1b[2J\x1b[1;1H"), "starts by hiding the cursor")
	assert.True(t, strings.HasSuffix(s, restoreSeq), "ends with the terminal restored")
	assert.Equal(t, 1, strings.Count(s, "\x1b[?25h"), "cursor shown exactly once")
	assert.Positive(t, rain.engine.Stats().Frames)
	assert.Equal(t, 1, term.closed)
	assert.Equal(t, stateStopped, rain.life.current())

	n := out.Len()
	require.NoError(t, rain.Stop())
	assert.Equal(t, n, out.Len(), "second stop must not write")
	assert.Equal(t, 1, term.closed)
}

func TestRain_AppliesResize(t *testing.T) {
	term := newFakeTerminal(10, 5)
	var out bytes.Buffer
	rain, err := NewRain(testConfig(4, 1), &out, term, &stepClock{step: time.Millisecond})
	require.NoError(t, err)

	term.resizes <- ResizeEvent{Width: 14, Height: 7}

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()
	require.NoError(t, rain.Run(ctx))

	w, h := rain.engine.Size()
	assert.Equal(t, 14, w)
	assert.Equal(t, 7, h)
	assert.Len(t, rain.engine.Drops(), 14)
}

func TestRain_StopBeforeRun(t *testing.T) {
	term := newFakeTerminal(10, 5)
	var out bytes.Buffer
	rain, err := NewRain(testConfig(4, 1), &out, term, &stepClock{step: time.Millisecond})
	require.NoError(t, err)

	require.NoError(t, rain.Stop())
	require.NoError(t, rain.Run(context.Background()), "a stopped rain returns at once")
	assert.Equal(t, 1, term.closed)
	assert.Zero(t, rain.engine.Stats().Frames)
}

func TestRain_WriteFailureIsFatal(t *testing.T) {
	term := newFakeTerminal(10, 5)
	rain, err := NewRain(testConfig(4, 1), failingWriter{}, term, &stepClock{step: time.Millisecond})
	require.NoError(t, err)

	err = rain.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errClosedPipe)
	assert.Equal(t, 1, term.closed)
}

func TestRain_RestoresOnPanic(t *testing.T) {
	term := newFakeTerminal(10, 5)
	var out bytes.Buffer
	rain, err := NewRain(testConfig(4, 1), &out, term, panicClock{})
	require.NoError(t, err)

	assert.Panics(t, func() { _ = rain.Run(context.Background()) })
	assert.Equal(t, 1, term.restored)
	assert.Equal(t, 1, term.closed)
}

type panicClock struct{}

func (panicClock) Now() time.Duration { panic("clock failure") }

func TestNewRain_InvalidConfig(t *testing.T) {
	cfg := testConfig(0, 1)
	_, err := NewRain(cfg, &bytes.Buffer{}, newFakeTerminal(4, 4), &stepClock{})
	assert.Error(t, err)
}
