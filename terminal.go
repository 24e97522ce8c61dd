package main

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Fallback dimensions when the terminal cannot report its size.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// ResizeEvent carries the terminal's new dimensions.
type ResizeEvent struct {
	Width  int
	Height int
}

// Terminal defines what the rain needs from the terminal besides a sink.
type Terminal interface {
	Size() (width, height int)   // Current dimensions, never zero
	Resizes() <-chan ResizeEvent // Resize notifications
	Close()                      // Stop watching for resizes
	Restore()                    // Emergency reset after a crash
}

// StdTerminal implements Terminal for the process's standard output.
type StdTerminal struct {
	out    *os.File
	resize *resizeWatcher
}

// NewStdTerminal starts watching out for size changes.
func NewStdTerminal(out *os.File) *StdTerminal {
	t := &StdTerminal{out: out}
	t.resize = newResizeWatcher(t.Size)
	t.resize.start()
	return t
}

// Size returns the terminal's width and height in cells.
func (t *StdTerminal) Size() (width, height int) {
	return terminalSize(int(t.out.Fd()))
}

// Resizes returns the resize event channel.
func (t *StdTerminal) Resizes() <-chan ResizeEvent {
	return t.resize.events()
}

// Close stops the resize watcher.
func (t *StdTerminal) Close() {
	t.resize.stop()
}

// Restore resets colors and shows the cursor.
func (t *StdTerminal) Restore() {
	restoreTerminal(t.out)
}

// IsTerminal reports whether out is attached to a terminal.
func (t *StdTerminal) IsTerminal() bool {
	return term.IsTerminal(int(t.out.Fd()))
}

// terminalSize queries fd and falls back to 80x24.
func terminalSize(fd int) (width, height int) {
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return defaultWidth, defaultHeight
	}
	return w, h
}

// restoreTerminal is the last-resort reset used when the loop dies
// without reaching Engine.Close.
func restoreTerminal(out io.Writer) {
	o := termenv.NewOutput(out, termenv.WithProfile(termenv.Ascii))
	o.Reset()
	o.ShowCursor()
}
