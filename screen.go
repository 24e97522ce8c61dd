package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// cell is what the terminal currently shows at one position.
type cell struct {
	glyph rune
	color string
}

var blank = cell{glyph: ' '}

// Screen encodes cell writes as escape sequences and keeps a shadow of the
// terminal so unchanged cells are never rewritten. Writes are buffered and
// go out in a single Write per Flush.
type Screen struct {
	out           io.Writer
	buf           bytes.Buffer
	cells         []cell
	width, height int
	color         string // Foreground currently active on the terminal
}

// NewScreen creates a new Screen with the given output writer.
func NewScreen(out io.Writer) *Screen {
	return &Screen{out: out}
}

// Resize reallocates the shadow as all blank. It does not touch the
// terminal; callers clear when the old contents are stale.
func (s *Screen) Resize(width, height int) {
	s.width, s.height = width, height
	s.cells = make([]cell, width*height)
	for i := range s.cells {
		s.cells[i] = blank
	}
}

// Clear queues a full-screen clear and forgets the shadow contents.
func (s *Screen) Clear() {
	fmt.Fprintf(&s.buf, termenv.CSI+termenv.EraseDisplaySeq, 2)
	s.home()
	for i := range s.cells {
		s.cells[i] = blank
	}
}

// HideCursor queues a cursor hide.
func (s *Screen) HideCursor() {
	s.buf.WriteString(termenv.CSI + termenv.HideCursorSeq)
}

// ShowCursor queues a cursor show.
func (s *Screen) ShowCursor() {
	s.buf.WriteString(termenv.CSI + termenv.ShowCursorSeq)
}

// ResetColor queues an attribute reset.
func (s *Screen) ResetColor() {
	s.buf.WriteString(termenv.CSI + termenv.ResetSeq + "m")
	s.color = ""
}

// Put draws glyph at row, col (0-based) unless the terminal already shows it.
func (s *Screen) Put(row, col int, glyph rune, color string) {
	idx, ok := s.index(row, col)
	if !ok {
		return
	}
	c := cell{glyph: glyph, color: color}
	if s.cells[idx] == c {
		return
	}
	s.cells[idx] = c
	s.moveTo(row, col)
	if color != "" && color != s.color {
		s.buf.WriteString(color)
		s.color = color
	}
	s.buf.WriteRune(glyph)
}

// Erase blanks the cell at row, col if it holds anything.
func (s *Screen) Erase(row, col int) {
	idx, ok := s.index(row, col)
	if !ok || s.cells[idx] == blank {
		return
	}
	s.cells[idx] = blank
	s.moveTo(row, col)
	s.buf.WriteByte(' ')
}

// pending returns the number of bytes waiting to be flushed.
func (s *Screen) pending() int {
	return s.buf.Len()
}

// Flush writes everything queued since the last flush in one call.
func (s *Screen) Flush() error {
	if s.buf.Len() == 0 {
		return nil
	}
	_, err := s.out.Write(s.buf.Bytes())
	s.buf.Reset()
	return err
}

func (s *Screen) index(row, col int) (int, bool) {
	if row < 0 || row >= s.height || col < 0 || col >= s.width {
		return 0, false
	}
	return row*s.width + col, true
}

// moveTo writes a cursor position, converting to the terminal's 1-based rows.
func (s *Screen) moveTo(row, col int) {
	fmt.Fprintf(&s.buf, termenv.CSI+termenv.CursorPositionSeq, row+1, col+1)
}

func (s *Screen) home() {
	s.moveTo(0, 0)
}
