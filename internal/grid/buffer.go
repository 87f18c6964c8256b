// Package grid implements an in-memory grid of characters, along with the
// algorithms used to draw on it: lines, boxes, flood fills and laid-out text.
//
// A Buffer is drawn on in place and later handed to a surface in the term
// package to be displayed. Drawing operations validate their arguments up
// front and fail without changing anything when they are invalid; once
// validated, cells that land outside of the buffer or that are excluded by a
// mask are skipped silently, so that shapes render as much as fits.
package grid

import (
	"fmt"
)

// Full can be passed as a width or height to New to use the corresponding
// dimension of the terminal.
const Full = -1

// Buffer is a fixed-size grid of characters. Its dimensions never change
// after it has been created.
type Buffer struct {
	width, height int
	fill          rune
	content       [][]rune

	// terminal dimensions captured at creation, used only when flushing
	termWidth, termHeight int
}

type config struct {
	allowOversize bool
	termSize      func() (int, int)
}

// Option configures New.
type Option func(*config)

// AllowOversize permits buffers larger than the terminal.
func AllowOversize() Option {
	return func(c *config) {
		c.allowOversize = true
	}
}

// WithTerminalSize makes the buffer assume a terminal of w columns and h
// lines instead of querying stdout.
func WithTerminalSize(w, h int) Option {
	return func(c *config) {
		c.termSize = func() (int, int) { return w, h }
	}
}

// New creates a buffer of the given size with every cell set to fill. Either
// dimension may be Full.
//
// The usable terminal height is one less than the number of terminal lines,
// leaving room for the newline written after a flush. New fails with
// ErrInvalidSize if the buffer does not fit within the terminal, unless
// AllowOversize is provided.
func New(width, height int, fill rune, opts ...Option) (*Buffer, error) {
	c := config{termSize: TerminalSize}
	for _, opt := range opts {
		opt(&c)
	}

	termWidth, termLines := c.termSize()
	termHeight := termLines - 1

	if width == Full {
		width = termWidth
	}
	if height == Full {
		height = termHeight
	}

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d, expected positive dimensions", ErrInvalidSize, width, height)
	}

	if !c.allowOversize && !Pt(width, height).In(Pt(termWidth+1, termHeight+1)) {
		return nil, fmt.Errorf("%w: %dx%d does not fit in terminal of %dx%d",
			ErrInvalidSize, width, height, termWidth, termHeight)
	}

	if err := checkRune(fill); err != nil {
		return nil, fmt.Errorf("invalid fill: %w", err)
	}

	b := &Buffer{
		width:      width,
		height:     height,
		fill:       fill,
		termWidth:  termWidth,
		termHeight: termHeight,
	}
	b.content = b.blank()

	return b, nil
}

func (b *Buffer) blank() [][]rune {
	content := make([][]rune, b.height)
	for y := range content {
		row := make([]rune, b.width)
		for x := range row {
			row[x] = b.fill
		}
		content[y] = row
	}

	return content
}

// Width returns the number of columns in b.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the number of rows in b.
func (b *Buffer) Height() int {
	return b.height
}

// Fill returns the character b is cleared to.
func (b *Buffer) Fill() rune {
	return b.fill
}

// TerminalSize returns the terminal dimensions captured when b was created.
// The height excludes the line reserved for the trailing newline.
func (b *Buffer) TerminalSize() (width, height int) {
	return b.termWidth, b.termHeight
}

func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer %dx%d (%d) | default fill: %q",
		b.width, b.height, b.width*b.height, b.fill)
}

// Clear resets every cell to the fill character.
func (b *Buffer) Clear() {
	for _, row := range b.content {
		for x := range row {
			row[x] = b.fill
		}
	}
}

// Contains reports whether any cell holds r.
func (b *Buffer) Contains(r rune) bool {
	for _, row := range b.content {
		for _, c := range row {
			if c == r {
				return true
			}
		}
	}

	return false
}

// Rows returns the content of b as one string per row.
func (b *Buffer) Rows() []string {
	rows := make([]string, b.height)
	for y, row := range b.content {
		rows[y] = string(row)
	}

	return rows
}

// valid reports whether (x, y) addresses a cell of b.
func (b *Buffer) valid(x, y int) bool {
	return Pt(x, y).In(Pt(b.width, b.height))
}

func (b *Buffer) checkBounds(x, y int) error {
	if !b.valid(x, y) {
		return fmt.Errorf("%w: %s in %dx%d buffer", ErrOutOfBounds, Pt(x, y), b.width, b.height)
	}

	return nil
}

// Get returns the character at (x, y).
func (b *Buffer) Get(x, y int) (rune, error) {
	if err := b.checkBounds(x, y); err != nil {
		return 0, err
	}

	return b.content[y][x], nil
}

// SetChar writes c at (x, y). If restrict is non-empty, the write only
// happens when the current character at (x, y) is one of restrict.
func (b *Buffer) SetChar(x, y int, c rune, restrict string) error {
	if err := checkRune(c); err != nil {
		return err
	}
	if err := checkSet("restrict", restrict); err != nil {
		return err
	}
	if err := b.checkBounds(x, y); err != nil {
		return err
	}

	b.put(x, y, c, restrict)
	return nil
}

// put writes c at (x, y) if the position is valid and the existing cell is
// allowed by restrict. It reports whether the write happened.
func (b *Buffer) put(x, y int, c rune, restrict string) bool {
	if !b.valid(x, y) || !inSet(restrict, b.content[y][x]) {
		return false
	}

	b.content[y][x] = c
	return true
}
