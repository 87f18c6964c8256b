package term

import (
	"bufio"
	"fmt"
	"io"

	"mtoohey.com/texui/internal/grid"
)

var (
	csiClear = []byte("\x1b[2J\x1b[H")
	newline  = []byte("\n")
)

// SizeFunc returns the current size of a terminal in columns and lines.
type SizeFunc func() (width, height int)

// Terminal is a Surface that writes ANSI escape sequences to a stream,
// usually stdout.
type Terminal struct {
	w    io.Writer
	size SizeFunc
}

var _ Surface = (*Terminal)(nil)

// NewTerminal creates a Terminal writing to w. If size is nil, the size of
// the terminal attached to stdout is used.
func NewTerminal(w io.Writer, size SizeFunc) *Terminal {
	if size == nil {
		size = grid.TerminalSize
	}

	return &Terminal{w: w, size: size}
}

func writeCursorPos(w *bufio.Writer, x, y int) {
	fmt.Fprintf(w, "\x1b[%d;%dH", y+1, x+1)
}

func writeCursorForward(w *bufio.Writer, n int) {
	if n <= 0 {
		return
	}

	fmt.Fprintf(w, "\x1b[%dC", n)
}

func (t *Terminal) checkPosition(x, y int) error {
	w, h := t.size()
	if !grid.Pt(x, y).In(grid.Pt(w, h)) {
		return fmt.Errorf("%w: %s in terminal of %dx%d", ErrInvalidPosition, grid.Pt(x, y), w, h)
	}

	return nil
}

func (t *Terminal) MoveCursor(x, y int) error {
	if err := t.checkPosition(x, y); err != nil {
		return err
	}

	bw := bufio.NewWriter(t.w)
	writeCursorPos(bw, x, y)
	return bw.Flush()
}

func (t *Terminal) Clear() error {
	_, err := t.w.Write(csiClear)
	return err
}

// Flush writes the rows of b followed by newlines. Rows are clipped to the
// width of the terminal b was created for.
func (t *Terminal) Flush(b *grid.Buffer, opts ...FlushOption) error {
	termWidth, _ := b.TerminalSize()
	l := newLayout(b, termWidth, opts)

	bw := bufio.NewWriter(t.w)
	if l.row >= 0 {
		if err := t.checkPosition(0, l.row); err != nil {
			return fmt.Errorf("failed to position buffer: %w", err)
		}
		writeCursorPos(bw, 0, l.row)
	}

	for _, row := range l.rows {
		writeCursorForward(bw, l.col)
		bw.WriteString(row)
		bw.Write(newline)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write buffer: %w", err)
	}

	return nil
}
