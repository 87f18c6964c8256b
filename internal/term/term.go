// Package term displays grid buffers on a terminal, either by writing ANSI
// escape sequences to a stream or through a tcell screen.
package term

import (
	"errors"
	"fmt"
	"strings"

	"mtoohey.com/texui/internal/grid"
	"mtoohey.com/texui/internal/util"

	"github.com/mattn/go-runewidth"
)

// ErrInvalidPosition is returned when the cursor is moved outside of the
// terminal.
var ErrInvalidPosition = errors.New("invalid position")

// Surface is something a buffer can be flushed to.
type Surface interface {
	// MoveCursor moves the cursor to (x, y), where (0, 0) is the top left
	// corner of the terminal.
	MoveCursor(x, y int) error
	// Clear clears the terminal.
	Clear() error
	// Flush displays the rows of b.
	Flush(b *grid.Buffer, opts ...FlushOption) error
}

type flushConfig struct {
	x, y       int
	hasX, hasY bool
}

// FlushOption positions a flushed buffer.
type FlushOption func(*flushConfig)

// At positions the buffer with its top left corner at (x, y). See AtColumn
// and AtRow.
func At(x, y int) FlushOption {
	return func(c *flushConfig) {
		AtColumn(x)(c)
		AtRow(y)(c)
	}
}

// AtColumn shifts every row x columns to the right. A negative x trims -x
// columns from the start of every row instead.
func AtColumn(x int) FlushOption {
	return func(c *flushConfig) {
		c.x, c.hasX = x, true
	}
}

// AtRow moves the cursor to the start of row y before writing. A negative y
// starts at the top of the terminal and trims -y rows from the top of the
// buffer instead.
func AtRow(y int) FlushOption {
	return func(c *flushConfig) {
		c.y, c.hasY = y, true
	}
}

// layout is the result of positioning a buffer within a terminal.
type layout struct {
	rows []string
	// row is the terminal row of the first row, or -1 to write from wherever
	// the cursor is.
	row int
	// col is the number of columns to skip before every row.
	col int
}

func newLayout(b *grid.Buffer, termWidth int, opts []FlushOption) layout {
	var c flushConfig
	for _, opt := range opts {
		opt(&c)
	}

	l := layout{rows: b.Rows(), row: -1}

	if c.hasY {
		if c.y >= 0 {
			l.row = c.y
		} else {
			l.row = 0
			l.rows = l.rows[util.Min(-c.y, len(l.rows)):]
		}
	}

	width := termWidth
	if c.hasX {
		if c.x < 0 {
			for i, row := range l.rows {
				r := []rune(row)
				l.rows[i] = string(r[util.Min(-c.x, len(r)):])
			}
		} else {
			l.col = util.Min(c.x, termWidth-1)
			width = termWidth - c.x
		}
	}

	for i, row := range l.rows {
		l.rows[i] = clip(row, width)
	}

	return l
}

// clip truncates s to at most width display columns.
func clip(s string, width int) string {
	if width <= 0 {
		return ""
	}

	return runewidth.Truncate(s, width, "")
}

// ClearMode selects what Reset clears.
type ClearMode uint8

const (
	// ClearScreen clears only the buffer.
	ClearScreen ClearMode = iota
	// ClearAll clears both the buffer and the surface.
	ClearAll
)

// ClearModeNames lists the names accepted by ParseClearMode.
var ClearModeNames = []string{"screen", "all"}

func (m ClearMode) String() string {
	if int(m) < len(ClearModeNames) {
		return ClearModeNames[m]
	}

	return fmt.Sprintf("ClearMode(%d)", uint8(m))
}

// ParseClearMode returns the ClearMode named s.
func ParseClearMode(s string) (ClearMode, error) {
	for i, n := range ClearModeNames {
		if n == s {
			return ClearMode(i), nil
		}
	}

	return 0, fmt.Errorf("%w: clear mode %q, expected one of %s",
		grid.ErrInvalidOption, s, strings.Join(ClearModeNames, ", "))
}

// Reset clears b to its fill character and, with ClearAll, clears s too.
func Reset(s Surface, b *grid.Buffer, mode ClearMode) error {
	if mode > ClearAll {
		return fmt.Errorf("%w: clear mode %s", grid.ErrInvalidOption, mode)
	}

	b.Clear()
	if mode == ClearAll {
		if err := s.Clear(); err != nil {
			return fmt.Errorf("failed to clear surface: %w", err)
		}
	}

	return nil
}
