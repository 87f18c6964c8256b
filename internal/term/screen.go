package term

import (
	"fmt"

	"mtoohey.com/texui/internal/grid"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Screen is a Surface backed by a tcell.Screen. The screen must already be
// initialized.
type Screen struct {
	screen tcell.Screen
	style  tcell.Style
}

var _ Surface = (*Screen)(nil)

// NewScreen wraps s, drawing every cell with style.
func NewScreen(s tcell.Screen, style tcell.Style) *Screen {
	return &Screen{screen: s, style: style}
}

func (s *Screen) MoveCursor(x, y int) error {
	w, h := s.screen.Size()
	if !grid.Pt(x, y).In(grid.Pt(w, h)) {
		return fmt.Errorf("%w: %s in screen of %dx%d", ErrInvalidPosition, grid.Pt(x, y), w, h)
	}

	s.screen.ShowCursor(x, y)
	s.screen.Show()
	return nil
}

func (s *Screen) Clear() error {
	s.screen.Clear()
	s.screen.Show()
	return nil
}

// Flush draws the rows of b onto the screen and shows it. Without a row
// option the buffer is drawn from the top of the screen. Rows are clipped to
// the current width of the screen.
func (s *Screen) Flush(b *grid.Buffer, opts ...FlushOption) error {
	w, h := s.screen.Size()
	l := newLayout(b, w, opts)

	y := l.row
	if y < 0 {
		y = 0
	}
	if y >= h {
		return fmt.Errorf("failed to position buffer: %w: row %d in screen of %dx%d",
			ErrInvalidPosition, y, w, h)
	}

	for i, row := range l.rows {
		x := l.col
		for _, r := range row {
			s.screen.SetContent(x, y+i, r, nil, s.style)
			x += runewidth.RuneWidth(r)
		}
	}

	s.screen.Show()
	return nil
}
