package term

import (
	"bytes"
	"testing"

	"mtoohey.com/texui/internal/grid"
	"mtoohey.com/texui/internal/testutil/assert"

	"github.com/gdamore/tcell/v2"
)

func newBuffer(t *testing.T, rows ...string) *grid.Buffer {
	t.Helper()

	b, err := grid.New(len([]rune(rows[0])), len(rows), '.',
		grid.WithTerminalSize(10, 5), grid.AllowOversize())
	if err != nil {
		t.Fatalf("failed to create buffer: %s", err)
	}
	if _, err := b.DrawLines(0, 0, rows, grid.TextOptions{}); err != nil {
		t.Fatalf("failed to draw rows: %s", err)
	}

	return b
}

func newTerminal() (*Terminal, *bytes.Buffer) {
	var out bytes.Buffer
	return NewTerminal(&out, func() (int, int) { return 10, 5 }), &out
}

func TestTerminal_MoveCursor(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		term, out := newTerminal()
		assert.NoError(t, term.MoveCursor(3, 1))
		assert.Equal(t, "\x1b[2;4H", out.String())
	})

	t.Run("outside", func(t *testing.T) {
		term, out := newTerminal()
		assert.ErrorIs(t, term.MoveCursor(10, 0), ErrInvalidPosition)
		assert.ErrorIs(t, term.MoveCursor(0, 5), ErrInvalidPosition)
		assert.ErrorIs(t, term.MoveCursor(-1, 0), ErrInvalidPosition)
		assert.Equal(t, "", out.String())
	})
}

func TestTerminal_Clear(t *testing.T) {
	term, out := newTerminal()
	assert.NoError(t, term.Clear())
	assert.Equal(t, "\x1b[2J\x1b[H", out.String())
}

func TestTerminal_Flush(t *testing.T) {
	t.Run("in place", func(t *testing.T) {
		term, out := newTerminal()
		assert.NoError(t, term.Flush(newBuffer(t, "abcd", "efgh")))
		assert.Equal(t, "abcd\nefgh\n", out.String())
	})

	t.Run("positioned", func(t *testing.T) {
		term, out := newTerminal()
		assert.NoError(t, term.Flush(newBuffer(t, "abcd", "efgh"), At(2, 1)))
		assert.Equal(t, "\x1b[2;1H\x1b[2Cabcd\n\x1b[2Cefgh\n", out.String())
	})

	t.Run("rows trimmed from the top", func(t *testing.T) {
		term, out := newTerminal()
		assert.NoError(t, term.Flush(newBuffer(t, "abcd", "efgh", "ijkl"), AtRow(-2)))
		assert.Equal(t, "\x1b[1;1Hijkl\n", out.String())
	})

	t.Run("every row trimmed", func(t *testing.T) {
		term, out := newTerminal()
		assert.NoError(t, term.Flush(newBuffer(t, "abcd"), AtRow(-3)))
		assert.Equal(t, "\x1b[1;1H", out.String())
	})

	t.Run("columns trimmed from the left", func(t *testing.T) {
		term, out := newTerminal()
		assert.NoError(t, term.Flush(newBuffer(t, "abcd", "efgh"), AtColumn(-3)))
		assert.Equal(t, "d\nh\n", out.String())
	})

	t.Run("clipped on the right", func(t *testing.T) {
		term, out := newTerminal()
		assert.NoError(t, term.Flush(newBuffer(t, "abcd", "efgh"), AtColumn(8)))
		assert.Equal(t, "\x1b[8Cab\n\x1b[8Cef\n", out.String())
	})

	t.Run("past the right edge", func(t *testing.T) {
		term, out := newTerminal()
		assert.NoError(t, term.Flush(newBuffer(t, "abcd"), AtColumn(12)))
		assert.Equal(t, "\x1b[9C\n", out.String())
	})

	t.Run("wider than the terminal", func(t *testing.T) {
		term, out := newTerminal()
		assert.NoError(t, term.Flush(newBuffer(t, "abcdefghijkl")))
		assert.Equal(t, "abcdefghij\n", out.String())
	})

	t.Run("wide characters", func(t *testing.T) {
		term, out := newTerminal()
		assert.NoError(t, term.Flush(newBuffer(t, "界界界界界界")))
		assert.Equal(t, "界界界界界\n", out.String())

		out.Reset()
		assert.NoError(t, term.Flush(newBuffer(t, "界界界界界界"), AtColumn(5)))
		assert.Equal(t, "\x1b[5C界界\n", out.String())
	})

	t.Run("row outside the terminal", func(t *testing.T) {
		term, out := newTerminal()
		assert.ErrorIs(t, term.Flush(newBuffer(t, "abcd"), AtRow(5)), ErrInvalidPosition)
		assert.Equal(t, "", out.String())
	})
}

func TestReset(t *testing.T) {
	t.Run("screen", func(t *testing.T) {
		term, out := newTerminal()
		b := newBuffer(t, "abcd")
		assert.NoError(t, Reset(term, b, ClearScreen))
		assert.Equal(t, []string{"...."}, b.Rows())
		assert.Equal(t, "", out.String())
	})

	t.Run("all", func(t *testing.T) {
		term, out := newTerminal()
		b := newBuffer(t, "abcd")
		assert.NoError(t, Reset(term, b, ClearAll))
		assert.Equal(t, []string{"...."}, b.Rows())
		assert.Equal(t, "\x1b[2J\x1b[H", out.String())
	})

	t.Run("invalid", func(t *testing.T) {
		term, _ := newTerminal()
		b := newBuffer(t, "abcd")
		assert.ErrorIs(t, Reset(term, b, ClearMode(2)), grid.ErrInvalidOption)
		assert.Equal(t, []string{"abcd"}, b.Rows())
	})
}

func TestParseClearMode(t *testing.T) {
	actual, err := ParseClearMode("all")
	assert.NoError(t, err)
	assert.Equal(t, ClearAll, actual)

	_, err = ParseClearMode("everything")
	assert.ErrorIs(t, err, grid.ErrInvalidOption)
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()

	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("failed to initialize screen: %s", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(10, 5)

	return s
}

func screenRow(s tcell.SimulationScreen, y, n int) string {
	var r []rune
	for x := 0; x < n; x++ {
		c, _, _, _ := s.GetContent(x, y)
		r = append(r, c)
	}

	return string(r)
}

func TestScreen_Flush(t *testing.T) {
	t.Run("top left", func(t *testing.T) {
		s := newScreen(t)
		assert.NoError(t, NewScreen(s, tcell.StyleDefault).Flush(newBuffer(t, "abcd", "efgh")))
		assert.Equal(t, "abcd  ", screenRow(s, 0, 6))
		assert.Equal(t, "efgh  ", screenRow(s, 1, 6))
	})

	t.Run("positioned", func(t *testing.T) {
		s := newScreen(t)
		assert.NoError(t, NewScreen(s, tcell.StyleDefault).Flush(newBuffer(t, "abcd", "efgh"), At(7, 3)))
		assert.Equal(t, "       abc", screenRow(s, 3, 10))
		assert.Equal(t, "       efg", screenRow(s, 4, 10))
	})

	t.Run("trimmed", func(t *testing.T) {
		s := newScreen(t)
		assert.NoError(t, NewScreen(s, tcell.StyleDefault).Flush(newBuffer(t, "abcd", "efgh"), At(-1, -1)))
		assert.Equal(t, "fgh ", screenRow(s, 0, 4))
		assert.Equal(t, "    ", screenRow(s, 1, 4))
	})

	t.Run("row outside the screen", func(t *testing.T) {
		s := newScreen(t)
		assert.ErrorIs(t, NewScreen(s, tcell.StyleDefault).Flush(newBuffer(t, "abcd"), AtRow(5)), ErrInvalidPosition)
	})
}

func TestScreen_MoveCursor(t *testing.T) {
	s := newScreen(t)
	screen := NewScreen(s, tcell.StyleDefault)

	assert.NoError(t, screen.MoveCursor(4, 2))
	x, y, visible := s.GetCursor()
	assert.Equal(t, 4, x)
	assert.Equal(t, 2, y)
	assert.True(t, visible)

	assert.ErrorIs(t, screen.MoveCursor(10, 2), ErrInvalidPosition)
}
