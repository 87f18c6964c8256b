package grid

import (
	"testing"

	"mtoohey.com/texui/internal/testutil/assert"
)

func TestParseBoxStyle(t *testing.T) {
	for _, tc := range []struct {
		style    string
		expected boxStyle
	}{
		{"#", boxStyle{'#', '#', '#', '#', '#', '#', '#', '#'}},
		{"-|", boxStyle{'-', '-', '|', '|', '-', '-', '-', '-'}},
		{"-|+", boxStyle{'-', '-', '|', '|', '+', '+', '+', '+'}},
		{"^v<>", boxStyle{'^', 'v', '<', '>', '^', '^', 'v', 'v'}},
		{"^v<>+", boxStyle{'^', 'v', '<', '>', '+', '+', '+', '+'}},
		{"──││┌┐└┘", boxStyle{'─', '─', '│', '│', '┌', '┐', '└', '┘'}},
	} {
		actual, err := parseBoxStyle(tc.style)
		assert.NoError(t, err)
		assert.Equal(t, tc.expected, actual)
	}

	t.Run("invalid length", func(t *testing.T) {
		for _, style := range []string{"", "123456", "1234567", "123456789"} {
			_, err := parseBoxStyle(style)
			assert.ErrorIs(t, err, ErrInvalidStyle)
		}
	})

	t.Run("non-printable", func(t *testing.T) {
		_, err := parseBoxStyle("-\n")
		assert.ErrorIs(t, err, ErrInvalidStyle)
	})
}

func TestBuffer_Box(t *testing.T) {
	t.Run("corners", func(t *testing.T) {
		b := newBuffer(t, 5, 3, '.')
		assert.NoError(t, b.Box(0, 0, 4, 2, "-|+", ""))
		assert.Equal(t, []string{"+---+", "|...|", "+---+"}, b.Rows())
	})

	t.Run("eight characters", func(t *testing.T) {
		b := newBuffer(t, 4, 3, ' ')
		assert.NoError(t, b.Box(0, 0, 3, 2, "─═│┃┌┐└┘", ""))
		assert.Equal(t, []string{"┌──┐", "│  ┃", "└══┘"}, b.Rows())
	})

	t.Run("corners respect restrict", func(t *testing.T) {
		b := newBuffer(t, 5, 3, '.')
		assert.NoError(t, b.SetChar(0, 0, 'X', ""))
		assert.NoError(t, b.Box(0, 0, 4, 2, "-|+", "."))
		assert.Equal(t, []string{"X---+", "|...|", "+---+"}, b.Rows())
	})

	t.Run("partially outside", func(t *testing.T) {
		b := newBuffer(t, 5, 5, '.')
		assert.NoError(t, b.Box(-2, -2, 2, 2, "#", ""))
		assert.Equal(t, []string{
			"..#..",
			"..#..",
			"###..",
			".....",
			".....",
		}, b.Rows())
	})

	t.Run("invalid style", func(t *testing.T) {
		b := newBuffer(t, 5, 3, '.')
		assert.ErrorIs(t, b.Box(0, 0, 4, 2, "1234567", ""), ErrInvalidStyle)
		assert.Equal(t, []string{".....", ".....", "....."}, b.Rows())
	})
}
