package grid

import (
	"testing"

	"mtoohey.com/texui/internal/testutil/assert"
)

func TestParseCell(t *testing.T) {
	t.Run("ascii", func(t *testing.T) {
		actual, err := ParseCell("#")
		assert.NoError(t, err)
		assert.Equal(t, '#', actual)
	})

	t.Run("multibyte", func(t *testing.T) {
		actual, err := ParseCell("─")
		assert.NoError(t, err)
		assert.Equal(t, '─', actual)
	})

	for name, s := range map[string]string{
		"empty":              "",
		"two characters":     "ab",
		"combining sequence": "e\u0301",
		"control":            "\n",
		"invalid utf-8":      "\xff",
	} {
		s := s
		t.Run(name, func(t *testing.T) {
			_, err := ParseCell(s)
			assert.ErrorIs(t, err, ErrInvalidCharacter)
		})
	}
}

func TestPrintable(t *testing.T) {
	assert.Equal(t, "ab c", printable("a\tb \x1b\x00c\r"))
}
