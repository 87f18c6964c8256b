package grid

import (
	"fmt"

	"mtoohey.com/texui/internal/util"
)

// Line draws a line from (x1, y1) to (x2, y2) using Bresenham's algorithm.
//
// The characters of pattern are cycled along the line, so "-" draws a solid
// line and "- " a dashed one. Cells outside of the buffer, or whose current
// character is not in restrict (when restrict is non-empty), are skipped.
func (b *Buffer) Line(x1, y1, x2, y2 int, pattern, restrict string) error {
	p, err := parsePattern(pattern)
	if err != nil {
		return err
	}
	if err := checkSet("restrict", restrict); err != nil {
		return err
	}

	b.line(x1, y1, x2, y2, p, restrict)
	return nil
}

func parsePattern(pattern string) ([]rune, error) {
	p := []rune(pattern)
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidCharacter)
	}
	for _, r := range p {
		if err := checkRune(r); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// line is Line without validation. It returns the number of cells written.
func (b *Buffer) line(x1, y1, x2, y2 int, pattern []rune, restrict string) int {
	dx := util.Abs(x2 - x1)
	dy := util.Abs(y2 - y1)
	sx, sy := 1, 1
	if x1 >= x2 {
		sx = -1
	}
	if y1 >= y2 {
		sy = -1
	}
	e := dx - dy

	n := 0
	for step := 0; ; step++ {
		if b.put(x1, y1, pattern[step%len(pattern)], restrict) {
			n++
		}

		// once past the right or bottom edge nothing more can be drawn
		if (x1 == x2 && y1 == y2) || x1 >= b.width || y1 >= b.height {
			break
		}

		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x1 += sx
		}
		if e2 < dx {
			e += dx
			y1 += sy
		}
	}

	return n
}
