package grid

import (
	"fmt"
)

// boxStyle holds the character for each edge and corner of a box.
type boxStyle struct {
	top, bottom, left, right rune
	tl, tr, bl, br           rune
}

// parseBoxStyle expands style into a boxStyle. The mapping depends on the
// number of characters:
//
//	1: everything
//	2: horizontal edges and corners, vertical edges
//	3: horizontal edges, vertical edges, corners
//	4: top, bottom, left, right; corners take the adjoining top or bottom edge
//	5: top, bottom, left, right, corners
//	8: top, bottom, left, right, top-left, top-right, bottom-left, bottom-right
func parseBoxStyle(style string) (boxStyle, error) {
	s := []rune(style)
	for _, r := range s {
		if err := checkRune(r); err != nil {
			return boxStyle{}, fmt.Errorf("%w: %s", ErrInvalidStyle, err)
		}
	}

	switch len(s) {
	case 1:
		return boxStyle{s[0], s[0], s[0], s[0], s[0], s[0], s[0], s[0]}, nil
	case 2:
		return boxStyle{s[0], s[0], s[1], s[1], s[0], s[0], s[0], s[0]}, nil
	case 3:
		return boxStyle{s[0], s[0], s[1], s[1], s[2], s[2], s[2], s[2]}, nil
	case 4:
		return boxStyle{s[0], s[1], s[2], s[3], s[0], s[0], s[1], s[1]}, nil
	case 5:
		return boxStyle{s[0], s[1], s[2], s[3], s[4], s[4], s[4], s[4]}, nil
	case 8:
		return boxStyle{s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7]}, nil
	default:
		return boxStyle{}, fmt.Errorf("%w: %q has %d characters, expected 1, 2, 3, 4, 5 or 8",
			ErrInvalidStyle, style, len(s))
	}
}

// BoxStyles holds named styles that can be passed to Box.
var BoxStyles = map[string]string{
	"ascii":   "-|+",
	"single":  "──││┌┐└┘",
	"double":  "══║║╔╗╚╝",
	"heavy":   "━━┃┃┏┓┗┛",
	"rounded": "──││╭╮╰╯",
}

// Box draws the border of the rectangle with corners (x1, y1) and (x2, y2)
// using style (see parseBoxStyle for how its characters are mapped). restrict
// limits which existing characters may be drawn over.
//
// The edges are drawn first, then each corner is written only over restrict
// or a character of style, so corners never clobber unrelated content.
func (b *Buffer) Box(x1, y1, x2, y2 int, style, restrict string) error {
	s, err := parseBoxStyle(style)
	if err != nil {
		return err
	}
	if err := checkSet("restrict", restrict); err != nil {
		return err
	}

	b.line(x1, y1, x2, y1, []rune{s.top}, restrict)
	b.line(x1, y2, x2, y2, []rune{s.bottom}, restrict)
	b.line(x1, y1, x1, y2, []rune{s.left}, restrict)
	b.line(x2, y1, x2, y2, []rune{s.right}, restrict)

	cornerRestrict := restrict + style
	corners := [...]struct {
		x, y int
		r    rune
	}{
		{x1, y1, s.tl},
		{x1, y2, s.bl},
		{x2, y1, s.tr},
		{x2, y2, s.br},
	}
	for _, c := range corners {
		// corners outside of the buffer are dropped like any other cell
		_ = b.SetChar(c.x, c.y, c.r, cornerRestrict)
	}

	return nil
}
