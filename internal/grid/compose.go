package grid

import (
	"fmt"
)

// Export copies the rectangle with corners (x1, y1) and (x2, y2), both
// inclusive, into a new buffer. The corners may be given in any order but
// must both lie within b.
func (b *Buffer) Export(x1, y1, x2, y2 int) (*Buffer, error) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}

	if err := b.checkBounds(x1, y1); err != nil {
		return nil, fmt.Errorf("failed to export: %w", err)
	}
	if err := b.checkBounds(x2, y2); err != nil {
		return nil, fmt.Errorf("failed to export: %w", err)
	}

	out := &Buffer{
		width:      x2 - x1 + 1,
		height:     y2 - y1 + 1,
		fill:       b.fill,
		termWidth:  b.termWidth,
		termHeight: b.termHeight,
	}
	out.content = make([][]rune, out.height)
	for y := range out.content {
		out.content[y] = append([]rune(nil), b.content[y1+y][x1:x2+1]...)
	}

	return out, nil
}

// Merge draws the rows of other into b with their top left corner at (x, y).
// Characters of other found in mask are not written, and when restrict is
// non-empty only cells of b holding one of its characters are written over.
//
// Rows are drawn one at a time with DrawLines; the first row that cannot be
// drawn ends the merge, leaving the rows before it in place.
func (b *Buffer) Merge(x, y int, other *Buffer, mask, restrict string) error {
	if other == nil {
		return fmt.Errorf("%w: no buffer to merge", ErrInvalidOption)
	}
	if err := b.checkAnchor(x, y); err != nil {
		return fmt.Errorf("failed to merge: %w", err)
	}
	if err := checkSet("mask", mask); err != nil {
		return err
	}
	if err := checkSet("restrict", restrict); err != nil {
		return err
	}

	opts := TextOptions{Mask: mask, Restrict: restrict}
	for i, row := range other.Rows() {
		if _, err := b.DrawString(x, y+i, row, opts); err != nil {
			break
		}
	}

	return nil
}
