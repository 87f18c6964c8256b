package grid

import (
	"fmt"
	"image"
	"strings"

	"mtoohey.com/texui/internal/util"
)

// Layout describes where DrawLines placed its text.
type Layout struct {
	// Box is the rectangle surrounding the text, exclusive on every side:
	// Min is the cell above and to the left of the text and Max the cell
	// below and to the right of it.
	Box image.Rectangle
	// Lines holds the processed text as it reads on screen, left to right.
	// Masked characters are included.
	Lines []string
}

// DrawString splits text on newlines and draws it with DrawLines.
func (b *Buffer) DrawString(x, y int, text string, opts TextOptions) (Layout, error) {
	return b.DrawLines(x, y, []string{text}, opts)
}

// DrawLines lays out lines starting at (x, y) and writes them into b.
//
// Each line is split on newlines and stripped of non-printable characters
// before being indented, wrapped, truncated and given an ellipsis as
// configured by opts. The anchor may lie above or to the left of the buffer
// so that text can enter from off-screen, but an anchor beyond the right or
// bottom edge fails with ErrOutOfBounds. Cells that fall outside of the
// buffer are dropped.
func (b *Buffer) DrawLines(x, y int, lines []string, opts TextOptions) (Layout, error) {
	if err := b.checkAnchor(x, y); err != nil {
		return Layout{}, err
	}
	if err := opts.validate(); err != nil {
		return Layout{}, err
	}

	var text []string
	for _, line := range lines {
		for _, l := range strings.Split(line, "\n") {
			text = append(text, printable(l))
		}
	}

	if opts.Indent > 0 && opts.Anchor == AnchorLeft {
		indent := strings.Repeat(" ", opts.Indent)
		for i, l := range text {
			if l != "" {
				text[i] = indent + l
			}
		}
	}

	if opts.MaxWidth.N > 0 {
		text = wrapLines(text, opts.MaxWidth.N, opts.MaxWidth.Words)
	}

	if opts.Edge != EdgeDefault {
		space := b.width - x
		if space <= 0 {
			return Layout{}, fmt.Errorf("%w: no room to wrap at column %d of %d", ErrInvalidWidth, x, b.width)
		}
		text = wrapLines(text, space, opts.Edge == EdgePreserve)
	}

	truncated := false
	if opts.MaxLines > 0 && len(text) > opts.MaxLines {
		text = text[:opts.MaxLines]
		truncated = true
	}

	placed := make([][]rune, len(text))
	for i, l := range text {
		if opts.Reverse && opts.PreserveOnReverse {
			l = util.Reverse(l)
		}
		placed[i] = []rune(l)
	}

	if e := opts.Ellipsis; e != nil {
		placed = b.applyEllipsis(placed, y, truncated, e, opts.Reverse && opts.PreserveOnReverse)
	}

	layout := Layout{
		Box:   layoutBox(x, y, placed, opts.Direction),
		Lines: make([]string, len(placed)),
	}
	for i, l := range placed {
		layout.Lines[i] = string(l)
		if opts.Reverse {
			layout.Lines[i] = util.Reverse(layout.Lines[i])
		}
	}

	if opts.CalcOnly {
		return layout, nil
	}

	b.place(x, y, placed, &opts)
	return layout, nil
}

// checkAnchor rejects anchors that lie beyond the right or bottom edge.
// Negative coordinates are allowed.
func (b *Buffer) checkAnchor(x, y int) error {
	if !b.valid(x, y) && x >= 0 && y >= 0 {
		return fmt.Errorf("%w: anchor %s in %dx%d buffer", ErrOutOfBounds, Pt(x, y), b.width, b.height)
	}

	return nil
}

// applyEllipsis substitutes e into the last line when one of its triggers
// fired. Lines that run past the bottom of the buffer are dropped first.
func (b *Buffer) applyEllipsis(placed [][]rune, y int, truncated bool, e *Ellipsis, head bool) [][]rune {
	sub := tailEllipsis
	if head {
		sub = headEllipsis
	}

	switch {
	case truncated && e.Trigger != TriggerScreenEdge:
		// substitute into the last kept line
	case y+len(placed) > b.height && e.Trigger != TriggerLineTruncation:
		placed = placed[:util.Clamp(0, b.height-y, len(placed))]
	default:
		return placed
	}

	if n := len(placed); n > 0 {
		placed[n-1] = sub(placed[n-1], e.Symbol, e.Count)
	}

	return placed
}

// tailEllipsis replaces the last count runes of line with sym. If line is
// shorter than count, every rune is replaced.
func tailEllipsis(line []rune, sym rune, count int) []rune {
	if count > len(line) {
		return repeatRune(sym, len(line))
	}

	return append(append([]rune{}, line[:len(line)-count]...), repeatRune(sym, count)...)
}

// headEllipsis replaces the first count runes of line with sym. If line is
// shorter than count, every rune is replaced.
func headEllipsis(line []rune, sym rune, count int) []rune {
	if len(line) < count {
		return repeatRune(sym, len(line))
	}

	return append(repeatRune(sym, count), line[count:]...)
}

func repeatRune(r rune, n int) []rune {
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}

	return out
}

func maxLen(lines [][]rune) int {
	n := 0
	for _, l := range lines {
		n = util.Max(n, len(l))
	}

	return n
}

func layoutBox(x, y int, lines [][]rune, d Direction) image.Rectangle {
	width := maxLen(lines)

	left, right := x-1, x+width
	if d.Reverse && d.Anchor == AnchorLeft {
		left, right = x-width, x+1
	}

	return image.Rectangle{
		Min: image.Pt(left, y-1),
		Max: image.Pt(right, y+len(lines)),
	}
}

// place writes lines into b. Forwards text moves right from its start
// column and reversed text moves left; cells not yet on the buffer in the
// direction of travel are skipped and the first cell past the far edge ends
// the line.
func (b *Buffer) place(x, y int, lines [][]rune, opts *TextOptions) {
	width := maxLen(lines)

	for row, line := range lines {
		ty := y + row
		if ty < 0 || ty >= b.height {
			continue
		}

		start, step := x, 1
		switch {
		case !opts.Reverse && opts.Anchor == AnchorRight:
			start = x + width - len(line)
		case opts.Reverse && opts.Anchor == AnchorLeft:
			step = -1
		case opts.Reverse && opts.Anchor == AnchorRight:
			start, step = x+width-1, -1
		}

		for col, r := range line {
			tx := start + col*step
			if step > 0 && tx >= b.width || step < 0 && tx < 0 {
				break
			}
			if tx < 0 || tx >= b.width {
				continue
			}
			if opts.Mask != "" && strings.ContainsRune(opts.Mask, r) {
				continue
			}

			b.put(tx, ty, r, opts.Restrict)
		}
	}
}
