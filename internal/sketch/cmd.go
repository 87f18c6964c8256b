// Package sketch implements the sketch command, which draws a single shape
// described on the command line and flushes the result to stdout.
package sketch

import (
	"fmt"
	"log"
	"os"
	"strings"

	"mtoohey.com/texui/internal/cmd"
	"mtoohey.com/texui/internal/grid"
	"mtoohey.com/texui/internal/term"

	"github.com/alecthomas/kong"
)

type Cmd struct {
	Width  int `short:"W" default:"-1" help:"Width of the buffer. -1 uses the width of the terminal."`
	Height int `short:"H" default:"-1" help:"Height of the buffer. -1 uses the height of the terminal."`
	// Column and Row position the buffer within the terminal when flushing.
	// Negative values trim the buffer instead.
	Column *int           `short:"x" help:"Column to flush the buffer at. Negative values trim columns from the left."`
	Row    *int           `short:"y" help:"Row to flush the buffer at. Negative values trim rows from the top."`
	Clear  term.ClearMode `short:"c" default:"screen" help:"What to clear before drawing, one of \"screen\" (buffer only) or \"all\" (buffer and terminal)."`

	Line struct {
		X1       int    `arg:"" help:"Column of the start of the line."`
		Y1       int    `arg:"" help:"Row of the start of the line."`
		X2       int    `arg:"" help:"Column of the end of the line."`
		Y2       int    `arg:"" help:"Row of the end of the line."`
		Pattern  string `short:"p" default:"*" help:"Characters repeated along the line."`
		Restrict string `short:"r" help:"Only draw over these characters."`
	} `cmd:"" help:"Draw a line."`

	Box struct {
		X1       int    `arg:"" help:"Column of the first corner."`
		Y1       int    `arg:"" help:"Row of the first corner."`
		X2       int    `arg:"" help:"Column of the opposite corner."`
		Y2       int    `arg:"" help:"Row of the opposite corner."`
		Style    string `short:"s" type:"boxstyle" default:"single" help:"One of \"ascii\", \"single\", \"double\", \"heavy\", \"rounded\", or 1, 2, 3, 4, 5 or 8 literal characters."`
		Restrict string `short:"r" help:"Only draw over these characters."`
	} `cmd:"" help:"Draw the border of a rectangle."`

	Fill struct {
		X            int               `arg:"" help:"Column to start filling from."`
		Y            int               `arg:"" help:"Row to start filling from."`
		Char         rune              `short:"C" type:"cell" default:"#" help:"Character to fill with."`
		Ignore       string            `short:"i" help:"Characters the fill passes over without replacing."`
		Connectivity grid.Connectivity `short:"n" default:"4" help:"Neighbours to spread to, either \"4\" or \"8\"."`
		Border       string            `short:"b" type:"boxstyle" help:"Style of a border drawn around the buffer before filling."`
	} `cmd:"" help:"Flood fill a region."`

	Text struct {
		X     int      `arg:"" help:"Column of the anchor."`
		Y     int      `arg:"" help:"Row of the first line."`
		Lines []string `arg:"" help:"Lines of text. Newlines within a line also split it."`

		MaxWidth grid.Width      `short:"w" default:"0" help:"Wrap lines longer than this, either N or preserve-N to keep words whole. 0 disables wrapping."`
		MaxLines int             `short:"m" help:"Drop lines after this many. 0 disables the limit."`
		Edge     grid.EdgePolicy `short:"e" default:"default" help:"What happens at the right edge of the buffer, one of \"default\", \"newline\" or \"preserve\"."`
		Mask     string          `help:"Characters that are never written."`
		Restrict string          `short:"r" help:"Only draw over these characters."`
		Reverse  bool            `help:"Write lines right to left."`
		Preserve bool            `help:"Keep reversed lines reading left to right."`
		Anchor   grid.Anchor     `short:"a" default:"left" help:"Side of the text that lines up with the anchor, either \"left\" or \"right\"."`
		Indent   int             `help:"Spaces prefixed to each non-empty line when anchored left."`

		Ellipsis      rune         `type:"cell" help:"Character marking truncated text. No ellipsis is used when not provided."`
		EllipsisCount int          `default:"3" help:"Number of ellipsis characters."`
		Trigger       grid.Trigger `short:"t" default:"all" help:"When the ellipsis is used, one of \"all\", \"max-line\" or \"screen-edge\"."`

		Outline string `short:"o" type:"boxstyle" help:"Style of a box drawn around the text."`
	} `cmd:"" help:"Lay out and draw text."`
}

func (c *Cmd) Run(ctx *kong.Context, g cmd.Globals) (err error) {
	logger, closeLog, err := g.Logger()
	if err != nil {
		return err
	}
	defer func() {
		closeErr := closeLog()

		if err == nil {
			err = closeErr
		}
	}()

	return c.sketch(strings.Split(ctx.Command(), " ")[1], g, logger, term.NewTerminal(os.Stdout, nil))
}

// sketch creates a buffer, draws the shape for the subcommand onto it and
// flushes it to t.
func (c *Cmd) sketch(subcommand string, g cmd.Globals, logger *log.Logger, t term.Surface, opts ...grid.Option) error {
	b, err := g.NewBuffer(c.Width, c.Height, opts...)
	if err != nil {
		return err
	}

	if err := term.Reset(t, b, c.Clear); err != nil {
		return err
	}

	switch subcommand {
	case "line":
		l := c.Line
		err = b.Line(l.X1, l.Y1, l.X2, l.Y2, l.Pattern, l.Restrict)

	case "box":
		bx := c.Box
		err = b.Box(bx.X1, bx.Y1, bx.X2, bx.Y2, bx.Style, bx.Restrict)

	case "fill":
		err = c.fill(b)

	case "text":
		err = c.text(b, logger)

	default:
		panic(fmt.Sprintf("unhandled subcommand %s", subcommand))
	}
	if err != nil {
		return fmt.Errorf("failed to draw %s: %w", subcommand, err)
	}

	return t.Flush(b, c.flushOptions()...)
}

func (c *Cmd) flushOptions() []term.FlushOption {
	var opts []term.FlushOption
	if c.Column != nil {
		opts = append(opts, term.AtColumn(*c.Column))
	}
	if c.Row != nil {
		opts = append(opts, term.AtRow(*c.Row))
	}

	return opts
}

func (c *Cmd) fill(b *grid.Buffer) error {
	f := c.Fill
	if f.Border != "" {
		if err := b.Box(0, 0, b.Width()-1, b.Height()-1, f.Border, ""); err != nil {
			return err
		}
	}

	return b.FloodFill(f.X, f.Y, f.Char, f.Ignore, f.Connectivity)
}

func (c *Cmd) text(b *grid.Buffer, logger *log.Logger) error {
	tx := c.Text
	opts := grid.TextOptions{
		MaxWidth: tx.MaxWidth,
		MaxLines: tx.MaxLines,
		Edge:     tx.Edge,
		Mask:     tx.Mask,
		Restrict: tx.Restrict,
		Direction: grid.Direction{
			Reverse:           tx.Reverse,
			PreserveOnReverse: tx.Preserve,
			Anchor:            tx.Anchor,
		},
		Indent: tx.Indent,
	}
	if tx.Ellipsis != 0 {
		opts.Ellipsis = &grid.Ellipsis{
			Symbol:  tx.Ellipsis,
			Count:   tx.EllipsisCount,
			Trigger: tx.Trigger,
		}
	}

	l, err := b.DrawLines(tx.X, tx.Y, tx.Lines, opts)
	if err != nil {
		return err
	}
	logger.Printf("laid out %d lines in %v", len(l.Lines), l.Box)

	if tx.Outline == "" {
		return nil
	}

	return b.Box(l.Box.Min.X, l.Box.Min.Y, l.Box.Max.X, l.Box.Max.Y, tx.Outline, "")
}
