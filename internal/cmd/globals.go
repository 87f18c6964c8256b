package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"mtoohey.com/texui/internal/grid"
)

// Globals contains constant values that apply to multiple commands.
type Globals struct {
	// Fill is the character buffers are cleared to.
	Fill rune `short:"f" default:"." type:"cell" help:"Character buffers are cleared to."`
	// Oversize permits buffers larger than the terminal.
	Oversize bool `help:"Allow buffers larger than the terminal."`
	// LogPath is the path of the file logs should be output to. Logs are
	// discarded if this flag is not provided.
	LogPath string `short:"l" type:"path" help:"The path of the file logs should be output to. Logs are discarded if this flag is not provided."`
}

// NewBuffer creates a buffer of the given size according to g. opts are
// passed through to grid.New.
func (g Globals) NewBuffer(width, height int, opts ...grid.Option) (*grid.Buffer, error) {
	if g.Oversize {
		opts = append(opts, grid.AllowOversize())
	}

	b, err := grid.New(width, height, g.Fill, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create buffer: %w", err)
	}

	return b, nil
}

// Logger opens the logger described by g. The returned close function must
// be called once the logger is no longer needed.
func (g Globals) Logger() (logger *log.Logger, closeLog func() error, err error) {
	if g.LogPath == "" {
		return log.New(io.Discard, "", log.LstdFlags), func() error { return nil }, nil
	}

	f, err := os.OpenFile(g.LogPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log file: %w", err)
	}

	return log.New(f, "", log.LstdFlags), f.Close, nil
}
