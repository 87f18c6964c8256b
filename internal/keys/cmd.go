package keys

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"mtoohey.com/texui/internal/cmd"
)

// interrupt is the name Ctrl-C decodes to in raw mode.
const interrupt = "\x03"

type Cmd struct {
	Quit string `short:"q" default:"ESC" help:"Name of the key that stops listening. Ctrl-C always stops."`
}

func (c Cmd) Run(g cmd.Globals) (err error) {
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

	r, err := OpenTerminal(os.Stdin)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := r.Close()

		if err == nil {
			err = closeErr
		}
	}()

	fmt.Fprintf(os.Stdout, "press keys to see their names, %s to stop\r\n", c.Quit)
	err = c.listen(r, os.Stdout)
	logger.Printf("stopped listening: %v", err)

	return err
}

// listen prints the name of every key read from r to w until the quit key
// or Ctrl-C is pressed. Keys without a name are shown quoted.
func (c Cmd) listen(r *Reader, w io.Writer) error {
	for {
		name, err := r.ReadKey()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return fmt.Errorf("failed to read key: %w", err)
		}

		if name == interrupt || name == c.Quit {
			return nil
		}

		// raw mode doesn't translate newlines
		if _, err := fmt.Fprintf(w, "%s\r\n", display(name)); err != nil {
			return fmt.Errorf("failed to write key: %w", err)
		}
	}
}

func display(name string) string {
	if name == "" {
		return strconv.Quote(name)
	}

	if r, size := utf8.DecodeRuneInString(name); size == len(name) && !strconv.IsPrint(r) {
		return strconv.Quote(name)
	}

	return name
}
