package keys

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// ErrClosed is returned by Read once the Reader has been closed.
var ErrClosed = errors.New("reader closed")

// escapeTimeout is how long ReadKey waits after an escape byte for the rest
// of a sequence before reporting a lone ESC.
const escapeTimeout = 25 * time.Millisecond

// Reader delivers keyboard input one byte at a time without blocking the
// caller on the underlying stream until it asks for a byte. Its methods must
// not be called concurrently.
type Reader struct {
	ch      chan byte
	done    chan struct{}
	err     error
	restore func() error

	// bytes read past the end of the last key
	pending []byte
}

// NewReader starts reading from r in the background.
func NewReader(r io.Reader) *Reader {
	kr := &Reader{
		ch:   make(chan byte, 256),
		done: make(chan struct{}),
	}
	go kr.readLoop(r)

	return kr
}

// OpenTerminal puts f, which must be a terminal, into raw mode and starts
// reading from it. Close restores the previous mode.
func OpenTerminal(f *os.File) (*Reader, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%s is not a terminal", f.Name())
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enable raw mode: %w", err)
	}

	r := NewReader(f)
	r.restore = func() error { return term.Restore(fd, state) }

	return r, nil
}

func (r *Reader) readLoop(src io.Reader) {
	defer close(r.ch)

	buf := make([]byte, 64)
	for {
		n, err := src.Read(buf)
		for _, b := range buf[:n] {
			select {
			case r.ch <- b:
			case <-r.done:
				return
			}
		}

		if err != nil {
			// only read by consumers after ch has been closed
			r.err = err
			return
		}
	}
}

// OnPress reports whether a byte is ready to be read without blocking.
func (r *Reader) OnPress() bool {
	return len(r.pending) > 0 || len(r.ch) > 0
}

// Read blocks until the next byte is available. Once the underlying stream
// is exhausted, it returns the error that ended it, usually io.EOF.
func (r *Reader) Read() (byte, error) {
	if len(r.pending) > 0 {
		b := r.pending[0]
		r.pending = r.pending[1:]
		return b, nil
	}

	select {
	case b, ok := <-r.ch:
		if !ok {
			return 0, r.err
		}
		return b, nil
	case <-r.done:
		return 0, ErrClosed
	}
}

// ReadKey reads a whole key and returns its name. Both extended keys sent as
// a prefix byte and ANSI escape sequences are understood.
func (r *Reader) ReadKey() (string, error) {
	b, err := r.Read()
	if err != nil {
		return "", err
	}

	if IsPrefix(b) {
		next, err := r.Read()
		if err != nil {
			return "", err
		}
		name, _ := Translate(next, b)
		return name, nil
	}

	seq := []byte{b}
	if b == 0x1b {
		if !r.waitForPress(escapeTimeout) {
			return Esc, nil
		}
		if seq, err = r.readMore(seq); err != nil {
			return "", err
		}
	}

	for {
		name, n := Decode(seq)
		if n > 0 {
			r.pending = append(seq[n:len(seq):len(seq)], r.pending...)
			return name, nil
		}

		if seq, err = r.readMore(seq); err != nil {
			return "", err
		}
	}
}

func (r *Reader) readMore(seq []byte) ([]byte, error) {
	next, err := r.Read()
	if err != nil {
		return nil, err
	}

	return append(seq, next), nil
}

// waitForPress waits up to d for input to become available.
func (r *Reader) waitForPress(d time.Duration) bool {
	deadline := time.Now().Add(d)
	for !r.OnPress() {
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(time.Millisecond)
	}

	return true
}

// Close stops delivering input and restores the terminal mode if the Reader
// was created by OpenTerminal. A read already blocked on the underlying
// stream is abandoned rather than interrupted.
func (r *Reader) Close() error {
	select {
	case <-r.done:
		return nil
	default:
		close(r.done)
	}

	if r.restore != nil {
		if err := r.restore(); err != nil {
			return fmt.Errorf("failed to restore terminal: %w", err)
		}
	}

	return nil
}
