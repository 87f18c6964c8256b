package keys

import (
	"io"
	"strings"
	"testing"
	"time"

	"mtoohey.com/texui/internal/testutil/assert"

	"github.com/gdamore/tcell/v2"
)

func TestTranslate(t *testing.T) {
	for _, tc := range []struct {
		name      string
		raw, prev byte
		expected  string
		ok        bool
	}{
		{"escape", 0x1b, 'a', Esc, true},
		{"backspace", 0x08, 'a', Backspace, true},
		{"tab", '\t', 'a', Tab, true},
		{"enter", '\r', 'a', Enter, true},
		{"space", ' ', 'a', Space, true},
		{"plain character", 'q', 'a', "q", true},
		{"arrow after extended prefix", 'H', PrefixExtended, Up, true},
		{"arrow after function prefix", 'P', PrefixFunction, Down, true},
		{"function key", ';', PrefixFunction, F1, true},
		{"f10", 'D', PrefixFunction, F10, true},
		{"f11", 0x85, PrefixExtended, F11, true},
		{"f12", 0x86, PrefixExtended, F12, true},
		{"unknown extended key", 'z', PrefixExtended, "z", true},
		{"letter without prefix", 'H', 'a', "H", true},
		{"prefix", PrefixExtended, 'a', "", false},
		{"second prefix", PrefixFunction, 0x1b, "", false},
		{"undecodable", 0x90, 'a', "", false},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			actual, ok := Translate(tc.raw, tc.prev)
			assert.Equal(t, tc.expected, actual)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestTranslateControl(t *testing.T) {
	for b := 0; b < 0x80; b++ {
		name, _ := Translate(byte(b), 'a')
		assert.Equal(t, name, translateControl(byte(b)))
	}

	assert.Equal(t, "", translateControl(PrefixFunction))
	assert.Equal(t, "", translateControl(PrefixExtended))
	assert.Equal(t, "P", translateControl('P'))
}

func TestDecode(t *testing.T) {
	for _, tc := range []struct {
		seq      string
		expected string
		n        int
	}{
		{"\x1b[A", Up, 3},
		{"\x1b[Dx", Left, 3},
		{"\x1bOP", F1, 3},
		{"\x1bOH", Home, 3},
		{"\x1b[15~", F5, 5},
		{"\x1b[24~", F12, 5},
		{"\x1b[3~", Delete, 4},
		{"\x1b[[A", F1, 4},
		{"\x1b[1;5A", "", 6},
		{"\x1b[", "", 0},
		{"\x1b[12", "", 0},
		{"\x1bO", "", 0},
		{"\x1b", Esc, 1},
		{"\x1bx", Esc, 1},
		{"\x7f", Backspace, 1},
		{"\r", Enter, 1},
		{"\n", Enter, 1},
		{"\t", Tab, 1},
		{" ", Space, 1},
		{"ab", "a", 1},
		{"H", "H", 1},
		{"\x03", "\x03", 1},
		{"\x00", "", 1},
		{"é!", "é", 2},
		{"\xc3", "", 0},
		{"\xff", "", 1},
		{"", "", 0},
	} {
		actual, n := Decode([]byte(tc.seq))
		assert.Equal(t, tc.expected, actual)
		assert.Equal(t, tc.n, n)
	}
}

func TestFromTcell(t *testing.T) {
	for _, tc := range []struct {
		ev       *tcell.EventKey
		expected string
		ok       bool
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), Up, true},
		{tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), PgDown, true},
		{tcell.NewEventKey(tcell.KeyF11, 0, tcell.ModNone), F11, true},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), Enter, true},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), "x", true},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), Space, true},
		{tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModCtrl), "", false},
	} {
		actual, ok := FromTcell(tc.ev)
		assert.Equal(t, tc.expected, actual)
		assert.Equal(t, tc.ok, ok)
	}
}

// waitBuffered waits for the background read of r to deliver n bytes.
func waitBuffered(t *testing.T, r *Reader, n int) {
	t.Helper()

	deadline := time.Now().Add(time.Second)
	for len(r.ch) < n {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d bytes", n)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestReader_Read(t *testing.T) {
	t.Run("bytes then eof", func(t *testing.T) {
		r := NewReader(strings.NewReader("ab"))
		defer r.Close()

		waitBuffered(t, r, 2)
		assert.True(t, r.OnPress())

		b, err := r.Read()
		assert.NoError(t, err)
		assert.Equal(t, byte('a'), b)

		b, err = r.Read()
		assert.NoError(t, err)
		assert.Equal(t, byte('b'), b)

		_, err = r.Read()
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("nothing pressed", func(t *testing.T) {
		pr, pw := io.Pipe()
		defer pw.Close()

		r := NewReader(pr)
		assert.False(t, r.OnPress())

		assert.NoError(t, r.Close())
		_, err := r.Read()
		assert.ErrorIs(t, err, ErrClosed)
		assert.NoError(t, r.Close())
	})
}

func TestReader_ReadKey(t *testing.T) {
	readAll := func(t *testing.T, input string) []string {
		r := NewReader(strings.NewReader(input))
		defer r.Close()
		waitBuffered(t, r, len(input))

		var names []string
		for {
			name, err := r.ReadKey()
			if err != nil {
				assert.ErrorIs(t, err, io.EOF)
				return names
			}
			names = append(names, name)
		}
	}

	t.Run("escape sequences", func(t *testing.T) {
		assert.Equal(t, []string{Up, "q", F5}, readAll(t, "\x1b[Aq\x1b[15~"))
	})

	t.Run("prefixed keys", func(t *testing.T) {
		assert.Equal(t, []string{Right, F1, Enter}, readAll(t, "\xe0M\x00;\r"))
	})

	t.Run("lone escape", func(t *testing.T) {
		assert.Equal(t, []string{Esc}, readAll(t, "\x1b"))
	})

	t.Run("escape before a key", func(t *testing.T) {
		assert.Equal(t, []string{Esc, "x"}, readAll(t, "\x1bx"))
	})

	t.Run("multibyte", func(t *testing.T) {
		assert.Equal(t, []string{"ü", Space}, readAll(t, "ü "))
	})
}

func TestCmd_Listen(t *testing.T) {
	listen := func(t *testing.T, c Cmd, input string) string {
		t.Helper()

		r := NewReader(strings.NewReader(input))
		defer r.Close()

		var out strings.Builder
		assert.NoError(t, c.listen(r, &out))
		return out.String()
	}

	t.Run("until quit", func(t *testing.T) {
		assert.Equal(t, "a\r\nUP\r\n\"\\x01\"\r\n", listen(t, Cmd{Quit: Esc}, "a\x1b[A\x01\x1b"))
	})

	t.Run("interrupt", func(t *testing.T) {
		assert.Equal(t, "b\r\n", listen(t, Cmd{Quit: Esc}, "b\x03c"))
	})

	t.Run("custom quit key", func(t *testing.T) {
		assert.Equal(t, "ESC\r\n", listen(t, Cmd{Quit: "q"}, "\x1bqz"))
	})

	t.Run("end of input", func(t *testing.T) {
		assert.Equal(t, "SPACE\r\n", listen(t, Cmd{Quit: Esc}, " "))
	})
}
