// Package keys turns raw keyboard input into stable key names such as "UP"
// or "F5".
package keys

// Key names.
const (
	Esc       = "ESC"
	Backspace = "BACKSPACE"
	Tab       = "TAB"
	Enter     = "ENTER"
	Space     = "SPACE"
	Up        = "UP"
	Down      = "DOWN"
	Left      = "LEFT"
	Right     = "RIGHT"
	Insert    = "INSERT"
	Delete    = "DELETE"
	Home      = "HOME"
	End       = "END"
	PgUp      = "PG_UP"
	PgDown    = "PG_DOWN"
	F1        = "F1"
	F2        = "F2"
	F3        = "F3"
	F4        = "F4"
	F5        = "F5"
	F6        = "F6"
	F7        = "F7"
	F8        = "F8"
	F9        = "F9"
	F10       = "F10"
	F11       = "F11"
	F12       = "F12"
)

// Bytes that announce an extended key; the byte that follows identifies it.
const (
	PrefixExtended byte = 0xe0
	PrefixFunction byte = 0x00
)

// IsPrefix reports whether b starts a two byte extended key.
func IsPrefix(b byte) bool {
	return b == PrefixExtended || b == PrefixFunction
}

var controlKeys = map[byte]string{
	0x1b: Esc,
	0x08: Backspace,
	'\t': Tab,
	'\r': Enter,
	' ':  Space,
}

var extendedKeys = map[byte]string{
	'H':  Up,
	'P':  Down,
	'K':  Left,
	'M':  Right,
	'R':  Insert,
	'S':  Delete,
	'G':  Home,
	'O':  End,
	'I':  PgUp,
	'Q':  PgDown,
	';':  F1,
	'<':  F2,
	'=':  F3,
	'>':  F4,
	'?':  F5,
	'@':  F6,
	'A':  F7,
	'B':  F8,
	'C':  F9,
	'D':  F10,
	0x85: F11,
	0x86: F12,
}

// Translate names raw given the byte read before it.
//
// When prev is a prefix, raw is looked up among the extended keys. A prefix
// byte on its own has no name; the key is only known once the next byte has
// been read. Otherwise raw is looked up among the control keys. Bytes with no
// name of their own translate to the character they encode, and ok is false
// for bytes that are not a character by themselves.
func Translate(raw, prev byte) (name string, ok bool) {
	table := controlKeys
	switch {
	case IsPrefix(prev):
		table = extendedKeys
	case IsPrefix(raw):
		return "", false
	}

	if name, ok := table[raw]; ok {
		return name, true
	}
	if raw >= 0x80 {
		return "", false
	}

	return string(rune(raw)), true
}

// translateControl names a single byte read without a prefix before it.
// Prefix bytes have no name.
func translateControl(raw byte) string {
	if IsPrefix(raw) {
		return ""
	}
	if name, ok := controlKeys[raw]; ok {
		return name
	}

	return string(rune(raw))
}
