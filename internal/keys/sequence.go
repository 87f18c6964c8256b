package keys

import (
	"unicode/utf8"
)

// CSI sequences (ESC [ ...) without the leading ESC [.
var csiKeys = map[string]string{
	"A":   Up,
	"B":   Down,
	"C":   Right,
	"D":   Left,
	"H":   Home,
	"F":   End,
	"1~":  Home,
	"2~":  Insert,
	"3~":  Delete,
	"4~":  End,
	"5~":  PgUp,
	"6~":  PgDown,
	"7~":  Home,
	"8~":  End,
	"11~": F1,
	"12~": F2,
	"13~": F3,
	"14~": F4,
	"15~": F5,
	"17~": F6,
	"18~": F7,
	"19~": F8,
	"20~": F9,
	"21~": F10,
	"23~": F11,
	"24~": F12,
	"[A":  F1,
	"[B":  F2,
	"[C":  F3,
	"[D":  F4,
	"[E":  F5,
}

// SS3 sequences (ESC O x) without the leading ESC O.
var ss3Keys = map[byte]string{
	'A': Up,
	'B': Down,
	'C': Right,
	'D': Left,
	'H': Home,
	'F': End,
	'P': F1,
	'Q': F2,
	'R': F3,
	'S': F4,
}

// maxCSI bounds how far Decode scans for the end of a CSI sequence.
const maxCSI = 16

// Decode names the key at the start of seq, as sent by ANSI terminals in raw
// mode, and returns the number of bytes it used. n is zero when seq holds
// only the beginning of a key and more input is needed. Sequences that are
// well formed but unknown are consumed with an empty name.
//
// Key names match those of Translate, so that callers can treat both kinds
// of input alike.
func Decode(seq []byte) (name string, n int) {
	if len(seq) == 0 {
		return "", 0
	}

	switch b := seq[0]; {
	case b == 0x1b:
		return decodeEscape(seq)
	case b == 0x7f || b == 0x08:
		return Backspace, 1
	case b == '\n':
		return Enter, 1
	case b < utf8.RuneSelf:
		return translateControl(b), 1
	}

	if !utf8.FullRune(seq) {
		return "", 0
	}
	r, size := utf8.DecodeRune(seq)
	if r == utf8.RuneError {
		return "", size
	}

	return string(r), size
}

func decodeEscape(seq []byte) (string, int) {
	if len(seq) == 1 {
		return Esc, 1
	}

	switch seq[1] {
	case '[':
		return decodeCSI(seq)
	case 'O':
		if len(seq) < 3 {
			return "", 0
		}
		return ss3Keys[seq[2]], 3
	default:
		// a lone escape followed by an unrelated key
		return Esc, 1
	}
}

func decodeCSI(seq []byte) (string, int) {
	for end := 2; end < len(seq) && end < maxCSI; end++ {
		b := seq[end]
		// the vt style function keys use a second '[' right after the first
		if b == '[' && end == 2 {
			continue
		}
		if b >= 0x40 && b <= 0x7e {
			return csiKeys[string(seq[2:end+1])], end + 1
		}
		if b < 0x20 || b > 0x3f {
			// not a CSI parameter byte, so give up on the sequence
			return "", end
		}
	}

	if len(seq) >= maxCSI {
		return "", maxCSI
	}

	return "", 0
}
