package keys

import (
	"github.com/gdamore/tcell/v2"
)

var tcellKeys = map[tcell.Key]string{
	tcell.KeyEscape:     Esc,
	tcell.KeyBackspace:  Backspace,
	tcell.KeyBackspace2: Backspace,
	tcell.KeyTab:        Tab,
	tcell.KeyEnter:      Enter,
	tcell.KeyUp:         Up,
	tcell.KeyDown:       Down,
	tcell.KeyLeft:       Left,
	tcell.KeyRight:      Right,
	tcell.KeyInsert:     Insert,
	tcell.KeyDelete:     Delete,
	tcell.KeyHome:       Home,
	tcell.KeyEnd:        End,
	tcell.KeyPgUp:       PgUp,
	tcell.KeyPgDn:       PgDown,
	tcell.KeyF1:         F1,
	tcell.KeyF2:         F2,
	tcell.KeyF3:         F3,
	tcell.KeyF4:         F4,
	tcell.KeyF5:         F5,
	tcell.KeyF6:         F6,
	tcell.KeyF7:         F7,
	tcell.KeyF8:         F8,
	tcell.KeyF9:         F9,
	tcell.KeyF10:        F10,
	tcell.KeyF11:        F11,
	tcell.KeyF12:        F12,
}

// FromTcell names the key of ev. ok is false for keys that have no name,
// such as most control combinations.
func FromTcell(ev *tcell.EventKey) (name string, ok bool) {
	if ev.Key() == tcell.KeyRune {
		if ev.Rune() == ' ' {
			return Space, true
		}
		return string(ev.Rune()), true
	}

	name, ok = tcellKeys[ev.Key()]
	return name, ok
}
