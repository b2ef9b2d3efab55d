package event

import (
	"github.com/gdamore/tcell/v2"
)

// tcellKeys maps named tcell keys; Ctrl+letter is handled by range
// KeyTab, KeyEnter and KeyBackspace alias Ctrl+I, Ctrl+M and Ctrl+H in tcell and win here
var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
	tcell.KeyF4:         KeyF4,
	tcell.KeyF5:         KeyF5,
	tcell.KeyF6:         KeyF6,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyF9:         KeyF9,
	tcell.KeyF10:        KeyF10,
	tcell.KeyF11:        KeyF11,
	tcell.KeyF12:        KeyF12,
}

// FromTcell translates a tcell event; unsupported events and mouse motion
// without a pressed button yield None
func FromTcell(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return fromTcellKey(e)
	case *tcell.EventMouse:
		x, y := e.Position()
		b := fromTcellButtons(e.Buttons())
		if b == ButtonNone {
			return None
		}
		return Click(x, y, b)
	case *tcell.EventResize:
		w, h := e.Size()
		return Resize(w, h)
	}
	return None
}

func fromTcellKey(e *tcell.EventKey) Event {
	mod := fromTcellMod(e.Modifiers())
	k := e.Key()

	if k == tcell.KeyRune {
		if e.Rune() == ' ' {
			return KeyPress(KeySpace, mod)
		}
		return RunePress(e.Rune(), mod)
	}
	if key, ok := tcellKeys[k]; ok {
		return KeyPress(key, mod)
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return KeyPress(KeyCtrlA+Key(k-tcell.KeyCtrlA), mod|ModCtrl)
	}
	return None
}

func fromTcellMod(m tcell.ModMask) Modifier {
	var mod Modifier
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	return mod
}

func fromTcellButtons(b tcell.ButtonMask) Button {
	switch {
	case b&tcell.Button1 != 0:
		return ButtonPrimary
	case b&tcell.Button2 != 0:
		return ButtonSecondary
	case b&tcell.Button3 != 0:
		return ButtonMiddle
	case b&tcell.WheelUp != 0:
		return ButtonWheelUp
	case b&tcell.WheelDown != 0:
		return ButtonWheelDown
	case b&tcell.Button4 != 0:
		return ButtonBack
	case b&tcell.Button5 != 0:
		return ButtonForward
	}
	return ButtonNone
}
