package event

import "strings"

// Key represents a non-printable keyboard key
type Key uint16

const (
	KeyNone Key = iota

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete
	KeySpace

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Ctrl+letter, contiguous so KeyCtrlA+n is Ctrl+('A'+n)
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// String returns the modifier prefix, e.g. "Ctrl+Alt+"
func (m Modifier) String() string {
	var b strings.Builder
	if m&ModCtrl != 0 {
		b.WriteString("Ctrl+")
	}
	if m&ModAlt != 0 {
		b.WriteString("Alt+")
	}
	if m&ModShift != 0 {
		b.WriteString("Shift+")
	}
	return b.String()
}

// KeyState is the phase of a key press, ordered Up < Down < Held
type KeyState uint8

const (
	StateUp   KeyState = iota // Just released
	StateDown                 // Just pressed
	StateHeld                 // Still pressed
)

func (s KeyState) String() string {
	switch s {
	case StateDown:
		return "down"
	case StateHeld:
		return "held"
	default:
		return "up"
	}
}

// keyToName maps Key constants to canonical config string names
var keyToName = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeySpace:     "space",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
	KeyInsert:   "insert",

	KeyF1:  "f1",
	KeyF2:  "f2",
	KeyF3:  "f3",
	KeyF4:  "f4",
	KeyF5:  "f5",
	KeyF6:  "f6",
	KeyF7:  "f7",
	KeyF8:  "f8",
	KeyF9:  "f9",
	KeyF10: "f10",
	KeyF11: "f11",
	KeyF12: "f12",
}

// nameToKey is the reverse of keyToName plus the ctrl_<letter> names
var nameToKey = func() map[string]Key {
	m := make(map[string]Key, len(keyToName)+26)
	for k, name := range keyToName {
		m[name] = k
	}
	for i := 0; i < 26; i++ {
		m["ctrl_"+string(rune('a'+i))] = KeyCtrlA + Key(i)
	}
	return m
}()

// String returns the canonical config name of the key
func (k Key) String() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	if k >= KeyCtrlA && k <= KeyCtrlZ {
		return "ctrl_" + string(rune('a'+int(k-KeyCtrlA)))
	}
	return "none"
}

// ParseKey resolves a config key name, case-insensitive
func ParseKey(name string) (Key, bool) {
	k, ok := nameToKey[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}
