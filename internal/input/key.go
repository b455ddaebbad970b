// internal/input/key.go
package input

import "fmt"

// Key is a physical key identifier. Names follow the platform virtual-key
// names used in shortcut documents ("W", "Key1", "Up", "LControl", ...).
type Key uint16

const (
	KeyNone Key = iota

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Digit row
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

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

	// Editing and navigation
	KeyEscape
	KeyTab
	KeyBack
	KeyReturn
	KeySpace
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Punctuation
	KeyMinus
	KeyEquals
	KeyLBracket
	KeyRBracket
	KeyBackslash
	KeySemicolon
	KeyApostrophe
	KeyGrave
	KeyComma
	KeyPeriod
	KeySlash

	// Numpad
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9

	// Modifier keys
	KeyLControl
	KeyRControl
	KeyLAlt
	KeyRAlt
	KeyLShift
	KeyRShift
	KeyLWin
	KeyRWin

	keyCount
)

var keyNames = [keyCount]string{
	KeyNone: "",

	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F", KeyG: "G",
	KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L", KeyM: "M", KeyN: "N",
	KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R", KeyS: "S", KeyT: "T", KeyU: "U",
	KeyV: "V", KeyW: "W", KeyX: "X", KeyY: "Y", KeyZ: "Z",

	Key0: "Key0", Key1: "Key1", Key2: "Key2", Key3: "Key3", Key4: "Key4",
	Key5: "Key5", Key6: "Key6", Key7: "Key7", Key8: "Key8", Key9: "Key9",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",

	KeyEscape:   "Escape",
	KeyTab:      "Tab",
	KeyBack:     "Back",
	KeyReturn:   "Return",
	KeySpace:    "Space",
	KeyInsert:   "Insert",
	KeyDelete:   "Delete",
	KeyHome:     "Home",
	KeyEnd:      "End",
	KeyPageUp:   "PageUp",
	KeyPageDown: "PageDown",
	KeyUp:       "Up",
	KeyDown:     "Down",
	KeyLeft:     "Left",
	KeyRight:    "Right",

	KeyMinus:      "Minus",
	KeyEquals:     "Equals",
	KeyLBracket:   "LBracket",
	KeyRBracket:   "RBracket",
	KeyBackslash:  "Backslash",
	KeySemicolon:  "Semicolon",
	KeyApostrophe: "Apostrophe",
	KeyGrave:      "Grave",
	KeyComma:      "Comma",
	KeyPeriod:     "Period",
	KeySlash:      "Slash",

	KeyNumpad0: "Numpad0", KeyNumpad1: "Numpad1", KeyNumpad2: "Numpad2",
	KeyNumpad3: "Numpad3", KeyNumpad4: "Numpad4", KeyNumpad5: "Numpad5",
	KeyNumpad6: "Numpad6", KeyNumpad7: "Numpad7", KeyNumpad8: "Numpad8",
	KeyNumpad9: "Numpad9",

	KeyLControl: "LControl",
	KeyRControl: "RControl",
	KeyLAlt:     "LAlt",
	KeyRAlt:     "RAlt",
	KeyLShift:   "LShift",
	KeyRShift:   "RShift",
	KeyLWin:     "LWin",
	KeyRWin:     "RWin",
}

// keysByName is the reverse of keyNames, built once.
var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		if name != "" {
			m[name] = Key(k)
		}
	}
	return m
}()

// ParseKey decodes a key identifier. Names are case-sensitive.
func ParseKey(name string) (Key, bool) {
	k, ok := keysByName[name]
	return k, ok
}

// String returns the identifier used in shortcut documents.
func (k Key) String() string {
	if k < keyCount {
		if k == KeyNone {
			return "None"
		}
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

// IsModifierKey reports whether k is one of the physical modifier keys.
func (k Key) IsModifierKey() bool {
	return k >= KeyLControl && k <= KeyRWin
}

// Modifier returns the modifier a physical modifier key sets while held,
// or ModNone for any other key.
func (k Key) Modifier() Modifier {
	switch k {
	case KeyLControl, KeyRControl:
		return ModCtrl
	case KeyLAlt, KeyRAlt:
		return ModAlt
	case KeyLShift, KeyRShift:
		return ModShift
	case KeyLWin, KeyRWin:
		return ModMod
	}
	return ModNone
}

// LetterKey returns the key for an ASCII letter (either case).
func LetterKey(r rune) (Key, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A'), true
	}
	return KeyNone, false
}

// DigitKey returns the digit-row key for an ASCII digit.
func DigitKey(r rune) (Key, bool) {
	if r >= '0' && r <= '9' {
		return Key0 + Key(r-'0'), true
	}
	return KeyNone, false
}
