// internal/tui/keys.go
package tui

import (
	"unicode"

	"github.com/bethropolis/flatland/internal/input"
	"github.com/gdamore/tcell/v2"
)

// Modifiers adapts a tcell modifier mask to input.ModifierState.
// tcell reports the logo key as Meta.
type Modifiers tcell.ModMask

func (m Modifiers) Alt() bool   { return tcell.ModMask(m)&tcell.ModAlt != 0 }
func (m Modifiers) Ctrl() bool  { return tcell.ModMask(m)&tcell.ModCtrl != 0 }
func (m Modifiers) Logo() bool  { return tcell.ModMask(m)&tcell.ModMeta != 0 }
func (m Modifiers) Shift() bool { return tcell.ModMask(m)&tcell.ModShift != 0 }

var namedKeys = map[tcell.Key]input.Key{
	tcell.KeyEnter:      input.KeyReturn,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyBackspace:  input.KeyBack,
	tcell.KeyBackspace2: input.KeyBack,
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyInsert:     input.KeyInsert,
	tcell.KeyDelete:     input.KeyDelete,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyPgUp:       input.KeyPageUp,
	tcell.KeyPgDn:       input.KeyPageDown,
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
}

// Unshifted punctuation on a US layout.
var punctuationKeys = map[rune]input.Key{
	' ':  input.KeySpace,
	'-':  input.KeyMinus,
	'=':  input.KeyEquals,
	'[':  input.KeyLBracket,
	']':  input.KeyRBracket,
	'\\': input.KeyBackslash,
	';':  input.KeySemicolon,
	'\'': input.KeyApostrophe,
	'`':  input.KeyGrave,
	',':  input.KeyComma,
	'.':  input.KeyPeriod,
	'/':  input.KeySlash,
}

// Characters a US layout produces with Shift held.
var shiftedKeys = map[rune]input.Key{
	'!': input.Key1, '@': input.Key2, '#': input.Key3, '$': input.Key4, '%': input.Key5,
	'^': input.Key6, '&': input.Key7, '*': input.Key8, '(': input.Key9, ')': input.Key0,
	'_': input.KeyMinus, '+': input.KeyEquals, '{': input.KeyLBracket, '}': input.KeyRBracket,
	'|': input.KeyBackslash, ':': input.KeySemicolon, '"': input.KeyApostrophe, '~': input.KeyGrave,
	'<': input.KeyComma, '>': input.KeyPeriod, '?': input.KeySlash,
}

// TranslateKey maps a tcell key event to a physical key and modifier mask.
// It reports false for keys with no physical identifier.
func TranslateKey(ev *tcell.EventKey) (input.Key, tcell.ModMask, bool) {
	mods := ev.Modifiers()
	key := ev.Key()

	switch {
	case key == tcell.KeyRune:
		return translateRune(ev.Rune(), mods)

	case key == tcell.KeyCtrlSpace:
		return input.KeySpace, mods | tcell.ModCtrl, true

	// Ctrl+letter arrives as a control code; Tab, Enter and Backspace share
	// those codes but come without ModCtrl.
	case key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ && mods&tcell.ModCtrl != 0:
		return input.KeyA + input.Key(key-tcell.KeyCtrlA), mods, true

	case key == tcell.KeyBacktab:
		return input.KeyTab, mods | tcell.ModShift, true

	case key >= tcell.KeyF1 && key <= tcell.KeyF12:
		return input.KeyF1 + input.Key(key-tcell.KeyF1), mods, true
	}

	if k, ok := namedKeys[key]; ok {
		return k, mods, true
	}
	return input.KeyNone, mods, false
}

func translateRune(r rune, mods tcell.ModMask) (input.Key, tcell.ModMask, bool) {
	if k, ok := input.LetterKey(r); ok {
		if unicode.IsUpper(r) {
			mods |= tcell.ModShift
		}
		return k, mods, true
	}
	if k, ok := input.DigitKey(r); ok {
		return k, mods, true
	}
	if k, ok := punctuationKeys[r]; ok {
		return k, mods, true
	}
	if k, ok := shiftedKeys[r]; ok {
		return k, mods | tcell.ModShift, true
	}
	return input.KeyNone, mods, false
}

// KeyEvents turns one terminal key event into a press followed by a release.
// Terminals never report releases, so the release is synthesized to keep the
// held-key set from growing without bound.
func KeyEvents(ev *tcell.EventKey) []input.KeyEvent {
	key, mods, ok := TranslateKey(ev)
	if !ok {
		return nil
	}
	state := Modifiers(mods)
	return []input.KeyEvent{
		{Key: key, State: input.Pressed, Modifiers: state},
		{Key: key, State: input.Released, Modifiers: state},
	}
}

// IsQuit reports the keys that always exit, before any shortcut is consulted.
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	}
	return false
}
