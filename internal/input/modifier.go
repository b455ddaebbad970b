// internal/input/modifier.go
package input

import "strings"

// Modifier is a set of abstract modifier keys. A single bit is one modifier,
// a union of bits is a set, so a modifier can never appear twice.
type Modifier uint8

const (
	ModNone Modifier = 0

	ModCtrl Modifier = 1 << iota
	ModAlt
	ModMod // Super / logo key
	ModShift
)

// allModifiers lists every modifier in display order.
var allModifiers = [...]Modifier{ModCtrl, ModAlt, ModMod, ModShift}

// modifierNames maps config tokens to modifiers. Matching is case-sensitive.
var modifierNames = map[string]Modifier{
	"Ctrl":  ModCtrl,
	"Alt":   ModAlt,
	"Mod":   ModMod,
	"Shift": ModShift,
}

// Has reports whether every modifier in mod is present in m.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod == mod
}

// With returns m with mod added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// IsEmpty reports whether no modifier is set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// List returns the individual modifiers in display order.
func (m Modifier) List() []Modifier {
	var mods []Modifier
	for _, mod := range allModifiers {
		if m.Has(mod) {
			mods = append(mods, mod)
		}
	}
	return mods
}

// String returns a representation like "Ctrl+Shift".
func (m Modifier) String() string {
	parts := make([]string, 0, len(allModifiers))
	for _, mod := range m.List() {
		switch mod {
		case ModCtrl:
			parts = append(parts, "Ctrl")
		case ModAlt:
			parts = append(parts, "Alt")
		case ModMod:
			parts = append(parts, "Mod")
		case ModShift:
			parts = append(parts, "Shift")
		}
	}
	return strings.Join(parts, "+")
}

// ModifierFromName returns the modifier named by a config token.
func ModifierFromName(name string) (Modifier, bool) {
	m, ok := modifierNames[name]
	return m, ok
}

// ModifierState is the platform modifier flag bundle delivered with key events.
type ModifierState interface {
	Alt() bool
	Ctrl() bool
	Logo() bool
	Shift() bool
}

// ModifierFlags is a plain ModifierState.
type ModifierFlags struct {
	AltHeld   bool
	CtrlHeld  bool
	LogoHeld  bool
	ShiftHeld bool
}

func (f ModifierFlags) Alt() bool   { return f.AltHeld }
func (f ModifierFlags) Ctrl() bool  { return f.CtrlHeld }
func (f ModifierFlags) Logo() bool  { return f.LogoHeld }
func (f ModifierFlags) Shift() bool { return f.ShiftHeld }

// ConvertModifiers turns a platform flag bundle into a modifier set.
// A nil state yields ModNone.
func ConvertModifiers(state ModifierState) Modifier {
	if state == nil {
		return ModNone
	}
	m := ModNone
	if state.Alt() {
		m = m.With(ModAlt)
	}
	if state.Ctrl() {
		m = m.With(ModCtrl)
	}
	if state.Logo() {
		m = m.With(ModMod)
	}
	if state.Shift() {
		m = m.With(ModShift)
	}
	return m
}
