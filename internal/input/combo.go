// internal/input/combo.go
package input

import "strings"

// Combo pairs a modifier set with a key set. It is used both for configured
// requirements and for the live input state rebuilt on every event.
// A Combo is immutable once built.
type Combo struct {
	mods Modifier
	keys []Key // no duplicates, first-seen order
}

// NewCombo builds a combo, dropping duplicate keys and KeyNone.
func NewCombo(mods Modifier, keys ...Key) Combo {
	c := Combo{mods: mods}
	for _, k := range keys {
		if k == KeyNone || c.hasKey(k) {
			continue
		}
		c.keys = append(c.keys, k)
	}
	return c
}

// Modifiers returns the modifier set.
func (c Combo) Modifiers() Modifier {
	return c.mods
}

// Keys returns a copy of the key set.
func (c Combo) Keys() []Key {
	out := make([]Key, len(c.keys))
	copy(out, c.keys)
	return out
}

// IsEmpty reports whether the combo requires nothing at all.
func (c Combo) IsEmpty() bool {
	return c.mods.IsEmpty() && len(c.keys) == 0
}

func (c Combo) hasKey(key Key) bool {
	for _, k := range c.keys {
		if k == key {
			return true
		}
	}
	return false
}

// Contains reports whether every modifier and every key of other is also
// in c. The empty combo is contained in every combo.
func (c Combo) Contains(other Combo) bool {
	if !c.mods.Has(other.mods) {
		return false
	}
	for _, k := range other.keys {
		if !c.hasKey(k) {
			return false
		}
	}
	return true
}

// SatisfiedBy reports whether the live input state holds everything c
// requires. Extra held keys or modifiers are permitted.
func (c Combo) SatisfiedBy(live Combo) bool {
	return live.Contains(c)
}

// ExactlyMatches is like SatisfiedBy but rejects extra modifiers or keys.
// Physical modifier keys in the live set are ignored unless c names them,
// since their effect already shows up in the modifier set. A modifier key
// named by c also permits the modifier it sets.
func (c Combo) ExactlyMatches(live Combo) bool {
	implied := ModNone
	for _, k := range c.keys {
		implied = implied.With(k.Modifier())
	}
	trimmed := Combo{mods: live.mods &^ (implied &^ c.mods)}
	for _, k := range live.keys {
		if !k.IsModifierKey() || c.hasKey(k) {
			trimmed.keys = append(trimmed.keys, k)
		}
	}
	return trimmed.Contains(c) && c.Contains(trimmed)
}

// Tokens returns the combo as document tokens: modifiers first, then keys.
func (c Combo) Tokens() []string {
	tokens := make([]string, 0, len(c.keys)+len(allModifiers))
	for _, m := range c.mods.List() {
		tokens = append(tokens, m.String())
	}
	for _, k := range c.keys {
		tokens = append(tokens, k.String())
	}
	return tokens
}

// String returns a representation like "Ctrl+W".
func (c Combo) String() string {
	if c.IsEmpty() {
		return "<unbound>"
	}
	return strings.Join(c.Tokens(), "+")
}
