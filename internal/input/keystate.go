// internal/input/keystate.go
package input

// KeyState tracks the physical keys currently held down for one input context.
// It is not safe for concurrent use; the owning event loop is its only user.
type KeyState struct {
	keys []Key
}

// NewKeyState returns an empty tracker.
func NewKeyState() *KeyState {
	return &KeyState{}
}

// Press records key as held. Repeated presses (key repeat) are ignored.
func (s *KeyState) Press(key Key) {
	if s.Holds(key) {
		return
	}
	s.keys = append(s.keys, key)
}

// Release removes every occurrence of key.
func (s *KeyState) Release(key Key) {
	kept := s.keys[:0]
	for _, k := range s.keys {
		if k != key {
			kept = append(kept, k)
		}
	}
	s.keys = kept
}

// Clear forgets every held key. Used when focus is lost and releases
// will never be delivered.
func (s *KeyState) Clear() {
	s.keys = s.keys[:0]
}

// Holds reports whether key is currently held.
func (s *KeyState) Holds(key Key) bool {
	for _, k := range s.keys {
		if k == key {
			return true
		}
	}
	return false
}

// Keys returns a copy of the held keys in press order.
func (s *KeyState) Keys() []Key {
	out := make([]Key, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len returns the number of held keys.
func (s *KeyState) Len() int {
	return len(s.keys)
}
