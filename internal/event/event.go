// internal/event/event.go
package event

import (
	"github.com/bethropolis/flatland/internal/input"
)

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Shortcut events
	TypeActionTriggered   // A live combo satisfied a configured shortcut
	TypeKeysCleared       // Held keys were dropped (focus lost)
	TypeShortcutsReloaded // A new shortcut table was published
	TypeReloadFailed      // A reload was attempted and the old table kept

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
)

func (t Type) String() string {
	switch t {
	case TypeActionTriggered:
		return "ActionTriggered"
	case TypeKeysCleared:
		return "KeysCleared"
	case TypeShortcutsReloaded:
		return "ShortcutsReloaded"
	case TypeReloadFailed:
		return "ReloadFailed"
	case TypeAppReady:
		return "AppReady"
	case TypeAppQuit:
		return "AppQuit"
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// ActionTriggeredData names the matched action and the combos involved.
type ActionTriggeredData struct {
	Action input.Action
	Combo  input.Combo // configured requirement
	Live   input.Combo // live state that satisfied it
}

// KeysClearedData reports how many keys were dropped.
type KeysClearedData struct {
	Count int
}

// ShortcutsReloadedData identifies where the new table came from.
type ShortcutsReloadedData struct {
	Source string
}

// ReloadFailedData carries the loader error; the previous table stays active.
type ReloadFailedData struct {
	Source string
	Err    error
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData carries nothing yet.
type AppReadyData struct{}
