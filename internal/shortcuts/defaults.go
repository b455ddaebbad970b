package shortcuts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultDocument is written on first run so the loader always has a
// complete document to read.
const DefaultDocument = `# Flatland keyboard shortcuts.
#
# Each action lists the modifiers (Ctrl, Alt, Mod, Shift) and keys it needs.
# Key names: A-Z, Key0-Key9, F1-F12, Up, Down, Left, Right, PageUp, PageDown,
# Home, End, Insert, Delete, Space, Return, Tab, Back, Escape, punctuation
# (Minus, Equals, Comma, Period, Slash, ...), Numpad0-Numpad9 and the
# modifier keys LControl, RControl, LAlt, RAlt, LShift, RShift, LWin, RWin.
# An empty list leaves the action unbound. Every action must be present.

[KeyboardShortcuts.Movement]
Up = ["Ctrl", "E"]
Down = ["Ctrl", "Q"]
Left = ["Ctrl", "A"]
Right = ["Ctrl", "D"]
Forward = ["Ctrl", "W"]
Backward = ["Ctrl", "S"]

[KeyboardShortcuts.Rotation]
Up = ["Alt", "W"]
Down = ["Alt", "S"]
Left = ["Alt", "A"]
Right = ["Alt", "D"]
Clockwise = ["Alt", "E"]
CounterClockwise = ["Alt", "Q"]

[KeyboardShortcuts.Resize]
Up = ["Shift", "Up"]
Down = ["Shift", "Down"]
Left = ["Shift", "Left"]
Right = ["Shift", "Right"]
`

// Default returns the table described by DefaultDocument.
func Default() *Table {
	table, err := Parse([]byte(DefaultDocument), FormatTOML)
	if err != nil {
		panic(fmt.Sprintf("built-in shortcut document is invalid: %v", err))
	}
	return table
}

// DefaultDocumentFor returns the default document in the requested format.
func DefaultDocumentFor(format Format) ([]byte, error) {
	if format == FormatTOML {
		return []byte(DefaultDocument), nil
	}
	return Encode(Default(), format)
}

// EnsureFile creates path with the default document when it does not exist.
// It reports whether a file was written.
func EnsureFile(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("error checking shortcut document '%s': %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config dir: %w", err)
	}
	data, err := DefaultDocumentFor(FormatForPath(path))
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("failed to write default shortcut document: %w", err)
	}
	return true, nil
}
