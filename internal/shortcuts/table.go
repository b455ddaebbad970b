// Package shortcuts holds the shortcut table and loads it from a document.
package shortcuts

import "github.com/bethropolis/flatland/internal/input"

// Movement holds the combos of the Movement section.
type Movement struct {
	Up       input.Combo
	Down     input.Combo
	Left     input.Combo
	Right    input.Combo
	Forward  input.Combo
	Backward input.Combo
}

// Rotation holds the combos of the Rotation section.
type Rotation struct {
	Up               input.Combo
	Down             input.Combo
	Left             input.Combo
	Right            input.Combo
	Clockwise        input.Combo
	CounterClockwise input.Combo
}

// Resize holds the combos of the Resize section.
type Resize struct {
	Up    input.Combo
	Down  input.Combo
	Left  input.Combo
	Right input.Combo
}

// Table is the complete set of configured shortcuts. A loaded Table always
// has every action resolved. Tables are replaced wholesale, never edited
// after they are published.
type Table struct {
	Movement Movement
	Rotation Rotation
	Resize   Resize
}

// Binding pairs an action with its configured combo.
type Binding struct {
	Action input.Action
	Combo  input.Combo
}

// slot returns the field holding the combo for a, or nil for unknown actions.
func (t *Table) slot(a input.Action) *input.Combo {
	switch a {
	case input.ActionMoveUp:
		return &t.Movement.Up
	case input.ActionMoveDown:
		return &t.Movement.Down
	case input.ActionMoveLeft:
		return &t.Movement.Left
	case input.ActionMoveRight:
		return &t.Movement.Right
	case input.ActionMoveForward:
		return &t.Movement.Forward
	case input.ActionMoveBackward:
		return &t.Movement.Backward

	case input.ActionRotateUp:
		return &t.Rotation.Up
	case input.ActionRotateDown:
		return &t.Rotation.Down
	case input.ActionRotateLeft:
		return &t.Rotation.Left
	case input.ActionRotateRight:
		return &t.Rotation.Right
	case input.ActionRotateClockwise:
		return &t.Rotation.Clockwise
	case input.ActionRotateCounterClockwise:
		return &t.Rotation.CounterClockwise

	case input.ActionResizeUp:
		return &t.Resize.Up
	case input.ActionResizeDown:
		return &t.Resize.Down
	case input.ActionResizeLeft:
		return &t.Resize.Left
	case input.ActionResizeRight:
		return &t.Resize.Right
	}
	return nil
}

// Combo returns the combo bound to a. Unknown actions yield the empty combo.
func (t *Table) Combo(a input.Action) input.Combo {
	if s := t.slot(a); s != nil {
		return *s
	}
	return input.Combo{}
}

// Bindings returns every binding in document order: Movement, Rotation, Resize.
func (t *Table) Bindings() []Binding {
	actions := input.Actions()
	out := make([]Binding, 0, len(actions))
	for _, a := range actions {
		out = append(out, Binding{Action: a, Combo: *t.slot(a)})
	}
	return out
}
