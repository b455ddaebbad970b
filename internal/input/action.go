// internal/input/action.go
package input

import "strings"

// Category groups related actions in the shortcut document.
type Category int

const (
	CategoryMovement Category = iota
	CategoryRotation
	CategoryResize
)

// String returns the section name used in shortcut documents.
func (c Category) String() string {
	switch c {
	case CategoryMovement:
		return "Movement"
	case CategoryRotation:
		return "Rotation"
	case CategoryResize:
		return "Resize"
	}
	return "Unknown"
}

// Categories lists every category in document order.
var Categories = []Category{CategoryMovement, CategoryRotation, CategoryResize}

// Action identifies something a matched shortcut asks the panel owner to do.
type Action int

// The closed set of actions, in document order.
const (
	ActionUnknown Action = iota

	// --- Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMoveForward
	ActionMoveBackward

	// --- Rotation ---
	ActionRotateUp
	ActionRotateDown
	ActionRotateLeft
	ActionRotateRight
	ActionRotateClockwise
	ActionRotateCounterClockwise

	// --- Resize ---
	ActionResizeUp
	ActionResizeDown
	ActionResizeLeft
	ActionResizeRight

	actionEnd
)

type actionInfo struct {
	category Category
	name     string
}

var actionInfos = map[Action]actionInfo{
	ActionMoveUp:       {CategoryMovement, "Up"},
	ActionMoveDown:     {CategoryMovement, "Down"},
	ActionMoveLeft:     {CategoryMovement, "Left"},
	ActionMoveRight:    {CategoryMovement, "Right"},
	ActionMoveForward:  {CategoryMovement, "Forward"},
	ActionMoveBackward: {CategoryMovement, "Backward"},

	ActionRotateUp:               {CategoryRotation, "Up"},
	ActionRotateDown:             {CategoryRotation, "Down"},
	ActionRotateLeft:             {CategoryRotation, "Left"},
	ActionRotateRight:            {CategoryRotation, "Right"},
	ActionRotateClockwise:        {CategoryRotation, "Clockwise"},
	ActionRotateCounterClockwise: {CategoryRotation, "CounterClockwise"},

	ActionResizeUp:    {CategoryResize, "Up"},
	ActionResizeDown:  {CategoryResize, "Down"},
	ActionResizeLeft:  {CategoryResize, "Left"},
	ActionResizeRight: {CategoryResize, "Right"},
}

// Actions returns every action in document order.
func Actions() []Action {
	out := make([]Action, 0, int(actionEnd)-1)
	for a := ActionUnknown + 1; a < actionEnd; a++ {
		out = append(out, a)
	}
	return out
}

// ActionsIn returns the actions of one category in document order.
func ActionsIn(c Category) []Action {
	var out []Action
	for _, a := range Actions() {
		if a.Category() == c {
			out = append(out, a)
		}
	}
	return out
}

// Category returns the category the action belongs to.
func (a Action) Category() Category {
	return actionInfos[a].category
}

// Name returns the action's entry name within its section, e.g. "Forward".
func (a Action) Name() string {
	if info, ok := actionInfos[a]; ok {
		return info.name
	}
	return "Unknown"
}

// String returns the qualified identifier, e.g. "Movement.Forward".
func (a Action) String() string {
	if _, ok := actionInfos[a]; !ok {
		return "Unknown"
	}
	return a.Category().String() + "." + a.Name()
}

// ParseAction decodes a qualified identifier such as "Rotation.Clockwise".
func ParseAction(s string) (Action, bool) {
	section, name, ok := strings.Cut(s, ".")
	if !ok {
		return ActionUnknown, false
	}
	for a, info := range actionInfos {
		if info.category.String() == section && info.name == name {
			return a, true
		}
	}
	return ActionUnknown, false
}

// ElementState is the transition a key event reports.
type ElementState int

const (
	Pressed ElementState = iota
	Released
)

func (s ElementState) String() string {
	if s == Released {
		return "Released"
	}
	return "Pressed"
}

// KeyEvent is one hardware key transition as delivered by the window system.
// Key may be KeyNone when the platform could not identify the key.
type KeyEvent struct {
	Key       Key
	State     ElementState
	Modifiers ModifierState
}
