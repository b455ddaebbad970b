// Package panel holds the transform of the focused panel and applies actions to it.
package panel

import (
	"fmt"
	"math"

	"github.com/bethropolis/flatland/internal/input"
)

// Steps configures how far one action moves, rotates or resizes.
type Steps struct {
	Move   float64 // Distance per movement action
	Rotate float64 // Degrees per rotation action
	Resize int     // Size units per resize action
}

// DefaultSteps returns the steps used when none are configured.
func DefaultSteps() Steps {
	return Steps{Move: 0.05, Rotate: 15, Resize: 32}
}

// Vec3 is a position in panel space. X grows right, Y up, Z towards the viewer.
type Vec3 struct {
	X, Y, Z float64
}

// Panel is the state the shortcut actions manipulate.
type Panel struct {
	Position Vec3
	Pitch    float64 // Degrees, [0, 360)
	Yaw      float64
	Roll     float64
	Width    int
	Height   int

	steps Steps
}

// MinSize is the smallest width or height resizing allows.
const MinSize = 1

// New returns a panel at the origin with the given size.
func New(width, height int, steps Steps) *Panel {
	return &Panel{Width: max(width, MinSize), Height: max(height, MinSize), steps: steps}
}

// Apply changes the panel according to action and reports whether the
// action was recognised.
func (p *Panel) Apply(action input.Action) bool {
	move, turn, grow := p.steps.Move, p.steps.Rotate, p.steps.Resize

	switch action {
	case input.ActionMoveUp:
		p.Position.Y += move
	case input.ActionMoveDown:
		p.Position.Y -= move
	case input.ActionMoveLeft:
		p.Position.X -= move
	case input.ActionMoveRight:
		p.Position.X += move
	case input.ActionMoveForward:
		p.Position.Z -= move
	case input.ActionMoveBackward:
		p.Position.Z += move

	case input.ActionRotateUp:
		p.Pitch = wrapDegrees(p.Pitch + turn)
	case input.ActionRotateDown:
		p.Pitch = wrapDegrees(p.Pitch - turn)
	case input.ActionRotateLeft:
		p.Yaw = wrapDegrees(p.Yaw + turn)
	case input.ActionRotateRight:
		p.Yaw = wrapDegrees(p.Yaw - turn)
	case input.ActionRotateClockwise:
		p.Roll = wrapDegrees(p.Roll - turn)
	case input.ActionRotateCounterClockwise:
		p.Roll = wrapDegrees(p.Roll + turn)

	case input.ActionResizeUp:
		p.Height += grow
	case input.ActionResizeDown:
		p.Height = max(p.Height-grow, MinSize)
	case input.ActionResizeLeft:
		p.Width = max(p.Width-grow, MinSize)
	case input.ActionResizeRight:
		p.Width += grow

	default:
		return false
	}
	return true
}

func wrapDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	// A tiny negative remainder plus 360 rounds to 360.
	if d >= 360 {
		d = 0
	}
	return d
}

// String summarises the transform on one line.
func (p *Panel) String() string {
	return fmt.Sprintf("pos (%.2f, %.2f, %.2f)  rot (%.0f°, %.0f°, %.0f°)  size %dx%d",
		p.Position.X, p.Position.Y, p.Position.Z, p.Pitch, p.Yaw, p.Roll, p.Width, p.Height)
}
