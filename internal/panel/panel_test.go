package panel

import (
	"math"
	"testing"

	"github.com/bethropolis/flatland/internal/input"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestApplyMovement(t *testing.T) {
	p := New(100, 100, Steps{Move: 1, Rotate: 10, Resize: 5})

	for _, a := range []input.Action{input.ActionMoveRight, input.ActionMoveUp, input.ActionMoveForward, input.ActionMoveForward} {
		if !p.Apply(a) {
			t.Fatalf("Apply(%v) not recognised", a)
		}
	}
	want := Vec3{X: 1, Y: 1, Z: -2}
	if p.Position != want {
		t.Errorf("Position = %+v, want %+v", p.Position, want)
	}

	p.Apply(input.ActionMoveLeft)
	p.Apply(input.ActionMoveDown)
	p.Apply(input.ActionMoveBackward)
	if want := (Vec3{X: 0, Y: 0, Z: -1}); p.Position != want {
		t.Errorf("Position = %+v, want %+v", p.Position, want)
	}
}

func TestApplyRotationWraps(t *testing.T) {
	p := New(10, 10, Steps{Rotate: 90})

	p.Apply(input.ActionRotateDown)
	if !near(p.Pitch, 270) {
		t.Errorf("Pitch = %v, want 270", p.Pitch)
	}
	for i := 0; i < 5; i++ {
		p.Apply(input.ActionRotateLeft)
	}
	if !near(p.Yaw, 90) {
		t.Errorf("Yaw = %v, want 90", p.Yaw)
	}
	p.Apply(input.ActionRotateClockwise)
	p.Apply(input.ActionRotateCounterClockwise)
	p.Apply(input.ActionRotateCounterClockwise)
	if !near(p.Roll, 90) {
		t.Errorf("Roll = %v, want 90", p.Roll)
	}
}

func TestRotationStaysInRange(t *testing.T) {
	p := New(10, 10, Steps{Rotate: 0.3})
	for i := 0; i < 1000; i++ {
		if i%2 == 0 {
			p.Apply(input.ActionRotateDown)
		} else {
			p.Apply(input.ActionRotateUp)
		}
		if p.Pitch < 0 || p.Pitch >= 360 {
			t.Fatalf("step %d: Pitch = %v, outside [0, 360)", i, p.Pitch)
		}
	}

	for _, d := range []float64{-1e-15, -360, 360, 720.5, -90} {
		if got := wrapDegrees(d); got < 0 || got >= 360 {
			t.Errorf("wrapDegrees(%v) = %v, outside [0, 360)", d, got)
		}
	}
}

func TestApplyResizeClamps(t *testing.T) {
	p := New(10, 10, Steps{Resize: 6})

	p.Apply(input.ActionResizeUp)
	p.Apply(input.ActionResizeRight)
	if p.Width != 16 || p.Height != 16 {
		t.Errorf("size = %dx%d, want 16x16", p.Width, p.Height)
	}

	for i := 0; i < 5; i++ {
		p.Apply(input.ActionResizeLeft)
		p.Apply(input.ActionResizeDown)
	}
	if p.Width != MinSize || p.Height != MinSize {
		t.Errorf("size = %dx%d, want clamped to %d", p.Width, p.Height, MinSize)
	}
}

func TestApplyUnknown(t *testing.T) {
	p := New(0, -4, DefaultSteps())
	if p.Width != MinSize || p.Height != MinSize {
		t.Errorf("New did not clamp size: %dx%d", p.Width, p.Height)
	}
	if p.Apply(input.ActionUnknown) {
		t.Error("ActionUnknown should not be applied")
	}
}

func TestEveryActionIsHandled(t *testing.T) {
	p := New(50, 50, DefaultSteps())
	for _, a := range input.Actions() {
		if !p.Apply(a) {
			t.Errorf("Apply(%v) not handled", a)
		}
	}
}
