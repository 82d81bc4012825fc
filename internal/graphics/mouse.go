package graphics

import (
	"circle-sandbox/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PollMouse feeds this frame's left-button state into t. Call once per frame, before the
// simulation step, so any completed drag is queued ahead of Drain.
func PollMouse(t *input.DragTracker) {
	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	if w <= 0 || h <= 0 {
		return
	}
	m := rl.GetMousePosition()
	p := input.ScreenToNDC(m.X, m.Y, w, h)

	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		t.Press(p)
	case rl.IsMouseButtonReleased(rl.MouseButtonLeft):
		t.Release(p)
	default:
		t.Move(p)
	}
}
