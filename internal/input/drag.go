package input

import "github.com/go-gl/mathgl/mgl32"

// SpawnRequest is a completed left-button drag in normalized coordinates.
type SpawnRequest struct {
	Start mgl32.Vec2
	End   mgl32.Vec2
}

// DragTracker turns press/move/release events into spawn requests. Requests are queued and
// handed out by Drain so the frame loop can apply them between simulation steps.
type DragTracker struct {
	active  bool
	start   mgl32.Vec2
	current mgl32.Vec2
	pending []SpawnRequest
}

// NewDragTracker returns an idle tracker with an empty queue.
func NewDragTracker() *DragTracker {
	return &DragTracker{}
}

// Press starts a drag at p. A press while a drag is active restarts it.
func (t *DragTracker) Press(p mgl32.Vec2) {
	t.active = true
	t.start = p
	t.current = p
}

// Move updates the current end of an active drag. Ignored when no drag is active.
func (t *DragTracker) Move(p mgl32.Vec2) {
	if t.active {
		t.current = p
	}
}

// Release finishes the drag at p and queues a SpawnRequest. Ignored when no drag is active.
func (t *DragTracker) Release(p mgl32.Vec2) {
	if !t.active {
		return
	}
	t.active = false
	t.current = p
	t.pending = append(t.pending, SpawnRequest{Start: t.start, End: p})
}

// Cancel abandons an active drag without queueing anything.
func (t *DragTracker) Cancel() {
	t.active = false
}

// Active reports whether a drag is in progress.
func (t *DragTracker) Active() bool {
	return t.active
}

// Line returns the start and current end of the active drag (for the preview line).
func (t *DragTracker) Line() (start, end mgl32.Vec2) {
	return t.start, t.current
}

// Drain returns the queued requests in arrival order and empties the queue.
func (t *DragTracker) Drain() []SpawnRequest {
	if len(t.pending) == 0 {
		return nil
	}
	out := t.pending
	t.pending = nil
	return out
}

// ScreenToNDC maps a pixel position in a width x height window to normalized device coordinates:
// the top-left pixel is (-1, 1), the bottom-right is (1, -1).
func ScreenToNDC(x, y, width, height float32) mgl32.Vec2 {
	return mgl32.Vec2{2*x/width - 1, 1 - 2*y/height}
}

// NDCToScreen is the inverse of ScreenToNDC.
func NDCToScreen(p mgl32.Vec2, width, height float32) (x, y float32) {
	return (p[0] + 1) * 0.5 * width, (1 - p[1]) * 0.5 * height
}
