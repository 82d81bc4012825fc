package graphics

import (
	"circle-sandbox/internal/input"
	"circle-sandbox/internal/physics"
	"circle-sandbox/internal/render"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// BodyColor is the fill for every body.
	BodyColor = rl.NewColor(230, 120, 60, 255)
	// DragColor is the drag preview line.
	DragColor = rl.NewColor(200, 200, 200, 180)
	// BoundsColor outlines the simulation region.
	BoundsColor = rl.NewColor(90, 90, 90, 255)
)

// Renderer draws bodies with a shared BodyMesh. Positions come from the synced Instances, not
// from the world, so drawing sees exactly the data exported after the last step.
type Renderer struct {
	Mesh      *render.BodyMesh
	Instances *render.Instances
	points    []rl.Vector2
}

// NewRenderer returns a renderer drawing instances with a ring of the given resolution.
func NewRenderer(resolution int, instances *render.Instances) *Renderer {
	return &Renderer{
		Mesh:      render.NewBodyMesh(resolution),
		Instances: instances,
	}
}

// Draw renders one filled circle per instance. radius is looked up from the world by index,
// which matches instance order.
func (r *Renderer) Draw(w *physics.World) {
	sw, sh := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	n := r.Instances.Count()
	if n > w.Len() {
		n = w.Len()
	}
	for i := 0; i < n; i++ {
		x, y := r.Instances.At(i)
		r.points = r.points[:0]
		for _, p := range r.Mesh.Fan(mgl32.Vec2{x, y}, w.Bodies[i].Radius()) {
			px, py := input.NDCToScreen(p, sw, sh)
			r.points = append(r.points, rl.NewVector2(px, py))
		}
		rl.DrawTriangleFan(r.points, BodyColor)
	}
}

// DrawBounds outlines the world bounds.
func (r *Renderer) DrawBounds(b physics.Bounds) {
	sw, sh := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	x0, y0 := input.NDCToScreen(mgl32.Vec2{b.Min[0], b.Max[1]}, sw, sh)
	x1, y1 := input.NDCToScreen(mgl32.Vec2{b.Max[0], b.Min[1]}, sw, sh)
	rl.DrawRectangleLines(int32(x0), int32(y0), int32(x1-x0), int32(y1-y0), BoundsColor)
}

// DrawDrag draws the line of an in-progress drag, if any.
func (r *Renderer) DrawDrag(t *input.DragTracker) {
	if !t.Active() {
		return
	}
	sw, sh := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	start, end := t.Line()
	sx, sy := input.NDCToScreen(start, sw, sh)
	ex, ey := input.NDCToScreen(end, sw, sh)
	rl.DrawLineV(rl.NewVector2(sx, sy), rl.NewVector2(ex, ey), DragColor)
}
