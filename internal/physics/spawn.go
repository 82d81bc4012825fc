package physics

import "github.com/go-gl/mathgl/mgl32"

// SpawnParams are the fixed properties of bodies created from a mouse drag.
type SpawnParams struct {
	Radius    float32
	Mass      float32
	DragScale float32 // velocity = DragScale * (start - end)
}

// DefaultSpawnParams returns radius 0.08, mass 1 and a drag scale of 2.
func DefaultSpawnParams() SpawnParams {
	return SpawnParams{Radius: 0.08, Mass: 1, DragScale: 2}
}

// SpawnFromDrag creates a body at the drag start. The velocity points from the drag end back
// toward the start (slingshot style), scaled by p.DragScale.
func SpawnFromDrag(start, end mgl32.Vec2, p SpawnParams) (*Body, error) {
	vel := start.Sub(end).Mul(p.DragScale)
	return NewBody(start, vel, p.Radius, p.Mass)
}
