package render

import (
	"circle-sandbox/internal/physics"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MinResolution is the smallest ring that still reads as a closed shape.
const MinResolution = 3

// BodyMesh is the render geometry for circular bodies: a unit ring of Resolution points,
// counter-clockwise from +X. It only reads body state (position, radius) when building vertices.
type BodyMesh struct {
	Resolution int
	ring       []mgl32.Vec2
	fan        []mgl32.Vec2 // scratch reused by Vertices
}

// NewBodyMesh precomputes the unit ring. Resolutions below MinResolution are raised to it.
func NewBodyMesh(resolution int) *BodyMesh {
	if resolution < MinResolution {
		resolution = MinResolution
	}
	ring := make([]mgl32.Vec2, resolution)
	step := 2 * math32.Pi / float32(resolution)
	for i := range ring {
		a := step * float32(i)
		ring[i] = mgl32.Vec2{math32.Cos(a), math32.Sin(a)}
	}
	return &BodyMesh{
		Resolution: resolution,
		ring:       ring,
		fan:        make([]mgl32.Vec2, 0, resolution+2),
	}
}

// Ring returns the unit ring points. The slice is shared; do not modify it.
func (m *BodyMesh) Ring() []mgl32.Vec2 {
	return m.ring
}

// Fan returns the triangle fan for a circle at center: center, the ring scaled by radius,
// then the first ring point again to close the fan. The returned slice is reused by the next call.
func (m *BodyMesh) Fan(center mgl32.Vec2, radius float32) []mgl32.Vec2 {
	fan := append(m.fan[:0], center)
	for _, p := range m.ring {
		fan = append(fan, center.Add(p.Mul(radius)))
	}
	fan = append(fan, fan[1])
	m.fan = fan
	return fan
}

// Vertices returns the fan for b at its current position in normalized coordinates.
func (m *BodyMesh) Vertices(b *physics.Body) []mgl32.Vec2 {
	return m.Fan(b.Position, b.Radius())
}
