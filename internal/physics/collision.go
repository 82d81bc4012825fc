package physics

import "github.com/go-gl/mathgl/mgl32"

// coincidentNormal is used when two centers sit exactly on top of each other and the
// contact normal is otherwise undefined. The lower-index body is pushed toward +X.
var coincidentNormal = mgl32.Vec2{1, 0}

// Contact describes the outcome of resolving one pair.
type Contact struct {
	Overlapping bool       // centers closer than the sum of radii
	Resolved    bool       // impulse and overlap correction were applied
	Impulse     float32    // signed impulse magnitude along Normal (<= 0 for approaching bodies)
	Normal      mgl32.Vec2 // unit normal pointing from b toward a
}

// ResolvePair resolves a circle-circle overlap between a and b with a perfectly elastic impulse
// along the contact normal followed by a half-and-half positional push.
// Bodies already moving apart along the normal are left untouched.
func ResolvePair(a, b *Body) Contact {
	dist := a.DistanceTo(b)
	minDist := a.radius + b.radius
	if dist >= minDist {
		return Contact{}
	}

	var n mgl32.Vec2
	if dist > 0 {
		n = a.Position.Sub(b.Position).Mul(1 / dist)
	} else {
		n = coincidentNormal
	}
	c := Contact{Overlapping: true, Normal: n}

	relDot := a.Velocity.Sub(b.Velocity).Dot(n)
	if relDot > 0 {
		return c
	}

	impulse := (2 * relDot) / (1/a.mass + 1/b.mass)
	a.Velocity = a.Velocity.Sub(n.Mul(impulse / a.mass))
	b.Velocity = b.Velocity.Add(n.Mul(impulse / b.mass))

	overlap := 0.5 * (minDist - dist)
	a.Position = a.Position.Add(n.Mul(overlap))
	b.Position = b.Position.Sub(n.Mul(overlap))

	c.Resolved = true
	c.Impulse = impulse
	return c
}
