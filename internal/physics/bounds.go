package physics

import "github.com/go-gl/mathgl/mgl32"

// Bounds is the axis-aligned region bodies are confined to.
type Bounds struct {
	Min mgl32.Vec2
	Max mgl32.Vec2
}

// DefaultBounds is the normalized device coordinate square [-1,1] x [-1,1].
func DefaultBounds() Bounds {
	return Bounds{Min: mgl32.Vec2{-1, -1}, Max: mgl32.Vec2{1, 1}}
}

// ResolveBounds keeps b fully inside bounds. Each axis is handled on its own: when the body
// pokes past a wall it is clamped to wall -/+ radius and that velocity component is negated.
// Returns which axes were clamped.
func ResolveBounds(b *Body, bounds Bounds) (hitX, hitY bool) {
	hitX = reflectAxis(b, bounds, 0)
	hitY = reflectAxis(b, bounds, 1)
	return hitX, hitY
}

func reflectAxis(b *Body, bounds Bounds, axis int) bool {
	r := b.radius
	switch {
	case b.Position[axis]-r < bounds.Min[axis]:
		b.Position[axis] = bounds.Min[axis] + r
	case b.Position[axis]+r > bounds.Max[axis]:
		b.Position[axis] = bounds.Max[axis] - r
	default:
		return false
	}
	b.Velocity[axis] = -b.Velocity[axis]
	return true
}
