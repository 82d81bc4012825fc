package physics

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrInvalidRadius is returned by NewBody when the radius is not a positive finite number.
	ErrInvalidRadius = errors.New("radius must be positive and finite")
	// ErrInvalidMass is returned by NewBody when the mass is not a positive finite number.
	ErrInvalidMass = errors.New("mass must be positive and finite")
)

// Body is a circular rigid body in normalized coordinates.
// Radius and mass are fixed at creation; position and velocity are changed only by the World step.
type Body struct {
	Position mgl32.Vec2
	Velocity mgl32.Vec2
	radius   float32
	mass     float32
}

// NewBody returns a body at position with the given velocity, radius, and mass.
// Radius and mass must both be strictly positive and finite.
func NewBody(position, velocity mgl32.Vec2, radius, mass float32) (*Body, error) {
	if !positiveFinite(radius) {
		return nil, fmt.Errorf("body: %w (got %v)", ErrInvalidRadius, radius)
	}
	if !positiveFinite(mass) {
		return nil, fmt.Errorf("body: %w (got %v)", ErrInvalidMass, mass)
	}
	return &Body{
		Position: position,
		Velocity: velocity,
		radius:   radius,
		mass:     mass,
	}, nil
}

// Radius returns the body radius.
func (b *Body) Radius() float32 { return b.radius }

// Mass returns the body mass.
func (b *Body) Mass() float32 { return b.mass }

// DistanceTo returns the distance between the centers of b and other.
func (b *Body) DistanceTo(other *Body) float32 {
	dx := b.Position[0] - other.Position[0]
	dy := b.Position[1] - other.Position[1]
	return math32.Sqrt(dx*dx + dy*dy)
}

// Momentum returns mass * velocity.
func (b *Body) Momentum() mgl32.Vec2 {
	return b.Velocity.Mul(b.mass)
}

// KineticEnergy returns 0.5 * m * |v|^2.
func (b *Body) KineticEnergy() float32 {
	return 0.5 * b.mass * b.Velocity.Dot(b.Velocity)
}

// finite reports whether position and velocity hold only finite values.
func (b *Body) finite() bool {
	for _, v := range [4]float32{b.Position[0], b.Position[1], b.Velocity[0], b.Velocity[1]} {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func positiveFinite(v float32) bool {
	return v > 0 && !math32.IsInf(v, 1)
}
