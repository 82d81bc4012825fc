package physics

import "github.com/go-gl/mathgl/mgl32"

// World holds the body collection and runs the per-frame step: integrate, pairwise collisions,
// then walls. It is not safe for concurrent use; the frame loop is the only writer.
type World struct {
	Gravity float32 // vertical acceleration applied before integration; 0 disables gravity
	Bounds  Bounds
	Bodies  []*Body
}

// StepStats summarizes what happened during one Step.
type StepStats struct {
	Contacts  int // overlapping pairs found
	Impulses  int // pairs that received an impulse and overlap correction
	WallHits  int // axis clamps against the bounds
	NonFinite int // bodies whose position or velocity became NaN or Inf
}

// NewWorld returns an empty world without gravity, bounded by [-1,1] on both axes.
func NewWorld() *World {
	return &World{
		Gravity: 0,
		Bounds:  DefaultBounds(),
		Bodies:  nil,
	}
}

// SetGravity sets the vertical acceleration (negative pulls toward -Y).
func (w *World) SetGravity(g float32) {
	w.Gravity = g
}

// AddBody appends a body to the world. Order is preserved; it decides which body of a pair is
// updated first and the order of exported positions.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// Len returns the number of bodies.
func (w *World) Len() int {
	return len(w.Bodies)
}

// Body returns the i-th body in insertion order.
func (w *World) Body(i int) *Body {
	return w.Bodies[i]
}

// Reset drops every body. Only called between frames on explicit user request.
func (w *World) Reset() {
	w.Bodies = w.Bodies[:0]
}

// Step advances the simulation by dt seconds.
//
// Pairs are visited once each in (i, j) order with i < j and are not revisited after later pairs
// move a body, so three mutually overlapping bodies may keep some overlap until the next frame.
// With dt == 0 integration is a no-op but collisions and walls are still resolved from the
// current positions and velocities.
func (w *World) Step(dt float32) StepStats {
	var stats StepStats

	for _, b := range w.Bodies {
		Integrate(b, w.Gravity, dt)
	}

	for i := 0; i < len(w.Bodies); i++ {
		bi := w.Bodies[i]
		for j := i + 1; j < len(w.Bodies); j++ {
			c := ResolvePair(bi, w.Bodies[j])
			if c.Overlapping {
				stats.Contacts++
			}
			if c.Resolved {
				stats.Impulses++
			}
		}
	}

	for _, b := range w.Bodies {
		hitX, hitY := ResolveBounds(b, w.Bounds)
		if hitX {
			stats.WallHits++
		}
		if hitY {
			stats.WallHits++
		}
		if !b.finite() {
			stats.NonFinite++
		}
	}
	return stats
}

// Positions writes the flat [x0, y0, x1, y1, ...] position list in body order into dst,
// reusing its capacity, and returns it. The result always has length 2*Len().
func (w *World) Positions(dst []float32) []float32 {
	n := 2 * len(w.Bodies)
	if cap(dst) < n {
		dst = make([]float32, n)
	}
	dst = dst[:n]
	for i, b := range w.Bodies {
		dst[2*i] = b.Position[0]
		dst[2*i+1] = b.Position[1]
	}
	return dst
}

// Momentum returns the sum of mass * velocity over all bodies.
func (w *World) Momentum() mgl32.Vec2 {
	var p mgl32.Vec2
	for _, b := range w.Bodies {
		p = p.Add(b.Momentum())
	}
	return p
}

// KineticEnergy returns the total kinetic energy of all bodies.
func (w *World) KineticEnergy() float32 {
	var e float32
	for _, b := range w.Bodies {
		e += b.KineticEnergy()
	}
	return e
}
