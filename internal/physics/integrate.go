package physics

// Integrate advances b by dt seconds with semi-implicit Euler: gravity is applied to the
// vertical velocity first, then the position moves by the updated velocity.
// dt is not clamped; a long frame stall produces a proportionally long jump.
func Integrate(b *Body, gravity, dt float32) {
	b.Velocity[1] += gravity * dt
	b.Position[0] += b.Velocity[0] * dt
	b.Position[1] += b.Velocity[1] * dt
}
