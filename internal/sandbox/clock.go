package sandbox

// Clock supplies the time step for each frame in seconds.
type Clock interface {
	Delta() float32
}

// FixedClock always returns the same delta. Used for headless runs and tests.
type FixedClock float32

// Delta returns the fixed step.
func (c FixedClock) Delta() float32 {
	return float32(c)
}
