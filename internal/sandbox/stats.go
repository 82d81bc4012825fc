package sandbox

import (
	"fmt"

	"circle-sandbox/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// Stats is a snapshot of the simulation for the debug overlay and the stats command.
type Stats struct {
	Frame    uint64
	Bodies   int
	Paused   bool
	Gravity  float32
	Momentum mgl32.Vec2
	Energy   float32
	Last     physics.StepStats
}

// Stats returns the current simulation snapshot.
func (s *Sandbox) Stats() Stats {
	return Stats{
		Frame:    s.frame,
		Bodies:   s.World.Len(),
		Paused:   s.paused,
		Gravity:  s.World.Gravity,
		Momentum: s.World.Momentum(),
		Energy:   s.World.KineticEnergy(),
		Last:     s.last,
	}
}

func (st Stats) String() string {
	state := ""
	if st.Paused {
		state = " (paused)"
	}
	return fmt.Sprintf("frame %d%s: %d bodies, p=(%.3f, %.3f), KE=%.4f, contacts=%d, walls=%d",
		st.Frame, state, st.Bodies, st.Momentum[0], st.Momentum[1], st.Energy, st.Last.Contacts, st.Last.WallHits)
}
