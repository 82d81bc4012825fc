package sandbox

import (
	"fmt"

	"circle-sandbox/internal/input"
	"circle-sandbox/internal/logger"
	"circle-sandbox/internal/physics"
	"circle-sandbox/internal/render"
	"circle-sandbox/internal/simconfig"

	"github.com/go-gl/mathgl/mgl32"
)

// Sandbox is the simulation context owned by the frame loop: the world, pending input, and the
// exported instance positions. Everything runs on the caller's goroutine; input only queues
// requests, which Update applies before stepping so a spawn never lands mid-step.
type Sandbox struct {
	World     *physics.World
	Drag      *input.DragTracker
	Instances *render.Instances

	cfg       simconfig.Config
	log       *logger.Logger
	paused    bool
	frame     uint64
	last      physics.StepStats
	positions []float32
	// nonFinite is set once a NaN/Inf state has been logged, so it is reported once per episode.
	nonFinite bool
}

// FrameResult is what one Update did.
type FrameResult struct {
	Spawned int
	Step    physics.StepStats
	Upload  render.UploadMode
}

// New builds a sandbox (world, seed bodies, drag tracker) from cfg.
func New(cfg simconfig.Config, log *logger.Logger) (*Sandbox, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sandbox: %w", err)
	}
	w, err := cfg.NewWorld()
	if err != nil {
		return nil, fmt.Errorf("sandbox: %w", err)
	}
	s := &Sandbox{
		World:     w,
		Drag:      input.NewDragTracker(),
		Instances: &render.Instances{},
		cfg:       cfg,
		log:       log,
	}
	s.export()
	log.Logf("sandbox ready: %d bodies, gravity %.3f", w.Len(), w.Gravity)
	return s, nil
}

// Update runs one frame: apply queued spawns, step the world by dt (unless paused), and export
// positions to the instance store.
func (s *Sandbox) Update(dt float32) FrameResult {
	var res FrameResult
	for _, req := range s.Drag.Drain() {
		if err := s.Spawn(req.Start, req.End); err != nil {
			s.log.Log(err.Error())
			continue
		}
		res.Spawned++
	}

	if !s.paused {
		res.Step = s.World.Step(dt)
		s.last = res.Step
		s.frame++
		s.checkFinite(res.Step)
	}

	res.Upload = s.export()
	return res
}

// Spawn adds a body for a drag from start to end using the configured spawn parameters.
func (s *Sandbox) Spawn(start, end mgl32.Vec2) error {
	b, err := physics.SpawnFromDrag(start, end, s.cfg.SpawnParams())
	if err != nil {
		return fmt.Errorf("spawn: %w", err)
	}
	s.World.AddBody(b)
	s.log.Logf("spawned body %d at (%.3f, %.3f) v=(%.3f, %.3f)",
		s.World.Len()-1, b.Position[0], b.Position[1], b.Velocity[0], b.Velocity[1])
	return nil
}

// AddBody validates and appends a body with explicit properties.
func (s *Sandbox) AddBody(pos, vel mgl32.Vec2, radius, mass float32) error {
	b, err := physics.NewBody(pos, vel, radius, mass)
	if err != nil {
		return err
	}
	s.World.AddBody(b)
	return nil
}

// Clear removes every body. Intended for the console, between frames.
func (s *Sandbox) Clear() {
	s.World.Reset()
	s.nonFinite = false
	s.export()
}

// SetPaused stops or resumes stepping. Spawns and export continue while paused.
func (s *Sandbox) SetPaused(p bool) {
	s.paused = p
}

// Paused reports whether stepping is paused.
func (s *Sandbox) Paused() bool {
	return s.paused
}

// SetGravity changes the world gravity and remembers it in the config for Save.
func (s *Sandbox) SetGravity(g float32) {
	s.World.SetGravity(g)
	s.cfg.World.Gravity = g
}

// Config returns the current configuration, including runtime changes such as gravity.
func (s *Sandbox) Config() simconfig.Config {
	return s.cfg
}

// SaveConfig writes the current configuration to path.
func (s *Sandbox) SaveConfig(path string) error {
	return simconfig.Save(path, s.cfg)
}

func (s *Sandbox) export() render.UploadMode {
	s.positions = s.World.Positions(s.positions)
	return s.Instances.Sync(s.positions)
}

func (s *Sandbox) checkFinite(st physics.StepStats) {
	if st.NonFinite == 0 {
		s.nonFinite = false
		return
	}
	if !s.nonFinite {
		s.log.Logf("frame %d: %d bodies have non-finite position or velocity", s.frame, st.NonFinite)
		s.nonFinite = true
	}
}
