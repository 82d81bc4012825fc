package simconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"circle-sandbox/internal/physics"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// ConfigPath is the default config file, relative to the process working directory.
const ConfigPath = "config/sandbox.yaml"

// Window controls the raylib window.
type Window struct {
	Width     int32  `yaml:"width,omitempty"`
	Height    int32  `yaml:"height,omitempty"`
	Title     string `yaml:"title,omitempty"`
	TargetFPS int32  `yaml:"target_fps,omitempty"`
}

// World controls the simulation region and gravity.
type World struct {
	Gravity   float32    `yaml:"gravity,omitempty"`
	BoundsMin [2]float32 `yaml:"bounds_min,omitempty"`
	BoundsMax [2]float32 `yaml:"bounds_max,omitempty"`
}

// Spawn controls bodies created by mouse drag.
type Spawn struct {
	Radius    float32 `yaml:"radius,omitempty"`
	Mass      float32 `yaml:"mass,omitempty"`
	DragScale float32 `yaml:"drag_scale,omitempty"`
}

// Overlays are the debug overlays shown at startup.
type Overlays struct {
	ShowFPS      bool `yaml:"show_fps,omitempty"`
	ShowMemAlloc bool `yaml:"show_memalloc,omitempty"`
	ShowStats    bool `yaml:"show_stats,omitempty"`
}

// BodySpec is one body placed in the world at startup.
type BodySpec struct {
	Position [2]float32 `yaml:"position"`
	Velocity [2]float32 `yaml:"velocity,omitempty"`
	Radius   float32    `yaml:"radius"`
	Mass     float32    `yaml:"mass"`
}

// Config is the full sandbox configuration. Persisted as YAML across runs.
type Config struct {
	Window         Window     `yaml:"window,omitempty"`
	World          World      `yaml:"world,omitempty"`
	Spawn          Spawn      `yaml:"spawn,omitempty"`
	MeshResolution int        `yaml:"mesh_resolution,omitempty"`
	Overlays       Overlays   `yaml:"overlays,omitempty"`
	Bodies         []BodySpec `yaml:"bodies,omitempty"`
}

// Default returns the collision sandbox defaults: 800x600 window, no gravity, [-1,1] bounds,
// spawned bodies of radius 0.08 and mass 1 with a drag scale of 2, and two seed bodies.
func Default() Config {
	sp := physics.DefaultSpawnParams()
	return Config{
		Window: Window{
			Width:     800,
			Height:    600,
			Title:     "Circle Sandbox",
			TargetFPS: 60,
		},
		World: World{
			Gravity:   0,
			BoundsMin: [2]float32{-1, -1},
			BoundsMax: [2]float32{1, 1},
		},
		Spawn: Spawn{
			Radius:    sp.Radius,
			Mass:      sp.Mass,
			DragScale: sp.DragScale,
		},
		MeshResolution: 32,
		Bodies: []BodySpec{
			{Position: [2]float32{-0.5, 0}, Velocity: [2]float32{0.4, 0.1}, Radius: 0.1, Mass: 1},
			{Position: [2]float32{0.5, 0}, Velocity: [2]float32{-0.4, 0.05}, Radius: 0.1, Mass: 1},
		},
	}
}

// Load reads the config at path and merges it over Default(): fields missing from the file (or
// set to their zero value) keep the default. A missing file is not an error and yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	// A bodies list in the file replaces the seed scene as a whole instead of merging by index.
	bodies := cfg.Bodies
	if file.Bodies != nil {
		bodies = file.Bodies
	}
	cfg.Bodies, file.Bodies = nil, nil
	if err := copier.CopyWithOption(&cfg, &file, copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
		return Default(), fmt.Errorf("config: merge %s: %w", path, err)
	}
	cfg.Bodies = bodies
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the parent directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks values the simulation cannot run with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive (got %dx%d)", c.Window.Width, c.Window.Height)
	}
	if c.World.BoundsMin[0] >= c.World.BoundsMax[0] || c.World.BoundsMin[1] >= c.World.BoundsMax[1] {
		return fmt.Errorf("bounds_min %v must be below bounds_max %v", c.World.BoundsMin, c.World.BoundsMax)
	}
	if !positive(c.Spawn.Radius) {
		return fmt.Errorf("spawn: %w (got %v)", physics.ErrInvalidRadius, c.Spawn.Radius)
	}
	if !positive(c.Spawn.Mass) {
		return fmt.Errorf("spawn: %w (got %v)", physics.ErrInvalidMass, c.Spawn.Mass)
	}
	for i, b := range c.Bodies {
		if !positive(b.Radius) {
			return fmt.Errorf("bodies[%d]: %w (got %v)", i, physics.ErrInvalidRadius, b.Radius)
		}
		if !positive(b.Mass) {
			return fmt.Errorf("bodies[%d]: %w (got %v)", i, physics.ErrInvalidMass, b.Mass)
		}
	}
	return nil
}

// positive is false for zero, negative, NaN and +Inf.
func positive(v float32) bool {
	return v > 0 && !math32.IsInf(v, 1)
}

// SpawnParams returns the drag-spawn parameters for the physics package.
func (c Config) SpawnParams() physics.SpawnParams {
	return physics.SpawnParams{
		Radius:    c.Spawn.Radius,
		Mass:      c.Spawn.Mass,
		DragScale: c.Spawn.DragScale,
	}
}

// Bounds returns the configured world region.
func (c Config) Bounds() physics.Bounds {
	return physics.Bounds{
		Min: mgl32.Vec2(c.World.BoundsMin),
		Max: mgl32.Vec2(c.World.BoundsMax),
	}
}

// NewWorld builds a world from the config, including the seed bodies.
func (c Config) NewWorld() (*physics.World, error) {
	w := physics.NewWorld()
	w.SetGravity(c.World.Gravity)
	w.Bounds = c.Bounds()
	for i, s := range c.Bodies {
		b, err := physics.NewBody(mgl32.Vec2(s.Position), mgl32.Vec2(s.Velocity), s.Radius, s.Mass)
		if err != nil {
			return nil, fmt.Errorf("bodies[%d]: %w", i, err)
		}
		w.AddBody(b)
	}
	return w, nil
}
