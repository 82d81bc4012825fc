package simconfig

import (
	"os"
	"path/filepath"
	"testing"

	"circle-sandbox/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sandbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
world:
  gravity: -9.8
spawn:
  radius: 0.05
overlays:
  show_fps: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(-9.8), cfg.World.Gravity)
	assert.Equal(t, [2]float32{-1, -1}, cfg.World.BoundsMin)
	assert.Equal(t, float32(0.05), cfg.Spawn.Radius)
	assert.Equal(t, float32(1), cfg.Spawn.Mass)
	assert.Equal(t, float32(2), cfg.Spawn.DragScale)
	assert.True(t, cfg.Overlays.ShowFPS)
	assert.Equal(t, int32(800), cfg.Window.Width)
	assert.Equal(t, "Circle Sandbox", cfg.Window.Title)
	assert.Equal(t, Default().Bodies, cfg.Bodies)
}

func TestLoadBodiesReplaceSeedScene(t *testing.T) {
	path := writeConfig(t, `
bodies:
  - position: [0.1, 0.2]
    velocity: [0, -1]
    radius: 0.05
    mass: 2
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Bodies, 1)
	assert.Equal(t, BodySpec{
		Position: [2]float32{0.1, 0.2},
		Velocity: [2]float32{0, -1},
		Radius:   0.05,
		Mass:     2,
	}, cfg.Bodies[0])
}

func TestLoadErrors(t *testing.T) {
	t.Run("malformed", func(t *testing.T) {
		_, err := Load(writeConfig(t, "world: [unclosed"))
		assert.Error(t, err)
	})
	t.Run("negative spawn mass", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "spawn:\n  mass: -1\n"))
		assert.ErrorIs(t, err, physics.ErrInvalidMass)
		assert.Equal(t, Default(), cfg)
	})
	t.Run("bad seed body", func(t *testing.T) {
		_, err := Load(writeConfig(t, "bodies:\n  - position: [0, 0]\n    radius: 0\n    mass: 1\n"))
		assert.ErrorIs(t, err, physics.ErrInvalidRadius)
	})
	t.Run("inverted bounds", func(t *testing.T) {
		_, err := Load(writeConfig(t, "world:\n  bounds_min: [1, 1]\n  bounds_max: [-1, -1]\n"))
		assert.Error(t, err)
	})
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sandbox.yaml")
	cfg := Default()
	cfg.World.Gravity = -2.5
	cfg.MeshResolution = 12
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestConfigNewWorld(t *testing.T) {
	cfg := Default()
	cfg.World.Gravity = -1
	cfg.World.BoundsMin = [2]float32{-2, -1}
	cfg.World.BoundsMax = [2]float32{2, 1}

	w, err := cfg.NewWorld()
	require.NoError(t, err)
	assert.Equal(t, float32(-1), w.Gravity)
	assert.Equal(t, physics.Bounds{Min: mgl32.Vec2{-2, -1}, Max: mgl32.Vec2{2, 1}}, w.Bounds)
	require.Equal(t, 2, w.Len())
	assert.Equal(t, mgl32.Vec2{-0.5, 0}, w.Bodies[0].Position)
	assert.Equal(t, mgl32.Vec2{-0.4, 0.05}, w.Bodies[1].Velocity)
}

func TestConfigSpawnParams(t *testing.T) {
	assert.Equal(t, physics.DefaultSpawnParams(), Default().SpawnParams())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvGravity, "-9.80665")
	t.Setenv(EnvSpawnRadius, "0.04")
	t.Setenv(EnvTargetFPS, "144")

	cfg := Default()
	require.NoError(t, ApplyEnv(&cfg))
	assert.Equal(t, float32(-9.80665), cfg.World.Gravity)
	assert.Equal(t, float32(0.04), cfg.Spawn.Radius)
	assert.Equal(t, float32(1), cfg.Spawn.Mass)
	assert.Equal(t, int32(144), cfg.Window.TargetFPS)
}

func TestApplyEnvRejectsBadValues(t *testing.T) {
	t.Run("not a number", func(t *testing.T) {
		t.Setenv(EnvSpawnMass, "heavy")
		cfg := Default()
		assert.Error(t, ApplyEnv(&cfg))
		assert.Equal(t, Default(), cfg)
	})
	t.Run("invalid mass", func(t *testing.T) {
		t.Setenv(EnvSpawnMass, "0")
		cfg := Default()
		assert.ErrorIs(t, ApplyEnv(&cfg), physics.ErrInvalidMass)
		assert.Equal(t, Default(), cfg)
	})
}
