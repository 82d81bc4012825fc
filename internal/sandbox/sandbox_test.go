package sandbox

import (
	"context"
	"strings"
	"testing"

	"circle-sandbox/internal/logger"
	"circle-sandbox/internal/physics"
	"circle-sandbox/internal/render"
	"circle-sandbox/internal/simconfig"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyConfig() simconfig.Config {
	cfg := simconfig.Default()
	cfg.Bodies = nil
	return cfg
}

func newSandbox(t *testing.T, cfg simconfig.Config) (*Sandbox, *logger.Logger) {
	t.Helper()
	log := logger.NewAt("")
	sb, err := New(cfg, log)
	require.NoError(t, err)
	return sb, log
}

func TestNewSeedsWorldAndExports(t *testing.T) {
	sb, _ := newSandbox(t, simconfig.Default())
	assert.Equal(t, 2, sb.World.Len())
	assert.Equal(t, 2, sb.Instances.Count())
	x, y := sb.Instances.At(1)
	assert.Equal(t, float32(0.5), x)
	assert.Equal(t, float32(0), y)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := simconfig.Default()
	cfg.Spawn.Mass = 0
	_, err := New(cfg, logger.NewAt(""))
	assert.ErrorIs(t, err, physics.ErrInvalidMass)
}

func TestUpdateAppliesDragBeforeStep(t *testing.T) {
	sb, log := newSandbox(t, emptyConfig())

	sb.Drag.Press(mgl32.Vec2{0, 0})
	sb.Drag.Release(mgl32.Vec2{0.1, 0})
	res := sb.Update(0)

	assert.Equal(t, 1, res.Spawned)
	assert.Equal(t, render.UploadRealloc, res.Upload)
	require.Equal(t, 1, sb.World.Len())
	b := sb.World.Bodies[0]
	assert.Equal(t, mgl32.Vec2{0, 0}, b.Position)
	assert.Equal(t, mgl32.Vec2{-0.2, 0}, b.Velocity)
	assert.Equal(t, float32(0.08), b.Radius())
	assert.Equal(t, float32(1), b.Mass())
	assert.Contains(t, strings.Join(log.Lines(), "\n"), "spawned body 0")

	// the spawned body is stepped in the same frame it was added
	sb.Drag.Press(mgl32.Vec2{0.5, 0.5})
	sb.Drag.Release(mgl32.Vec2{0.5, 0.5})
	res = sb.Update(0.5)
	assert.Equal(t, 1, res.Spawned)
	assert.InDelta(t, -0.1, sb.World.Bodies[0].Position[0], 1e-6)

	res = sb.Update(0.5)
	assert.Zero(t, res.Spawned)
	assert.Equal(t, render.UploadInPlace, res.Upload)
	assert.Equal(t, sb.World.Positions(nil), sb.Instances.Data())
}

func TestUpdatePaused(t *testing.T) {
	sb, _ := newSandbox(t, simconfig.Default())
	before := sb.World.Positions(nil)
	sb.SetPaused(true)

	sb.Drag.Press(mgl32.Vec2{0, 0.5})
	sb.Drag.Release(mgl32.Vec2{0, 0.5})
	res := sb.Update(1)

	assert.Equal(t, 1, res.Spawned, "spawns still apply while paused")
	assert.Equal(t, before, sb.World.Positions(nil)[:4])
	assert.Zero(t, sb.Stats().Frame)

	sb.SetPaused(false)
	sb.Update(0.1)
	assert.Equal(t, uint64(1), sb.Stats().Frame)
}

func TestUpdateLogsNonFiniteOnce(t *testing.T) {
	sb, log := newSandbox(t, emptyConfig())
	require.NoError(t, sb.AddBody(mgl32.Vec2{0, 0}, mgl32.Vec2{0, 0}, 0.1, 1))
	sb.World.Bodies[0].Velocity[0] = math32.Inf(1)

	sb.Update(0.01)
	sb.Update(0.01)
	var n int
	for _, l := range log.Lines() {
		if strings.Contains(l, "non-finite") {
			n++
		}
	}
	assert.Equal(t, 1, n)
}

func TestClearAndStats(t *testing.T) {
	sb, _ := newSandbox(t, simconfig.Default())
	sb.Update(0.01)
	st := sb.Stats()
	assert.Equal(t, 2, st.Bodies)
	assert.Equal(t, uint64(1), st.Frame)
	assert.InDelta(t, 0, st.Momentum[0], 1e-6)
	assert.Contains(t, st.String(), "2 bodies")

	sb.Clear()
	assert.Zero(t, sb.World.Len())
	assert.Zero(t, sb.Instances.Count())
}

func TestSetGravityIsSaved(t *testing.T) {
	sb, _ := newSandbox(t, simconfig.Default())
	sb.SetGravity(-3)
	assert.Equal(t, float32(-3), sb.World.Gravity)
	assert.Equal(t, float32(-3), sb.Config().World.Gravity)
}

func TestRunHeadless(t *testing.T) {
	sb, log := newSandbox(t, simconfig.Default())
	require.NoError(t, RunHeadless(context.Background(), sb, FixedClock(1.0/60), 120, 60))
	assert.Equal(t, uint64(120), sb.Stats().Frame)

	lines := log.Lines()
	var reports int
	for _, l := range lines {
		if strings.Contains(l, "] frame ") {
			reports++
		}
	}
	assert.Equal(t, 2, reports)
	assert.Contains(t, lines[len(lines)-1], "headless done")
}

func TestRunHeadlessStopsOnCancel(t *testing.T) {
	sb, _ := newSandbox(t, simconfig.Default())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunHeadless(ctx, sb, FixedClock(0.01), 0, 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, sb.Stats().Frame)
}
