package sandbox

import (
	"fmt"
	"math"
	"strconv"

	"circle-sandbox/internal/commands"

	"github.com/go-gl/mathgl/mgl32"
)

// Overlays is the part of the debug overlay the console can toggle.
type Overlays interface {
	SetShowFPS(show bool)
	SetShowMemAlloc(show bool)
	SetShowStats(show bool)
}

// RegisterCommands adds the sandbox console commands to reg. configPath is where "save" writes.
func RegisterCommands(reg *commands.Registry, sb *Sandbox, ov Overlays, configPath string) {
	gravityFS := commands.NewFlagSet("gravity")
	g := gravityFS.Float64("g", math.NaN(), "vertical acceleration")
	off := gravityFS.Bool("off", false, "disable gravity")
	reg.Register("gravity", "gravity -g <value> | -off", gravityFS, func() error {
		switch {
		case *off:
			sb.SetGravity(0)
		case !math.IsNaN(*g):
			sb.SetGravity(float32(*g))
		default:
			return fmt.Errorf("gravity: use -g <value> or -off (current %.3f)", sb.World.Gravity)
		}
		sb.log.Logf("gravity set to %.3f", sb.World.Gravity)
		return nil
	})

	spawnFS := commands.NewFlagSet("spawn")
	radius := spawnFS.Float64("r", 0, "radius (default: spawn radius)")
	mass := spawnFS.Float64("m", 0, "mass (default: spawn mass)")
	reg.Register("spawn", "spawn [-r radius] [-m mass] [--] x y [vx vy]", spawnFS, func() error {
		vals, err := parseFloats(spawnFS.Args())
		if err != nil {
			return fmt.Errorf("spawn: %w", err)
		}
		if len(vals) != 2 && len(vals) != 4 {
			return fmt.Errorf("spawn: want x y [vx vy], got %d values", len(vals))
		}
		var vel mgl32.Vec2
		if len(vals) == 4 {
			vel = mgl32.Vec2{vals[2], vals[3]}
		}
		r, m := sb.cfg.Spawn.Radius, sb.cfg.Spawn.Mass
		if *radius != 0 {
			r = float32(*radius)
		}
		if *mass != 0 {
			m = float32(*mass)
		}
		if err := sb.AddBody(mgl32.Vec2{vals[0], vals[1]}, vel, r, m); err != nil {
			return fmt.Errorf("spawn: %w", err)
		}
		sb.export()
		sb.log.Logf("spawned body %d at (%.3f, %.3f)", sb.World.Len()-1, vals[0], vals[1])
		return nil
	})

	reg.Register("pause", "toggle stepping", commands.NewFlagSet("pause"), func() error {
		sb.SetPaused(!sb.Paused())
		if sb.Paused() {
			sb.log.Log("paused")
		} else {
			sb.log.Log("resumed")
		}
		return nil
	})

	reg.Register("clear", "remove all bodies", commands.NewFlagSet("clear"), func() error {
		n := sb.World.Len()
		sb.Clear()
		sb.log.Logf("cleared %d bodies", n)
		return nil
	})

	statsFS := commands.NewFlagSet("stats")
	statsShow := statsFS.Bool("show", false, "show the stats overlay")
	statsHide := statsFS.Bool("hide", false, "hide the stats overlay")
	reg.Register("stats", "stats [-show|-hide]", statsFS, func() error {
		return toggle(*statsShow, *statsHide, ov.SetShowStats, func() {
			sb.log.Log(sb.Stats().String())
		})
	})

	fpsFS := commands.NewFlagSet("fps")
	fpsShow := fpsFS.Bool("show", false, "show the FPS counter")
	fpsHide := fpsFS.Bool("hide", false, "hide the FPS counter")
	reg.Register("fps", "fps -show|-hide", fpsFS, func() error {
		return toggle(*fpsShow, *fpsHide, ov.SetShowFPS, nil)
	})

	memFS := commands.NewFlagSet("memalloc")
	memShow := memFS.Bool("show", false, "show heap usage")
	memHide := memFS.Bool("hide", false, "hide heap usage")
	reg.Register("memalloc", "memalloc -show|-hide", memFS, func() error {
		return toggle(*memShow, *memHide, ov.SetShowMemAlloc, nil)
	})

	reg.Register("save", "save config to "+configPath, commands.NewFlagSet("save"), func() error {
		if err := sb.SaveConfig(configPath); err != nil {
			return fmt.Errorf("save: %w", err)
		}
		sb.log.Logf("config saved to %s", configPath)
		return nil
	})

	reg.Register("help", "list commands", commands.NewFlagSet("help"), func() error {
		for _, line := range reg.Help() {
			sb.log.Log("cmd " + line)
		}
		return nil
	})
}

// toggle applies a -show/-hide pair. With neither flag, fallback runs (or an error is returned).
func toggle(show, hide bool, set func(bool), fallback func()) error {
	switch {
	case show && hide:
		return fmt.Errorf("use either -show or -hide")
	case show:
		set(true)
	case hide:
		set(false)
	case fallback != nil:
		fallback()
	default:
		return fmt.Errorf("use -show or -hide")
	}
	return nil
}

func parseFloats(args []string) ([]float32, error) {
	out := make([]float32, 0, len(args))
	for _, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", a)
		}
		out = append(out, float32(f))
	}
	return out, nil
}
