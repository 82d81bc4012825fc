package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"circle-sandbox/internal/commands"
	"circle-sandbox/internal/debug"
	"circle-sandbox/internal/env"
	"circle-sandbox/internal/graphics"
	"circle-sandbox/internal/logger"
	"circle-sandbox/internal/sandbox"
	"circle-sandbox/internal/simconfig"
	"circle-sandbox/internal/terminal"
)

func init() {
	// raylib (GLFW underneath) must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", simconfig.ConfigPath, "config file (YAML)")
	envPath := flag.String("env", ".env", "optional KEY=VALUE file with SANDBOX_* overrides")
	headless := flag.Bool("headless", false, "step the simulation without a window")
	frames := flag.Int("frames", 600, "headless: frames to run (0 = until interrupted)")
	dt := flag.Float64("dt", 1.0/60, "headless: fixed time step in seconds")
	report := flag.Int("report", 60, "headless: log stats every N frames (0 = only at the end)")
	flag.Parse()

	log := logger.New()
	if err := env.Load(*envPath); err != nil {
		log.Logf("env: %v", err)
	}
	cfg, err := simconfig.Load(*configPath)
	if err != nil {
		log.Logf("%v; using defaults", err)
	}
	if err := simconfig.ApplyEnv(&cfg); err != nil {
		log.Logf("env overrides ignored: %v", err)
	}

	sb, err := sandbox.New(cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := sandbox.RunHeadless(ctx, sb, sandbox.FixedClock(*dt), *frames, *report); err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	reg := commands.NewRegistry()
	dbg := debug.New()
	dbg.ShowFPS = cfg.Overlays.ShowFPS
	dbg.ShowMemAlloc = cfg.Overlays.ShowMemAlloc
	dbg.ShowStats = cfg.Overlays.ShowStats
	dbg.Stats = func() string { return sb.Stats().String() }
	sandbox.RegisterCommands(reg, sb, dbg, *configPath)

	term := terminal.New(log, reg)
	log.Log(`left-drag to launch a body; ESC opens the console ("cmd help")`)
	renderer := graphics.NewRenderer(cfg.MeshResolution, sb.Instances)

	update := func(dt float32) {
		term.Update()
		if term.IsOpen() {
			sb.Drag.Cancel()
		} else {
			graphics.PollMouse(sb.Drag)
		}
		sb.Update(dt)
	}
	draw := func() {
		renderer.DrawBounds(sb.World.Bounds)
		renderer.Draw(sb.World)
		renderer.DrawDrag(sb.Drag)
		term.Draw()
		dbg.Draw()
	}
	win := graphics.Window{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		TargetFPS: cfg.Window.TargetFPS,
	}
	graphics.Run(win, log, update, draw)
}
