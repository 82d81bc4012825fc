package debug

import (
	"fmt"
	"image/color"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds runtime debugging overlays (FPS, heap, simulation stats), drawn top-right.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStats    bool
	Stats        func() string // simulation line drawn when ShowStats is on
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastStats    string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn.
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the heap allocation counter is drawn.
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// SetShowStats sets whether the simulation stats line is drawn.
func (d *Debug) SetShowStats(show bool) {
	d.ShowStats = show
}

// Draw renders the enabled overlays. Call after the world and console in the draw loop.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	line := func(text string, col color.RGBA) {
		if text == "" {
			return
		}
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, col)
		y += lineHeight
	}

	if d.ShowFPS {
		if update || d.lastFpsText == "" {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		line(d.lastFpsText, rl.Green)
	}
	if d.ShowMemAlloc {
		if update || d.lastMemText == "" {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		line(d.lastMemText, rl.Green)
	}
	if d.ShowStats && d.Stats != nil {
		if update || d.lastStats == "" {
			d.lastStats = d.Stats()
		}
		line(d.lastStats, rl.SkyBlue)
	}
}
