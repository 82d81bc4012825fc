package graphics

import (
	"circle-sandbox/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window describes the window opened by Run.
type Window struct {
	Width     int32
	Height    int32
	Title     string
	TargetFPS int32
}

// FrameClock reports the wall-clock time of the last frame as measured by raylib.
// The value is not clamped: a stalled frame yields a large delta.
type FrameClock struct{}

// Delta returns seconds elapsed during the previous frame.
func (FrameClock) Delta() float32 {
	return rl.GetFrameTime()
}

// Run opens a resizable window and runs the main loop until the window is closed. Each frame it
// calls update with the frame delta, then clears the screen and calls draw.
// ESC is reserved for the console, so only the window close button exits.
func Run(win Window, log *logger.Logger, update func(dt float32), draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(win.TargetFPS)

	var clock FrameClock
	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			log.Logf("window resized to %dx%d", rl.GetScreenWidth(), rl.GetScreenHeight())
		}
		update(clock.Delta())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
