package terminal

import (
	"unicode/utf8"

	"circle-sandbox/internal/commands"
	"circle-sandbox/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	BarHeight = 40
	prompt    = "> "
	fontSize  = 20
	padding   = 8
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
	maxLineLen       = 200
)

var (
	// Reused every frame when drawing the console to avoid per-frame color allocations.
	barColor    = rl.NewColor(40, 40, 40, 255)
	lineColor   = rl.NewColor(80, 80, 80, 255)
	chatBgColor = rl.NewColor(24, 24, 24, 240)
)

// Terminal is the console bar at the bottom of the window, shown and hidden with ESC.
// Lines starting with "cmd " are parsed as subcommand + flags and run through the registry;
// anything else is only logged with a hint.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
}

// New returns a closed Terminal that logs to log and runs commands through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen reports whether the console is visible and capturing keyboard input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Update handles ESC (toggle), and when open: typing, paste, backspace, enter. Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = !t.open
	}
	if !t.open {
		return
	}
	// Paste: Ctrl+V (Windows/Linux) or Cmd+V (macOS)
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		t.inputBuf += rl.GetClipboardText()
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.inputBuf != "" {
		t.Submit(t.inputBuf)
		t.inputBuf = ""
	}
}

// Submit logs line and runs it if it is a command.
func (t *Terminal) Submit(line string) {
	t.log.Log(line)
	args, isCmd := commands.Parse(line)
	if !isCmd {
		t.log.Log(`type "cmd help" for commands`)
		return
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Log(err.Error())
	}
}

// Draw draws the input bar and the most recent log lines above it when the console is open.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int(rl.GetScreenWidth())
	screenH := int(rl.GetScreenHeight())
	barY := screenH - BarHeight

	chatHeight := maxLinesOnScreen * lineHeight
	chatY := barY - chatHeight
	if chatY < 0 {
		chatHeight = barY
		chatY = 0
	}
	if chatHeight > 0 {
		rl.DrawRectangle(0, int32(chatY), int32(screenW), int32(chatHeight), chatBgColor)
	}
	lines := t.log.Lines()
	start := 0
	if len(lines) > maxLinesOnScreen {
		start = len(lines) - maxLinesOnScreen
	}
	for i := start; i < len(lines); i++ {
		y := chatY + (i-start)*lineHeight + padding
		line := lines[i]
		if len(line) > maxLineLen {
			line = line[:maxLineLen-3] + "..."
		}
		rl.DrawText(line, int32(padding), int32(y), int32(fontSize), rl.LightGray)
	}

	rl.DrawRectangle(0, int32(barY), int32(screenW), int32(BarHeight), barColor)
	rl.DrawRectangle(0, int32(barY), int32(screenW), 1, lineColor)
	rl.DrawText(prompt+t.inputBuf+"|", int32(padding), int32(barY+padding), int32(fontSize), rl.White)
}
