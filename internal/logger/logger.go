package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogFilePath is the default sandbox log file, relative to the working directory.
const LogFilePath = "logs/sandbox.txt"

// maxLines caps the in-memory history shown in the console; the file keeps everything.
const maxLines = 500

// Logger keeps recent lines in memory (for the console overlay) and appends every line to a file.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
	now   func() time.Time
}

// New returns a Logger writing to LogFilePath and ensures the logs directory exists.
func New() *Logger {
	return NewAt(LogFilePath)
}

// NewAt returns a Logger writing to path. An empty path keeps lines in memory only.
func NewAt(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, lines: make([]string, 0), now: time.Now}
}

// Log appends a line, prefixed with [timestamp] in local time, to memory and to the log file.
func (l *Logger) Log(line string) {
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	if len(l.lines) > maxLines {
		l.lines = append(l.lines[:0], l.lines[len(l.lines)-maxLines:]...)
	}
	l.mu.Unlock()

	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats according to format and logs the result.
func (l *Logger) Logf(format string, args ...interface{}) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of the stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
