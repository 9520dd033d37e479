// Package logging provides the leveled console logger for the batch run.
// Output is human-readable status lines with emoji markers; errors go to
// stderr. Color is applied per level and disabled automatically when stdout
// is not a terminal, NO_COLOR is set, or the caller asks for plain output.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	color   bool
	verbose bool
}

// New builds a logger writing to stdout/stderr.
func New(noColor, verbose bool) *Logger {
	enable := !noColor &&
		os.Getenv("NO_COLOR") == "" &&
		strings.ToLower(os.Getenv("TERM")) != "dumb" &&
		isatty.IsTerminal(os.Stdout.Fd())
	if !enable {
		text.DisableColors()
	}
	return &Logger{out: os.Stdout, errOut: os.Stderr, color: enable, verbose: verbose}
}

// NewWithWriters is for tests.
func NewWithWriters(out, errOut io.Writer, verbose bool) *Logger {
	return &Logger{out: out, errOut: errOut, verbose: verbose}
}

func (l *Logger) line(w io.Writer, colors text.Colors, marker, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if marker != "" {
		msg = marker + " " + msg
	}
	if l.color {
		msg = colors.Sprint(msg)
	}
	fmt.Fprintln(w, msg)
}

// Info logs a neutral progress line. Callers include their own contextual
// marker (🔍, 🎬) in the message when one applies.
func (l *Logger) Info(format string, args ...any) {
	l.line(l.out, text.Colors{text.FgHiBlue}, "", fmt.Sprintf(format, args...))
}

// Success logs a green ✅ line.
func (l *Logger) Success(format string, args ...any) {
	l.line(l.out, text.Colors{text.FgHiGreen}, "✅", fmt.Sprintf(format, args...))
}

// Warn logs a yellow ⚠️ line.
func (l *Logger) Warn(format string, args ...any) {
	l.line(l.out, text.Colors{text.FgHiYellow}, "⚠️", fmt.Sprintf(format, args...))
}

// Error logs a red ❌ line to stderr.
func (l *Logger) Error(format string, args ...any) {
	l.line(l.errOut, text.Colors{text.FgHiRed}, "❌", fmt.Sprintf(format, args...))
}

// Debug logs only when verbose.
func (l *Logger) Debug(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.line(l.out, text.Colors{text.FgHiCyan}, "", fmt.Sprintf(format, args...))
}
