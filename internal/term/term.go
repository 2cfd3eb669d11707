// Package term decides whether console output gets ANSI colors and holds
// the level palette the logger and banner paint with.
package term

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/backmassage/clipshrink/internal/config"
)

// Palette maps each kind of console output to its escape sequence.
// The zero Palette paints nothing.
type Palette struct {
	Info    string
	Success string
	Warn    string
	Error   string
	Debug   string
	Banner  string
	Reset   string
}

var ansi = Palette{
	Info:    "\033[1;94m",
	Success: "\033[1;92m",
	Warn:    "\033[1;93m",
	Error:   "\033[1;91m",
	Debug:   "\033[1;96m",
	Banner:  "\033[1;95m",
	Reset:   "\033[0m",
}

// Active is the palette in use. It is set by [Configure] during startup,
// before any goroutine writes to the console.
var Active Palette

// Configure picks the palette for mode and reports whether colors are on.
// The TUI passes [config.ColorNever]: lipgloss styles that screen.
func Configure(mode config.ColorMode) bool {
	if wantColor(mode, os.Stdout) {
		Active = ansi
	} else {
		Active = Palette{}
	}
	return Enabled()
}

// Enabled reports whether the active palette emits escapes.
func Enabled() bool { return Active.Reset != "" }

// Paint wraps s in code and a reset. With an empty code s is returned as is.
func Paint(code, s string) string {
	if code == "" {
		return s
	}
	return code + s + Active.Reset
}

// wantColor applies the mode. Auto means stdout is a terminal, NO_COLOR
// (https://no-color.org) is unset and TERM is not "dumb".
func wantColor(mode config.ColorMode, out *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || strings.EqualFold(os.Getenv("TERM"), "dumb") {
		return false
	}
	return IsTerminal(out)
}

// IsTerminal reports whether f is a TTY (including Cygwin/MSYS ptys).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
