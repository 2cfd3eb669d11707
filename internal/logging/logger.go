// Package logging provides the leveled console logger used by every front
// end, plus the append-only [Journal] sink the interactive mode reads from.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/backmassage/clipshrink/internal/config"
	"github.com/backmassage/clipshrink/internal/term"
)

// Logger provides leveled, optionally colored logging with an optional
// structured (JSON) file sink. All methods are goroutine-safe.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	color   bool
	verbose bool
	file    *zap.Logger
	fh      *os.File
}

// NewLogger writes to stdout (errors to stderr), resolving colors from cfg.
// Call Close() when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	l := &Logger{
		out:     os.Stdout,
		errOut:  os.Stderr,
		color:   term.Configure(cfg.Log.Color),
		verbose: cfg.Log.Verbose,
	}
	if err := l.openFile(cfg.Log.File); err != nil {
		return nil, err
	}
	return l, nil
}

// NewWriterLogger sends every level to w without colors. Used by the TUI
// (w is a [Journal]) and by tests.
func NewWriterLogger(w io.Writer, cfg *config.Config) (*Logger, error) {
	l := &Logger{
		out:     w,
		errOut:  w,
		verbose: cfg.Log.Verbose,
	}
	if err := l.openFile(cfg.Log.File); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Logger) openFile(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	level := zapcore.InfoLevel
	if l.verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), level)
	l.file = zap.New(core)
	l.fh = f
	return nil
}

// Close flushes and closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	_ = l.file.Sync()
	err := l.fh.Close()
	l.file, l.fh = nil, nil
	return err
}

func (l *Logger) line(level, color, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.out
	if level == "ERROR" {
		out = l.errOut
	}
	tag := "[" + level + "]"
	if l.color {
		tag = term.Paint(color, tag)
	}
	_, _ = io.WriteString(out, ts+" "+tag+" "+text+"\n")
	if l.file != nil {
		if level == "SUCCESS" {
			l.file.Info(text, zap.Bool("success", true))
		} else {
			l.file.Log(zapLevel(level), text)
		}
	}
}

func zapLevel(level string) zapcore.Level {
	switch level {
	case "ERROR":
		return zapcore.ErrorLevel
	case "WARN":
		return zapcore.WarnLevel
	case "DEBUG":
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", term.Active.Info, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", term.Active.Success, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", term.Active.Warn, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to the error writer.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", term.Active.Error, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", term.Active.Debug, fmt.Sprintf(format, args...))
}

// Output forwards one line of ffmpeg output unchanged (no timestamp, no
// level). It has the shape of ffmpeg.LineSink.
func (l *Logger) Output(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, text+"\n")
	if l.file != nil {
		l.file.Info(text, zap.String("source", "ffmpeg"))
	}
}

// Blank writes an empty separator line (console only).
func (l *Logger) Blank() {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, "\n")
}
