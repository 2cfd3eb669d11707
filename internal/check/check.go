// Package check implements the `check` diagnostics command: ffmpeg version,
// the H.264/AAC encoders it offers, and short test encodes for libx264,
// NVENC and AAC. It is informational only and never stops on failure.
package check

import (
	"context"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/backmassage/clipshrink/internal/config"
	"github.com/backmassage/clipshrink/internal/ffmpeg"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// stays testable with a recording logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// Summary is what RunCheck found. Works maps each tested encoder to
// whether its test encode succeeded.
type Summary struct {
	Binary  string
	Version string
	Works   map[string]bool
}

type testEncode struct {
	label   string
	encoder string
	args    []string
}

// Test encodes read a tiny synthetic source and write to the null muxer.
var testEncodes = []testEncode{
	{"CPU H.264 (libx264)", ffmpeg.SoftwareEncoder, []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=256x256:d=0.1",
		"-c:v", ffmpeg.SoftwareEncoder, "-f", "null", "-",
	}},
	{"GPU H.264 (NVENC)", ffmpeg.NVENCEncoder, []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=256x256:d=0.1",
		"-c:v", ffmpeg.NVENCEncoder, "-f", "null", "-",
	}},
	{"AAC audio", ffmpeg.AudioEncoder, []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "sine=frequency=1000:duration=0.1",
		"-c:a", ffmpeg.AudioEncoder, "-f", "null", "-",
	}},
}

// RunCheck prints the diagnostics for cfg.FFmpeg.Path. The test encodes run
// concurrently; their results are logged in a fixed order.
func RunCheck(ctx context.Context, cfg *config.Config, log Logger) Summary {
	bin := cfg.FFmpeg.Path
	sum := Summary{Binary: bin, Works: make(map[string]bool, len(testEncodes))}
	log.Info("=== System Check ===")

	path, err := exec.LookPath(bin)
	if err != nil {
		log.Error("ffmpeg not found: %v", err)
		return sum
	}
	log.Debug("Using %s", path)

	sum.Version = ffmpeg.Version(ctx, bin)
	if sum.Version == "" {
		log.Warn("ffmpeg found but -version failed")
	} else {
		log.Success("ffmpeg: %s", sum.Version)
	}

	logEncoderListing(ctx, bin, log)

	results := make([]bool, len(testEncodes))
	var g errgroup.Group
	for i, te := range testEncodes {
		i, te := i, te
		g.Go(func() error {
			results[i] = runSilent(ctx, bin, te.args...)
			return nil
		})
	}
	_ = g.Wait()

	for i, te := range testEncodes {
		sum.Works[te.encoder] = results[i]
		switch {
		case results[i]:
			log.Success("%s works", te.label)
		case te.encoder == ffmpeg.NVENCEncoder:
			log.Warn("%s unavailable; GPU mode will fall back to %s", te.label, ffmpeg.SoftwareEncoder)
		default:
			log.Error("%s test encode failed", te.label)
		}
	}
	return sum
}

// logEncoderListing prints every H.264 and AAC encoder ffmpeg reports.
func logEncoderListing(ctx context.Context, bin string, log Logger) {
	out, err := exec.CommandContext(ctx, bin, "-hide_banner", "-encoders").Output()
	if err != nil {
		log.Warn("Could not list encoders: %v", err)
		return
	}
	log.Info("H.264 / AAC encoders:")
	for _, line := range strings.Split(string(out), "\n") {
		if isRelevantEncoder(line) {
			log.Info("  %s", strings.TrimSpace(line))
		}
	}
}

func isRelevantEncoder(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return false
	}
	name := strings.ToLower(fields[1])
	return strings.Contains(name, "264") || strings.Contains(name, "aac")
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(ctx context.Context, name string, args ...string) bool {
	return exec.CommandContext(ctx, name, args...).Run() == nil
}
