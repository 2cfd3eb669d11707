// Package config holds runtime configuration: defaults, the optional TOML
// config file, CLI flag binding, and validation. All defaults match the
// original compress_video tool.
package config

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Conventional CRF bounds. Values outside are accepted but logged as a warning.
const (
	CRFConventionalMin = 18
	CRFConventionalMax = 28
)

// DefaultExtension is the media extension a directory input is filtered by.
const DefaultExtension = ".mp4"

// EncodeParams is the per-batch encoding bundle. It is passed by value so each
// batch holds its own read-only copy.
type EncodeParams struct {
	CRF          int    `toml:"crf"`           // Default: 23. Lower = higher fidelity.
	Preset       Preset `toml:"preset"`        // Default: "slow".
	AudioBitrate string `toml:"audio_bitrate"` // Default: "128k". Free-form ffmpeg token.
	Threads      int    `toml:"threads"`       // Default: 0 (let ffmpeg decide).
	HWAccel      bool   `toml:"hwaccel"`       // Use CUDA decode + h264_nvenc.
	IncludeAudio bool   `toml:"audio"`         // Default: true. False strips audio.
}

// InputConfig controls input expansion.
type InputConfig struct {
	Extension string `toml:"extension"` // Default: ".mp4". Matched case-insensitively.
}

// OutputConfig holds the output specification.
type OutputConfig struct {
	Path   string `toml:"path"`   // Empty: write next to each source.
	Strict bool   `toml:"strict"` // Reject multi-file batches that target one file.
}

// FFmpegConfig locates the external binaries.
type FFmpegConfig struct {
	Path      string `toml:"path"`       // Default: "ffmpeg" (resolved via PATH).
	ProbePath string `toml:"probe_path"` // Default: "ffprobe". Only used with --stats.
}

// LogConfig groups display and logging settings.
type LogConfig struct {
	File          string    `toml:"file"`    // Optional structured log file.
	Color         ColorMode `toml:"color"`   // Default: "auto".
	Verbose       bool      `toml:"verbose"` // Enables debug lines.
	ShowFileStats bool      `toml:"stats"`   // Log an ffprobe summary per source.
}

// Config holds all runtime settings. It is populated by [DefaultConfig], then
// overlaid with the config file by [Load] and with explicitly passed flags by
// [Flags.Apply].
type Config struct {
	// InputPath is the positional input (file or directory).
	InputPath string `toml:"-"`

	Encode EncodeParams `toml:"encode"`
	Input  InputConfig  `toml:"input"`
	Output OutputConfig `toml:"output"`
	FFmpeg FFmpegConfig `toml:"ffmpeg"`
	Log    LogConfig    `toml:"log"`
}

// DefaultConfig returns a Config with the defaults of the original tool.
func DefaultConfig() Config {
	return Config{
		Encode: EncodeParams{
			CRF:          23,
			Preset:       PresetSlow,
			AudioBitrate: "128k",
			Threads:      0,
			HWAccel:      false,
			IncludeAudio: true,
		},
		Input: InputConfig{
			Extension: DefaultExtension,
		},
		FFmpeg: FFmpegConfig{
			Path:      "ffmpeg",
			ProbePath: "ffprobe",
		},
		Log: LogConfig{
			Color: ColorAuto,
		},
	}
}

// Validate reports every problem with the encode settings in one error.
func (p EncodeParams) Validate() error {
	var err error
	if !p.Preset.Valid() {
		err = multierr.Append(err, fmt.Errorf("%w: %q", ErrInvalidPreset, string(p.Preset)))
	}
	if p.Threads < 0 {
		err = multierr.Append(err, fmt.Errorf("threads must be >= 0 (got %d)", p.Threads))
	}
	if strings.TrimSpace(p.AudioBitrate) == "" {
		err = multierr.Append(err, errors.New("audio bitrate must not be empty"))
	}
	return err
}

// CRFConventional reports whether the CRF sits inside the conventional 18–28 band.
func (p EncodeParams) CRFConventional() bool {
	return p.CRF >= CRFConventionalMin && p.CRF <= CRFConventionalMax
}

// Validate checks enum fields and required values. All problems are
// aggregated so the user can fix them in one pass. The input path is only
// required when requireInput is set (the TUI fills it in later).
func (c *Config) Validate(requireInput bool) error {
	err := c.Encode.Validate()

	switch c.Log.Color {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		err = multierr.Append(err, fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.Log.Color))
	}
	if strings.TrimSpace(c.Input.Extension) == "" {
		err = multierr.Append(err, errors.New("input extension must not be empty"))
	}
	if strings.TrimSpace(c.FFmpeg.Path) == "" {
		err = multierr.Append(err, errors.New("ffmpeg path must not be empty"))
	}
	if requireInput && c.InputPath == "" {
		err = multierr.Append(err, errors.New("need an input file or directory"))
	}
	return err
}

// NormalizeExtension lowercases ext and ensures a leading dot.
func NormalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.ToLower(ext)
}
