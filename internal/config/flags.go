package config

// This file binds CLI flags. Flag values land in a separate Flags struct and
// are copied onto the Config only when the user actually passed them, so that
// defaults and config-file values hold otherwise (same idea as negated flags
// being applied after Parse).

import (
	"github.com/spf13/pflag"
)

// Flags holds raw flag values before they are applied to a Config.
type Flags struct {
	ConfigPath string

	Output       string
	StrictOutput bool
	CRF          int
	Preset       Preset
	AudioBitrate string
	Threads      int
	HWAccel      bool
	NoAudio      bool
	Extension    string
	FFmpegPath   string

	ShowStats  bool
	Verbose    bool
	LogFile    string
	ForceColor bool
	NoColor    bool
}

// RegisterPersistent adds flags shared by every subcommand.
func RegisterPersistent(fs *pflag.FlagSet, f *Flags) {
	def := DefaultConfig()
	fs.StringVar(&f.ConfigPath, "config", "", "Path to a TOML config file")
	fs.StringVar(&f.FFmpegPath, "ffmpeg", def.FFmpeg.Path, "ffmpeg binary to invoke")
	fs.BoolVarP(&f.Verbose, "verbose", "v", false, "Verbose output")
	fs.StringVarP(&f.LogFile, "log", "l", "", "Append a structured JSON log to file")
	fs.BoolVar(&f.ForceColor, "color", false, "Force colored logs")
	fs.BoolVar(&f.NoColor, "no-color", false, "Disable colored logs")
}

// RegisterEncoding adds the batch flags used by the root command.
func RegisterEncoding(fs *pflag.FlagSet, f *Flags) {
	def := DefaultConfig()
	f.Preset = def.Encode.Preset

	fs.StringVarP(&f.Output, "output", "o", "", "Output file or directory (default: next to each source, <name>_compressed.mp4)")
	fs.BoolVar(&f.StrictOutput, "strict-output", false, "Refuse to write several inputs to one output file")
	fs.IntVar(&f.CRF, "crf", def.Encode.CRF, "CRF value (18-28, lower = better quality)")
	fs.VarP(&f.Preset, "preset", "p", "Compression preset: ultrafast .. veryslow (slower = better ratio)")
	fs.StringVar(&f.AudioBitrate, "audio-bitrate", def.Encode.AudioBitrate, "Audio bitrate")
	fs.IntVar(&f.Threads, "threads", def.Encode.Threads, "Number of ffmpeg threads (0 = auto)")
	fs.BoolVar(&f.HWAccel, "hwaccel", false, "Encode with NVENC when available (falls back to libx264)")
	fs.BoolVar(&f.NoAudio, "no-audio", false, "Strip the audio stream")
	fs.StringVar(&f.Extension, "ext", def.Input.Extension, "Media extension picked up from an input directory")
	fs.BoolVar(&f.ShowStats, "stats", false, "Log an ffprobe summary of each source")
}

// Apply copies every flag the user set onto cfg. Flags that were not passed
// leave the (default or file) value untouched.
func (f *Flags) Apply(fs *pflag.FlagSet, cfg *Config) {
	changed := func(name string) bool {
		fl := fs.Lookup(name)
		return fl != nil && fl.Changed
	}

	if changed("output") {
		cfg.Output.Path = f.Output
	}
	if changed("strict-output") {
		cfg.Output.Strict = f.StrictOutput
	}
	if changed("crf") {
		cfg.Encode.CRF = f.CRF
	}
	if changed("preset") {
		cfg.Encode.Preset = f.Preset
	}
	if changed("audio-bitrate") {
		cfg.Encode.AudioBitrate = f.AudioBitrate
	}
	if changed("threads") {
		cfg.Encode.Threads = f.Threads
	}
	if changed("hwaccel") {
		cfg.Encode.HWAccel = f.HWAccel
	}
	if changed("no-audio") {
		cfg.Encode.IncludeAudio = !f.NoAudio
	}
	if changed("ext") {
		cfg.Input.Extension = f.Extension
	}
	if changed("ffmpeg") {
		cfg.FFmpeg.Path = f.FFmpegPath
	}
	if changed("stats") {
		cfg.Log.ShowFileStats = f.ShowStats
	}
	if changed("verbose") {
		cfg.Log.Verbose = f.Verbose
	}
	if changed("log") {
		cfg.Log.File = f.LogFile
	}
	if f.NoColor {
		cfg.Log.Color = ColorNever
	} else if f.ForceColor {
		cfg.Log.Color = ColorAlways
	}

	cfg.Input.Extension = NormalizeExtension(cfg.Input.Extension)
}
