package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/backmassage/clipshrink/internal/config"
	"github.com/backmassage/clipshrink/internal/display"
	"github.com/backmassage/clipshrink/internal/ffmpeg"
	"github.com/backmassage/clipshrink/internal/logging"
	"github.com/backmassage/clipshrink/internal/pipeline"
)

// reportedError wraps an error that has already been written to the log, so
// Execute does not print it a second time.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// Execute runs the command line and returns the process exit code: 1 for
// configuration problems or an empty batch, 0 otherwise (even when some
// files failed to compress).
func Execute() int {
	if err := newRootCmd().Execute(); err != nil {
		var r reportedError
		if !errors.As(err, &r) {
			fmt.Fprintf(os.Stderr, "clipshrink: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	f := &config.Flags{}

	root := &cobra.Command{
		Use:   "clipshrink [flags] <input>",
		Short: "Batch-compress videos to H.264 MP4 with ffmpeg",
		Long: `clipshrink - batch video compression through ffmpeg

<input> is a video file or a directory. For a directory, every direct entry
ending in the media extension (default .mp4, any case) is compressed in name
order. Each file becomes <name>_compressed.mp4 next to the source, inside
--output when it is an existing directory, or exactly --output otherwise.

Settings are read from built-in defaults, then a TOML config file
(--config, $CLIPSHRINK_CONFIG, ./clipshrink.toml or
~/.config/clipshrink/config.toml), then the flags you pass.

Examples:
  clipshrink ~/Videos/phone                 # compress every .mp4 in the folder
  clipshrink -o out/ --crf 26 -p medium trip.mp4
  clipshrink --hwaccel --no-audio clips/    # NVENC when available
  clipshrink tui                            # interactive mode`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(cmd, f, args)
		},
	}

	config.RegisterPersistent(root.PersistentFlags(), f)
	config.RegisterEncoding(root.Flags(), f)

	root.Version = version
	root.SetVersionTemplate("clipshrink {{.Version}}\n")

	root.AddCommand(newTUICmd(f), newCheckCmd(f), newVersionCmd(f))
	return root
}

// loadConfig layers defaults, the config file and explicitly set flags,
// takes the positional input if any, and validates the result.
func loadConfig(cmd *cobra.Command, f *config.Flags, args []string, requireInput bool) (config.Config, error) {
	cfg := config.DefaultConfig()

	path, err := config.Discover(f.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if path != "" {
		if err := config.Load(path, &cfg); err != nil {
			return cfg, err
		}
	}

	f.Apply(cmd.Flags(), &cfg)
	if len(args) > 0 {
		cfg.InputPath = args[0]
	}
	return cfg, cfg.Validate(requireInput)
}

func runCompress(cmd *cobra.Command, f *config.Flags, args []string) error {
	cfg, err := loadConfig(cmd, f, args, true)
	if err != nil {
		return err
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer log.Close()

	display.PrintBanner(cmd.OutOrStdout())
	log.Info("=== clipshrink v%s ===", version)
	log.Info("In:  %s", cfg.InputPath)
	log.Debug("ffmpeg: %s", cfg.FFmpeg.Path)
	log.Blank()

	enc := ffmpeg.NewExecutor(cfg.FFmpeg.Path)
	if _, err := pipeline.Run(context.Background(), &cfg, log, enc); err != nil {
		log.Error("%v", err)
		return reportedError{err}
	}
	return nil
}
