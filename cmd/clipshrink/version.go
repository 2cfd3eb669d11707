package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/clipshrink/internal/config"
	"github.com/backmassage/clipshrink/internal/ffmpeg"
)

func newVersionCmd(f *config.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f, nil, false)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "clipshrink %s (commit %s)\n", version, commit)
			if v := ffmpeg.Version(context.Background(), cfg.FFmpeg.Path); v != "" {
				fmt.Fprintln(out, v)
			} else {
				fmt.Fprintf(out, "%s: not found\n", cfg.FFmpeg.Path)
			}
			return nil
		},
	}
}
