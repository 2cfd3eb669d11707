package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/clipshrink/internal/check"
	"github.com/backmassage/clipshrink/internal/config"
	"github.com/backmassage/clipshrink/internal/display"
	"github.com/backmassage/clipshrink/internal/logging"
)

func newCheckCmd(f *config.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Show the ffmpeg version and test the H.264/AAC encoders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f, nil, false)
			if err != nil {
				return err
			}
			log, err := logging.NewLogger(&cfg)
			if err != nil {
				return fmt.Errorf("open log: %w", err)
			}
			defer log.Close()

			display.PrintBanner(cmd.OutOrStdout())
			check.RunCheck(context.Background(), &cfg, log)
			return nil
		},
	}
}
