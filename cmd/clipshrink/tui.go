package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/backmassage/clipshrink/internal/config"
	"github.com/backmassage/clipshrink/internal/ffmpeg"
	"github.com/backmassage/clipshrink/internal/logging"
	"github.com/backmassage/clipshrink/internal/tui"
)

func newTUICmd(f *config.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui [input]",
		Short: "Interactive mode: edit settings, start a batch, watch the log",
		Long: `Open the interactive front end. Flags and the config file prefill the
form; [input] prefills the input path. The batch runs in the background
while ffmpeg's output scrolls in the log pane.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f, args, false)
			if err != nil {
				return err
			}
			// lipgloss owns styling here; keep ANSI codes out of the journal.
			cfg.Log.Color = config.ColorNever

			journal := &logging.Journal{}
			log, err := logging.NewWriterLogger(journal, &cfg)
			if err != nil {
				return fmt.Errorf("open log: %w", err)
			}
			defer log.Close()

			enc := ffmpeg.NewExecutor(cfg.FFmpeg.Path)
			p := tea.NewProgram(tui.NewModel(cfg, enc, log, journal), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
	config.RegisterEncoding(cmd.Flags(), f)
	return cmd
}
