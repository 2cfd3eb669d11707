package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/backmassage/clipshrink/internal/ffmpeg"
	"github.com/backmassage/clipshrink/internal/pipeline"
)

// refreshInterval is how often the log pane re-reads the journal.
const refreshInterval = 150 * time.Millisecond

// Async commands that return tea.Msg

func probeNVENC(enc pipeline.Encoder) tea.Cmd {
	return func() tea.Msg {
		return probeDoneMsg{available: enc.HasEncoder(context.Background(), ffmpeg.NVENCEncoder)}
	}
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func waitBatch(done <-chan pipeline.Report) tea.Cmd {
	return func() tea.Msg {
		return batchDoneMsg{report: <-done}
	}
}
