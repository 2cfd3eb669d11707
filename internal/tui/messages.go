package tui

import (
	"time"

	"github.com/backmassage/clipshrink/internal/pipeline"
)

// Message types for async operations

type probeDoneMsg struct {
	available bool
}

type tickMsg time.Time

type batchDoneMsg struct {
	report pipeline.Report
}
