package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/backmassage/clipshrink/internal/config"
	"github.com/backmassage/clipshrink/internal/pipeline"
)

var keys = struct {
	quit, next, prev, left, right, toggle, enter, start, scroll key.Binding
}{
	quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc")),
	next:   key.NewBinding(key.WithKeys("tab", "down")),
	prev:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	left:   key.NewBinding(key.WithKeys("left", "h")),
	right:  key.NewBinding(key.WithKeys("right", "l")),
	toggle: key.NewBinding(key.WithKeys(" ", "space")),
	enter:  key.NewBinding(key.WithKeys("enter")),
	start:  key.NewBinding(key.WithKeys("ctrl+s")),
	scroll: key.NewBinding(key.WithKeys("pgup", "pgdown")),
}

// formLines is roughly how many rows the form, notices and help take.
const formLines = 18

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logView.Width = max(msg.Width-4, 20)
		m.logView.Height = max(msg.Height-formLines, 5)
		return m, nil

	case probeDoneMsg:
		m.probed = true
		m.nvenc = msg.available
		m.gpu = msg.available
		if !msg.available {
			m.notice = "NVENC (h264_nvenc) not detected: GPU encoding is disabled"
		}
		return m, nil

	case tickMsg:
		m.refreshLog()
		return m, tick()

	case batchDoneMsg:
		m.running = false
		m.refreshLog()
		rep := msg.report
		switch {
		case errors.Is(rep.Err, pipeline.ErrEmptyBatch):
			m.errorMessage = rep.Err.Error()
		case rep.Err != nil:
			m.errorMessage = rep.Err.Error()
		default:
			m.statusMessage = fmt.Sprintf("Done: %d compressed, %d failed", rep.Stats.Succeeded, rep.Stats.Failed)
		}
		return m, nil
	}

	// Cursor blink and other component messages go to the focused input.
	if ti := m.textInput(m.focus); ti != nil {
		var cmd tea.Cmd
		*ti, cmd = ti.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.start):
		return m.start()

	case key.Matches(msg, keys.next):
		return m, m.setFocus(m.focus + 1)

	case key.Matches(msg, keys.prev):
		return m, m.setFocus(m.focus - 1)

	case key.Matches(msg, keys.scroll):
		var cmd tea.Cmd
		m.logView, cmd = m.logView.Update(msg)
		return m, cmd
	}

	switch m.focus {
	case fieldPreset:
		switch {
		case key.Matches(msg, keys.left):
			m.cyclePreset(-1)
		case key.Matches(msg, keys.right), key.Matches(msg, keys.toggle), key.Matches(msg, keys.enter):
			m.cyclePreset(1)
		}
		return m, nil

	case fieldGPU:
		if key.Matches(msg, keys.toggle) || key.Matches(msg, keys.enter) {
			m.toggleGPU()
		}
		return m, nil

	case fieldAudio:
		if key.Matches(msg, keys.toggle) || key.Matches(msg, keys.enter) {
			m.audio = !m.audio
		}
		return m, nil

	case fieldStart:
		if key.Matches(msg, keys.toggle) || key.Matches(msg, keys.enter) {
			return m.start()
		}
		return m, nil
	}

	// Text fields: Enter advances, everything else is typing.
	if key.Matches(msg, keys.enter) {
		return m, m.setFocus(m.focus + 1)
	}
	m.errorMessage = ""
	ti := m.textInput(m.focus)
	var cmd tea.Cmd
	*ti, cmd = ti.Update(msg)
	return m, cmd
}

func (m *Model) cyclePreset(step int) {
	n := len(config.Presets)
	m.preset = ((m.preset+step)%n + n) % n
}

func (m *Model) toggleGPU() {
	if !m.nvenc {
		if m.probed {
			m.errorMessage = "GPU encoding is unavailable: NVENC not detected"
		} else {
			m.errorMessage = "Still checking for NVENC support"
		}
		return
	}
	m.gpu = !m.gpu
}

// start validates the form and launches the batch in the background. The
// start control stays disabled until batchDoneMsg arrives.
func (m Model) start() (tea.Model, tea.Cmd) {
	if m.running {
		return m, nil
	}
	m.errorMessage, m.statusMessage = "", ""

	cfg, err := m.formConfig()
	if err != nil {
		m.errorMessage = err.Error()
		return m, nil
	}

	m.running = true
	m.statusMessage = "Compressing..."
	done := pipeline.Start(context.Background(), &cfg, m.log, m.enc)
	return m, waitBatch(done)
}

// refreshLog re-renders the log pane when the journal grew, following the
// tail unless the user scrolled up.
func (m *Model) refreshLog() {
	n := m.journal.Len()
	if n == m.journalSeen {
		return
	}
	follow := m.logView.AtBottom()
	m.logView.SetContent(m.journal.String())
	m.journalSeen = n
	if follow {
		m.logView.GotoBottom()
	}
}
