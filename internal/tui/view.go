package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/backmassage/clipshrink/internal/config"
)

// Styles with adaptive colors for light/dark backgrounds
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "63", Dark: "205"}).
			MarginLeft(2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "250"})

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "9"}).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "34", Dark: "10"}).
			Bold(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "130", Dark: "214"})

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "63", Dark: "205"})

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "250"})

	disabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "250", Dark: "240"}).
			Strikethrough(true)

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "63", Dark: "63"})

	logBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "238"})
)

// View renders the form, the log pane and the status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("clipshrink") + "\n\n")

	b.WriteString(m.row(fieldInput, "Input", m.inputPath.View()))
	b.WriteString(m.row(fieldOutput, "Output", m.outputPath.View()))
	b.WriteString(m.row(fieldCRF, "CRF", m.crfInput.View()))
	b.WriteString(m.row(fieldPreset, "Preset", m.presetView()))
	b.WriteString(m.row(fieldBitrate, "Audio bitrate", m.bitrateIn.View()))
	b.WriteString(m.row(fieldThreads, "Threads", m.threadsIn.View()))
	b.WriteString(m.row(fieldGPU, "GPU (NVENC)", m.gpuView()))
	b.WriteString(m.row(fieldAudio, "Record audio", checkbox(m.audio)))
	b.WriteString("\n  " + m.startView() + "\n")

	if m.notice != "" {
		b.WriteString("  " + noticeStyle.Render(m.notice) + "\n")
	}

	b.WriteString(logBoxStyle.Render(m.logView.View()) + "\n")

	if m.errorMessage != "" {
		b.WriteString(errorStyle.Render("Error: "+m.errorMessage) + "\n")
	} else if m.statusMessage != "" {
		b.WriteString(successStyle.Render(m.statusMessage) + "\n")
	}

	b.WriteString(helpStyle.Render(
		"  tab/↓ next • shift+tab/↑ prev • ←/→ preset • space toggle • ctrl+s start • pgup/pgdn scroll log • esc quit",
	))
	return b.String()
}

func (m Model) row(f field, label, value string) string {
	style, cursor := inactiveStyle, "  "
	if m.focus == f {
		style, cursor = activeStyle, "▸ "
	}
	return fmt.Sprintf("%s%s %s\n", cursor, style.Render(fmt.Sprintf("%-14s", label)), value)
}

func (m Model) presetView() string {
	p := config.Presets[m.preset]
	return fmt.Sprintf("‹ %s ›  %s", p, helpStyle.Render(fmt.Sprintf("(%d/%d, slower = smaller)", m.preset+1, len(config.Presets))))
}

func (m Model) gpuView() string {
	switch {
	case !m.probed:
		return inactiveStyle.Render("[?] checking...")
	case !m.nvenc:
		return disabledStyle.Render("[ ] not available")
	}
	return checkbox(m.gpu)
}

func (m Model) startView() string {
	if m.running {
		return buttonStyle.Render(inactiveStyle.Render("Compressing..."))
	}
	label := "Start"
	if m.focus == fieldStart {
		label = activeStyle.Render("▸ Start")
	}
	return buttonStyle.Render(label)
}

func checkbox(on bool) string {
	if on {
		return "[✓]"
	}
	return "[ ]"
}
