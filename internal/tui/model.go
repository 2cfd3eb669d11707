// Package tui is the interactive front end: a form for the encoding
// parameters, a start control, and a live view of the batch log.
package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/backmassage/clipshrink/internal/config"
	"github.com/backmassage/clipshrink/internal/logging"
	"github.com/backmassage/clipshrink/internal/pipeline"
)

// field identifies a focusable form element, in tab order.
type field int

const (
	fieldInput field = iota
	fieldOutput
	fieldCRF
	fieldPreset
	fieldBitrate
	fieldThreads
	fieldGPU
	fieldAudio
	fieldStart
	fieldCount
)

// Model is the Bubbletea model for the compressor front end.
type Model struct {
	// Dependencies
	base    config.Config // defaults, config file and flags; the form overlays it
	enc     pipeline.Encoder
	log     *logging.Logger
	journal *logging.Journal

	// Components
	inputPath   textinput.Model
	outputPath  textinput.Model
	crfInput    textinput.Model
	bitrateIn   textinput.Model
	threadsIn   textinput.Model
	logView     viewport.Model
	journalSeen int

	// Form state
	focus  field
	preset int // index into config.Presets
	gpu    bool
	audio  bool

	// Capability probe
	probed bool
	nvenc  bool

	// UI state
	running       bool
	width         int
	height        int
	quitting      bool
	notice        string
	statusMessage string
	errorMessage  string
}

// NewModel builds the form from base. Batch output is written through log,
// which must append to journal; the log pane renders journal.
func NewModel(base config.Config, enc pipeline.Encoder, log *logging.Logger, journal *logging.Journal) Model {
	inputPath := textinput.New()
	inputPath.Placeholder = "Video file or folder"
	inputPath.CharLimit = 1024
	inputPath.Width = 60
	inputPath.SetValue(base.InputPath)
	inputPath.Focus()

	outputPath := textinput.New()
	outputPath.Placeholder = "Output file or folder (empty: next to each video)"
	outputPath.CharLimit = 1024
	outputPath.Width = 60
	outputPath.SetValue(base.Output.Path)

	crfInput := textinput.New()
	crfInput.Placeholder = "23"
	crfInput.CharLimit = 3
	crfInput.Width = 5
	crfInput.SetValue(strconv.Itoa(base.Encode.CRF))

	bitrateIn := textinput.New()
	bitrateIn.Placeholder = "128k"
	bitrateIn.CharLimit = 16
	bitrateIn.Width = 10
	bitrateIn.SetValue(base.Encode.AudioBitrate)

	threadsIn := textinput.New()
	threadsIn.Placeholder = "0 = auto"
	threadsIn.CharLimit = 4
	threadsIn.Width = 10
	threadsIn.SetValue(strconv.Itoa(base.Encode.Threads))

	preset := base.Encode.Preset.Index()
	if preset < 0 {
		preset = config.PresetSlow.Index()
	}

	return Model{
		base:       base,
		enc:        enc,
		log:        log,
		journal:    journal,
		inputPath:  inputPath,
		outputPath: outputPath,
		crfInput:   crfInput,
		bitrateIn:  bitrateIn,
		threadsIn:  threadsIn,
		logView:    viewport.New(80, 12),
		focus:      fieldInput,
		preset:     preset,
		audio:      base.Encode.IncludeAudio,
	}
}

// Init starts the cursor blink, the NVENC probe and the log refresh ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		probeNVENC(m.enc),
		tick(),
	)
}

// textInput returns the text input behind f, or nil for non-text fields.
func (m *Model) textInput(f field) *textinput.Model {
	switch f {
	case fieldInput:
		return &m.inputPath
	case fieldOutput:
		return &m.outputPath
	case fieldCRF:
		return &m.crfInput
	case fieldBitrate:
		return &m.bitrateIn
	case fieldThreads:
		return &m.threadsIn
	}
	return nil
}

// setFocus moves focus to f, focusing or blurring text inputs to match.
func (m *Model) setFocus(f field) tea.Cmd {
	m.focus = (f + fieldCount) % fieldCount
	var cmd tea.Cmd
	for i := field(0); i < fieldCount; i++ {
		ti := m.textInput(i)
		if ti == nil {
			continue
		}
		if i == m.focus {
			cmd = ti.Focus()
		} else {
			ti.Blur()
		}
	}
	return cmd
}
