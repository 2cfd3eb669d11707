package tui

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/backmassage/clipshrink/internal/config"
)

// formConfig overlays the form values on the base configuration and
// validates the result. Every problem is reported, not just the first.
func (m Model) formConfig() (config.Config, error) {
	cfg := m.base
	var errs error

	cfg.InputPath = strings.TrimSpace(m.inputPath.Value())
	cfg.Output.Path = strings.TrimSpace(m.outputPath.Value())

	if crf, err := parseInt("CRF", m.crfInput.Value(), false); err != nil {
		errs = multierr.Append(errs, err)
	} else {
		cfg.Encode.CRF = crf
	}
	if threads, err := parseInt("threads", m.threadsIn.Value(), true); err != nil {
		errs = multierr.Append(errs, err)
	} else {
		cfg.Encode.Threads = threads
	}

	cfg.Encode.AudioBitrate = strings.TrimSpace(m.bitrateIn.Value())
	cfg.Encode.Preset = config.Presets[m.preset]
	cfg.Encode.HWAccel = m.gpu && m.nvenc
	cfg.Encode.IncludeAudio = m.audio

	if errs != nil {
		return cfg, errs
	}
	return cfg, cfg.Validate(true)
}

// parseInt reads a whole number; an empty value is 0 when allowEmpty.
func parseInt(name, s string, allowEmpty bool) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" && allowEmpty {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number, got %q", name, s)
	}
	return n, nil
}
