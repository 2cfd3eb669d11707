package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hbollon/go-edlib"
)

// ErrInvalidPreset is returned when a preset token is not in [Presets].
var ErrInvalidPreset = errors.New("invalid preset")

// Preset is the encoder speed/efficiency trade-off selector.
type Preset string

const (
	PresetUltrafast Preset = "ultrafast"
	PresetSuperfast Preset = "superfast"
	PresetVeryfast  Preset = "veryfast"
	PresetFaster    Preset = "faster"
	PresetFast      Preset = "fast"
	PresetMedium    Preset = "medium"
	PresetSlow      Preset = "slow"
	PresetSlower    Preset = "slower"
	PresetVeryslow  Preset = "veryslow"
)

// Presets lists every preset from fastest (largest output) to slowest
// (smallest output). Callers must not modify it.
var Presets = []Preset{
	PresetUltrafast,
	PresetSuperfast,
	PresetVeryfast,
	PresetFaster,
	PresetFast,
	PresetMedium,
	PresetSlow,
	PresetSlower,
	PresetVeryslow,
}

// Valid reports whether p is one of [Presets].
func (p Preset) Valid() bool {
	return p.Index() >= 0
}

// Index returns the position of p in [Presets], or -1.
func (p Preset) Index() int {
	for i, v := range Presets {
		if v == p {
			return i
		}
	}
	return -1
}

// PresetNames returns the preset tokens as plain strings, in order.
func PresetNames() []string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = string(p)
	}
	return names
}

// ParsePreset converts s (case-insensitive) into a Preset. Unknown tokens
// wrap [ErrInvalidPreset] and, when one is close enough, name the nearest
// valid preset.
func ParsePreset(s string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(s)))
	if p.Valid() {
		return p, nil
	}
	if hint := suggestPreset(string(p)); hint != "" {
		return "", fmt.Errorf("%w %q (did you mean %q?)", ErrInvalidPreset, s, hint)
	}
	return "", fmt.Errorf("%w %q (use one of: %s)", ErrInvalidPreset, s, strings.Join(PresetNames(), ", "))
}

func suggestPreset(s string) string {
	if s == "" {
		return ""
	}
	hint, err := edlib.FuzzySearchThreshold(s, PresetNames(), 0.5, edlib.Levenshtein)
	if err != nil {
		return ""
	}
	return hint
}

// String implements pflag.Value.
func (p *Preset) String() string { return string(*p) }

// Set implements pflag.Value.
func (p *Preset) Set(s string) error {
	v, err := ParsePreset(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Type implements pflag.Value.
func (p *Preset) Type() string { return "preset" }

// UnmarshalText lets the TOML decoder reject unknown presets at load time.
func (p *Preset) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}

// MarshalText implements encoding.TextMarshaler.
func (p Preset) MarshalText() ([]byte, error) {
	return []byte(p), nil
}

// String implements pflag.Value.
func (c *ColorMode) String() string { return string(*c) }

// Set implements pflag.Value.
func (c *ColorMode) Set(s string) error {
	switch ColorMode(strings.ToLower(s)) {
	case ColorAuto:
		*c = ColorAuto
	case ColorAlways:
		*c = ColorAlways
	case ColorNever:
		*c = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}

// Type implements pflag.Value.
func (c *ColorMode) Type() string { return "color" }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ColorMode) UnmarshalText(text []byte) error {
	return c.Set(string(text))
}
