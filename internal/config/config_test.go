package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 23, cfg.Encode.CRF)
	assert.Equal(t, PresetSlow, cfg.Encode.Preset)
	assert.Equal(t, "128k", cfg.Encode.AudioBitrate)
	assert.Equal(t, 0, cfg.Encode.Threads)
	assert.False(t, cfg.Encode.HWAccel)
	assert.True(t, cfg.Encode.IncludeAudio)
	assert.Equal(t, ".mp4", cfg.Input.Extension)
	assert.Equal(t, "ffmpeg", cfg.FFmpeg.Path)
	assert.Equal(t, ColorAuto, cfg.Log.Color)
	assert.Empty(t, cfg.Output.Path)
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Preset
		wantErr bool
	}{
		{"slow", "slow", PresetSlow, false},
		{"upper case", "VERYSLOW", PresetVeryslow, false},
		{"padded", " fast ", PresetFast, false},
		{"empty", "", "", true},
		{"unknown", "hq", "", true},
		{"typo", "medum", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePreset(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidPreset))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePreset_SuggestsNearest(t *testing.T) {
	_, err := ParsePreset("medum")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "medium"`)
}

func TestPresets_Ordered(t *testing.T) {
	require.Len(t, Presets, 9)
	assert.Equal(t, PresetUltrafast, Presets[0])
	assert.Equal(t, PresetVeryslow, Presets[len(Presets)-1])
	assert.Less(t, PresetFast.Index(), PresetSlow.Index())
	assert.Equal(t, -1, Preset("placebo").Index())
}

func TestEncodeParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *EncodeParams)
		wantErr bool
	}{
		{"defaults", func(p *EncodeParams) {}, false},
		{"crf outside convention is accepted", func(p *EncodeParams) { p.CRF = 40 }, false},
		{"bad preset", func(p *EncodeParams) { p.Preset = "placebo" }, true},
		{"negative threads", func(p *EncodeParams) { p.Threads = -2 }, true},
		{"empty bitrate", func(p *EncodeParams) { p.AudioBitrate = "  " }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultConfig().Encode
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_AggregatesErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Encode.Preset = "placebo"
	cfg.Encode.Threads = -1
	cfg.Log.Color = "sometimes"

	err := cfg.Validate(true)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "invalid preset")
	assert.Contains(t, msg, "threads")
	assert.Contains(t, msg, "color mode")
	assert.Contains(t, msg, "input")
}

func TestValidate_RequiresInput(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, cfg.Validate(true))
	assert.NoError(t, cfg.Validate(false))

	cfg.InputPath = "/videos"
	assert.NoError(t, cfg.Validate(true))
}

func TestCRFConventional(t *testing.T) {
	p := DefaultConfig().Encode
	for crf, want := range map[int]bool{17: false, 18: true, 23: true, 28: true, 29: false} {
		p.CRF = crf
		assert.Equal(t, want, p.CRFConventional(), "crf %d", crf)
	}
}

func TestNormalizeExtension(t *testing.T) {
	tests := []struct{ in, want string }{
		{".mp4", ".mp4"},
		{"mp4", ".mp4"},
		{".MKV", ".mkv"},
		{" mov ", ".mov"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeExtension(tt.in), "NormalizeExtension(%q)", tt.in)
	}
}

func TestFlags_ApplyOnlyChanged(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var f Flags
	RegisterPersistent(fs, &f)
	RegisterEncoding(fs, &f)

	require.NoError(t, fs.Parse([]string{"--crf", "20", "-p", "veryslow", "--no-audio", "--ext", "MOV"}))

	cfg := DefaultConfig()
	cfg.Encode.AudioBitrate = "96k" // as if loaded from a file
	f.Apply(fs, &cfg)

	assert.Equal(t, 20, cfg.Encode.CRF)
	assert.Equal(t, PresetVeryslow, cfg.Encode.Preset)
	assert.False(t, cfg.Encode.IncludeAudio)
	assert.Equal(t, ".mov", cfg.Input.Extension)
	assert.Equal(t, "96k", cfg.Encode.AudioBitrate, "unset flag must not clobber file value")
	assert.Equal(t, ColorAuto, cfg.Log.Color)
}

func TestFlags_RejectsInvalidPreset(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(new(nopWriter))
	var f Flags
	RegisterEncoding(fs, &f)

	err := fs.Parse([]string{"--preset", "placebo"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid preset")
}

func TestFlags_ColorPrecedence(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var f Flags
	RegisterPersistent(fs, &f)
	require.NoError(t, fs.Parse([]string{"--color", "--no-color"}))

	cfg := DefaultConfig()
	f.Apply(fs, &cfg)
	assert.Equal(t, ColorNever, cfg.Log.Color)
}

func TestLoad_OverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[encode]
crf = 26
preset = "fast"
audio = false

[output]
path = "/srv/out"

[log]
color = "never"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg := DefaultConfig()
	require.NoError(t, Load(path, &cfg))

	assert.Equal(t, 26, cfg.Encode.CRF)
	assert.Equal(t, PresetFast, cfg.Encode.Preset)
	assert.False(t, cfg.Encode.IncludeAudio)
	assert.Equal(t, "/srv/out", cfg.Output.Path)
	assert.Equal(t, ColorNever, cfg.Log.Color)
	assert.Equal(t, "128k", cfg.Encode.AudioBitrate, "absent keys keep defaults")
}

func TestLoad_RejectsBadPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[encode]\npreset = \"placebo\"\n"), 0o644))

	cfg := DefaultConfig()
	err := Load(path, &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid preset")
}

func TestLoad_RejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[encode]\nqp = 3\n"), 0o644))

	cfg := DefaultConfig()
	err := Load(path, &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode.qp")
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/clipshrink/config.toml", DefaultPath())
}

func TestDiscover_Explicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	got, err := Discover(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	_, err = Discover(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDiscover_Env(t *testing.T) {
	t.Setenv(EnvConfigPath, "/nonexistent/clipshrink.toml")
	_, err := Discover("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvConfigPath)
}

func TestDiscover_NoneFound(t *testing.T) {
	origDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	require.NoError(t, os.Chdir(t.TempDir()))
	t.Setenv(EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	got, err := Discover("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

type nopWriter struct{}

func (*nopWriter) Write(p []byte) (int, error) { return len(p), nil }
