package term

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/clipshrink/internal/config"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { Configure(config.ColorNever) })

	assert.True(t, Configure(config.ColorAlways))
	assert.True(t, Enabled())
	assert.NotEmpty(t, Active.Success)

	assert.False(t, Configure(config.ColorNever))
	assert.False(t, Enabled())
	assert.Equal(t, Palette{}, Active)
}

func TestWantColor_Auto(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.log"))
	require.NoError(t, err)
	defer f.Close()

	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm-256color")
	assert.False(t, wantColor(config.ColorAuto, f), "regular file is not a terminal")
	assert.True(t, wantColor(config.ColorAlways, f))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, wantColor(config.ColorAuto, f))
}

func TestPaint(t *testing.T) {
	t.Cleanup(func() { Configure(config.ColorNever) })

	Configure(config.ColorNever)
	assert.Equal(t, "hi", Paint(Active.Warn, "hi"))

	Configure(config.ColorAlways)
	assert.Equal(t, "\033[1;93mhi\033[0m", Paint(Active.Warn, "hi"))
}

func TestIsTerminal_Nil(t *testing.T) {
	assert.False(t, IsTerminal(nil))
}
