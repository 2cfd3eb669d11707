package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/clipshrink/internal/config"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Log.Color = config.ColorNever
	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	defer l.Close()
	l.Info("test message")
}

func TestNewWriterLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig()
	l, err := NewWriterLogger(&buf, &cfg)
	require.NoError(t, err)

	l.Info("info %d", 1)
	l.Success("done")
	l.Warn("careful")
	l.Error("broken")
	l.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "[INFO] info 1")
	assert.Contains(t, out, "[SUCCESS] done")
	assert.Contains(t, out, "[WARN] careful")
	assert.Contains(t, out, "[ERROR] broken")
	assert.NotContains(t, out, "hidden", "debug lines need verbose")
	assert.NotContains(t, out, "\033[", "writer logger never colors")
}

func TestLogger_DebugWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig()
	cfg.Log.Verbose = true
	l, err := NewWriterLogger(&buf, &cfg)
	require.NoError(t, err)

	l.Debug("shown")
	assert.Contains(t, buf.String(), "[DEBUG] shown")
}

func TestLogger_OutputIsVerbatim(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig()
	l, err := NewWriterLogger(&buf, &cfg)
	require.NoError(t, err)

	l.Output("frame=  120 fps= 30 q=28.0 size=    512kB")
	assert.Equal(t, "frame=  120 fps= 30 q=28.0 size=    512kB\n", buf.String())
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Log.Color = config.ColorNever
	cfg.Log.File = filepath.Join(dir, "logs", "clipshrink.log")

	var buf bytes.Buffer
	l, err := NewWriterLogger(&buf, &cfg)
	require.NoError(t, err)
	l.Info("to file")
	l.Output("ffmpeg says hi")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.Log.File)
	require.NoError(t, err)
	content := string(b)
	assert.Contains(t, content, `"msg":"to file"`)
	assert.Contains(t, content, `"level":"info"`)
	assert.Contains(t, content, `"source":"ffmpeg"`)
	assert.Equal(t, 2, strings.Count(content, "\n"))
}

func TestJournal_ConcurrentAppend(t *testing.T) {
	var j Journal
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < 100; k++ {
				_, _ = j.Write([]byte("x\n"))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 8*100*2, j.Len())
	assert.Equal(t, 800, strings.Count(j.String(), "\n"))
}
