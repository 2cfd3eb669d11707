package check

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/clipshrink/internal/config"
	"github.com/backmassage/clipshrink/internal/ffmpeg"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (r *recordingLogger) add(level, format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Info(f string, a ...interface{})    { r.add("INFO", f, a...) }
func (r *recordingLogger) Success(f string, a ...interface{}) { r.add("SUCCESS", f, a...) }
func (r *recordingLogger) Warn(f string, a ...interface{})    { r.add("WARN", f, a...) }
func (r *recordingLogger) Error(f string, a ...interface{})   { r.add("ERROR", f, a...) }
func (r *recordingLogger) Debug(f string, a ...interface{})   { r.add("DEBUG", f, a...) }

func (r *recordingLogger) text() string { return strings.Join(r.lines, "\n") }

const fakeScript = `#!/bin/sh
case "$*" in
  *-version*) echo "ffmpeg version 7.1-test Copyright"; echo "built with gcc"; exit 0 ;;
  *-encoders*)
    echo " V....D libx264              libx264 H.264 / AVC"
    echo " V....D h264_nvenc           NVIDIA NVENC H.264 encoder"
    echo " V....D mpeg4                MPEG-4 part 2"
    echo " A....D aac                  AAC (Advanced Audio Coding)"
    exit 0 ;;
  *h264_nvenc*) echo "Cannot load libcuda.so.1" >&2; exit 1 ;;
  *) exit 0 ;;
esac
`

func TestRunCheck(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake ffmpeg script needs a POSIX shell")
	}
	bin := filepath.Join(t.TempDir(), "ffmpeg")
	require.NoError(t, os.WriteFile(bin, []byte(fakeScript), 0o755))

	cfg := config.DefaultConfig()
	cfg.FFmpeg.Path = bin
	log := &recordingLogger{}

	sum := RunCheck(context.Background(), &cfg, log)

	assert.Equal(t, "ffmpeg version 7.1-test Copyright", sum.Version)
	assert.Equal(t, map[string]bool{
		ffmpeg.SoftwareEncoder: true,
		ffmpeg.NVENCEncoder:    false,
		ffmpeg.AudioEncoder:    true,
	}, sum.Works)

	out := log.text()
	assert.Contains(t, out, "INFO   V....D libx264")
	assert.Contains(t, out, "INFO   A....D aac")
	assert.NotContains(t, out, "mpeg4")
	assert.Contains(t, out, "SUCCESS CPU H.264 (libx264) works")
	assert.Contains(t, out, "WARN GPU H.264 (NVENC) unavailable")
	assert.Contains(t, out, "SUCCESS AAC audio works")

	// Results are logged in a fixed order even though they ran concurrently.
	assert.Less(t, strings.Index(out, "libx264) works"), strings.Index(out, "NVENC) unavailable"))
	assert.Less(t, strings.Index(out, "NVENC) unavailable"), strings.Index(out, "AAC audio works"))
}

func TestRunCheck_MissingBinary(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.FFmpeg.Path = filepath.Join(t.TempDir(), "no-ffmpeg")
	log := &recordingLogger{}

	sum := RunCheck(context.Background(), &cfg, log)

	assert.Empty(t, sum.Version)
	assert.Empty(t, sum.Works)
	assert.Contains(t, log.text(), "ERROR ffmpeg not found")
}

func TestIsRelevantEncoder(t *testing.T) {
	assert.True(t, isRelevantEncoder(" V....D libx264  libx264 H.264"))
	assert.True(t, isRelevantEncoder(" V....D h264_vaapi  H.264/AVC (VAAPI)"))
	assert.True(t, isRelevantEncoder(" A....D libfdk_aac  Fraunhofer FDK AAC"))
	assert.False(t, isRelevantEncoder(" V....D libx265  libx265 H.265"))
	assert.False(t, isRelevantEncoder(""))
}
