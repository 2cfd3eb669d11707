package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"small bytes", 512, "512 B"},
		{"exactly 1 KiB", 1024, "1.0 KiB"},
		{"1.5 KiB", 1536, "1.5 KiB"},
		{"1 MiB", 1024 * 1024, "1.0 MiB"},
		{"1 GiB", 1024 * 1024 * 1024, "1.0 GiB"},
		{"phone clip 700 MiB", 734003200, "700.0 MiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.bytes))
		})
	}
}

func TestFormatMB(t *testing.T) {
	assert.Equal(t, "0.0 MB", FormatMB(0))
	assert.Equal(t, "1.0 MB", FormatMB(1024*1024))
	assert.Equal(t, "12.5 MB", FormatMB(12*1024*1024+512*1024))
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name    string
		in, out int64
		want    int
	}{
		{"reduced", 100, 37, 37},
		{"rounds half up", 200, 75, 38},
		{"rounds down", 300, 100, 33},
		{"grew", 100, 120, 120},
		{"same", 4096, 4096, 100},
		{"empty input", 0, 50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percent(tt.in, tt.out))
		})
	}
}

func TestFormatBytesWithSign(t *testing.T) {
	assert.Equal(t, "+ 1.0 MiB", FormatBytesWithSign(1024*1024))
	assert.Equal(t, "- 1.0 MiB", FormatBytesWithSign(-1024*1024))
	assert.Equal(t, "0 B", FormatBytesWithSign(0))
}

func TestFormatBitrateLabel(t *testing.T) {
	tests := []struct {
		kbps int64
		want string
	}{
		{800, "800 kbps"},
		{1000, "1.0 Mbps"},
		{5000, "5.0 Mbps"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBitrateLabel(tt.kbps))
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:00", FormatDuration(0))
	assert.Equal(t, "1:05", FormatDuration(65.4))
	assert.Equal(t, "1:01:01", FormatDuration(3661))
	assert.Equal(t, "0:00", FormatDuration(-3))
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "|_|")
}
