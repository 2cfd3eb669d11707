package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// HasEncoder asks binary to list its encoders and reports whether name is
// among them. Any failure (binary missing, query error) counts as "not
// available"; it is never surfaced as an error.
func HasEncoder(ctx context.Context, binary, name string) bool {
	out, err := exec.CommandContext(ctx, binary, "-hide_banner", "-encoders").Output()
	if err != nil {
		return false
	}
	return ListsEncoder(out, name)
}

// HasEncoder runs the capability probe against the executor's binary.
func (e *Executor) HasEncoder(ctx context.Context, name string) bool {
	return HasEncoder(ctx, e.Binary, name)
}

// ListsEncoder reports whether an `ffmpeg -encoders` listing contains name as
// a whole token. Lines look like:
//
//	V....D h264_nvenc           NVIDIA NVENC H.264 encoder (codec h264)
func ListsEncoder(listing []byte, name string) bool {
	sc := bufio.NewScanner(bytes.NewReader(listing))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) >= 2 && fields[1] == name {
			return true
		}
	}
	return false
}

// Version returns the first line of `binary -version`, or "" on failure.
func Version(ctx context.Context, binary string) string {
	out, err := exec.CommandContext(ctx, binary, "-version").Output()
	if err != nil {
		return ""
	}
	first, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return first
}
