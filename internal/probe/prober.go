package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Probe runs binary (normally "ffprobe") against path and parses its JSON
// report.
func Probe(ctx context.Context, binary, path string) (*Result, error) {
	if binary == "" {
		binary = "ffprobe"
	}
	cmd := exec.CommandContext(ctx, binary,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}
	return ParseJSON(out)
}

// ParseJSON converts raw ffprobe JSON output into a Result.
func ParseJSON(data []byte) (*Result, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	return buildResult(&raw), nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
	Size       string `json:"size"`
	BitRate    string `json:"bit_rate"`
}

type ffprobeStream struct {
	CodecName      string         `json:"codec_name"`
	CodecType      string         `json:"codec_type"`
	Width          int            `json:"width"`
	Height         int            `json:"height"`
	BitRate        string         `json:"bit_rate"`
	ColorTransfer  string         `json:"color_transfer"`
	ColorPrimaries string         `json:"color_primaries"`
	Channels       int            `json:"channels"`
	ChannelLayout  string         `json:"channel_layout"`
	Disposition    map[string]int `json:"disposition"`
}

func buildResult(raw *ffprobeOutput) *Result {
	r := &Result{
		Format: FormatInfo{
			Name:     raw.Format.FormatName,
			Duration: parseFloat(raw.Format.Duration),
			Size:     parseInt64(raw.Format.Size),
			BitRate:  parseInt64(raw.Format.BitRate),
		},
	}
	for i := range raw.Streams {
		s := &raw.Streams[i]
		switch s.CodecType {
		case "video":
			// Cover art shows up as a video stream; skip it.
			if s.Disposition["attached_pic"] == 1 || r.Video != nil {
				continue
			}
			r.Video = &VideoStream{
				Codec:          s.CodecName,
				Width:          s.Width,
				Height:         s.Height,
				BitRate:        parseInt64(s.BitRate),
				ColorTransfer:  s.ColorTransfer,
				ColorPrimaries: s.ColorPrimaries,
			}
		case "audio":
			if r.Audio != nil {
				continue
			}
			r.Audio = &AudioStream{
				Codec:         s.CodecName,
				Channels:      s.Channels,
				ChannelLayout: s.ChannelLayout,
			}
		}
	}
	return r
}

// ffprobe returns numbers as strings.

func parseInt64(s string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}
