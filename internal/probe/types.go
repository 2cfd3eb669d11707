package probe

import (
	"strconv"
	"strings"

	"github.com/backmassage/clipshrink/internal/display"
)

// FormatInfo holds container-level metadata.
type FormatInfo struct {
	Name     string
	Duration float64 // seconds
	Size     int64
	BitRate  int64 // bits/sec
}

// VideoStream is the first real (non cover art) video stream.
type VideoStream struct {
	Codec          string
	Width          int
	Height         int
	BitRate        int64
	ColorTransfer  string
	ColorPrimaries string
}

// AudioStream is the first audio stream.
type AudioStream struct {
	Codec         string
	Channels      int
	ChannelLayout string
}

// Result is the parsed output of one ffprobe call. Video and Audio are nil
// when the file has no such stream.
type Result struct {
	Format FormatInfo
	Video  *VideoStream
	Audio  *AudioStream
}

// VideoBitRate returns the video stream bitrate in bits/sec, falling back to
// the container bitrate when the stream does not report one.
func (r *Result) VideoBitRate() int64 {
	if r.Video != nil && r.Video.BitRate > 0 {
		return r.Video.BitRate
	}
	return r.Format.BitRate
}

// Resolution returns "WxH", or "" when unknown.
func (r *Result) Resolution() string {
	if r.Video == nil || r.Video.Width <= 0 || r.Video.Height <= 0 {
		return ""
	}
	return strconv.Itoa(r.Video.Width) + "x" + strconv.Itoa(r.Video.Height)
}

// Summary renders a one-line description for the log, e.g.
// "h264 1920x1080, 1:05, 8.0 Mbps, aac stereo, HDR". Unknown parts are left out.
func (r *Result) Summary() string {
	var parts []string
	if r.Video != nil {
		v := r.Video.Codec
		if res := r.Resolution(); res != "" {
			v += " " + res
		}
		parts = append(parts, strings.TrimSpace(v))
	}
	if r.Format.Duration > 0 {
		parts = append(parts, display.FormatDuration(r.Format.Duration))
	}
	if br := r.VideoBitRate(); br > 0 {
		parts = append(parts, display.FormatBitrateLabel(br/1000))
	}
	if r.Audio != nil {
		a := r.Audio.Codec
		if r.Audio.ChannelLayout != "" {
			a += " " + r.Audio.ChannelLayout
		} else if r.Audio.Channels > 0 {
			a += " " + strconv.Itoa(r.Audio.Channels) + "ch"
		}
		parts = append(parts, a)
	} else {
		parts = append(parts, "no audio")
	}
	if r.IsHDR() {
		parts = append(parts, "HDR")
	}
	return strings.Join(parts, ", ")
}
