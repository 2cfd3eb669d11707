package ffmpeg

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/backmassage/clipshrink/internal/config"
)

// Encoder names used in the generated command.
const (
	SoftwareEncoder = "libx264"
	NVENCEncoder    = "h264_nvenc"
	AudioEncoder    = "aac"
)

// ErrInvalidParams wraps every rejection raised while building a command.
var ErrInvalidParams = errors.New("invalid encode parameters")

// Build constructs the ffmpeg argument slice (without the binary name) for
// one source/destination pair. Invalid parameters are rejected here, before
// any process is launched.
//
//	-y [-hwaccel cuda] -i <src> <video codec> <audio codec | -an> <dst>
func Build(source, dest string, p config.EncodeParams) ([]string, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	if source == "" || dest == "" {
		return nil, fmt.Errorf("%w: source and destination are required", ErrInvalidParams)
	}

	args := make([]string, 0, 24)

	// --- Preamble: overwrite without asking ---
	args = append(args, "-y")

	// --- Decode path + input ---
	if p.HWAccel {
		args = append(args, "-hwaccel", "cuda")
	}
	args = append(args, "-i", source)

	// --- Video codec ---
	args = appendVideoCodec(args, p)

	// --- Audio ---
	if p.IncludeAudio {
		args = append(args, "-c:a", AudioEncoder, "-b:a", p.AudioBitrate)
	} else {
		args = append(args, "-an")
	}

	// --- Output ---
	args = append(args, dest)
	return args, nil
}

// appendVideoCodec maps the quality parameter onto the chosen encoder's
// rate-control mode: CRF for libx264, constant-quality VBR for NVENC.
func appendVideoCodec(args []string, p config.EncodeParams) []string {
	if p.HWAccel {
		return append(args,
			"-c:v", NVENCEncoder,
			"-preset", string(p.Preset),
			"-rc", "vbr",
			"-cq", strconv.Itoa(p.CRF),
		)
	}
	return append(args,
		"-c:v", SoftwareEncoder,
		"-preset", string(p.Preset),
		"-crf", strconv.Itoa(p.CRF),
		"-threads", strconv.Itoa(p.Threads),
	)
}
