package pipeline

import (
	"context"

	"github.com/backmassage/clipshrink/internal/ffmpeg"
)

//go:generate mockgen -source=encoder.go -destination=mocks/encoder_mock.go -package=mocks

// Encoder runs ffmpeg invocations. *ffmpeg.Executor is the production
// implementation.
type Encoder interface {
	// Run executes one invocation, streaming its output lines to sink.
	Run(ctx context.Context, args []string, sink ffmpeg.LineSink) ffmpeg.Result
	// HasEncoder reports whether the ffmpeg build offers the named encoder.
	HasEncoder(ctx context.Context, name string) bool
}

var _ Encoder = (*ffmpeg.Executor)(nil)
