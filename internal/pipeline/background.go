package pipeline

import (
	"context"

	"github.com/backmassage/clipshrink/internal/config"
	"github.com/backmassage/clipshrink/internal/logging"
)

// Report is the final result of a background batch.
type Report struct {
	Stats RunStats
	Err   error
}

// Start runs the batch on its own goroutine and returns immediately. All
// progress goes through log. The returned channel receives exactly one
// Report and is then closed; callers that do not care may drop it.
//
// cfg is copied before Start returns, so the caller may keep editing its
// own copy.
func Start(ctx context.Context, cfg *config.Config, log *logging.Logger, enc Encoder) <-chan Report {
	snapshot := *cfg
	done := make(chan Report, 1)
	go func() {
		defer close(done)
		stats, err := Run(ctx, &snapshot, log, enc)
		if err != nil {
			log.Error("%v", err)
		}
		done <- Report{Stats: stats, Err: err}
	}()
	return done
}
