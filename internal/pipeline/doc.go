// Package pipeline turns one input specification into a sequence of ffmpeg
// jobs and runs them one after another.
//
//   - Expand(input, ext) → []string
//     Directory: direct entries whose names end in ext (case-insensitive).
//     Anything else: the input itself.
//   - Run(ctx, cfg, log, enc) → RunStats, error
//     Expands the input, resolves every destination, downgrades to libx264
//     when NVENC is missing, then encodes each file, logs the size change and
//     keeps going after failures.
//   - Start(ctx, cfg, log, enc) → <-chan Report
//     Run on a background goroutine; the channel yields the final report.
package pipeline
