package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/backmassage/clipshrink/internal/config"
	"github.com/backmassage/clipshrink/internal/display"
	"github.com/backmassage/clipshrink/internal/ffmpeg"
	"github.com/backmassage/clipshrink/internal/logging"
	"github.com/backmassage/clipshrink/internal/naming"
	"github.com/backmassage/clipshrink/internal/probe"
)

var (
	// ErrEmptyBatch means the input directory held no matching files.
	ErrEmptyBatch = errors.New("no input files found")
	// ErrAmbiguousOutput means strict output mode found two jobs writing
	// the same destination.
	ErrAmbiguousOutput = errors.New("several inputs resolve to the same output")
)

// failureTail is how many trailing ffmpeg lines are kept per job for
// failure diagnosis.
const failureTail = 40

// Run is the batch entry point. It expands the input, resolves every
// destination, checks the NVENC request against the ffmpeg build, then
// processes each job strictly in order. A failed job is logged and the
// batch continues; only problems found before the first launch are
// returned as errors.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, enc Encoder) (RunStats, error) {
	var stats RunStats

	// Local copy: a downgrade must not leak back into cfg.
	params := cfg.Encode
	if err := params.Validate(); err != nil {
		return stats, err
	}

	sources, err := Expand(cfg.InputPath, cfg.Input.Extension)
	if err != nil {
		return stats, err
	}
	if len(sources) == 0 {
		return stats, fmt.Errorf("%w: no %s files in %s", ErrEmptyBatch, cfg.Input.Extension, cfg.InputPath)
	}

	target := naming.Classify(cfg.Output.Path)
	jobs, err := planJobs(sources, target, cfg.Output.Strict, log)
	if err != nil {
		return stats, err
	}

	if params.HWAccel && !enc.HasEncoder(ctx, ffmpeg.NVENCEncoder) {
		log.Warn("GPU encoding requested but %s is not available in this ffmpeg build; using %s",
			ffmpeg.NVENCEncoder, ffmpeg.SoftwareEncoder)
		params.HWAccel = false
	}

	stats.Total = len(jobs)
	logBatchHeader(log, params, target, &stats)

	for i, job := range jobs {
		stats.Current = i + 1
		stats.Record(runJob(ctx, cfg, log, enc, params, job, &stats))
	}

	logSummary(log, &stats)
	return stats, nil
}

// planJobs resolves each source's destination. Two sources sharing a
// destination is an error in strict mode and a warning otherwise (the later
// job overwrites the earlier one's output).
func planJobs(sources []string, target naming.OutputTarget, strict bool, log *logging.Logger) ([]Job, error) {
	claims := naming.NewClaims()
	jobs := make([]Job, 0, len(sources))
	for _, src := range sources {
		dest := naming.OutputPath(src, target)
		if owner, ok := claims.Claim(src, dest); !ok {
			if strict {
				return nil, fmt.Errorf("%w: %s and %s both write %s", ErrAmbiguousOutput, owner, src, dest)
			}
			log.Warn("%s will overwrite the output of %s (%s)", filepath.Base(src), filepath.Base(owner), dest)
		}
		jobs = append(jobs, Job{Source: src, Destination: dest})
	}
	return jobs, nil
}

// runJob handles one file: optional probe, build, run, report.
func runJob(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	enc Encoder,
	params config.EncodeParams,
	job Job,
	stats *RunStats,
) Outcome {
	out := Outcome{Job: job}
	log.Info("[%d/%d] %s", stats.Current, stats.Total, filepath.Base(job.Source))

	if cfg.Log.ShowFileStats {
		logFileStats(ctx, log, cfg.FFmpeg.ProbePath, job.Source)
	}

	args, err := ffmpeg.Build(job.Source, job.Destination, params)
	if err != nil {
		out.ExitCode, out.Err = -1, err
		log.Error("Cannot build ffmpeg command for %s: %v", job.Source, err)
		log.Blank()
		return out
	}
	log.Debug("ffmpeg %s", strings.Join(args, " "))

	tail := ffmpeg.NewTail(failureTail)
	start := time.Now()
	res := enc.Run(ctx, args, func(line string) {
		tail.Add(line)
		log.Output(line)
	})
	out.Elapsed = time.Since(start)
	out.ExitCode, out.Err = res.ExitCode, res.Err

	switch {
	case res.Err != nil:
		log.Error("Could not run ffmpeg for %s: %v", job.Source, res.Err)
	case res.ExitCode != 0:
		log.Error("ffmpeg exited with status %d for %s", res.ExitCode, job.Source)
		if reason := ffmpeg.Diagnose(tail.Lines()); reason != "" {
			log.Error("  Likely cause: %s", reason)
		}
	default:
		reportSuccess(log, &out)
	}
	log.Blank()
	return out
}

// reportSuccess stats both files and logs the before/after line. A missing
// size is logged but does not turn the job into a failure.
func reportSuccess(log *logging.Logger, out *Outcome) {
	in, errIn := fileSize(out.Job.Source)
	dst, errOut := fileSize(out.Job.Destination)
	if err := errors.Join(errIn, errOut); err != nil {
		log.Warn("%s → %s finished but sizes are unavailable: %v", out.Job.Source, out.Job.Destination, err)
		return
	}
	out.InputSize, out.OutputSize = in, dst
	log.Success("%s → %s: %s → %s (%d%%)",
		out.Job.Source, out.Job.Destination,
		display.FormatMB(in), display.FormatMB(dst), display.Percent(in, dst))
	log.Debug("Encoded in %s", out.Elapsed.Round(time.Second))
}

func fileSize(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

// logFileStats prints the ffprobe summary of a source. Probe problems are
// only visible in verbose mode.
func logFileStats(ctx context.Context, log *logging.Logger, binary, path string) {
	pr, err := probe.Probe(ctx, binary, path)
	if err != nil {
		log.Debug("No stats for %s: %v", filepath.Base(path), err)
		return
	}
	log.Info("  Source: %s", pr.Summary())
}

// --- Logging helpers ---

func logBatchHeader(log *logging.Logger, p config.EncodeParams, target naming.OutputTarget, stats *RunStats) {
	log.Info("Found %d file(s)", stats.Total)

	if p.HWAccel {
		log.Info("Video: %s (CUDA decode), preset %s, CQ %d", ffmpeg.NVENCEncoder, p.Preset, p.CRF)
	} else {
		threads := "auto"
		if p.Threads > 0 {
			threads = fmt.Sprint(p.Threads)
		}
		log.Info("Video: %s, preset %s, CRF %d, threads %s", ffmpeg.SoftwareEncoder, p.Preset, p.CRF, threads)
	}
	if !p.CRFConventional() {
		log.Warn("CRF %d is outside the usual %d-%d range", p.CRF, config.CRFConventionalMin, config.CRFConventionalMax)
	}

	if p.IncludeAudio {
		log.Info("Audio: %s at %s", ffmpeg.AudioEncoder, p.AudioBitrate)
	} else {
		log.Info("Audio: removed")
	}

	switch target.Kind {
	case naming.TargetAlongside:
		log.Info("Output: next to each source (*%s%s)", naming.CompressedSuffix, naming.OutputExt)
	default:
		log.Info("Output: %s (%s)", target.Path, target.Kind)
	}
	log.Blank()
}

func logSummary(log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d compressed, %d failed, %d total", stats.Succeeded, stats.Failed, stats.Total)
	if stats.Succeeded == 0 {
		return
	}

	saved := stats.SpaceSaved()
	if saved >= 0 {
		log.Success("Total space saved: %s (input %s -> output %s)",
			display.FormatBytes(saved),
			display.FormatBytes(stats.TotalInputBytes),
			display.FormatBytes(stats.TotalOutputBytes))
	} else {
		log.Warn("Overall size change: %s (outputs are larger than their sources)",
			display.FormatBytesWithSign(-saved))
	}
}
