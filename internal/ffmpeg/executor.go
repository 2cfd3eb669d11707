package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// LineSink receives one line of ffmpeg output with its terminator stripped.
type LineSink func(line string)

// maxLineSize bounds a single output line. Longer lines are dropped while the
// pipe keeps being drained.
const maxLineSize = 1 << 20

// Result is the outcome of one ffmpeg invocation. ExitCode is -1 when the
// process could not be started (Err is then set) or was killed by a signal.
type Result struct {
	ExitCode int
	Err      error
}

// OK reports whether ffmpeg ran and exited with status 0.
func (r Result) OK() bool { return r.Err == nil && r.ExitCode == 0 }

// Executor runs the external encoder binary.
type Executor struct {
	Binary string
}

// NewExecutor returns an Executor for binary ("ffmpeg" when empty).
func NewExecutor(binary string) *Executor {
	if binary == "" {
		binary = "ffmpeg"
	}
	return &Executor{Binary: binary}
}

// Run starts ffmpeg with args, merges stdout and stderr into one pipe, and
// forwards every line to sink while the process is still running. It blocks
// until the process exits. No timeout is applied.
func (e *Executor) Run(ctx context.Context, args []string, sink LineSink) Result {
	if sink == nil {
		sink = func(string) {}
	}

	r, w, err := os.Pipe()
	if err != nil {
		return Result{ExitCode: -1, Err: fmt.Errorf("create output pipe: %w", err)}
	}
	defer r.Close()

	cmd := exec.CommandContext(ctx, e.Binary, args...)
	cmd.Stdout = w
	cmd.Stderr = w

	if err := cmd.Start(); err != nil {
		w.Close()
		return Result{ExitCode: -1, Err: fmt.Errorf("start %s: %w", e.Binary, err)}
	}
	// The child holds its own copy of the write end; dropping ours lets the
	// read loop hit EOF when ffmpeg exits.
	w.Close()

	drainErr := drain(r, sink)
	waitErr := cmd.Wait()

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return Result{ExitCode: exitErr.ExitCode()}
		}
		return Result{ExitCode: -1, Err: fmt.Errorf("wait %s: %w", e.Binary, waitErr)}
	}
	if drainErr != nil {
		return Result{ExitCode: 0, Err: fmt.Errorf("read %s output: %w", e.Binary, drainErr)}
	}
	return Result{ExitCode: 0}
}

// drain forwards lines from r to sink until EOF. If a line overflows the
// scanner buffer, the rest of the stream is discarded rather than left
// unread, so ffmpeg never blocks on a full pipe.
func drain(r io.Reader, sink LineSink) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	sc.Split(scanLines)
	for sc.Scan() {
		sink(sc.Text())
	}
	if err := sc.Err(); err != nil {
		_, _ = io.Copy(io.Discard, r)
		return err
	}
	return nil
}

// scanLines is a bufio.SplitFunc that treats "\n", "\r\n" and a bare "\r" as
// line terminators. ffmpeg rewrites its progress line with "\r".
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// Trailing "\r": wait to see whether "\n" follows.
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
