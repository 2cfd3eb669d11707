package pipeline

import "time"

// Job is one source file and the path its compressed copy is written to.
type Job struct {
	Source      string
	Destination string
}

// Outcome is what happened to one Job. InputSize and OutputSize are only
// meaningful when OK is true; Err is set when ffmpeg could not be run at all.
type Outcome struct {
	Job        Job
	ExitCode   int
	InputSize  int64
	OutputSize int64
	Elapsed    time.Duration
	Err        error
}

// OK reports whether ffmpeg ran and exited 0.
func (o Outcome) OK() bool { return o.Err == nil && o.ExitCode == 0 }
