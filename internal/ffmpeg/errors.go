package ffmpeg

import "regexp"

// Failure categories recognised in ffmpeg output. Checked in order by
// [Diagnose]; the first match wins.
var diagnoses = []struct {
	re     *regexp.Regexp
	reason string
}{
	{regexp.MustCompile(`(?i)No such file or directory`), "input or output path does not exist"},
	{regexp.MustCompile(`(?i)Permission denied`), "permission denied"},
	{regexp.MustCompile(`(?i)Invalid data found when processing input|moov atom not found`), "input is not a readable video"},
	{regexp.MustCompile(`(?i)Unknown encoder|Encoder .* not found`), "encoder not available in this ffmpeg build"},
	{regexp.MustCompile(`(?i)Cannot load libcuda|CUDA_ERROR|No NVENC capable devices|OpenEncodeSessionEx failed`), "GPU encoder could not be initialised"},
	{regexp.MustCompile(`(?i)No space left on device`), "output disk is full"},
	{regexp.MustCompile(`(?i)Error (while )?opening encoder|Error initializing output stream`), "encoder rejected the requested settings"},
}

// Diagnose scans captured ffmpeg output (most recent lines last) and returns
// a short human reason for a failed run, or "" when nothing is recognised.
func Diagnose(lines []string) string {
	for i := len(lines) - 1; i >= 0; i-- {
		for _, d := range diagnoses {
			if d.re.MatchString(lines[i]) {
				return d.reason
			}
		}
	}
	return ""
}

// Tail keeps the last N lines written to it. It is a [LineSink] adapter used
// to feed [Diagnose] without retaining a whole encode's output.
type Tail struct {
	lines []string
	next  int
	full  bool
}

// NewTail returns a Tail holding at most n lines.
func NewTail(n int) *Tail {
	if n < 1 {
		n = 1
	}
	return &Tail{lines: make([]string, n)}
}

// Add records line, evicting the oldest when full.
func (t *Tail) Add(line string) {
	t.lines[t.next] = line
	t.next = (t.next + 1) % len(t.lines)
	if t.next == 0 {
		t.full = true
	}
}

// Lines returns the retained lines, oldest first.
func (t *Tail) Lines() []string {
	if !t.full {
		return append([]string(nil), t.lines[:t.next]...)
	}
	out := make([]string, 0, len(t.lines))
	out = append(out, t.lines[t.next:]...)
	return append(out, t.lines[:t.next]...)
}
