package logging

import (
	"bytes"
	"sync"
)

// Journal is an append-only in-memory log sink. The batch worker appends
// through a [Logger]; the interactive front end takes snapshots. Append is
// the only mutation.
type Journal struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write appends p. It never fails.
func (j *Journal) Write(p []byte) (int, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.buf.Write(p)
}

// Len returns the number of bytes written so far. Callers use it to skip
// re-rendering when nothing was appended.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.buf.Len()
}

// String returns a snapshot of everything written so far.
func (j *Journal) String() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.buf.String()
}
