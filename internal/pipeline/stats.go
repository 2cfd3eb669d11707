package pipeline

// RunStats tracks aggregate counters and byte totals across a batch run.
type RunStats struct {
	Total            int
	Current          int
	Succeeded        int
	Failed           int
	TotalInputBytes  int64
	TotalOutputBytes int64
}

// Record folds one finished job into the totals. Sizes only count for
// successful jobs.
func (s *RunStats) Record(o Outcome) {
	if !o.OK() {
		s.Failed++
		return
	}
	s.Succeeded++
	s.TotalInputBytes += o.InputSize
	s.TotalOutputBytes += o.OutputSize
}

// SpaceSaved returns the aggregate byte difference between inputs and outputs.
// Positive means outputs are smaller; negative means they grew.
func (s *RunStats) SpaceSaved() int64 {
	return s.TotalInputBytes - s.TotalOutputBytes
}
