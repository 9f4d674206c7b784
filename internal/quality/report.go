package quality

// Score is the rating of a single file.
type Score struct {
	File  string  `json:"file"`
	Value float64 `json:"score"`
}

// Report maps files to scores in the order they were rated.
// A Report is read-only once built.
type Report struct {
	scores []Score
	index  map[string]int
}

// NewReport builds a Report from scores. Later entries for a file already
// present are ignored.
func NewReport(scores []Score) *Report {
	r := &Report{index: make(map[string]int, len(scores))}
	for _, s := range scores {
		if _, ok := r.index[s.File]; ok {
			continue
		}
		r.index[s.File] = len(r.scores)
		r.scores = append(r.scores, s)
	}
	return r
}

// Len returns the number of rated files.
func (r *Report) Len() int {
	if r == nil {
		return 0
	}
	return len(r.scores)
}

// Score returns the score recorded for file.
func (r *Report) Score(file string) (float64, bool) {
	if r == nil {
		return 0, false
	}
	i, ok := r.index[file]
	if !ok {
		return 0, false
	}
	return r.scores[i].Value, true
}

// Scores returns a copy of the scores in rating order.
func (r *Report) Scores() []Score {
	if r == nil {
		return nil
	}
	out := make([]Score, len(r.scores))
	copy(out, r.scores)
	return out
}

// Failing returns the scores below threshold, in rating order.
func (r *Report) Failing(threshold float64) []Score {
	var failing []Score
	for _, s := range r.Scores() {
		if !Passes(s.Value, threshold) {
			failing = append(failing, s)
		}
	}
	return failing
}

// Passed reports whether every score meets threshold.
// An empty report passes.
func (r *Report) Passed(threshold float64) bool {
	return len(r.Failing(threshold)) == 0
}
