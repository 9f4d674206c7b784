package runner

import (
	"github.com/bartekus/codegate/internal/render"
)

// Status represents the outcome of a check.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusSkip Status = "skip"
)

// Result represents the result of a single check.
type Result struct {
	Check    string `json:"check"`
	Status   Status `json:"status"`
	ExitCode int    `json:"exit_code"`
	Note     string `json:"note,omitempty"`
	// Details carries check-specific data for the JSON summary.
	Details any `json:"details,omitempty"`

	// Lines is the user-facing output, printed by the runner.
	Lines []render.Line `json:"-"`
}

// Passed reports whether the result does not fail the run.
func (r Result) Passed() bool { return r.Status != StatusFail }

// Summary describes a whole run.
type Summary struct {
	Status  Status   `json:"status"` // "pass" or "fail"
	Files   []string `json:"files"`  // Change-set the checks ran against
	Checks  []string `json:"checks"` // Ordered list of checks run
	Failed  []string `json:"failed"` // List of failed checks
	Results []Result `json:"results"`
}

// Passed reports whether every check passed.
func (s Summary) Passed() bool { return s.Status == StatusPass }
