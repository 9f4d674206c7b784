package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/bartekus/codegate/internal/logger"
	"github.com/bartekus/codegate/internal/render"
)

// ErrChecksFailed is returned by RunAll when at least one check failed.
var ErrChecksFailed = errors.New("checks failed")

// Runner manages the execution of checks.
type Runner struct {
	checks  []Check
	printer *render.Printer
}

// NewRunner creates a runner executing checks in order and printing their
// output through printer.
func NewRunner(checks []Check, printer *render.Printer) *Runner {
	return &Runner{
		checks:  checks,
		printer: printer,
	}
}

// RunAll executes all checks in order.
// It continues execution even if a check fails, accumulating failures.
// Returns an error wrapping ErrChecksFailed if ANY check failed.
func (r *Runner) RunAll(ctx context.Context, deps *Deps) (Summary, error) {
	summary := Summary{
		Status: StatusPass,
		Files:  append([]string{}, deps.Files...),
		Checks: []string{},
		Failed: []string{},
	}

	for _, check := range r.checks {
		id := check.ID()
		summary.Checks = append(summary.Checks, id)

		res := check.Run(ctx, deps)
		if res.Check == "" {
			res.Check = id
		}
		summary.Results = append(summary.Results, res)

		if err := r.printer.Print(res.Lines...); err != nil {
			return summary, fmt.Errorf("printing %s output: %w", id, err)
		}
		logger.Debug(ctx, "check finished", "check", id, "status", res.Status)

		if !res.Passed() {
			summary.Failed = append(summary.Failed, id)
			summary.Status = StatusFail
		}
	}

	if !summary.Passed() {
		return summary, fmt.Errorf("%w: %v", ErrChecksFailed, summary.Failed)
	}
	return summary, nil
}
