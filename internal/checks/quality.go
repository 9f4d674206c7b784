package checks

import (
	"context"
	"fmt"
	"strings"

	"github.com/bartekus/codegate/internal/quality"
	"github.com/bartekus/codegate/internal/render"
	"github.com/bartekus/codegate/internal/runner"
	"github.com/bartekus/codegate/internal/toolexec"
)

// Quality rates every changed file and fails when any score is below the
// threshold or a file could not be rated.
type Quality struct {
	exec      toolexec.Executor
	command   []string
	threshold float64
}

// NewQuality returns the quality check.
func NewQuality(ex toolexec.Executor, command []string, threshold float64) *Quality {
	return &Quality{exec: ex, command: command, threshold: threshold}
}

func (q *Quality) ID() string { return "quality" }

func (q *Quality) Run(ctx context.Context, deps *runner.Deps) runner.Result {
	report, rateErr := quality.NewChecker(q.exec, deps.RepoRoot, q.command).Rate(ctx, deps.Files)

	var lines []render.Line
	if report.Len() > 0 || rateErr != nil {
		lines = append(lines, render.Plainf("Quality results:"))
	}
	for _, s := range report.Scores() {
		lines = append(lines, scoreLine(s, q.threshold))
	}
	if rateErr != nil {
		for _, msg := range strings.Split(rateErr.Error(), "\n") {
			lines = append(lines, render.Failf("  [ ERROR ] %s", msg))
		}
	}

	passed := report.Passed(q.threshold)
	if !passed {
		lines = append(lines, render.Failf("Not all files passed the quality threshold (>= %s).", formatThreshold(q.threshold)))
	}

	res := runner.Result{
		Check:   q.ID(),
		Status:  runner.StatusPass,
		Details: report.Scores(),
		Lines:   lines,
	}
	switch {
	case rateErr != nil:
		res.Status = runner.StatusFail
		res.ExitCode = exitToolFailed
		res.Note = rateErr.Error()
	case !passed:
		res.Status = runner.StatusFail
		res.ExitCode = exitCheckFailed
		res.Note = failingNote(report.Failing(q.threshold))
	}
	return res
}

func scoreLine(s quality.Score, threshold float64) render.Line {
	text := fmt.Sprintf("%s: %s/10", s.File, quality.FormatScore(s.Value))
	if quality.Passes(s.Value, threshold) {
		return render.Passf("  [ pass ] %s", text)
	}
	return render.Failf("  [ FAIL ] %s", text)
}

func failingNote(failing []quality.Score) string {
	files := make([]string, 0, len(failing))
	for _, s := range failing {
		files = append(files, s.File)
	}
	return "Below threshold: " + strings.Join(files, ", ")
}
