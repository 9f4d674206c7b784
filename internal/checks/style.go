package checks

import (
	"context"
	"strings"

	"github.com/bartekus/codegate/internal/render"
	"github.com/bartekus/codegate/internal/runner"
	"github.com/bartekus/codegate/internal/style"
	"github.com/bartekus/codegate/internal/toolexec"
)

// Style runs the style checker over the whole change-set.
type Style struct {
	exec    toolexec.Executor
	command []string
}

// NewStyle returns the style check.
func NewStyle(ex toolexec.Executor, command []string) *Style {
	return &Style{exec: ex, command: command}
}

func (s *Style) ID() string { return "style" }

func (s *Style) Run(ctx context.Context, deps *runner.Deps) runner.Result {
	if deps.Files.Empty() {
		return runner.Result{
			Check:  s.ID(),
			Status: runner.StatusPass,
			Note:   "No files to check",
		}
	}

	res, err := style.NewChecker(s.exec, deps.RepoRoot, s.command).Check(ctx, deps.Files)
	if err != nil {
		return runner.Result{
			Check:    s.ID(),
			Status:   runner.StatusFail,
			ExitCode: exitToolFailed,
			Note:     err.Error(),
			Lines:    []render.Line{render.Failf("Style check could not run: %v", err)},
		}
	}

	if !res.Passed() {
		lines := []render.Line{render.Failf("Style violations were detected.")}
		for _, l := range render.Indent(res.Output) {
			lines = append(lines, render.Plainf("%s", l))
		}
		return runner.Result{
			Check:    s.ID(),
			Status:   runner.StatusFail,
			ExitCode: exitCheckFailed,
			Note:     strings.TrimSpace(res.Output),
			Details:  res.Violations(),
			Lines:    lines,
		}
	}

	return runner.Result{
		Check:  s.ID(),
		Status: runner.StatusPass,
		Lines:  []render.Line{render.Infof("No style violations were detected.")},
	}
}
