// Package style runs the style checker over a change-set.
package style

import (
	"context"
	"fmt"
	"strings"

	"github.com/bartekus/codegate/internal/logger"
	"github.com/bartekus/codegate/internal/toolexec"
)

// Result is the style checker's verdict on a change-set.
type Result struct {
	// Output is the combined checker output; empty when nothing was reported.
	Output string
	// Ran is false when the change-set was empty and no tool was invoked.
	Ran bool
}

// Passed reports whether no violations were reported.
func (r Result) Passed() bool { return Evaluate(r.Output) }

// Violations returns the reported lines, without blanks.
func (r Result) Violations() []string {
	var lines []string
	for _, line := range strings.Split(r.Output, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimRight(line, "\r"))
		}
	}
	return lines
}

// Evaluate is the style verdict: only empty output means no violations.
// Anything else, a lone newline included, is a violation report.
func Evaluate(output string) bool {
	return output == ""
}

// Checker invokes the style checker.
type Checker struct {
	exec    toolexec.Executor
	dir     string
	command []string
}

// NewChecker returns a Checker that runs command (argv form, files appended)
// from dir.
func NewChecker(ex toolexec.Executor, dir string, command []string) *Checker {
	return &Checker{exec: ex, dir: dir, command: command}
}

// Check runs the style checker once with every file as an argument.
// An empty change-set passes without running anything. The exit status is not
// consulted; a tool that cannot be started is an error.
func (c *Checker) Check(ctx context.Context, files []string) (Result, error) {
	if len(files) == 0 {
		return Result{}, nil
	}

	res := c.exec.Run(ctx, toolexec.Argv(c.dir, c.command, files...))
	if err := res.StartError(); err != nil {
		return Result{}, fmt.Errorf("running style checker: %w", err)
	}
	logger.Debug(ctx, "style checker finished", "files", len(files), "exit", res.ExitCode, "bytes", len(res.Combined))

	return Result{Output: string(res.Combined), Ran: true}, nil
}
