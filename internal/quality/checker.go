package quality

import (
	"context"
	"errors"
	"fmt"

	"github.com/bartekus/codegate/internal/logger"
	"github.com/bartekus/codegate/internal/toolexec"
)

// Checker runs the rated checker once per file.
type Checker struct {
	exec    toolexec.Executor
	dir     string
	command []string
}

// NewChecker returns a Checker that runs command (argv form, file appended)
// from dir.
func NewChecker(ex toolexec.Executor, dir string, command []string) *Checker {
	return &Checker{exec: ex, dir: dir, command: command}
}

// Rate rates files in order.
//
// Rated checkers usually exit non-zero whenever they report any message, so
// the exit status is ignored; only a tool that cannot be started or output
// without a score counts as a failure. Failures are collected per file and
// returned joined; the report holds every file that was rated.
func (c *Checker) Rate(ctx context.Context, files []string) (*Report, error) {
	var (
		scores []Score
		errs   []error
	)
	for _, file := range files {
		res := c.exec.Run(ctx, toolexec.Argv(c.dir, c.command, file))
		if err := res.StartError(); err != nil {
			errs = append(errs, fmt.Errorf("rating %s: %w", file, err))
			continue
		}

		output := string(res.Stdout)
		score, err := ParseScore(output)
		if err != nil {
			errs = append(errs, &ParseError{File: file, Output: string(res.Combined), Err: err})
			continue
		}
		logger.Debug(ctx, "rated file", "file", file, "score", score, "exit", res.ExitCode)
		scores = append(scores, Score{File: file, Value: score})
	}
	return NewReport(scores), errors.Join(errs...)
}
