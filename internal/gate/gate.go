// Package gate ties change-set discovery to the check runner.
package gate

import (
	"context"
	"fmt"
	"io"

	"github.com/bartekus/codegate/internal/changeset"
	"github.com/bartekus/codegate/internal/checks"
	"github.com/bartekus/codegate/internal/config"
	"github.com/bartekus/codegate/internal/logger"
	"github.com/bartekus/codegate/internal/render"
	"github.com/bartekus/codegate/internal/runner"
	"github.com/bartekus/codegate/internal/toolexec"
)

// Options tune a Gate.
type Options struct {
	// All checks every tracked file instead of the staged ones.
	All   bool
	Color render.ColorMode
}

// Gate validates the pending commit of one repository.
type Gate struct {
	cfg      config.Config
	repoRoot string
	exec     toolexec.Executor
	printer  *render.Printer
	all      bool
}

// New returns a Gate printing check output to out.
func New(cfg config.Config, repoRoot string, ex toolexec.Executor, out io.Writer, opts Options) *Gate {
	return &Gate{
		cfg:      cfg,
		repoRoot: repoRoot,
		exec:     ex,
		printer:  render.NewPrinter(out, opts.Color),
		all:      opts.All,
	}
}

// Run discovers the change-set once, then runs the style and quality checks
// over it. The returned error wraps runner.ErrChecksFailed when a check
// failed, or describes why discovery itself failed.
func (g *Gate) Run(ctx context.Context) (runner.Summary, error) {
	d := changeset.New(g.repoRoot, g.exec, g.cfg.Suffixes)
	discover := d.Discover
	if g.all {
		discover = d.Tracked
	}
	files, err := discover(ctx)
	if err != nil {
		return runner.Summary{}, fmt.Errorf("discovering changed files: %w", err)
	}
	switch {
	case files.Empty() && g.all:
		logger.Warn(ctx, "no tracked files match the configured suffixes", "suffixes", g.cfg.Suffixes)
	case files.Empty():
		logger.Debug(ctx, "no staged files to check", "suffixes", g.cfg.Suffixes)
	}

	r := runner.NewRunner(checks.Registry(g.cfg, g.exec), g.printer)
	return r.RunAll(ctx, &runner.Deps{RepoRoot: g.repoRoot, Files: files})
}
