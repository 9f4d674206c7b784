package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bartekus/codegate/cmd/codegate/internal/clierr"
	"github.com/bartekus/codegate/internal/changeset"
	"github.com/bartekus/codegate/internal/config"
	"github.com/bartekus/codegate/internal/gate"
	"github.com/bartekus/codegate/internal/logger"
	"github.com/bartekus/codegate/internal/runner"
	"github.com/bartekus/codegate/internal/toolexec"
)

type checkOptions struct {
	all        bool
	configPath string
	threshold  float64
	reportPath string
}

// bindCheck makes cmd run the gate and registers its flags.
func bindCheck(cmd *cobra.Command, g *globalOptions, ex toolexec.Executor) {
	o := &checkOptions{}

	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runCheck(cmd, g, o, ex)
	}

	// Flags in alphabetical order for deterministic help output
	cmd.Flags().BoolVar(&o.all, "all", false, "check every tracked file instead of the staged ones")
	cmd.Flags().StringVar(&o.configPath, "config", "", "configuration `file` (default: "+config.FileName+" at the repository root)")
	cmd.Flags().StringVar(&o.reportPath, "report", "", "write a JSON run summary to `file`")
	cmd.Flags().Float64Var(&o.threshold, "threshold", config.Default().Threshold, "minimum passing quality score (0-10)")
}

func runCheck(cmd *cobra.Command, g *globalOptions, o *checkOptions, ex toolexec.Executor) error {
	ctx := cmd.Context()

	wd, err := g.workDir()
	if err != nil {
		return clierr.Abort(err)
	}
	root, err := changeset.RepoRoot(ctx, ex, wd)
	if err != nil {
		return clierr.Abort(err)
	}

	cfgPath := o.configPath
	switch {
	case cfgPath == "":
		cfgPath = filepath.Join(root, config.FileName)
	case !filepath.IsAbs(cfgPath):
		cfgPath = filepath.Join(wd, cfgPath)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return clierr.Abort(err)
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Threshold = o.threshold
		if err := cfg.Validate(); err != nil {
			return clierr.Abort(err)
		}
	}
	logger.Debug(ctx, "configuration loaded", "path", cfgPath, "threshold", cfg.Threshold, "suffixes", cfg.Suffixes)

	summary, runErr := gate.New(cfg, root, ex, cmd.OutOrStdout(), gate.Options{All: o.all, Color: g.colorMode()}).Run(ctx)

	if o.reportPath != "" && len(summary.Checks) > 0 {
		path := o.reportPath
		if !filepath.IsAbs(path) {
			path = filepath.Join(wd, path)
		}
		if err := runner.WriteSummary(path, summary); err != nil {
			return clierr.Abort(fmt.Errorf("writing report: %w", err))
		}
		logger.Info(ctx, "report written", "path", path, "status", summary.Status)
	}

	switch {
	case runErr == nil:
		return nil
	case errors.Is(runErr, runner.ErrChecksFailed):
		return clierr.Abort(nil)
	default:
		return clierr.Abort(runErr)
	}
}
