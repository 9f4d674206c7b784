// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Codegate - a git pre-commit gate.

It runs a style checker over the staged source files and a rated quality
checker on each of them, and rejects the commit when either check fails.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bartekus/codegate/internal/logger"
	"github.com/bartekus/codegate/internal/render"
	"github.com/bartekus/codegate/internal/toolexec"
)

// Version is set at build time with -ldflags "-X .../commands.Version=...".
var Version = "0.0.0-dev"

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	verbose bool
	noColor bool
	dir     string
}

func (o *globalOptions) colorMode() render.ColorMode {
	if o.noColor {
		return render.ColorNever
	}
	return render.ColorAuto
}

// workDir returns the directory codegate acts on.
func (o *globalOptions) workDir() (string, error) {
	if o.dir != "" {
		return o.dir, nil
	}
	return os.Getwd()
}

// NewRootCmd constructs the codegate root command. Run without a subcommand
// it checks the pending commit, which is how the installed hook calls it.
func NewRootCmd() *cobra.Command {
	return newRootCmd(toolexec.OS{})
}

func newRootCmd(ex toolexec.Executor) *cobra.Command {
	g := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "codegate",
		Short: "Check staged files for style violations and low quality scores",
		Long: `Codegate is a git pre-commit gate. It lists the staged source files,
runs the style checker over all of them and the rated checker on each one,
and exits non-zero when there are style violations or a score is below
the threshold.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			l := logger.New(cmd.ErrOrStderr(), logger.Options{Verbose: g.verbose, NoColor: g.noColor})
			cmd.SetContext(logger.Put(cmd.Context(), l))
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "disable coloured output")
	cmd.PersistentFlags().StringVarP(&g.dir, "dir", "C", "", "run as if started in `path`")

	bindCheck(cmd, g, ex)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of codegate",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "codegate version %s\n", Version)
		},
	})
	cmd.AddCommand(newInstallCmd(g, ex))
	cmd.AddCommand(newHelloCmd())

	return cmd
}
