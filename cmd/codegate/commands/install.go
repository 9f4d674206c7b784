package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartekus/codegate/internal/changeset"
	"github.com/bartekus/codegate/internal/hook"
	"github.com/bartekus/codegate/internal/toolexec"
)

func newInstallCmd(g *globalOptions, ex toolexec.Executor) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install codegate as the repository's pre-commit hook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			wd, err := g.workDir()
			if err != nil {
				return err
			}
			root, err := changeset.RepoRoot(ctx, ex, wd)
			if err != nil {
				return err
			}
			path, err := hook.Path(ctx, ex, root)
			if err != nil {
				return err
			}
			if err := hook.Install(path, force); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Installed pre-commit hook at %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing pre-commit hook")
	return cmd
}
