// Package hook installs the git pre-commit hook that runs codegate.
package hook

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bartekus/codegate/internal/toolexec"
)

// Script is the hook installed into the repository.
const Script = `#!/bin/sh
# Installed by codegate: checks staged files before every commit.
exec codegate
`

// ErrExists is returned when a hook is already installed and overwriting
// was not requested.
var ErrExists = errors.New("pre-commit hook already exists")

// Path returns the pre-commit hook location for the repository at repoRoot,
// honouring worktrees and core.hooksPath.
func Path(ctx context.Context, ex toolexec.Executor, repoRoot string) (string, error) {
	res := ex.Run(ctx, toolexec.Command{
		Name: "git",
		Args: []string{"rev-parse", "--git-path", "hooks/pre-commit"},
		Dir:  repoRoot,
	})
	if err := res.Error(); err != nil {
		return "", fmt.Errorf("locating hooks directory: %w", err)
	}
	path := strings.TrimSpace(string(res.Stdout))
	if !filepath.IsAbs(path) {
		path = filepath.Join(repoRoot, path)
	}
	return path, nil
}

// Install writes Script to path with executable permissions.
// An existing file is replaced only when force is set.
func Install(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrExists)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(Script), 0o755); err != nil { //nolint:gosec // hooks must be executable
		return err
	}
	// WriteFile keeps the mode of an existing file.
	return os.Chmod(path, 0o755)
}
