// Package changeset discovers the files staged for the pending commit.
package changeset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bartekus/codegate/internal/logger"
	"github.com/bartekus/codegate/internal/toolexec"
)

// EmptyTree is the object name of git's empty tree. Staged changes are
// diffed against it when the repository has no commits yet.
const EmptyTree = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"

// ErrNotRepository is returned when the working directory is not inside a
// git work tree.
var ErrNotRepository = errors.New("not a git repository")

// ChangeSet is an ordered, duplicate-free list of paths relative to the
// repository root.
type ChangeSet []string

// Empty reports whether there is nothing to check.
func (c ChangeSet) Empty() bool { return len(c) == 0 }


// RepoRoot returns the top-level directory of the work tree containing dir.
func RepoRoot(ctx context.Context, ex toolexec.Executor, dir string) (string, error) {
	res := ex.Run(ctx, toolexec.Command{
		Name: "git",
		Args: []string{"rev-parse", "--show-toplevel"},
		Dir:  dir,
	})
	if err := res.StartError(); err != nil {
		return "", err
	}
	if !res.Succeeded() {
		return "", fmt.Errorf("%s: %w", dir, ErrNotRepository)
	}
	root := strings.TrimSpace(string(res.Stdout))
	if root == "" {
		return "", fmt.Errorf("%s: %w", dir, ErrNotRepository)
	}
	return root, nil
}

// Discoverer lists staged source files.
type Discoverer struct {
	repoRoot string
	exec     toolexec.Executor
	suffixes []string
}

// New creates a Discoverer for the repository at repoRoot keeping only paths
// that end in one of suffixes.
func New(repoRoot string, ex toolexec.Executor, suffixes []string) *Discoverer {
	return &Discoverer{
		repoRoot: repoRoot,
		exec:     ex,
		suffixes: suffixes,
	}
}

// Discover returns the staged files that carry a recognised suffix and still
// exist on disk. Files deleted in the pending commit are never included.
//
// A failing change lister is reported as an error; its output is never
// interpreted as a file list.
func (d *Discoverer) Discover(ctx context.Context) (ChangeSet, error) {
	base, err := d.base(ctx)
	if err != nil {
		return nil, err
	}

	res := d.exec.Run(ctx, toolexec.Command{
		Name: "git",
		// -z keeps non-ASCII names unquoted under core.quotePath
		Args: []string{"diff", "--staged", "--name-only", "-z", base},
		Dir:  d.repoRoot,
	})
	if err := res.Error(); err != nil {
		return nil, fmt.Errorf("listing staged files: %w", err)
	}

	listed := ParseNameOnly(string(res.Stdout))
	files := FilterFiles(listed, FilterOptions{
		Suffixes: d.suffixes,
		Exists:   d.exists,
	})
	logger.Debug(ctx, "discovered change-set", "listed", len(listed), "kept", len(files), "base", base)

	return ChangeSet(files), nil
}

// base picks the revision the index is compared against.
func (d *Discoverer) base(ctx context.Context) (string, error) {
	res := d.exec.Run(ctx, toolexec.Command{
		Name: "git",
		Args: []string{"rev-parse", "--verify", "--quiet", "HEAD"},
		Dir:  d.repoRoot,
	})
	if err := res.StartError(); err != nil {
		return "", fmt.Errorf("resolving HEAD: %w", err)
	}
	if !res.Succeeded() {
		logger.Debug(ctx, "no HEAD commit, diffing against the empty tree")
		return EmptyTree, nil
	}
	return "HEAD", nil
}

// Tracked returns every tracked file that carries a recognised suffix and
// exists on disk, for checking a whole tree instead of the pending commit.
func (d *Discoverer) Tracked(ctx context.Context) (ChangeSet, error) {
	res := d.exec.Run(ctx, toolexec.Command{
		Name: "git",
		Args: []string{"ls-files", "-z"},
		Dir:  d.repoRoot,
	})
	if err := res.Error(); err != nil {
		return nil, fmt.Errorf("listing tracked files: %w", err)
	}

	listed := ParseNameOnly(string(res.Stdout))
	files := FilterFiles(listed, FilterOptions{
		Suffixes: d.suffixes,
		Exists:   d.exists,
	})
	return ChangeSet(files), nil
}

func (d *Discoverer) exists(path string) bool {
	_, err := os.Stat(filepath.Join(d.repoRoot, path))
	return err == nil
}
