package runner

import (
	"context"

	"github.com/bartekus/codegate/internal/changeset"
)

// Deps contains the inputs shared by every check of a run.
type Deps struct {
	RepoRoot string
	Files    changeset.ChangeSet
}

// Check defines a unit of work in the gate.
type Check interface {
	// ID returns the unique identifier (e.g. "style").
	ID() string

	// Run executes the check. Failures are reported in the Result,
	// never by panicking or aborting the run.
	Run(ctx context.Context, deps *Deps) Result
}
