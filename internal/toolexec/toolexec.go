// Package toolexec runs external tools and reports how they finished.
//
// A Result always tells apart a tool that ran and exited non-zero from a tool
// that could not be run at all; callers decide which of the two is a failure.
package toolexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/bartekus/codegate/internal/logger"
)

// Command describes a single tool invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
}

// String returns the command line as typed by a user.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Argv builds a Command from an argv slice plus extra arguments.
// The argv slice is not modified.
func Argv(dir string, argv []string, extra ...string) Command {
	if len(argv) == 0 {
		return Command{Dir: dir}
	}
	args := make([]string, 0, len(argv)-1+len(extra))
	args = append(args, argv[1:]...)
	args = append(args, extra...)
	return Command{Name: argv[0], Args: args, Dir: dir}
}

// Result is the outcome of running a Command.
type Result struct {
	Command  Command
	Stdout   []byte
	Stderr   []byte
	Combined []byte
	ExitCode int

	// Err is set when the process could not be started or waited on:
	// binary not found, permission denied, context cancelled.
	// A non-zero exit alone leaves Err nil.
	Err error
}

// Started reports whether the tool ran to completion, whatever its exit code.
func (r Result) Started() bool { return r.Err == nil }

// Succeeded reports whether the tool ran and exited with status 0.
func (r Result) Succeeded() bool { return r.Err == nil && r.ExitCode == 0 }

// Error returns a *Error describing why the tool did not succeed, or nil.
func (r Result) Error() error {
	if r.Succeeded() {
		return nil
	}
	return &Error{
		Command:  r.Command,
		ExitCode: r.ExitCode,
		Stderr:   strings.TrimSpace(string(r.Stderr)),
		Err:      r.Err,
	}
}

// StartError returns a *Error only when the tool could not be run.
func (r Result) StartError() error {
	if r.Started() {
		return nil
	}
	return r.Error()
}

// Error is a tool invocation failure.
type Error struct {
	Command  Command
	ExitCode int
	Stderr   string
	Err      error
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s", e.Command)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	} else {
		fmt.Fprintf(&b, ": exit status %d", e.ExitCode)
	}
	if e.Stderr != "" {
		fmt.Fprintf(&b, ": %s", e.Stderr)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Executor runs commands.
type Executor interface {
	Run(ctx context.Context, cmd Command) Result
}

// ExecutorFunc adapts an ordinary function to an Executor.
type ExecutorFunc func(ctx context.Context, cmd Command) Result

// Run calls f.
func (f ExecutorFunc) Run(ctx context.Context, cmd Command) Result {
	return f(ctx, cmd)
}

// OS runs commands as child processes of the current process.
type OS struct{}

// Run executes cmd and blocks until it exits or ctx is done.
func (OS) Run(ctx context.Context, c Command) Result {
	res := Result{Command: c, ExitCode: -1}
	if c.Name == "" {
		res.Err = errors.New("empty command")
		return res
	}

	var stdout, stderr bytes.Buffer
	combined := &lockedBuffer{}

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdout = io.MultiWriter(&stdout, combined)
	cmd.Stderr = io.MultiWriter(&stderr, combined)

	logger.Debug(ctx, "running tool", "cmd", c.String(), "dir", c.Dir)

	err := cmd.Run()
	res.Stdout = stdout.Bytes()
	res.Stderr = stderr.Bytes()
	res.Combined = combined.Bytes()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		res.ExitCode = 0
	case errors.As(err, &exitErr) && ctx.Err() == nil:
		res.ExitCode = exitErr.ExitCode()
	case ctx.Err() != nil:
		res.Err = ctx.Err()
	default:
		res.Err = err
	}

	logger.Debug(ctx, "tool finished", "cmd", c.Name, "exit", res.ExitCode, "err", res.Err)
	return res
}

// lockedBuffer lets stdout and stderr copiers write into one buffer.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Bytes()
}
