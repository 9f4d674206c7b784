// Package faketools emulates git, pep8 and pylint for tests.
package faketools

import (
	"context"
	"os/exec"
	"strings"
	"sync"

	"github.com/bartekus/codegate/internal/toolexec"
)

// Tools is a toolexec.Executor answering like the default collaborators.
type Tools struct {
	// Root is printed by `git rev-parse --show-toplevel`.
	Root string
	// NoHead makes `git rev-parse --verify HEAD` fail, like a fresh repository.
	NoHead bool
	// Staged is listed by `git diff --staged --name-only -z`.
	Staged []string
	// Tracked is listed by `git ls-files -z`.
	Tracked []string
	// DiffFails makes `git diff` exit 128.
	DiffFails bool
	// Ratings maps a file to the pylint output for it.
	Ratings map[string]string
	// Style is the pep8 output for any invocation.
	Style string
	// Missing lists programs that are not installed.
	Missing []string

	mu    sync.Mutex
	calls []toolexec.Command
}

// Run implements toolexec.Executor.
func (f *Tools) Run(_ context.Context, c toolexec.Command) toolexec.Result {
	f.mu.Lock()
	f.calls = append(f.calls, c)
	f.mu.Unlock()

	res := toolexec.Result{Command: c}
	for _, m := range f.Missing {
		if m == c.Name {
			res.ExitCode = -1
			res.Err = &exec.Error{Name: c.Name, Err: exec.ErrNotFound}
			return res
		}
	}

	switch c.Name {
	case "git":
		return f.git(res)
	case "pep8":
		res.Combined = []byte(f.Style)
		res.Stdout = res.Combined
		if f.Style != "" {
			res.ExitCode = 1
		}
	case "pylint":
		file := c.Args[len(c.Args)-1]
		out, ok := f.Ratings[file]
		if !ok {
			res.ExitCode = 1
			res.Stderr = []byte("No module named " + file)
			res.Combined = res.Stderr
			return res
		}
		res.Stdout = []byte(out)
		res.Combined = res.Stdout
	default:
		res.ExitCode = -1
		res.Err = &exec.Error{Name: c.Name, Err: exec.ErrNotFound}
	}
	return res
}

func (f *Tools) git(res toolexec.Result) toolexec.Result {
	args := strings.Join(res.Command.Args, " ")
	switch {
	case args == "rev-parse --show-toplevel":
		res.Stdout = []byte(f.Root + "\n")
	case strings.HasPrefix(args, "rev-parse --verify"):
		if f.NoHead {
			res.ExitCode = 1
		} else {
			res.Stdout = []byte("0123456789abcdef0123456789abcdef01234567\n")
		}
	case strings.HasPrefix(args, "rev-parse --git-path"):
		res.Stdout = []byte(".git/" + res.Command.Args[len(res.Command.Args)-1] + "\n")
	case args == "ls-files -z":
		for _, p := range f.Tracked {
			res.Stdout = append(res.Stdout, p+"\x00"...)
		}
	case strings.HasPrefix(args, "diff"):
		if f.DiffFails {
			res.ExitCode = 128
			res.Stderr = []byte("fatal: bad revision 'HEAD'")
			return res
		}
		for _, p := range f.Staged {
			res.Stdout = append(res.Stdout, p+"\x00"...)
		}
	default:
		res.ExitCode = 1
		res.Stderr = []byte("unsupported git invocation: " + args)
	}
	return res
}

// Calls returns the invocations of program, in order.
func (f *Tools) Calls(program string) []toolexec.Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []toolexec.Command
	for _, c := range f.calls {
		if c.Name == program {
			out = append(out, c)
		}
	}
	return out
}

// Rated returns pylint output carrying score.
func Rated(score string) string {
	return "************* Module example\n" +
		"------------------------------------------------------------------\n" +
		"Your code has been rated at " + score + "/10\n"
}
