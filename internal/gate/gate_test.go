package gate

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/codegate/internal/config"
	"github.com/bartekus/codegate/internal/logger"
	"github.com/bartekus/codegate/internal/render"
	"github.com/bartekus/codegate/internal/runner"
	"github.com/bartekus/codegate/internal/testutil/faketools"
	"github.com/bartekus/codegate/internal/testutil/golden"
)

func newRepo(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		path := filepath.Join(dir, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0644))
	}
	return dir
}

func runGate(t *testing.T, tools *faketools.Tools) (runner.Summary, string, error) {
	t.Helper()
	var out bytes.Buffer
	g := New(config.Default(), tools.Root, tools, &out, Options{Color: render.ColorNever})
	summary, err := g.Run(context.Background())
	return summary, out.String(), err
}

func TestGate_Scenarios(t *testing.T) {
	testdata := golden.TestdataDir(t)

	tests := []struct {
		name     string
		files    []string
		tools    *faketools.Tools
		wantPass bool
		wantFail []string
	}{
		{
			name:  "scenario_a",
			files: []string{"a.py"},
			tools: &faketools.Tools{
				Staged:  []string{"a.py"},
				Ratings: map[string]string{"a.py": faketools.Rated("8.50")},
			},
			wantPass: true,
		},
		{
			name:  "scenario_b",
			files: []string{"a.py", "b.py"},
			tools: &faketools.Tools{
				Staged:  []string{"a.py", "b.py"},
				Ratings: map[string]string{"a.py": faketools.Rated("6.90"), "b.py": faketools.Rated("9.00")},
			},
			wantFail: []string{"quality"},
		},
		{
			name:  "scenario_d",
			files: []string{"a.py"},
			tools: &faketools.Tools{
				Staged:  []string{"a.py"},
				Ratings: map[string]string{"a.py": faketools.Rated("8.00")},
				Style:   "a.py:1: line too long\n",
			},
			wantFail: []string{"style"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tools := tt.tools
			tools.Root = newRepo(t, tt.files...)

			summary, out, err := runGate(t, tools)
			if tt.wantPass {
				require.NoError(t, err)
				assert.True(t, summary.Passed())
			} else {
				require.ErrorIs(t, err, runner.ErrChecksFailed)
				assert.Equal(t, tt.wantFail, summary.Failed)
			}

			assert.Equal(t, []string{"style", "quality"}, summary.Checks)
			assert.Len(t, tools.Calls("pep8"), 1)
			assert.Len(t, tools.Calls("pylint"), len(tt.files))
			golden.Check(t, testdata, tt.name, out)
		})
	}
}

func TestGate_EmptyChangeSet(t *testing.T) {
	tools := &faketools.Tools{Root: newRepo(t)}

	summary, out, err := runGate(t, tools)
	require.NoError(t, err)
	assert.True(t, summary.Passed())
	assert.Empty(t, out, "no per-file output")
	assert.Empty(t, tools.Calls("pep8"))
	assert.Empty(t, tools.Calls("pylint"))
}

func TestGate_FiltersChangeSet(t *testing.T) {
	tools := &faketools.Tools{
		Root:    newRepo(t, "a.py", "README.md"),
		Staged:  []string{"README.md", "deleted.py", "a.py"},
		Ratings: map[string]string{"a.py": faketools.Rated("10.00")},
	}

	summary, out, err := runGate(t, tools)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.py"}, summary.Files)

	styleCalls := tools.Calls("pep8")
	require.Len(t, styleCalls, 1)
	assert.Equal(t, []string{"a.py"}, styleCalls[0].Args)
	assert.Equal(t, tools.Root, styleCalls[0].Dir)
	assert.Contains(t, out, "[ pass ] a.py: 10/10")
}

func TestGate_FirstCommit(t *testing.T) {
	tools := &faketools.Tools{
		Root:    newRepo(t, "a.py"),
		NoHead:  true,
		Staged:  []string{"a.py"},
		Ratings: map[string]string{"a.py": faketools.Rated("7.00")},
	}

	_, out, err := runGate(t, tools)
	require.NoError(t, err, "a score equal to the threshold passes")
	assert.Contains(t, out, "[ pass ] a.py: 7.0/10")

	diff := tools.Calls("git")
	last := diff[len(diff)-1]
	assert.Equal(t, "4b825dc642cb6eb9a060e54bf8d69288fbee4904", last.Args[len(last.Args)-1])
}

func TestGate_ListerFailure(t *testing.T) {
	tools := &faketools.Tools{Root: newRepo(t), DiffFails: true}

	_, out, err := runGate(t, tools)
	require.Error(t, err)
	assert.NotErrorIs(t, err, runner.ErrChecksFailed)
	assert.Contains(t, err.Error(), "discovering changed files")
	assert.Empty(t, out)
	assert.Empty(t, tools.Calls("pep8"))
}

func TestGate_UnparseableRating(t *testing.T) {
	tools := &faketools.Tools{
		Root:   newRepo(t, "a.py"),
		Staged: []string{"a.py"},
	}

	summary, out, err := runGate(t, tools)
	require.ErrorIs(t, err, runner.ErrChecksFailed)
	assert.Equal(t, []string{"quality"}, summary.Failed)
	assert.Contains(t, out, "Quality results:\n  [ ERROR ] a.py: score not found in checker output")
}

func TestGate_MissingStyleTool(t *testing.T) {
	tools := &faketools.Tools{
		Root:    newRepo(t, "a.py"),
		Staged:  []string{"a.py"},
		Ratings: map[string]string{"a.py": faketools.Rated("9.00")},
		Missing: []string{"pep8"},
	}

	summary, out, err := runGate(t, tools)
	require.ErrorIs(t, err, runner.ErrChecksFailed)
	assert.Equal(t, []string{"style"}, summary.Failed)
	assert.Contains(t, out, "Style check could not run")
	assert.Len(t, tools.Calls("pylint"), 1, "quality still runs")
}

func TestGate_ThresholdFromConfig(t *testing.T) {
	tools := &faketools.Tools{
		Root:    newRepo(t, "a.py"),
		Staged:  []string{"a.py"},
		Ratings: map[string]string{"a.py": faketools.Rated("6.90")},
	}
	cfg := config.Default()
	cfg.Threshold = 6.5

	var out bytes.Buffer
	_, err := New(cfg, tools.Root, tools, &out, Options{Color: render.ColorNever}).Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[ pass ] a.py: 6.9/10")
}

func TestGate_AllTrackedFiles(t *testing.T) {
	tools := &faketools.Tools{
		Root:    newRepo(t, "a.py", "pkg/b.py", "setup.cfg"),
		Tracked: []string{"a.py", "pkg/b.py", "setup.cfg"},
		Ratings: map[string]string{"a.py": faketools.Rated("9.00"), "pkg/b.py": faketools.Rated("8.00")},
	}

	var out bytes.Buffer
	summary, err := New(config.Default(), tools.Root, tools, &out, Options{All: true, Color: render.ColorNever}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a.py", "pkg/b.py"}, summary.Files)
	assert.Len(t, tools.Calls("pylint"), 2)
}

func TestGate_AllWarnsWhenNothingMatches(t *testing.T) {
	tools := &faketools.Tools{
		Root:    newRepo(t, "setup.cfg"),
		Tracked: []string{"setup.cfg"},
	}

	var logs, out bytes.Buffer
	ctx := logger.Put(context.Background(), logger.New(&logs, logger.Options{NoColor: true}))

	summary, err := New(config.Default(), tools.Root, tools, &out, Options{All: true, Color: render.ColorNever}).Run(ctx)
	require.NoError(t, err)
	assert.Empty(t, summary.Files)
	assert.Contains(t, logs.String(), "WRN no tracked files match the configured suffixes")
}
