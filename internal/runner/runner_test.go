package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/codegate/internal/changeset"
	"github.com/bartekus/codegate/internal/render"
)

// MockCheck implements Check for testing.
type MockCheck struct {
	id     string
	result Result
	called bool
	files  changeset.ChangeSet
}

func (m *MockCheck) ID() string {
	return m.id
}

func (m *MockCheck) Run(ctx context.Context, deps *Deps) Result {
	m.called = true
	m.files = deps.Files
	return m.result
}

func newTestRunner(checks ...Check) (*Runner, *bytes.Buffer) {
	var out bytes.Buffer
	return NewRunner(checks, render.NewPrinter(&out, render.ColorNever)), &out
}

func TestRunner_RunAll(t *testing.T) {
	s1 := &MockCheck{id: "style", result: Result{Status: StatusPass, Lines: []render.Line{render.Infof("style ok")}}}
	s2 := &MockCheck{id: "quality", result: Result{Check: "quality", Status: StatusPass}}

	r, out := newTestRunner(s1, s2)

	summary, err := r.RunAll(context.Background(), &Deps{Files: changeset.ChangeSet{"a.py"}})
	require.NoError(t, err)

	assert.True(t, s1.called)
	assert.True(t, s2.called)
	assert.Equal(t, changeset.ChangeSet{"a.py"}, s2.files)

	assert.True(t, summary.Passed())
	assert.Equal(t, []string{"style", "quality"}, summary.Checks)
	assert.Empty(t, summary.Failed)
	assert.Equal(t, "style", summary.Results[0].Check, "missing check id is filled in")
	assert.Equal(t, "style ok\n", out.String())
}

func TestRunner_RunAll_Failure(t *testing.T) {
	s1 := &MockCheck{id: "style", result: Result{Status: StatusFail, ExitCode: 1, Lines: []render.Line{render.Failf("bad style")}}}
	s2 := &MockCheck{id: "quality", result: Result{Status: StatusPass, Lines: []render.Line{render.Passf("good quality")}}}

	r, out := newTestRunner(s1, s2)

	summary, err := r.RunAll(context.Background(), &Deps{})
	require.ErrorIs(t, err, ErrChecksFailed)

	assert.True(t, s1.called)
	assert.True(t, s2.called) // no short-circuit after a failure

	assert.Equal(t, StatusFail, summary.Status)
	assert.Equal(t, []string{"style"}, summary.Failed)
	assert.Equal(t, "bad style\ngood quality\n", out.String())
}

func TestRunner_SkipDoesNotFail(t *testing.T) {
	s1 := &MockCheck{id: "style", result: Result{Status: StatusSkip, Note: "nothing to check"}}

	r, _ := newTestRunner(s1)

	summary, err := r.RunAll(context.Background(), &Deps{})
	require.NoError(t, err)
	assert.True(t, summary.Passed())
}

func TestWriteSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "codegate.json")
	in := Summary{
		Status:  StatusFail,
		Files:   []string{"a.py"},
		Checks:  []string{"style", "quality"},
		Failed:  []string{"quality"},
		Results: []Result{{Check: "style", Status: StatusPass}, {Check: "quality", Status: StatusFail, ExitCode: 1, Note: "a.py below threshold"}},
	}

	require.NoError(t, WriteSummary(path, in))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Summary
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, in, got)
	assert.Contains(t, string(data), `"exit_code": 1`)
}
