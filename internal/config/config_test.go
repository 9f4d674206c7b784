package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.InDelta(t, 7.0, cfg.Threshold, 1e-9)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `threshold: 8.5
suffixes: [".py", ".pyi"]
style:
  command: ["pycodestyle", "--max-line-length=100"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 8.5, cfg.Threshold, 1e-9)
	assert.Equal(t, []string{".py", ".pyi"}, cfg.Suffixes)
	assert.Equal(t, []string{"pycodestyle", "--max-line-length=100"}, cfg.Style.Command)
	assert.Equal(t, Default().Quality, cfg.Quality, "unset sections keep defaults")
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "empty document", data: ""},
		{name: "comment only", data: "# nothing here\n"},
		{name: "unknown field", data: "treshold: 5\n", wantErr: "field treshold not found"},
		{name: "threshold too high", data: "threshold: 11\n", wantErr: "threshold 11 is outside [0, 10]"},
		{name: "negative threshold", data: "threshold: -1\n", wantErr: "outside"},
		{name: "nan threshold", data: "threshold: .nan\n", wantErr: "threshold NaN is outside"},
		{name: "infinite threshold", data: "threshold: .inf\n", wantErr: "outside"},
		{name: "empty suffixes", data: "suffixes: []\n", wantErr: "suffixes must not be empty"},
		{name: "blank suffix", data: "suffixes: ['']\n", wantErr: "blank entries"},
		{name: "empty style command", data: "style: {command: []}\n", wantErr: "style.command"},
		{name: "empty quality command", data: "quality: {command: ['']}\n", wantErr: "quality.command"},
		{name: "malformed", data: "threshold: [\n", wantErr: "parsing config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	err := Config{Threshold: 12}.Validate()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Problems, 4)
}

func TestLoad_ReportsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("threshold: 20\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
