package runner

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// WriteSummary saves the run summary as indented JSON at path.
// Nothing reads it back; it is a report for humans and CI.
func WriteSummary(path string, s Summary) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
