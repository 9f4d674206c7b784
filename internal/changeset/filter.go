package changeset

import (
	"strings"
)

// FilterOptions defines criteria for keeping changed paths.
type FilterOptions struct {
	// Suffixes is a list of name suffixes to keep (e.g., ".py").
	// If empty, every path is kept.
	Suffixes []string

	// Exists reports whether a path is present on disk.
	// If nil, presence is not checked.
	Exists func(path string) bool
}

// ParseNameOnly splits `git diff --name-only` output into paths. Entries
// may be separated by NUL (-z) or newlines. They are trimmed, blank entries
// dropped and duplicates removed; first-seen order is kept.
func ParseNameOnly(output string) []string {
	var paths []string
	seen := make(map[string]bool)
	entries := strings.FieldsFunc(output, func(r rune) bool { return r == 0 || r == '\n' })
	for _, line := range entries {
		path := strings.TrimSpace(line)
		if path == "" || seen[path] {
			continue
		}
		seen[path] = true
		paths = append(paths, path)
	}
	return paths
}

// FilterFiles applies opts to paths, keeping their order.
func FilterFiles(paths []string, opts FilterOptions) []string {
	if len(paths) == 0 {
		return nil
	}

	var filtered []string
	for _, path := range paths {
		if !hasSuffix(path, opts.Suffixes) {
			continue
		}
		if opts.Exists != nil && !opts.Exists(path) {
			continue
		}
		filtered = append(filtered, path)
	}
	return filtered
}

// hasSuffix returns true if suffixes is empty OR path ends with one of them.
func hasSuffix(path string, suffixes []string) bool {
	if len(suffixes) == 0 {
		return true
	}
	for _, suffix := range suffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}
