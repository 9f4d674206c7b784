// Package checks holds the checks the gate runs over a change-set.
package checks

import (
	"strconv"
	"strings"

	"github.com/bartekus/codegate/internal/config"
	"github.com/bartekus/codegate/internal/runner"
	"github.com/bartekus/codegate/internal/toolexec"
)

// Exit codes recorded per check in the run summary.
const (
	exitCheckFailed = 3
	exitToolFailed  = 4
)

// Registry returns the checks in run order: style first, then quality.
// Both always run; a style failure does not skip the quality check.
func Registry(cfg config.Config, ex toolexec.Executor) []runner.Check {
	return []runner.Check{
		NewStyle(ex, cfg.Style.Command),
		NewQuality(ex, cfg.Quality.Command, cfg.Threshold),
	}
}

// formatThreshold renders a threshold with at least one decimal place.
func formatThreshold(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
