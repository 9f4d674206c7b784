// Package quality rates changed files with an external rated checker and
// aggregates the scores against a pass threshold.
package quality

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MaxScore is the top of the rating scale.
const MaxScore = 10.0

// DefaultThreshold is the minimum passing score.
const DefaultThreshold = 7.0

var (
	// ErrScoreNotFound means the checker output has no "rated at X/10" line.
	ErrScoreNotFound = errors.New("score not found in checker output")
	// ErrScoreOutOfRange means the score is outside [0, MaxScore].
	ErrScoreOutOfRange = errors.New("score out of range")
)

var scorePattern = regexp.MustCompile(`rated at (-?[0-9]+(?:\.[0-9]+)?)/10`)

// ParseError describes checker output that could not be turned into a score.
type ParseError struct {
	File   string
	Output string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.File, e.Err)
	if excerpt := lastLine(e.Output); excerpt != "" {
		msg += fmt.Sprintf(" (last output line: %q)", excerpt)
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseScore extracts the first "rated at X/10" score from output.
func ParseScore(output string) (float64, error) {
	m := scorePattern.FindStringSubmatch(output)
	if m == nil {
		return 0, ErrScoreNotFound
	}
	score, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrScoreNotFound, err)
	}
	if score < 0 || score > MaxScore {
		return 0, fmt.Errorf("%w: %s", ErrScoreOutOfRange, m[1])
	}
	return score, nil
}

// Passes reports whether score meets threshold. Ties pass.
func Passes(score, threshold float64) bool {
	return score >= threshold
}

// FormatScore renders score with two significant digits in fixed notation,
// keeping one decimal place for whole numbers below ten: 8.5, 9.0, 10, 0.53.
func FormatScore(score float64) string {
	s := strconv.FormatFloat(score, 'g', 2, 64)
	if !strings.ContainsAny(s, ".e") && len(s) == 1 {
		s += ".0"
	}
	return s
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(s)
}
