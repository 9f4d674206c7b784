// Package render prints check output lines with a colour per tone.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Tone selects how a line is coloured.
type Tone int

const (
	Plain Tone = iota
	Pass
	Fail
	Info
)

// Line is one line of user-facing check output.
type Line struct {
	Text string
	Tone Tone
}

// Plainf, Passf, Failf and Infof build lines of the matching tone.
func Plainf(format string, args ...any) Line { return Line{Text: fmt.Sprintf(format, args...), Tone: Plain} }
func Passf(format string, args ...any) Line  { return Line{Text: fmt.Sprintf(format, args...), Tone: Pass} }
func Failf(format string, args ...any) Line  { return Line{Text: fmt.Sprintf(format, args...), Tone: Fail} }
func Infof(format string, args ...any) Line  { return Line{Text: fmt.Sprintf(format, args...), Tone: Info} }

// Indent prefixes every line of text with two spaces.
func Indent(text string) []string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = "  " + strings.TrimRight(line, "\r")
	}
	return lines
}

// ColorMode controls colour output.
type ColorMode int

const (
	// ColorAuto colours only when the writer is a terminal.
	ColorAuto ColorMode = iota
	ColorNever
	ColorAlways
)

// Printer writes lines to an io.Writer.
type Printer struct {
	w      io.Writer
	styles map[Tone]lipgloss.Style
}

// NewPrinter returns a Printer for w.
func NewPrinter(w io.Writer, mode ColorMode) *Printer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	}
	return &Printer{
		w: w,
		styles: map[Tone]lipgloss.Style{
			Pass: r.NewStyle().Foreground(lipgloss.Color("2")),  // Green
			Fail: r.NewStyle().Foreground(lipgloss.Color("1")),  // Red
			Info: r.NewStyle().Foreground(lipgloss.Color("12")), // Bright blue
		},
	}
}

// Print writes each line followed by a newline.
func (p *Printer) Print(lines ...Line) error {
	for _, line := range lines {
		text := line.Text
		if style, ok := p.styles[line.Tone]; ok {
			text = style.Render(text)
		}
		if _, err := fmt.Fprintln(p.w, text); err != nil {
			return err
		}
	}
	return nil
}
