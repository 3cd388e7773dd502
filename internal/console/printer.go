// Package console is the text sink for the verification report.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	CheckMark    = "✓"
	headerPrefix = "==="
	checkPrefix  = CheckMark + " "
)

// Printer writes report lines, highlighting check-mark lines and section
// headers when the writer is a color terminal. On anything else the
// renderer falls back to plain text.
type Printer struct {
	w      io.Writer
	check  lipgloss.Style
	header lipgloss.Style
}

func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:      w,
		check:  r.NewStyle().Foreground(lipgloss.Color("#3FB950")),
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
	}
}

// Print writes each line followed by a newline.
func (p *Printer) Print(lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(p.w, p.style(line)); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) style(line string) string {
	switch {
	case strings.HasPrefix(line, checkPrefix):
		return p.check.Render(line)
	case strings.HasPrefix(line, headerPrefix):
		return p.header.Render(line)
	default:
		return line
	}
}
