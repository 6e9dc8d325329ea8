// Package output renders migration progress and artifacts to the terminal or to disk.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Printer
// =============================================================================

const bannerRule = "-------------"

// Printer writes user-facing progress lines and preview blocks.
// Styling comes from a renderer bound to the writer, so a pipe or a buffer
// gets plain text.
type Printer struct {
	w      io.Writer
	step   lipgloss.Style
	banner lipgloss.Style
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:      w,
		step:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		banner: r.NewStyle().Faint(true),
	}
}

// Step prints one progress line prefixed with "<step>/<total>".
//
// Example:
//
//	p.Step(1, 3, "Detected package name %s", "scoring")
//	// 1/3 Detected package name scoring
func (p *Printer) Step(step, total int, format string, args ...any) {
	prefix := p.step.Render(fmt.Sprintf("%d/%d", step, total))
	fmt.Fprintf(p.w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// Preview prints body between an opening banner naming title and a closing banner.
// The body bytes are written untouched.
func (p *Printer) Preview(title string, body []byte) error {
	open := p.banner.Render(strings.Join([]string{bannerRule, title, bannerRule}, " "))
	if _, err := fmt.Fprintln(p.w, open); err != nil {
		return err
	}
	if _, err := p.w.Write(body); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.w, "\n%s\n", p.banner.Render(bannerRule))
	return err
}
