// Package presenter writes notices and inline messages to the terminal.
package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Presenter renders user-facing output. Notices go to errOut, everything
// else to out. Styling degrades to plain text when the writer is not a
// terminal.
type Presenter struct {
	out    io.Writer
	errOut io.Writer

	notice  lipgloss.Style
	success lipgloss.Style
	heading lipgloss.Style
	item    lipgloss.Style
}

// New creates a presenter writing to out and errOut.
func New(out, errOut io.Writer) *Presenter {
	outRenderer := lipgloss.NewRenderer(out)
	errRenderer := lipgloss.NewRenderer(errOut)

	return &Presenter{
		out:     out,
		errOut:  errOut,
		notice:  errRenderer.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		success: outRenderer.NewStyle().Foreground(lipgloss.Color("2")),
		heading: outRenderer.NewStyle().Bold(true),
		item:    outRenderer.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

// Notice shows a transient notice.
func (p *Presenter) Notice(message string) {
	fmt.Fprintln(p.errOut, p.notice.Render(message))
}

// Success prints a confirmation line.
func (p *Presenter) Success(message string) {
	fmt.Fprintln(p.out, p.success.Render(message))
}

// Println prints a plain line.
func (p *Presenter) Println(message string) {
	fmt.Fprintln(p.out, message)
}

// Block prints an inline rendered block. Lines starting with "- " are list
// items; the first line is a heading.
func (p *Presenter) Block(text string) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "- "):
			line = p.item.Render(line)
		case i == 0:
			line = p.heading.Render(line)
		}
		fmt.Fprintln(p.out, line)
	}
}
