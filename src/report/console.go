package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	trialStyle = lipgloss.NewStyle().
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	bestStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)

// Console renders trials as styled text. Styling is dropped when the
// destination is not a terminal, so piped output stays clean.
type Console struct {
	w     io.Writer
	plain bool
	runID string
}

func NewConsole(w io.Writer) *Console {
	plain := true
	if f, ok := w.(*os.File); ok {
		plain = !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
	}
	return &Console{w: w, plain: plain, runID: uuid.NewString()}
}

// RunID identifies this reporter's session, so runs can be told apart
// when output is collected from repeated invocations.
func (c *Console) RunID() string {
	return c.runID
}

func (c *Console) style(s lipgloss.Style, text string) string {
	if c.plain {
		return text
	}
	return s.Render(text)
}

func (c *Console) Begin(session string) {
	fmt.Fprintln(c.w, c.style(titleStyle, session))
	fmt.Fprintf(c.w, "%s %s\n\n", c.style(labelStyle, "run"), c.runID)
}

func (c *Console) Report(t Trial) {
	fmt.Fprintln(c.w, c.style(trialStyle, t.Name))
	fmt.Fprintf(c.w, "  %s %.20e\n", c.style(labelStyle, "expected"), t.Expected)

	best := t.Best()
	for _, m := range t.Methods {
		line := fmt.Sprintf("  %-16s %.20e  err %.2e", m.Name, m.Value, m.AbsErr)
		if m.Elapsed > 0 {
			line += fmt.Sprintf("  %v", m.Elapsed)
		}
		if best != nil && m.Name == best.Name {
			line = c.style(bestStyle, line)
		}
		fmt.Fprintln(c.w, line)
	}
	fmt.Fprintln(c.w)
}

func (c *Console) End() {}
