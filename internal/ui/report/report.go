package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const banner = `
  ___  ___ ___  __ _ _   _  __ _  ___ _ __
 / _ \/ __/ __|/ _' | | | |/ _' |/ _ \ '_ \
|  __/\__ \__ \ (_| | |_| | (_| |  __/ | | |
 \___||___/___/\__,_|\__, |\__, |\___|_| |_|
                     |___/ |___/
`

// Theme holds the lipgloss styles used by the renderer.
type Theme struct {
	Banner lipgloss.Style
	Header lipgloss.Style
	Topics lipgloss.Style
	Notice lipgloss.Style
}

// DefaultTheme returns the CLI styling.
func DefaultTheme() Theme {
	return Theme{
		Banner: lipgloss.NewStyle().Bold(true),
		Header: lipgloss.NewStyle().Bold(true),
		Topics: lipgloss.NewStyle().Faint(true),
		Notice: lipgloss.NewStyle().Italic(true),
	}
}

// Renderer prints the interactive surface: banner, prompt, notices, and
// the generated-paragraphs report.
type Renderer struct {
	out   io.Writer
	theme Theme
	width int
}

// NewRenderer creates a Renderer writing to out, wrapping paragraph
// bodies at width columns.
func NewRenderer(out io.Writer, width int) *Renderer {
	return &Renderer{out: out, theme: DefaultTheme(), width: width}
}

// Banner prints the tool banner once at startup.
func (r *Renderer) Banner() {
	fmt.Fprintln(r.out, r.theme.Banner.Render(banner))
}

// Prompt prints the topic prompt without a trailing newline.
func (r *Renderer) Prompt() {
	fmt.Fprint(r.out, "Enter a topic: ")
}

// NoTopics tells the user that nothing could be resolved from the input.
func (r *Renderer) NoTopics() {
	fmt.Fprintln(r.out, r.theme.Notice.Render("No related topics found. Try a different topic sentence."))
}

// Report prints the resolved topics and the generated paragraphs in the
// fixed format: a "Generated paragraphs:" header followed by one
// "Paragraph N:" block per paragraph, bodies word-wrapped.
func (r *Renderer) Report(topics, paragraphs []string) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.theme.Topics.Render("Topics: "+strings.Join(topics, ", ")))
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.theme.Header.Render("Generated paragraphs:"))
	fmt.Fprintln(r.out)
	for i, p := range paragraphs {
		fmt.Fprintf(r.out, "Paragraph %d:\n%s\n\n", i+1, wordwrap.String(p, r.width))
	}
}
