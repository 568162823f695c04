// Package render prints a reply as a speech bubble spoken by a character.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/llmsay/internal/bubble"
	"github.com/diogo/llmsay/internal/characters"
)

// Connector lines drawn between the bubble and the character.
var Connectors = []string{
	`         \  `,
	`          \  `,
}

const (
	bubbleColor    = lipgloss.Color("15") // bright white
	connectorColor = lipgloss.Color("8")  // bright black
)

// Printer writes bubbles to an output, coloured when the output supports it.
type Printer struct {
	out      io.Writer
	color    bool
	renderer *lipgloss.Renderer
}

// NewPrinter returns a Printer for w. With color false nothing is styled;
// otherwise lipgloss decides based on what w is connected to.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{
		out:      w,
		color:    color,
		renderer: lipgloss.NewRenderer(w),
	}
}

// Say prints the bubble for message, the connector lines and the character.
func (p *Printer) Say(message string, c characters.Character) error {
	bubbleStyle := p.renderer.NewStyle().Foreground(bubbleColor)
	connectorStyle := p.renderer.NewStyle().Foreground(connectorColor)
	artStyle := p.renderer.NewStyle().Foreground(c.Color())

	var sb strings.Builder
	sb.WriteString(p.paint(bubbleStyle, bubble.Render(message)))
	sb.WriteByte('\n')
	for _, line := range Connectors {
		sb.WriteString(p.paint(connectorStyle, line))
		sb.WriteByte('\n')
	}
	sb.WriteString(p.paint(artStyle, c.Art()))
	sb.WriteByte('\n')

	_, err := io.WriteString(p.out, sb.String())
	return err
}

// Failure prints the single diagnostic line shown when no reply arrived.
func (p *Printer) Failure(err error) error {
	_, werr := fmt.Fprintln(p.out, FailureLine(err))
	return werr
}

// FailureLine formats the diagnostic for err on one line.
func FailureLine(err error) string {
	msg := strings.Join(strings.Fields(fmt.Sprint(err)), " ")
	return "Error getting llm response with " + msg
}

// Compose returns exactly what Say prints when colour is off.
func Compose(message string, c characters.Character) string {
	return bubble.Render(message) + "\n" +
		strings.Join(Connectors, "\n") + "\n" +
		c.Art() + "\n"
}

// paint styles text line by line so lipgloss does not pad lines to a common
// width; blank lines are left untouched.
func (p *Printer) paint(style lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}
