package flow

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders the checklist as a task list, the format `flow show`
// prints through glamour.
func Markdown(c *Checklist) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.Name)
	for i, step := range c.Steps {
		box := " "
		if step.Done {
			box = "x"
		}
		fmt.Fprintf(&b, "- [%s] %d. %s\n", box, i+1, step.Title)
	}
	fmt.Fprintf(&b, "\n%d/%d done\n", c.Done(), len(c.Steps))
	if next := c.Next(); next >= 0 {
		fmt.Fprintf(&b, "\nNext: **%s**\n", c.Steps[next].Title)
	}
	return b.String()
}

// Render turns the checklist into styled terminal output. style is a glamour
// standard style name ("dark", "light", "notty"); word wrap is applied at
// width when positive.
func Render(c *Checklist, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{
		glamour.WithStandardStyle(style),
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("build markdown renderer: %w", err)
	}
	out, err := renderer.Render(Markdown(c))
	if err != nil {
		return "", fmt.Errorf("render checklist: %w", err)
	}
	return out, nil
}
