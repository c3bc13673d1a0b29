package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"quickbar/internal/query"
)

const (
	modalMinWidth = 50
	modalMaxWidth = 72
)

func (m *Model) View() string {
	if !m.ready {
		return ""
	}

	modal := styleModal.Width(m.modalInnerWidth()).Render(m.modalContent())

	c := newCanvas(m.width, m.height)
	c.fill(cScrim)
	c.drawCentered(modal)
	return c.render()
}

func (m *Model) modalInnerWidth() int {
	width := m.width - 8
	if width > modalMaxWidth {
		width = modalMaxWidth
	}
	if width < modalMinWidth {
		width = modalMinWidth
	}
	return width
}

func (m *Model) modalContent() string {
	state := m.sess.State()
	filtered := state.Filtered()
	selected := state.Selected()

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if len(filtered) == 0 {
		b.WriteString(styleEmptyHint.Render("No matches"))
		b.WriteString("\n")
	} else {
		start, end := resultWindow(selected, len(filtered), m.maxResults)
		for i := start; i < end; i++ {
			b.WriteString(m.renderRow(filtered[i], i == selected))
			b.WriteString("\n")
		}
		if len(filtered) > m.maxResults {
			b.WriteString(styleCountBadge.Render(fmt.Sprintf("%d/%d", selected+1, len(filtered))))
			b.WriteString("\n")
		}
	}

	b.WriteString(styleFooter.Render("enter open · alt+enter alt · ctrl+y copy · esc dismiss"))
	return b.String()
}

func (m *Model) renderRow(item query.Item, selected bool) string {
	width := m.modalInnerWidth()

	text := item.Title
	if item.Icon != "" {
		text = item.Icon + " " + text
	}
	line := truncate.StringWithTail(text, uint(width-2), "…")

	if selected {
		return styleSelectedRow.Width(width).Render(" " + line)
	}
	rendered := styleRow.Render(" " + line)
	if item.Subtitle != "" {
		remaining := width - lipgloss.Width(rendered) - 2
		if remaining > 4 {
			sub := truncate.StringWithTail(item.Subtitle, uint(remaining), "…")
			rendered += styleRowSubtitle.Render("  " + sub)
		}
	}
	return rendered
}

// resultWindow picks the visible slice of results, keeping the cursor in
// view as it moves past either edge.
func resultWindow(selected, count, max int) (start, end int) {
	if count <= max {
		return 0, count
	}
	start = selected - max/2
	if start < 0 {
		start = 0
	}
	end = start + max
	if end > count {
		end = count
		start = end - max
	}
	return start, end
}
