package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// canvas composes lipgloss-rendered blocks into a cell buffer so the modal
// can be painted over a dimmed scrim before handing the frame back to
// Bubble Tea as a string.
type canvas struct {
	screen *cellbuf.Screen
	writer *cellbuf.ScreenWriter
	width  int
	height int
}

func newCanvas(width, height int) *canvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	screen := cellbuf.NewScreen(io.Discard, width, height, &cellbuf.ScreenOptions{
		ShowCursor: false,
		AltScreen:  false,
	})
	return &canvas{
		screen: screen,
		writer: cellbuf.NewScreenWriter(screen),
		width:  width,
		height: height,
	}
}

// fill paints the entire canvas with the provided background color.
func (c *canvas) fill(bg lipgloss.TerminalColor) {
	if c == nil {
		return
	}
	block := lipgloss.NewStyle().
		Background(bg).
		Width(c.width).
		Height(c.height).
		Render("")
	c.drawAt(0, 0, block)
}

// drawAt writes the block starting at x,y. Newlines are normalized so each
// line begins at column 0 relative to x.
func (c *canvas) drawAt(x, y int, content string) {
	if content == "" || c == nil || c.writer == nil {
		return
	}
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	for i, line := range lines {
		row := y + i
		if row >= c.height {
			break
		}
		if line == "" {
			continue
		}
		c.writer.PrintCropAt(x, row, line, "")
	}
}

// drawCentered paints the block centered horizontally, with its top edge at
// roughly a quarter of the canvas height, launcher-style.
func (c *canvas) drawCentered(content string) {
	if c == nil || content == "" {
		return
	}
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	blockWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > blockWidth {
			blockWidth = w
		}
	}
	if blockWidth > c.width {
		blockWidth = c.width
	}

	startX := (c.width - blockWidth) / 2
	if startX < 0 {
		startX = 0
	}
	startY := c.height / 4
	if startY+len(lines) > c.height {
		startY = c.height - len(lines)
	}
	if startY < 0 {
		startY = 0
	}
	c.drawAt(startX, startY, content)
}

// render returns the composed frame as a newline-delimited string.
func (c *canvas) render() string {
	if c == nil || c.screen == nil {
		return ""
	}
	raw := cellbuf.Render(c.screen)
	_ = c.screen.Close()
	return strings.ReplaceAll(raw, "\r\n", "\n")
}
