package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// categoryBar is the Home screen's category filter. Cursor 0 is the
// implicit "All" tab; at most one category is selected at a time.
type categoryBar struct {
	names  []string
	cursor int
}

func newCategoryBar(names []string) categoryBar {
	return categoryBar{names: names}
}

// selected returns the active category name, or "" when "All" is selected.
func (c *categoryBar) selected() string {
	if c.cursor == 0 {
		return ""
	}
	return c.names[c.cursor-1]
}

func (c *categoryBar) move(delta int) {
	c.cursor += delta
	if c.cursor < 0 {
		c.cursor = 0
	}
	if c.cursor > len(c.names) {
		c.cursor = len(c.names)
	}
}

func (c *categoryBar) render(width int) string {
	sep := tabSeparatorStyle.Render(" · ")

	labels := append([]string{"All"}, c.names...)
	var parts []string
	for i, label := range labels {
		style := tabInactiveStyle
		if i == c.cursor {
			style = tabActiveStyle
		}
		parts = append(parts, style.Render(label))
	}

	// Build row with · separators, stopping when we'd exceed width
	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	return lipgloss.NewStyle().
		Background(colorSurface).
		Width(width).
		PaddingLeft(1).
		Render(row)
}
