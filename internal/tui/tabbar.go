package tui

import "github.com/charmbracelet/lipgloss"

var tabNames = []string{"Home", "Explore", "Profile"}

func tabIndex(m mode) int {
	switch m {
	case modeExplore:
		return 1
	case modeProfile:
		return 2
	default:
		return 0
	}
}

// renderTabBar draws the three peer tabs. The article and help screens keep
// the bar of the tab that pushed them.
func renderTabBar(active mode, width int) string {
	sep := tabSeparatorStyle.Render("  ")
	idx := tabIndex(active)

	var row string
	for i, name := range tabNames {
		style := tabInactiveStyle
		if i == idx {
			style = tabActiveStyle
		}
		if i > 0 {
			row += sep
		}
		row += style.Render(name)
	}

	return lipgloss.NewStyle().
		Width(width).
		PaddingLeft(1).
		Render(row)
}
