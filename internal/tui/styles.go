package tui

import (
	"github.com/AravDharnikota/Civora.AI/internal/bias"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Adaptive colors for dark/light terminals
	colorPrimary   = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorSecondary = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorText      = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#E5E5E5"}
	colorDim       = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent    = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}
	colorBorder    = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}
	colorTabActive = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorTabBg     = lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#2A2A3E"}
	colorSurface   = lipgloss.AdaptiveColor{Light: "#F4F4F4", Dark: "#1E1E2E"}
	colorStatusBg  = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#16213E"}
	colorStatusFg  = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorGreen     = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			PaddingLeft(1)

	headerDateStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Align(lipgloss.Right)

	itemTitleStyle = lipgloss.NewStyle().
			Foreground(colorText)

	itemSelectedStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	itemMetaStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	itemCategoryStyle = lipgloss.NewStyle().
				Foreground(colorGreen)

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	cardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(0, 1)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorTabActive).
			Padding(0, 1).
			Bold(true)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Background(colorTabBg).
				Padding(0, 1)

	tabSeparatorStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorStatusBg).
			Foreground(colorStatusFg).
			PaddingLeft(1).
			PaddingRight(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	articleTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	articleMetaStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	articleBodyStyle = lipgloss.NewStyle().
				Foreground(colorSecondary)

	sourceNameStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	sourceURLStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	toggleOnStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	toggleOffStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	onboardingTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	onboardingBodyStyle = lipgloss.NewStyle().
				Foreground(colorSecondary)

	dotActiveStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	dotInactiveStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	helpDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	helpCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 3)
)

// biasBadge renders the classification badge for a score. Every view that
// shows a badge goes through here, so the thresholds and colors stay in one
// place.
func biasBadge(score float64) string {
	level := bias.Classify(score)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(level.Color())).
		Bold(true).
		Render("● " + level.Label())
}

// sourceBadge is the compact per-source variant, score included.
func sourceBadge(score float64) string {
	level := bias.Classify(score)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(level.Color())).
		Render(level.Label())
}
