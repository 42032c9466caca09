package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type onboardingSlide struct {
	title string
	body  string
}

var onboardingSlides = []onboardingSlide{
	{
		title: "Read every side",
		body: "Civora pulls the same story from across the political spectrum, " +
			"so you see how each outlet frames it — not just one version.",
	},
	{
		title: "Bias, measured",
		body: "Every article and every source carries a bias score, classified " +
			"Low, Medium, or High. The badge colors follow the score, nothing else.",
	},
	{
		title: "News in your voice",
		body: "Pick a writing style — concise, balanced, detailed, or academic — " +
			"and synthesized articles are written to match it.",
	},
}

func renderOnboarding(step, width, height int) string {
	if step < 0 || step >= len(onboardingSlides) {
		step = 0
	}
	s := onboardingSlides[step]

	contentWidth := width - 20
	if contentWidth < 30 {
		contentWidth = 30
	}
	if contentWidth > 64 {
		contentWidth = 64
	}

	var lines []string
	lines = append(lines, onboardingTitleStyle.Render(s.title))
	lines = append(lines, "")
	for _, l := range strings.Split(wrapText(s.body, contentWidth), "\n") {
		lines = append(lines, onboardingBodyStyle.Render(l))
	}
	lines = append(lines, "")

	// Step dots
	var dots []string
	for i := range onboardingSlides {
		if i == step {
			dots = append(dots, dotActiveStyle.Render("●"))
		} else {
			dots = append(dots, dotInactiveStyle.Render("○"))
		}
	}
	lines = append(lines, strings.Join(dots, " "))

	card := helpCardStyle.Width(contentWidth + 8).Render(strings.Join(lines, "\n"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
