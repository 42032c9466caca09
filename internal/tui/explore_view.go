package tui

import (
	"fmt"
	"strings"

	"github.com/AravDharnikota/Civora.AI/internal/dataset"
	"github.com/charmbracelet/lipgloss"
)

// exploreFilters are the Explore screen's filter tabs. Selecting one changes
// the highlighted tab only; the card list below is a fixed mock set and does
// not re-filter.
var exploreFilters = []string{"All", "Trending", "AI Generated"}

func renderExploreFilters(active int, width int) string {
	sep := tabSeparatorStyle.Render(" · ")

	var row string
	for i, name := range exploreFilters {
		style := tabInactiveStyle
		if i == active {
			style = tabActiveStyle
		}
		if i > 0 {
			row += sep
		}
		row += style.Render(name)
	}

	return lipgloss.NewStyle().
		Background(colorSurface).
		Width(width).
		PaddingLeft(1).
		Render(row)
}

func renderExplore(trending []dataset.Topic, synth []dataset.SynthCard, filter, cursor, width, height int) string {
	cardWidth := width - 6
	if cardWidth < 30 {
		cardWidth = 30
	}

	var lines []string
	lines = append(lines, renderExploreFilters(filter, width))
	lines = append(lines, "")

	lines = append(lines, " "+sectionTitleStyle.Render("Trending"))
	for i, topic := range trending {
		style := cardStyle
		if i == cursor {
			style = cardSelectedStyle
		}
		body := itemTitleStyle.Render(truncateStr(topic.Title, cardWidth-4)) + "\n" +
			itemMetaStyle.Render(fmt.Sprintf("%s · %d mentions", topic.Tag, topic.Mentions))
		card := style.Width(cardWidth).Render(body)
		for _, l := range strings.Split(card, "\n") {
			lines = append(lines, " "+l)
		}
	}

	lines = append(lines, "")
	lines = append(lines, " "+sectionTitleStyle.Render("Synthesized for you"))
	for i, card := range synth {
		style := cardStyle
		if len(trending)+i == cursor {
			style = cardSelectedStyle
		}
		body := itemTitleStyle.Render(truncateStr(card.Title, cardWidth-4)) + "\n" +
			itemMetaStyle.Render(fmt.Sprintf("%d sources · ", card.SourceCount)) + biasBadge(card.BiasScore) + "\n" +
			articleBodyStyle.Render(wrapText(card.Summary, cardWidth-4))
		rendered := style.Width(cardWidth).Render(body)
		for _, l := range strings.Split(rendered, "\n") {
			lines = append(lines, " "+l)
		}
	}

	content := strings.Join(lines, "\n")

	// Keep the selected card in view by trimming lines above it when the
	// content overflows.
	all := strings.Split(content, "\n")
	if len(all) > height {
		offset := cursor * 4
		if offset > len(all)-height {
			offset = len(all) - height
		}
		if offset < 0 {
			offset = 0
		}
		all = all[offset:]
		if len(all) > height {
			all = all[:height]
		}
	}
	return strings.Join(all, "\n")
}
