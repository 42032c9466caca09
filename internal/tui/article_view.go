package tui

import (
	"fmt"
	"strings"

	"github.com/AravDharnikota/Civora.AI/internal/model"
	"github.com/charmbracelet/lipgloss"
)

func renderArticle(a *model.Article, width, height, scroll int) string {
	if a == nil {
		return centerBlock("No article selected", width, height)
	}

	contentWidth := width - 6
	if contentWidth < 20 {
		contentWidth = 20
	}
	if contentWidth > 90 {
		contentWidth = 90
	}

	bookmark := toggleOffStyle.Render("☆")
	if a.Bookmarked {
		bookmark = toggleOnStyle.Render("★ saved")
	}

	title := articleTitleStyle.Width(contentWidth).Render(a.Title)
	meta := articleMetaStyle.Render(fmt.Sprintf(
		"%s · %d min read · %s · %s style",
		a.Category, a.ReadTimeMinutes, a.PublishedAt.Format("Jan 2, 2006"), a.Style,
	))
	badgeLine := biasBadge(a.BiasScore) + "  " + bookmark

	summary := articleBodyStyle.Italic(true).Width(contentWidth).Render(wrapText(a.Summary, contentWidth))
	body := articleBodyStyle.Width(contentWidth).Render(wrapText(a.Content, contentWidth))

	var sourceLines []string
	sourceLines = append(sourceLines, sectionTitleStyle.Render(fmt.Sprintf("Sources (%d)", len(a.Sources))))
	for _, s := range a.Sources {
		sourceLines = append(sourceLines,
			sourceNameStyle.Render(s.Name)+"  "+sourceBadge(s.BiasScore))
		sourceLines = append(sourceLines, sourceURLStyle.Render("  "+s.URL))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		meta,
		badgeLine,
		"",
		summary,
		"",
		body,
		"",
		strings.Join(sourceLines, "\n"),
	)

	// Indent and apply scroll offset
	lines := strings.Split(content, "\n")
	for i := range lines {
		lines[i] = "  " + lines[i]
	}
	if scroll > 0 {
		if scroll >= len(lines) {
			scroll = len(lines) - 1
		}
		lines = lines[scroll:]
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// maxArticleScroll bounds the scroll offset so the view can't run past the
// end of the rendered article.
func maxArticleScroll(a *model.Article, width, height int) int {
	if a == nil {
		return 0
	}
	full := renderArticle(a, width, height+1<<20, 0)
	n := strings.Count(full, "\n") + 1 - height
	if n < 0 {
		return 0
	}
	return n
}
