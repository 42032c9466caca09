package tui

import (
	"fmt"
	"strings"

	"github.com/AravDharnikota/Civora.AI/internal/model"
)

func renderHomeItem(a model.Article, selected bool, width int) string {
	if width < 10 {
		width = 30
	}

	var title string
	if selected {
		title = itemSelectedStyle.Render("> " + truncateStr(a.Title, width-4))
	} else {
		title = itemTitleStyle.Render("  " + truncateStr(a.Title, width-4))
	}

	meta := "  " +
		itemCategoryStyle.Render(a.Category) + " " +
		itemMetaStyle.Render(fmt.Sprintf("· %d min · %s · ", a.ReadTimeMinutes, relativeTime(a.PublishedAt))) +
		biasBadge(a.BiasScore)

	return title + "\n" + meta
}

func renderHomeList(articles []model.Article, cursor, height, width int) string {
	if len(articles) == 0 {
		return centerBlock("No articles in this category", width, height)
	}

	// Each item is 2 lines + 1 blank line
	itemHeight := 3
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(articles) {
		end = len(articles)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderHomeItem(articles[i], i == cursor, width))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}
