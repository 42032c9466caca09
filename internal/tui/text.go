package tui

import (
	"fmt"
	"strings"
	"time"
)

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}

	var paragraphs []string
	for _, para := range strings.Split(s, "\n\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}
		var lines []string
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) > width {
				lines = append(lines, line)
				line = w
			} else {
				line += " " + w
			}
		}
		lines = append(lines, line)
		paragraphs = append(paragraphs, strings.Join(lines, "\n"))
	}
	return strings.Join(paragraphs, "\n\n")
}

func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	default:
		return t.Format("Jan 2")
	}
}

func centerBlock(s string, width, height int) string {
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", max(0, (width-len(s))/2)) + s
}
