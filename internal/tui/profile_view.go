package tui

import (
	"fmt"
	"strings"

	"github.com/AravDharnikota/Civora.AI/internal/model"
)

// profileRowCount is the number of selectable rows: writing style, dark
// mode, notifications, then one row per category interest.
func profileRowCount(categories []model.Category) int {
	return 3 + len(categories)
}

func hasInterest(interests []string, name string) bool {
	for _, i := range interests {
		if i == name {
			return true
		}
	}
	return false
}

// toggleInterest adds or removes name, preserving the order of the rest.
func toggleInterest(interests []string, name string) []string {
	for i, v := range interests {
		if v == name {
			return append(append([]string(nil), interests[:i]...), interests[i+1:]...)
		}
	}
	return append(append([]string(nil), interests...), name)
}

func renderToggle(on bool) string {
	if on {
		return toggleOnStyle.Render("[on] ")
	}
	return toggleOffStyle.Render("[off]")
}

func renderProfile(user model.User, categories []model.Category, cursor, width, height int) string {
	var lines []string

	lines = append(lines, " "+sectionTitleStyle.Render(user.Name))
	lines = append(lines, " "+itemMetaStyle.Render(user.Email))
	lines = append(lines, "")
	lines = append(lines, " "+itemMetaStyle.Render("Edits live in memory for this session only."))
	lines = append(lines, "")

	row := func(idx int, label, value string) string {
		prefix := "  "
		style := itemTitleStyle
		if idx == cursor {
			prefix = "> "
			style = itemSelectedStyle
		}
		return " " + style.Render(prefix+label) + "  " + value
	}

	lines = append(lines, " "+sectionTitleStyle.Render("Preferences"))
	lines = append(lines, row(0, "Writing style", itemCategoryStyle.Render(string(user.Prefs.Style))))
	lines = append(lines, row(1, "Dark mode", renderToggle(user.Prefs.DarkMode)))
	lines = append(lines, row(2, "Notifications", renderToggle(user.Prefs.Notifications)))
	lines = append(lines, "")

	lines = append(lines, " "+sectionTitleStyle.Render("Interests"))
	for i, cat := range categories {
		mark := toggleOffStyle.Render("○")
		if hasInterest(user.Prefs.Interests, cat.Name) {
			mark = toggleOnStyle.Render("●")
		}
		lines = append(lines, row(3+i, fmt.Sprintf("%s %s", mark, cat.Name), ""))
	}

	content := strings.Join(lines, "\n")
	all := strings.Split(content, "\n")
	if len(all) > height {
		all = all[:height]
	}
	return strings.Join(all, "\n")
}
