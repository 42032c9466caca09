package model

import "time"

// WritingStyle is the user's preferred synthesis style. Exactly four values
// exist; anything else fails Valid.
type WritingStyle string

const (
	StyleConcise  WritingStyle = "concise"
	StyleBalanced WritingStyle = "balanced"
	StyleDetailed WritingStyle = "detailed"
	StyleAcademic WritingStyle = "academic"
)

// Styles returns all writing styles in canonical order.
func Styles() []WritingStyle {
	return []WritingStyle{StyleConcise, StyleBalanced, StyleDetailed, StyleAcademic}
}

func (s WritingStyle) Valid() bool {
	switch s {
	case StyleConcise, StyleBalanced, StyleDetailed, StyleAcademic:
		return true
	}
	return false
}

// Next cycles to the following style, wrapping after the last one. Used by
// the profile selector.
func (s WritingStyle) Next() WritingStyle {
	styles := Styles()
	for i, st := range styles {
		if st == s {
			return styles[(i+1)%len(styles)]
		}
	}
	return styles[0]
}

// Source is one origin feeding an article. Sources have no identity beyond
// their name and duplicates are kept as-is.
type Source struct {
	Name      string
	BiasScore float64
	URL       string
}

// Article is a single news item. An article exclusively owns its source
// list; nothing outside the owning Article shares the slice.
type Article struct {
	ID              string
	Title           string
	Summary         string
	Content         string
	Category        string
	BiasScore       float64
	Sources         []Source
	PublishedAt     time.Time
	ReadTimeMinutes int
	Bookmarked      bool
	Style           WritingStyle
}

// Clone returns a deep copy. Views operate on clones so local mutation
// (e.g. toggling Bookmarked) never reaches the dataset.
func (a Article) Clone() Article {
	out := a
	out.Sources = make([]Source, len(a.Sources))
	copy(out.Sources, a.Sources)
	return out
}

// UserPreferences is owned by exactly one User.
type UserPreferences struct {
	DarkMode      bool
	Notifications bool
	Style         WritingStyle
	Interests     []string
}

type User struct {
	ID        string
	Name      string
	Email     string
	Interests []string
	Style     WritingStyle
	Prefs     UserPreferences
}

func (u User) Clone() User {
	out := u
	out.Interests = append([]string(nil), u.Interests...)
	out.Prefs.Interests = append([]string(nil), u.Prefs.Interests...)
	return out
}

// Category is a browsable article grouping. Icon is a glyph name resolved by
// the rendering layer; Color is a hex token.
type Category struct {
	ID    string
	Name  string
	Icon  string
	Color string
}
