// Package dataset supplies the article, category, and user collections the
// views render. The Provider interface exists so tests can substitute
// fixtures without touching view logic; Static is the only implementation
// shipped, as there is no content backend.
package dataset

import (
	"github.com/AravDharnikota/Civora.AI/internal/bias"
	"github.com/AravDharnikota/Civora.AI/internal/model"
)

// Provider supplies the collections backing each screen.
type Provider interface {
	Articles() []model.Article
	Categories() []model.Category
	CurrentUser() model.User
	Trending() []Topic
	Synthesized() []SynthCard
}

// Topic is a trending-topic card on the Explore screen.
type Topic struct {
	Title    string
	Tag      string
	Mentions int
}

// SynthCard is an "AI generated" digest card on the Explore screen.
type SynthCard struct {
	Title       string
	Summary     string
	SourceCount int
	BiasScore   float64
}

// FilterByCategory returns the articles whose category exactly equals name,
// order preserved. An empty name means no filter and returns the input
// unchanged. Matching is case-sensitive.
func FilterByCategory(articles []model.Article, name string) []model.Article {
	if name == "" {
		return articles
	}
	var out []model.Article
	for _, a := range articles {
		if a.Category == name {
			out = append(out, a)
		}
	}
	return out
}

// Static serves fixed in-memory fixtures. Bias scores are clamped to [0,1]
// at construction; accessors return clones so callers can mutate their
// copies freely.
type Static struct {
	articles   []model.Article
	categories []model.Category
	user       model.User
	trending   []Topic
	synth      []SynthCard
}

// NewStatic builds the provider from the fixture literals.
func NewStatic() *Static {
	s := &Static{
		articles:   fixtureArticles(),
		categories: fixtureCategories(),
		user:       fixtureUser(),
		trending:   fixtureTrending(),
		synth:      fixtureSynth(),
	}
	s.normalize()
	return s
}

func (s *Static) normalize() {
	for i := range s.articles {
		s.articles[i].BiasScore = bias.Clamp(s.articles[i].BiasScore)
		for j := range s.articles[i].Sources {
			s.articles[i].Sources[j].BiasScore = bias.Clamp(s.articles[i].Sources[j].BiasScore)
		}
	}
	for i := range s.synth {
		s.synth[i].BiasScore = bias.Clamp(s.synth[i].BiasScore)
	}
}

func (s *Static) Articles() []model.Article {
	out := make([]model.Article, len(s.articles))
	for i, a := range s.articles {
		out[i] = a.Clone()
	}
	return out
}

func (s *Static) Categories() []model.Category {
	return append([]model.Category(nil), s.categories...)
}

func (s *Static) CurrentUser() model.User {
	return s.user.Clone()
}

func (s *Static) Trending() []Topic {
	return append([]Topic(nil), s.trending...)
}

func (s *Static) Synthesized() []SynthCard {
	return append([]SynthCard(nil), s.synth...)
}
