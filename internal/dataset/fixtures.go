package dataset

import (
	"time"

	"github.com/AravDharnikota/Civora.AI/internal/model"
)

func fixtureArticles() []model.Article {
	return []model.Article{
		{
			ID:       "art-001",
			Title:    "Senate Passes Sweeping Infrastructure Package After Marathon Session",
			Category: "Politics",
			Summary:  "The $1.2T package cleared the Senate 68-32, with spending split across transit, broadband, and grid modernization.",
			Content: "After a marathon overnight session, the Senate passed the largest infrastructure " +
				"package in a decade by a 68-32 margin. The bill directs roughly a third of its funding " +
				"to public transit and rail, another third to broadband expansion in rural counties, and " +
				"the remainder to grid modernization and water systems.\n\n" +
				"Supporters framed the vote as proof that bipartisan dealmaking is still possible, while " +
				"critics on both flanks argued the package either overspends or does not go far enough. " +
				"State transportation departments are expected to begin submitting project proposals " +
				"within ninety days of the bill being signed.\n\n" +
				"Civora synthesized this report from coverage across the political spectrum. Source-level " +
				"bias scores are listed below the article.",
			BiasScore: 0.22,
			Sources: []model.Source{
				{Name: "National Wire", BiasScore: 0.21, URL: "https://nationalwire.example/senate-infrastructure"},
				{Name: "Capitol Dispatch", BiasScore: 0.24, URL: "https://capitoldispatch.example/infra-vote"},
				{Name: "The Ledger", BiasScore: 0.18, URL: "https://ledger.example/infrastructure-analysis"},
			},
			PublishedAt:     time.Date(2025, 11, 18, 7, 30, 0, 0, time.UTC),
			ReadTimeMinutes: 6,
			Style:           model.StyleBalanced,
		},
		{
			ID:       "art-002",
			Title:    "Breakthrough Battery Chemistry Doubles EV Range in Independent Trials",
			Category: "Technology",
			Summary:  "A silicon-anode cell design survived 1,200 charge cycles in third-party testing while holding twice the energy density of current packs.",
			Content: "An independent lab has confirmed that a new silicon-anode battery chemistry retains " +
				"92% of its capacity after 1,200 charge cycles, roughly double the energy density of the " +
				"lithium-ion packs shipping in today's electric vehicles.\n\n" +
				"The cells were tested under an automotive drive-cycle profile rather than the gentler " +
				"bench conditions manufacturers usually cite, which analysts say makes the results " +
				"unusually credible. Two automakers have licensed the design for pilot production lines " +
				"scheduled for late next year.\n\n" +
				"Both sources covering this story sit well inside the low-bias band, and their accounts " +
				"agree on every material claim.",
			BiasScore: 0.08,
			Sources: []model.Source{
				{Name: "Tech Current", BiasScore: 0.06, URL: "https://techcurrent.example/silicon-anode-trials"},
				{Name: "Drive Report", BiasScore: 0.09, URL: "https://drivereport.example/ev-battery-breakthrough"},
			},
			PublishedAt:     time.Date(2025, 11, 18, 5, 10, 0, 0, time.UTC),
			ReadTimeMinutes: 4,
			Style:           model.StyleConcise,
		},
		{
			ID:       "art-003",
			Title:    "Coastal Cities Accelerate Seawall Spending as Insurance Markets Retreat",
			Category: "Climate",
			Summary:  "Four major metros approved seawall bonds this quarter after two national insurers stopped writing new coastal policies.",
			Content: "Four of the ten largest coastal metros approved seawall and drainage bonds this " +
				"quarter, a sharp acceleration that city officials attribute less to storm forecasts than " +
				"to the retreat of private insurance. Two national carriers stopped writing new policies " +
				"in high-surge zones this year, and reinsurance costs have tripled since 2020.\n\n" +
				"Economists note the bonds shift climate adaptation costs onto municipal balance sheets, " +
				"raising equity questions about which neighborhoods get protected first. Coverage of the " +
				"story varies noticeably by outlet: business press emphasizes the insurance mechanics, " +
				"while regional papers lead with the neighborhood-level protection gaps.",
			BiasScore: 0.14,
			Sources: []model.Source{
				{Name: "Coastal Business Journal", BiasScore: 0.11, URL: "https://cbj.example/seawall-bonds"},
				{Name: "Metro Observer", BiasScore: 0.16, URL: "https://metroobserver.example/insurance-retreat"},
				{Name: "Harbor Times", BiasScore: 0.13, URL: "https://harbortimes.example/adaptation-equity"},
			},
			PublishedAt:     time.Date(2025, 11, 17, 21, 45, 0, 0, time.UTC),
			ReadTimeMinutes: 7,
			Style:           model.StyleDetailed,
		},
	}
}

func fixtureCategories() []model.Category {
	return []model.Category{
		{ID: "cat-politics", Name: "Politics", Icon: "landmark", Color: "#7571F9"},
		{ID: "cat-technology", Name: "Technology", Icon: "cpu", Color: "#00B8D9"},
		{ID: "cat-climate", Name: "Climate", Icon: "leaf", Color: "#25D366"},
		{ID: "cat-economy", Name: "Economy", Icon: "trending-up", Color: "#F5A623"},
		{ID: "cat-health", Name: "Health", Icon: "heart-pulse", Color: "#F25D94"},
	}
}

func fixtureUser() model.User {
	return model.User{
		ID:        "usr-001",
		Name:      "Alex Rivera",
		Email:     "alex.rivera@example.com",
		Interests: []string{"Politics", "Technology", "Climate"},
		Style:     model.StyleBalanced,
		Prefs: model.UserPreferences{
			DarkMode:      true,
			Notifications: false,
			Style:         model.StyleBalanced,
			Interests:     []string{"Politics", "Technology", "Climate"},
		},
	}
}

func fixtureTrending() []Topic {
	return []Topic{
		{Title: "Infrastructure bill fallout", Tag: "Politics", Mentions: 148},
		{Title: "Silicon-anode batteries", Tag: "Technology", Mentions: 112},
		{Title: "Coastal insurance retreat", Tag: "Climate", Mentions: 87},
		{Title: "Central bank rate path", Tag: "Economy", Mentions: 64},
	}
}

func fixtureSynth() []SynthCard {
	return []SynthCard{
		{
			Title:       "This week in infrastructure, from 9 outlets",
			Summary:     "A cross-spectrum digest of the Senate package: what every outlet agrees on, and where the framing splits.",
			SourceCount: 9,
			BiasScore:   0.07,
		},
		{
			Title:       "The EV battery story without the hype",
			Summary:     "Claims ranked by how many independent sources confirm them. Two survived; four did not.",
			SourceCount: 6,
			BiasScore:   0.05,
		},
		{
			Title:       "Who pays for the seawalls?",
			Summary:     "A synthesis of municipal finance coverage on coastal adaptation, weighted toward primary documents.",
			SourceCount: 7,
			BiasScore:   0.11,
		},
	}
}
