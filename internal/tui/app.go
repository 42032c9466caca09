package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/AravDharnikota/Civora.AI/internal/config"
	"github.com/AravDharnikota/Civora.AI/internal/dataset"
	"github.com/AravDharnikota/Civora.AI/internal/model"
	"github.com/AravDharnikota/Civora.AI/internal/share"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

type mode int

const (
	modeOnboarding mode = iota
	modeHome
	modeExplore
	modeProfile
	modeArticle
	modeHelp
)

const shareSheetTitle = "Civora"

type App struct {
	cfg    *config.Config
	logger *zap.Logger
	sharer share.Sharer

	articles   []model.Article
	categories []model.Category
	user       model.User
	trending   []dataset.Topic
	synth      []dataset.SynthCard

	width  int
	height int
	mode   mode

	currentDate string

	// Onboarding
	slide int

	// Home. Cursor and filter survive tab switches for the session.
	catBar     categoryBar
	homeCursor int
	refreshing bool
	spinner    spinner.Model

	// Explore. The filter selection is visual state only.
	exploreFilter int
	exploreCursor int

	// Profile
	profileCursor int

	// Article. current is a clone of the selected article; returnMode is
	// whichever tab pushed it.
	current       *model.Article
	returnMode    mode
	articleScroll int

	helpReturn mode
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Cfg      *config.Config
	Logger   *zap.Logger
	Provider dataset.Provider
	Sharer   share.Sharer
}

func NewApp(opts RunOpts) *App {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	user := opts.Provider.CurrentUser()
	if opts.Cfg.DefaultStyle != "" {
		user.Prefs.Style = opts.Cfg.Style()
	}

	categories := opts.Provider.Categories()
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}

	return &App{
		cfg:         opts.Cfg,
		logger:      opts.Logger,
		sharer:      opts.Sharer,
		articles:    opts.Provider.Articles(),
		categories:  categories,
		user:        user,
		trending:    opts.Provider.Trending(),
		synth:       opts.Provider.Synthesized(),
		catBar:      newCategoryBar(names),
		spinner:     sp,
		currentDate: time.Now().Format("Jan 2"),
		mode:        modeOnboarding,
		returnMode:  modeHome,
		helpReturn:  modeHome,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

// visibleArticles applies the Home category filter: exact name match, "All"
// (empty selection) shows everything in fixture order.
func (a *App) visibleArticles() []model.Article {
	return dataset.FilterByCategory(a.articles, a.catBar.selected())
}

// exploreCardCount is the fixed Explore card total; the filter tabs never
// change it.
func (a *App) exploreCardCount() int {
	return len(a.trending) + len(a.synth)
}

// completeOnboarding replaces the root with the tab container. No handler
// returns to modeOnboarding afterward, so back-navigation to it does not
// exist. Completion is not persisted; onboarding replays on every start.
func (a *App) completeOnboarding() {
	a.mode = modeHome
}

// refreshCmd simulates the pull-to-refresh gesture: a fixed delay, then
// done. Fire-and-forget, not cancelable, and no data changes since there is
// no backend to refetch from.
func (a *App) refreshCmd() tea.Cmd {
	return tea.Tick(a.cfg.RefreshDelayDuration(), func(time.Time) tea.Msg {
		return refreshDoneMsg{}
	})
}

// shareCmd invokes the platform share capability. This is the app's only
// fallible operation: failure is logged and otherwise discarded, with no
// user-visible error surface and no retry.
func (a *App) shareCmd(art model.Article) tea.Cmd {
	msg := share.Message(a.cfg.ShareTemplate, art.Title)
	s := a.sharer
	log := a.logger
	id := art.ID
	return func() tea.Msg {
		if err := s.Share(msg, shareSheetTitle); err != nil {
			log.Warn("share failed", zap.String("article", id), zap.Error(err))
		}
		return nil
	}
}

// openSourceCmd opens a source link in the OS browser.
func (a *App) openSourceCmd(src model.Source) tea.Cmd {
	log := a.logger
	return func() tea.Msg {
		if err := share.OpenURL(src.URL); err != nil {
			log.Warn("opening source failed", zap.String("source", src.Name), zap.Error(err))
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case refreshDoneMsg:
		a.refreshing = false
		return a, nil

	case spinner.TickMsg:
		if a.refreshing {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeOnboarding:
		return a.handleOnboardingKey(msg)
	case modeHome:
		return a.handleHomeKey(msg)
	case modeExplore:
		return a.handleExploreKey(msg)
	case modeProfile:
		return a.handleProfileKey(msg)
	case modeArticle:
		return a.handleArticleKey(msg)
	case modeHelp:
		switch msg.String() {
		case "?", "esc", "q":
			a.mode = a.helpReturn
		}
		return a, nil
	}
	return a, nil
}

// handleTabKey covers keys shared by the three peer tabs: switching,
// cycling, help, quit. Returns handled=false for everything else.
func (a *App) handleTabKey(msg tea.KeyMsg) (handled bool, m tea.Model, cmd tea.Cmd) {
	switch msg.String() {
	case "q":
		return true, a, tea.Quit
	case "1":
		a.mode = modeHome
		return true, a, nil
	case "2":
		a.mode = modeExplore
		return true, a, nil
	case "3":
		a.mode = modeProfile
		return true, a, nil
	case "tab":
		switch a.mode {
		case modeHome:
			a.mode = modeExplore
		case modeExplore:
			a.mode = modeProfile
		default:
			a.mode = modeHome
		}
		return true, a, nil
	case "?":
		a.helpReturn = a.mode
		a.mode = modeHelp
		return true, a, nil
	}
	return false, a, nil
}

func (a *App) handleOnboardingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "enter", "n", "right", "l":
		a.slide++
		if a.slide >= len(onboardingSlides) {
			a.completeOnboarding()
		}
		return a, nil
	case "s":
		// Skip performs the same terminal transition from any step.
		a.completeOnboarding()
		return a, nil
	}
	return a, nil
}

func (a *App) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, m, cmd := a.handleTabKey(msg); handled {
		return m, cmd
	}

	visible := a.visibleArticles()

	switch msg.String() {
	case "j", "down":
		if a.homeCursor < len(visible)-1 {
			a.homeCursor++
		}
		return a, nil
	case "k", "up":
		if a.homeCursor > 0 {
			a.homeCursor--
		}
		return a, nil
	case "h", "left":
		a.catBar.move(-1)
		a.homeCursor = 0
		return a, nil
	case "l", "right":
		a.catBar.move(1)
		a.homeCursor = 0
		return a, nil
	case "enter", "o":
		if len(visible) > 0 && a.homeCursor < len(visible) {
			a.openArticle(visible[a.homeCursor], modeHome)
		}
		return a, nil
	case "r":
		if !a.refreshing {
			a.refreshing = true
			return a, tea.Batch(a.refreshCmd(), a.spinner.Tick)
		}
		return a, nil
	}
	return a, nil
}

func (a *App) handleExploreKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, m, cmd := a.handleTabKey(msg); handled {
		return m, cmd
	}

	switch msg.String() {
	case "j", "down":
		if a.exploreCursor < a.exploreCardCount()-1 {
			a.exploreCursor++
		}
		return a, nil
	case "k", "up":
		if a.exploreCursor > 0 {
			a.exploreCursor--
		}
		return a, nil
	case "h", "left":
		if a.exploreFilter > 0 {
			a.exploreFilter--
		}
		return a, nil
	case "l", "right":
		if a.exploreFilter < len(exploreFilters)-1 {
			a.exploreFilter++
		}
		return a, nil
	}
	return a, nil
}

func (a *App) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, m, cmd := a.handleTabKey(msg); handled {
		return m, cmd
	}

	switch msg.String() {
	case "j", "down":
		if a.profileCursor < profileRowCount(a.categories)-1 {
			a.profileCursor++
		}
		return a, nil
	case "k", "up":
		if a.profileCursor > 0 {
			a.profileCursor--
		}
		return a, nil
	case "enter", " ":
		a.activateProfileRow()
		return a, nil
	}
	return a, nil
}

// activateProfileRow applies the selected edit to the in-memory user copy.
// Nothing is saved anywhere; edits vanish when the process exits.
func (a *App) activateProfileRow() {
	switch a.profileCursor {
	case 0:
		a.user.Prefs.Style = a.user.Prefs.Style.Next()
	case 1:
		a.user.Prefs.DarkMode = !a.user.Prefs.DarkMode
	case 2:
		a.user.Prefs.Notifications = !a.user.Prefs.Notifications
	default:
		idx := a.profileCursor - 3
		if idx >= 0 && idx < len(a.categories) {
			a.user.Prefs.Interests = toggleInterest(a.user.Prefs.Interests, a.categories[idx].Name)
		}
	}
}

// currentArticle returns the open article, falling back to the first
// fixture when the screen was entered without a selection.
func (a *App) currentArticle() *model.Article {
	if a.current == nil && len(a.articles) > 0 {
		clone := a.articles[0].Clone()
		a.current = &clone
	}
	return a.current
}

func (a *App) handleArticleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.currentArticle()
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc", "backspace":
		// Pop back to whichever tab pushed the article. The local bookmark
		// state goes with the clone.
		a.mode = a.returnMode
		a.current = nil
		a.articleScroll = 0
		return a, nil
	case "j", "down":
		if a.articleScroll < maxArticleScroll(a.current, a.width, a.contentHeight()) {
			a.articleScroll++
		}
		return a, nil
	case "k", "up":
		if a.articleScroll > 0 {
			a.articleScroll--
		}
		return a, nil
	case "b":
		if a.current != nil {
			a.current.Bookmarked = !a.current.Bookmarked
		}
		return a, nil
	case "s":
		if a.current != nil {
			return a, a.shareCmd(*a.current)
		}
		return a, nil
	case "o":
		if a.current != nil && len(a.current.Sources) > 0 {
			return a, a.openSourceCmd(a.current.Sources[0])
		}
		return a, nil
	}
	return a, nil
}

// openArticle pushes the article screen with a clone of the selection, so
// local toggles never reach the backing list.
func (a *App) openArticle(art model.Article, from mode) {
	clone := art.Clone()
	a.current = &clone
	a.returnMode = from
	a.articleScroll = 0
	a.mode = modeArticle
}

func (a *App) contentHeight() int {
	// header + tab bar + bottom bar
	h := a.height - 3
	if h < 3 {
		h = 3
	}
	return h
}

func (a *App) withBottomBar(content string, hints string) string {
	bar := renderBottomBar(hints, a.width)
	lines := strings.Split(content, "\n")
	for len(lines) < a.height-1 {
		lines = append(lines, "")
	}
	if len(lines) >= a.height {
		lines = lines[:a.height-1]
	}
	lines = append(lines, bar)
	return strings.Join(lines, "\n")
}

func (a *App) renderHeader() string {
	left := headerStyle.Render("civora")
	right := headerDateStyle.Render(a.currentDate)
	if a.refreshing {
		right = a.spinner.View() + " " + itemMetaStyle.Render("refreshing") + " " + right
	}
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + fmt.Sprintf("%*s", gap, "") + right
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  civora")
	}

	switch a.mode {
	case modeOnboarding:
		hints := "enter next  s skip  q quit"
		if a.slide == len(onboardingSlides)-1 {
			hints = "enter get started  s skip  q quit"
		}
		return a.withBottomBar(renderOnboarding(a.slide, a.width, a.height-1), hints)

	case modeHelp:
		return a.withBottomBar(a.renderHelp(), "? close  q quit")

	case modeArticle:
		content := lipgloss.JoinVertical(lipgloss.Left,
			a.renderHeader(),
			renderTabBar(a.returnMode, a.width),
			renderArticle(a.currentArticle(), a.width, a.contentHeight(), a.articleScroll),
		)
		return a.withBottomBar(content, "j/k scroll  b bookmark  s share  o open source  esc back  q quit")
	}

	// Tab container
	var body, hints string
	switch a.mode {
	case modeHome:
		visible := a.visibleArticles()
		listHeight := a.contentHeight() - 2 // category bar + spacer
		body = lipgloss.JoinVertical(lipgloss.Left,
			a.catBar.render(a.width),
			"",
			renderHomeList(visible, a.homeCursor, listHeight, a.width-2),
		)
		hints = "j/k move  ←/→ category  enter open  r refresh  tab switch  ? help  q quit"
	case modeExplore:
		body = renderExplore(a.trending, a.synth, a.exploreFilter, a.exploreCursor, a.width, a.contentHeight())
		hints = "j/k move  ←/→ filter  tab switch  ? help  q quit"
	case modeProfile:
		body = renderProfile(a.user, a.categories, a.profileCursor, a.width, a.contentHeight())
		hints = "j/k move  enter toggle  tab switch  ? help  q quit"
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(),
		renderTabBar(a.mode, a.width),
		body,
	)
	return a.withBottomBar(content, hints)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("civora")
	dim := helpDimStyle

	help := title + dim.Render(" — Keyboard Shortcuts") + "\n\n" +
		dim.Render("Tabs") + "\n" +
		"  1/2/3         Home, Explore, Profile\n" +
		"  tab           Cycle through tabs\n\n" +
		dim.Render("Home") + "\n" +
		"  j/k, ↑/↓     Move through articles\n" +
		"  ←/→, h/l     Change category filter\n" +
		"  enter, o      Open article\n" +
		"  r             Refresh\n\n" +
		dim.Render("Article") + "\n" +
		"  j/k           Scroll\n" +
		"  b             Toggle bookmark\n" +
		"  s             Share\n" +
		"  o             Open first source in browser\n" +
		"  esc           Back\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	card := helpCardStyle.Render(help)
	return lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, card)
}

func renderBottomBar(hints string, width int) string {
	right := " " + hints + " "
	gap := width - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return statusBarStyle.Width(width).Render(fmt.Sprintf("%*s", gap, "") + right)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
