package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/attmoc/attmoc/internal/analytics"
	"github.com/attmoc/attmoc/internal/content"
	"github.com/attmoc/attmoc/internal/sequencer"
)

const (
	counterSteps    = 20
	counterInterval = 75 * time.Millisecond
)

type counterMsg struct{}

// KeyMap defines the key bindings of the landing page.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Reset    key.Binding
	Theme    key.Binding
	Category key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "right", "l"),
		key.WithHelp("tab/→", "next section"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "left", "h"),
		key.WithHelp("shift+tab/←", "previous section"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restart terminal"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Category: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "blog category"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Reset, k.Theme, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Reset, k.Theme, k.Category},
		{k.Help, k.Quit},
	}
}

// App is the landing page: a navigation bar over one section at a time.
type App struct {
	terminal *Terminal
	tracker  *analytics.Tracker
	keys     KeyMap
	help     help.Model

	nav      []content.NavItem
	section  int
	theme    Theme
	category int
	counter  int

	// started is when Init ran; the first revealed character is
	// reported as a vital once.
	started  time.Time
	reported bool

	width, height int
}

// NewApp wraps term in the landing page. Page views go to tracker.
func NewApp(term *Terminal, features content.Features, tracker *analytics.Tracker) *App {
	if tracker == nil {
		tracker = analytics.Disabled()
	}
	return &App{
		terminal: term,
		tracker:  tracker,
		keys:     DefaultKeyMap,
		help:     help.New(),
		nav:      content.NavItems(features),
		theme:    term.theme,
		width:    80,
		height:   24,
	}
}

func counterTick() tea.Cmd {
	return tea.Tick(counterInterval, func(time.Time) tea.Msg { return counterMsg{} })
}

func (a *App) Init() tea.Cmd {
	a.tracker.TrackPageView("/")
	a.started = a.terminal.clk.Now()
	return tea.Batch(a.terminal.Init(), counterTick())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			a.terminal.Close()
			return a, tea.Quit
		case key.Matches(msg, a.keys.Next):
			a.move(1)
		case key.Matches(msg, a.keys.Prev):
			a.move(-1)
		case key.Matches(msg, a.keys.Reset):
			a.terminal.Restart()
			a.tracker.TrackEvent("terminal_reset", "engagement", "hero", -1)
		case key.Matches(msg, a.keys.Theme):
			a.theme = NextTheme(a.theme)
			a.terminal.SetTheme(a.theme)
			a.tracker.TrackEvent("theme_change", "engagement", a.theme.Name, -1)
		case key.Matches(msg, a.keys.Category):
			if a.Section().ID == "blog" {
				a.category = (a.category + 1) % len(content.Categories)
				a.tracker.TrackEvent("blog_filter", "engagement", content.Categories[a.category], -1)
			}
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
		}
		return a, nil

	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.terminal.SetSize(min(msg.Width-6, terminalWidth), min(msg.Height/2, terminalHeight))
		return a, nil

	case counterMsg:
		if a.counter < counterSteps {
			a.counter++
			if a.counter < counterSteps {
				return a, counterTick()
			}
		}
		return a, nil

	case frameMsg:
		a.reportFirstCharacter(sequencer.Transcript(msg))
	}

	return a, a.terminal.update(msg)
}

// reportFirstCharacter records the time from Init to the first visible
// character of the terminal as the TTFC vital.
func (a *App) reportFirstCharacter(t sequencer.Transcript) {
	if a.reported || a.started.IsZero() || t.Empty() {
		return
	}
	a.reported = true
	now := a.terminal.clk.Now()
	ms := float64(now.Sub(a.started)) / float64(time.Millisecond)
	a.tracker.ReportVital("TTFC", ms, fmt.Sprintf("v1-%d", a.started.UnixMilli()))
}

func (a *App) move(delta int) {
	n := len(a.nav)
	a.section = ((a.section+delta)%n + n) % n
	item := a.nav[a.section]
	path := "/#" + item.ID
	if item.Page {
		path = "/" + item.ID
	}
	if item.ID == "hero" {
		path = "/"
	}
	a.tracker.TrackPageView(path)
}

// Section returns the navigation entry on screen.
func (a *App) Section() content.NavItem { return a.nav[a.section] }

// Category returns the selected blog filter.
func (a *App) Category() string { return content.Categories[a.category] }

// Theme returns the active theme.
func (a *App) Theme() Theme { return a.theme }

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(a.navBar())
	b.WriteString("\n\n")

	switch a.Section().ID {
	case "hero":
		b.WriteString(a.heroView())
	case "services":
		b.WriteString(a.servicesView())
	case "portfolio":
		b.WriteString(a.portfolioView())
	case "about":
		b.WriteString(a.aboutView())
	case "contact":
		b.WriteString(a.contactView())
	case "faq":
		b.WriteString(a.pageView("FAQ", content.FAQIntro))
	case "careers":
		b.WriteString(a.pageView("Careers", content.CareersIntro))
	case "quote":
		b.WriteString(a.pageView("Get a Quote", content.QuoteIntro))
	case "blog":
		b.WriteString(a.blogView())
	}

	b.WriteString("\n\n")
	b.WriteString(a.help.View(a.keys))
	return b.String()
}

func (a *App) navBar() string {
	brand := GradientText(content.Agency, a.theme.Primary, a.theme.Accent)
	active := lipgloss.NewStyle().Bold(true).Foreground(a.theme.Primary).Underline(true)
	idle := lipgloss.NewStyle().Foreground(a.theme.Muted)

	items := make([]string, len(a.nav))
	for i, item := range a.nav {
		if i == a.section {
			items[i] = active.Render(item.Label)
		} else {
			items[i] = idle.Render(item.Label)
		}
	}
	return brand + "  " + strings.Join(items, "  ")
}

func (a *App) heroView() string {
	headline := lipgloss.NewStyle().Bold(true).Foreground(a.theme.Text).Render("We build digital products that perform")
	tagline := lipgloss.NewStyle().Foreground(a.theme.Secondary).Render(content.Tagline)
	left := lipgloss.JoinVertical(lipgloss.Left, headline, tagline, "", a.statsView())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", a.terminal.View())
}

func (a *App) statsView() string {
	progress := float64(a.counter) / counterSteps
	label := lipgloss.NewStyle().Foreground(a.theme.Muted)
	value := lipgloss.NewStyle().Bold(true).Foreground(a.theme.Primary)

	var lines []string
	for _, s := range content.Stats {
		n := s.Value * a.counter / counterSteps
		lines = append(lines, fmt.Sprintf("%s %s",
			value.Render(fmt.Sprintf("%4d%s", n, s.Suffix)),
			label.Render(s.Label)))
		lines = append(lines, ProgressBar(progress, 20, a.theme))
	}
	return strings.Join(lines, "\n")
}

func (a *App) servicesView() string {
	var cards []string
	for _, s := range content.Services {
		title := lipgloss.NewStyle().Bold(true).Foreground(a.theme.Accent).Render(s.Title)
		cards = append(cards, Panel(a.theme).Width(min(a.width-4, 72)).Render(title+"\n"+s.Description))
	}
	return Title(a.theme).Render("Our Services") + "\n" + strings.Join(cards, "\n")
}

func (a *App) portfolioView() string {
	var cards []string
	for _, p := range content.Portfolio {
		title := lipgloss.NewStyle().Bold(true).Foreground(a.theme.Secondary).Render(p.Title)
		cards = append(cards, Panel(a.theme).Width(min(a.width-4, 72)).Render(title+"\n"+p.Description))
	}
	return Title(a.theme).Render("Portfolio") + "\n" + strings.Join(cards, "\n")
}

func (a *App) aboutView() string {
	var facts []string
	for _, f := range content.AboutFacts {
		facts = append(facts, Panel(a.theme).Render(
			lipgloss.NewStyle().Bold(true).Foreground(a.theme.Primary).Render(f.Value)+"\n"+Subtle.Render(f.Label)))
	}
	var tech []string
	for _, t := range content.TechStack {
		tech = append(tech, t.Icon+" "+t.Name)
	}
	text := lipgloss.NewStyle().Width(min(a.width-4, 72)).Render(content.About)
	return Title(a.theme).Render("About Us") + "\n" + text + "\n\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, facts...) + "\n\n" +
		Title(a.theme).Render("Tech Stack") + "\n" + strings.Join(tech, "  ·  ")
}

func (a *App) contactView() string {
	fields := []string{"Name *", "Email *", "Phone (optional)", "Subject *", "Message *"}
	var rows []string
	for _, f := range fields {
		rows = append(rows, Subtle.Render("• ")+f)
	}
	return Title(a.theme).Render("Contact Us") + "\n" + strings.Join(rows, "\n") + "\n\n" +
		KeyHint.Render("submit with: attmoc contact --name … --email … --subject … --message …")
}

func (a *App) pageView(title, text string) string {
	return Title(a.theme).Render(title) + "\n" + lipgloss.NewStyle().Width(min(a.width-4, 72)).Render(text)
}

func (a *App) blogView() string {
	var tabs []string
	for i, c := range content.Categories {
		if i == a.category {
			tabs = append(tabs, lipgloss.NewStyle().Bold(true).Foreground(a.theme.Primary).Render("["+c+"]"))
		} else {
			tabs = append(tabs, Subtle.Render(c))
		}
	}

	var b strings.Builder
	b.WriteString(Title(a.theme).Render("Blog"))
	b.WriteString("\n")
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n")
	b.WriteString(Separator(min(a.width-4, 72)))
	b.WriteString("\n")

	posts := content.FilterPosts(a.Category())
	if len(posts) == 0 {
		b.WriteString(Subtle.Render("No posts in this category yet."))
		return b.String()
	}
	for _, p := range posts {
		title := lipgloss.NewStyle().Bold(true).Foreground(a.theme.Text).Render(p.Title)
		meta := Subtle.Render(fmt.Sprintf("%s · %s · %s", p.Author, p.Date, p.ReadTime))
		b.WriteString(title + "\n" + meta + "\n" + p.Excerpt + "\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
