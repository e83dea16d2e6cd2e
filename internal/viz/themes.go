package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/attmoc/attmoc/internal/script"
)

// Theme defines the color scheme for the TUI and the terminal lines.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color

	Command      lipgloss.Color
	Status       lipgloss.Color
	Sparkle      lipgloss.Color
	Announcement lipgloss.Color
	Plain        lipgloss.Color
}

// Available themes
var (
	ThemeEmerald = Theme{
		Name:         "emerald",
		Primary:      lipgloss.Color("#10b981"),
		Secondary:    lipgloss.Color("#14b8a6"),
		Accent:       lipgloss.Color("#34d399"),
		Text:         lipgloss.Color("#f9fafb"),
		Muted:        lipgloss.Color("#6b7280"),
		Border:       lipgloss.Color("#374151"),
		Command:      lipgloss.Color("#4ade80"),
		Status:       lipgloss.Color("#60a5fa"),
		Sparkle:      lipgloss.Color("#c084fc"),
		Announcement: lipgloss.Color("#22d3ee"),
		Plain:        lipgloss.Color("#9ca3af"),
	}

	ThemeCyberpunk = Theme{
		Name:         "cyberpunk",
		Primary:      lipgloss.Color("#ff00ff"), // Magenta
		Secondary:    lipgloss.Color("#00ffff"), // Cyan
		Accent:       lipgloss.Color("#ffff00"), // Yellow
		Text:         lipgloss.Color("#ffffff"),
		Muted:        lipgloss.Color("#666666"),
		Border:       lipgloss.Color("#444466"),
		Command:      lipgloss.Color("#00ff88"),
		Status:       lipgloss.Color("#00ccff"),
		Sparkle:      lipgloss.Color("#ff00ff"),
		Announcement: lipgloss.Color("#ffff00"),
		Plain:        lipgloss.Color("#888899"),
	}

	ThemeRetroGreen = Theme{
		Name:         "retro",
		Primary:      lipgloss.Color("#00ff00"), // Green phosphor
		Secondary:    lipgloss.Color("#00cc00"),
		Accent:       lipgloss.Color("#88ff88"),
		Text:         lipgloss.Color("#00ff00"),
		Muted:        lipgloss.Color("#005500"),
		Border:       lipgloss.Color("#005500"),
		Command:      lipgloss.Color("#00ff00"),
		Status:       lipgloss.Color("#88ff88"),
		Sparkle:      lipgloss.Color("#ccffcc"),
		Announcement: lipgloss.Color("#00cc00"),
		Plain:        lipgloss.Color("#008800"),
	}

	ThemeOcean = Theme{
		Name:         "ocean",
		Primary:      lipgloss.Color("#0077be"), // Ocean blue
		Secondary:    lipgloss.Color("#00a8cc"),
		Accent:       lipgloss.Color("#ffd700"),
		Text:         lipgloss.Color("#e0f0ff"),
		Muted:        lipgloss.Color("#4488aa"),
		Border:       lipgloss.Color("#1e3a5f"),
		Command:      lipgloss.Color("#00ff88"),
		Status:       lipgloss.Color("#00a8cc"),
		Sparkle:      lipgloss.Color("#ffd700"),
		Announcement: lipgloss.Color("#7dd3fc"),
		Plain:        lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:         "sunset",
		Primary:      lipgloss.Color("#ff6b6b"), // Coral
		Secondary:    lipgloss.Color("#feca57"),
		Accent:       lipgloss.Color("#ff9ff3"),
		Text:         lipgloss.Color("#fff5f5"),
		Muted:        lipgloss.Color("#8b6b8c"),
		Border:       lipgloss.Color("#4a2d4b"),
		Command:      lipgloss.Color("#5fd068"),
		Status:       lipgloss.Color("#feca57"),
		Sparkle:      lipgloss.Color("#ff9ff3"),
		Announcement: lipgloss.Color("#ff6b6b"),
		Plain:        lipgloss.Color("#8b6b8c"),
	}

	// All available themes
	Themes = []Theme{
		ThemeEmerald,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to emerald.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeEmerald
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// LineColor returns the color for a script line.
func (t Theme) LineColor(line string) lipgloss.Color {
	if script.Sparkle(line) {
		return t.Sparkle
	}
	switch script.Classify(line) {
	case script.Command:
		return t.Command
	case script.Status:
		return t.Status
	case script.Announcement:
		return t.Announcement
	}
	return t.Plain
}

// LineStyle returns the style for a script line. Announcements are bold.
func (t Theme) LineStyle(line string) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(t.LineColor(line))
	if script.Classify(line) == script.Announcement {
		s = s.Bold(true)
	}
	return s
}
