package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the live view.
type Theme struct {
	Name   string
	Mover  lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	// Wall and Escape tint the canvas briefly after the matching event.
	Wall   lipgloss.Color
	Escape lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Mover:  lipgloss.Color("#00ffff"),
		Accent: lipgloss.Color("#ff00ff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
		Wall:   lipgloss.Color("#ffff00"),
		Escape: lipgloss.Color("#ff0055"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Mover:  lipgloss.Color("#00ff00"),
		Accent: lipgloss.Color("#88ff88"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Wall:   lipgloss.Color("#ffff00"),
		Escape: lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Mover:  lipgloss.Color("#00a8cc"),
		Accent: lipgloss.Color("#ffd700"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Wall:   lipgloss.Color("#ffcc00"),
		Escape: lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Mover:  lipgloss.Color("#ff6b6b"),
		Accent: lipgloss.Color("#feca57"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Wall:   lipgloss.Color("#ffc048"),
		Escape: lipgloss.Color("#ff4757"),
	}

	CurrentTheme = ThemeCyberpunk

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to the first one.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// nextTheme cycles to the theme after the current one.
func nextTheme() {
	names := ThemeNames()
	for i, name := range names {
		if name == CurrentTheme.Name {
			SetTheme(names[(i+1)%len(names)])
			return
		}
	}
}
