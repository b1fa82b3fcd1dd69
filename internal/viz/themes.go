package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the terminal color scheme.
type Theme struct {
	Name   string
	Stars  lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Warn   lipgloss.Color
}

var (
	ThemeMinimal = Theme{
		Name:   "minimal",
		Stars:  lipgloss.Color("#ffffff"),
		Accent: lipgloss.Color("#0ea5e9"), // the cursor highlight blue
		Text:   lipgloss.Color("#cccccc"),
		Muted:  lipgloss.Color("#666666"),
		Warn:   lipgloss.Color("#ffaa00"),
	}

	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Stars:  lipgloss.Color("#00ffff"),
		Accent: lipgloss.Color("#ff00ff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
		Warn:   lipgloss.Color("#ffff00"),
	}

	ThemeRetro = Theme{
		Name:   "retro",
		Stars:  lipgloss.Color("#00ff00"), // green phosphor
		Accent: lipgloss.Color("#88ff88"),
		Text:   lipgloss.Color("#00cc00"),
		Muted:  lipgloss.Color("#005500"),
		Warn:   lipgloss.Color("#ffff00"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Stars:  lipgloss.Color("#e0f0ff"),
		Accent: lipgloss.Color("#ffd700"),
		Text:   lipgloss.Color("#00a8cc"),
		Muted:  lipgloss.Color("#4488aa"),
		Warn:   lipgloss.Color("#ffcc00"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Stars:  lipgloss.Color("#feca57"),
		Accent: lipgloss.Color("#ff9ff3"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Warn:   lipgloss.Color("#ffc048"),
	}

	Themes = []Theme{ThemeMinimal, ThemeCyberpunk, ThemeRetro, ThemeOcean, ThemeSunset}
)

// GetTheme returns the named theme, falling back to minimal.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMinimal
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

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
