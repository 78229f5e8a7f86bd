package viz

import "github.com/charmbracelet/lipgloss"

// Theme colours the plot chrome and the surrounding panels. Point colours
// come from the palette and are never themed.
type Theme struct {
	Name   string
	Title  lipgloss.Color
	Axis   lipgloss.Color
	Tick   lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Border lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:   "classic",
		Title:  lipgloss.Color("#ffffff"),
		Axis:   lipgloss.Color("#888888"),
		Tick:   lipgloss.Color("#aaaaaa"),
		Text:   lipgloss.Color("#e0e0e0"),
		Muted:  lipgloss.Color("#666666"),
		Accent: lipgloss.Color("#377eb8"),
		Border: lipgloss.Color("#444466"),
	}

	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Title:  lipgloss.Color("#ff00ff"), // Magenta
		Axis:   lipgloss.Color("#00ffff"), // Cyan
		Tick:   lipgloss.Color("#00cccc"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
		Accent: lipgloss.Color("#ffff00"),
		Border: lipgloss.Color("#ff00ff"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Title:  lipgloss.Color("#00ff00"), // Green phosphor
		Axis:   lipgloss.Color("#00cc00"),
		Tick:   lipgloss.Color("#00aa00"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Accent: lipgloss.Color("#88ff88"),
		Border: lipgloss.Color("#005500"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Title:  lipgloss.Color("#e0f0ff"),
		Axis:   lipgloss.Color("#0077be"), // Ocean blue
		Tick:   lipgloss.Color("#00a8cc"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Accent: lipgloss.Color("#ffd700"),
		Border: lipgloss.Color("#0077be"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Title:  lipgloss.Color("#ff6b6b"), // Coral
		Axis:   lipgloss.Color("#feca57"),
		Tick:   lipgloss.Color("#ffc048"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Accent: lipgloss.Color("#ff9ff3"),
		Border: lipgloss.Color("#8b6b8c"),
	}

	// Themes in cycling order. The first is the default.
	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

// NextTheme returns the theme after t in cycling order.
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
