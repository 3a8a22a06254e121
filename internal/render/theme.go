package render

import "github.com/charmbracelet/lipgloss"

// Theme defines the palette for plots and the colors of CLI output.
type Theme struct {
	Name       string
	Palette    []lipgloss.Color
	Background lipgloss.Color
	Axis       lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Limit      lipgloss.Color
}

var (
	ThemeMatplotlib = Theme{
		Name: "matplotlib",
		Palette: []lipgloss.Color{
			"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
			"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
		},
		Background: lipgloss.Color("#ffffff"),
		Axis:       lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#000000"),
		Muted:      lipgloss.Color("#888888"),
		Limit:      lipgloss.Color("#d62728"),
	}

	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Palette:    []lipgloss.Color{"#ff00ff", "#00ffff", "#ffff00", "#00ff00"},
		Background: lipgloss.Color("#0a0a0a"),
		Axis:       lipgloss.Color("#666666"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Limit:      lipgloss.Color("#ff8800"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Palette:    []lipgloss.Color{"#00ff00", "#88ff88", "#00cc00"},
		Background: lipgloss.Color("#001100"),
		Axis:       lipgloss.Color("#005500"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Limit:      lipgloss.Color("#ffff00"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Palette:    []lipgloss.Color{"#0077be", "#00a8cc", "#ffd700", "#00ff88"},
		Background: lipgloss.Color("#001a33"),
		Axis:       lipgloss.Color("#4488aa"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Limit:      lipgloss.Color("#ff4444"),
	}

	Themes = []Theme{
		ThemeMatplotlib,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to matplotlib.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMatplotlib
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// StyleFor returns the palette entry for the n-th series. A theme without a
// palette borrows the matplotlib one.
func (t Theme) StyleFor(n int) Style {
	palette := t.Palette
	if len(palette) == 0 {
		palette = ThemeMatplotlib.Palette
	}
	return Style{Series: n, Color: palette[n%len(palette)]}
}

// Header styles a table header line.
func (t Theme) Header() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Text).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Muted)
}

// KindLabel styles a point classification for terminal output.
func (t Theme) KindLabel(limit bool) lipgloss.Style {
	if limit {
		return lipgloss.NewStyle().Bold(true).Foreground(t.Limit)
	}
	return lipgloss.NewStyle().Foreground(t.StyleFor(0).Color)
}

func (t Theme) Subtle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted).Italic(true)
}
