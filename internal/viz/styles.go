package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Status colours are shared by every theme.
const (
	colorPlaying = lipgloss.Color("#4daf4a")
	colorPaused  = lipgloss.Color("#ff7f00")
	colorError   = lipgloss.Color("#e41a1c")
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// Styles are the sidebar styles of one theme.
type Styles struct {
	Panel   lipgloss.Style
	Header  lipgloss.Style
	Subtle  lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Playing lipgloss.Style
	Paused  lipgloss.Style
	Error   lipgloss.Style

	theme Theme
}

// Styles derives the sidebar styles from the theme.
func (t Theme) Styles() Styles {
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Title).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Border),
		Subtle:  lipgloss.NewStyle().Foreground(t.Muted),
		Label:   lipgloss.NewStyle().Foreground(t.Tick).Width(14),
		Value:   lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Playing: lipgloss.NewStyle().Foreground(colorPlaying).Bold(true),
		Paused:  lipgloss.NewStyle().Foreground(colorPaused).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(colorError),
		theme:   t,
	}
}

// Metric renders a label/value row.
func (s Styles) Metric(label, value string) string {
	return s.Label.Render(label) + s.Value.Render(value)
}

// Swatch renders a coloured legend entry.
func (s Styles) Swatch(color, label string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●") + " " + s.Value.UnsetBold().Render(label)
}

// Separator is a muted horizontal rule.
func (s Styles) Separator(width int) string {
	return s.Subtle.Render(strings.Repeat("─", max(width, 0)))
}

// Sparkline draws values as block characters, resampled to width. The upper
// third of the range uses the accent colour.
func (s Styles) Sparkline(values []float64, width int) string {
	if width < 1 {
		return ""
	}
	if len(values) == 0 {
		return s.Separator(width)
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	width = min(width, len(values))
	accent := lipgloss.NewStyle().Foreground(s.theme.Accent)
	plain := lipgloss.NewStyle().Foreground(s.theme.Tick)

	var b strings.Builder
	for i := 0; i < width; i++ {
		v := values[i*len(values)/width]
		norm := (v - lo) / span
		block := string(sparkBlocks[int(math.Round(norm*float64(len(sparkBlocks)-1)))])
		if norm > 2.0/3 {
			b.WriteString(accent.Render(block))
		} else {
			b.WriteString(plain.Render(block))
		}
	}
	return b.String()
}

// ParseHex parses "#rrggbb". Anything else is white.
func ParseHex(hex string) (r, g, b uint8) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return 255, 255, 255
	}
	return r, g, b
}
