package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const sidebarWidth = 40

func (m Model) sidebar() string {
	s := m.session
	ctrl := s.Controller
	st := m.theme.Styles()

	var b strings.Builder
	b.WriteString(st.Header.Render(strings.ToUpper(s.Doc.Title())) + "\n")

	status := st.Paused.Render("○ paused")
	if ctrl.Playing() {
		status = st.Playing.Render("● playing")
	}
	b.WriteString(fmt.Sprintf("%s  %s\n\n", status, st.Subtle.Render(m.theme.Name)))

	b.WriteString(st.Metric("Year", fmt.Sprintf("%d", ctrl.Slider.Value)) + "\n")
	if f, ok := s.Plot.Frame(); ok {
		sum := f.Summary()
		b.WriteString(st.Metric("Countries", fmt.Sprintf("%d", sum.Points)) + "\n")
		b.WriteString(st.Metric("Fertility", number(sum.MeanFertility)) + "\n")
		b.WriteString(st.Metric("Life exp.", number(sum.MeanLife)) + "\n")
		b.WriteString(st.Metric("Weighted", number(sum.WeightedLife)) + "\n")
		b.WriteString(st.Metric("Population", population(sum.TotalPopulation)) + "\n")
	} else {
		b.WriteString(st.Subtle.Render("no data for this year") + "\n")
	}
	b.WriteString(st.Label.Render("Growth") + st.Sparkline(m.populations(), sidebarWidth-18) + "\n")

	if chart := m.trend(); chart != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(m.theme.Accent).Render(chart) + "\n")
	}

	b.WriteString("\n" + st.Separator(sidebarWidth-4) + "\n")
	points := s.Overlay.Points
	for _, cat := range points.Colors().Categories() {
		b.WriteString(st.Swatch(points.Colors().Color(cat), cat) + "\n")
	}

	if err := ctrl.Err(); err != nil {
		b.WriteString("\n" + st.Error.Render(err.Error()) + "\n")
	}

	return st.Panel.Width(sidebarWidth).Render(b.String())
}

// populations returns the total population of every year up to the slider value.
func (m Model) populations() []float64 {
	year := m.session.Controller.Slider.Value
	var values []float64
	for _, sum := range m.session.Frames.Trend() {
		if sum.Key > year {
			break
		}
		values = append(values, float64(sum.TotalPopulation))
	}
	return values
}

// trend plots mean life expectancy for every year up to the slider value.
func (m Model) trend() string {
	year := m.session.Controller.Slider.Value
	var values []float64
	for _, sum := range m.session.Frames.Trend() {
		if sum.Key > year {
			break
		}
		if !math.IsNaN(sum.MeanLife) {
			values = append(values, sum.MeanLife)
		}
	}
	if len(values) < 2 {
		return ""
	}
	return asciigraph.Plot(values,
		asciigraph.Height(5),
		asciigraph.Width(sidebarWidth-12),
		asciigraph.Precision(0),
		asciigraph.Caption("mean life expectancy"))
}

func number(v float64) string {
	if math.IsNaN(v) {
		return "–"
	}
	return fmt.Sprintf("%.2f", v)
}

func population(p int64) string {
	switch {
	case p >= 1e9:
		return fmt.Sprintf("%.2fB", float64(p)/1e9)
	case p >= 1e6:
		return fmt.Sprintf("%.1fM", float64(p)/1e6)
	case p >= 1e3:
		return fmt.Sprintf("%.1fK", float64(p)/1e3)
	}
	return fmt.Sprintf("%d", p)
}
