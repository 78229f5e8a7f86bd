package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/gapminder/internal/dataset"
)

// hoverSlack widens the hit area of small markers, in sub-pixels.
const hoverSlack = 1.5

// Field is one tooltip row.
type Field struct {
	Name, Value string
}

// Tooltip describes the hovered marker.
type Tooltip struct {
	Marker Marker
	Fields []Field
}

// Render draws the tooltip as a small box.
func (t Tooltip) Render() string {
	width := 0
	for _, f := range t.Fields {
		width = max(width, len([]rune(f.Name)))
	}
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#888899")).Width(width + 2)
	var lines []string
	for _, f := range t.Fields {
		lines = append(lines, nameStyle.Render(f.Name+":")+f.Value)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Marker.Color)).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// Hover returns the tooltip of the marker nearest the canvas cell (col, row).
// The topmost marker wins when several overlap. It reports false when the
// hover tool is disabled or nothing is under the cell.
func (p *PlotState) Hover(col, row int) (Tooltip, bool) {
	if !p.Overlay.Points.Plot.HasTool("hover") {
		return Tooltip{}, false
	}
	x0, y0 := float64(col*2), float64(row*4)
	x1, y1 := x0+1, y0+3

	best, bestD := -1, math.Inf(1)
	for i, m := range p.markers {
		dx := math.Max(0, math.Max(x0-m.px, m.px-x1))
		dy := math.Max(0, math.Max(y0-m.py, m.py-y1))
		d := math.Hypot(dx, dy)
		if d <= m.r+hoverSlack && d <= bestD {
			best, bestD = i, d
		}
	}
	if best < 0 {
		return Tooltip{}, false
	}
	return p.TooltipFor(p.markers[best]), true
}

// MarkerCell returns the canvas cell under a marker's centre.
func (p *PlotState) MarkerCell(m Marker) (col, row int) {
	return int(m.px) / 2, int(m.py) / 4
}

// TooltipFor lists the key and value dimensions of a marker.
func (p *PlotState) TooltipFor(m Marker) Tooltip {
	c := p.Overlay.Points.Frames
	dims := append([]dataset.Dimension{c.KDims[0], c.KDims[1]}, c.VDims...)
	t := Tooltip{Marker: m, Fields: make([]Field, 0, len(dims))}
	for _, d := range dims {
		t.Fields = append(t.Fields, Field{Name: d.Label, Value: m.Obs.Text(d.Column)})
	}
	return t
}
