// Package render turns a styled overlay into a drawable plot and mounts it,
// with its widgets, as the document root.
package render

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/gapminder/internal/dataset"
	"github.com/san-kum/gapminder/internal/document"
	"github.com/san-kum/gapminder/internal/frames"
	"github.com/san-kum/gapminder/internal/style"
	"github.com/san-kum/gapminder/internal/viz"
)

// ErrEmptyOverlay indicates an overlay whose collection has no frames.
var ErrEmptyOverlay = errors.New("render: overlay has no frames")

const (
	gutter    = 8 // y tick label column plus axis
	headerH   = 2 // title and y axis label
	minCols   = 10
	minRows   = 4
	cellPxW   = 10 // plot pixels per canvas column
	cellPxH   = 25 // plot pixels per canvas row
	radiusDiv = 10 // largest marker radius is canvas pixel height / radiusDiv
)

// Marker is one drawn point.
type Marker struct {
	X, Y  float64 // data coordinates
	Size  float64 // marker size before normalisation
	Rel   float64 // size relative to the largest marker in the collection
	Color string
	Obs   dataset.Observation

	px, py, r float64 // canvas sub-pixels
}

// PlotState is the rendered overlay for the current key.
type PlotState struct {
	Overlay *style.Overlay
	Title   string
	XRange  dataset.Range
	YRange  dataset.Range

	canvas  *viz.Canvas
	theme   viz.Theme
	key     int
	visible bool
	label   string
	markers []Marker
}

// GetPlot builds the plot for the overlay's first frame and records its
// title on the document.
func GetPlot(o *style.Overlay, doc *document.Document) (*PlotState, error) {
	c := o.Points.Frames
	if c.Len() == 0 {
		return nil, ErrEmptyOverlay
	}
	opts := o.Points.Plot
	cols := max(opts.Width/cellPxW, minCols)
	rows := max(opts.Height/cellPxH, minRows)

	p := &PlotState{
		Overlay: o,
		Title:   o.Title(),
		XRange:  axisRange(c, 0),
		YRange:  axisRange(c, 1),
		canvas:  viz.NewCanvas(cols, rows),
		theme:   viz.Themes[0],
	}
	doc.SetTitle(p.Title)
	if err := p.Update(c.Keys()[0]); err != nil {
		return nil, err
	}
	return p, nil
}

// axisRange uses the dimension's declared range, else the data extent.
func axisRange(c *frames.Collection, axis int) dataset.Range {
	if r := c.KDims[axis].Range; r != nil {
		return *r
	}
	var values []float64
	c.Each(func(f *frames.Frame) {
		for _, pt := range f.Points {
			v := pt.X
			if axis == 1 {
				v = pt.Y
			}
			if !math.IsNaN(v) {
				values = append(values, v)
			}
		}
	})
	if len(values) == 0 {
		return dataset.Range{Min: 0, Max: 1}
	}
	return dataset.Range{Min: floats.Min(values), Max: floats.Max(values)}
}

// Update redraws the plot for key. A key without a frame leaves the plot
// empty and not visible.
func (p *PlotState) Update(key int) error {
	p.key = key
	p.canvas.Clear()
	p.markers = p.markers[:0]
	p.label = ""

	f, ok := p.Overlay.Points.Frames.Get(key)
	p.visible = ok
	if !ok {
		return nil
	}

	if p.Overlay.Text != nil {
		if txt, ok := p.Overlay.Text.Layer.Get(key); ok {
			p.drawText(txt)
		}
	}

	pw, ph := p.canvas.PixelSize()
	maxR := float64(ph) / radiusDiv
	points := p.Overlay.Points
	for _, pt := range f.Points {
		if math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
			continue
		}
		m := Marker{
			X:     pt.X,
			Y:     pt.Y,
			Size:  points.MarkerSize(pt.Obs),
			Rel:   points.RelativeSize(pt.Obs),
			Color: points.Color(pt.Obs),
			Obs:   pt.Obs,
		}
		m.px, m.py = p.Project(pt.X, pt.Y, float64(pw-1), float64(ph-1))
		m.r = math.Max(m.Rel*maxR, 0.5)
		p.canvas.FillCircle(m.px, m.py, m.r, m.Color)
		p.markers = append(p.markers, m)
	}
	return nil
}

func (p *PlotState) drawText(txt frames.Text) {
	scale := p.Overlay.Text.Style.Points() / 13
	if scale < 1 {
		scale = max(txt.FontSize/10, 1)
	}
	pw, ph := p.canvas.PixelSize()
	x, y := p.Project(txt.X, txt.Y, float64(pw-1), float64(ph-1))
	_, h := viz.TextSize(txt.Body, scale)
	p.canvas.DrawText(int(math.Round(x)), int(math.Round(y))-h, txt.Body, scale, style.Hex(p.Overlay.Text.Style.Color))
	p.label = txt.Body
}

// Project maps data coordinates onto a w x h surface with y pointing down.
func (p *PlotState) Project(x, y, w, h float64) (float64, float64) {
	px := (x - p.XRange.Min) / p.XRange.Span() * w
	py := (1 - (y-p.YRange.Min)/p.YRange.Span()) * h
	return px, py
}

// Key returns the key last passed to Update.
func (p *PlotState) Key() int {
	return p.key
}

// Frame returns the frame shown, if any.
func (p *PlotState) Frame() (*frames.Frame, bool) {
	return p.Overlay.Points.Frames.Get(p.key)
}

// Visible reports whether the current key has a frame.
func (p *PlotState) Visible() bool {
	return p.visible
}

// Label returns the annotation drawn for the current key.
func (p *PlotState) Label() string {
	return p.label
}

// Markers returns the drawn markers in drawing order.
func (p *PlotState) Markers() []Marker {
	out := make([]Marker, len(p.markers))
	copy(out, p.markers)
	return out
}

// Canvas returns the plot canvas.
func (p *PlotState) Canvas() *viz.Canvas {
	return p.canvas
}

// SetTheme changes the chrome colours.
func (p *PlotState) SetTheme(t viz.Theme) {
	p.theme = t
}

// Theme returns the chrome colours.
func (p *PlotState) Theme() viz.Theme {
	return p.theme
}

// CanvasOrigin is the cell offset of the canvas inside Render's output.
func (p *PlotState) CanvasOrigin() (col, row int) {
	return gutter, headerH
}

// Render draws the title, the axes and the canvas.
func (p *PlotState) Render() string {
	th := p.theme
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(th.Title)
	axisStyle := lipgloss.NewStyle().Foreground(th.Axis)
	tickStyle := lipgloss.NewStyle().Foreground(th.Tick)
	mutedStyle := lipgloss.NewStyle().Foreground(th.Muted)

	cols, rows := p.canvas.Width, p.canvas.Height
	kd := p.Overlay.Points.Frames.KDims

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(gutter+cols, lipgloss.Center, titleStyle.Render(p.Title)))
	b.WriteByte('\n')
	b.WriteString(mutedStyle.Render("↑ " + kd[1].Label))
	b.WriteByte('\n')

	lines := strings.Split(strings.TrimSuffix(p.canvas.String(), "\n"), "\n")
	for i, line := range lines {
		left := strings.Repeat(" ", gutter-1) + axisStyle.Render("│")
		if i == 0 || i == rows-1 || i == rows/2 {
			v := p.YRange.Max - float64(i)/float64(rows-1)*(p.YRange.Max-p.YRange.Min)
			left = tickStyle.Render(fmt.Sprintf("%*s", gutter-2, tickLabel(v))) + " " + axisStyle.Render("┤")
		}
		b.WriteString(left + line + "\n")
	}
	b.WriteString(strings.Repeat(" ", gutter-1) + axisStyle.Render("└"+strings.Repeat("─", cols)) + "\n")

	ticks := []rune(strings.Repeat(" ", gutter+cols+6))
	for i := 0; i <= 4; i++ {
		v := p.XRange.Min + float64(i)/4*(p.XRange.Max-p.XRange.Min)
		label := tickLabel(v)
		at := gutter + i*(cols-1)/4 - len(label)/2
		for j, r := range label {
			if at+j >= 0 && at+j < len(ticks) {
				ticks[at+j] = r
			}
		}
	}
	b.WriteString(tickStyle.Render(strings.TrimRight(string(ticks), " ")) + "\n")
	b.WriteString(lipgloss.PlaceHorizontal(gutter+cols, lipgloss.Center, mutedStyle.Render(kd[0].Label+" →")))
	return b.String()
}

func tickLabel(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
