package export

import (
	"errors"
	"io"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/san-kum/gapminder/internal/render"
	"github.com/san-kum/gapminder/internal/style"
)

// ErrNoPoints indicates a frame with nothing to draw.
var ErrNoPoints = errors.New("export: frame has no drawable points")

func hexColor(hex string, alpha float64) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(style.Hex(hex), "#")).WithAlpha(uint8(alpha * 255))
}

// PlotToPNG renders the plot's current frame as a scatter chart.
func PlotToPNG(w io.Writer, plot *render.PlotState) error {
	markers := plot.Markers()
	if len(markers) == 0 {
		return ErrNoPoints
	}
	opts := plot.Overlay.Points.Plot
	st := plot.Overlay.Points.Style
	kd := plot.Overlay.Points.Frames.KDims

	xs := make([]float64, len(markers))
	ys := make([]float64, len(markers))
	for i, m := range markers {
		xs[i], ys[i] = m.X, m.Y
	}

	series := chart.ContinuousSeries{
		Name:    plot.Title,
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidthProvider: func(_, _ chart.Range, index int, _, _ float64) float64 {
				return markerRadius(markers[index])
			},
			DotColorProvider: func(_, _ chart.Range, index int, _, _ float64) drawing.Color {
				return hexColor(markers[index].Color, st.Alpha)
			},
		},
	}

	ch := chart.Chart{
		Title:      plot.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: marginTop, Left: 16, Right: marginRight, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  kd[0].Label,
			Range: &chart.ContinuousRange{Min: plot.XRange.Min, Max: plot.XRange.Max},
		},
		YAxis: chart.YAxis{
			Name:  kd[1].Label,
			Range: &chart.ContinuousRange{Min: plot.YRange.Min, Max: plot.YRange.Max},
		},
		Series: []chart.Series{series},
	}
	if plot.Label() != "" {
		ch.Elements = []chart.Renderable{yearLabel(plot)}
	}
	return ch.Render(chart.PNG, w)
}

// yearLabel draws the frame's annotation inside the plot area.
func yearLabel(plot *render.PlotState) chart.Renderable {
	return func(r chart.Renderer, box chart.Box, defaults chart.Style) {
		txt, ok := plot.Overlay.Text.Layer.Get(plot.Key())
		if !ok {
			return
		}
		ts := plot.Overlay.Text.Style
		x, y := plot.Project(txt.X, txt.Y, float64(box.Width()), float64(box.Height()))

		defaults.WriteTextOptionsToRenderer(r)
		r.SetFontSize(float64(max(ts.Points(), txt.FontSize)))
		r.SetFontColor(hexColor(ts.Color, 0.7))
		r.Text(txt.Body, box.Left+int(x), box.Top+int(y))
	}
}
