package style

import (
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/gapminder/internal/dataset"
)

// PlotOptions control the plot surface and which dimensions drive size and colour.
type PlotOptions struct {
	Width       int
	Height      int
	Tools       []string
	SizeIndex   string
	ColorIndex  string
	SizeFn      func(float64) float64
	TitleFormat string
}

// DefaultPlotOptions returns the Gapminder chart options.
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{
		Width:       950,
		Height:      450,
		Tools:       []string{"hover"},
		SizeIndex:   dataset.ColPopulation,
		ColorIndex:  dataset.ColGroup,
		SizeFn:      math.Sqrt,
		TitleFormat: "{label}",
	}
}

// HasTool reports whether name is enabled.
func (o PlotOptions) HasTool(name string) bool {
	for _, t := range o.Tools {
		if t == name {
			return true
		}
	}
	return false
}

// PointStyle is the marker appearance.
type PointStyle struct {
	Cmap      string
	Size      float64
	LineColor string
	Alpha     float64
}

// DefaultPointStyle returns the Gapminder marker style.
func DefaultPointStyle() PointStyle {
	return PointStyle{Cmap: "Set1", Size: 0.3, LineColor: "black", Alpha: 0.6}
}

// TextStyle is the annotation appearance.
type TextStyle struct {
	FontSize string
	Color    string
}

// DefaultTextStyle returns the year label style.
func DefaultTextStyle() TextStyle {
	return TextStyle{FontSize: "52pt", Color: "lightgray"}
}

// Points returns the font size in points, or 0 if it does not parse.
func (s TextStyle) Points() int {
	n, err := strconv.Atoi(strings.TrimSuffix(s.FontSize, "pt"))
	if err != nil {
		return 0
	}
	return n
}
