package style

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/gapminder/internal/dataset"
	"github.com/san-kum/gapminder/internal/frames"
)

// ErrUnknownIndex indicates a size or colour index that is not a dimension of the frames.
var ErrUnknownIndex = errors.New("style: index is not a frame dimension")

// PointsLayer is the styled point cloud.
type PointsLayer struct {
	Frames *frames.Collection
	Plot   PlotOptions
	Style  PointStyle

	sizeDim  dataset.Dimension
	colorDim dataset.Dimension
	colors   *ColorIndex
	maxSize  float64
}

// NewPoints resolves the size and colour indexes against the collection's
// dimensions and precomputes the colour mapping and largest marker size.
func NewPoints(c *frames.Collection, plot PlotOptions, st PointStyle) (*PointsLayer, error) {
	palette, err := Palette(st.Cmap)
	if err != nil {
		return nil, err
	}
	if plot.SizeFn == nil {
		plot.SizeFn = func(v float64) float64 { return v }
	}

	p := &PointsLayer{Frames: c, Plot: plot, Style: st}
	if p.sizeDim, err = lookup(c, plot.SizeIndex); err != nil {
		return nil, err
	}
	if !p.sizeDim.Numeric() {
		return nil, fmt.Errorf("%w: size index %q is not numeric", ErrUnknownIndex, plot.SizeIndex)
	}
	if p.colorDim, err = lookup(c, plot.ColorIndex); err != nil {
		return nil, err
	}

	var categories []string
	c.Each(func(f *frames.Frame) {
		for _, pt := range f.Points {
			categories = append(categories, pt.Obs.Text(p.colorDim.Column))
			if s := p.MarkerSize(pt.Obs); s > p.maxSize {
				p.maxSize = s
			}
		}
	})
	p.colors = NewColorIndex(categories, palette)
	return p, nil
}

func lookup(c *frames.Collection, ref string) (dataset.Dimension, error) {
	dims := append(c.KDims[:], c.VDims...)
	for _, d := range dims {
		if d.Matches(ref) {
			return d, nil
		}
	}
	return dataset.Dimension{}, fmt.Errorf("%w: %q", ErrUnknownIndex, ref)
}

// MarkerSize is Size * SizeFn(value of the size index). Missing or negative values give 0.
func (p *PointsLayer) MarkerSize(obs dataset.Observation) float64 {
	v, _ := obs.Float(p.sizeDim.Column)
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	return p.Style.Size * p.Plot.SizeFn(v)
}

// RelativeSize is MarkerSize scaled by the largest marker in the collection, in [0, 1].
func (p *PointsLayer) RelativeSize(obs dataset.Observation) float64 {
	if p.maxSize == 0 {
		return 0
	}
	return p.MarkerSize(obs) / p.maxSize
}

// Color returns the fill colour of an observation.
func (p *PointsLayer) Color(obs dataset.Observation) string {
	return p.colors.Color(obs.Text(p.colorDim.Column))
}

// Colors returns the colour mapping.
func (p *PointsLayer) Colors() *ColorIndex {
	return p.colors
}

// SizeDimension returns the resolved size index.
func (p *PointsLayer) SizeDimension() dataset.Dimension {
	return p.sizeDim
}

// ColorDimension returns the resolved colour index.
func (p *PointsLayer) ColorDimension() dataset.Dimension {
	return p.colorDim
}

// TextLayer is the styled annotation layer.
type TextLayer struct {
	Layer *frames.TextLayer
	Style TextStyle
}

// NewText styles an annotation layer.
func NewText(l *frames.TextLayer, st TextStyle) *TextLayer {
	return &TextLayer{Layer: l, Style: st}
}

// Overlay draws text beneath points under one title.
type Overlay struct {
	Points *PointsLayer
	Text   *TextLayer
	Label  string
}

// NewOverlay combines a point layer and a text layer.
func NewOverlay(points *PointsLayer, text *TextLayer) *Overlay {
	return &Overlay{Points: points, Text: text}
}

// Relabel returns a copy with a new label.
func (o *Overlay) Relabel(label string) *Overlay {
	c := *o
	c.Label = label
	return &c
}

// Title expands the plot's title format.
func (o *Overlay) Title() string {
	return strings.ReplaceAll(o.Points.Plot.TitleFormat, "{label}", o.Label)
}
