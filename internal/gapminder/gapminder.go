// Package gapminder assembles the animated chart: it declares the dataset's
// dimensions, builds the yearly frames, styles them, and mounts the plot with
// its year slider and play button into a document.
package gapminder

import (
	"fmt"
	"time"

	"github.com/san-kum/gapminder/internal/dataset"
	"github.com/san-kum/gapminder/internal/document"
	"github.com/san-kum/gapminder/internal/frames"
	"github.com/san-kum/gapminder/internal/logging"
	"github.com/san-kum/gapminder/internal/render"
	"github.com/san-kum/gapminder/internal/style"
	"github.com/san-kum/gapminder/internal/widget"
)

// DefaultTitle is the chart label.
const DefaultTitle = "Gapminder Demo"

// Options tune the chart. Zero values fall back to the defaults.
type Options struct {
	Interval time.Duration
	Title    string
	Width    int
	Height   int
	Cmap     string
	Logger   *logging.Logger
}

// DefaultOptions returns the options of the stock chart.
func DefaultOptions() Options {
	plot := style.DefaultPlotOptions()
	return Options{
		Interval: widget.DefaultInterval,
		Title:    DefaultTitle,
		Width:    plot.Width,
		Height:   plot.Height,
		Cmap:     style.DefaultPointStyle().Cmap,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Interval <= 0 {
		o.Interval = d.Interval
	}
	if o.Title == "" {
		o.Title = d.Title
	}
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.Cmap == "" {
		o.Cmap = d.Cmap
	}
	if o.Logger == nil {
		o.Logger = logging.Nop()
	}
	return o
}

// Session holds every stage of a mounted chart.
type Session struct {
	Doc        *document.Document
	Dataset    *dataset.Dataset
	Frames     *frames.Collection
	Labels     *frames.TextLayer
	Overlay    *style.Overlay
	Plot       *render.PlotState
	Controller *widget.Controller
	Layout     *render.Layout
}

// Build runs the pipeline up to the styled overlay without touching a document.
func Build(ds *dataset.Dataset, opts Options) (*Session, error) {
	opts = opts.withDefaults()

	ds, err := ds.Redim(dataset.GapminderDimensions())
	if err != nil {
		return nil, fmt.Errorf("declare dimensions: %w", err)
	}
	c, err := frames.Build(ds,
		[2]string{dataset.ColFertility, dataset.ColLifeExpectancy},
		[]string{dataset.ColCountry, dataset.ColPopulation, dataset.ColGroup},
		dataset.ColYear)
	if err != nil {
		return nil, fmt.Errorf("build frames: %w", err)
	}
	labels := frames.Annotate(c, frames.YearLabel)

	plotOpts := style.DefaultPlotOptions()
	plotOpts.Width, plotOpts.Height = opts.Width, opts.Height
	pointStyle := style.DefaultPointStyle()
	pointStyle.Cmap = opts.Cmap

	points, err := style.NewPoints(c, plotOpts, pointStyle)
	if err != nil {
		return nil, fmt.Errorf("style points: %w", err)
	}
	overlay := style.NewOverlay(points, style.NewText(labels, style.DefaultTextStyle())).Relabel(opts.Title)

	opts.Logger.Info("frames built", "rows", ds.Len(), "frames", c.Len())
	return &Session{Dataset: ds, Frames: c, Labels: labels, Overlay: overlay}, nil
}

// Plot builds the chart and mounts it as the root of doc.
func Plot(doc *document.Document, ds *dataset.Dataset, opts Options) (*Session, error) {
	opts = opts.withDefaults()

	s, err := Build(ds, opts)
	if err != nil {
		return nil, err
	}
	s.Doc = doc

	years, err := s.Dataset.Range(dataset.ColYear)
	if err != nil {
		return nil, fmt.Errorf("year range: %w", err)
	}
	slider, err := widget.NewSlider(int(years.Min), int(years.Max), int(years.Min), 1, dataset.ColYear)
	if err != nil {
		return nil, err
	}
	button := widget.NewButton(12)

	if s.Plot, err = render.GetPlot(s.Overlay, doc); err != nil {
		return nil, err
	}
	s.Controller = widget.NewController(doc, s.Plot, slider, button,
		widget.WithInterval(opts.Interval),
		widget.WithLogger(opts.Logger))

	if s.Layout, err = render.Mount(doc, s.Plot, s.Controller); err != nil {
		return nil, err
	}
	opts.Logger.Info("chart mounted", "title", doc.Title(), "start", slider.Start, "end", slider.End)
	return s, nil
}
