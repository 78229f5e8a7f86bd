package gapminder

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/gapminder/internal/dataset"
	"github.com/san-kum/gapminder/internal/document"
	"github.com/san-kum/gapminder/internal/logging"
	"github.com/san-kum/gapminder/internal/style"
)

func fixture(t *testing.T) *dataset.Dataset {
	t.Helper()
	table, err := dataset.LoadFile(filepath.Join("..", "dataset", "testdata", "gapminder.csv"))
	require.NoError(t, err)
	return dataset.New(table)
}

func TestPlot(t *testing.T) {
	doc := document.New()
	s, err := Plot(doc, fixture(t), Options{})
	require.NoError(t, err)

	assert.Equal(t, "Gapminder Demo", doc.Title())
	assert.Same(t, s.Layout, doc.Root())
	assert.Equal(t, 12, s.Frames.Len())
	assert.Equal(t, s.Frames.Keys(), s.Labels.Keys())

	sl := s.Controller.Slider
	assert.Equal(t, 1952, sl.Start)
	assert.Equal(t, 2007, sl.End)
	assert.Equal(t, 1952, sl.Value)
	assert.Equal(t, 1, sl.Step)
	assert.Equal(t, "Year", sl.Title)

	assert.Equal(t, "► Play", s.Controller.Button.Label())
	assert.Equal(t, 1952, s.Plot.Key())
	assert.True(t, s.Plot.Visible())
	assert.Len(t, s.Plot.Markers(), 6)
	assert.Zero(t, doc.Active())
}

func TestPlotDoesNotMutateInput(t *testing.T) {
	ds := fixture(t)
	_, err := Plot(document.New(), ds, Options{})
	require.NoError(t, err)

	pop, err := ds.Dimension(dataset.ColPopulation)
	require.NoError(t, err)
	assert.Equal(t, dataset.ColPopulation, pop.Name)
}

func TestPlayAnimatesThroughDocument(t *testing.T) {
	doc := document.New()
	s, err := Plot(doc, fixture(t), Options{Interval: 10 * time.Millisecond})
	require.NoError(t, err)

	s.Controller.Button.Click()
	require.Equal(t, 1, doc.Active())
	id, ok := s.Controller.Timer()
	require.True(t, ok)

	assert.True(t, doc.Handle(document.PeriodicMsg{ID: id}))
	assert.Equal(t, 1953, s.Controller.Slider.Value)
	// no frame between census years
	assert.False(t, s.Plot.Visible())

	for i := 0; i < 4; i++ {
		doc.Handle(document.PeriodicMsg{ID: id})
	}
	assert.Equal(t, 1957, s.Plot.Key())
	assert.True(t, s.Plot.Visible())

	s.Controller.Button.Click()
	assert.Zero(t, doc.Active())
	assert.False(t, doc.Handle(document.PeriodicMsg{ID: id}))
}

func TestPlotMountsOnce(t *testing.T) {
	doc := document.New()
	_, err := Plot(doc, fixture(t), Options{})
	require.NoError(t, err)

	_, err = Plot(doc, fixture(t), Options{})
	assert.True(t, errors.Is(err, document.ErrAlreadyMounted))
}

func TestPlotOptions(t *testing.T) {
	s, err := Plot(document.New(), fixture(t), Options{Title: "Custom", Width: 500, Height: 250, Cmap: "Dark2"})
	require.NoError(t, err)
	assert.Equal(t, "Custom", s.Plot.Title)
	assert.Equal(t, 50, s.Plot.Canvas().Width)
	assert.Equal(t, 10, s.Plot.Canvas().Height)
	assert.Equal(t, "Dark2", s.Overlay.Points.Style.Cmap)

	_, err = Plot(document.New(), fixture(t), Options{Cmap: "Viridis"})
	assert.True(t, errors.Is(err, style.ErrUnknownCmap))
}

func TestPlotLogs(t *testing.T) {
	var buf bytes.Buffer
	_, err := Plot(document.New(), fixture(t), Options{Logger: logging.NewWithWriter(&buf, logging.LevelInfo)})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "frames built")
	assert.Contains(t, buf.String(), "chart mounted")
}
