package style

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/gapminder/internal/dataset"
	"github.com/san-kum/gapminder/internal/frames"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collection(t *testing.T) *frames.Collection {
	t.Helper()
	table := &dataset.Table{Rows: []dataset.Observation{
		{Country: "Sweden", Year: 1952, Fertility: 2.2, LifeExpectancy: 71.9, Population: 100, Group: "Europe"},
		{Country: "Chad", Year: 1952, Fertility: 6.1, LifeExpectancy: 38.0, Population: 400, Group: "Africa"},
		{Country: "Sweden", Year: 1957, Fertility: 2.1, LifeExpectancy: 72.5, Population: 900, Group: "Europe"},
		{Country: "Peru", Year: 1957, Fertility: 6.9, LifeExpectancy: 46.0, Population: 0, Group: "Americas"},
	}}
	ds, err := dataset.New(table).Redim(dataset.GapminderDimensions())
	require.NoError(t, err)
	c, err := frames.Build(ds,
		[2]string{dataset.ColFertility, dataset.ColLifeExpectancy},
		[]string{dataset.ColCountry, dataset.ColPopulation, dataset.ColGroup},
		dataset.ColYear)
	require.NoError(t, err)
	return c
}

func TestDefaults(t *testing.T) {
	plot := DefaultPlotOptions()
	assert.Equal(t, 950, plot.Width)
	assert.Equal(t, 450, plot.Height)
	assert.True(t, plot.HasTool("hover"))
	assert.False(t, plot.HasTool("zoom"))
	assert.Equal(t, 3.0, plot.SizeFn(9))

	st := DefaultPointStyle()
	assert.Equal(t, "Set1", st.Cmap)
	assert.Equal(t, 0.6, st.Alpha)

	assert.Equal(t, 52, DefaultTextStyle().Points())
	assert.Equal(t, 0, TextStyle{FontSize: "big"}.Points())
}

func TestPalette(t *testing.T) {
	p, err := Palette("Set1")
	require.NoError(t, err)
	assert.Len(t, p, 9)
	assert.Equal(t, "#e41a1c", p[0])

	_, err = Palette("Viridis")
	assert.True(t, errors.Is(err, ErrUnknownCmap))

	assert.Equal(t, []string{"Category10", "Dark2", "Set1"}, Palettes())
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#d3d3d3", Hex("lightgray"))
	assert.Equal(t, "#000000", Hex("Black"))
	assert.Equal(t, "#abcdef", Hex("#ABCDEF"))
}

func TestColorIndexIsSortedAndWraps(t *testing.T) {
	ci := NewColorIndex([]string{"c", "a", "b", "a"}, []string{"#1", "#2"})
	assert.Equal(t, []string{"a", "b", "c"}, ci.Categories())
	assert.Equal(t, "#1", ci.Color("a"))
	assert.Equal(t, "#2", ci.Color("b"))
	assert.Equal(t, "#1", ci.Color("c"))
	assert.Equal(t, "#2", ci.Color("zzz"))
}

func TestPointsLayer(t *testing.T) {
	p, err := NewPoints(collection(t), DefaultPlotOptions(), DefaultPointStyle())
	require.NoError(t, err)

	assert.Equal(t, "population", p.SizeDimension().Name)
	assert.Equal(t, dataset.ColGroup, p.ColorDimension().Name)

	small := dataset.Observation{Population: 100}
	big := dataset.Observation{Population: 900}
	assert.InDelta(t, 0.3*10, p.MarkerSize(small), 1e-9)
	assert.InDelta(t, 0.3*30, p.MarkerSize(big), 1e-9)
	assert.InDelta(t, 1.0, p.RelativeSize(big), 1e-9)
	assert.InDelta(t, 1.0/3, p.RelativeSize(small), 1e-9)
	assert.Zero(t, p.MarkerSize(dataset.Observation{Population: 0}))

	// Africa, Americas, Europe sorted onto Set1.
	assert.Equal(t, "#e41a1c", p.Color(dataset.Observation{Group: "Africa"}))
	assert.Equal(t, "#377eb8", p.Color(dataset.Observation{Group: "Americas"}))
	assert.Equal(t, "#4daf4a", p.Color(dataset.Observation{Group: "Europe"}))
}

func TestMarkerSizeIsMonotone(t *testing.T) {
	p, err := NewPoints(collection(t), DefaultPlotOptions(), DefaultPointStyle())
	require.NoError(t, err)

	prev := -1.0
	for _, pop := range []int64{1, 10, 1000, 1e6, 1e9} {
		s := p.MarkerSize(dataset.Observation{Population: pop})
		assert.Greater(t, s, prev)
		prev = s
	}
}

func TestNewPointsErrors(t *testing.T) {
	c := collection(t)

	_, err := NewPoints(c, DefaultPlotOptions(), PointStyle{Cmap: "nope"})
	assert.True(t, errors.Is(err, ErrUnknownCmap))

	opts := DefaultPlotOptions()
	opts.SizeIndex = "GDP"
	_, err = NewPoints(c, opts, DefaultPointStyle())
	assert.True(t, errors.Is(err, ErrUnknownIndex))

	opts = DefaultPlotOptions()
	opts.SizeIndex = dataset.ColCountry
	_, err = NewPoints(c, opts, DefaultPointStyle())
	assert.True(t, errors.Is(err, ErrUnknownIndex))
}

func TestOverlayTitle(t *testing.T) {
	c := collection(t)
	p, err := NewPoints(c, DefaultPlotOptions(), DefaultPointStyle())
	require.NoError(t, err)
	text := NewText(frames.Annotate(c, frames.YearLabel), DefaultTextStyle())

	o := NewOverlay(p, text)
	relabeled := o.Relabel("Gapminder Demo")

	assert.Equal(t, "Gapminder Demo", relabeled.Title())
	assert.Empty(t, o.Label)
	assert.Same(t, o.Points, relabeled.Points)
}

func TestSizeFnDefaultsToIdentity(t *testing.T) {
	opts := DefaultPlotOptions()
	opts.SizeFn = nil
	p, err := NewPoints(collection(t), opts, DefaultPointStyle())
	require.NoError(t, err)
	assert.InDelta(t, 0.3*400, p.MarkerSize(dataset.Observation{Population: 400}), 1e-9)
	assert.False(t, math.IsNaN(p.RelativeSize(dataset.Observation{Population: 400})))
}
