package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/gif"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/gapminder/internal/dataset"
	"github.com/san-kum/gapminder/internal/document"
	"github.com/san-kum/gapminder/internal/gapminder"
)

func session(t *testing.T, name string) *gapminder.Session {
	t.Helper()
	table, err := dataset.LoadFile(filepath.Join("..", "dataset", "testdata", name))
	require.NoError(t, err)
	s, err := gapminder.Plot(document.New(), dataset.New(table), gapminder.Options{})
	require.NoError(t, err)
	return s
}

func TestPlotToSVG(t *testing.T) {
	s := session(t, "gapminder.csv")

	var buf bytes.Buffer
	require.NoError(t, PlotToSVG(&buf, s.Plot))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Equal(t, len(s.Plot.Markers()), strings.Count(out, "<circle"))
	assert.Contains(t, out, "Gapminder Demo")
	assert.Contains(t, out, `fill-opacity="0.60"`)
	assert.Contains(t, out, `stroke="#000000"`)
	assert.Contains(t, out, `font-size="52pt" fill="#d3d3d3">1952</text>`)
	assert.Contains(t, out, `width="950" height="450"`)
}

func TestPlotToSVGSkipsMissingValues(t *testing.T) {
	s := session(t, "missing_values.csv")

	var buf bytes.Buffer
	require.NoError(t, PlotToSVG(&buf, s.Plot))
	assert.Zero(t, strings.Count(buf.String(), "<circle"))

	require.NoError(t, s.Plot.Update(1957))
	buf.Reset()
	require.NoError(t, PlotToSVG(&buf, s.Plot))
	assert.Equal(t, 1, strings.Count(buf.String(), "<circle"))
}

func TestCanvasToSVG(t *testing.T) {
	assert.Empty(t, CanvasToSVG(nil, 2))

	s := session(t, "gapminder.csv")
	c := s.Plot.Canvas()
	lit := 0
	pw, ph := c.PixelSize()
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if c.IsSet(x, y) {
				lit++
			}
		}
	}
	out := CanvasToSVG(c, 3)
	assert.Equal(t, lit, strings.Count(out, "<circle"))
	assert.Contains(t, out, `width="570" height="216"`)
}

func TestPlotToPNG(t *testing.T) {
	s := session(t, "gapminder.csv")

	var buf bytes.Buffer
	require.NoError(t, PlotToPNG(&buf, s.Plot))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))

	require.NoError(t, s.Plot.Update(1953))
	err := PlotToPNG(io.Discard, s.Plot)
	assert.True(t, errors.Is(err, ErrNoPoints))
}

func TestAnimateGIF(t *testing.T) {
	s := session(t, "gapminder.csv")
	require.NoError(t, s.Plot.Update(1967))

	var buf bytes.Buffer
	require.NoError(t, AnimateGIF(&buf, s.Plot, 200*time.Millisecond))

	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, g.Image, s.Frames.Len())
	assert.Equal(t, 20, g.Delay[0])
	assert.Equal(t, 95*charW, g.Config.Width)
	assert.Equal(t, 1967, s.Plot.Key(), "the shown frame is restored")
}

func TestExportJSON(t *testing.T) {
	s := session(t, "gapminder.csv")

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(&buf, s.Overlay))

	var data ExportData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, "Gapminder Demo", data.Title)
	assert.Equal(t, "Children per woman (total fertility)", data.XLabel)
	assert.Equal(t, "Set1", data.Cmap)
	require.Len(t, data.Frames, 12)
	assert.Equal(t, 1952, data.Frames[0].Year)
	assert.Equal(t, "1952", data.Frames[0].Label)
	assert.Len(t, data.Frames[0].Points, 6)
	assert.Equal(t, []GroupColor{
		{"Africa", "#e41a1c"},
		{"Americas", "#377eb8"},
		{"Asia", "#4daf4a"},
		{"Europe", "#984ea3"},
	}, data.Colors)
}

func TestCollectYears(t *testing.T) {
	s := session(t, "missing_values.csv")

	data := Collect(s.Overlay, 1952, 1953)
	require.Len(t, data.Frames, 1)
	pts := data.Frames[0].Points
	require.Len(t, pts, 2)
	assert.Nil(t, pts[0].Fertility)
	require.NotNil(t, pts[0].LifeExpectancy)
	assert.Equal(t, 71.9, *pts[0].LifeExpectancy)
	assert.Nil(t, pts[1].LifeExpectancy)

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(&buf, s.Overlay))
	assert.Contains(t, buf.String(), `"fertility": null`)
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("out/chart.PNG")
	require.NoError(t, err)
	assert.Equal(t, "png", f)

	_, err = FormatFromPath("chart.bmp")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.txt")
	require.NoError(t, WriteFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "ok")
		return err
	}))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(got))

	failed := filepath.Join(dir, "failed.txt")
	boom := errors.New("boom")
	err = WriteFile(failed, func(io.Writer) error { return boom })
	assert.ErrorIs(t, err, boom)
	_, err = os.Stat(failed)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
