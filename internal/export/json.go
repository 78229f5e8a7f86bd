package export

import (
	"encoding/json"
	"io"
	"math"

	"github.com/san-kum/gapminder/internal/frames"
	"github.com/san-kum/gapminder/internal/style"
)

// ExportData is the JSON form of a chart.
type ExportData struct {
	Title  string       `json:"title"`
	XLabel string       `json:"x_label"`
	YLabel string       `json:"y_label"`
	Cmap   string       `json:"cmap"`
	Colors []GroupColor `json:"colors"`
	Frames []FrameData  `json:"frames"`
}

type GroupColor struct {
	Group string `json:"group"`
	Color string `json:"color"`
}

type FrameData struct {
	Year    int         `json:"year"`
	Label   string      `json:"label,omitempty"`
	Summary SummaryData `json:"summary"`
	Points  []PointData `json:"points"`
}

type SummaryData struct {
	Points          int      `json:"points"`
	MeanFertility   *float64 `json:"mean_fertility"`
	MeanLife        *float64 `json:"mean_life_expectancy"`
	WeightedLife    *float64 `json:"weighted_life_expectancy"`
	TotalPopulation int64    `json:"total_population"`
}

// PointData carries null for missing values.
type PointData struct {
	Country        string   `json:"country"`
	Group          string   `json:"group"`
	Fertility      *float64 `json:"fertility"`
	LifeExpectancy *float64 `json:"life_expectancy"`
	Population     int64    `json:"population"`
	Size           float64  `json:"size"`
	Color          string   `json:"color"`
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// Collect builds the export for the given years, or every year when none are given.
// Years without a frame are skipped.
func Collect(o *style.Overlay, years ...int) ExportData {
	points := o.Points
	c := points.Frames
	data := ExportData{
		Title:  o.Title(),
		XLabel: c.KDims[0].Label,
		YLabel: c.KDims[1].Label,
		Cmap:   points.Style.Cmap,
	}
	for _, g := range points.Colors().Categories() {
		data.Colors = append(data.Colors, GroupColor{Group: g, Color: points.Colors().Color(g)})
	}

	if len(years) == 0 {
		years = c.Keys()
	}
	for _, y := range years {
		f, ok := c.Get(y)
		if !ok {
			continue
		}
		data.Frames = append(data.Frames, frameData(o, f))
	}
	return data
}

func frameData(o *style.Overlay, f *frames.Frame) FrameData {
	sum := f.Summary()
	fd := FrameData{
		Year: f.Key,
		Summary: SummaryData{
			Points:          sum.Points,
			MeanFertility:   finite(sum.MeanFertility),
			MeanLife:        finite(sum.MeanLife),
			WeightedLife:    finite(sum.WeightedLife),
			TotalPopulation: sum.TotalPopulation,
		},
		Points: make([]PointData, 0, len(f.Points)),
	}
	if o.Text != nil {
		if txt, ok := o.Text.Layer.Get(f.Key); ok {
			fd.Label = txt.Body
		}
	}
	for _, pt := range f.Points {
		fd.Points = append(fd.Points, PointData{
			Country:        pt.Obs.Country,
			Group:          pt.Obs.Group,
			Fertility:      finite(pt.Obs.Fertility),
			LifeExpectancy: finite(pt.Obs.LifeExpectancy),
			Population:     pt.Obs.Population,
			Size:           o.Points.MarkerSize(pt.Obs),
			Color:          o.Points.Color(pt.Obs),
		})
	}
	return fd
}

// ExportJSON writes the chart as indented JSON.
func ExportJSON(w io.Writer, o *style.Overlay, years ...int) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(Collect(o, years...))
}
