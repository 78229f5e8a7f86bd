package dataset

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Range is a closed numeric interval.
type Range struct {
	Min, Max float64
}

// Span returns Max-Min, or 1 for a degenerate range so callers can divide by it.
func (r Range) Span() float64 {
	if s := r.Max - r.Min; s > 0 {
		return s
	}
	return 1
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Dimension describes one column as seen by plots.
type Dimension struct {
	Name   string
	Label  string
	Column string // source column in the table
	Range  *Range // display range, nil when unset
}

// Numeric reports whether the dimension's column holds numbers.
func (d Dimension) Numeric() bool {
	return IsNumeric(d.Column)
}

// Matches reports whether ref names this dimension by name or label.
func (d Dimension) Matches(ref string) bool {
	return d.Name == ref || d.Label == ref
}

// Spec changes a dimension's metadata. Empty fields keep the current value.
type Spec struct {
	Name  string
	Label string
	Range *Range
}

// GapminderDimensions returns the labels and display ranges used by the chart.
func GapminderDimensions() map[string]Spec {
	return map[string]Spec{
		ColFertility: {
			Label: "Children per woman (total fertility)",
			Range: &Range{Min: 0, Max: 10},
		},
		ColLifeExpectancy: {
			Label: "Life expectancy at birth (years)",
			Range: &Range{Min: 15, Max: 100},
		},
		ColPopulation: {
			Name:  "population",
			Label: "Population",
		},
	}
}

// Dataset wraps a Table with declared dimensions. It is never mutated after construction.
type Dataset struct {
	table *Table
	dims  []Dimension
}

// New declares one dimension per required column, labelled with its column name.
func New(t *Table) *Dataset {
	dims := make([]Dimension, len(RequiredColumns))
	for i, col := range RequiredColumns {
		dims[i] = Dimension{Name: col, Label: col, Column: col}
	}
	return &Dataset{table: t, dims: dims}
}

// Table returns the wrapped table.
func (d *Dataset) Table() *Table {
	return d.table
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return d.table.Len()
}

// Dimensions returns a copy of the declared dimensions.
func (d *Dataset) Dimensions() []Dimension {
	out := make([]Dimension, len(d.dims))
	copy(out, d.dims)
	return out
}

// Dimension resolves ref by name, falling back to label.
func (d *Dataset) Dimension(ref string) (Dimension, error) {
	i := d.index(ref)
	if i < 0 {
		return Dimension{}, fmt.Errorf("%w: %q", ErrUnknownDimension, ref)
	}
	return d.dims[i], nil
}

func (d *Dataset) index(ref string) int {
	for i, dim := range d.dims {
		if dim.Name == ref {
			return i
		}
	}
	for i, dim := range d.dims {
		if dim.Label == ref {
			return i
		}
	}
	return -1
}

// Redim returns a copy of the dataset with specs applied. Keys are dimension references.
func (d *Dataset) Redim(specs map[string]Spec) (*Dataset, error) {
	dims := d.Dimensions()
	for ref, spec := range specs {
		i := d.index(ref)
		if i < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDimension, ref)
		}
		if spec.Name != "" {
			dims[i].Name = spec.Name
		}
		if spec.Label != "" {
			dims[i].Label = spec.Label
		}
		if spec.Range != nil {
			r := *spec.Range
			dims[i].Range = &r
		}
	}
	return &Dataset{table: d.table, dims: dims}, nil
}

// Floats returns the per-row numeric values of a dimension.
func (d *Dataset) Floats(ref string) ([]float64, error) {
	dim, err := d.Dimension(ref)
	if err != nil {
		return nil, err
	}
	if !dim.Numeric() {
		return nil, fmt.Errorf("%w: %q", ErrNotNumeric, ref)
	}
	values := make([]float64, len(d.table.Rows))
	for i, row := range d.table.Rows {
		values[i], _ = row.Float(dim.Column)
	}
	return values, nil
}

// Range returns the minimum and maximum of a numeric dimension, ignoring NaN.
func (d *Dataset) Range(ref string) (Range, error) {
	values, err := d.Floats(ref)
	if err != nil {
		return Range{}, err
	}
	finite := values[:0:0]
	for _, v := range values {
		if !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return Range{}, fmt.Errorf("%w: %q", ErrEmpty, ref)
	}
	return Range{Min: floats.Min(finite), Max: floats.Max(finite)}, nil
}
