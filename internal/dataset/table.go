package dataset

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column names expected in the CSV header. Matching is exact and case-sensitive.
const (
	ColCountry        = "Country"
	ColYear           = "Year"
	ColFertility      = "Fertility"
	ColLifeExpectancy = "Life expectancy"
	ColPopulation     = "Population"
	ColGroup          = "Group"
)

// RequiredColumns lists the header fields every input file must carry.
var RequiredColumns = []string{
	ColFertility, ColLifeExpectancy, ColCountry, ColPopulation, ColGroup, ColYear,
}

var columnTypes = map[string]series.Type{
	ColCountry:        series.String,
	ColGroup:          series.String,
	ColYear:           series.Int,
	ColFertility:      series.Float,
	ColLifeExpectancy: series.Float,
	ColPopulation:     series.Float,
}

// Observation is one country-year row.
type Observation struct {
	Country        string
	Year           int
	Fertility      float64
	LifeExpectancy float64
	Population     int64
	Group          string
}

// Float returns the numeric value stored under column. ok is false for text columns.
func (o Observation) Float(column string) (v float64, ok bool) {
	switch column {
	case ColYear:
		return float64(o.Year), true
	case ColFertility:
		return o.Fertility, true
	case ColLifeExpectancy:
		return o.LifeExpectancy, true
	case ColPopulation:
		return float64(o.Population), true
	}
	return 0, false
}

// Text formats the value stored under column.
func (o Observation) Text(column string) string {
	switch column {
	case ColCountry:
		return o.Country
	case ColGroup:
		return o.Group
	case ColYear:
		return fmt.Sprintf("%d", o.Year)
	case ColPopulation:
		return fmt.Sprintf("%d", o.Population)
	case ColFertility:
		return formatFloat(o.Fertility)
	case ColLifeExpectancy:
		return formatFloat(o.LifeExpectancy)
	}
	return ""
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.2f", v)
}

// IsNumeric reports whether column holds numbers.
func IsNumeric(column string) bool {
	_, ok := Observation{}.Float(column)
	return ok
}

// Table is the in-memory result of a load. Rows keep file order.
type Table struct {
	Header []string
	Rows   []Observation
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// LoadFile reads the CSV at path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Wrapped: err}
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Wrapped: err}
	}
	return t, nil
}

// utf8BOM is written at the start of CSV files by Excel's "CSV UTF-8" export.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// skipBOM drops a leading UTF-8 byte order mark.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}
	return br
}

// Load reads a CSV with a header row into a Table.
// Missing fertility or life expectancy values load as NaN; a missing population loads as 0.
// A leading UTF-8 byte order mark is ignored.
func Load(r io.Reader) (*Table, error) {
	df := dataframe.ReadCSV(skipBOM(r),
		dataframe.HasHeader(true),
		dataframe.WithTypes(columnTypes),
		dataframe.NaNValues([]string{"NA", "NaN", "<nil>", ""}),
	)
	if df.Err != nil {
		return nil, &LoadError{Wrapped: fmt.Errorf("%w: %v", ErrMalformed, df.Err)}
	}

	present := make(map[string]bool, df.Ncol())
	for _, name := range df.Names() {
		present[name] = true
	}
	for _, col := range RequiredColumns {
		if !present[col] {
			return nil, &LoadError{Column: col, Wrapped: ErrMissingColumn}
		}
	}

	years, err := df.Col(ColYear).Int()
	if err != nil {
		return nil, &LoadError{Column: ColYear, Wrapped: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	countries := df.Col(ColCountry).Records()
	groups := df.Col(ColGroup).Records()
	fertility := df.Col(ColFertility).Float()
	life := df.Col(ColLifeExpectancy).Float()
	population := df.Col(ColPopulation).Float()

	rows := make([]Observation, df.Nrow())
	for i := range rows {
		pop := population[i]
		if math.IsNaN(pop) {
			pop = 0
		}
		rows[i] = Observation{
			Country:        countries[i],
			Year:           years[i],
			Fertility:      fertility[i],
			LifeExpectancy: life[i],
			Population:     int64(math.Round(pop)),
			Group:          groups[i],
		}
	}

	return &Table{Header: df.Names(), Rows: rows}, nil
}
