package dataset_test

import (
	"fmt"
	"path/filepath"

	"github.com/san-kum/gapminder/internal/dataset"
)

func ExampleDataset_Range() {
	table, err := dataset.LoadFile(filepath.Join("testdata", "gapminder.csv"))
	if err != nil {
		fmt.Println(err)
		return
	}
	ds, err := dataset.New(table).Redim(dataset.GapminderDimensions())
	if err != nil {
		fmt.Println(err)
		return
	}
	years, err := ds.Range(dataset.ColYear)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(years.Min, years.Max)
	// Output: 1952 2007
}
