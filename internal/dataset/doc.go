// Package dataset loads the Gapminder observations and declares their dimensions.
//
// The package has two layers:
//
//   - [Table]: immutable, typed rows read from CSV through a gota dataframe
//   - [Dataset]: a table plus [Dimension] metadata (name, display label, display range)
//
// # Example
//
//	table, err := dataset.LoadFile("../data/gapminder.CSV")
//	if err != nil {
//	    return err
//	}
//	ds, err := dataset.New(table).Redim(dataset.GapminderDimensions())
//	years, err := ds.Range(dataset.ColYear)
//	// years.Min, years.Max bound the slider
//
// Dimensions are looked up by name first and by label second, so a renamed
// dimension can still be referenced by its original label.
package dataset
