// Package frames groups a dataset into one point cloud per year.
package frames

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/san-kum/gapminder/internal/dataset"
)

// ErrNotNumeric indicates a key dimension that cannot be used as a position.
var ErrNotNumeric = errors.New("frames: key dimension is not numeric")

// Point is one observation placed on the two key dimensions.
type Point struct {
	X, Y float64
	Obs  dataset.Observation
}

// Frame holds the points of one group key.
type Frame struct {
	Key    int
	Points []Point
}

// Collection is the ordered set of frames built from a dataset.
type Collection struct {
	KDims   [2]dataset.Dimension
	VDims   []dataset.Dimension
	GroupBy dataset.Dimension

	keys   []int
	frames map[int]*Frame
}

// Build groups ds by groupBy. Keys are sorted ascending and each frame keeps
// its rows in table order.
func Build(ds *dataset.Dataset, kdims [2]string, vdims []string, groupBy string) (*Collection, error) {
	c := &Collection{frames: make(map[int]*Frame)}

	for i, ref := range kdims {
		dim, err := ds.Dimension(ref)
		if err != nil {
			return nil, err
		}
		if !dim.Numeric() {
			return nil, fmt.Errorf("%w: %q", ErrNotNumeric, ref)
		}
		c.KDims[i] = dim
	}
	for _, ref := range vdims {
		dim, err := ds.Dimension(ref)
		if err != nil {
			return nil, err
		}
		c.VDims = append(c.VDims, dim)
	}
	group, err := ds.Dimension(groupBy)
	if err != nil {
		return nil, err
	}
	if !group.Numeric() {
		return nil, fmt.Errorf("%w: %q", ErrNotNumeric, groupBy)
	}
	c.GroupBy = group

	for _, row := range ds.Table().Rows {
		kv, _ := row.Float(group.Column)
		key := int(kv)
		f, ok := c.frames[key]
		if !ok {
			f = &Frame{Key: key}
			c.frames[key] = f
			c.keys = append(c.keys, key)
		}
		x, _ := row.Float(c.KDims[0].Column)
		y, _ := row.Float(c.KDims[1].Column)
		f.Points = append(f.Points, Point{X: x, Y: y, Obs: row})
	}
	sort.Ints(c.keys)

	return c, nil
}

// Keys returns the frame keys in ascending order.
func (c *Collection) Keys() []int {
	out := make([]int, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of frames.
func (c *Collection) Len() int {
	return len(c.keys)
}

// Get returns the frame for key.
func (c *Collection) Get(key int) (*Frame, bool) {
	f, ok := c.frames[key]
	return f, ok
}

// Each calls fn for every frame in key order.
func (c *Collection) Each(fn func(f *Frame)) {
	for _, k := range c.keys {
		fn(c.frames[k])
	}
}

// Text is a label drawn at a fixed data position.
type Text struct {
	X, Y     float64
	Body     string
	FontSize int
}

// YearLabel is the annotation drawn behind each year's points.
func YearLabel(key int) Text {
	return Text{X: 1.2, Y: 25, Body: strconv.Itoa(key), FontSize: 30}
}

// TextLayer holds one annotation per frame key.
type TextLayer struct {
	keys  []int
	texts map[int]Text
}

// Annotate builds a TextLayer keyed like c.
func Annotate(c *Collection, fn func(key int) Text) *TextLayer {
	l := &TextLayer{keys: c.Keys(), texts: make(map[int]Text, c.Len())}
	for _, k := range l.keys {
		l.texts[k] = fn(k)
	}
	return l
}

// Keys returns the annotation keys in ascending order.
func (l *TextLayer) Keys() []int {
	out := make([]int, len(l.keys))
	copy(out, l.keys)
	return out
}

// Get returns the annotation for key.
func (l *TextLayer) Get(key int) (Text, bool) {
	t, ok := l.texts[key]
	return t, ok
}
