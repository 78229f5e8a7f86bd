package render

import (
	"errors"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/gapminder/internal/document"
	"github.com/san-kum/gapminder/internal/widget"
)

// ErrSizingMode indicates a sizing mode the terminal layout cannot honour.
var ErrSizingMode = errors.New("render: unsupported sizing mode")

// Sizing is how a layout reacts to the terminal size.
type Sizing int

const (
	SizingFixed Sizing = iota
	SizingStretchWidth
	SizingStretchBoth
)

func (s Sizing) String() string {
	switch s {
	case SizingFixed:
		return "fixed"
	case SizingStretchWidth:
		return "stretch_width"
	case SizingStretchBoth:
		return "stretch_both"
	}
	return "unknown"
}

// Renderable is any component that draws itself.
type Renderable interface {
	Render() string
}

// Layout is a grid of components: rows stack vertically, items in a row sit side by side.
type Layout struct {
	Rows   [][]Renderable
	Sizing Sizing
}

// NewLayout returns a layout. Only fixed sizing is supported.
func NewLayout(rows [][]Renderable, mode Sizing) (*Layout, error) {
	if mode != SizingFixed {
		return nil, ErrSizingMode
	}
	return &Layout{Rows: rows, Sizing: mode}, nil
}

// Render joins each row horizontally and the rows vertically.
func (l *Layout) Render() string {
	rendered := make([]string, 0, len(l.Rows))
	for _, row := range l.Rows {
		items := make([]string, 0, len(row))
		for _, item := range row {
			items = append(items, item.Render())
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Center, items...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

// Mount lays out the plot above the slider and the button and attaches the
// layout as the document root. A document can be mounted once.
func Mount(doc *document.Document, plot *PlotState, ctrl *widget.Controller) (*Layout, error) {
	if doc.Root() != nil {
		return nil, document.ErrAlreadyMounted
	}
	l, err := NewLayout([][]Renderable{
		{plot},
		{ctrl.Slider, ctrl.Button},
	}, SizingFixed)
	if err != nil {
		return nil, err
	}
	if err := doc.AddRoot(l); err != nil {
		return nil, err
	}
	return l, nil
}
