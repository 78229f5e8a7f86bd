// Package style attaches visual encodings to frames and combines the point and
// text layers into one titled overlay.
//
// Every option is a constant fixed at construction:
//
//   - [PlotOptions]: plot size, tools, which dimensions drive size and colour
//   - [PointStyle]: colormap, base marker size, outline colour, opacity
//   - [TextStyle]: annotation font size and colour
//
// Marker size follows [PointsLayer.MarkerSize] (Size * SizeFn(value)); colour
// follows the sorted distinct values of the colour dimension mapped onto the
// colormap.
package style
