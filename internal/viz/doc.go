// Package viz provides the terminal drawing primitives for the chart.
//
//   - [Canvas]: Braille-based pixel canvas with one colour per cell
//   - [Canvas.DrawText]: block-digit labels drawn into the canvas
//   - [Theme]: plot chrome colours, cycled with the T key
//
// The canvas size in sub-pixels is (Width*2) x (Height*4). Exporters read
// cells back with [Canvas.Cell] to rasterise frames.
package viz
