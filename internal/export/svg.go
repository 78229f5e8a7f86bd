package export

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/san-kum/gapminder/internal/render"
	"github.com/san-kum/gapminder/internal/style"
	"github.com/san-kum/gapminder/internal/viz"
)

// Plot margins in output pixels.
const (
	marginLeft   = 60
	marginRight  = 20
	marginTop    = 40
	marginBottom = 50
)

// MarkerRadius is the largest marker radius in output pixels.
const MarkerRadius = 30.0

func markerRadius(m render.Marker) float64 {
	return max(m.Rel*MarkerRadius, 2)
}

// PlotToSVG draws the plot's current frame at the plot's configured size.
func PlotToSVG(w io.Writer, plot *render.PlotState) error {
	opts := plot.Overlay.Points.Plot
	st := plot.Overlay.Points.Style
	width, height := float64(opts.Width), float64(opts.Height)
	pw := width - marginLeft - marginRight
	ph := height - marginTop - marginBottom
	kd := plot.Overlay.Points.Frames.KDims

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<text x="%.1f" y="24" font-family="sans-serif" font-size="16" text-anchor="middle">%s</text>
`, width, height, width, height, width/2, html.EscapeString(plot.Title)))

	sb.WriteString(fmt.Sprintf(`<g stroke="#888888" fill="none">
<line x1="%d" y1="%.1f" x2="%.1f" y2="%.1f"/>
<line x1="%d" y1="%d" x2="%d" y2="%.1f"/>
</g>
`, marginLeft, marginTop+ph, marginLeft+pw, marginTop+ph, marginLeft, marginTop, marginLeft, marginTop+ph))
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="12" text-anchor="middle">%s</text>
<text x="16" y="%.1f" font-family="sans-serif" font-size="12" text-anchor="middle" transform="rotate(-90 16 %.1f)">%s</text>
`, marginLeft+pw/2, height-14, html.EscapeString(kd[0].Label),
		marginTop+ph/2, marginTop+ph/2, html.EscapeString(kd[1].Label)))

	if label := plot.Label(); label != "" {
		txt, _ := plot.Overlay.Text.Layer.Get(plot.Key())
		x, y := plot.Project(txt.X, txt.Y, pw, ph)
		ts := plot.Overlay.Text.Style
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%s" fill="%s">%s</text>
`, marginLeft+x, marginTop+y, ts.FontSize, style.Hex(ts.Color), html.EscapeString(label)))
	}

	sb.WriteString(fmt.Sprintf(`<g stroke="%s" fill-opacity="%.2f">
`, style.Hex(st.LineColor), st.Alpha))
	for _, m := range plot.Markers() {
		x, y := plot.Project(m.X, m.Y, pw, ph)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"><title>%s</title></circle>
`, marginLeft+x, marginTop+y, markerRadius(m), m.Color, html.EscapeString(m.Obs.Country)))
	}
	sb.WriteString("</g>\n</svg>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// CanvasToSVG converts a Braille canvas to SVG, one dot per lit sub-pixel in its cell's colour.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	dotRadius := scale * 0.4
	pw, ph := canvas.PixelSize()
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			_, color := canvas.Cell(x/2, y/4)
			if color == "" {
				color = "#ffffff"
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, color))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
