package export

import (
	"image"
	"image/color"
	"image/gif"
	"io"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/san-kum/gapminder/internal/render"
	"github.com/san-kum/gapminder/internal/style"
	"github.com/san-kum/gapminder/internal/viz"
)

// Raster size of one canvas cell in the GIF.
const (
	charW = 8
	charH = 16
)

// gifPalette holds the background, the label colour and one entry per
// category colour.
type gifPalette struct {
	colors color.Palette
	index  map[string]uint8
}

func newGIFPalette(plot *render.PlotState) *gifPalette {
	p := &gifPalette{index: make(map[string]uint8)}
	p.add("#ffffff")
	p.add("#000000")
	if plot.Overlay.Text != nil {
		p.add(style.Hex(plot.Overlay.Text.Style.Color))
	}
	points := plot.Overlay.Points
	for _, cat := range points.Colors().Categories() {
		p.add(points.Colors().Color(cat))
	}
	return p
}

func (p *gifPalette) add(hex string) {
	if _, ok := p.index[hex]; ok || len(p.colors) >= 256 {
		return
	}
	r, g, b := viz.ParseHex(hex)
	p.index[hex] = uint8(len(p.colors))
	p.colors = append(p.colors, color.RGBA{R: r, G: g, B: b, A: 255})
}

func (p *gifPalette) lookup(hex string) uint8 {
	if i, ok := p.index[hex]; ok {
		return i
	}
	return 1
}

// captureFrame rasterises the canvas, one block per lit Braille dot.
func captureFrame(c *viz.Canvas, pal *gifPalette, caption string) *image.Paletted {
	imgW, imgH := c.Width*charW, c.Height*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), pal.colors)

	dotW, dotH := charW/2, charH/4
	pw, ph := c.PixelSize()
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if !c.IsSet(x, y) {
				continue
			}
			_, hex := c.Cell(x/2, y/4)
			idx := pal.lookup(hex)
			for py := 0; py < dotH; py++ {
				for px := 0; px < dotW; px++ {
					img.SetColorIndex(x*dotW+px, y*dotH+py, idx)
				}
			}
		}
	}

	if caption != "" {
		drawer := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(pal.colors[1]),
			Face: basicfont.Face7x13,
		}
		drawer.Dot = fixed.Point26_6{
			X: fixed.I(4),
			Y: fixed.I(imgH - 4),
		}
		drawer.DrawString(caption)
	}
	return img
}

// AnimateGIF draws every frame of the plot in key order. The plot is left
// showing the key it showed before.
func AnimateGIF(w io.Writer, plot *render.PlotState, interval time.Duration) error {
	keys := plot.Overlay.Points.Frames.Keys()
	if len(keys) == 0 {
		return ErrNoPoints
	}
	current := plot.Key()
	defer plot.Update(current)

	delay := int(interval / (10 * time.Millisecond))
	if delay < 1 {
		delay = 1
	}

	pal := newGIFPalette(plot)
	anim := gif.GIF{LoopCount: 0}
	for _, key := range keys {
		if err := plot.Update(key); err != nil {
			return err
		}
		anim.Image = append(anim.Image, captureFrame(plot.Canvas(), pal, plot.Title+"  "+plot.Label()))
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}
