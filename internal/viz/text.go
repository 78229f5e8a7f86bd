package viz

// 3x5 block glyphs, one string per row, '#' is a lit cell.
var glyphs = map[rune][5]string{
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {".#.", "##.", ".#.", ".#.", "###"},
	'2': {"###", "..#", "###", "#..", "###"},
	'3': {"###", "..#", "###", "..#", "###"},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "###", "..#", "###"},
	'6': {"###", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", "..#", "..#", "..#"},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "###"},
	'-': {"...", "...", "###", "...", "..."},
	'.': {"...", "...", "...", "...", ".#."},
}

const (
	glyphW = 3
	glyphH = 5
)

// TextSize returns the width and height in sub-pixels of s drawn at scale.
// Glyphs are separated by one scaled column.
func TextSize(s string, scale int) (int, int) {
	n := len([]rune(s))
	if n == 0 || scale < 1 {
		return 0, 0
	}
	return (n*(glyphW+1) - 1) * scale, glyphH * scale
}

// DrawText draws s in block glyphs with its top-left corner at (x, y).
// Runes without a glyph leave a gap.
func (c *Canvas) DrawText(x, y int, s string, scale int, color string) {
	if scale < 1 {
		return
	}
	for i, r := range []rune(s) {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		ox := x + i*(glyphW+1)*scale
		for gy, line := range g {
			for gx, px := range line {
				if px != '#' {
					continue
				}
				for sy := 0; sy < scale; sy++ {
					for sx := 0; sx < scale; sx++ {
						c.SetColor(ox+gx*scale+sx, y+gy*scale+sy, color)
					}
				}
			}
		}
	}
}
