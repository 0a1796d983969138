package plot

import "math"

const brailleBlank = 0x2800

// brailleDots maps (col 0-1, row 0-3) to the braille dot bit offsets.
// Braille character = U+2800 + sum of activated dot bits.
// Column 0: dots 1,2,3,7 (bits 0,1,2,6)
// Column 1: dots 4,5,6,8 (bits 3,4,5,7)
var brailleDots = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40}, // left column
	{0x08, 0x10, 0x20, 0x80}, // right column
}

// Canvas is a grid of braille cells, each 2 dots wide and 4 dots tall.
// Every cell remembers the highest layer drawn into it so callers can
// color it.
type Canvas struct {
	width, rows int
	cells       [][]rune
	layers      [][]Layer
}

// NewCanvas creates a blank canvas of width×rows character cells.
func NewCanvas(width, rows int) *Canvas {
	width, rows = max(width, 1), max(rows, 1)
	c := &Canvas{width: width, rows: rows}
	c.cells = make([][]rune, rows)
	c.layers = make([][]Layer, rows)
	for r := 0; r < rows; r++ {
		c.cells[r] = make([]rune, width)
		c.layers[r] = make([]Layer, width)
		for col := range c.cells[r] {
			c.cells[r][col] = brailleBlank
		}
	}
	return c
}

// DotSize returns the dot grid dimensions.
func (c *Canvas) DotSize() (cols, rows int) { return c.width * 2, c.rows * 4 }

// Set turns on the dot at (col, row); (0, 0) is the top-left dot.
// Dots outside the canvas are ignored.
func (c *Canvas) Set(col, row int, layer Layer) {
	dotCols, dotRows := c.DotSize()
	if col < 0 || col >= dotCols || row < 0 || row >= dotRows {
		return
	}
	charCol, charRow := col/2, row/4
	c.cells[charRow][charCol] |= brailleDots[col%2][row%4]
	if layer > c.layers[charRow][charCol] {
		c.layers[charRow][charCol] = layer
	}
}

// Line draws a straight segment between two dots (Bresenham). Endpoints
// are clamped to the canvas so the walk never leaves it.
func (c *Canvas) Line(c0, r0, c1, r1 int, layer Layer) {
	dotCols, dotRows := c.DotSize()
	c0, c1 = clamp(c0, 0, dotCols-1), clamp(c1, 0, dotCols-1)
	r0, r1 = clamp(r0, 0, dotRows-1), clamp(r1, 0, dotRows-1)
	dc := abs(c1 - c0)
	dr := -abs(r1 - r0)
	sc, sr := sign(c1-c0), sign(r1-r0)
	e := dc + dr
	for {
		c.Set(c0, r0, layer)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * e
		if e2 >= dr {
			e += dr
			c0 += sc
		}
		if e2 <= dc {
			e += dc
			r0 += sr
		}
	}
}

// Cell returns the character and owning layer at a character position.
func (c *Canvas) Cell(row, col int) (rune, Layer) {
	return c.cells[row][col], c.layers[row][col]
}

// Lines returns the canvas as plain strings, one per character row.
func (c *Canvas) Lines() []string {
	out := make([]string, c.rows)
	for r := range c.cells {
		out[r] = string(c.cells[r])
	}
	return out
}

// scale maps v from [lo, hi] onto [0, steps-1], rounding to the nearest dot.
// Values outside the range are clamped. Ranges wider than MaxFloat64 are
// handled by halving both operands.
func scale(v, lo, hi float64, steps int) int {
	if !(hi > lo) || steps < 1 {
		return 0
	}
	ratio := (v - lo) / (hi - lo)
	if math.IsInf(hi-lo, 0) {
		ratio = (v/2 - lo/2) / (hi/2 - lo/2)
	}
	if math.IsNaN(ratio) {
		return 0
	}
	ratio = math.Max(0, math.Min(1, ratio))
	return int(math.Round(ratio * float64(steps-1)))
}

// clamp limits n to [lo, hi].
func clamp(n, lo, hi int) int {
	return max(lo, min(n, hi))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
