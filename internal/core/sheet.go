package core

// Transparent is the rune that marks see-through cells in a sprite sheet.
const Transparent = '.'

// Sheet is a sprite sheet: a rectangular rune grid from which DrawRegion
// blits sub-rectangles. Rows shorter than the widest row are padded with
// transparent cells, so sheets can be written as ragged string literals.
type Sheet struct {
	Fg   Color
	Bg   Color
	grid [][]rune
	w    int
	h    int
}

// NewSheet builds a sheet from one string per row.
// Cells equal to Transparent are skipped when blitting.
func NewSheet(rows []string, fg, bg Color) *Sheet {
	grid := make([][]rune, len(rows))
	w := 0
	for i, row := range rows {
		grid[i] = []rune(row)
		if len(grid[i]) > w {
			w = len(grid[i])
		}
	}
	return &Sheet{Fg: fg, Bg: bg, grid: grid, w: w, h: len(rows)}
}

// Width returns the sheet width in cells.
func (sh *Sheet) Width() int {
	return sh.w
}

// Height returns the sheet height in cells.
func (sh *Sheet) Height() int {
	return sh.h
}

// At returns the rune at (x, y) and whether it is drawable.
// Out-of-range and transparent cells report ok=false.
func (sh *Sheet) At(x, y int) (r rune, ok bool) {
	if y < 0 || y >= sh.h || x < 0 {
		return 0, false
	}
	row := sh.grid[y]
	if x >= len(row) {
		return 0, false
	}
	if row[x] == Transparent {
		return 0, false
	}
	return row[x], true
}
