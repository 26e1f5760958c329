package core

import (
	"strings"
)

// Cell is a single character cell with foreground and background colors.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// blank is the cell value used for cleared and out-of-bounds positions.
var blank = Cell{Rune: ' '}

// Screen is a 2D cell buffer for rendering game graphics.
// It decouples game rendering from the terminal: games draw runes and
// colors into the buffer, and the platform turns it into styled output.
type Screen struct {
	width  int
	height int
	cells  []Cell
}

// NewScreen creates a screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: width, height: height}
	s.cells = make([]Cell, width*height)
	s.Clear()
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	old := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.cells = make([]Cell, width*height)
	s.Clear()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y*width:y*width+copyW], old[y*oldW:y*oldW+copyW])
	}
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

// FillBg fills the entire screen with spaces on the given background color.
func (s *Screen) FillBg(bg Color) {
	for i := range s.cells {
		s.cells[i] = Cell{Rune: ' ', Bg: bg}
	}
}

// Set places a rune at the given position with default colors.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r})
}

// SetCell places a full cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y*s.width+x] = c
}

// Get returns the rune at the given position, space if out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position, blank if out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y*s.width+x]
}

// DrawText writes a string horizontally starting at (x, y) in the given
// foreground color. Characters beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg Color) {
	for i, r := range text {
		s.SetCell(x+i, y, Cell{Rune: r, Fg: fg})
	}
}

// DrawTextCentered draws text centered horizontally at the given row.
func (s *Screen) DrawTextCentered(y int, text string, fg Color) {
	x := (s.width - len(text)) / 2
	s.DrawText(x, y, text, fg)
}

// DrawRect fills a rectangular area with the given cell.
func (s *Screen) DrawRect(r Rect, c Cell) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.SetCell(x, y, c)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, fg Color) {
	s.SetCell(r.X, r.Y, Cell{Rune: '┌', Fg: fg})
	s.SetCell(r.Right()-1, r.Y, Cell{Rune: '┐', Fg: fg})
	s.SetCell(r.X, r.Bottom()-1, Cell{Rune: '└', Fg: fg})
	s.SetCell(r.Right()-1, r.Bottom()-1, Cell{Rune: '┘', Fg: fg})

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetCell(x, r.Y, Cell{Rune: '─', Fg: fg})
		s.SetCell(x, r.Bottom()-1, Cell{Rune: '─', Fg: fg})
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetCell(r.X, y, Cell{Rune: '│', Fg: fg})
		s.SetCell(r.Right()-1, y, Cell{Rune: '│', Fg: fg})
	}
}

// DrawRegion blits a rectangular region of a sprite sheet onto the screen.
// (srcX, srcY) is the top-left of the region inside the sheet, (destX, destY)
// the top-left on screen. Transparent sheet cells leave the screen untouched.
// Regions reaching outside the sheet or the screen are clipped.
func (s *Screen) DrawRegion(sheet *Sheet, destX, destY, srcX, srcY, w, h int) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			r, ok := sheet.At(srcX+dx, srcY+dy)
			if !ok {
				continue
			}
			s.SetCell(destX+dx, destY+dy, Cell{Rune: r, Fg: sheet.Fg, Bg: sheet.Bg})
		}
	}
}

// String converts the screen buffer to a plain string, one row per line,
// dropping all color information. Used by tests and screenshots.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y*s.width+x].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a plain string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	sb.Grow(s.width)
	for x := 0; x < s.width; x++ {
		sb.WriteRune(s.cells[y*s.width+x].Rune)
	}
	return sb.String()
}
