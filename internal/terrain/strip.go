package terrain

// Strip is a fixed-width circular buffer of tiles. It never grows: new
// tiles overwrite the oldest slot as the ring pointer advances, making
// the buffer a sliding window over an unbounded procedural stream.
type Strip struct {
	width int
	tiles []Tile
}

// NewStrip creates a strip of the given width. Width must be positive.
func NewStrip(width int) *Strip {
	if width <= 0 {
		panic("terrain: strip width must be positive")
	}
	return &Strip{width: width, tiles: make([]Tile, width)}
}

// Width returns the ring size.
func (s *Strip) Width() int {
	return s.width
}

// wrap maps any index, including negative ones, onto a valid slot.
func (s *Strip) wrap(i int) int {
	i %= s.width
	if i < 0 {
		i += s.width
	}
	return i
}

// At returns the tile at the wrapped index.
func (s *Strip) At(i int) Tile {
	return s.tiles[s.wrap(i)]
}

// Put writes a full tile record into the wrapped slot.
func (s *Strip) Put(i int, t Tile) {
	s.tiles[s.wrap(i)] = t
}

// Fill writes the same tile into every slot.
func (s *Strip) Fill(t Tile) {
	for i := range s.tiles {
		s.tiles[i] = t
	}
}
