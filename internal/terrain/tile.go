// Package terrain implements the procedural ground strip of the runner:
// a ring-buffered window of tiles that is regenerated ahead of the camera,
// decorated, rendered, and probed for floor collisions. Two layers run in
// parallel (collidable foreground, parallax background) sharing the
// algorithm but differing in generation parameters.
package terrain

// TileType classifies a tile: solid ground, a crossable bridge, or a gap.
type TileType int

const (
	TypeEmpty TileType = iota
	TypeSurface
	TypeBridge
)

// String returns a human-readable name for the tile type.
func (t TileType) String() string {
	switch t {
	case TypeEmpty:
		return "empty"
	case TypeSurface:
		return "surface"
	case TypeBridge:
		return "bridge"
	default:
		return "unknown"
	}
}

// Slope is the ground direction across one tile. It is only meaningful
// on surface tiles.
type Slope int

const (
	SlopeFlat Slope = iota
	SlopeAscending
	SlopeDescending
)

// delta returns the signed row change one tile of this slope applies.
// Heights are screen rows, so ascending terrain decreases the value.
func (s Slope) delta() int {
	switch s {
	case SlopeAscending:
		return -1
	case SlopeDescending:
		return 1
	default:
		return 0
	}
}

// flip returns the opposite direction. Flat flips to itself.
func (s Slope) flip() Slope {
	switch s {
	case SlopeAscending:
		return SlopeDescending
	case SlopeDescending:
		return SlopeAscending
	default:
		return SlopeFlat
	}
}

// String returns a human-readable name for the slope.
func (s Slope) String() string {
	switch s {
	case SlopeFlat:
		return "flat"
	case SlopeAscending:
		return "ascending"
	case SlopeDescending:
		return "descending"
	default:
		return "unknown"
	}
}

// Decoration is an ornament anchored to a tile.
type Decoration int

const (
	DecorNone Decoration = iota
	DecorPalm
)

// Tile is one discrete horizontal unit of ground state. Height is the
// screen row of the tile top in tile units; larger means lower on screen.
type Tile struct {
	Height     int
	Type       TileType
	Slope      Slope
	Decoration Decoration
}
