package terrain

// RefView is the read-only capability a background layer holds on its
// foreground reference. Getters only; the coupling never mutates the
// referenced layer.
type RefView interface {
	Height() int
	Slope() Slope
	Type() TileType
}

// Layer is one full ring of tiles plus the generator state that produces
// the next tile. A layer is constructed with a uniform initial strip and
// then mutated once per Advance call for the rest of the session.
type Layer struct {
	strip  *Strip
	params Params
	src    Source
	ref    RefView

	height        int
	typ           TileType
	slope         Slope
	lastSlope     Slope
	typeHold      int
	slopeWait     int
	slopeDuration int
	gapRun        int
	gapsClosed    int
	decorWait     int

	generated bool
}

// NewLayer creates a layer whose strip is uniformly filled with flat
// surface tiles at startHeight. The height band must not be inverted.
func NewLayer(width, startHeight int, p Params, src Source) *Layer {
	if p.Height.Min > p.Height.Max {
		panic("terrain: inverted height range")
	}
	l := &Layer{
		strip:  NewStrip(width),
		params: p,
		src:    src,
		height: startHeight,
		typ:    TypeSurface,
		slope:  SlopeFlat,
	}
	l.strip.Fill(Tile{Height: startHeight, Type: TypeSurface, Slope: SlopeFlat})
	l.typeHold = p.HoldSurface.draw(src)
	l.slopeWait = p.SlopeWait.draw(src)
	l.decorWait = p.DecorWait.draw(src)
	return l
}

// SetReference couples this layer to a foreground layer. It must be
// called at most once, before any tile has been generated.
func (l *Layer) SetReference(ref RefView) {
	if l.generated {
		panic("terrain: reference must be set before generation starts")
	}
	if l.ref != nil {
		panic("terrain: reference already set")
	}
	if ref == RefView(l) {
		panic("terrain: layer cannot reference itself")
	}
	l.ref = ref
}

// Strip returns the layer's ring buffer.
func (l *Layer) Strip() *Strip {
	return l.strip
}

// Width returns the ring size.
func (l *Layer) Width() int {
	return l.strip.Width()
}

// Height returns the active generation height in rows.
func (l *Layer) Height() int {
	return l.height
}

// Slope returns the active slope.
func (l *Layer) Slope() Slope {
	return l.slope
}

// Type returns the active tile type.
func (l *Layer) Type() TileType {
	return l.typ
}

// GapsClosed returns how many gap runs have finished so far. The driver
// diffs this between ticks to award gap bonuses.
func (l *Layer) GapsClosed() int {
	return l.gapsClosed
}

// Advance generates the next tile and writes it into the given slot.
// It runs the slope, type and decoration sub-generators in that order;
// all four tile fields are written atomically as one record.
func (l *Layer) Advance(slot int) {
	l.generated = true
	l.stepSlope()
	l.stepType()
	decor := l.stepDecoration()
	l.strip.Put(slot, Tile{
		Height:     l.height,
		Type:       l.typ,
		Slope:      l.slope,
		Decoration: decor,
	})
}

// heightBounds returns the valid height band, shifted by the reference
// layer's active height when one is set.
func (l *Layer) heightBounds() (int, int) {
	min, max := l.params.Height.Min, l.params.Height.Max
	if l.ref != nil {
		min += l.ref.Height()
		max += l.ref.Height()
	}
	if min > max {
		panic("terrain: inverted height range")
	}
	return min, max
}

func (l *Layer) clampHeight() {
	min, max := l.heightBounds()
	if l.height < min {
		l.height = min
	}
	if l.height > max {
		l.height = max
	}
}

func (l *Layer) stepSlope() {
	l.lastSlope = l.slope
	l.slopeDuration--
	if l.slopeDuration <= 0 {
		l.slope = SlopeFlat
	}
	if l.slopeWait > 0 {
		l.slopeWait--
	}

	if l.coupledAscent() {
		return
	}
	if l.typ == TypeSurface && l.typeHold >= 2 && l.slopeWait <= 0 {
		l.startSlope()
	}
	l.height += l.slope.delta()
	l.clampHeight()
}

// coupledAscent keeps a coupled ridge from sinking into the surface it
// backs: when the layer gets within one row of its reference (two rows
// while the reference ascends), it is forced into a one-tile ascent.
func (l *Layer) coupledAscent() bool {
	if l.ref == nil || l.typ != TypeSurface {
		return false
	}
	sep := l.ref.Height() - l.height
	limit := 1
	if l.ref.Slope() == SlopeAscending {
		limit = 2
	}
	if sep > limit {
		return false
	}
	l.slope = SlopeAscending
	l.slopeDuration = 1
	l.slopeWait = 2
	l.height += SlopeAscending.delta()
	l.typeHold++
	l.clampHeight()
	return true
}

func (l *Layer) startSlope() {
	dur := 1 + l.src.Intn(2)
	if lim := l.typeHold - 1; dur > lim {
		dur = lim
	}
	l.slopeWait = dur - 1 + l.params.SlopeWait.draw(l.src)

	dir := SlopeAscending
	if l.src.Intn(2) == 1 {
		dir = SlopeDescending
	}
	min, max := l.heightBounds()
	if proj := l.height + dir.delta()*dur; proj < min || proj > max {
		dir = dir.flip()
	}

	l.slope = dir
	l.slopeDuration = dur
	l.typeHold++
}

func (l *Layer) stepType() {
	if l.typ == TypeEmpty {
		l.gapRun++
	}
	l.typeHold--
	if l.typeHold > 0 || l.lastSlope != SlopeFlat {
		return
	}

	min, max := l.heightBounds()
	if l.typ != TypeSurface {
		if l.gapRun > 0 {
			l.gapsClosed++
		}
		l.typ = TypeSurface
		l.gapRun = 0
		if l.ref != nil {
			// Coupled ridges re-enter at a fresh height; the
			// foreground keeps continuity so gaps stay jumpable.
			l.height = min + l.src.Intn(max-min+1)
		}
	} else {
		if l.src.Float64() < l.params.BridgeChance {
			l.typ = TypeBridge
		} else {
			l.typ = TypeEmpty
			if l.ref == nil {
				h := l.height - 2 + l.src.Intn(5)
				if h < min {
					h = min
				}
				if h > max {
					h = max
				}
				l.height = h
			}
		}
	}

	// A transition implies the slope has settled.
	l.slope = SlopeFlat
	l.slopeDuration = 0
	l.typeHold = l.holdRange(l.typ).draw(l.src)
}

func (l *Layer) holdRange(t TileType) Range {
	switch t {
	case TypeBridge:
		return l.params.HoldBridge
	case TypeEmpty:
		return l.params.HoldGap
	default:
		return l.params.HoldSurface
	}
}

// stepDecoration returns the decoration for the tile being written.
// The countdown is re-armed with a fresh draw whether or not placement
// succeeds, so a rejected attempt does not cluster the next one.
func (l *Layer) stepDecoration() Decoration {
	l.decorWait--
	if l.decorWait > 0 {
		return DecorNone
	}
	l.decorWait = l.params.DecorWait.draw(l.src)

	if l.typ != TypeSurface || l.slope != SlopeFlat {
		return DecorNone
	}
	if l.ref != nil && l.ref.Type() == TypeEmpty {
		// Never float an ornament over a visible hole in the
		// coupled layer.
		return DecorNone
	}
	return DecorPalm
}
