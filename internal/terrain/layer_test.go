package terrain

import (
	"math/rand"
	"testing"
)

// minSource always returns the minimum draw. It pins every timer to the
// bottom of its range so single ticks become fully predictable.
type minSource struct{}

func (minSource) Intn(n int) int   { return 0 }
func (minSource) Float64() float64 { return 0 }

// stubRef is a hand-controlled reference view.
type stubRef struct {
	h int
	s Slope
	t TileType
}

func (r *stubRef) Height() int    { return r.h }
func (r *stubRef) Slope() Slope   { return r.s }
func (r *stubRef) Type() TileType { return r.t }

func minParams() Params {
	return Params{
		Height:       Range{Min: 2, Max: 10},
		HoldSurface:  Range{Min: 8, Max: 8},
		HoldBridge:   Range{Min: 2, Max: 2},
		HoldGap:      Range{Min: 2, Max: 2},
		SlopeWait:    Range{Min: 2, Max: 2},
		BridgeChance: 0,
		DecorWait:    Range{Min: 5, Max: 5},
	}
}

func fgParams() Params {
	return Params{
		Height:       Range{Min: 12, Max: 20},
		HoldSurface:  Range{Min: 8, Max: 24},
		HoldBridge:   Range{Min: 3, Max: 6},
		HoldGap:      Range{Min: 2, Max: 4},
		SlopeWait:    Range{Min: 2, Max: 12},
		BridgeChance: 0.33,
		DecorWait:    Range{Min: 6, Max: 18},
	}
}

func bgParams() Params {
	return Params{
		Height:       Range{Min: -9, Max: 0},
		HoldSurface:  Range{Min: 12, Max: 30},
		HoldBridge:   Range{Min: 3, Max: 5},
		HoldGap:      Range{Min: 2, Max: 3},
		SlopeWait:    Range{Min: 2, Max: 12},
		BridgeChance: 0,
		DecorWait:    Range{Min: 8, Max: 20},
	}
}

func TestNewLayerPanicsOnInvertedHeightRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("inverted height range should panic")
		}
	}()
	p := minParams()
	p.Height = Range{Min: 10, Max: 2}
	NewLayer(8, 5, p, minSource{})
}

func TestSetReferencePanics(t *testing.T) {
	t.Run("self reference", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("self reference should panic")
			}
		}()
		l := NewLayer(8, 5, minParams(), minSource{})
		l.SetReference(l)
	})

	t.Run("after generation", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("setting a reference after Advance should panic")
			}
		}()
		l := NewLayer(8, 5, bgParams(), minSource{})
		l.Advance(0)
		l.SetReference(&stubRef{h: 20, t: TypeSurface})
	})

	t.Run("reassignment", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("second SetReference should panic")
			}
		}()
		l := NewLayer(8, 5, bgParams(), minSource{})
		l.SetReference(&stubRef{h: 20, t: TypeSurface})
		l.SetReference(&stubRef{h: 20, t: TypeSurface})
	})
}

// Slope is only ever set on surface tiles; type transitions settle the
// slope first.
func TestSlopeImpliesSurface(t *testing.T) {
	src := rand.New(rand.NewSource(1))
	l := NewLayer(40, 16, fgParams(), src)

	ptr := 0
	for tick := 0; tick < 5000; tick++ {
		l.Advance(ptr)
		tile := l.Strip().At(ptr)
		if tile.Slope != SlopeFlat && tile.Type != TypeSurface {
			t.Fatalf("tick %d: %s tile with %s slope", tick, tile.Type, tile.Slope)
		}
		ptr = (ptr + 1) % l.Width()
	}
}

func TestForegroundHeightStaysInBand(t *testing.T) {
	src := rand.New(rand.NewSource(2))
	p := fgParams()
	l := NewLayer(40, 16, p, src)

	ptr := 0
	for tick := 0; tick < 5000; tick++ {
		l.Advance(ptr)
		if h := l.Height(); h < p.Height.Min || h > p.Height.Max {
			t.Fatalf("tick %d: height %d outside [%d, %d]", tick, h, p.Height.Min, p.Height.Max)
		}
		ptr = (ptr + 1) % l.Width()
	}
}

func TestBackgroundHeightTracksReference(t *testing.T) {
	src := rand.New(rand.NewSource(3))
	fp, bp := fgParams(), bgParams()
	fg := NewLayer(40, 16, fp, src)
	bg := NewLayer(40, 12, bp, src)
	bg.SetReference(fg)

	ptr := 0
	for tick := 0; tick < 5000; tick++ {
		// Foreground before background, so the background reads a
		// fully up-to-date reference.
		fg.Advance(ptr)
		bg.Advance(ptr)

		min := bp.Height.Min + fg.Height()
		max := bp.Height.Max + fg.Height()
		if h := bg.Height(); h < min || h > max {
			t.Fatalf("tick %d: background height %d outside [%d, %d] (ref %d)",
				tick, h, min, max, fg.Height())
		}
		ptr = (ptr + 1) % fg.Width()
	}
}

// A coupled layer within one row of its reference must begin ascending
// on the very next advance.
func TestCoupledAscentWhenTooClose(t *testing.T) {
	ref := &stubRef{h: 5, s: SlopeFlat, t: TypeSurface}
	l := NewLayer(10, 5, bgParams(), minSource{})
	l.SetReference(ref)

	l.Advance(0)
	if l.Slope() != SlopeAscending {
		t.Fatalf("expected forced ascent, got %s", l.Slope())
	}
	if l.Height() != 4 {
		t.Errorf("ascent should apply the height delta immediately, got %d", l.Height())
	}
	if tile := l.Strip().At(0); tile.Slope != SlopeAscending {
		t.Errorf("written tile should carry the ascent, got %s", tile.Slope)
	}
}

func TestCoupledAscentWiderMarginWhileReferenceAscends(t *testing.T) {
	// Two rows above a flat reference: far enough, no forced ascent.
	flat := &stubRef{h: 5, s: SlopeFlat, t: TypeSurface}
	l := NewLayer(10, 3, bgParams(), minSource{})
	l.SetReference(flat)
	l.Advance(0)
	if l.Slope() != SlopeFlat {
		t.Errorf("separation of 2 over a flat reference should not force a slope, got %s", l.Slope())
	}

	// Same separation over an ascending reference triggers the ascent.
	rising := &stubRef{h: 5, s: SlopeAscending, t: TypeSurface}
	l2 := NewLayer(10, 3, bgParams(), minSource{})
	l2.SetReference(rising)
	l2.Advance(0)
	if l2.Slope() != SlopeAscending {
		t.Errorf("separation of 2 under an ascending reference should force ascent, got %s", l2.Slope())
	}
}

// With every draw pinned to its minimum, a fresh layer writes the same
// surface tile it was initialized with: the hold timer starts above zero
// so no transition can fire on the first advance.
func TestFirstAdvanceKeepsUniformSurface(t *testing.T) {
	l := NewLayer(10, 2, minParams(), minSource{})
	l.Advance(0)

	got := l.Strip().At(0)
	want := Tile{Height: 2, Type: TypeSurface, Slope: SlopeFlat, Decoration: DecorNone}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

// With the bridge chance forced to 1.0 a surface run always ends in a
// bridge, never a gap, and bridge tiles stay flat.
func TestForcedBridgeTransition(t *testing.T) {
	p := minParams()
	p.HoldSurface = Range{Min: 2, Max: 2}
	p.BridgeChance = 1.0
	l := NewLayer(10, 5, p, minSource{})

	ptr := 0
	sawBridge := false
	for tick := 0; tick < 50; tick++ {
		l.Advance(ptr)
		tile := l.Strip().At(ptr)
		if tile.Type == TypeEmpty {
			t.Fatalf("tick %d: gap despite bridge chance 1.0", tick)
		}
		if tile.Type == TypeBridge {
			sawBridge = true
			if tile.Slope != SlopeFlat {
				t.Fatalf("tick %d: bridge tile with %s slope", tick, tile.Slope)
			}
		}
		ptr = (ptr + 1) % l.Width()
	}
	if !sawBridge {
		t.Error("expected at least one bridge transition")
	}
}

// With the bridge chance at zero a surface run ends in a gap; the layer
// counts the gap as closed when the surface resumes.
func TestGapRunAccounting(t *testing.T) {
	p := minParams()
	p.HoldSurface = Range{Min: 2, Max: 2}
	l := NewLayer(10, 5, p, minSource{})

	// Tick 1: plain surface. Tick 2: transition to empty with the
	// foreground height redrawn within ±2. Ticks 3-4: the gap runs
	// its hold of 2, then tick 4 transitions back to surface.
	for i := 0; i < 4; i++ {
		l.Advance(i)
	}

	if got := l.Strip().At(1); got.Type != TypeEmpty {
		t.Fatalf("expected gap at slot 1, got %s", got.Type)
	}
	if got := l.Strip().At(1).Height; got != 3 {
		t.Errorf("minimum redraw should lower the gap height by 2, got %d", got)
	}
	if got := l.Strip().At(3); got.Type != TypeSurface {
		t.Fatalf("expected surface at slot 3, got %s", got.Type)
	}
	if l.GapsClosed() != 1 {
		t.Errorf("expected 1 closed gap, got %d", l.GapsClosed())
	}
}

// A decoration is rejected while the coupled reference tile is a gap,
// even if the local conditions hold.
func TestDecorationRejectedOverReferenceGap(t *testing.T) {
	p := bgParams()
	p.DecorWait = Range{Min: 1, Max: 1}
	p.SlopeWait = Range{Min: 5, Max: 5}

	ref := &stubRef{h: 10, s: SlopeFlat, t: TypeEmpty}
	l := NewLayer(10, 2, p, minSource{})
	l.SetReference(ref)

	l.Advance(0)
	if got := l.Strip().At(0).Decoration; got != DecorNone {
		t.Fatalf("decoration must not be placed over a reference gap, got %v", got)
	}

	// The same attempt succeeds once the reference is solid again.
	ref.t = TypeSurface
	l.Advance(1)
	if got := l.Strip().At(1).Decoration; got != DecorPalm {
		t.Errorf("expected a palm once the reference is surface, got %v", got)
	}
}

func TestDecorationRequiresFlatSurface(t *testing.T) {
	p := minParams()
	p.DecorWait = Range{Min: 1, Max: 1}
	p.HoldSurface = Range{Min: 2, Max: 2}
	l := NewLayer(10, 5, p, minSource{})

	// Tick 2 transitions to a gap; no decoration may land on it.
	l.Advance(0)
	l.Advance(1)
	if got := l.Strip().At(1).Decoration; got != DecorNone {
		t.Errorf("gap tile must not carry a decoration, got %v", got)
	}
}

// Two identical seeds produce identical terrain: all randomness flows
// through the injected source.
func TestDeterministicGeneration(t *testing.T) {
	gen := func(seed int64) []Tile {
		src := rand.New(rand.NewSource(seed))
		fg := NewLayer(32, 16, fgParams(), src)
		bg := NewLayer(32, 12, bgParams(), src)
		bg.SetReference(fg)

		out := make([]Tile, 0, 400)
		ptr := 0
		for tick := 0; tick < 200; tick++ {
			fg.Advance(ptr)
			bg.Advance(ptr)
			out = append(out, fg.Strip().At(ptr), bg.Strip().At(ptr))
			ptr = (ptr + 1) % 32
		}
		return out
	}

	a, b := gen(42), gen(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tile %d diverged: %+v vs %+v", i, a[i], b[i])
		}
	}
}
