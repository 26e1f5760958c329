package terrain

import (
	"reflect"
	"testing"
)

// collector records every segment handed to it.
type collector struct {
	x    float64
	segs []FloorSegment
}

func (c *collector) X() float64                  { return c.x }
func (c *collector) ResolveFloor(s FloorSegment) { c.segs = append(c.segs, s) }

func probeStrip() *Strip {
	s := NewStrip(12)
	s.Fill(Tile{Height: 5, Type: TypeSurface, Slope: SlopeFlat})
	s.Put(4, Tile{Height: 5, Type: TypeEmpty})
	s.Put(5, Tile{Height: 5, Type: TypeEmpty})
	s.Put(6, Tile{Height: 4, Type: TypeSurface, Slope: SlopeAscending})
	s.Put(7, Tile{Height: 5, Type: TypeSurface, Slope: SlopeDescending})
	s.Put(8, Tile{Height: 5, Type: TypeBridge})
	return s
}

// actorAtTile positions an actor over the center of the given tile index
// for a probe with the same metrics.
func actorAtTile(idx, tileW, shift int) *collector {
	return &collector{x: float64(idx*tileW+ScreenShiftX+shift) + float64(tileW)/2}
}

func TestProbeSkipsEmptyTiles(t *testing.T) {
	p := NewProbe(probeStrip(), 2, 1, 0)
	a := actorAtTile(4, 2, 0)
	p.Scan(0, 0, 1.5, a)

	// Window is tiles 2..6; tiles 4 and 5 are empty.
	if len(a.segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(a.segs))
	}
}

func TestProbeSegmentGeometry(t *testing.T) {
	p := NewProbe(probeStrip(), 2, 1, 0)
	a := actorAtTile(6, 2, 0)
	p.Scan(0, 0, 2.0, a)

	// Window 4..8: empty, empty, ascending, descending, bridge.
	if len(a.segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(a.segs))
	}

	asc := a.segs[0]
	wantX0 := float64(6*2 + ScreenShiftX)
	if asc.X0 != wantX0 || asc.X1 != wantX0+2 {
		t.Errorf("ascending X span [%v, %v], want [%v, %v]", asc.X0, asc.X1, wantX0, wantX0+2)
	}
	// Ascending ground rises left-to-right toward the tile's height.
	if asc.Y0 != 5 || asc.Y1 != 4 {
		t.Errorf("ascending Y span [%v, %v], want [5, 4]", asc.Y0, asc.Y1)
	}
	if !asc.OpenLeft || asc.OpenRight {
		t.Errorf("ascending open flags left=%v right=%v, want left only", asc.OpenLeft, asc.OpenRight)
	}
	if asc.Speed != 2.0 {
		t.Errorf("segment should carry the scroll speed, got %v", asc.Speed)
	}

	desc := a.segs[1]
	if desc.Y0 != 4 || desc.Y1 != 5 {
		t.Errorf("descending Y span [%v, %v], want [4, 5]", desc.Y0, desc.Y1)
	}

	bridge := a.segs[2]
	if bridge.Y0 != 5 || bridge.Y1 != 5 {
		t.Errorf("bridge Y span [%v, %v], want [5, 5]", bridge.Y0, bridge.Y1)
	}
}

func TestProbeScrollShiftsSegments(t *testing.T) {
	p := NewProbe(probeStrip(), 2, 1, 0)

	a := actorAtTile(2, 2, 0)
	p.Scan(0, 0, 1, a)

	b := &collector{x: a.x}
	p.Scan(0, 0.5, 1, b)

	if len(a.segs) == 0 || len(a.segs) != len(b.segs) {
		t.Fatalf("segment counts differ: %d vs %d", len(a.segs), len(b.segs))
	}
	if got := a.segs[0].X0 - b.segs[0].X0; got != 0.5 {
		t.Errorf("scroll of 0.5 should shift segments left by 0.5, got %v", got)
	}
}

// Repeated scans over a fixed ring report identical segments and leave
// the ring untouched.
func TestProbeDeterministicAndReadOnly(t *testing.T) {
	s := probeStrip()
	before := make([]Tile, s.Width())
	for i := range before {
		before[i] = s.At(i)
	}

	p := NewProbe(s, 2, 1, 0)
	a := actorAtTile(6, 2, 0)
	b := actorAtTile(6, 2, 0)
	p.Scan(3, 0.25, 1.5, a)
	p.Scan(3, 0.25, 1.5, b)

	if !reflect.DeepEqual(a.segs, b.segs) {
		t.Errorf("repeated scans diverged:\n%+v\n%+v", a.segs, b.segs)
	}
	for i := range before {
		if s.At(i) != before[i] {
			t.Errorf("scan mutated slot %d", i)
		}
	}
}

func TestProbeWindowWrapsRing(t *testing.T) {
	s := NewStrip(6)
	s.Fill(Tile{Height: 3, Type: TypeSurface})
	p := NewProbe(s, 2, 1, 0)

	// An actor near the window start pulls neighbors from the other
	// end of the ring without panicking.
	a := actorAtTile(0, 2, 0)
	p.Scan(4, 0, 1, a)
	if len(a.segs) != 5 {
		t.Errorf("expected 5 segments over a solid ring, got %d", len(a.segs))
	}
}
