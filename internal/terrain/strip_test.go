package terrain

import "testing"

func TestNewStripPanicsOnBadWidth(t *testing.T) {
	for _, w := range []int{0, -3} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("width %d should panic", w)
				}
			}()
			NewStrip(w)
		}()
	}
}

func TestStripWrapAround(t *testing.T) {
	s := NewStrip(5)
	s.Put(7, Tile{Height: 3, Type: TypeSurface})

	if got := s.At(2); got.Height != 3 || got.Type != TypeSurface {
		t.Errorf("Put(7) should land in slot 2, got %+v", got)
	}
	if got := s.At(-3); got.Height != 3 {
		t.Errorf("At(-3) should read slot 2, got %+v", got)
	}
	if got := s.At(12); got.Height != 3 {
		t.Errorf("At(12) should read slot 2, got %+v", got)
	}
}

func TestStripFill(t *testing.T) {
	s := NewStrip(4)
	s.Fill(Tile{Height: 6, Type: TypeSurface, Slope: SlopeFlat})
	for i := 0; i < 4; i++ {
		if got := s.At(i); got.Height != 6 || got.Type != TypeSurface {
			t.Errorf("slot %d not filled: %+v", i, got)
		}
	}
}

// Advancing exactly width times returns the pointer to its start and
// overwrites every slot exactly once.
func TestRingWriteCoverage(t *testing.T) {
	const width = 8
	l := NewLayer(width, 5, minParams(), minSource{})

	// Sentinel heights mark slots that have not been rewritten.
	for i := 0; i < width; i++ {
		l.Strip().Put(i, Tile{Height: -999, Type: TypeSurface})
	}

	ptr := 0
	for i := 0; i < width; i++ {
		l.Advance(ptr)
		ptr = (ptr + 1) % width
	}
	if ptr != 0 {
		t.Errorf("pointer should wrap back to 0, got %d", ptr)
	}
	for i := 0; i < width; i++ {
		if l.Strip().At(i).Height == -999 {
			t.Errorf("slot %d was never written", i)
		}
	}
}
