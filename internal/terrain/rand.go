package terrain

// Source supplies the random draws the generator consumes. *math/rand.Rand
// satisfies it; tests substitute fixed-sequence sources for reproducible
// terrain.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Range is an inclusive integer interval used for timer draws.
type Range struct {
	Min int
	Max int
}

// draw returns a uniform value in [r.Min, r.Max].
func (r Range) draw(src Source) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + src.Intn(r.Max-r.Min+1)
}
