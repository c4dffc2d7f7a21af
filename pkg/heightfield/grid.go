package heightfield

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Index returns the row-major lattice index of (x, y) for a grid of the given height.
func Index(x, y, height int) int {
	return x*(height+1) + y
}

// LatticeSize returns the number of lattice points of a width x height grid.
// Degenerate grids have none.
func LatticeSize(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return (width + 1) * (height + 1)
}

// Grid evaluates every lattice point of the synthesizer's grid.
func (s *Synthesizer) Grid() []float64 {
	w, h := s.params.Width, s.params.Height
	out := make([]float64, LatticeSize(w, h))
	if len(out) == 0 {
		return out
	}
	for x := 0; x <= w; x++ {
		s.fillColumn(out, x)
	}
	return out
}

// GridParallel is Grid split across columns. Output is identical to Grid.
func (s *Synthesizer) GridParallel() []float64 {
	w, h := s.params.Width, s.params.Height
	out := make([]float64, LatticeSize(w, h))
	if len(out) == 0 {
		return out
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for x := 0; x <= w; x++ {
		x := x
		g.Go(func() error {
			s.fillColumn(out, x)
			return nil
		})
	}
	_ = g.Wait() // workers never fail
	return out
}

// fillColumn writes lattice column x; columns never overlap.
func (s *Synthesizer) fillColumn(out []float64, x int) {
	h := s.params.Height
	base := Index(x, 0, h)
	for y := 0; y <= h; y++ {
		out[base+y] = s.At(float64(x), float64(y))
	}
}

// Range returns the minimum and maximum of heights. Empty input yields zeros.
func Range(heights []float64) (lo, hi float64) {
	if len(heights) == 0 {
		return 0, 0
	}
	lo, hi = heights[0], heights[0]
	for _, v := range heights[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
