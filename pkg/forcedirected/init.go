package forcedirected

import (
	"github.com/dshills/layoutcore/pkg/fixedpoint"
	"github.com/dshills/layoutcore/pkg/rng"
)

// isqrtCeil returns the smallest integer r such that r*r >= n.
func isqrtCeil(n int) int {
	if n <= 0 {
		return 0
	}
	r := 1
	for r*r < n {
		r++
	}
	return r
}

// InitPositions builds the starting position for every node per cfg.Init
// (§4.8): grid places nodes on a ceil(sqrt(n)) square with cfg.Spacing
// gaps; grid_jitter additionally displaces each node by a seeded
// pseudo-random offset in [-spacing/4, +spacing/4] on each axis so that a
// given seed reproduces identical positions on every platform.
func InitPositions(n int, cfg Config) []fixedpoint.Vec2 {
	positions := make([]fixedpoint.Vec2, n)
	side := isqrtCeil(n)
	if side == 0 {
		return positions
	}

	var gen *rng.RNG
	if cfg.Init == InitGridJitter {
		gen = rng.New(cfg.Seed)
	}

	quarter := fixedpoint.Div(cfg.Spacing, fixedpoint.FromInt(4))

	for i := 0; i < n; i++ {
		row := i / side
		col := i % side
		x := fixedpoint.Mul(fixedpoint.FromInt(col), cfg.Spacing)
		y := fixedpoint.Mul(fixedpoint.FromInt(row), cfg.Spacing)

		if gen != nil {
			x = fixedpoint.Add(x, jitter(gen, quarter))
			y = fixedpoint.Add(y, jitter(gen, quarter))
		}

		positions[i] = fixedpoint.Vec2{X: x, Y: y}
	}
	return positions
}

// jitter draws a uniform displacement in [-quarter, +quarter].
func jitter(gen *rng.RNG, quarter fixedpoint.Scalar) fixedpoint.Scalar {
	span := int(quarter) * 2
	if span <= 0 {
		return 0
	}
	offset := gen.Intn(span+1) - int(quarter)
	return fixedpoint.Scalar(offset)
}
