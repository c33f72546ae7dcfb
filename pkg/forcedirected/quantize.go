package forcedirected

import "github.com/dshills/layoutcore/pkg/fixedpoint"

// normalize shifts positions so the minimum x/y equal margin (§4.8:
// "shift positions so min x/y equal a configured margin"), returning the
// shifted positions and the resulting bounding width/height.
func normalize(pos []fixedpoint.Vec2, margin fixedpoint.Scalar) (shifted []fixedpoint.Vec2, width, height fixedpoint.Scalar) {
	if len(pos) == 0 {
		return pos, 0, 0
	}

	minX, maxX := pos[0].X, pos[0].X
	minY, maxY := pos[0].Y, pos[0].Y
	for _, p := range pos[1:] {
		minX = fixedpoint.Min(minX, p.X)
		maxX = fixedpoint.Max(maxX, p.X)
		minY = fixedpoint.Min(minY, p.Y)
		maxY = fixedpoint.Max(maxY, p.Y)
	}

	dx := fixedpoint.Sub(margin, minX)
	dy := fixedpoint.Sub(margin, minY)

	shifted = make([]fixedpoint.Vec2, len(pos))
	for i, p := range pos {
		shifted[i] = fixedpoint.Vec2{X: fixedpoint.Add(p.X, dx), Y: fixedpoint.Add(p.Y, dy)}
	}

	width = fixedpoint.Add(fixedpoint.Sub(maxX, minX), fixedpoint.Mul(margin, fixedpoint.FromInt(2)))
	height = fixedpoint.Add(fixedpoint.Sub(maxY, minY), fixedpoint.Mul(margin, fixedpoint.FromInt(2)))
	return shifted, width, height
}

// quantizedPoint is an integer grid cell.
type quantizedPoint struct {
	X, Y int
}

// quantize maps Q16.16 positions into integer grid cells (§4.8): pick a
// scale so the bounding box maps onto the target dimensions, round to
// nearest, then nudge any colliding cell one step right until it is free
// (deterministic tie-break: lowest node index keeps its cell).
func quantize(pos []fixedpoint.Vec2, width, height fixedpoint.Scalar, gridWidth, gridHeight int) []quantizedPoint {
	out := make([]quantizedPoint, len(pos))
	if len(pos) == 0 {
		return out
	}

	scaleX := fixedpoint.ONE
	if width > 0 && gridWidth > 0 {
		scaleX = fixedpoint.Div(fixedpoint.FromInt(gridWidth), width)
	}
	scaleY := fixedpoint.ONE
	if height > 0 && gridHeight > 0 {
		scaleY = fixedpoint.Div(fixedpoint.FromInt(gridHeight), height)
	}

	occupied := make(map[quantizedPoint]bool, len(pos))
	for i, p := range pos {
		qx := roundToInt(fixedpoint.Mul(p.X, scaleX))
		qy := roundToInt(fixedpoint.Mul(p.Y, scaleY))
		cell := quantizedPoint{X: qx, Y: qy}
		for occupied[cell] {
			cell.X++
		}
		occupied[cell] = true
		out[i] = cell
	}
	return out
}

// roundToInt rounds a Q16.16 value to the nearest integer.
func roundToInt(s fixedpoint.Scalar) int {
	half := fixedpoint.Scalar(1 << 15)
	if s >= 0 {
		return int(fixedpoint.Add(s, half)) >> 16
	}
	return -(int(fixedpoint.Add(fixedpoint.Neg(s), half)) >> 16)
}
