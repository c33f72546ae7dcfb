package forcedirected

import "github.com/dshills/layoutcore/pkg/fixedpoint"

// maxQuadDepth bounds quadtree recursion (§4.8: MAX_DEPTH=24). Once
// reached, a leaf accumulates bodies instead of subdividing further,
// which only matters for exactly-coincident positions.
const maxQuadDepth = 24

// body is one point mass tracked by the quadtree.
type body struct {
	pos fixedpoint.Vec2
	idx int
}

// quadNode is a node of the Barnes-Hut quadtree: either an empty node, a
// leaf holding one or more bodies, or an internal node with four
// children and an aggregate mass/center-of-mass.
type quadNode struct {
	cx, cy   fixedpoint.Scalar // bounding square center
	halfSize fixedpoint.Scalar

	children [4]*quadNode // NW, NE, SW, SE; nil until subdivided
	bodies   []body       // non-nil only for leaves

	mass int // body count under this node
	sumX fixedpoint.Scalar
	sumY fixedpoint.Scalar
}

// centerOfMass returns the running weighted average position (§4.8). The
// sum is kept exactly (integer count, saturating Scalar sum) and divided
// down only on read, avoiding compounding rounding error on every insert.
func (q *quadNode) centerOfMass() fixedpoint.Vec2 {
	if q.mass == 0 {
		return fixedpoint.Vec2{}
	}
	n := fixedpoint.FromInt(q.mass)
	return fixedpoint.Vec2{X: fixedpoint.Div(q.sumX, n), Y: fixedpoint.Div(q.sumY, n)}
}

// buildQuadtree constructs a Barnes-Hut quadtree over the given
// positions, with a square bounding box 10%-inflated around the
// position bounding box (§4.8).
func buildQuadtree(positions []fixedpoint.Vec2) *quadNode {
	if len(positions) == 0 {
		return nil
	}

	minX, maxX := positions[0].X, positions[0].X
	minY, maxY := positions[0].Y, positions[0].Y
	for _, p := range positions[1:] {
		minX = fixedpoint.Min(minX, p.X)
		maxX = fixedpoint.Max(maxX, p.X)
		minY = fixedpoint.Min(minY, p.Y)
		maxY = fixedpoint.Max(maxY, p.Y)
	}

	width := fixedpoint.Sub(maxX, minX)
	height := fixedpoint.Sub(maxY, minY)
	span := fixedpoint.Max(width, height)
	if span <= 0 {
		span = fixedpoint.FromInt(1)
	}
	span = fixedpoint.Mul(span, fixedpoint.FromFloat(1.1))

	cx := fixedpoint.Div(fixedpoint.Add(minX, maxX), fixedpoint.FromInt(2))
	cy := fixedpoint.Div(fixedpoint.Add(minY, maxY), fixedpoint.FromInt(2))
	half := fixedpoint.Div(span, fixedpoint.FromInt(2))
	if half <= 0 {
		half = fixedpoint.FromInt(1)
	}

	root := &quadNode{cx: cx, cy: cy, halfSize: half}
	for i, p := range positions {
		root.insert(body{pos: p, idx: i}, 0)
	}
	return root
}

// insert recursively adds b to the subtree, subdividing a single-body
// leaf into four children on a second arrival (§4.8).
func (q *quadNode) insert(b body, depth int) {
	q.mass++
	q.sumX = fixedpoint.Add(q.sumX, b.pos.X)
	q.sumY = fixedpoint.Add(q.sumY, b.pos.Y)

	if q.children[0] == nil {
		if len(q.bodies) == 0 {
			q.bodies = []body{b}
			return
		}
		if depth >= maxQuadDepth {
			q.bodies = append(q.bodies, b)
			return
		}
		// Subdivide: re-insert the existing leaf bodies plus the new one.
		existing := q.bodies
		q.bodies = nil
		q.subdivide()
		for _, e := range existing {
			q.childFor(e.pos).insert(e, depth+1)
		}
		q.childFor(b.pos).insert(b, depth+1)
		return
	}

	q.childFor(b.pos).insert(b, depth+1)
}

func (q *quadNode) subdivide() {
	half := fixedpoint.Div(q.halfSize, fixedpoint.FromInt(2))
	q.children[0] = &quadNode{cx: fixedpoint.Sub(q.cx, half), cy: fixedpoint.Sub(q.cy, half), halfSize: half} // NW
	q.children[1] = &quadNode{cx: fixedpoint.Add(q.cx, half), cy: fixedpoint.Sub(q.cy, half), halfSize: half} // NE
	q.children[2] = &quadNode{cx: fixedpoint.Sub(q.cx, half), cy: fixedpoint.Add(q.cy, half), halfSize: half} // SW
	q.children[3] = &quadNode{cx: fixedpoint.Add(q.cx, half), cy: fixedpoint.Add(q.cy, half), halfSize: half} // SE
}

func (q *quadNode) childFor(p fixedpoint.Vec2) *quadNode {
	west := p.X < q.cx
	north := p.Y < q.cy
	switch {
	case north && west:
		return q.children[0]
	case north && !west:
		return q.children[1]
	case !north && west:
		return q.children[2]
	default:
		return q.children[3]
	}
}

// isLeaf reports whether q has no subdivided children.
func (q *quadNode) isLeaf() bool {
	return q.children[0] == nil
}
