package forcedirected

import "github.com/dshills/layoutcore/pkg/fixedpoint"

// minSeparation is the distance floor below which repulsion is skipped to
// avoid a near-zero divisor (§4.8: "d < 2 skip" for both the exact and
// Barnes-Hut force walks).
var minSeparation = fixedpoint.FromInt(2)

// unitVector returns (dx/d, dy/d) in Q16.16, or (0,0) if d is zero.
func unitVector(dx, dy, d fixedpoint.Scalar) (fixedpoint.Scalar, fixedpoint.Scalar) {
	if d == 0 {
		return 0, 0
	}
	return fixedpoint.Div(dx, d), fixedpoint.Div(dy, d)
}

// applyRepulsionExact computes O(V^2) pairwise repulsion: force magnitude
// k^2/d along the unit vector from j to i, applied symmetrically (§4.8).
func applyRepulsionExact(pos []fixedpoint.Vec2, k fixedpoint.Scalar, accum []fixedpoint.Vec2) {
	kSquared := fixedpoint.Mul(k, k)
	for i := 0; i < len(pos); i++ {
		for j := i + 1; j < len(pos); j++ {
			dx := fixedpoint.Sub(pos[i].X, pos[j].X)
			dy := fixedpoint.Sub(pos[i].Y, pos[j].Y)
			d := fixedpoint.Dist(dx, dy)
			if d < minSeparation {
				continue
			}
			mag := fixedpoint.Div(kSquared, d)
			ux, uy := unitVector(dx, dy, d)
			fx, fy := fixedpoint.Mul(ux, mag), fixedpoint.Mul(uy, mag)
			accum[i].X = fixedpoint.Add(accum[i].X, fx)
			accum[i].Y = fixedpoint.Add(accum[i].Y, fy)
			accum[j].X = fixedpoint.Sub(accum[j].X, fx)
			accum[j].Y = fixedpoint.Sub(accum[j].Y, fy)
		}
	}
}

// applyRepulsionBarnesHut approximates repulsion in O(V log V) via a
// quadtree force walk (§4.8): at each node compute d to its center of
// mass; skip if d < 2; treat as a point mass if leaf or cell_size < theta*d;
// otherwise recurse into children.
func applyRepulsionBarnesHut(pos []fixedpoint.Vec2, k, theta fixedpoint.Scalar, accum []fixedpoint.Vec2) {
	root := buildQuadtree(pos)
	if root == nil {
		return
	}
	kSquared := fixedpoint.Mul(k, k)
	for i, p := range pos {
		fx, fy := walkQuadtree(root, p, kSquared, theta)
		accum[i].X = fixedpoint.Add(accum[i].X, fx)
		accum[i].Y = fixedpoint.Add(accum[i].Y, fy)
	}
}

func walkQuadtree(q *quadNode, query fixedpoint.Vec2, kSquared, theta fixedpoint.Scalar) (fixedpoint.Scalar, fixedpoint.Scalar) {
	if q == nil || q.mass == 0 {
		return 0, 0
	}
	com := q.centerOfMass()
	dx := fixedpoint.Sub(query.X, com.X)
	dy := fixedpoint.Sub(query.Y, com.Y)
	d := fixedpoint.Dist(dx, dy)
	if d < minSeparation {
		return 0, 0
	}

	cellSize := fixedpoint.Mul(q.halfSize, fixedpoint.FromInt(2))
	if q.isLeaf() || fixedpoint.Mul(theta, d) > cellSize {
		mag := fixedpoint.Div(fixedpoint.Mul(kSquared, fixedpoint.FromInt(q.mass)), d)
		ux, uy := unitVector(dx, dy, d)
		return fixedpoint.Mul(ux, mag), fixedpoint.Mul(uy, mag)
	}

	var fx, fy fixedpoint.Scalar
	for _, c := range q.children {
		cfx, cfy := walkQuadtree(c, query, kSquared, theta)
		fx = fixedpoint.Add(fx, cfx)
		fy = fixedpoint.Add(fy, cfy)
	}
	return fx, fy
}

// applyAttraction walks the edge list once and applies symmetric spring
// (or LinLog) attraction between each edge's endpoints (§4.8): "for each
// node u iterate children(u)" is equivalent to this single pass over
// edges since every edge, directed or not, is stored once in insertion
// order and contributes exactly once.
func applyAttraction(pos []fixedpoint.Vec2, edges []edgeEndpoints, k fixedpoint.Scalar, variant AttractionVariant, accum []fixedpoint.Vec2) {
	for _, e := range edges {
		u, v := e.from, e.to
		if v == u {
			continue
		}

		dx := fixedpoint.Sub(pos[v].X, pos[u].X)
		dy := fixedpoint.Sub(pos[v].Y, pos[u].Y)
		d := fixedpoint.Dist(dx, dy)
		if d == 0 {
			continue
		}

		var mag fixedpoint.Scalar
		switch variant {
		case LinLog:
			// log(1+d) ~= 2d/(2+d), per §4.8.
			mag = fixedpoint.Div(fixedpoint.Mul(fixedpoint.FromInt(2), d), fixedpoint.Add(fixedpoint.FromInt(2), d))
		default:
			mag = fixedpoint.Div(d, k)
		}

		ux, uy := unitVector(dx, dy, d)
		fx, fy := fixedpoint.Mul(ux, mag), fixedpoint.Mul(uy, mag)
		accum[u].X = fixedpoint.Add(accum[u].X, fx)
		accum[u].Y = fixedpoint.Add(accum[u].Y, fy)
		accum[v].X = fixedpoint.Sub(accum[v].X, fx)
		accum[v].Y = fixedpoint.Sub(accum[v].Y, fy)
	}
}

// applyGravity pulls every node toward cfg's configured centre (§4.8).
func applyGravity(pos []fixedpoint.Vec2, cfg GravityConfig, accum []fixedpoint.Vec2) {
	if !cfg.Enabled {
		return
	}
	for i, p := range pos {
		dx := fixedpoint.Sub(cfg.CenterX, p.X)
		dy := fixedpoint.Sub(cfg.CenterY, p.Y)
		d := fixedpoint.Dist(dx, dy)
		if d == 0 {
			continue
		}

		var fx, fy fixedpoint.Scalar
		switch cfg.Mode {
		case GravityStrong:
			ux, uy := unitVector(dx, dy, d)
			fx, fy = fixedpoint.Mul(ux, cfg.Strength), fixedpoint.Mul(uy, cfg.Strength)
		default:
			fx = fixedpoint.Mul(dx, cfg.Strength)
			fy = fixedpoint.Mul(dy, cfg.Strength)
		}
		accum[i].X = fixedpoint.Add(accum[i].X, fx)
		accum[i].Y = fixedpoint.Add(accum[i].Y, fy)
	}
}
