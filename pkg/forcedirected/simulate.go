package forcedirected

import (
	"github.com/dshills/layoutcore/pkg/fixedpoint"
	"github.com/dshills/layoutcore/pkg/graph"
)

// edgeEndpoints is the node-index pair an attraction force acts between,
// independent of the input edge's directedness (§4.8 treats every edge's
// spring force the same regardless of direction; direction only affects
// which end the IR eventually draws an arrowhead on).
type edgeEndpoints struct {
	from, to int
}

// Result is the outcome of one simulation run: final positions in
// Q16.16, and the iteration count actually performed (<= cfg.MaxIterations).
type Result struct {
	Positions  []fixedpoint.Vec2
	Iterations int
}

// Simulate runs the Fruchterman-Reingold loop to convergence or
// cfg.MaxIterations (§4.8): reset force accumulator, apply repulsion
// (exact or Barnes-Hut), apply symmetric spring/LinLog attraction per
// edge, optionally apply gravity, then move each node by its force
// clamped to the current temperature. Temperature decays by cfg.Decay
// each iteration; the loop stops early once the largest displacement in
// an iteration falls below cfg.MinDisplacement.
func Simulate(g graph.Query, cfg Config) Result {
	n := g.NodeCount()
	pos := InitPositions(n, cfg)
	if n == 0 {
		return Result{Positions: pos}
	}

	edges := make([]edgeEndpoints, 0, len(g.Edges()))
	for _, e := range g.Edges() {
		edges = append(edges, edgeEndpoints{from: e.From, to: e.To})
	}

	temperature := cfg.Spacing
	accum := make([]fixedpoint.Vec2, n)

	iterations := 0
	for iter := 0; iter < cfg.MaxIterations; iter++ {
		iterations = iter + 1
		for i := range accum {
			accum[i] = fixedpoint.Vec2{}
		}

		switch cfg.Repulsion {
		case BarnesHut:
			applyRepulsionBarnesHut(pos, cfg.Spacing, cfg.Theta, accum)
		default:
			applyRepulsionExact(pos, cfg.Spacing, accum)
		}

		applyAttraction(pos, edges, cfg.Spacing, cfg.Attraction, accum)
		applyGravity(pos, cfg.Gravity, accum)

		maxDisp := fixedpoint.ZERO
		for i := range pos {
			fx, fy := accum[i].X, accum[i].Y
			mag := fixedpoint.Dist(fx, fy)
			if mag > temperature {
				ux, uy := unitVector(fx, fy, mag)
				fx, fy = fixedpoint.Mul(ux, temperature), fixedpoint.Mul(uy, temperature)
				mag = temperature
			}
			pos[i].X = fixedpoint.Add(pos[i].X, fx)
			pos[i].Y = fixedpoint.Add(pos[i].Y, fy)
			if mag > maxDisp {
				maxDisp = mag
			}
		}

		temperature = fixedpoint.Mul(temperature, cfg.Decay)

		if maxDisp < cfg.MinDisplacement {
			break
		}
	}

	return Result{Positions: pos, Iterations: iterations}
}
