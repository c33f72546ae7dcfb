package sugiyama

import (
	"math"

	"github.com/dshills/layoutcore/pkg/graph"
)

// LayeringAlgorithm selects how level[] is computed (§4.3).
type LayeringAlgorithm int

const (
	LongestPath LayeringAlgorithm = iota
	NetworkSimplex
	NetworkSimplexFast
)

// effectiveEdge is a (source, target) pair after the cycle-break mask has
// been applied: reversed edges are flipped so every edge considered by
// layering points forward in DFS order.
type effectiveEdge struct {
	from, to int
}

// applyReversal returns the edge list with reversed entries flipped,
// per the "input graph is never mutated" rule (§4.2): layering consumes
// this derived view, not the raw graph.Edges().
func applyReversal(g graph.Query, reversed []bool) []effectiveEdge {
	edges := g.Edges()
	out := make([]effectiveEdge, len(edges))
	for i, e := range edges {
		if reversed[i] {
			out[i] = effectiveEdge{from: e.To, to: e.From}
		} else {
			out[i] = effectiveEdge{from: e.From, to: e.To}
		}
	}
	return out
}

// LongestPathLayering assigns level[v] = max(level[v], level[u]+1) for
// every effective edge (u,v), iterating to a fixed point. Self-loops
// (u==v after reversal) contribute nothing. O(V+E) typical, O(V*E) worst.
func LongestPathLayering(g graph.Query, reversed []bool) []int {
	n := g.NodeCount()
	level := make([]int, n)
	edges := applyReversal(g, reversed)

	changed := true
	for changed {
		changed = false
		for _, e := range edges {
			if e.from == e.to {
				continue
			}
			if want := level[e.from] + 1; level[e.to] < want {
				level[e.to] = want
				changed = true
			}
		}
	}
	return level
}

// maxLevel returns the largest value in level, or -1 if level is empty.
func maxLevel(level []int) int {
	m := -1
	for _, l := range level {
		if l > m {
			m = l
		}
	}
	return m
}

// AssignLevels dispatches to the configured layering algorithm. For
// NetworkSimplexFast, pivots are bounded to max(V, floor(V*sqrt(E))) per
// component (§4.3); a partial result is always feasible because the seed
// (longest-path) already is.
func AssignLevels(g graph.Query, reversed []bool, algo LayeringAlgorithm) []int {
	switch algo {
	case LongestPath:
		return LongestPathLayering(g, reversed)
	case NetworkSimplex:
		return NetworkSimplexLayering(g, reversed, 0)
	case NetworkSimplexFast:
		v := g.NodeCount()
		e := len(g.Edges())
		bound := int(math.Floor(float64(v) * math.Sqrt(float64(e))))
		if v > bound {
			bound = v
		}
		return NetworkSimplexLayering(g, reversed, bound)
	default:
		return LongestPathLayering(g, reversed)
	}
}
