package sugiyama

import "github.com/dshills/layoutcore/pkg/graph"

// color tracks DFS visitation state for cycle-break.
type color uint8

const (
	white color = iota // unvisited
	grey               // on the current DFS path
	black              // fully explored
)

// frame is one explicit-stack entry for the iterative DFS: the node being
// visited and the index of the next child edge to examine.
type frame struct {
	node     int
	childIdx int
}

// BreakCycles runs three-colour DFS over g with an explicit stack (no
// recursion, so arbitrarily deep graphs never overflow the goroutine
// stack) and returns a reversed[] mask parallel to g.Edges(): true marks
// a back-edge found pointing into a grey node. The input graph is never
// mutated; downstream layering treats a reversed edge as target->source.
//
// Complexity: O(V+E) time, O(V) stack.
func BreakCycles(g graph.Query) []bool {
	n := g.NodeCount()
	edges := g.Edges()
	reversed := make([]bool, len(edges))

	// edgesByFrom maps each node index to the indices (into edges) of its
	// outgoing edges, so the DFS can resume a partially-explored node's
	// edge list without re-scanning from the start.
	edgesByFrom := make([][]int, n)
	for i, e := range edges {
		edgesByFrom[e.From] = append(edgesByFrom[e.From], i)
	}

	state := make([]color, n)
	var stack []frame

	for start := 0; start < n; start++ {
		if state[start] != white {
			continue
		}
		state[start] = grey
		stack = append(stack, frame{node: start})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			outs := edgesByFrom[top.node]

			if top.childIdx >= len(outs) {
				state[top.node] = black
				stack = stack[:len(stack)-1]
				continue
			}

			edgeIdx := outs[top.childIdx]
			top.childIdx++
			target := edges[edgeIdx].To

			switch state[target] {
			case white:
				state[target] = grey
				stack = append(stack, frame{node: target})
			case grey:
				reversed[edgeIdx] = true
			case black:
				// cross/forward edge in the DFS forest, not a back-edge
			}
		}
	}

	return reversed
}
