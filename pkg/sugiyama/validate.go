package sugiyama

import (
	"github.com/dshills/layoutcore/pkg/graph"
	"github.com/dshills/layoutcore/pkg/layouterr"
)

// Requirements is the set of preconditions a preset demands of its input
// graph before dispatch.
type Requirements struct {
	NonEmpty     bool
	Acyclic      bool
	AllDirected  bool
	Connected    bool
}

// Validate computes the ValidationFailures bitset for g against req and
// returns it unconditionally (callers decide whether to treat it as an
// error via AsError). reversed, if non-nil, is the cycle-break mask
// already computed for g; passing it avoids a second cycle scan.
func Validate(g graph.Query, req Requirements, reversed []bool) layouterr.ValidationFailures {
	var failures layouterr.ValidationFailures

	if req.NonEmpty && g.NodeCount() == 0 {
		failures |= layouterr.FailureEmpty
	}

	if req.Acyclic {
		if reversed == nil {
			reversed = BreakCycles(g)
		}
		for _, r := range reversed {
			if r {
				failures |= layouterr.FailureHasCycle
				break
			}
		}
	}

	if req.AllDirected {
		hasUndirected := false
		for _, e := range g.Edges() {
			if !e.Directed {
				hasUndirected = true
				break
			}
		}
		if hasUndirected {
			failures |= layouterr.FailureHasUndirectedEdges
		}
	}

	if req.Connected && g.NodeCount() > 0 && !isConnected(g) {
		failures |= layouterr.FailureDisconnected
	}

	return failures
}

// isConnected treats the graph as undirected for reachability purposes:
// a Sugiyama layout requiring connectivity cares about weak components.
func isConnected(g graph.Query) bool {
	n := g.NodeCount()
	if n == 0 {
		return true
	}
	visited := make([]bool, n)
	stack := []int{0}
	visited[0] = true
	count := 1
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range g.Children(node) {
			if !visited[nb] {
				visited[nb] = true
				count++
				stack = append(stack, nb)
			}
		}
		for _, nb := range g.Parents(node) {
			if !visited[nb] {
				visited[nb] = true
				count++
				stack = append(stack, nb)
			}
		}
	}
	return count == n
}
