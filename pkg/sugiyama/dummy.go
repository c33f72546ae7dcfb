package sugiyama

import "sort"

// VNodeKind distinguishes a virtual node's origin within a virtual level.
type VNodeKind uint8

const (
	VReal VNodeKind = iota
	VDummy
)

// VNode is one entry in a virtual level: either a real input node or a
// dummy placeholder for an edge passing through this level (§3).
type VNode struct {
	Kind    VNodeKind
	NodeIdx int // valid when Kind == VReal
	EdgeIdx int // valid when Kind == VDummy: which long edge this dummy carries
	DummyID int // synthetic id for this dummy, unique across the whole layout
}

// Inflate builds one virtual level per level in [0, maxLevel], each
// containing every real node assigned to that level (in input order)
// followed by one dummy per edge spanning across it (§4.4). Long edges
// (level[to] - level[from] > 1) contribute one dummy to every
// intermediate level strictly between their endpoints.
func Inflate(level []int, edges []effectiveEdge) [][]VNode {
	maxL := maxLevel(level)
	if maxL < 0 {
		return nil
	}
	levels := make([][]VNode, maxL+1)

	// Real nodes, grouped by level, in input order.
	for idx, l := range level {
		levels[l] = append(levels[l], VNode{Kind: VReal, NodeIdx: idx})
	}

	// Dummies, one per (edge, intermediate level), with a stable id so
	// positioning/routing can refer back to the same dummy across phases.
	dummyID := 0
	for edgeIdx, e := range edges {
		from, to := level[e.from], level[e.to]
		if from > to {
			from, to = to, from
		}
		for l := from + 1; l < to; l++ {
			levels[l] = append(levels[l], VNode{
				Kind:    VDummy,
				EdgeIdx: edgeIdx,
				DummyID: dummyID,
			})
			dummyID++
		}
	}

	return levels
}

// levelWidths returns the number of virtual nodes at each level.
func levelWidths(levels [][]VNode) []int {
	w := make([]int, len(levels))
	for i, l := range levels {
		w[i] = len(l)
	}
	return w
}

// totalNodeCount sums the widths of all levels.
func totalNodeCount(levels [][]VNode) int {
	total := 0
	for _, l := range levels {
		total += len(l)
	}
	return total
}

// sortedNodeIndices returns the real-node indices present at a level, in
// ascending order (used by tests).
func sortedNodeIndices(level []VNode) []int {
	var out []int
	for _, v := range level {
		if v.Kind == VReal {
			out = append(out, v.NodeIdx)
		}
	}
	sort.Ints(out)
	return out
}
