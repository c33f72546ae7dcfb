package sugiyama

import (
	"math"
	"sort"

	"github.com/dshills/layoutcore/pkg/graph"
)

// simplexEdge is an effective edge carrying the weight/minlen pair the
// network-simplex ranking algorithm (Gansner et al. 1993) optimises
// over. Self-loops are excluded by the caller (weight 0, minlen 0 means
// they never constrain ranking).
type simplexEdge struct {
	from, to int
	weight   int
	minlen   int
}

// treeEdge is a tree-membership record: the simplexEdge it corresponds
// to, plus which endpoint is the rooted-tree parent.
type treeEdge struct {
	edge   simplexEdge
	parent int
	child  int
}

// NetworkSimplexLayering assigns level[] minimising sum(level[to] -
// level[from]) over all edges, per component, via the classic tight-tree
// + cut-value pivot algorithm. maxPivots bounds the pivot loop; pass 0
// to use the per-component node count as the bound (the plain algorithm
// still terminates via the anti-cycling stall counter, but a component
// size bound keeps worst-case work predictable).
func NetworkSimplexLayering(g graph.Query, reversed []bool, maxPivots int) []int {
	n := g.NodeCount()
	level := LongestPathLayering(g, reversed)
	effective := applyReversal(g, reversed)

	components := weakComponents(n, effective)
	for _, comp := range components {
		if len(comp) < 2 {
			continue
		}
		runSimplexOnComponent(comp, effective, level, maxPivots)
	}

	// Normalise: level[] -= min(level[]).
	if m := minLevel(level); m != 0 {
		for i := range level {
			level[i] -= m
		}
	}
	return level
}

func minLevel(level []int) int {
	m := math.MaxInt
	for _, l := range level {
		if l < m {
			m = l
		}
	}
	if m == math.MaxInt {
		return 0
	}
	return m
}

// weakComponents partitions [0,n) into weakly-connected components using
// the effective (post cycle-break) edge set, in deterministic order
// (component containing the smallest node index first).
func weakComponents(n int, edges []effectiveEdge) [][]int {
	adj := make([][]int, n)
	for _, e := range edges {
		if e.from == e.to {
			continue
		}
		adj[e.from] = append(adj[e.from], e.to)
		adj[e.to] = append(adj[e.to], e.from)
	}
	visited := make([]bool, n)
	var components [][]int
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		var comp []int
		stack := []int{start}
		visited[start] = true
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, node)
			for _, nb := range adj[node] {
				if !visited[nb] {
					visited[nb] = true
					stack = append(stack, nb)
				}
			}
		}
		sort.Ints(comp)
		components = append(components, comp)
	}
	return components
}

// runSimplexOnComponent mutates level in place for the nodes in comp.
func runSimplexOnComponent(comp []int, allEdges []effectiveEdge, level []int, maxPivots int) {
	member := make(map[int]bool, len(comp))
	for _, v := range comp {
		member[v] = true
	}

	var edges []simplexEdge
	for _, e := range allEdges {
		if e.from == e.to {
			continue
		}
		if member[e.from] && member[e.to] {
			edges = append(edges, simplexEdge{from: e.from, to: e.to, weight: 1, minlen: 1})
		}
	}
	if len(edges) == 0 {
		return
	}

	tree := buildTightTree(comp, edges, level)
	if maxPivots <= 0 {
		maxPivots = len(comp) // anti-cycling default bound, per §4.3
	}

	stalls := 0
	pivots := 0
	for pivots < maxPivots {
		low, lim, parentOf := numberTree(comp[0], tree, comp)
		for i := range tree {
			if lim[tree[i].child] > lim[tree[i].parent] {
				tree[i].parent, tree[i].child = tree[i].child, tree[i].parent
			}
		}
		leaving, leavingIdx := findLeavingEdge(tree, edges, low, lim)
		if leaving == nil {
			break
		}

		entering, enteringIdx := findEnteringEdge(*leaving, edges, low, lim, level)
		if entering == nil {
			break
		}

		slack := level[entering.to] - level[entering.from] - entering.minlen
		if slack == 0 {
			stalls++
			if stalls >= len(comp) {
				break
			}
		} else {
			stalls = 0
		}

		shiftForEnter(*leaving, *entering, tree, low, lim, level, slack)
		tree[leavingIdx] = buildTreeEdgeFor(*entering, tree, parentOf)
		_ = enteringIdx
		pivots++
	}
}

// buildTightTree grows a spanning tree over comp using only tight
// (slack==0) edges, shifting tree-side ranks by the minimal boundary
// slack whenever no tight edge is available (§4.3 step 2).
func buildTightTree(comp []int, edges []simplexEdge, level []int) []treeEdge {
	inTree := make(map[int]bool, len(comp))
	inTree[comp[0]] = true
	treeSize := 1
	var tree []treeEdge

	for treeSize < len(comp) {
		bestSlack := math.MaxInt
		bestIdx := -1
		for i, e := range edges {
			inFrom, inTo := inTree[e.from], inTree[e.to]
			if inFrom == inTo {
				continue
			}
			s := level[e.to] - level[e.from] - e.minlen
			if s < bestSlack {
				bestSlack = s
				bestIdx = i
			}
		}
		if bestIdx < 0 {
			break // component has no boundary edges left (shouldn't happen for a connected comp)
		}
		e := edges[bestIdx]
		if bestSlack != 0 {
			delta := bestSlack
			if inTree[e.to] {
				delta = -bestSlack
			}
			for v := range inTree {
				level[v] += delta
			}
		}
		if inTree[e.from] {
			tree = append(tree, treeEdge{edge: e, parent: e.from, child: e.to})
			inTree[e.to] = true
		} else {
			tree = append(tree, treeEdge{edge: e, parent: e.to, child: e.from})
			inTree[e.from] = true
		}
		treeSize++
	}
	return tree
}

// numberTree computes low/lim DFS numbering over the rooted tree (low =
// smallest lim in the subtree, lim = postorder rank) so subtree
// membership is an O(1) range check, plus a parent-index map.
func numberTree(root int, tree []treeEdge, comp []int) (low, lim map[int]int, parentOf map[int]treeEdge) {
	adj := make(map[int][]treeEdge, len(comp))
	for _, te := range tree {
		adj[te.parent] = append(adj[te.parent], te)
		adj[te.child] = append(adj[te.child], treeEdge{edge: te.edge, parent: te.child, child: te.parent})
	}

	low = make(map[int]int, len(comp))
	lim = make(map[int]int, len(comp))
	parentOf = make(map[int]treeEdge, len(comp))
	visited := make(map[int]bool, len(comp))
	counter := 1

	type stackFrame struct {
		node     int
		children []treeEdge
		idx      int
	}
	visited[root] = true
	stack := []*stackFrame{{node: root, children: adj[root]}}
	low[root] = counter

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.idx >= len(top.children) {
			lim[top.node] = counter
			counter++
			stack = stack[:len(stack)-1]
			continue
		}
		te := top.children[top.idx]
		top.idx++
		if visited[te.child] {
			continue
		}
		visited[te.child] = true
		parentOf[te.child] = te
		low[te.child] = counter
		stack = append(stack, &stackFrame{node: te.child, children: adj[te.child]})
	}
	return low, lim, parentOf
}

func inSubtree(low, lim map[int]int, root, node int) bool {
	return low[root] <= lim[node] && lim[node] <= lim[root]
}

// findLeavingEdge returns the tree edge with the most negative cut value.
func findLeavingEdge(tree []treeEdge, edges []simplexEdge, low, lim map[int]int) (*treeEdge, int) {
	bestCut := 0
	bestIdx := -1
	for i, te := range tree {
		cv := cutValue(te, edges, low, lim)
		if cv < bestCut {
			bestCut = cv
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return nil, -1
	}
	return &tree[bestIdx], bestIdx
}

// cutValue sums signed weights of every non-tree edge crossing the cut
// induced by removing te from the tree, per §4.3 step 4.
func cutValue(te treeEdge, edges []simplexEdge, low, lim map[int]int) int {
	parentToChild := te.edge.from == te.parent
	cv := 0
	for _, e := range edges {
		fromInChild := inSubtree(low, lim, te.child, e.from)
		toInChild := inSubtree(low, lim, te.child, e.to)
		if fromInChild == toInChild {
			continue
		}
		entersChild := !fromInChild && toInChild
		switch {
		case parentToChild && entersChild, !parentToChild && !entersChild:
			cv += e.weight
		default:
			cv -= e.weight
		}
	}
	return cv
}

// findEnteringEdge returns the non-tree edge crossing the same cut as
// leaving, in the correcting direction, with minimum slack (§4.3 step 5).
func findEnteringEdge(leaving treeEdge, edges []simplexEdge, low, lim map[int]int, level []int) (*simplexEdge, int) {
	parentToChild := leaving.edge.from == leaving.parent
	bestSlack := math.MaxInt
	bestIdx := -1
	for i, e := range edges {
		if e == leaving.edge {
			continue
		}
		fromInChild := inSubtree(low, lim, leaving.child, e.from)
		toInChild := inSubtree(low, lim, leaving.child, e.to)
		if fromInChild == toInChild {
			continue
		}
		entersChild := !fromInChild && toInChild
		// The entering edge must restore the cut in the opposite sense
		// to the leaving edge's own direction.
		wantEntersChild := !parentToChild
		if entersChild != wantEntersChild {
			continue
		}
		s := level[e.to] - level[e.from] - e.minlen
		if s < bestSlack {
			bestSlack = s
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return nil, -1
	}
	return &edges[bestIdx], bestIdx
}

// shiftForEnter shifts every node in the leaving edge's child subtree by
// slack so the entering edge becomes tight.
func shiftForEnter(leaving treeEdge, entering simplexEdge, tree []treeEdge, low, lim map[int]int, level []int, slack int) {
	if slack == 0 {
		return
	}
	parentToChild := leaving.edge.from == leaving.parent
	delta := slack
	if !parentToChild {
		delta = -slack
	}
	for node := range low {
		if inSubtree(low, lim, leaving.child, node) {
			level[node] += delta
		}
	}
}

// buildTreeEdgeFor reconstructs a treeEdge for a newly-entering simplex
// edge, choosing parent/child consistently with the existing rooted
// tree's orientation (lower lim side remains closer to root).
func buildTreeEdgeFor(e simplexEdge, tree []treeEdge, parentOf map[int]treeEdge) treeEdge {
	// Either endpoint may be the "outer" (deeper) side; the pivot loop
	// renumbers the tree on the next iteration and then re-orients every
	// tree edge by lim, which corrects either choice. Default to edge
	// direction.
	return treeEdge{edge: e, parent: e.from, child: e.to}
}
