package sugiyama

import (
	"sort"

	"github.com/dshills/layoutcore/pkg/layouterr"
)

// identityKey uniquely names a virtual node across a reducer's run, used
// by the reducer-contract snapshot to detect lost/duplicated nodes.
type identityKey struct {
	kind VNodeKind
	id   int
}

func keyOf(v VNode) identityKey {
	if v.Kind == VReal {
		return identityKey{kind: VReal, id: v.NodeIdx}
	}
	return identityKey{kind: VDummy, id: v.DummyID}
}

// ReducerFunc reorders virtual nodes within levels; it must not change
// the multiset of nodes per level. edges is the post-cycle-break
// effective edge list; incident[i] lists edge indices touching node i.
type ReducerFunc func(levels [][]VNode, edges []effectiveEdge, incident [][]int)

// Reducer is one named, repeatable crossing-reduction step (§4.5).
type Reducer struct {
	Name   string
	Passes int
	Apply  ReducerFunc
}

// Pipeline is an ordered sequence of reducers run sequentially, each
// contract-checked against a before/after snapshot.
type Pipeline struct {
	Reducers []Reducer
}

// levelSnapshot captures per-level node identity for contract checking.
type levelSnapshot struct {
	perLevelCount []int
	total         int
	identity      map[identityKey]int
}

func snapshot(levels [][]VNode) levelSnapshot {
	s := levelSnapshot{
		perLevelCount: make([]int, len(levels)),
		identity:      make(map[identityKey]int),
	}
	for i, l := range levels {
		s.perLevelCount[i] = len(l)
		s.total += len(l)
		for _, v := range l {
			s.identity[keyOf(v)]++
		}
	}
	return s
}

// verifyContract checks after against before per §4.5's reducer contract.
func verifyContract(before, after levelSnapshot) error {
	if len(after.perLevelCount) != len(before.perLevelCount) {
		return layouterr.New(layouterr.KindReducerCorruptedLevels,
			"level count changed from %d to %d", len(before.perLevelCount), len(after.perLevelCount))
	}
	if after.total < before.total {
		return layouterr.New(layouterr.KindReducerLostNode,
			"total node count decreased from %d to %d", before.total, after.total)
	}
	for i := range after.perLevelCount {
		if after.perLevelCount[i] != before.perLevelCount[i] {
			return layouterr.New(layouterr.KindReducerCountMismatch,
				"level %d count changed from %d to %d", i, before.perLevelCount[i], after.perLevelCount[i])
		}
	}
	for key, count := range after.identity {
		if count > 1 {
			return layouterr.New(layouterr.KindReducerDuplicateNode, "node %+v appeared %d times", key, count)
		}
		if before.identity[key] == 0 {
			return layouterr.New(layouterr.KindReducerDuplicateNode, "node %+v was not present before reduction", key)
		}
	}
	for key := range before.identity {
		if after.identity[key] == 0 {
			return layouterr.New(layouterr.KindReducerLostNode, "node %+v missing after reduction", key)
		}
	}
	return nil
}

// Run executes every reducer in order, its configured number of passes,
// verifying the snapshot contract after each reducer.
func (p Pipeline) Run(levels [][]VNode, edges []effectiveEdge) error {
	incident := buildIncidence(levels, edges)
	for _, r := range p.Reducers {
		before := snapshot(levels)
		for pass := 0; pass < r.Passes; pass++ {
			r.Apply(levels, edges, incident)
		}
		after := snapshot(levels)
		if err := verifyContract(before, after); err != nil {
			return err
		}
	}
	return nil
}

// buildIncidence maps each real node index to the indices of edges
// incident to it (either direction).
func buildIncidence(levels [][]VNode, edges []effectiveEdge) [][]int {
	maxIdx := -1
	for _, l := range levels {
		for _, v := range l {
			if v.Kind == VReal && v.NodeIdx > maxIdx {
				maxIdx = v.NodeIdx
			}
		}
	}
	incident := make([][]int, maxIdx+1)
	for i, e := range edges {
		incident[e.from] = append(incident[e.from], i)
		incident[e.to] = append(incident[e.to], i)
	}
	return incident
}

// carrierPosition finds the position within level of the virtual node
// that carries edgeIdx there: either a dummy tagged with that edge, or
// the real endpoint if it resides at this level.
func carrierPosition(level []VNode, edgeIdx int, realEndpoint int) (int, bool) {
	for pos, v := range level {
		if v.Kind == VDummy && v.EdgeIdx == edgeIdx {
			return pos, true
		}
		if v.Kind == VReal && v.NodeIdx == realEndpoint {
			return pos, true
		}
	}
	return -1, false
}

// connectedPositions returns the positions, within adjLevel, of every
// virtual node connected to v (in its own level) via an edge.
func connectedPositions(v VNode, adjLevel []VNode, edges []effectiveEdge, incident [][]int) []int {
	var positions []int
	switch v.Kind {
	case VReal:
		for _, edgeIdx := range incident[v.NodeIdx] {
			e := edges[edgeIdx]
			other := e.to
			if other == v.NodeIdx {
				other = e.from
			}
			if pos, ok := carrierPosition(adjLevel, edgeIdx, other); ok {
				positions = append(positions, pos)
			}
		}
	case VDummy:
		e := edges[v.EdgeIdx]
		if pos, ok := carrierPosition(adjLevel, v.EdgeIdx, e.from); ok {
			positions = append(positions, pos)
		} else if pos, ok := carrierPosition(adjLevel, v.EdgeIdx, e.to); ok {
			positions = append(positions, pos)
		}
	}
	return positions
}

func median(positions []int) (float64, bool) {
	if len(positions) == 0 {
		return 0, false
	}
	sorted := append([]int(nil), positions...)
	sort.Ints(sorted)
	m := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[m]), true
	}
	if len(sorted) == 2 {
		return float64(sorted[0]+sorted[1]) / 2, true
	}
	left := sorted[m-1] - sorted[0]
	right := sorted[len(sorted)-1] - sorted[m]
	if left+right == 0 {
		return float64(sorted[m-1]+sorted[m]) / 2, true
	}
	return (float64(sorted[m-1])*float64(right) + float64(sorted[m])*float64(left)) / float64(left+right), true
}

// MedianReducer sweeps each level, reordering by the median position of
// each node's neighbours in the adjacent (fixed) level (§4.5).
func MedianReducer(passes int) Reducer {
	return Reducer{Name: "median", Passes: passes, Apply: func(levels [][]VNode, edges []effectiveEdge, incident [][]int) {
		sweepMedian(levels, edges, incident, true)
		sweepMedian(levels, edges, incident, false)
	}}
}

func sweepMedian(levels [][]VNode, edges []effectiveEdge, incident [][]int, topDown bool) {
	n := len(levels)
	start, end, step := 1, n, 1
	if !topDown {
		start, end, step = n-2, -1, -1
	}
	for l := start; l != end; l += step {
		adj := l - step
		if adj < 0 || adj >= n {
			continue
		}
		level := levels[l]
		medians := make([]float64, len(level))
		for i, v := range level {
			positions := connectedPositions(v, levels[adj], edges, incident)
			if m, ok := median(positions); ok {
				medians[i] = m
			} else {
				medians[i] = float64(i)
			}
		}
		idx := make([]int, len(level))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool { return medians[idx[a]] < medians[idx[b]] })
		reordered := make([]VNode, len(level))
		for newPos, oldPos := range idx {
			reordered[newPos] = level[oldPos]
		}
		levels[l] = reordered
	}
}

// countPairCrossings counts the crossings between a's and b's edges to
// adjLevel when a sits left of b: every pair of connected positions
// (pa, pb) in adjLevel with pa > pb is one crossing.
func countPairCrossings(a, b VNode, adjLevel []VNode, edges []effectiveEdge, incident [][]int) int {
	aPos := connectedPositions(a, adjLevel, edges, incident)
	bPos := connectedPositions(b, adjLevel, edges, incident)
	crossings := 0
	for _, pa := range aPos {
		for _, pb := range bPos {
			if pa > pb {
				crossings++
			}
		}
	}
	return crossings
}

// ExchangeReducer repeatedly swaps adjacent virtual nodes within levels
// of width [2,20] when doing so reduces crossings against each fixed
// neighbour level, until a pass yields no swaps or 2*width iterations
// elapse (§4.5).
func ExchangeReducer(passes int) Reducer {
	return Reducer{Name: "exchange", Passes: passes, Apply: func(levels [][]VNode, edges []effectiveEdge, incident [][]int) {
		for l := range levels {
			sweepExchange(levels, l, edges, incident)
		}
	}}
}

func sweepExchange(levels [][]VNode, l int, edges []effectiveEdge, incident [][]int) {
	level := levels[l]
	width := len(level)
	if width < 2 || width > 20 {
		return
	}
	maxIter := 2 * width
	for iter := 0; iter < maxIter; iter++ {
		swapped := false
		for i := 0; i < width-1; i++ {
			before := pairCrossingsAgainstNeighbours(levels, l, i, i+1, edges, incident)
			level[i], level[i+1] = level[i+1], level[i]
			after := pairCrossingsAgainstNeighbours(levels, l, i, i+1, edges, incident)
			if after < before {
				swapped = true
			} else {
				level[i], level[i+1] = level[i+1], level[i]
			}
		}
		if !swapped {
			break
		}
	}
	levels[l] = level
}

func pairCrossingsAgainstNeighbours(levels [][]VNode, l, i, j int, edges []effectiveEdge, incident [][]int) int {
	total := 0
	if l-1 >= 0 {
		total += countPairCrossings(levels[l][i], levels[l][j], levels[l-1], edges, incident)
	}
	if l+1 < len(levels) {
		total += countPairCrossings(levels[l][i], levels[l][j], levels[l+1], edges, incident)
	}
	return total
}

// Preset names a built-in crossing-reduction pipeline (§4.5).
func Preset(name string) Pipeline {
	switch name {
	case "none":
		return Pipeline{}
	case "fast":
		return Pipeline{Reducers: []Reducer{MedianReducer(2)}}
	case "balanced":
		return Pipeline{Reducers: []Reducer{MedianReducer(4), ExchangeReducer(2)}}
	case "quality":
		return Pipeline{Reducers: []Reducer{MedianReducer(8), ExchangeReducer(4), MedianReducer(2)}}
	default:
		return Pipeline{Reducers: []Reducer{MedianReducer(4), ExchangeReducer(2)}}
	}
}
