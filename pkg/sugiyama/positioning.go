package sugiyama

// PositioningAlgorithm selects how x[] is computed for each virtual node
// (§4.6).
type PositioningAlgorithm int

const (
	Compact PositioningAlgorithm = iota
	Barycentric
	BrandesKopf
)

// NodeWidthFunc returns the render width (in cells) of a virtual node:
// the input node's width for VReal, 1 for VDummy (a point placeholder).
type NodeWidthFunc func(v VNode) int

// PositionResult is the output of a positioning pass: per-virtual-node x
// (keyed by identity, so both reals and dummies are addressable) plus
// the overall bounding dimensions.
type PositionResult struct {
	X           map[identityKey]int
	TotalWidth  int
	TotalHeight int
}

// Position runs the configured positioning algorithm and returns integer
// cell coordinates. Node y is level*(1+level_spacing); that is computed
// by the caller (assembly), since it does not vary by algorithm.
func Position(levels [][]VNode, edges []effectiveEdge, incident [][]int, algo PositioningAlgorithm, widthFn NodeWidthFunc, nodeSpacing, levelSpacing int) PositionResult {
	xs := initialPack(levels, widthFn, nodeSpacing)

	switch algo {
	case Compact:
		centerLevelsWithinWidest(xs, levels, widthFn)
	case Barycentric:
		centerLevelsWithinWidest(xs, levels, widthFn)
		runBarycentric(xs, levels, edges, incident, widthFn, nodeSpacing)
	case BrandesKopf:
		runBrandesKopf(xs, levels, edges, incident, widthFn, nodeSpacing)
	}

	return finalize(xs, levels, widthFn, levelSpacing)
}

// initialPack left-packs every level with nodeSpacing gaps, width-aware.
func initialPack(levels [][]VNode, widthFn NodeWidthFunc, nodeSpacing int) [][]float64 {
	xs := make([][]float64, len(levels))
	for l, level := range levels {
		row := make([]float64, len(level))
		cursor := 0.0
		for i, v := range level {
			row[i] = cursor
			cursor += float64(widthFn(v)) + float64(nodeSpacing)
		}
		xs[l] = row
	}
	return xs
}

func levelTotalWidth(xs []float64, level []VNode, widthFn NodeWidthFunc) float64 {
	if len(level) == 0 {
		return 0
	}
	last := len(level) - 1
	return xs[last] + float64(widthFn(level[last]))
}

// centerLevelsWithinWidest shifts every level so it is horizontally
// centred within the widest level's span (§4.6, Compact).
func centerLevelsWithinWidest(xs [][]float64, levels [][]VNode, widthFn NodeWidthFunc) {
	widest := 0.0
	for l, level := range levels {
		if w := levelTotalWidth(xs[l], level, widthFn); w > widest {
			widest = w
		}
	}
	for l, level := range levels {
		w := levelTotalWidth(xs[l], level, widthFn)
		shift := (widest - w) / 2
		for i := range xs[l] {
			xs[l][i] += shift
		}
	}
}

func widthsOf(level []VNode, widthFn NodeWidthFunc) []int {
	w := make([]int, len(level))
	for i, v := range level {
		w[i] = widthFn(v)
	}
	return w
}

func symmetricCompactFloat(xs []float64, widths []int, spacing float64) {
	for i := 1; i < len(xs); i++ {
		minX := xs[i-1] + float64(widths[i-1]) + spacing
		if xs[i] < minX {
			xs[i] = minX
		}
	}
	for i := len(xs) - 2; i >= 0; i-- {
		maxX := xs[i+1] - float64(widths[i]) - spacing
		if xs[i] > maxX {
			xs[i] = maxX
		}
	}
}

func centerOf(x float64, w int) float64 {
	return x + float64(w)/2
}

// centreTarget computes the mean centre-x of v's connections at adjLevel.
func centreTarget(v VNode, level []VNode, xs []float64, adjLevel []VNode, adjXs []float64, edges []effectiveEdge, incident [][]int, widthFn NodeWidthFunc) (float64, bool) {
	positions := connectedPositions(v, adjLevel, edges, incident)
	if len(positions) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, pos := range positions {
		sum += centerOf(adjXs[pos], widthFn(adjLevel[pos]))
	}
	return sum / float64(len(positions)), true
}

func blendSweep(xs [][]float64, levels [][]VNode, edges []effectiveEdge, incident [][]int, widthFn NodeWidthFunc, spacing int, topDown bool, blend float64) {
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
		widths := widthsOf(levels[l], widthFn)
		for i, v := range levels[l] {
			if target, ok := centreTarget(v, levels[l], xs[l], levels[adj], xs[adj], edges, incident, widthFn); ok {
				current := centerOf(xs[l][i], widths[i])
				blended := current + (target-current)*blend
				xs[l][i] = blended - float64(widths[i])/2
			}
		}
		symmetricCompactFloat(xs[l], widths, float64(spacing))
	}
}

// runBarycentric implements §4.6's Barycentric algorithm: two iterations
// of top-down then bottom-up 50%-blend sweeps, each followed by
// symmetric compaction.
func runBarycentric(xs [][]float64, levels [][]VNode, edges []effectiveEdge, incident [][]int, widthFn NodeWidthFunc, spacing int) {
	for iter := 0; iter < 2; iter++ {
		blendSweep(xs, levels, edges, incident, widthFn, spacing, true, 0.5)
		blendSweep(xs, levels, edges, incident, widthFn, spacing, false, 0.5)
	}
	normalizeLeftmost(xs)
}

// runBrandesKopf implements §4.6's Brandes-Kopf algorithm: start from the
// widest level, sweep outward centring parents/children over their
// adjacent span, then refine with blended sweeps like Barycentric.
func runBrandesKopf(xs [][]float64, levels [][]VNode, edges []effectiveEdge, incident [][]int, widthFn NodeWidthFunc, spacing int) {
	widestLevel := 0
	widestWidth := -1.0
	for l, level := range levels {
		if w := levelTotalWidth(xs[l], level, widthFn); w > widestWidth {
			widestWidth = w
			widestLevel = l
		}
	}

	for l := widestLevel - 1; l >= 0; l-- {
		widths := widthsOf(levels[l], widthFn)
		for i, v := range levels[l] {
			if target, ok := centreTarget(v, levels[l], xs[l], levels[l+1], xs[l+1], edges, incident, widthFn); ok {
				xs[l][i] = target - float64(widths[i])/2
			}
		}
		symmetricCompactFloat(xs[l], widths, float64(spacing))
	}
	for l := widestLevel + 1; l < len(levels); l++ {
		widths := widthsOf(levels[l], widthFn)
		for i, v := range levels[l] {
			if target, ok := centreTarget(v, levels[l], xs[l], levels[l-1], xs[l-1], edges, incident, widthFn); ok {
				xs[l][i] = target - float64(widths[i])/2
			}
		}
		symmetricCompactFloat(xs[l], widths, float64(spacing))
	}

	for iter := 0; iter < 3; iter++ {
		blendSweep(xs, levels, edges, incident, widthFn, spacing, true, 0.5)
		blendSweep(xs, levels, edges, incident, widthFn, spacing, false, 0.5)
	}
	normalizeLeftmost(xs)
	centerWithinSlack(xs, levels, widthFn, 2)
}

func normalizeLeftmost(xs [][]float64) {
	min := 0.0
	first := true
	for _, row := range xs {
		for _, x := range row {
			if first || x < min {
				min = x
				first = false
			}
		}
	}
	if min == 0 {
		return
	}
	for _, row := range xs {
		for i := range row {
			row[i] -= min
		}
	}
}

// centerWithinSlack centres a level within the overall width when the
// slack (overall width minus the level's own span) is at least minSlack
// cells (§4.6, Brandes-Kopf's optional final step).
func centerWithinSlack(xs [][]float64, levels [][]VNode, widthFn NodeWidthFunc, minSlack float64) {
	overall := 0.0
	for l, level := range levels {
		if w := levelTotalWidth(xs[l], level, widthFn); w > overall {
			overall = w
		}
	}
	for l, level := range levels {
		w := levelTotalWidth(xs[l], level, widthFn)
		slack := overall - w
		if slack >= minSlack {
			shift := slack / 2
			for i := range xs[l] {
				xs[l][i] += shift
			}
		}
	}
}

func finalize(xs [][]float64, levels [][]VNode, widthFn NodeWidthFunc, levelSpacing int) PositionResult {
	result := PositionResult{X: make(map[identityKey]int)}
	for l, level := range levels {
		for i, v := range level {
			result.X[keyOf(v)] = int(xs[l][i] + 0.5)
		}
		if w := levelTotalWidth(xs[l], level, widthFn); int(w+0.5) > result.TotalWidth {
			result.TotalWidth = int(w + 0.5)
		}
	}
	maxL := len(levels) - 1
	if maxL < 0 {
		maxL = 0
	}
	result.TotalHeight = maxL*(1+levelSpacing) + 1
	return result
}

// InterpolateDummies computes each dummy's x by linear interpolation
// between its edge's source and target center_x, proportional to its
// level position between source and target levels, then compacts each
// virtual level left-to-right preserving crossing-reduction order
// (§4.6, "Dummy interpolation").
func InterpolateDummies(result PositionResult, levels [][]VNode, edges []effectiveEdge, level []int, centerX map[int]int, widthFn NodeWidthFunc, nodeSpacing int) {
	for l, vlevel := range levels {
		for _, v := range vlevel {
			if v.Kind != VDummy {
				continue
			}
			e := edges[v.EdgeIdx]
			fromLevel, toLevel := level[e.from], level[e.to]
			if fromLevel > toLevel {
				fromLevel, toLevel = toLevel, fromLevel
			}
			span := toLevel - fromLevel
			if span <= 0 {
				continue
			}
			t := float64(l-fromLevel) / float64(span)
			fromCX, toCX := centerX[e.from], centerX[e.to]
			result.X[keyOf(v)] = int(float64(fromCX) + t*float64(toCX-fromCX) + 0.5)
		}
	}

	// Only dummy positions are adjusted here; real nodes keep the x
	// Position() already gave them and act as fixed anchors, using their
	// actual width (not a 1-cell placeholder) to compute the next
	// neighbor's minimum x.
	for _, vlevel := range levels {
		prevRight := -1 << 30
		for _, v := range vlevel {
			x := result.X[keyOf(v)]
			if v.Kind == VDummy {
				minX := x
				if prevRight != -1<<30 {
					minX = prevRight + nodeSpacing
				}
				if x < minX {
					x = minX
				}
				result.X[keyOf(v)] = x
			}
			prevRight = x + widthFn(v)
		}
	}
}
