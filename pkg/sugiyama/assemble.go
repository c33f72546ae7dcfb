package sugiyama

import (
	"github.com/dshills/layoutcore/pkg/graph"
	"github.com/dshills/layoutcore/pkg/ir"
)

// Config bundles every Sugiyama-specific parameter (§4.1).
type Config struct {
	Layering       LayeringAlgorithm
	CrossingPreset string
	Positioning    PositioningAlgorithm
	Routing        RoutingAlgorithm
	NodeSpacing    int
	LevelSpacing   int
}

// DefaultConfig mirrors the "sugiyama.standard" preset (§4.1): longest
// path is the cheapest layering, the balanced crossing-reduction
// pipeline, compact positioning, direct routing.
func DefaultConfig() Config {
	return Config{
		Layering:       LongestPath,
		CrossingPreset: "balanced",
		Positioning:    Compact,
		Routing:        Direct,
		NodeSpacing:    2,
		LevelSpacing:   1,
	}
}

// Run executes the full Sugiyama pipeline (§4.2-4.9), breaking cycles
// itself, and returns the assembled IR. It does not validate g; callers
// that need validation run it beforehand (see pkg/layout).
func Run(g graph.Query, cfg Config) (*ir.LayoutIR, error) {
	reversed := BreakCycles(g)
	level := AssignLevels(g, reversed, cfg.Layering)
	effective := applyReversal(g, reversed)

	levels := Inflate(level, effective)
	incident := buildIncidence(levels, effective)

	pipeline := Preset(cfg.CrossingPreset)
	if err := pipeline.Run(levels, effective); err != nil {
		return nil, err
	}

	widthFn := func(v VNode) int {
		if v.Kind == VDummy {
			return 1
		}
		n, _ := g.NodeAt(v.NodeIdx)
		return n.Width
	}
	positions := Position(levels, effective, incident, cfg.Positioning, widthFn, cfg.NodeSpacing, cfg.LevelSpacing)

	centerX := make(map[int]int, g.NodeCount())
	for idx := 0; idx < g.NodeCount(); idx++ {
		n, _ := g.NodeAt(idx)
		x := positions.X[identityKey{kind: VReal, id: idx}]
		centerX[idx] = x + n.Width/2
	}
	InterpolateDummies(positions, levels, effective, level, centerX, widthFn, cfg.NodeSpacing)

	doc := ir.New(g.NodeCount())
	dummyChain := make(map[int][]int64)

	for l, vlevel := range levels {
		y := l * (1 + cfg.LevelSpacing)
		var levelIndices []int
		for pos, v := range vlevel {
			var node ir.LayoutNode
			switch v.Kind {
			case VReal:
				n, _ := g.NodeAt(v.NodeIdx)
				x := positions.X[keyOf(v)]
				node = ir.LayoutNode{
					ID:            n.ID,
					Label:         n.Label,
					X:             x,
					Y:             y,
					Width:         n.Width,
					CenterX:       x + n.Width/2,
					Level:         l,
					LevelPosition: pos,
					Kind:          ir.KindExplicit,
				}
			case VDummy:
				x := positions.X[keyOf(v)]
				edgeIdx := v.EdgeIdx
				node = ir.LayoutNode{
					ID:            dummyID(edgeIdx, l),
					X:             x,
					Y:             y,
					Width:         1,
					CenterX:       x,
					Level:         l,
					LevelPosition: pos,
					Kind:          ir.KindDummy,
					EdgeIndex:     &edgeIdx,
				}
			}
			if err := doc.AddNode(node); err != nil {
				return nil, err
			}
			if v.Kind == VDummy {
				dummyChain[v.EdgeIdx] = append(dummyChain[v.EdgeIdx], node.ID)
			}
			idx, _ := doc.NodeIndex(node.ID)
			levelIndices = append(levelIndices, idx)
		}
		doc.Levels = append(doc.Levels, levelIndices)
	}

	doc.Edges = RouteEdges(g, doc, level, dummyChain, cfg.Routing)
	doc.LevelCount = len(levels)
	doc.Width = positions.TotalWidth
	doc.Height = positions.TotalHeight

	return doc, nil
}

// dummyID synthesizes a collision-free id for the dummy carrying edgeIdx
// at level l (§9 open-question decision, see DESIGN.md).
func dummyID(edgeIdx, level int) int64 {
	return ir.DummyIDBase + int64(edgeIdx)<<20 | int64(level)
}

