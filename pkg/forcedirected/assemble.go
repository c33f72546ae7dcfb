package forcedirected

import (
	"sort"

	"github.com/dshills/layoutcore/pkg/graph"
	"github.com/dshills/layoutcore/pkg/ir"
	"github.com/dshills/layoutcore/pkg/layouterr"
)

// Run executes the force-directed pipeline end to end (§4.8, §4.9):
// simulate, normalise, quantise to integer cells, and assemble the
// shared Layout IR. Unlike pkg/sugiyama, the input graph may be cyclic
// and may carry undirected edges; Run imposes only the non-empty
// precondition.
func Run(g graph.Query, cfg Config) (*ir.LayoutIR, error) {
	n := g.NodeCount()
	if n == 0 {
		return nil, layouterr.New(layouterr.KindEmptyGraph, "force-directed layout called on an empty graph")
	}

	result := Simulate(g, cfg)

	margin := cfg.Spacing
	shifted, width, height := normalize(result.Positions, margin)

	gridWidth := cfg.GridWidth
	if gridWidth == 0 {
		gridWidth = width.ToInt()
	}
	gridHeight := cfg.GridHeight
	if gridHeight == 0 {
		gridHeight = height.ToInt()
	}

	cells := quantize(shifted, width, height, gridWidth, gridHeight)

	doc := ir.New(n)
	for idx := 0; idx < n; idx++ {
		node, _ := g.NodeAt(idx)
		cell := cells[idx]
		layoutNode := ir.LayoutNode{
			ID:      node.ID,
			Label:   node.Label,
			X:       cell.X,
			Y:       cell.Y,
			Width:   node.Width,
			CenterX: cell.X + node.Width/2,
			Level:   0,
			Kind:    ir.KindExplicit,
		}
		if err := doc.AddNode(layoutNode); err != nil {
			return nil, err
		}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return doc.Nodes[order[a]].X < doc.Nodes[order[b]].X
	})
	for i, idx := range order {
		doc.Nodes[idx].LevelPosition = i
	}
	doc.Levels = [][]int{order}

	for edgeIdx, e := range g.Edges() {
		fromNode, _ := g.NodeAt(e.From)
		toNode, _ := g.NodeAt(e.To)
		fromN, _ := doc.NodeByID(fromNode.ID)
		toN, _ := doc.NodeByID(toNode.ID)

		path := pathFor(fromN.X, fromN.Y, toN.X, toN.Y, cfg.RoutingAlgorithm)
		edge := ir.LayoutEdge{
			FromID:    fromNode.ID,
			ToID:      toNode.ID,
			FromX:     fromN.X,
			FromY:     fromN.Y,
			ToX:       toN.X,
			ToY:       toN.Y,
			Path:      path,
			EdgeIndex: edgeIdx,
			Directed:  e.Directed,
			Label:     e.Label,
		}
		if edge.Label != "" {
			midX, midY := (fromN.X+toN.X)/2, (fromN.Y+toN.Y)/2
			edge.LabelX, edge.LabelY = &midX, &midY
		}
		doc.Edges = append(doc.Edges, edge)
	}

	doc.LevelCount = 1
	doc.Width = width.ToInt()
	if doc.Width < 1 {
		doc.Width = 1
	}
	doc.Height = height.ToInt()

	return doc, nil
}
