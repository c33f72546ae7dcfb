package sugiyama

import (
	"github.com/dshills/layoutcore/pkg/graph"
	"github.com/dshills/layoutcore/pkg/ir"
)

// RoutingAlgorithm selects the edge-path variant (§4.7).
type RoutingAlgorithm int

const (
	Direct RoutingAlgorithm = iota
	Spline
)

// slotCounters hands out distinct horizontal-channel offsets to edges
// sharing a source level, so corner routes fan out instead of overlapping
// (§4.7's "slot counter").
type slotCounters struct {
	bySourceLevel map[int]int
}

func newSlotCounters() *slotCounters {
	return &slotCounters{bySourceLevel: make(map[int]int)}
}

func (s *slotCounters) next(level int) int {
	slot := s.bySourceLevel[level]
	s.bySourceLevel[level]++
	return slot
}

// RouteEdges emits one LayoutEdge per input edge whose span is a single
// level, or one LayoutEdge per level-span for long edges, walking their
// dummy chain (split-through-dummy: the documented alternative to
// multi_segment, see DESIGN.md). Every record for a given input edge
// shares edge_index so renderers can reassemble the full route.
func RouteEdges(g graph.Query, doc *ir.LayoutIR, level []int, dummyChain map[int][]int64, algo RoutingAlgorithm) []ir.LayoutEdge {
	slots := newSlotCounters()
	var out []ir.LayoutEdge

	for edgeIdx, e := range g.Edges() {
		fromNode, _ := g.NodeAt(e.From)
		toNode, _ := g.NodeAt(e.To)
		chain := dummyChain[edgeIdx]
		reverseChain := level[e.From] > level[e.To]

		waypoints := buildWaypointIDs(fromNode.ID, toNode.ID, chain, reverseChain)
		segments := routeSegments(doc, waypoints, edgeIdx, e.Directed, e.Label, slots, algo)
		out = append(out, segments...)
	}
	return out
}

// buildWaypointIDs assembles the ordered node-id chain an edge passes
// through, from its source to its target: chain is stored in ascending
// level order, so it is reversed when the edge's source sits at a
// higher level than its target.
func buildWaypointIDs(fromID, toID int64, chain []int64, reverseChain bool) []int64 {
	out := make([]int64, 0, len(chain)+2)
	out = append(out, fromID)
	if reverseChain {
		for i := len(chain) - 1; i >= 0; i-- {
			out = append(out, chain[i])
		}
	} else {
		out = append(out, chain...)
	}
	out = append(out, toID)
	return out
}

func routeSegments(doc *ir.LayoutIR, waypoints []int64, edgeIdx int, directed bool, label string, slots *slotCounters, algo RoutingAlgorithm) []ir.LayoutEdge {
	segments := make([]ir.LayoutEdge, 0, len(waypoints)-1)
	for i := 0; i < len(waypoints)-1; i++ {
		fromIR, _ := doc.NodeByID(waypoints[i])
		toIR, _ := doc.NodeByID(waypoints[i+1])
		path := pathFor(fromIR, toIR, slots, algo)
		segments = append(segments, ir.LayoutEdge{
			FromID:    waypoints[i],
			ToID:      waypoints[i+1],
			FromX:     fromIR.CenterX,
			FromY:     fromIR.Y,
			ToX:       toIR.CenterX,
			ToY:       toIR.Y,
			Path:      path,
			EdgeIndex: edgeIdx,
			Directed:  directed,
			Label:     label,
		})
	}
	attachLabelMidpoint(segments)
	return segments
}

// pathFor implements §4.7's direct-routing decision for a single span:
// equal center_x emits direct, otherwise a corner bent at a slot-offset
// row. Spline mode re-expresses the same two-point span as a cubic
// Bezier whose control points sit one and two thirds of the way along
// the segment, so the curve traces the straight line between the ends.
func pathFor(from, to ir.LayoutNode, slots *slotCounters, algo RoutingAlgorithm) ir.EdgePath {
	if algo == Spline {
		dx := to.CenterX - from.CenterX
		dy := to.Y - from.Y
		cp1 := ir.Waypoint{X: from.CenterX + dx/3, Y: from.Y + dy/3}
		cp2 := ir.Waypoint{X: from.CenterX + 2*dx/3, Y: from.Y + 2*dy/3}
		return ir.SplinePath(cp1, cp2)
	}

	if from.CenterX == to.CenterX {
		return ir.DirectPath()
	}

	availableRows := to.Y - from.Y - 2
	if availableRows < 1 {
		availableRows = 1
	}
	slot := slots.next(from.Level)
	horizontalY := from.Y + 2 + (slot % availableRows)
	return ir.CornerPath(horizontalY)
}

// attachLabelMidpoint places the label's (label_x,label_y) at the
// geometric midpoint of the full route: the middle segment's own
// midpoint for an odd segment count, or the shared waypoint between the
// two middle segments for an even count (§9 open-question decision).
func attachLabelMidpoint(segments []ir.LayoutEdge) {
	if len(segments) == 0 || segments[0].Label == "" {
		return
	}
	mid := len(segments) / 2
	x := (segments[mid].FromX + segments[mid].ToX) / 2
	y := (segments[mid].FromY + segments[mid].ToY) / 2
	if len(segments)%2 == 0 {
		x, y = segments[mid].FromX, segments[mid].FromY
	}
	segments[mid].LabelX = &x
	segments[mid].LabelY = &y
}
