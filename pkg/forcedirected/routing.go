package forcedirected

import "github.com/dshills/layoutcore/pkg/ir"

// RoutingAlgorithm selects the edge-path variant FDG emits (§4.8: "direct
// ... or spline when the caller requests spline routing").
type RoutingAlgorithm int

const (
	RouteDirect RoutingAlgorithm = iota
	RouteSpline
)

// pathFor builds the path variant between two already-quantised
// endpoints. FDG has no waypoints to interpolate through (unlike
// Sugiyama's dummy chains), so spline mode places its two Bezier control
// points at 1/3 and 2/3 along the straight segment, matching the
// teacher-grounded convention already used by pkg/sugiyama/routing.go.
func pathFor(fromX, fromY, toX, toY int, algo RoutingAlgorithm) ir.EdgePath {
	if algo == RouteSpline {
		cp1 := ir.Waypoint{X: fromX + (toX-fromX)/3, Y: fromY + (toY-fromY)/3}
		cp2 := ir.Waypoint{X: fromX + 2*(toX-fromX)/3, Y: fromY + 2*(toY-fromY)/3}
		return ir.SplinePath(cp1, cp2)
	}
	return ir.DirectPath()
}
