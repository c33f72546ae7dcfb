package forcedirected

import "github.com/dshills/layoutcore/pkg/fixedpoint"

// InitStrategy selects how initial positions are generated (§4.8).
type InitStrategy int

const (
	// InitGrid places nodes on a ceil(sqrt(n)) x ceil(sqrt(n)) grid.
	InitGrid InitStrategy = iota
	// InitGridJitter is InitGrid plus a seeded pseudo-random displacement
	// in [-spacing/4, +spacing/4] on each axis.
	InitGridJitter
)

// RepulsionVariant selects the repulsion force algorithm.
type RepulsionVariant int

const (
	// Exact computes O(V^2) pairwise repulsion.
	Exact RepulsionVariant = iota
	// BarnesHut approximates repulsion in O(V log V) via a quadtree.
	BarnesHut
)

// AttractionVariant selects the spring force's distance response.
type AttractionVariant int

const (
	// Spring applies force magnitude d/k.
	Spring AttractionVariant = iota
	// LinLog applies log(1+d) ~= 2d/(2+d) to soften long edges.
	LinLog
)

// GravityMode selects how gravity scales with distance from centre.
type GravityMode int

const (
	// GravityLinear pulls with magnitude strength*d.
	GravityLinear GravityMode = iota
	// GravityStrong pulls with a constant magnitude regardless of distance.
	GravityStrong
)

// GravityConfig enables and parameterises the optional gravity force.
type GravityConfig struct {
	Enabled  bool
	Mode     GravityMode
	Strength fixedpoint.Scalar
	CenterX  fixedpoint.Scalar
	CenterY  fixedpoint.Scalar
}

// Config parameterises one force-directed layout run. All fields have
// spec-mandated defaults surfaced via DefaultConfig.
type Config struct {
	Init       InitStrategy
	Repulsion  RepulsionVariant
	Attraction AttractionVariant
	Gravity    GravityConfig

	Seed uint64

	// Spacing is both the grid-init gap and the force constant k
	// (repulsion k^2/d, spring attraction d/k).
	Spacing fixedpoint.Scalar

	// Theta is the Barnes-Hut approximation threshold (default ~0.8).
	Theta fixedpoint.Scalar

	MaxIterations   int
	Decay           fixedpoint.Scalar
	MinDisplacement fixedpoint.Scalar

	// GridWidth/GridHeight bound the quantised IR output. Zero means
	// use the normalised bounding box's width/height rounded down to
	// whole simulation units, i.e. one cell per simulation unit.
	GridWidth  int
	GridHeight int

	RoutingAlgorithm RoutingAlgorithm
}

// DefaultConfig returns the spec's named defaults: decay ~0.95,
// max_iterations 300, min_displacement ~0.01, theta ~0.8 (§4.8).
func DefaultConfig() Config {
	return Config{
		Init:             InitGridJitter,
		Repulsion:        Exact,
		Attraction:       Spring,
		Seed:             1,
		Spacing:          fixedpoint.FromInt(40),
		Theta:            fixedpoint.FromFloat(0.8),
		MaxIterations:    300,
		Decay:            fixedpoint.FromFloat(0.95),
		MinDisplacement:  fixedpoint.FromFloat(0.01),
		RoutingAlgorithm: RouteDirect,
	}
}
