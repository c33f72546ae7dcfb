// Package forcedirected implements the Fruchterman-Reingold force-directed
// layout engine with optional Barnes-Hut acceleration (§4.8). Unlike
// pkg/sugiyama, it accepts general (possibly cyclic, possibly undirected)
// graphs and has no notion of levels: nodes settle into position under
// simulated repulsion, attraction, and optional gravity.
//
// All simulation state is Q16.16 fixed-point (pkg/fixedpoint) so that a
// given seed reproduces byte-identical positions on every platform; only
// the final quantisation step and the IR it emits are plain integers.
package forcedirected
