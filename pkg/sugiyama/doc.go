// Package sugiyama implements the hierarchical layered-graph pipeline:
// cycle-break, layering (longest-path or network-simplex), dummy-node
// inflation, crossing reduction, positioning, and edge routing. The
// pipeline only accepts directed acyclic graphs after cycle-break masks
// back-edges; output feeds the shared pkg/ir assembly stage.
package sugiyama
