package graph

// Query is the read-only adjacency surface the layout core consumes. It is
// satisfied by Graph, but any caller-owned graph representation may
// implement it directly instead of constructing a Graph.
//
// Implementations must be stable for the duration of a single layout call:
// the core treats the input graph as read-only and never mutates it.
type Query interface {
	// NodeCount returns the number of nodes.
	NodeCount() int
	// NodeAt returns the node at index idx, or ok=false if idx is out of
	// range.
	NodeAt(idx int) (node Node, ok bool)
	// NodeIndex returns the index of the node with the given id, or
	// ok=false if no such node exists.
	NodeIndex(id int64) (idx int, ok bool)
	// Children returns the indices of nodes reachable via an outgoing edge
	// from idx, in edge-insertion order.
	Children(idx int) []int
	// Parents returns the indices of nodes with an outgoing edge into idx,
	// in edge-insertion order.
	Parents(idx int) []int
	// Edges returns all edges, in insertion order.
	Edges() []Edge
}
