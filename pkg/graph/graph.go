package graph

import (
	"github.com/dshills/layoutcore/pkg/layouterr"
)

// Default resource caps (§6), used when NewGraph is given 0 for either cap.
const (
	DefaultMaxNodes = 100_000
	DefaultMaxEdges = 500_000
)

// Graph is an ordered node/edge container implementing Query. Node index
// is the node's position in insertion order; ids are unique and map
// bidirectionally to indices.
type Graph struct {
	maxNodes int
	maxEdges int

	nodes     []Node
	edges     []Edge
	idToIndex map[int64]int

	children [][]int
	parents  [][]int

	// edgeSeen deduplicates (from,to) pairs in O(1).
	edgeSeen map[[2]int]bool
}

// NewGraph creates an empty graph. maxNodes and maxEdges of 0 fall back to
// the package defaults (100 000 / 500 000, per §6).
func NewGraph(maxNodes, maxEdges int) *Graph {
	if maxNodes <= 0 {
		maxNodes = DefaultMaxNodes
	}
	if maxEdges <= 0 {
		maxEdges = DefaultMaxEdges
	}
	return &Graph{
		maxNodes:  maxNodes,
		maxEdges:  maxEdges,
		idToIndex: make(map[int64]int),
		edgeSeen:  make(map[[2]int]bool),
	}
}

// AddNode appends a node, rejecting duplicate ids, invalid width, and
// nodes beyond the configured cap. Returns the node's index.
func (g *Graph) AddNode(n Node) (int, error) {
	if n.Width <= 0 {
		return -1, layouterr.New(layouterr.KindLayoutFailed, "node %d: width must be > 0, got %d", n.ID, n.Width)
	}
	if _, exists := g.idToIndex[n.ID]; exists {
		return -1, layouterr.New(layouterr.KindDuplicateEdge, "node with id %d already exists", n.ID)
	}
	if len(g.nodes) >= g.maxNodes {
		return -1, layouterr.New(layouterr.KindResourceExhausted, "node count would exceed cap %d", g.maxNodes)
	}

	idx := len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.idToIndex[n.ID] = idx
	g.children = append(g.children, nil)
	g.parents = append(g.parents, nil)
	return idx, nil
}

// AddEdge appends an edge between two existing node indices, rejecting
// duplicate (from,to) pairs, out-of-range endpoints, and edges beyond the
// configured cap.
func (g *Graph) AddEdge(e Edge) error {
	if e.From < 0 || e.From >= len(g.nodes) {
		return layouterr.New(layouterr.KindLayoutFailed, "edge from-index %d out of range", e.From)
	}
	if e.To < 0 || e.To >= len(g.nodes) {
		return layouterr.New(layouterr.KindLayoutFailed, "edge to-index %d out of range", e.To)
	}
	key := [2]int{e.From, e.To}
	if g.edgeSeen[key] {
		return layouterr.New(layouterr.KindDuplicateEdge, "duplicate edge %d -> %d", e.From, e.To)
	}
	if len(g.edges) >= g.maxEdges {
		return layouterr.New(layouterr.KindResourceExhausted, "edge count would exceed cap %d", g.maxEdges)
	}

	g.edgeSeen[key] = true
	g.edges = append(g.edges, e)
	g.children[e.From] = append(g.children[e.From], e.To)
	g.parents[e.To] = append(g.parents[e.To], e.From)
	return nil
}

// NodeCount implements Query.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// NodeAt implements Query.
func (g *Graph) NodeAt(idx int) (Node, bool) {
	if idx < 0 || idx >= len(g.nodes) {
		return Node{}, false
	}
	return g.nodes[idx], true
}

// NodeIndex implements Query.
func (g *Graph) NodeIndex(id int64) (int, bool) {
	idx, ok := g.idToIndex[id]
	return idx, ok
}

// Children implements Query.
func (g *Graph) Children(idx int) []int {
	if idx < 0 || idx >= len(g.children) {
		return nil
	}
	return g.children[idx]
}

// Parents implements Query.
func (g *Graph) Parents(idx int) []int {
	if idx < 0 || idx >= len(g.parents) {
		return nil
	}
	return g.parents[idx]
}

// Edges implements Query.
func (g *Graph) Edges() []Edge {
	return g.edges
}
