package forcedirected

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/layoutcore/pkg/graph"
)

// genFDGGraph draws a random graph up to 500 nodes with a light edge
// density, mixing directed and undirected edges (§8's FDG property
// generator has no DAG constraint, unlike the Sugiyama generator).
func genFDGGraph(t *rapid.T) *graph.Graph {
	n := rapid.IntRange(1, 500).Draw(t, "n")
	g := graph.NewGraph(0, 0)
	for i := 0; i < n; i++ {
		if _, err := g.AddNode(graph.Node{ID: int64(i), Label: "n", Width: 4}); err != nil {
			t.Fatalf("AddNode: %v", err)
		}
	}
	if n > 1 {
		edgeCount := rapid.IntRange(0, n*2).Draw(t, "edgeCount")
		seen := map[[2]int]bool{}
		for k := 0; k < edgeCount; k++ {
			from := rapid.IntRange(0, n-1).Draw(t, "from")
			to := rapid.IntRange(0, n-1).Draw(t, "to")
			if from == to {
				continue
			}
			key := [2]int{from, to}
			if seen[key] {
				continue
			}
			seen[key] = true
			directed := rapid.Bool().Draw(t, "directed")
			if err := g.AddEdge(graph.Edge{From: from, To: to, Directed: directed}); err != nil {
				t.Fatalf("AddEdge: %v", err)
			}
		}
	}
	return g
}

// TestPropertyFDGDeterminism checks invariant 6 (§8): layout(G, C) with an
// identical seed yields a byte-identical IR across 10 repeat runs.
func TestPropertyFDGDeterminism(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := genFDGGraph(t)
		seed := rapid.Uint64().Draw(t, "seed")

		cfg := DefaultConfig()
		cfg.Seed = seed
		cfg.MaxIterations = 30 // bound wall-clock for the property sweep

		first, err := Run(g, cfg)
		if err != nil {
			t.Fatalf("Run: %v", err)
		}

		for run := 0; run < 10; run++ {
			next, err := Run(g, cfg)
			if err != nil {
				t.Fatalf("Run (repeat %d): %v", run, err)
			}
			if len(next.Nodes) != len(first.Nodes) {
				t.Fatalf("repeat %d: node count differs", run)
			}
			for i := range first.Nodes {
				a, b := first.Nodes[i], next.Nodes[i]
				if a.ID != b.ID || a.X != b.X || a.Y != b.Y {
					t.Fatalf("repeat %d: node %d differs: %+v vs %+v", run, i, a, b)
				}
			}
			if len(next.Edges) != len(first.Edges) {
				t.Fatalf("repeat %d: edge count differs", run)
			}
			for i := range first.Edges {
				a, b := first.Edges[i], next.Edges[i]
				if a.FromID != b.FromID || a.ToID != b.ToID || a.FromX != b.FromX || a.FromY != b.FromY || a.ToX != b.ToX || a.ToY != b.ToY {
					t.Fatalf("repeat %d: edge %d differs: %+v vs %+v", run, i, a, b)
				}
			}
		}
	})
}

// TestPropertyFDGUniversalInvariants checks invariants 1, 2, and 4 (§8)
// against random FDG graphs.
func TestPropertyFDGUniversalInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := genFDGGraph(t)
		cfg := DefaultConfig()
		cfg.Seed = rapid.Uint64().Draw(t, "seed")
		cfg.MaxIterations = 30

		doc, err := Run(g, cfg)
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if err := doc.Validate(); err != nil {
			t.Fatalf("doc.Validate(): %v", err)
		}

		for idx := 0; idx < g.NodeCount(); idx++ {
			n, _ := g.NodeAt(idx)
			if _, ok := doc.NodeIndex(n.ID); !ok {
				t.Fatalf("input node %d missing from IR", n.ID)
			}
		}
		for _, n := range doc.Nodes {
			if n.Width <= 0 {
				t.Fatalf("node %d: width=%d, want > 0", n.ID, n.Width)
			}
			if n.CenterX != n.X+n.Width/2 {
				t.Fatalf("node %d: center_x=%d, want %d", n.ID, n.CenterX, n.X+n.Width/2)
			}
		}
	})
}
