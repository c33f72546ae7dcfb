package graph

import "testing"

func TestAddNodeAssignsSequentialIndices(t *testing.T) {
	g := NewGraph(0, 0)
	i0, err := g.AddNode(Node{ID: 10, Label: "A", Width: 1})
	if err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	i1, err := g.AddNode(Node{ID: 20, Label: "B", Width: 1})
	if err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if i0 != 0 || i1 != 1 {
		t.Errorf("indices = %d, %d, want 0, 1", i0, i1)
	}
	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", g.NodeCount())
	}
}

func TestAddNodeRejectsDuplicateID(t *testing.T) {
	g := NewGraph(0, 0)
	if _, err := g.AddNode(Node{ID: 1, Label: "A", Width: 1}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if _, err := g.AddNode(Node{ID: 1, Label: "B", Width: 1}); err == nil {
		t.Errorf("expected error adding duplicate id")
	}
}

func TestAddNodeRejectsInvalidWidth(t *testing.T) {
	g := NewGraph(0, 0)
	if _, err := g.AddNode(Node{ID: 1, Label: "A", Width: 0}); err == nil {
		t.Errorf("expected error for width <= 0")
	}
}

func TestAddEdgeBuildsAdjacency(t *testing.T) {
	g := NewGraph(0, 0)
	a, _ := g.AddNode(Node{ID: 1, Label: "A", Width: 1})
	b, _ := g.AddNode(Node{ID: 2, Label: "B", Width: 1})

	if err := g.AddEdge(Edge{From: a, To: b, Directed: true}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	children := g.Children(a)
	if len(children) != 1 || children[0] != b {
		t.Errorf("Children(a) = %v, want [%d]", children, b)
	}
	parents := g.Parents(b)
	if len(parents) != 1 || parents[0] != a {
		t.Errorf("Parents(b) = %v, want [%d]", parents, a)
	}
	if len(g.Edges()) != 1 {
		t.Errorf("Edges() length = %d, want 1", len(g.Edges()))
	}
}

func TestAddEdgeRejectsDuplicate(t *testing.T) {
	g := NewGraph(0, 0)
	a, _ := g.AddNode(Node{ID: 1, Label: "A", Width: 1})
	b, _ := g.AddNode(Node{ID: 2, Label: "B", Width: 1})
	if err := g.AddEdge(Edge{From: a, To: b, Directed: true}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddEdge(Edge{From: a, To: b, Directed: true}); err == nil {
		t.Errorf("expected error adding duplicate edge")
	}
}

func TestAddEdgeRejectsOutOfRange(t *testing.T) {
	g := NewGraph(0, 0)
	a, _ := g.AddNode(Node{ID: 1, Label: "A", Width: 1})
	if err := g.AddEdge(Edge{From: a, To: 99, Directed: true}); err == nil {
		t.Errorf("expected error for out-of-range To")
	}
}

func TestNodeCaps(t *testing.T) {
	g := NewGraph(1, 0)
	if _, err := g.AddNode(Node{ID: 1, Label: "A", Width: 1}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if _, err := g.AddNode(Node{ID: 2, Label: "B", Width: 1}); err == nil {
		t.Errorf("expected cap-exceeded error")
	}
}

func TestEdgeCaps(t *testing.T) {
	g := NewGraph(0, 1)
	a, _ := g.AddNode(Node{ID: 1, Label: "A", Width: 1})
	b, _ := g.AddNode(Node{ID: 2, Label: "B", Width: 1})
	c, _ := g.AddNode(Node{ID: 3, Label: "C", Width: 1})
	if err := g.AddEdge(Edge{From: a, To: b}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddEdge(Edge{From: b, To: c}); err == nil {
		t.Errorf("expected cap-exceeded error")
	}
}

func TestNodeIndexLookup(t *testing.T) {
	g := NewGraph(0, 0)
	idx, _ := g.AddNode(Node{ID: 42, Label: "A", Width: 1})
	got, ok := g.NodeIndex(42)
	if !ok || got != idx {
		t.Errorf("NodeIndex(42) = %d, %v, want %d, true", got, ok, idx)
	}
	if _, ok := g.NodeIndex(999); ok {
		t.Errorf("NodeIndex(999) should not be found")
	}
}

func TestNodeAtOutOfRange(t *testing.T) {
	g := NewGraph(0, 0)
	if _, ok := g.NodeAt(0); ok {
		t.Errorf("NodeAt(0) on empty graph should return ok=false")
	}
}

var _ Query = (*Graph)(nil)
