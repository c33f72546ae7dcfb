package sugiyama

import "testing"

func TestInflateCreatesDummiesForLongEdges(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	reversed := BreakCycles(g)
	level := LongestPathLayering(g, reversed)
	effective := applyReversal(g, reversed)
	levels := Inflate(level, effective)

	if len(levels) != 3 {
		t.Fatalf("len(levels) = %d, want 3", len(levels))
	}
	// edge 0->2 spans levels 0..2, so level 1 should carry one dummy
	// alongside the real node already assigned there.
	dummies := 0
	for _, v := range levels[1] {
		if v.Kind == VDummy {
			dummies++
		}
	}
	if dummies != 1 {
		t.Errorf("dummies at level 1 = %d, want 1", dummies)
	}
}

func TestInflatePreservesInputOrderForReals(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{})
	reversed := BreakCycles(g)
	level := []int{0, 0, 0}
	effective := applyReversal(g, reversed)
	levels := Inflate(level, effective)
	indices := sortedNodeIndices(levels[0])
	if len(indices) != 3 {
		t.Fatalf("expected 3 real nodes at level 0, got %d", len(indices))
	}
	for i, v := range levels[0] {
		if v.NodeIdx != i {
			t.Errorf("levels[0][%d] = node %d, want %d (input order)", i, v.NodeIdx, i)
		}
	}
}
