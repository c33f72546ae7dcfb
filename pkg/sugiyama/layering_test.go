package sugiyama

import "testing"

func TestLongestPathLayering(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {0, 3}})
	reversed := BreakCycles(g)
	level := LongestPathLayering(g, reversed)
	if level[0] != 0 {
		t.Errorf("level[0] = %d, want 0", level[0])
	}
	if level[1] != 1 {
		t.Errorf("level[1] = %d, want 1", level[1])
	}
	if level[2] != 2 {
		t.Errorf("level[2] = %d, want 2", level[2])
	}
	if level[3] != 1 {
		t.Errorf("level[3] = %d, want 1", level[3])
	}
}

func TestLongestPathLayeringRespectsForwardEdgeInvariant(t *testing.T) {
	g := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {1, 4}, {4, 3}})
	reversed := BreakCycles(g)
	level := LongestPathLayering(g, reversed)
	for i, e := range g.Edges() {
		from, to := e.From, e.To
		if reversed[i] {
			from, to = to, from
		}
		if level[to] <= level[from] {
			t.Errorf("edge %d: level[to]=%d not > level[from]=%d", i, level[to], level[from])
		}
	}
}

func TestNetworkSimplexLayeringFeasible(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {0, 3}, {3, 2}})
	reversed := BreakCycles(g)
	level := NetworkSimplexLayering(g, reversed, 0)
	for i, e := range g.Edges() {
		from, to := e.From, e.To
		if reversed[i] {
			from, to = to, from
		}
		if level[to] <= level[from] {
			t.Errorf("edge %d: level[to]=%d not > level[from]=%d", i, level[to], level[from])
		}
	}
	if m := minLevel(level); m != 0 {
		t.Errorf("minLevel = %d, want 0 (normalised)", m)
	}
}

func TestAssignLevelsDispatch(t *testing.T) {
	g := buildGraph(t, 2, [][2]int{{0, 1}})
	reversed := BreakCycles(g)
	for _, algo := range []LayeringAlgorithm{LongestPath, NetworkSimplex, NetworkSimplexFast} {
		level := AssignLevels(g, reversed, algo)
		if level[1] <= level[0] {
			t.Errorf("algo %v: level[1]=%d not > level[0]=%d", algo, level[1], level[0])
		}
	}
}
