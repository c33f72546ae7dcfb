package forcedirected

import (
	"testing"

	"github.com/dshills/layoutcore/pkg/fixedpoint"
)

func TestBuildQuadtreeMassMatchesBodyCount(t *testing.T) {
	pos := []fixedpoint.Vec2{
		{X: fixedpoint.FromInt(0), Y: fixedpoint.FromInt(0)},
		{X: fixedpoint.FromInt(10), Y: fixedpoint.FromInt(10)},
		{X: fixedpoint.FromInt(-10), Y: fixedpoint.FromInt(5)},
		{X: fixedpoint.FromInt(3), Y: fixedpoint.FromInt(-7)},
	}
	root := buildQuadtree(pos)
	if root == nil {
		t.Fatal("buildQuadtree returned nil for non-empty input")
	}
	if root.mass != len(pos) {
		t.Errorf("root.mass = %d, want %d", root.mass, len(pos))
	}
}

func TestBuildQuadtreeCoincidentPointsDoNotInfiniteLoop(t *testing.T) {
	pos := make([]fixedpoint.Vec2, 50)
	for i := range pos {
		pos[i] = fixedpoint.Vec2{X: fixedpoint.FromInt(5), Y: fixedpoint.FromInt(5)}
	}
	root := buildQuadtree(pos)
	if root.mass != len(pos) {
		t.Errorf("root.mass = %d, want %d", root.mass, len(pos))
	}
}

func TestBuildQuadtreeEmpty(t *testing.T) {
	if buildQuadtree(nil) != nil {
		t.Error("buildQuadtree(nil) should return nil")
	}
}

func TestCenterOfMassIsWithinBounds(t *testing.T) {
	pos := []fixedpoint.Vec2{
		{X: fixedpoint.FromInt(0), Y: fixedpoint.FromInt(0)},
		{X: fixedpoint.FromInt(20), Y: fixedpoint.FromInt(0)},
	}
	root := buildQuadtree(pos)
	com := root.centerOfMass()
	if com.X.ToInt() != 10 {
		t.Errorf("center of mass x = %d, want 10", com.X.ToInt())
	}
}
