package forcedirected

import (
	"testing"

	"github.com/dshills/layoutcore/pkg/fixedpoint"
)

func TestNormalizeShiftsToMargin(t *testing.T) {
	pos := []fixedpoint.Vec2{
		{X: fixedpoint.FromInt(-10), Y: fixedpoint.FromInt(5)},
		{X: fixedpoint.FromInt(20), Y: fixedpoint.FromInt(30)},
	}
	margin := fixedpoint.FromInt(4)
	shifted, _, _ := normalize(pos, margin)
	minX, minY := shifted[0].X, shifted[0].Y
	for _, p := range shifted[1:] {
		minX = fixedpoint.Min(minX, p.X)
		minY = fixedpoint.Min(minY, p.Y)
	}
	if minX != margin {
		t.Errorf("min x after normalize = %d, want margin %d", minX.ToInt(), margin.ToInt())
	}
	if minY != margin {
		t.Errorf("min y after normalize = %d, want margin %d", minY.ToInt(), margin.ToInt())
	}
}

func TestQuantizeNudgesCollisions(t *testing.T) {
	pos := []fixedpoint.Vec2{
		{X: fixedpoint.FromInt(5), Y: fixedpoint.FromInt(5)},
		{X: fixedpoint.FromInt(5), Y: fixedpoint.FromInt(5)},
	}
	cells := quantize(pos, fixedpoint.FromInt(10), fixedpoint.FromInt(10), 10, 10)
	if cells[0] == cells[1] {
		t.Errorf("colliding quantised cells should be nudged apart, got %v and %v", cells[0], cells[1])
	}
}

func TestQuantizeEmpty(t *testing.T) {
	cells := quantize(nil, 0, 0, 10, 10)
	if len(cells) != 0 {
		t.Errorf("len(cells) = %d, want 0", len(cells))
	}
}

func TestRoundToIntHalfUp(t *testing.T) {
	if got := roundToInt(fixedpoint.FromFloat(2.5)); got != 3 {
		t.Errorf("roundToInt(2.5) = %d, want 3", got)
	}
	if got := roundToInt(fixedpoint.FromFloat(-2.5)); got != -3 {
		t.Errorf("roundToInt(-2.5) = %d, want -3", got)
	}
	if got := roundToInt(fixedpoint.FromFloat(2.4)); got != 2 {
		t.Errorf("roundToInt(2.4) = %d, want 2", got)
	}
}
