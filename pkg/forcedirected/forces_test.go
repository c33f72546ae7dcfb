package forcedirected

import (
	"testing"

	"github.com/dshills/layoutcore/pkg/fixedpoint"
)

func TestApplyRepulsionExactPushesApart(t *testing.T) {
	pos := []fixedpoint.Vec2{
		{X: fixedpoint.FromInt(0), Y: fixedpoint.FromInt(0)},
		{X: fixedpoint.FromInt(5), Y: fixedpoint.FromInt(0)},
	}
	accum := make([]fixedpoint.Vec2, 2)
	applyRepulsionExact(pos, fixedpoint.FromInt(40), accum)

	if accum[0].X >= 0 {
		t.Errorf("node 0 should be pushed in -x direction, got %v", accum[0])
	}
	if accum[1].X <= 0 {
		t.Errorf("node 1 should be pushed in +x direction, got %v", accum[1])
	}
}

func TestApplyRepulsionSkipsNearCoincidentPairs(t *testing.T) {
	pos := []fixedpoint.Vec2{
		{X: fixedpoint.FromInt(0), Y: fixedpoint.FromInt(0)},
		{X: fixedpoint.FromInt(0), Y: fixedpoint.FromInt(0)},
	}
	accum := make([]fixedpoint.Vec2, 2)
	applyRepulsionExact(pos, fixedpoint.FromInt(40), accum)
	if accum[0] != (fixedpoint.Vec2{}) || accum[1] != (fixedpoint.Vec2{}) {
		t.Errorf("coincident pair within min separation should produce no force, got %v / %v", accum[0], accum[1])
	}
}

func TestApplyRepulsionExactAndBarnesHutAgreeInSign(t *testing.T) {
	pos := []fixedpoint.Vec2{
		{X: fixedpoint.FromInt(0), Y: fixedpoint.FromInt(0)},
		{X: fixedpoint.FromInt(30), Y: fixedpoint.FromInt(0)},
		{X: fixedpoint.FromInt(15), Y: fixedpoint.FromInt(25)},
	}
	exact := make([]fixedpoint.Vec2, 3)
	bh := make([]fixedpoint.Vec2, 3)
	applyRepulsionExact(pos, fixedpoint.FromInt(40), exact)
	applyRepulsionBarnesHut(pos, fixedpoint.FromInt(40), fixedpoint.FromFloat(0.8), bh)

	for i := range pos {
		if (exact[i].X > 0) != (bh[i].X > 0) && exact[i].X != 0 && bh[i].X != 0 {
			t.Errorf("node %d: exact/BH force x-sign disagree: %v vs %v", i, exact[i], bh[i])
		}
	}
}

func TestApplyAttractionPullsTogether(t *testing.T) {
	pos := []fixedpoint.Vec2{
		{X: fixedpoint.FromInt(0), Y: fixedpoint.FromInt(0)},
		{X: fixedpoint.FromInt(100), Y: fixedpoint.FromInt(0)},
	}
	edges := []edgeEndpoints{{from: 0, to: 1}}
	accum := make([]fixedpoint.Vec2, 2)
	applyAttraction(pos, edges, fixedpoint.FromInt(40), Spring, accum)

	if accum[0].X <= 0 {
		t.Errorf("node 0 should be pulled toward node 1 (+x), got %v", accum[0])
	}
	if accum[1].X >= 0 {
		t.Errorf("node 1 should be pulled toward node 0 (-x), got %v", accum[1])
	}
}

func TestApplyGravityDisabledIsNoop(t *testing.T) {
	pos := []fixedpoint.Vec2{{X: fixedpoint.FromInt(100), Y: fixedpoint.FromInt(100)}}
	accum := make([]fixedpoint.Vec2, 1)
	applyGravity(pos, GravityConfig{Enabled: false}, accum)
	if accum[0] != (fixedpoint.Vec2{}) {
		t.Errorf("disabled gravity should not accumulate force, got %v", accum[0])
	}
}

func TestApplyGravityLinearPullsTowardCenter(t *testing.T) {
	pos := []fixedpoint.Vec2{{X: fixedpoint.FromInt(100), Y: fixedpoint.FromInt(0)}}
	accum := make([]fixedpoint.Vec2, 1)
	cfg := GravityConfig{Enabled: true, Mode: GravityLinear, Strength: fixedpoint.FromFloat(0.1)}
	applyGravity(pos, cfg, accum)
	if accum[0].X >= 0 {
		t.Errorf("gravity should pull node toward origin (-x direction), got %v", accum[0])
	}
}
