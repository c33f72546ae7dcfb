package fixedpoint

import "testing"

// TestRoundTrip verifies invariant 10: to_int(from_int(k)) == k for a
// sample of integers including both ends of the spec's stated range.
func TestRoundTrip(t *testing.T) {
	for _, k := range []int{-32768, -1000, -1, 0, 1, 1000, 32767} {
		got := FromInt(k).ToInt()
		if got != k {
			t.Errorf("FromInt(%d).ToInt() = %d, want %d", k, got, k)
		}
	}
}

func TestAddSubSaturate(t *testing.T) {
	tests := []struct {
		name string
		a, b Scalar
		op   func(a, b Scalar) Scalar
		want Scalar
	}{
		{"add within range", FromInt(2), FromInt(3), Add, FromInt(5)},
		{"add saturates at MAX", MAX, ONE, Add, MAX},
		{"sub saturates at MIN", MIN, ONE, Sub, MIN},
		{"sub within range", FromInt(5), FromInt(2), Sub, FromInt(3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op(tt.a, tt.b); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMulDiv(t *testing.T) {
	three := FromInt(3)
	four := FromInt(4)
	if got := Mul(three, four); got != FromInt(12) {
		t.Errorf("Mul(3,4) = %v, want 12", got.ToFloat())
	}
	if got := Div(FromInt(12), four); got != three {
		t.Errorf("Div(12,4) = %v, want 3", got.ToFloat())
	}
}

func TestDivByZeroSaturates(t *testing.T) {
	if got := Div(FromInt(5), ZERO); got != MAX {
		t.Errorf("Div(5,0) = %v, want MAX", got)
	}
	if got := Div(FromInt(-5), ZERO); got != MIN {
		t.Errorf("Div(-5,0) = %v, want MIN", got)
	}
}

func TestSqrt(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{1, 1},
		{4, 2},
		{9, 3},
		{2, 1.41421356},
	}
	for _, tt := range tests {
		got := Sqrt(FromFloat(tt.in)).ToFloat()
		diff := got - tt.want
		if diff < 0 {
			diff = -diff
		}
		if diff > 0.001 {
			t.Errorf("Sqrt(%v) = %v, want ~%v", tt.in, got, tt.want)
		}
	}
}

func TestDist(t *testing.T) {
	got := Dist(FromInt(3), FromInt(4)).ToFloat()
	if got < 4.999 || got > 5.001 {
		t.Errorf("Dist(3,4) = %v, want ~5", got)
	}
}

func TestExpBounds(t *testing.T) {
	if Exp(FromInt(-1)) != ONE {
		t.Errorf("Exp of non-positive x must be ONE")
	}
	if Exp(FromInt(8)) != ZERO {
		t.Errorf("Exp(8) must be ZERO (outside table domain)")
	}
	if Exp(FromInt(100)) != ZERO {
		t.Errorf("Exp(100) must be ZERO (outside table domain)")
	}
	mid := Exp(FromInt(1)).ToFloat()
	if mid <= 0 || mid >= 1 {
		t.Errorf("Exp(1) = %v, want in (0,1)", mid)
	}
}

func TestMinMaxClamp(t *testing.T) {
	if Min(FromInt(1), FromInt(2)) != FromInt(1) {
		t.Errorf("Min wrong")
	}
	if Max(FromInt(1), FromInt(2)) != FromInt(2) {
		t.Errorf("Max wrong")
	}
	if Clamp(FromInt(5), FromInt(0), FromInt(3)) != FromInt(3) {
		t.Errorf("Clamp did not cap at hi")
	}
	if Clamp(FromInt(-5), FromInt(0), FromInt(3)) != FromInt(0) {
		t.Errorf("Clamp did not floor at lo")
	}
}
