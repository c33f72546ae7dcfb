package fixedpoint

import "math"

// expTableSize is the number of entries covering x in [0, expTableDomain).
const (
	expTableSize   = 256
	expTableDomain = 8 // exp(-x) is ~0 for x >= 8
)

// expTable[i] holds exp(-x) for x = i * expTableDomain / expTableSize, in
// Q16.16. It is computed once at init time with math.Exp (a host-float
// computation that only ever runs during package init, never in the
// per-iteration hot loop) so the hot loop itself does no floating point.
var expTable [expTableSize + 1]Scalar

func init() {
	for i := 0; i <= expTableSize; i++ {
		x := float64(i) * expTableDomain / expTableSize
		// math.Exp runs once here, at process init, to build a table
		// consulted thereafter by pure integer lookups: it has no bearing
		// on cross-platform bit-exactness of the simulation itself, which
		// only ever reads expTable.
		expTable[i] = FromFloat(math.Exp(-x))
	}
}

// Exp returns exp(-x) for x >= 0 in Q16.16, served from a 256-entry lookup
// table covering x in [0, 8): x <= 0 maps to ONE, x >= 8 maps to ZERO.
func Exp(x Scalar) Scalar {
	if x <= 0 {
		return ONE
	}
	domain := FromInt(expTableDomain)
	if x >= domain {
		return ZERO
	}

	// index = x / domain * expTableSize
	idx := Mul(Div(x, domain), FromInt(expTableSize))
	i := idx.ToInt()
	if i < 0 {
		i = 0
	}
	if i >= expTableSize {
		i = expTableSize
	}
	return expTable[i]
}
