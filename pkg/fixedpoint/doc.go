// Package fixedpoint implements Q16.16 signed fixed-point arithmetic.
//
// # Overview
//
// The force-directed layout engine (pkg/forcedirected) must produce
// byte-identical output given identical input, config, and seed, on any
// platform. Floating point does not make that guarantee across compilers,
// architectures, and optimization levels; a fixed 32-bit integer
// representation with explicit, saturating, widened-intermediate arithmetic
// does. Scalar is that representation: bit 31 is sign, bits 30..16 are the
// integer part, bits 15..0 are the fraction, giving a range of roughly
// ±32767.99998 at a resolution of 1/65536.
//
// # Determinism contract
//
// Every operation in this package is pure integer arithmetic with no
// hidden rounding modes or hardware-dependent behavior. Multiply and divide
// widen to int64 before scaling so that overflow is caught deliberately
// (via saturation) rather than wrapping silently.
package fixedpoint
