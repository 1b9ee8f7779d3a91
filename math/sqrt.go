package math

import (
	stdmath "math"

	"github.com/db47h/fixed"
	"github.com/db47h/fixed/internal/arith"
	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

func negativeArg(op string) fixed.ErrPrecondition {
	return fixed.ErrPrecondition{Op: op, Msg: "negative argument"}
}

// Isqrt returns floor(√n). It panics with a fixed.ErrPrecondition if n < 0.
func Isqrt[I constraints.Integer](n I) I {
	if n < 0 {
		panic(negativeArg("Isqrt"))
	}
	return I(arith.Sqrt64(uint64(n)))
}

// IsqrtFast is like Isqrt but starts from a floating-point estimate, corrected
// until it is exact. It runs in nearly constant time.
func IsqrtFast[I constraints.Integer](n I) I {
	if n < 0 {
		panic(negativeArg("IsqrtFast"))
	}
	u := uint64(n)
	nn := uint128.From64(u)
	r := uint64(stdmath.Sqrt(float64(u)))
	for arith.Square(r).Cmp(nn) > 0 {
		r--
	}
	for arith.Square(r+1).Cmp(nn) <= 0 {
		r++
	}
	return I(r)
}

// Sqrt returns √x truncated to the precision of x. Results larger than the
// maximum of the type saturate. Sqrt panics with a fixed.ErrPrecondition if
// x < 0.
func Sqrt[I constraints.Integer, S fixed.Scale](x fixed.Fixed[I, S]) fixed.Fixed[I, S] {
	if x.Raw() < 0 {
		panic(negativeArg("Sqrt"))
	}
	// √(raw/2**F) * 2**F = √(raw * 2**F)
	n := uint128.From64(uint64(x.Raw())).Lsh(x.FracBits())
	return fromRoot[I, S](arith.Sqrt128(n))
}

// Hypot returns √(x²+y²) truncated to the precision of x and y. The squares
// and their sum are computed exactly in 128 bits, with twice the fractional
// bits of the arguments. The result saturates to fixed.Max if it does not fit.
func Hypot[I constraints.Integer, S fixed.Scale](x, y fixed.Fixed[I, S]) fixed.Fixed[I, S] {
	s, ok := arith.SumSquares(x.Raw(), y.Raw())
	if !ok {
		return fixed.Max[I, S]()
	}
	return fromRoot[I, S](arith.Sqrt128(s))
}

func fromRoot[I constraints.Integer, S fixed.Scale](r uint64) fixed.Fixed[I, S] {
	m := fixed.Max[I, S]()
	if r > uint64(m.Raw()) {
		return m
	}
	return fixed.FromRaw[I, S](I(r))
}

// IsInterior reports whether the point (x, y) lies inside the circle of
// radius r centered on the origin, or on its boundary. It compares squared
// distances in 128 bits and never computes a square root.
func IsInterior[I constraints.Integer, S fixed.Scale](x, y, r fixed.Fixed[I, S]) bool {
	s, ok := arith.SumSquares(x.Raw(), y.Raw())
	if !ok {
		return false
	}
	return s.Cmp(arith.Square(r.Raw())) <= 0
}
