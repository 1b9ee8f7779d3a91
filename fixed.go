// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"fmt"

	"github.com/db47h/fixed/internal/arith"
	"golang.org/x/exp/constraints"
)

const debugFixed = false

// A Fixed is a real number stored as an integer of type I scaled by 2**F,
// where F is S.FracBits(). The zero value is 0.
//
// Fixed values are plain values: all operations return a new Fixed and never
// modify their operands.
type Fixed[I constraints.Integer, S Scale] struct {
	raw I
}

// Check returns an ErrConfig if Fixed[I, S] is not a valid fixed-point type,
// that is if S has more fractional bits than I has bits.
func Check[I constraints.Integer, S Scale]() error {
	w, f := arith.Width[I](), fracBits[S]()
	if f > w {
		var i I
		return ErrConfig{fmt.Sprintf("fixed: %d fractional bits do not fit in %T", f, i)}
	}
	return nil
}

func mustCheck[I constraints.Integer, S Scale]() {
	if err := Check[I, S](); err != nil {
		panic(err)
	}
}

// New returns i as a Fixed. The result wraps if i is outside of the integral
// range of the type. When all bits of I are fractional, 0 is the only integer
// that can be represented and New returns 0 for any i.
func New[I constraints.Integer, S Scale](i I) Fixed[I, S] {
	mustCheck[I, S]()
	return Fixed[I, S]{i << fracBits[S]()}
}

// FromRaw returns a Fixed with raw as its underlying bit pattern.
func FromRaw[I constraints.Integer, S Scale](raw I) Fixed[I, S] {
	mustCheck[I, S]()
	return Fixed[I, S]{raw}
}

// Raw returns the underlying scaled integer of x.
func (x Fixed[I, S]) Raw() I { return x.raw }

// FracBits returns the number of fractional bits of x's type.
func (Fixed[I, S]) FracBits() uint { return fracBits[S]() }

// IntegralBits returns the number of non-fractional bits of x's type,
// including the sign bit if any.
func (Fixed[I, S]) IntegralBits() uint { return arith.Width[I]() - fracBits[S]() }

// IntegralDigits returns the number of binary digits available for the
// integral part of x's type. The sign bit is not counted.
func (x Fixed[I, S]) IntegralDigits() uint {
	if arith.Signed[I]() {
		return x.IntegralBits() - 1
	}
	return x.IntegralBits()
}

// IsSigned reports whether x's type can hold negative values.
func (Fixed[I, S]) IsSigned() bool { return arith.Signed[I]() }

// Add returns x+y. The result wraps on overflow like I does.
func (x Fixed[I, S]) Add(y Fixed[I, S]) Fixed[I, S] { return Fixed[I, S]{x.raw + y.raw} }

// Sub returns x-y. The result wraps on overflow like I does.
func (x Fixed[I, S]) Sub(y Fixed[I, S]) Fixed[I, S] { return Fixed[I, S]{x.raw - y.raw} }

// Mul returns x*y truncated to the precision of x. The product is computed in
// double width and saturates to Max or Min if it does not fit.
func (x Fixed[I, S]) Mul(y Fixed[I, S]) Fixed[I, S] {
	return Fixed[I, S]{arith.MulShift(x.raw, y.raw, fracBits[S]())}
}

// MulMixed returns x*y for a multiplier y with a different scale. The result
// keeps the type of x: repeated products do not grow in precision. See MulWide
// for a lossless product.
func MulMixed[I constraints.Integer, S, S2 Scale](x Fixed[I, S], y Fixed[I, S2]) Fixed[I, S] {
	return Fixed[I, S]{arith.MulShift(x.raw, y.raw, fracBits[S2]())}
}

// MulWide returns the exact product x*y in the wider type Fixed[W, SW]. W must
// be at least twice as wide as I, signed if I is, and SW must have the sum of
// the fractional bits of S1 and S2. MulWide panics with an ErrConfig
// otherwise. Since there is no integer wider than 64 bits, I is limited to 32
// bits.
//
//	p := fixed.MulWide[int64, fixed.Q32](a, b) // a, b are S16_16
func MulWide[W constraints.Integer, SW Scale, I constraints.Integer, S1, S2 Scale](x Fixed[I, S1], y Fixed[I, S2]) Fixed[W, SW] {
	w, ww := arith.Width[I](), arith.Width[W]()
	switch {
	case ww < 2*w:
		panic(ErrConfig{fmt.Sprintf("fixed: MulWide: %d-bit result too narrow for %d-bit operands", ww, w)})
	case arith.Signed[I]() && !arith.Signed[W]():
		panic(ErrConfig{"fixed: MulWide: unsigned result for signed operands"})
	case fracBits[SW]() != fracBits[S1]()+fracBits[S2]():
		panic(ErrConfig{fmt.Sprintf("fixed: MulWide: result needs %d fractional bits", fracBits[S1]()+fracBits[S2]())})
	}
	mustCheck[W, SW]()
	hi, lo := arith.MulOverflow(x.raw, y.raw)
	return Fixed[W, SW]{W(hi)<<w | W(lo)}
}

// Div returns x/y truncated toward zero. The dividend is scaled in double
// width before the division and the quotient saturates to Max or Min if it
// does not fit.
//
// Div panics with ErrPrecondition if y is zero.
func (x Fixed[I, S]) Div(y Fixed[I, S]) Fixed[I, S] {
	if y.raw == 0 {
		panic(ErrPrecondition{"Div", "division by zero"})
	}
	hi, lo := arith.Lsh(x.raw, fracBits[S]())
	return Fixed[I, S]{arith.DivOverflow(hi, lo, y.raw)}
}

// Lsh returns x<<n, that is x*2**n. The result wraps on overflow.
func (x Fixed[I, S]) Lsh(n uint) Fixed[I, S] { return Fixed[I, S]{x.raw << n} }

// Rsh returns x>>n, that is x/2**n rounded toward negative infinity.
func (x Fixed[I, S]) Rsh(n uint) Fixed[I, S] { return Fixed[I, S]{x.raw >> n} }

// Neg returns -x. Neg(Min) wraps to Min.
func (x Fixed[I, S]) Neg() Fixed[I, S] { return Fixed[I, S]{-x.raw} }

// Abs returns |x|. Abs(Min) wraps to Min.
func (x Fixed[I, S]) Abs() Fixed[I, S] {
	if x.raw < 0 {
		return Fixed[I, S]{-x.raw}
	}
	return x
}

// AddInt returns x+i. The result wraps on overflow.
func (x Fixed[I, S]) AddInt(i I) Fixed[I, S] { return Fixed[I, S]{x.raw + i<<fracBits[S]()} }

// SubInt returns x-i. The result wraps on overflow.
func (x Fixed[I, S]) SubInt(i I) Fixed[I, S] { return Fixed[I, S]{x.raw - i<<fracBits[S]()} }

// MulInt returns x*i, saturating to Max or Min.
func (x Fixed[I, S]) MulInt(i I) Fixed[I, S] { return Fixed[I, S]{arith.MulShift(x.raw, i, 0)} }

// DivInt returns x/i truncated toward zero. It panics with ErrPrecondition if
// i is zero. DivInt(Min, -1) saturates to Max.
func (x Fixed[I, S]) DivInt(i I) Fixed[I, S] {
	if i == 0 {
		panic(ErrPrecondition{"DivInt", "division by zero"})
	}
	if arith.Signed[I]() && i == ^I(0) {
		// -Min overflows: go through DivOverflow
		hi, lo := arith.Lsh(x.raw, 0)
		return Fixed[I, S]{arith.DivOverflow(hi, lo, i)}
	}
	return Fixed[I, S]{x.raw / i}
}

// Floor returns the largest integer less than or equal to x.
func (x Fixed[I, S]) Floor() I { return x.raw >> fracBits[S]() }

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x Fixed[I, S]) Cmp(y Fixed[I, S]) int {
	switch {
	case x.raw < y.raw:
		return -1
	case x.raw > y.raw:
		return +1
	}
	return 0
}

// Eq reports whether x == y.
func (x Fixed[I, S]) Eq(y Fixed[I, S]) bool { return x.raw == y.raw }

// Ne reports whether x != y.
func (x Fixed[I, S]) Ne(y Fixed[I, S]) bool { return x.raw != y.raw }

// Lt reports whether x < y.
func (x Fixed[I, S]) Lt(y Fixed[I, S]) bool { return x.raw < y.raw }

// Le reports whether x <= y.
func (x Fixed[I, S]) Le(y Fixed[I, S]) bool { return x.raw <= y.raw }

// Gt reports whether x > y.
func (x Fixed[I, S]) Gt(y Fixed[I, S]) bool { return x.raw > y.raw }

// Ge reports whether x >= y.
func (x Fixed[I, S]) Ge(y Fixed[I, S]) bool { return x.raw >= y.raw }

// CmpInt compares x and the integer i like Cmp. An i outside of the integral
// range of x's type compares without being scaled, so it never wraps.
func (x Fixed[I, S]) CmpInt(i I) int {
	f := fracBits[S]()
	s := i << f
	if s>>f != i {
		// i does not fit: any x is on the same side of it
		if i < 0 {
			return +1
		}
		return -1
	}
	return x.Cmp(Fixed[I, S]{s})
}

// EqInt reports whether x == i.
func (x Fixed[I, S]) EqInt(i I) bool { return x.CmpInt(i) == 0 }

// NeInt reports whether x != i.
func (x Fixed[I, S]) NeInt(i I) bool { return x.CmpInt(i) != 0 }

// LtInt reports whether x < i.
func (x Fixed[I, S]) LtInt(i I) bool { return x.CmpInt(i) < 0 }

// LeInt reports whether x <= i.
func (x Fixed[I, S]) LeInt(i I) bool { return x.CmpInt(i) <= 0 }

// GtInt reports whether x > i.
func (x Fixed[I, S]) GtInt(i I) bool { return x.CmpInt(i) > 0 }

// GeInt reports whether x >= i.
func (x Fixed[I, S]) GeInt(i I) bool { return x.CmpInt(i) >= 0 }
