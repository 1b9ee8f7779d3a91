// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arith implements the double-width integer primitives backing
// fixed-point multiplication and division.
//
// A double-width value is passed around as a pair (hi, lo) where lo holds the
// low Width[I]() bits, zero-extended into a uint64, and hi holds the upper
// half with the sign of the full value.
package arith

import (
	"errors"
	"math"
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

//go:generate go tool stringer -type=Strategy

// Strategy is the way double-width products and quotients are formed for a
// given operand width.
type Strategy uint8

const (
	// Native promotes operands to a 64-bit integer. Used for widths of up to
	// 32 bits.
	Native Strategy = iota
	// Schoolbook splits 64-bit operands into 32-bit halves and recombines
	// the four partial products with carry propagation. Quotients use the
	// 128/64 bits.Div64 instruction.
	Schoolbook
)

var errDivideByZero = errors.New("arith: division by zero")

// Width returns the bit width of I.
func Width[I constraints.Integer]() uint {
	var x I
	return uint(unsafe.Sizeof(x)) * 8
}

// Signed reports whether I is a signed integer type.
func Signed[I constraints.Integer]() bool {
	return ^I(0) < 0
}

// Max returns the largest value of type I.
func Max[I constraints.Integer]() I {
	if Signed[I]() {
		return I(^uint64(0) >> (65 - Width[I]()))
	}
	return ^I(0)
}

// Min returns the smallest value of type I.
func Min[I constraints.Integer]() I {
	if Signed[I]() {
		return ^Max[I]()
	}
	return 0
}

// StrategyOf returns the Strategy used for operands of type I. The result
// only depends on I, so the branch is resolved once per instantiation.
func StrategyOf[I constraints.Integer]() Strategy {
	if Width[I]() <= 32 {
		return Native
	}
	return Schoolbook
}

func mask(w uint) uint64 {
	return uint64(1)<<w - 1
}

// MulOverflow returns the exact double-width product a*b as hi:lo.
func MulOverflow[I constraints.Integer](a, b I) (hi I, lo uint64) {
	w := Width[I]()
	if StrategyOf[I]() == Native {
		if Signed[I]() {
			p := int64(a) * int64(b)
			return I(p >> w), uint64(p) & mask(w)
		}
		p := uint64(a) * uint64(b)
		return I(p >> w), p & mask(w)
	}

	h, l := Mul64Schoolbook(uint64(a), uint64(b))
	if Signed[I]() {
		// two's complement correction of the unsigned product
		if a < 0 {
			h -= uint64(b)
		}
		if b < 0 {
			h -= uint64(a)
		}
	}
	return I(h), l
}

// Mul64Schoolbook returns the 128-bit product of x and y computed from four
// 32x32 partial products.
//
// See Warren, Hacker's Delight, 8-2.
func Mul64Schoolbook(x, y uint64) (hi, lo uint64) {
	const m32 = 1<<32 - 1
	x0, x1 := x&m32, x>>32
	y0, y1 := y&m32, y>>32
	w0 := x0 * y0
	t := x1*y0 + w0>>32
	w1 := t&m32 + x0*y1
	w2 := t >> 32
	hi = x1*y1 + w2 + w1>>32
	lo = x * y
	return hi, lo
}

// DivOverflow returns the quotient (hi:lo)/b truncated toward zero. If the
// quotient does not fit in I, the result saturates to Min[I]() or Max[I]()
// according to its sign.
//
// b must not be zero; DivOverflow panics otherwise.
func DivOverflow[I constraints.Integer](hi I, lo uint64, b I) I {
	if b == 0 {
		panic(errDivideByZero)
	}
	w := Width[I]()
	if StrategyOf[I]() == Native {
		if Signed[I]() {
			n := int64(hi)<<w | int64(lo)
			d := int64(b)
			if d == -1 && n == math.MinInt64 {
				return Max[I]()
			}
			return clamp[I](n / d)
		}
		q := (uint64(hi)<<w | lo) / uint64(b)
		if q > uint64(Max[I]()) {
			return Max[I]()
		}
		return I(q)
	}

	if !Signed[I]() {
		if uint64(hi) >= uint64(b) {
			return Max[I]()
		}
		q, _ := bits.Div64(uint64(hi), lo, uint64(b))
		return I(q)
	}

	neg := (hi < 0) != (b < 0)
	nh, nl := uint64(hi), lo
	if hi < 0 {
		nh, nl = neg128(nh, nl)
	}
	d := uint64(b)
	if b < 0 {
		d = -d
	}
	if nh >= d {
		return saturate[I](neg)
	}
	q, _ := bits.Div64(nh, nl, d)
	if neg {
		if q > 1<<63 {
			return Min[I]()
		}
		return I(-q)
	}
	if q > math.MaxInt64 {
		return Max[I]()
	}
	return I(q)
}

// MulShift returns (a*b)>>shift computed on the double-width product,
// saturating to Min[I]() or Max[I]() if the result does not fit in I.
// shift must not exceed Width[I]().
func MulShift[I constraints.Integer](a, b I, shift uint) I {
	w := Width[I]()
	hi, lo := MulOverflow(a, b)
	r := I(lo>>shift) | hi<<(w-shift)
	// bits shifted out of the top must be a sign extension of r
	var ext I
	if Signed[I]() {
		ext = r >> (w - 1)
	}
	if hi>>shift != ext {
		return saturate[I](hi < 0)
	}
	return r
}

// Lsh returns a<<s as a double-width value. s must not exceed Width[I]().
func Lsh[I constraints.Integer](a I, s uint) (hi I, lo uint64) {
	w := Width[I]()
	return a >> (w - s), uint64(a) << s & mask(w)
}

// neg128 returns the two's complement of hi:lo.
func neg128(hi, lo uint64) (uint64, uint64) {
	lo, borrow := bits.Sub64(0, lo, 0)
	hi, _ = bits.Sub64(0, hi, borrow)
	return hi, lo
}

func saturate[I constraints.Integer](neg bool) I {
	if neg {
		return Min[I]()
	}
	return Max[I]()
}

func clamp[I constraints.Integer](v int64) I {
	if v > int64(Max[I]()) {
		return Max[I]()
	}
	if v < int64(Min[I]()) {
		return Min[I]()
	}
	return I(v)
}
