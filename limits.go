// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"github.com/db47h/fixed/internal/arith"
	"golang.org/x/exp/constraints"
)

// Max returns the largest value of Fixed[I, S].
func Max[I constraints.Integer, S Scale]() Fixed[I, S] {
	mustCheck[I, S]()
	return Fixed[I, S]{arith.Max[I]()}
}

// Min returns the smallest value of Fixed[I, S].
func Min[I constraints.Integer, S Scale]() Fixed[I, S] {
	mustCheck[I, S]()
	return Fixed[I, S]{arith.Min[I]()}
}

// Epsilon returns the smallest positive value of Fixed[I, S], 2**-F.
func Epsilon[I constraints.Integer, S Scale]() Fixed[I, S] {
	return FromRaw[I, S](1)
}

// RoundError returns the largest error of a rounding to nearest, one half of
// an ulp. It is 0 if S has no fractional bits.
func RoundError[I constraints.Integer, S Scale]() Fixed[I, S] {
	f := fracBits[S]()
	if f == 0 {
		return Fixed[I, S]{}
	}
	return FromRaw[I, S](1 << (f - 1))
}
