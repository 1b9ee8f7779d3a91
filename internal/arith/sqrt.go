// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arith

import (
	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// Sqrt64 returns floor(√n). Two bits of n are consumed per step using only
// shifts, additions and comparisons.
func Sqrt64(n uint64) uint64 {
	var root uint64
	rem := n
	place := uint64(1) << 62
	for place > rem {
		place >>= 2
	}
	for place != 0 {
		if rem >= root+place {
			rem -= root + place
			root += place << 1
		}
		root >>= 1
		place >>= 2
	}
	return root
}

// Sqrt128 returns floor(√n). It is the double-width counterpart of Sqrt64;
// the result always fits in 64 bits.
func Sqrt128(n uint128.Uint128) uint64 {
	root := uint128.Zero
	rem := n
	place := uint128.New(0, 1<<62)
	for place.Cmp(rem) > 0 {
		place = place.Rsh(2)
	}
	for !place.IsZero() {
		if t := root.Add(place); rem.Cmp(t) >= 0 {
			rem = rem.Sub(t)
			root = t.Add(place)
		}
		root = root.Rsh(1)
		place = place.Rsh(2)
	}
	return root.Lo
}

// Abs returns the magnitude of a as an unsigned 64-bit integer. It is exact
// for Min[I]() as well.
func Abs[I constraints.Integer](a I) uint64 {
	if a < 0 {
		return -uint64(a)
	}
	return uint64(a)
}

// Square returns the exact square of a.
func Square[I constraints.Integer](a I) uint128.Uint128 {
	m := Abs(a)
	hi, lo := MulOverflow(m, m)
	return uint128.New(lo, hi)
}

// SumSquares returns a²+b². The second result is false if the sum does not
// fit in 128 bits, which can only happen for unsigned 64-bit operands.
func SumSquares[I constraints.Integer](a, b I) (uint128.Uint128, bool) {
	a2, b2 := Square(a), Square(b)
	s := a2.AddWrap(b2)
	return s, s.Cmp(a2) >= 0
}
