// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

// Predefined formats. The name gives the number of integral bits, sign bit
// included, and the number of fractional bits.
type (
	S16_16 = Fixed[int32, Q16]
	U16_16 = Fixed[uint32, Q16]
	S2_30  = Fixed[int32, Q30]
	S34_30 = Fixed[int64, Q30]
	// Frac32 is an angle in turns: one full turn is 2**32. Values wrap
	// around naturally.
	Frac32 = Fixed[uint32, Q32]
)

// NewS16_16 returns i as a S16_16.
func NewS16_16(i int32) S16_16 { return New[int32, Q16](i) }

// NewU16_16 returns i as a U16_16.
func NewU16_16(i uint32) U16_16 { return New[uint32, Q16](i) }

// NewS2_30 returns i as a S2_30. Only -2, -1, 0 and 1 are representable.
func NewS2_30(i int32) S2_30 { return New[int32, Q30](i) }

// NewS34_30 returns i as a S34_30.
func NewS34_30(i int64) S34_30 { return New[int64, Q30](i) }

// NewFrac32Raw returns the angle raw/2**32 turns.
func NewFrac32Raw(raw uint32) Frac32 { return FromRaw[uint32, Q32](raw) }

func init() {
	mustCheck[int32, Q16]()
	mustCheck[uint32, Q16]()
	mustCheck[int32, Q30]()
	mustCheck[int64, Q30]()
	mustCheck[uint32, Q32]()
}
