// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package fixed implements binary fixed-point arithmetic with predictable,
bit-exact results on any platform.

A Fixed[I, S] is an integer of type I scaled by 2**F, where F is the number of
fractional bits given by the scale S, one of the marker types Q0 to Q64:

	type S16_16 = fixed.Fixed[int32, fixed.Q16] // 16 integral bits including the sign

The zero value of a Fixed is 0. Values are created with New for integers,
FromRaw for an already scaled bit pattern, or Parse for decimal strings:

	x := fixed.New[int32, fixed.Q16](3)         // 3
	y := fixed.FromRaw[int32, fixed.Q16](5835)  // 5835/65536 ≈ 0.089
	z := fixed.MustParse[int32, fixed.Q16]("-1.5")

F may not exceed the width of I. The predefined formats are validated when
the package is initialized; other types can be validated with Check and cause
a panic with an ErrConfig when first constructed otherwise.

# Arithmetic

Add, Sub, Lsh, AddInt and SubInt wrap around on overflow, like the underlying
integer type. Mul and Div compute an exact double-width intermediate result
and saturate to Max or Min when the result does not fit. Products are
truncated to the precision of the receiver; MulWide returns a lossless product
in a wider type. Div panics with an ErrPrecondition for a zero divisor.

# Conversions

Widen converts a value to a type with at least as many integral digits and
fractional bits, without loss. Narrow performs any other conversion and reports
its Accuracy.

Values are plain Go values: they are safe for concurrent use and operations
never allocate.

The math sub-package implements a CORDIC kernel (sine, cosine and
rectangular to polar conversion), integer square roots and hypot.
*/
package fixed
