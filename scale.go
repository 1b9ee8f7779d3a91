// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

//go:generate go run mkscale.go

// A Scale selects the number of fractional bits of a Fixed type. The Q0 to
// Q64 marker types are the only implementations provided; they are zero-size
// and only ever used as type arguments.
type Scale interface {
	FracBits() uint
}

func fracBits[S Scale]() uint {
	var s S
	return s.FracBits()
}
