// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package random provides random distributions of fixed-point values.
package random

import (
	"fmt"

	"github.com/db47h/fixed"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

// Uniform is a uniform distribution of Fixed values over the half-open
// interval [a, b). Every representable value in the interval is equally
// likely.
//
// A Uniform holds no random source and is safe for concurrent use; the
// *rand.Rand given to Rand is not.
type Uniform[I constraints.Integer, S fixed.Scale] struct {
	a, b fixed.Fixed[I, S]
}

// NewUniform returns the uniform distribution over [a, b). It panics with a
// fixed.ErrPrecondition if the interval is empty.
func NewUniform[I constraints.Integer, S fixed.Scale](a, b fixed.Fixed[I, S]) Uniform[I, S] {
	if !a.Lt(b) {
		panic(fixed.ErrPrecondition{Op: "NewUniform", Msg: fmt.Sprintf("empty interval [%v, %v)", a, b)})
	}
	return Uniform[I, S]{a, b}
}

// NewUnit returns the uniform distribution over [0, 1). Fixed[I, S] must have
// at least one integral digit.
func NewUnit[I constraints.Integer, S fixed.Scale]() Uniform[I, S] {
	return NewUniform(fixed.Fixed[I, S]{}, fixed.New[I, S](1))
}

// Param returns the bounds of the interval.
func (u Uniform[I, S]) Param() (a, b fixed.Fixed[I, S]) { return u.a, u.b }

// Min returns the smallest value that can be drawn.
func (u Uniform[I, S]) Min() fixed.Fixed[I, S] { return u.a }

// Max returns the largest value that can be drawn, one ulp below b.
func (u Uniform[I, S]) Max() fixed.Fixed[I, S] { return fixed.FromRaw[I, S](u.b.Raw() - 1) }

// Equal reports whether u and v have the same bounds.
func (u Uniform[I, S]) Equal(v Uniform[I, S]) bool { return u.a.Eq(v.a) && u.b.Eq(v.b) }

func (u Uniform[I, S]) String() string { return fmt.Sprintf("%v %v", u.a, u.b) }

// Rand returns a value drawn from r.
func (u Uniform[I, S]) Rand(r *rand.Rand) fixed.Fixed[I, S] {
	// number of values in [a, b), computed modulo 2**64 for any width and
	// signedness. It is at most 2**64-1.
	n := uint64(u.b.Raw()) - uint64(u.a.Raw())
	return fixed.FromRaw[I, S](u.a.Raw() + I(r.Uint64n(n)))
}
