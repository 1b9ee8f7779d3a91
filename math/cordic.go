// Package math implements trigonometric and geometric functions for fixed-point
// values: a CORDIC kernel for sine, cosine and rectangular to polar
// conversion, integer square roots and hypot.
//
// All functions are deterministic and never allocate. The CORDIC functions
// run at most 30 iterations.
package math

import (
	"github.com/db47h/fixed"
	"github.com/db47h/fixed/internal/arith"
	"golang.org/x/exp/constraints"
)

//go:generate go run mktables.go

const (
	quarterTurn      = 0x40000000
	halfTurn         = 0x80000000
	threeQuarterTurn = 0xC0000000
)

// Sincos returns the cosine and sine of the angle t, in turns.
//
// Angles in the left half-plane are folded by a half turn so that the
// rotations stay within the right half-plane, where they converge. The
// absolute error is below 2**-25.
func Sincos(t fixed.Frac32) (cos, sin fixed.S2_30) {
	a := t.Raw()
	fold := a > quarterTurn && a < threeQuarterTurn
	if fold {
		a += halfTurn
	}

	vx, vy := int32(cordicK), int32(0)
	i := 0
	// a is the residual angle, its sign is the sign of int32(a)
	for ; i < iterations && a != 0; i++ {
		x, y := vx>>i, vy>>i
		if int32(a) >= 0 {
			vx, vy = vx-y, x+vy
			a -= arctangents[i]
		} else {
			vx, vy = vx+y, -x+vy
			a += arctangents[i]
		}
	}

	cos, sin = fixed.FromRaw[int32, fixed.Q30](vx), fixed.FromRaw[int32, fixed.Q30](vy)
	if i < iterations {
		// early exit: the vector is not fully scaled by cordicK yet
		r := fixed.FromRaw[int32, fixed.Q30](gainRatios[i])
		cos, sin = cos.Mul(r), sin.Mul(r)
	}
	if fold {
		cos, sin = cos.Neg(), sin.Neg()
	}
	return cos, sin
}

// Rectp converts the rectangular coordinates (c, s) to polar coordinates. It
// returns the radius r and the angle t in turns.
//
// Intermediate values grow up to 1.65 times the radius: I must have enough
// headroom for this, otherwise the result is undefined. c must not be the
// minimum value of its type.
func Rectp[I constraints.Signed, S fixed.Scale](c, s fixed.Fixed[I, S]) (r fixed.Fixed[I, S], t fixed.Frac32) {
	vx, vy := c.Raw(), s.Raw()
	fold := vx < 0
	if fold {
		vx, vy = -vx, -vy
	}

	var a uint32
	i := 0
	for ; i < iterations && vy != 0; i++ {
		x, y := vx>>i, vy>>i
		if vy > 0 {
			vx, vy = vx+y, -x+vy
			a += arctangents[i]
		} else {
			vx, vy = vx-y, x+vy
			a -= arctangents[i]
		}
	}

	g := int64(cordicK)
	if i < iterations {
		g = int64(gains[i])
	}
	vx = I(arith.MulShift(int64(vx), g, 30))
	if fold {
		a += halfTurn
	}
	return fixed.FromRaw[I, S](vx), fixed.NewFrac32Raw(a)
}
