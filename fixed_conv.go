// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"fmt"
	"io"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/db47h/fixed/internal/arith"
	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// CheckWiden returns an ErrConfig if values of Fixed[I, S] cannot be converted
// to Fixed[I2, S2] without loss, that is if the target has fewer integral
// digits or fewer fractional bits than the source, or if the target is
// unsigned and the source is signed.
func CheckWiden[I2 constraints.Integer, S2 Scale, I constraints.Integer, S Scale]() error {
	if err := Check[I, S](); err != nil {
		return err
	}
	if err := Check[I2, S2](); err != nil {
		return err
	}
	var (
		src Fixed[I, S]
		dst Fixed[I2, S2]
	)
	switch {
	case src.IsSigned() && !dst.IsSigned():
		return ErrConfig{fmt.Sprintf("fixed: cannot widen signed %T to unsigned %T", src.raw, dst.raw)}
	case dst.FracBits() < src.FracBits():
		return ErrConfig{fmt.Sprintf("fixed: cannot widen %d fractional bits to %d", src.FracBits(), dst.FracBits())}
	case dst.IntegralDigits() < src.IntegralDigits():
		return ErrConfig{fmt.Sprintf("fixed: cannot widen %d integral digits to %d", src.IntegralDigits(), dst.IntegralDigits())}
	}
	return nil
}

// Widen converts x to Fixed[I2, S2]. The conversion is exact. Widen panics
// with an ErrConfig if CheckWiden reports an error for the two types; use
// Narrow for conversions that may lose information.
//
//	y := fixed.Widen[int64, fixed.Q32](x) // x is a S16_16
func Widen[I2 constraints.Integer, S2 Scale, I constraints.Integer, S Scale](x Fixed[I, S]) Fixed[I2, S2] {
	if err := CheckWiden[I2, S2, I, S](); err != nil {
		panic(err)
	}
	return Fixed[I2, S2]{I2(x.raw) << (fracBits[S2]() - fracBits[S]())}
}

// Narrow converts x to Fixed[I2, S2] like a numeric type conversion: excess
// fractional bits are truncated toward negative infinity and integral bits
// that do not fit are discarded. The returned Accuracy is Exact if the result
// is equal to x, Below or Above otherwise.
func Narrow[I2 constraints.Integer, S2 Scale, I constraints.Integer, S Scale](x Fixed[I, S]) (Fixed[I2, S2], Accuracy) {
	mustCheck[I, S]()
	mustCheck[I2, S2]()
	f, f2 := fracBits[S](), fracBits[S2]()
	var r I2
	if f2 >= f {
		r = I2(x.raw) << (f2 - f)
	} else {
		r = I2(x.raw >> (f - f2))
	}
	return Fixed[I2, S2]{r}, Accuracy(cmpScaled(r, f, x.raw, f2))
}

// cmpScaled compares a*2**sa and b*2**sb exactly.
func cmpScaled[A, B constraints.Integer](a A, sa uint, b B, sb uint) int {
	na, nb := a < 0, b < 0
	if na != nb {
		if na {
			return -1
		}
		return +1
	}
	c := uint128.From64(arith.Abs(a)).Lsh(sa).Cmp(uint128.From64(arith.Abs(b)).Lsh(sb))
	if na {
		return -c
	}
	return c
}

// Float64 returns the float64 value nearest to x. It is meant for display
// and is never used by the arithmetic of this package.
func (x Fixed[I, S]) Float64() float64 {
	return math.Ldexp(float64(x.raw), -int(fracBits[S]()))
}

// String returns an approximate decimal representation of x, as formatted by
// strconv.FormatFloat(x.Float64(), 'f', -1, 64).
func (x Fixed[I, S]) String() string {
	return strconv.FormatFloat(x.Float64(), 'f', -1, 64)
}

var _ fmt.Formatter = Fixed[int32, Q16]{}

// Format implements fmt.Formatter. The floating-point verbs 'e', 'E', 'f',
// 'F', 'g' and 'G' format the approximation returned by Float64, integer verbs
// format the raw value. '%v' and '%s' print the same as String, while '%+v'
// prints the raw value.
func (x Fixed[I, S]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		if verb == 'v' && s.Flag('+') {
			fmt.Fprintf(s, "%d", x.raw)
			return
		}
		fmt.Fprintf(s, fmt.FormatString(s, 's'), x.String())
	case 'e', 'E', 'f', 'F', 'g', 'G':
		fmt.Fprintf(s, fmt.FormatString(s, verb), x.Float64())
	case 'd', 'b', 'o', 'O', 'x', 'X':
		fmt.Fprintf(s, fmt.FormatString(s, verb), x.raw)
	default:
		fmt.Fprintf(s, "%%!%c(fixed.Fixed=%s)", verb, x.String())
	}
}

// scanDecimal reads the longest prefix of r that forms a decimal number. ip
// receives the integral part and fp the first 19 digits of the fractional
// part, fd being their count. Extra fractional digits are consumed and
// ignored. ovf is set if the integral part does not fit in 64 bits.
func scanDecimal(r io.ByteScanner) (neg bool, ip, fp uint64, fd int, ovf bool, err error) {
	if neg, err = scanSign(r); err != nil {
		if err == io.EOF {
			err = errNoDigits
		}
		return
	}

	// prev encodes the previously seen char: it is one
	// of '_', '0' (a digit), or '.' (anything else). A
	// valid separator '_' may only occur after a digit.
	prev := '.'
	invalSep := false
	count := 0
	dp := false

	ch, err := r.ReadByte()
	for err == nil {
		if ch == '.' && !dp {
			dp = true
			if prev == '_' {
				invalSep = true
			}
			prev = '.'
		} else if ch == '_' {
			if prev != '0' {
				invalSep = true
			}
			prev = '_'
		} else if '0' <= ch && ch <= '9' {
			d := uint64(ch - '0')
			prev = '0'
			count++
			if dp {
				if fd < 19 {
					fp = fp*10 + d
					fd++
				}
			} else if !ovf {
				h, l := bits.Mul64(ip, 10)
				var c uint64
				ip, c = bits.Add64(l, d, 0)
				ovf = h != 0 || c != 0
			}
		} else {
			err = r.UnreadByte() // ch does not belong to number anymore
			break
		}
		ch, err = r.ReadByte()
	}

	if err == io.EOF {
		err = nil
	}
	// other errors take precedence over invalid separators
	if err == nil && (invalSep || prev == '_') {
		err = errInvalSep
	}
	if err == nil && count == 0 {
		err = errNoDigits
	}
	return
}

var pow10tab = [...]uint64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
	10000000000000000000,
}

// fromDecimal returns ±(ip + fp/10**fd) truncated toward zero.
func fromDecimal[I constraints.Integer, S Scale](neg bool, ip, fp uint64, fd int) (Fixed[I, S], error) {
	f := fracBits[S]()

	// floor(fp * 2**f / 10**fd) fits in f bits since fp < 10**fd
	var q uint64
	if fd > 0 {
		var rem uint64
		q, rem = bits.Div64(fp>>(64-f), fp<<f, pow10tab[fd])
		if debugFixed && q>>f != 0 && f < 64 {
			panic(fmt.Sprintf("fixed: fraction %d/10^%d overflows %d bits (rem %d)", fp, fd, f, rem))
		}
	}

	if f == 64 && ip != 0 || f < 64 && ip > math.MaxUint64>>f {
		return Fixed[I, S]{}, ErrRange
	}
	m, c := bits.Add64(ip<<f, q, 0)
	if c != 0 {
		return Fixed[I, S]{}, ErrRange
	}

	if neg {
		if m > arith.Abs(arith.Min[I]()) {
			return Fixed[I, S]{}, ErrRange
		}
		return Fixed[I, S]{I(-m)}, nil
	}
	if m > uint64(arith.Max[I]()) {
		return Fixed[I, S]{}, ErrRange
	}
	return Fixed[I, S]{I(m)}, nil
}

func scan[I constraints.Integer, S Scale](r io.ByteScanner) (Fixed[I, S], error) {
	neg, ip, fp, fd, ovf, err := scanDecimal(r)
	if err != nil {
		return Fixed[I, S]{}, err
	}
	if ovf {
		return Fixed[I, S]{}, ErrRange
	}
	return fromDecimal[I, S](neg, ip, fp, fd)
}

// Parse parses a decimal number of the form
//
//	number = [ sign ] ( digits [ "." [ digits ] ] | "." digits ) .
//	sign   = "+" | "-" .
//	digits = digit { [ "_" ] digit } .
//	digit  = "0" ... "9" .
//
// The fractional part is truncated toward zero to the precision of
// Fixed[I, S]. Fractional digits past the 19th are ignored.
//
// The entire string must be consumed. The returned error wraps ErrSyntax if s
// is not a valid number and ErrRange if its integral part is out of the range
// of Fixed[I, S].
func Parse[I constraints.Integer, S Scale](s string) (Fixed[I, S], error) {
	mustCheck[I, S]()
	r := strings.NewReader(s)
	x, err := scan[I, S](r)
	if err == nil {
		// entire string must have been consumed
		if _, err2 := r.ReadByte(); err2 == nil {
			err = ErrSyntax
		}
	}
	if err != nil {
		return Fixed[I, S]{}, fmt.Errorf("fixed: parsing %q: %w", s, err)
	}
	return x, nil
}

// MustParse is like Parse but panics if s cannot be parsed. It simplifies the
// initialization of global variables.
func MustParse[I constraints.Integer, S Scale](s string) Fixed[I, S] {
	x, err := Parse[I, S](s)
	if err != nil {
		panic(err)
	}
	return x
}

// Scan is a support routine for fmt.Scanner; it sets z to the value of the
// scanned number. It accepts the verbs 'v', 'f', 'F', 'g', 'G', 'e' and 'E'.
func (z *Fixed[I, S]) Scan(s fmt.ScanState, ch rune) error {
	switch ch {
	case 'v', 'f', 'F', 'g', 'G', 'e', 'E':
	default:
		return fmt.Errorf("fixed: invalid verb %c for Scan", ch)
	}
	mustCheck[I, S]()
	s.SkipSpace()
	x, err := scan[I, S](byteReader{s})
	if err != nil {
		return err
	}
	*z = x
	return nil
}
