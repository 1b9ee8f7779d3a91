// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWiden(t *testing.T) {
	x := NewS16_16(2457)
	y := Widen[int64, Q32](x)
	assert.Equal(t, int64(2457)<<32, y.Raw())
	z, acc := Narrow[int32, Q16](y)
	assert.Equal(t, x, z)
	assert.Equal(t, Exact, acc)

	n := FromRaw[int32, Q16](-5835)
	assert.Equal(t, int64(-5835)<<14, Widen[int64, Q30](n).Raw())
	assert.Equal(t, int64(-5835), Widen[int64, Q16](n).Raw())
	assert.Equal(t, uint64(5835)<<16, Widen[uint64, Q32](FromRaw[uint32, Q16](5835)).Raw())
	// unsigned to signed with enough room
	assert.Equal(t, int64(65535)<<30, Widen[int64, Q30](NewU16_16(65535)).Raw())

	td := []struct {
		name string
		f    func()
	}{
		{"fewer fractional bits", func() { Widen[int32, Q8](x) }},
		{"fewer integral digits", func() { Widen[int32, Q30](x) }},
		{"signed to unsigned", func() { Widen[uint64, Q32](x) }},
		{"sign bit", func() { Widen[int32, Q16](NewU16_16(1)) }},
		{"invalid target", func() { Widen[int32, Q33](x) }},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			assert.Panics(t, d.f)
		})
	}
	assert.NoError(t, CheckWiden[int64, Q30, int32, Q16]())
	var cfgErr ErrConfig
	assert.ErrorAs(t, CheckWiden[int16, Q8, int32, Q16](), &cfgErr)
}

func TestNarrow(t *testing.T) {
	td := []struct {
		name string
		x    S34_30
		raw  int32
		acc  Accuracy
	}{
		{"exact", NewS34_30(-3), -3 << 16, Exact},
		{"fraction", MustParse[int64, Q30]("1.75"), 1<<16 + 3<<14, Exact},
		{"floor", FromRaw[int64, Q30](1<<30 + 1), 1 << 16, Below},
		{"floor neg", FromRaw[int64, Q30](-1<<30 - 1), -1<<16 - 1, Below},
		{"wrap", NewS34_30(70000), 292552704, Below},
		{"wrap neg", NewS34_30(-70000), -292552704, Above},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			z, acc := Narrow[int32, Q16](d.x)
			assert.Equal(t, d.raw, z.Raw())
			assert.Equal(t, d.acc, acc)
		})
	}

	// to integers
	i, acc := Narrow[int8, Q0](MustParse[int32, Q16]("-1.25"))
	assert.Equal(t, int8(-2), i.Raw())
	assert.Equal(t, Below, acc)
	u, acc := Narrow[uint8, Q0](NewS16_16(-1))
	assert.Equal(t, uint8(255), u.Raw())
	assert.Equal(t, Above, acc)
	assert.Equal(t, "Above", acc.String())
	w, acc := Narrow[uint64, Q64](FromRaw[uint32, Q32](math.MaxUint32))
	assert.Equal(t, uint64(math.MaxUint32)<<32, w.Raw())
	assert.Equal(t, Exact, acc)
}

func TestFixed_String(t *testing.T) {
	td := []struct {
		x    fmt.Stringer
		want string
	}{
		{NewS16_16(3), "3"},
		{FromRaw[int32, Q16](-1 << 15), "-0.5"},
		{FromRaw[int32, Q16](1), "0.0000152587890625"},
		{NewFrac32Raw(1 << 30), "0.25"},
		{NewS34_30(-1 << 20), "-1048576"},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			assert.Equal(t, d.want, d.x.String())
		})
	}
}

func TestFixed_Format(t *testing.T) {
	x := MustParse[int32, Q16]("-1.5")
	td := []struct {
		format string
		want   string
	}{
		{"%v", "-1.5"},
		{"%s", "-1.5"},
		{"%6v", "  -1.5"},
		{"%+v", "-98304"},
		{"%d", "-98304"},
		{"%x", "-18000"},
		{"%.3f", "-1.500"},
		{"%g", "-1.5"},
		{"%e", "-1.500000e+00"},
		{"%q", "%!q(fixed.Fixed=-1.5)"},
	}
	for _, d := range td {
		t.Run(d.format, func(t *testing.T) {
			assert.Equal(t, d.want, fmt.Sprintf(d.format, x))
		})
	}
	assert.Equal(t, -1.5, x.Float64())
}

func TestParse(t *testing.T) {
	td := []struct {
		s   string
		raw int32
		err error
	}{
		{"3", 3 << 16, nil},
		{"+3", 3 << 16, nil},
		{"-1.5", -3 << 15, nil},
		{"0.1", 6553, nil},
		{"-0.1", -6553, nil},
		{".5", 1 << 15, nil},
		{"5.", 5 << 16, nil},
		{"1_000.25", 65552384, nil},
		{"32767.99998474121", 32767<<16 + 65534, nil},
		{"-32768", math.MinInt32, nil},
		{"0.00000000000000000001", 0, nil},
		{"32768", 0, ErrRange},
		{"-32768.5", 0, ErrRange},
		{"99999999999999999999999", 0, ErrRange},
		{"", 0, ErrSyntax},
		{"-", 0, ErrSyntax},
		{".", 0, ErrSyntax},
		{"abc", 0, ErrSyntax},
		{"1.2.3", 0, ErrSyntax},
		{"1e3", 0, ErrSyntax},
		{"1__0", 0, ErrSyntax},
		{"_1", 0, ErrSyntax},
		{"1_", 0, ErrSyntax},
		{"1_.5", 0, ErrSyntax},
	}
	var got, want []string
	for _, d := range td {
		x, err := Parse[int32, Q16](d.s)
		if d.err != nil {
			require.Error(t, err, d.s)
			assert.True(t, errors.Is(err, d.err), "%q: got %v, want %v", d.s, err, d.err)
			continue
		}
		require.NoError(t, err, d.s)
		got = append(got, fmt.Sprintf("%s: %+v", d.s, x))
		want = append(want, fmt.Sprintf("%s: %d", d.s, d.raw))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}

	_, err := Parse[int32, Q16]("1.2.3")
	assert.EqualError(t, err, `fixed: parsing "1.2.3": invalid syntax`)
}

func TestParse_formats(t *testing.T) {
	u, err := Parse[uint32, Q16]("-0")
	require.NoError(t, err)
	assert.Equal(t, uint32(0), u.Raw())
	_, err = Parse[uint32, Q16]("-1")
	assert.ErrorIs(t, err, ErrRange)

	f, err := Parse[uint32, Q32]("0.25")
	require.NoError(t, err)
	assert.Equal(t, NewFrac32Raw(1<<30), f)
	_, err = Parse[uint32, Q32]("1")
	assert.ErrorIs(t, err, ErrRange)

	h := MustParse[uint64, Q64]("0.5")
	assert.Equal(t, uint64(1<<63), h.Raw())
	_, err = Parse[uint64, Q64]("1")
	assert.ErrorIs(t, err, ErrRange)

	s := MustParse[int64, Q30]("-8589934592")
	assert.Equal(t, Min[int64, Q30](), s)

	i := MustParse[int8, Q0]("-128.9")
	assert.Equal(t, int8(-128), i.Raw())

	assert.Panics(t, func() { MustParse[int32, Q16]("x") })
}

func TestFixed_Scan(t *testing.T) {
	var x, y S16_16
	n, err := fmt.Sscan("1.5 -0.25", &x, &y)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, MustParse[int32, Q16]("1.5"), x)
	assert.Equal(t, FromRaw[int32, Q16](-1<<14), y)

	_, err = fmt.Sscan("40000", &x)
	assert.ErrorIs(t, err, ErrRange)
}
