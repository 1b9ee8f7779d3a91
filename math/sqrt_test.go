package math

import (
	stdmath "math"
	"strconv"
	"testing"

	"github.com/db47h/fixed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"modernc.org/mathutil"
)

func TestIsqrt(t *testing.T) {
	td := []struct {
		n, r uint64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{15, 3},
		{16, 4},
		{17, 4},
		{1<<32 - 1, 1<<16 - 1},
		{stdmath.MaxInt64, 3037000499},
		{stdmath.MaxUint64, stdmath.MaxUint32},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			assert.Equal(t, d.r, Isqrt(d.n))
			assert.Equal(t, d.r, IsqrtFast(d.n))
		})
	}

	for i := 0; i < 10000; i++ {
		n := rnd.Uint64() >> (rnd.Uint64() & 63)
		r := Isqrt(n)
		require.Equal(t, uint64(mathutil.SqrtUint64(n)), r, "Isqrt(%d)", n)
		require.Equal(t, r, IsqrtFast(n), "IsqrtFast(%d)", n)
		// perfect squares and their neighbours
		if r > 0 {
			sq := r * r
			require.Equal(t, r, IsqrtFast(sq))
			require.Equal(t, r-1, IsqrtFast(sq-1))
		}

		n32 := int32(n >> 33)
		r32 := Isqrt(n32)
		require.True(t, int64(r32)*int64(r32) <= int64(n32) && int64(n32) < int64(r32+1)*int64(r32+1), "Isqrt(%d) = %d", n32, r32)
		require.Equal(t, r32, IsqrtFast(n32))
	}
	assert.Equal(t, int64(3037000499), Isqrt(int64(stdmath.MaxInt64)))
}

func TestIsqrt_negative(t *testing.T) {
	assert.PanicsWithValue(t, fixed.ErrPrecondition{Op: "Isqrt", Msg: "negative argument"}, func() { Isqrt(-1) })
	assert.PanicsWithValue(t, fixed.ErrPrecondition{Op: "IsqrtFast", Msg: "negative argument"}, func() { IsqrtFast(int8(-4)) })
	assert.Panics(t, func() { Sqrt(fixed.NewS16_16(-2)) })
}

func TestSqrt(t *testing.T) {
	assert.Equal(t, fixed.NewS16_16(2), Sqrt(fixed.NewS16_16(4)))
	assert.Equal(t, int32(92681), Sqrt(fixed.NewS16_16(2)).Raw())
	assert.Equal(t, fixed.NewFrac32Raw(1<<31), Sqrt(fixed.NewFrac32Raw(1<<30)))
	assert.Equal(t, int64(1<<30)*3, Sqrt(fixed.NewS34_30(9)).Raw())
	// √0.25 does not fit in [-0.5, 0.5)
	assert.Equal(t, fixed.Max[int32, fixed.Q32](), Sqrt(fixed.FromRaw[int32, fixed.Q32](1<<30)))
	assert.InDelta(t, stdmath.Sqrt(65535.99), Sqrt(fixed.MustParse[uint32, fixed.Q16]("65535.99")).Float64(), 1e-4)
}

func TestHypot(t *testing.T) {
	assert.Equal(t, fixed.NewS16_16(5), Hypot(fixed.NewS16_16(3), fixed.NewS16_16(4)))
	assert.Equal(t, fixed.NewS16_16(5), Hypot(fixed.NewS16_16(-3), fixed.NewS16_16(-4)))
	assert.Equal(t, fixed.NewS34_30(5), Hypot(fixed.NewS34_30(3), fixed.NewS34_30(-4)))
	assert.Equal(t, fixed.NewU16_16(13), Hypot(fixed.NewU16_16(5), fixed.NewU16_16(12)))

	max := fixed.Max[int32, fixed.Q16]()
	assert.Equal(t, max, Hypot(max, max))
	assert.Equal(t, max, Hypot(fixed.Min[int32, fixed.Q16](), fixed.S16_16{}))
	umax := fixed.Max[uint64, fixed.Q32]()
	assert.Equal(t, umax, Hypot(umax, umax))

	for i := 0; i < 1000; i++ {
		x, y := int32(rnd.Uint64()>>40)-1<<23, int32(rnd.Uint64()>>40)-1<<23
		h := Hypot(fixed.FromRaw[int32, fixed.Q16](x), fixed.FromRaw[int32, fixed.Q16](y))
		want := stdmath.Hypot(float64(x), float64(y))
		require.InDelta(t, stdmath.Floor(want), float64(h.Raw()), 1, "Hypot(%d, %d)", x, y)
	}
}

func TestIsInterior(t *testing.T) {
	for _, r := range []fixed.S16_16{fixed.NewS16_16(5), fixed.MustParse[int32, fixed.Q16]("2.5")} {
		for x := -12; x <= 12; x++ {
			for y := -12; y <= 12; y++ {
				px := fixed.NewS16_16(int32(x)).Rsh(1)
				py := fixed.NewS16_16(int32(y)).Rsh(1)
				in := IsInterior(px, py, r)
				require.Equal(t, Hypot(px, py).Le(r), in, "IsInterior(%v, %v, %v)", px, py, r)
			}
		}
	}

	five := fixed.NewS16_16(5)
	assert.True(t, IsInterior(fixed.NewS16_16(3), fixed.NewS16_16(4), five))
	assert.True(t, IsInterior(fixed.NewS16_16(0), fixed.NewS16_16(-5), five))
	assert.False(t, IsInterior(fixed.NewS16_16(3), fixed.FromRaw[int32, fixed.Q16](4<<16+1), five))
	assert.True(t, IsInterior(fixed.S16_16{}, fixed.S16_16{}, fixed.S16_16{}))

	for i := 0; i < 10000; i++ {
		x := fixed.FromRaw[int32, fixed.Q16](int32(rnd.Uint64()))
		y := fixed.FromRaw[int32, fixed.Q16](int32(rnd.Uint64()))
		r := fixed.FromRaw[int32, fixed.Q16](int32(rnd.Uint64() >> 33))
		h := Hypot(x, y)
		in := IsInterior(x, y, r)
		if in {
			require.True(t, h.Le(r), "IsInterior(%+v, %+v, %+v) but Hypot = %+v", x, y, r, h)
		}
		if h.Lt(r) {
			require.True(t, in, "Hypot(%+v, %+v) = %+v < %+v", x, y, h, r)
		}
	}
}

func BenchmarkIsqrt(b *testing.B) {
	n := rnd.Uint64()
	for i := 0; i < b.N; i++ {
		_ = Isqrt(n)
	}
}

func BenchmarkIsqrtFast(b *testing.B) {
	n := rnd.Uint64()
	for i := 0; i < b.N; i++ {
		_ = IsqrtFast(n)
	}
}
