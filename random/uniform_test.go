// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package random

import (
	"testing"

	"github.com/db47h/fixed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

func TestUniform(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	u := NewUnit[int32, fixed.Q16]()
	a, b := u.Param()
	assert.Equal(t, fixed.S16_16{}, a)
	assert.Equal(t, fixed.NewS16_16(1), b)
	assert.Equal(t, a, u.Min())
	assert.Equal(t, int32(1<<16-1), u.Max().Raw())
	assert.Equal(t, "0 1", u.String())
	assert.True(t, u.Equal(NewUniform(fixed.S16_16{}, fixed.NewS16_16(1))))
	assert.False(t, u.Equal(NewUniform(fixed.S16_16{}, fixed.NewS16_16(2))))

	xs := make([]float64, 10000)
	for i := range xs {
		x := u.Rand(r)
		require.True(t, x.GeInt(0) && x.LtInt(1), "%v", x)
		xs[i] = x.Float64()
	}
	mean, std := stat.MeanStdDev(xs, nil)
	assert.InDelta(t, 0.5, mean, 0.02)
	assert.InDelta(t, 0.2887, std, 0.02)
}

func TestUniform_small(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	a := fixed.FromRaw[int32, fixed.Q16](-2)
	u := NewUniform(a, fixed.FromRaw[int32, fixed.Q16](2))
	seen := make(map[int32]int)
	for i := 0; i < 1000; i++ {
		seen[u.Rand(r).Raw()]++
	}
	assert.Len(t, seen, 4)
	for raw := int32(-2); raw < 2; raw++ {
		assert.Greater(t, seen[raw], 0, "raw %d never drawn", raw)
	}
}

func TestUniform_fullRange(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	u8 := NewUniform(fixed.Min[int8, fixed.Q4](), fixed.Max[int8, fixed.Q4]())
	u64 := NewUniform(fixed.Min[uint64, fixed.Q32](), fixed.Max[uint64, fixed.Q32]())
	s64 := NewUniform(fixed.Min[int64, fixed.Q30](), fixed.Max[int64, fixed.Q30]())
	for i := 0; i < 1000; i++ {
		x := u8.Rand(r)
		require.True(t, x.Lt(fixed.Max[int8, fixed.Q4]()))
		y := u64.Rand(r)
		require.True(t, y.Lt(fixed.Max[uint64, fixed.Q32]()))
		z := s64.Rand(r)
		require.True(t, z.Lt(fixed.Max[int64, fixed.Q30]()))
	}
}

func TestUniform_empty(t *testing.T) {
	x := fixed.NewS16_16(1)
	assert.Panics(t, func() { NewUniform(x, x) })
	assert.Panics(t, func() { NewUniform(x, x.Neg()) })
	// 1 is not representable without integral digits
	assert.Panics(t, func() { NewUnit[uint32, fixed.Q32]() })
}
