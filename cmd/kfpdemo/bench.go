// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/db47h/fixed"
	fxmath "github.com/db47h/fixed/math"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

const benchRounds = 10

// sink keeps the benchmarked results alive.
var sink uint64

func newBenchCmd(a *app) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time Isqrt, IsqrtFast and Sincos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("n") {
				a.cfg.Bench.N = n
				if err := a.cfg.Validate(); err != nil {
					return err
				}
			}
			calls := a.cfg.Bench.N
			out := cmd.OutOrStdout()
			for _, b := range []struct {
				name string
				fn   func(i uint64)
			}{
				{"Isqrt", func(i uint64) { sink += fxmath.Isqrt(i * 0x9e3779b97f4a7c15) }},
				{"IsqrtFast", func(i uint64) { sink += fxmath.IsqrtFast(i * 0x9e3779b97f4a7c15) }},
				{"Sincos", func(i uint64) {
					c, s := fxmath.Sincos(fixed.NewFrac32Raw(uint32(i * 0x9e3779b9)))
					sink += uint64(c.Raw() ^ s.Raw())
				}},
			} {
				mean, std := stat.MeanStdDev(timeRounds(calls, b.fn), nil)
				a.log.Debug("benchmark done", zap.String("op", b.name), zap.Float64("mean", mean))
				a.p.Fprintf(out, "%-10s %8.2f ns/op ± %.2f (%d × %d calls)\n", b.name, mean, std, benchRounds, calls)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 1000000, "calls per round")
	return cmd
}

// timeRounds returns the time per call of fn, in nanoseconds, for each of
// benchRounds rounds of n calls.
func timeRounds(n int, fn func(i uint64)) []float64 {
	ns := make([]float64, benchRounds)
	for r := range ns {
		start := time.Now()
		for i := 0; i < n; i++ {
			fn(uint64(i))
		}
		ns[r] = float64(time.Since(start).Nanoseconds()) / float64(n)
	}
	return ns
}
