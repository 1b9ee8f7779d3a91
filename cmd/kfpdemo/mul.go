// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/db47h/fixed/internal/arith"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
	"golang.org/x/text/message"
)

func newMulCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mul",
		Short: "Print the double width products of the sample pairs",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			a.log.Debug("multiplication strategies",
				zap.Stringer("32", arith.StrategyOf[int32]()),
				zap.Stringer("64", arith.StrategyOf[int64]()))
			out := cmd.OutOrStdout()
			for _, l := range mulRows[int32, uint32](a.p, 32, a.cfg.Samples.Pairs32) {
				a.p.Fprintln(out, l)
			}
			for _, l := range mulRows[int64, uint64](a.p, 64, a.cfg.Samples.Pairs64) {
				a.p.Fprintln(out, l)
			}
		},
	}
}

// mulRows formats the signed and unsigned products of each pair.
func mulRows[S constraints.Signed, U constraints.Unsigned](p *message.Printer, w int, pairs [][2]S) []string {
	return lo.Map(pairs, func(ab [2]S, _ int) string {
		hi, low := arith.MulOverflow(ab[0], ab[1])
		uhi, ulow := arith.MulOverflow(U(ab[0]), U(ab[1]))
		return p.Sprintf("mul%d %d * %d: signed hi=%#x lo=%#x unsigned hi=%#x lo=%#x",
			w, ab[0], ab[1], hi, low, uhi, ulow)
	})
}
