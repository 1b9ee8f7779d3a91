// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/db47h/fixed"
	"github.com/spf13/cobra"
)

func newArithCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "arith",
		Short: "Print the S16_16 sum, difference, product and quotient of two values",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			x := fixed.NewS16_16(3)
			y := fixed.FromRaw[int32, fixed.Q16](5835)
			out := cmd.OutOrStdout()
			a.p.Fprintf(out, "x     %v (%+v)\n", x, x)
			a.p.Fprintf(out, "y     %v (%+v)\n", y, y)
			for _, r := range []struct {
				op string
				v  fixed.S16_16
			}{
				{"x + y", x.Add(y)},
				{"x - y", x.Sub(y)},
				{"x * y", x.Mul(y)},
				{"x / y", x.Div(y)},
			} {
				a.p.Fprintf(out, "%s %v (%+v)\n", r.op, r.v, r.v)
			}
		},
	}
}
