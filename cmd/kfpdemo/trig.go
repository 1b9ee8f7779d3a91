// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"github.com/db47h/fixed"
	fxmath "github.com/db47h/fixed/math"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// trigErrors are the absolute errors measured at one angle.
type trigErrors struct {
	cos, sin float64 // in units of 2**-30
	angle    float64 // in units of 2**-32 turn
	radius   float64 // in units of 2**-30
}

func newTrigCmd(a *app) *cobra.Command {
	var step int
	cmd := &cobra.Command{
		Use:   "trig",
		Short: "Measure the CORDIC error against float64 every 1/step turn",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("step") {
				a.cfg.Trig.Step = step
				if err := a.cfg.Validate(); err != nil {
					return err
				}
			}
			n := a.cfg.Trig.Step
			a.log.Info("measuring CORDIC accuracy", zap.Int("step", n))

			errs := make([]trigErrors, n)
			for k := range errs {
				errs[k] = measureTrig(uint32(uint64(k) << 32 / uint64(n)))
			}
			worst := func(f func(e trigErrors) float64) float64 {
				return lo.Max(lo.Map(errs, func(e trigErrors, _ int) float64 { return f(e) }))
			}
			out := cmd.OutOrStdout()
			a.p.Fprintf(out, "angles  %d\n", n)
			a.p.Fprintf(out, "cos     %.2f ulp\n", worst(func(e trigErrors) float64 { return e.cos }))
			a.p.Fprintf(out, "sin     %.2f ulp\n", worst(func(e trigErrors) float64 { return e.sin }))
			a.p.Fprintf(out, "angle   %.2f ulp\n", worst(func(e trigErrors) float64 { return e.angle }))
			a.p.Fprintf(out, "radius  %.2f ulp\n", worst(func(e trigErrors) float64 { return e.radius }))
			return nil
		},
	}
	cmd.Flags().IntVar(&step, "step", 256, "number of angles per turn")
	return cmd
}

// measureTrig computes sin and cos of the angle t, in units of 2**-32 turn,
// converts the result back to polar form and compares both steps with float64.
func measureTrig(t uint32) trigErrors {
	cos, sin := fxmath.Sincos(fixed.NewFrac32Raw(t))
	r, a := fxmath.Rectp(cos, sin)

	rad := float64(t) / (1 << 32) * 2 * math.Pi
	return trigErrors{
		cos:    math.Abs(cos.Float64()-math.Cos(rad)) * (1 << 30),
		sin:    math.Abs(sin.Float64()-math.Sin(rad)) * (1 << 30),
		angle:  math.Abs(float64(int32(a.Raw() - t))),
		radius: math.Abs(r.Float64()-1) * (1 << 30),
	}
}
