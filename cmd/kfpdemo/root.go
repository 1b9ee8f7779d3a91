// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/db47h/fixed/internal/config"
	"github.com/db47h/fixed/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// app is the state shared by all sub commands. It is set up by the root
// command before any of them runs.
type app struct {
	cfgPath string
	level   string
	dev     bool

	cfg *config.Config
	log *zap.Logger
	p   *message.Printer
}

func newRootCmd() *cobra.Command {
	a := new(app)
	cmd := &cobra.Command{
		Use:           "kfpdemo",
		Short:         "Exercise the fixed-point primitives and kernels",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Flags())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}
	f := cmd.PersistentFlags()
	f.StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	f.StringVar(&a.level, "log-level", "info", "log level: debug, info, warn or error")
	f.BoolVar(&a.dev, "dev", false, "human readable development logs")

	cmd.AddCommand(
		newMulCmd(a),
		newArithCmd(a),
		newTrigCmd(a),
		newBenchCmd(a),
	)
	return cmd
}

// setup loads the configuration, applies the command line overrides and
// builds the logger.
func (a *app) setup(flags *pflag.FlagSet) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.level
	}
	if flags.Changed("dev") {
		cfg.Log.Development = a.dev
	}
	log, err := logging.New(logging.Config{Level: cfg.Log.Level, Development: cfg.Log.Development})
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	a.p = message.NewPrinter(language.English)
	a.log.Debug("configuration loaded",
		zap.String("file", a.cfgPath),
		zap.Int("trig_step", cfg.Trig.Step),
		zap.Int("bench_n", cfg.Bench.N))
	return nil
}
