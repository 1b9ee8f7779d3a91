// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the configuration of the kfpdemo command.
//
// Values are taken, in increasing order of priority, from Default, an optional
// YAML file, and KFP_* environment variables. Command line flags override all
// of them.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of the environment variables read by Load.
const EnvPrefix = "KFP"

// Config holds the demo configuration.
type Config struct {
	Log struct {
		Level       string `yaml:"level"`
		Development bool   `yaml:"development"`
	} `yaml:"log"`

	// Samples are the operand pairs of the mul command.
	Samples struct {
		Pairs32 [][2]int32 `yaml:"pairs32" ignored:"true"`
		Pairs64 [][2]int64 `yaml:"pairs64" ignored:"true"`
	} `yaml:"samples" ignored:"true"`

	Trig struct {
		Step int `yaml:"step"`
	} `yaml:"trig"`

	Bench struct {
		N int `yaml:"n"`
	} `yaml:"bench"`
}

// Default returns the default configuration.
func Default() *Config {
	var cfg Config
	cfg.Log.Level = "info"
	cfg.Samples.Pairs32 = [][2]int32{
		{35, 35},
		{1000000, 10000},
		{90000, 90000},
		{-80000, -80000},
	}
	cfg.Samples.Pairs64 = [][2]int64{
		{35, 35},
		{1000000, 10000},
		{90000, 90000},
		{-80000, -80000},
		{5000000000, 5000000000},
		{-10000000000, -10000000000},
	}
	cfg.Trig.Step = 256
	cfg.Bench.N = 1000000
	return &cfg
}

// Load returns the configuration read from the YAML file at path, if path is
// not empty, then updated from the environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.Trig.Step <= 0 {
		return fmt.Errorf("invalid trig step %d", c.Trig.Step)
	}
	if c.Bench.N <= 0 {
		return fmt.Errorf("invalid bench iteration count %d", c.Bench.N)
	}
	return nil
}
