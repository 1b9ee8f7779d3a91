// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_default(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Len(t, cfg.Samples.Pairs32, 4)
	assert.Len(t, cfg.Samples.Pairs64, 6)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kfp.yaml")
	data := []byte(`
log:
  level: debug
samples:
  pairs32:
    - [3, -4]
trig:
  step: 64
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	t.Setenv("KFP_TRIG_STEP", "32")
	t.Setenv("KFP_LOG_DEVELOPMENT", "true")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, [][2]int32{{3, -4}}, cfg.Samples.Pairs32)
	assert.Len(t, cfg.Samples.Pairs64, 6)
	assert.Equal(t, 32, cfg.Trig.Step)
	assert.Equal(t, 1000000, cfg.Bench.N)
}

func TestLoad_errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("KFP_BENCH_N", "-1")
	_, err = Load("")
	assert.Error(t, err)

	t.Setenv("KFP_BENCH_N", "many")
	_, err = Load("")
	assert.Error(t, err)
}
