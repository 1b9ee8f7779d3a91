// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command kfpdemo exercises the fixed-point primitives and kernels: double
// width products, S16_16 arithmetic, CORDIC accuracy and square root timings.
package main

import (
	"os"

	"github.com/db47h/fixed/internal/logging"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.NewDefault().Error("kfpdemo failed", zap.Error(err))
		os.Exit(1)
	}
}
