// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/xornet/internal/nn"
	"github.com/born-ml/xornet/internal/optim"
)

// Default hyperparameters.
const (
	DefaultLR       = optim.DefaultLR
	DefaultMomentum = optim.DefaultMomentum
)

// ErrInvalidConfig is returned by SGDConfig.Validate.
var ErrInvalidConfig = optim.ErrInvalidConfig

// SGD applies single-example momentum updates.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// Deltas holds per-unit error signals.
type Deltas = optim.Deltas

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.2, Momentum: 0.8})
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// TrainOne updates params in place from one example.
func TrainOne(params *nn.Params, input [nn.InputSize]float64, target [nn.OutputSize]float64, alpha, lambda float64) {
	optim.TrainOne(params, input, target, alpha, lambda)
}

// Backward returns the error signals for one forward trace.
func Backward(params *nn.Params, tr nn.Trace, target [nn.OutputSize]float64) Deltas {
	return optim.Backward(params, tr, target)
}
