// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the 2-3-1 feed-forward network used by xornet.
//
// # Overview
//
// This package contains:
//   - Params: weights, biases and momentum for a tanh hidden layer and a sigmoid output
//   - Activations: Sigmoid, TanhActivation and their output-form derivatives
//   - Initialization: NewParams / Params.Init with a caller-owned random source
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/born-ml/xornet/nn"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(1))
//	    params := nn.NewParams(rng, nn.DefaultVariance)
//
//	    // Forward pass
//	    y := params.Evaluate([nn.InputSize]float64{0, 1})
//	}
//
// # Activations
//
// Derivatives take the activated value, not the pre-activation:
//
//	a := nn.Sigmoid(z)
//	da := nn.SigmoidDerivative(a) // a * (1 - a)
//
// TanhActivation is deliberately not named Tanh so it never shadows math.Tanh.
//
// # Concurrency
//
// Evaluate and Forward only read Params and may run concurrently. Training
// mutates Params in place and must be serialized by the caller.
package nn
