// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides backpropagation with momentum for nn.Params.
//
// # Overview
//
// This package contains:
//   - TrainOne: one in-place update from a single (input, target) pair
//   - SGD: TrainOne with fixed learning rate and momentum decay
//
// # Update Rule
//
// For each weight w with momentum m, upstream activation a and unit delta d:
//
//	m = lambda * m + alpha * a * d
//	w = w + m
//	b = b + alpha * d
//
// where d = (target - y) * σ'(y) at the output. Biases carry no momentum.
//
// # Training Loop Pattern
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.2, Momentum: 0.8})
//	for epoch := range numEpochs {
//	    for _, i := range rng.Perm(len(examples)) {
//	        sgd.Step(params, examples[i].Input, examples[i].Target)
//	    }
//	}
package optim
