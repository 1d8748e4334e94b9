// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/xornet/internal/nn"
)

// Network dimensions.
const (
	InputSize  = nn.InputSize
	HiddenSize = nn.HiddenSize
	OutputSize = nn.OutputSize
)

// DefaultVariance is the reference half-width of the weight initialization interval.
const DefaultVariance = nn.DefaultVariance

// ErrNonFinite reports a parameter that became NaN or ±Inf.
var ErrNonFinite = nn.ErrNonFinite

// Params is the mutable parameter store.
type Params = nn.Params

// HiddenLayer holds the tanh layer parameters.
type HiddenLayer = nn.HiddenLayer

// OutputLayer holds the sigmoid layer parameters.
type OutputLayer = nn.OutputLayer

// Trace holds the layer outputs of one forward pass.
type Trace = nn.Trace

// Source is the random source used for weight initialization.
type Source = nn.Source

// NewParams creates a parameter store with weights drawn from U(-variance, variance).
//
// Example:
//
//	params := nn.NewParams(rand.New(rand.NewSource(1)), nn.DefaultVariance)
func NewParams(rng Source, variance float64) *Params {
	return nn.NewParams(rng, variance)
}

// Activations

// Sigmoid applies 1 / (1 + exp(-z)).
func Sigmoid(z float64) float64 {
	return nn.Sigmoid(z)
}

// SigmoidDerivative returns a * (1 - a) for a = Sigmoid(z).
func SigmoidDerivative(a float64) float64 {
	return nn.SigmoidDerivative(a)
}

// TanhActivation applies the hyperbolic tangent.
func TanhActivation(z float64) float64 {
	return nn.TanhActivation(z)
}

// TanhDerivative returns 1 - a² for a = TanhActivation(z).
func TanhDerivative(a float64) float64 {
	return nn.TanhDerivative(a)
}
