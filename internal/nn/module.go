// Package nn implements the numeric core of a 2-3-1 feed-forward network.
//
// This package provides:
//   - Activations: Sigmoid, TanhActivation and their output-form derivatives
//   - Params: weight, bias and momentum buffers for the hidden and output layers
//   - Forward/Evaluate: the forward pass over a Params
//   - Init: uniform weight initialization driven by a caller-owned random source
//
// All buffers are fixed-size arrays; the topology never changes at runtime.
package nn
