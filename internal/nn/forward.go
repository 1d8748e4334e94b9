package nn

import "gonum.org/v1/gonum/floats"

// Trace holds the layer outputs of one forward pass.
//
// It is recomputed on every call and never stored in Params.
type Trace struct {
	Hidden [HiddenSize]float64 // tanh activations
	Output [OutputSize]float64 // sigmoid activations
}

// Forward computes the activation trace for one input.
//
// Performs:
//
//	h = tanh(W_h · x + b_h)
//	y = σ(W_o · h + b_o)
//
// Forward does not modify p.
func (p *Params) Forward(input [InputSize]float64) Trace {
	var tr Trace

	for i := range p.Hidden.Weights {
		z := floats.Dot(p.Hidden.Weights[i][:], input[:]) + p.Hidden.Bias[i]
		tr.Hidden[i] = TanhActivation(z)
	}

	for i := range p.Output.Weights {
		z := floats.Dot(p.Output.Weights[i][:], tr.Hidden[:]) + p.Output.Bias[i]
		tr.Output[i] = Sigmoid(z)
	}

	return tr
}

// Evaluate returns the network output for one input, a value in (0, 1).
func (p *Params) Evaluate(input [InputSize]float64) float64 {
	return p.Forward(input).Output[0]
}
