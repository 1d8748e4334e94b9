package nn

import (
	"errors"
	"fmt"
	"math"
)

// Network dimensions. They are fixed for the lifetime of the process.
const (
	InputSize  = 2
	HiddenSize = 3
	OutputSize = 1
)

// ErrNonFinite is returned by CheckFinite when a parameter became NaN or ±Inf.
var ErrNonFinite = errors.New("nn: parameter is not finite")

// HiddenLayer holds the tanh layer parameters.
//
// Momentum is co-indexed with Weights entry-for-entry.
type HiddenLayer struct {
	Weights  [HiddenSize][InputSize]float64 // [hidden, input]
	Bias     [HiddenSize]float64
	Momentum [HiddenSize][InputSize]float64
}

// OutputLayer holds the sigmoid layer parameters.
type OutputLayer struct {
	Weights  [OutputSize][HiddenSize]float64 // [output, hidden]
	Bias     [OutputSize]float64
	Momentum [OutputSize][HiddenSize]float64
}

// Params is the mutable parameter store of the 2-3-1 network.
//
// A Params is created once, mutated in place by every training step and
// read by Forward/Evaluate. It is not safe for concurrent mutation: two
// training steps running at once would interleave momentum updates.
//
// Example:
//
//	rng := rand.New(rand.NewSource(seed))
//	p := nn.NewParams(rng, nn.DefaultVariance)
//	y := p.Evaluate([nn.InputSize]float64{1, 0})
type Params struct {
	Hidden HiddenLayer
	Output OutputLayer
}

// Zero resets every weight, bias and momentum entry to 0.
func (p *Params) Zero() {
	*p = Params{}
}

// Finite reports whether all weights, biases and momentum entries are finite.
func (p *Params) Finite() bool {
	for i := range p.Hidden.Weights {
		if !finite(p.Hidden.Weights[i][:]) || !finite(p.Hidden.Momentum[i][:]) {
			return false
		}
	}
	for i := range p.Output.Weights {
		if !finite(p.Output.Weights[i][:]) || !finite(p.Output.Momentum[i][:]) {
			return false
		}
	}
	return finite(p.Hidden.Bias[:]) && finite(p.Output.Bias[:])
}

// CheckFinite returns an error wrapping ErrNonFinite if any parameter diverged.
func (p *Params) CheckFinite() error {
	if p.Finite() {
		return nil
	}
	return fmt.Errorf("%w (hidden=%v output=%v)", ErrNonFinite, p.Hidden.Weights, p.Output.Weights)
}

func finite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
