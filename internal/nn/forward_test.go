package nn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

var xorInputs = [][InputSize]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}

// TestForward_ZeroParams tests that an all-zero store outputs exactly 0.5.
func TestForward_ZeroParams(t *testing.T) {
	var p Params

	for _, in := range xorInputs {
		tr := p.Forward(in)
		assert.Equal(t, [HiddenSize]float64{}, tr.Hidden)
		assert.Equal(t, 0.5, tr.Output[0])
		assert.Equal(t, 0.5, p.Evaluate(in))
	}
}

// TestForward_Deterministic tests that repeated evaluation is bit-identical and pure.
func TestForward_Deterministic(t *testing.T) {
	p := NewParams(rand.New(rand.NewSource(7)), DefaultVariance)
	before := *p

	for _, in := range xorInputs {
		a := p.Evaluate(in)
		b := p.Evaluate(in)
		assert.Equal(t, math.Float64bits(a), math.Float64bits(b))
	}
	assert.Equal(t, before, *p, "Evaluate must not mutate Params")
}

// TestForward_HandComputed tests the forward pass against a manual calculation.
func TestForward_HandComputed(t *testing.T) {
	var p Params
	p.Hidden.Weights = [HiddenSize][InputSize]float64{{1, -1}, {0.5, 0.5}, {-2, 0}}
	p.Hidden.Bias = [HiddenSize]float64{0, 0.1, 0.3}
	p.Output.Weights = [OutputSize][HiddenSize]float64{{0.3, -0.7, 1.1}}
	p.Output.Bias = [OutputSize]float64{-0.2}

	in := [InputSize]float64{1, 0.5}
	h0 := math.Tanh(1*1 + -1*0.5)
	h1 := math.Tanh(0.5*1 + 0.5*0.5 + 0.1)
	h2 := math.Tanh(-2*1 + 0 + 0.3)
	want := 1 / (1 + math.Exp(-(0.3*h0 - 0.7*h1 + 1.1*h2 - 0.2)))

	tr := p.Forward(in)
	assert.InDelta(t, h0, tr.Hidden[0], 1e-12)
	assert.InDelta(t, h1, tr.Hidden[1], 1e-12)
	assert.InDelta(t, h2, tr.Hidden[2], 1e-12)
	assert.InDelta(t, want, tr.Output[0], 1e-12)
}

// TestEvaluate_Range tests that outputs stay in (0, 1) for random stores.
func TestEvaluate_Range(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for k := 0; k < 20; k++ {
		p := NewParams(rng, 2)
		for _, in := range xorInputs {
			y := p.Evaluate(in)
			assert.Greater(t, y, 0.0)
			assert.Less(t, y, 1.0)
		}
	}
}
