package nn

// DefaultVariance is the half-width of the weight initialization interval.
const DefaultVariance = 0.5

// Source is the random source used for weight initialization.
//
// *math/rand.Rand satisfies it; the caller owns seeding.
type Source interface {
	Float64() float64
}

// Uniform draws one value from U(-variance, variance).
func Uniform(rng Source, variance float64) float64 {
	return rng.Float64()*2*variance - variance
}

// NewParams creates a parameter store initialized by Init.
func NewParams(rng Source, variance float64) *Params {
	p := &Params{}
	p.Init(rng, variance)
	return p
}

// Init randomizes the weights and zeroes biases and momentum.
//
// Every weight is drawn independently from U(-variance, variance), hidden
// layer first in row-major order, then the output layer.
func (p *Params) Init(rng Source, variance float64) {
	for i := range p.Hidden.Weights {
		for j := range p.Hidden.Weights[i] {
			p.Hidden.Weights[i][j] = Uniform(rng, variance)
			p.Hidden.Momentum[i][j] = 0
		}
		p.Hidden.Bias[i] = 0
	}

	for i := range p.Output.Weights {
		for j := range p.Output.Weights[i] {
			p.Output.Weights[i][j] = Uniform(rng, variance)
			p.Output.Momentum[i][j] = 0
		}
		p.Output.Bias[i] = 0
	}
}
