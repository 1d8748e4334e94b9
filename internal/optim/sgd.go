package optim

import (
	"github.com/born-ml/xornet/internal/nn"
)

// Deltas holds the per-unit error signals of one example.
type Deltas struct {
	Output [nn.OutputSize]float64
	Hidden [nn.HiddenSize]float64
}

// Backward computes the error signals for one forward trace.
//
//	delta_out    = (target - y) * σ'(y)
//	delta_hidden = (Σ_j delta_out[j] * W_o[j][i]) * tanh'(h[i])
//
// The error is target minus prediction, so adding the resulting update to
// the parameters moves the output toward the target.
func Backward(p *nn.Params, tr nn.Trace, target [nn.OutputSize]float64) Deltas {
	var d Deltas

	for i := range d.Output {
		d.Output[i] = (target[i] - tr.Output[i]) * nn.SigmoidDerivative(tr.Output[i])
	}

	for i := range d.Hidden {
		var sum float64
		for j := range d.Output {
			sum += d.Output[j] * p.Output.Weights[j][i]
		}
		d.Hidden[i] = sum * nn.TanhDerivative(tr.Hidden[i])
	}

	return d
}

// TrainOne performs one backpropagation step with momentum on p.
//
// Update rule, for each weight w with momentum m, upstream activation a and
// unit delta d:
//
//	m = lambda * m + alpha * a * d
//	w = w + m
//	b = b + alpha * d
//
// Biases receive no momentum. Hidden deltas are computed from the output
// weights before the output layer is updated.
func TrainOne(p *nn.Params, input [nn.InputSize]float64, target [nn.OutputSize]float64, alpha, lambda float64) {
	tr := p.Forward(input)
	d := Backward(p, tr, target)

	out := &p.Output
	for i := range out.Weights {
		for j := range out.Weights[i] {
			out.Momentum[i][j] = lambda*out.Momentum[i][j] + alpha*tr.Hidden[j]*d.Output[i]
			out.Weights[i][j] += out.Momentum[i][j]
		}
		out.Bias[i] += alpha * d.Output[i]
	}

	hid := &p.Hidden
	for i := range hid.Weights {
		for j := range hid.Weights[i] {
			hid.Momentum[i][j] = lambda*hid.Momentum[i][j] + alpha*input[j]*d.Hidden[i]
			hid.Weights[i][j] += hid.Momentum[i][j]
		}
		hid.Bias[i] += alpha * d.Hidden[i]
	}
}

// SGD applies TrainOne with fixed hyperparameters.
//
// Example:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.2, Momentum: 0.8})
//	for _, ex := range examples {
//	    sgd.Step(params, ex.Input, ex.Target)
//	}
type SGD struct {
	lr       float64
	momentum float64
}

// NewSGD creates a new SGD optimizer.
//
// A zero LR is replaced by DefaultLR. Momentum is used as given, so a zero
// value disables the momentum term.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = DefaultLR
	}

	return &SGD{
		lr:       config.LR,
		momentum: config.Momentum,
	}
}

// Step trains p on a single example.
func (s *SGD) Step(p *nn.Params, input [nn.InputSize]float64, target [nn.OutputSize]float64) {
	TrainOne(p, input, target, s.lr, s.momentum)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// GetMomentum returns the momentum decay.
func (s *SGD) GetMomentum() float64 {
	return s.momentum
}
