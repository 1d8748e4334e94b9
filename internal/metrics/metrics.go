// Package metrics computes training diagnostics for a parameter store.
package metrics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/xornet/internal/dataset"
	"github.com/born-ml/xornet/internal/nn"
	"github.com/born-ml/xornet/internal/parallel"
)

// Evaluator maps one input to a scalar prediction. *nn.Params implements it.
type Evaluator interface {
	Evaluate(input [nn.InputSize]float64) float64
}

// MeanSquaredError returns mean((target - prediction)²) over examples.
//
// Returns 0 for an empty slice.
func MeanSquaredError(m Evaluator, examples []dataset.Example) float64 {
	if len(examples) == 0 {
		return 0
	}
	diffs := make([]float64, len(examples))
	for i, ex := range examples {
		diffs[i] = ex.Target[0] - m.Evaluate(ex.Input)
	}
	return floats.Dot(diffs, diffs) / float64(len(examples))
}

// Prediction is one row of the final report.
type Prediction struct {
	Input     [nn.InputSize]float64
	Expected  float64
	Predicted float64
	Correct   bool // math.Round(Predicted) == Expected
}

func (p Prediction) String() string {
	verdict := "incorrect"
	if p.Correct {
		verdict = "correct"
	}
	return fmt.Sprintf("for input [%f, %f], expected %f, predicted %f, which is %s",
		p.Input[0], p.Input[1], p.Expected, p.Predicted, verdict)
}

// Predict evaluates every example. Rows keep the order of examples.
//
// Evaluation never mutates m, so rows may be computed concurrently.
func Predict(m Evaluator, examples []dataset.Example, cfg parallel.Config) []Prediction {
	return parallel.Map(len(examples), func(i int) Prediction {
		ex := examples[i]
		y := m.Evaluate(ex.Input)
		return Prediction{
			Input:     ex.Input,
			Expected:  ex.Target[0],
			Predicted: y,
			Correct:   math.Round(y) == ex.Target[0],
		}
	}, cfg)
}

// Accuracy returns the fraction of correct predictions, 0 for none.
func Accuracy(preds []Prediction) float64 {
	if len(preds) == 0 {
		return 0
	}
	correct := 0
	for _, p := range preds {
		if p.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(preds))
}
