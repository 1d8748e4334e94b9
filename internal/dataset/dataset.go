// Package dataset provides the fixed XOR training table and epoch shuffling.
package dataset

import (
	"fmt"

	"github.com/born-ml/xornet/internal/nn"
)

// Example is one (input, target) training pair.
type Example struct {
	Input  [nn.InputSize]float64
	Target [nn.OutputSize]float64
}

func (e Example) String() string {
	return fmt.Sprintf("%v -> %v", e.Input, e.Target)
}

// XOR returns the four rows of the logical XOR truth table.
//
// A fresh slice is returned on each call; callers may reorder it freely.
func XOR() []Example {
	return []Example{
		{Input: [nn.InputSize]float64{0, 0}, Target: [nn.OutputSize]float64{0}},
		{Input: [nn.InputSize]float64{0, 1}, Target: [nn.OutputSize]float64{1}},
		{Input: [nn.InputSize]float64{1, 0}, Target: [nn.OutputSize]float64{1}},
		{Input: [nn.InputSize]float64{1, 1}, Target: [nn.OutputSize]float64{0}},
	}
}
