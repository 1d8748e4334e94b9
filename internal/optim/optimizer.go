// Package optim implements the backpropagation update for the 2-3-1 network.
//
// This package provides:
//   - Backward: per-unit error signals for one example
//   - TrainOne: one in-place momentum update of an nn.Params
//   - SGD: a configured optimizer wrapping TrainOne
package optim

import (
	"errors"
	"fmt"
)

// Default hyperparameters.
const (
	DefaultLR       = 0.2
	DefaultMomentum = 0.8
)

// ErrInvalidConfig is returned for hyperparameters outside their valid range.
var ErrInvalidConfig = errors.New("optim: invalid config")

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate alpha (default: 0.2, must be > 0)
	Momentum float64 // Momentum decay lambda (range: [0, 1))
}

// Validate checks that LR is positive and Momentum is in [0, 1).
func (c SGDConfig) Validate() error {
	if !(c.LR > 0) {
		return fmt.Errorf("%w: learning rate must be > 0 (got %v)", ErrInvalidConfig, c.LR)
	}
	if !(c.Momentum >= 0 && c.Momentum < 1) {
		return fmt.Errorf("%w: momentum must be in [0, 1) (got %v)", ErrInvalidConfig, c.Momentum)
	}
	return nil
}
