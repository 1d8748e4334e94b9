// Package trainer drives epochs of single-example training over a dataset.
package trainer

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/born-ml/xornet/internal/dataset"
	"github.com/born-ml/xornet/internal/metrics"
	"github.com/born-ml/xornet/internal/nn"
	"github.com/born-ml/xornet/internal/optim"
)

// RunConfig captures the knobs required by the training loop.
type RunConfig struct {
	Epochs      int
	LR          float64
	Momentum    float64
	ReportEvery int // report MSE after every N epochs; <= 0 disables reports
}

// EpochReport is the periodic cost diagnostic.
type EpochReport struct {
	Epoch int // 1-based count of completed epochs
	MSE   float64
}

func (r EpochReport) String() string {
	return fmt.Sprintf("%d mean squared error: %f", r.Epoch, r.MSE)
}

// Result summarizes a finished run.
type Result struct {
	Epochs int
	MSE    float64
}

// Run trains p for cfg.Epochs epochs.
//
// Each epoch visits every example exactly once in an order drawn from rng
// and applies one SGD step per example. report, if non-nil, is called every
// cfg.ReportEvery epochs. Run stops with an error wrapping nn.ErrNonFinite
// as soon as the parameters or the cost stop being finite, and with the
// context error if ctx is cancelled between epochs.
func Run(ctx context.Context, cfg RunConfig, p *nn.Params, rng dataset.Intn, examples []dataset.Example, report func(EpochReport)) (Result, error) {
	var res Result

	if cfg.Epochs <= 0 {
		return res, fmt.Errorf("trainer: epochs must be > 0 (got %d)", cfg.Epochs)
	}
	if len(examples) == 0 {
		return res, errors.New("trainer: no examples")
	}
	sgdCfg := optim.SGDConfig{LR: cfg.LR, Momentum: cfg.Momentum}
	if err := sgdCfg.Validate(); err != nil {
		return res, fmt.Errorf("trainer: %w", err)
	}

	sgd := optim.NewSGD(sgdCfg)

	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("trainer: epoch %d: %w", epoch, err)
		}

		for _, i := range dataset.Permutation(rng, len(examples)) {
			sgd.Step(p, examples[i].Input, examples[i].Target)
		}
		res.Epochs = epoch

		if err := p.CheckFinite(); err != nil {
			return res, fmt.Errorf("trainer: epoch %d: %w", epoch, err)
		}

		if report != nil && cfg.ReportEvery > 0 && epoch%cfg.ReportEvery == 0 {
			mse, err := cost(p, examples)
			if err != nil {
				return res, fmt.Errorf("trainer: epoch %d: %w", epoch, err)
			}
			report(EpochReport{Epoch: epoch, MSE: mse})
		}
	}

	mse, err := cost(p, examples)
	if err != nil {
		return res, fmt.Errorf("trainer: epoch %d: %w", res.Epochs, err)
	}
	res.MSE = mse
	return res, nil
}

// cost is MeanSquaredError that rejects a non-finite result.
//
// Finite parameters can still overflow TanhActivation for inputs trained
// earlier in the epoch.
func cost(p *nn.Params, examples []dataset.Example) (float64, error) {
	mse := metrics.MeanSquaredError(p, examples)
	if math.IsNaN(mse) || math.IsInf(mse, 0) {
		return mse, fmt.Errorf("%w: mean squared error is %v", nn.ErrNonFinite, mse)
	}
	return mse, nil
}
