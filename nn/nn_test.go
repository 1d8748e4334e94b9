// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"math/rand"
	"testing"

	"github.com/born-ml/xornet/nn"
	"github.com/stretchr/testify/assert"
)

// TestPublicAPI verifies the facade exposes a usable parameter store.
func TestPublicAPI(t *testing.T) {
	params := nn.NewParams(rand.New(rand.NewSource(1)), nn.DefaultVariance)
	assert.NoError(t, params.CheckFinite())

	y := params.Evaluate([nn.InputSize]float64{0, 1})
	assert.Greater(t, y, 0.0)
	assert.Less(t, y, 1.0)

	var zero nn.Params
	assert.Equal(t, 0.5, zero.Evaluate([nn.InputSize]float64{1, 1}))
	assert.Equal(t, 0.5, nn.Sigmoid(0))
	assert.Equal(t, 0.0, nn.TanhActivation(0))
	assert.Equal(t, 0.25, nn.SigmoidDerivative(0.5))
	assert.Equal(t, 1.0, nn.TanhDerivative(0))
}
