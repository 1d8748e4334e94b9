package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allEnv = []string{EnvSeed, EnvEpochs, EnvLR, EnvMomentum, EnvVariance, EnvReportEvery}

// clearEnv unsets every XORNET_* variable for the test and restores it afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allEnv {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10000, cfg.Epochs)
	assert.Equal(t, 0.2, cfg.LR)
	assert.Equal(t, 0.8, cfg.Momentum)
	assert.Equal(t, 0.5, cfg.Variance)
	assert.Equal(t, 10000, cfg.ReportEvery)
}

func TestLoadFrom_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSeed, "7")
	t.Setenv(EnvEpochs, "500")
	t.Setenv(EnvLR, "0.1")
	t.Setenv(EnvMomentum, "0.5")

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 500, cfg.Epochs)
	assert.Equal(t, 0.1, cfg.LR)
	assert.Equal(t, 0.5, cfg.Momentum)
	assert.Equal(t, 0.5, cfg.Variance)
}

func TestLoadFrom_DotEnvInParent(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"),
		[]byte("XORNET_EPOCHS=250\nXORNET_VARIANCE=0.25\n"), 0o600))

	// Process environment wins over the file.
	t.Setenv(EnvVariance, "0.75")

	cfg, err := LoadFrom(nested)
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.Epochs)
	assert.Equal(t, 0.75, cfg.Variance)
}

func TestLoadFrom_BadEnv(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvSeed, "x"},
		{EnvEpochs, "1.5"},
		{EnvLR, "fast"},
		{EnvMomentum, ""},
		{EnvReportEvery, "often"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadFrom(t.TempDir())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	seed := int64(3)
	momentum := 0.0
	epochs := 20

	cfg.ApplyOverrides(Overrides{Seed: &seed, Momentum: &momentum, Epochs: &epochs})

	assert.Equal(t, int64(3), cfg.Seed)
	assert.Equal(t, 0.0, cfg.Momentum)
	assert.Equal(t, 20, cfg.Epochs)
	assert.Equal(t, 0.2, cfg.LR, "unset override keeps value")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero epochs", func(c *Config) { c.Epochs = 0 }},
		{"zero lr", func(c *Config) { c.LR = 0 }},
		{"momentum one", func(c *Config) { c.Momentum = 1 }},
		{"negative momentum", func(c *Config) { c.Momentum = -0.5 }},
		{"zero variance", func(c *Config) { c.Variance = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	var nilCfg *Config
	assert.ErrorIs(t, nilCfg.Validate(), ErrInvalidConfig)
}

func TestValidate_ReportEveryDefault(t *testing.T) {
	cfg := Default()
	cfg.Epochs = 300
	cfg.ReportEvery = 0
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 300, cfg.ReportEvery)
}
