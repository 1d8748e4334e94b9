// Package config loads the training run configuration.
//
// Values are resolved in order: defaults, then XORNET_* environment
// variables (optionally from a .env file), then CLI overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvSeed        = "XORNET_SEED"
	EnvEpochs      = "XORNET_EPOCHS"
	EnvLR          = "XORNET_LR"
	EnvMomentum    = "XORNET_MOMENTUM"
	EnvVariance    = "XORNET_VARIANCE"
	EnvReportEvery = "XORNET_REPORT_EVERY"
)

// maxEnvDepth is how many parent directories are searched for a .env file.
const maxEnvDepth = 5

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config captures the runtime knobs for a training run.
type Config struct {
	Seed        int64 // 0 seeds from the clock
	Epochs      int
	LR          float64 // alpha
	Momentum    float64 // lambda
	Variance    float64 // weights are drawn from U(-Variance, Variance)
	ReportEvery int
}

// Overrides captures CLI supplied values. Nil fields are left untouched.
type Overrides struct {
	Seed        *int64
	Epochs      *int
	LR          *float64
	Momentum    *float64
	Variance    *float64
	ReportEvery *int
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		Seed:        0,
		Epochs:      10000,
		LR:          0.2,
		Momentum:    0.8,
		Variance:    0.5,
		ReportEvery: 10000,
	}
}

// Load resolves a Config from the working directory's environment.
func Load() (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getwd: %w", err)
	}
	return LoadFrom(dir)
}

// LoadFrom resolves a Config, searching for a .env file starting at dir.
//
// Variables already present in the process environment win over the file.
func LoadFrom(dir string) (*Config, error) {
	if err := loadEnvFile(dir); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyOverrides updates c using any non-nil override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Seed != nil {
		c.Seed = *o.Seed
	}
	if o.Epochs != nil {
		c.Epochs = *o.Epochs
	}
	if o.LR != nil {
		c.LR = *o.LR
	}
	if o.Momentum != nil {
		c.Momentum = *o.Momentum
	}
	if o.Variance != nil {
		c.Variance = *o.Variance
	}
	if o.ReportEvery != nil {
		c.ReportEvery = *o.ReportEvery
	}
}

// Validate verifies the config is runnable.
//
// A non-positive ReportEvery is reset to Epochs.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("%w: epochs must be > 0 (got %d)", ErrInvalidConfig, c.Epochs)
	}
	if !(c.LR > 0) {
		return fmt.Errorf("%w: lr must be > 0 (got %v)", ErrInvalidConfig, c.LR)
	}
	if !(c.Momentum >= 0 && c.Momentum < 1) {
		return fmt.Errorf("%w: momentum must be in [0, 1) (got %v)", ErrInvalidConfig, c.Momentum)
	}
	if !(c.Variance > 0) {
		return fmt.Errorf("%w: variance must be > 0 (got %v)", ErrInvalidConfig, c.Variance)
	}
	if c.ReportEvery <= 0 {
		c.ReportEvery = c.Epochs
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvSeed); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = n
	}
	if err := envInt(EnvEpochs, &c.Epochs); err != nil {
		return err
	}
	if err := envFloat(EnvLR, &c.LR); err != nil {
		return err
	}
	if err := envFloat(EnvMomentum, &c.Momentum); err != nil {
		return err
	}
	if err := envFloat(EnvVariance, &c.Variance); err != nil {
		return err
	}
	return envInt(EnvReportEvery, &c.ReportEvery)
}

func envInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func envFloat(key string, dst *float64) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}

// loadEnvFile loads the first .env found in dir or its parents.
func loadEnvFile(dir string) error {
	for k := 0; k < maxEnvDepth+1; k++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			return godotenv.Load(envPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return nil
}
