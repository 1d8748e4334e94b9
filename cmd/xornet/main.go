// Package main provides the xornet CLI.
//
// Usage:
//
//	xornet train [-seed N] [-epochs N] [-lr F] [-momentum F] [-variance F] [-report-every N]
//	xornet version
//
// Defaults come from XORNET_* environment variables (or a .env file), then flags.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/born-ml/xornet/internal/config"
	"github.com/born-ml/xornet/internal/dataset"
	"github.com/born-ml/xornet/internal/metrics"
	"github.com/born-ml/xornet/internal/nn"
	"github.com/born-ml/xornet/internal/parallel"
	"github.com/born-ml/xornet/internal/trainer"
)

const version = "v0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		stop()
		log.Fatalf("xornet: %v", err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cmd := "train"
	if len(args) > 0 && (args[0] == "train" || args[0] == "version") {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "version":
		fmt.Fprintf(stdout, "xornet %s\n", version)
		return nil
	default:
		return train(ctx, args, stdout)
	}
}

func train(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	overrides, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg.ApplyOverrides(overrides)

	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	//nolint:gosec // Using math/rand for initialization and shuffling (not security-critical)
	rng := rand.New(rand.NewSource(seed))

	params := nn.NewParams(rng, cfg.Variance)
	examples := dataset.XOR()

	runCfg := trainer.RunConfig{
		Epochs:      cfg.Epochs,
		LR:          cfg.LR,
		Momentum:    cfg.Momentum,
		ReportEvery: cfg.ReportEvery,
	}

	_, err = trainer.Run(ctx, runCfg, params, rng, examples, func(r trainer.EpochReport) {
		fmt.Fprintln(stdout, r)
	})
	if err != nil {
		return fmt.Errorf("training failed (seed %d): %w", seed, err)
	}

	for _, pred := range metrics.Predict(params, examples, parallel.DefaultConfig()) {
		fmt.Fprintln(stdout, pred)
	}
	return nil
}

// parseFlags returns overrides for the flags explicitly set on the command line.
func parseFlags(args []string) (config.Overrides, error) {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	seed := fs.Int64("seed", 0, "PRNG seed (0 seeds from the clock)")
	epochs := fs.Int("epochs", 0, "Number of training epochs")
	lr := fs.Float64("lr", 0, "Learning rate alpha")
	momentum := fs.Float64("momentum", 0, "Momentum decay lambda in [0, 1)")
	variance := fs.Float64("variance", 0, "Weights are drawn from U(-variance, variance)")
	reportEvery := fs.Int("report-every", 0, "Print mean squared error every N epochs")

	if err := fs.Parse(args); err != nil {
		return config.Overrides{}, err
	}

	var o config.Overrides
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			o.Seed = seed
		case "epochs":
			o.Epochs = epochs
		case "lr":
			o.LR = lr
		case "momentum":
			o.Momentum = momentum
		case "variance":
			o.Variance = variance
		case "report-every":
			o.ReportEvery = reportEvery
		}
	})
	return o, nil
}
