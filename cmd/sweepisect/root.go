package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bsm/sweepline/config"
	"github.com/bsm/sweepline/geom"
	"github.com/bsm/sweepline/ioformat"
	"github.com/bsm/sweepline/resultstore"
	"github.com/bsm/sweepline/sweep"
)

var (
	configPath string
	storePath  string
	verify     bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweepisect <input>",
		Short: "Compute pairwise line segment intersections via a Bentley-Ottmann sweep",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	cmd.Flags().StringVar(&storePath, "store", "", "also persist the result set to this resultstore file")
	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check the sweep result against a brute-force computation")
	return cmd
}

func runSweep(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := newLogger(cfg.LogLevel)
	inputPath := args[0]
	outputPath := inputPath + ".i"

	segments, err := readInput(ctx, inputPath, log)
	if err != nil {
		return reportInvariant(log, err)
	}

	start := time.Now()
	result, err := sweep.ComputeWithEpsilon(segments, cfg.Sweep.Epsilon)
	sweepDur := time.Since(start)
	if err != nil {
		return reportInvariant(log, err)
	}
	log.WithFields(logrus.Fields{
		"segments":      len(segments),
		"intersections": result.Len(),
		"duration":      sweepDur,
	}).Info("sweep complete")

	if verify {
		if err := verifyResult(log, segments, result); err != nil {
			return err
		}
	}

	if err := writeOutput(ctx, outputPath, result, log); err != nil {
		return err
	}

	if storePath != "" {
		if err := persistResult(cfg, storePath, result, log); err != nil {
			return err
		}
	}

	return nil
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

func newLogger(level config.LogLevel) *logrus.Logger {
	log := logrus.New()
	lvl, err := logrus.ParseLevel(string(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

func readInput(ctx context.Context, path string, log logrus.FieldLogger) ([]geom.Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	start := time.Now()
	segments, err := ioformat.ReadSegments(f)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"segments": len(segments),
		"duration": time.Since(start),
		"path":     path,
	}).Debug("read input")

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
		return segments, nil
	}
}

func writeOutput(ctx context.Context, path string, result *sweep.Result, log logrus.FieldLogger) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	start := time.Now()
	if err := ioformat.WriteResult(f, result); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"path":     path,
		"duration": time.Since(start),
	}).Info("wrote output")

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

func verifyResult(log logrus.FieldLogger, segments []geom.Segment, result *sweep.Result) error {
	brute, err := geom.BruteForce(segments)
	if err != nil {
		return fmt.Errorf("verify: brute-force computation failed: %w", err)
	}
	swept := result.AsPoints()
	if len(brute) != len(swept) {
		return fmt.Errorf("verify: sweep produced %d points, brute force produced %d", len(swept), len(brute))
	}
	for i := range brute {
		if !geom.Equal(brute[i], swept[i]) {
			return fmt.Errorf("verify: mismatch at index %d: sweep=%v brute=%v", i, swept[i], brute[i])
		}
	}
	log.Info("verify: sweep result matches brute-force computation")
	return nil
}

func persistResult(cfg *config.Config, path string, result *sweep.Result, log logrus.FieldLogger) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil && !os.IsExist(err) {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	opt, err := cfg.StoreOptions()
	if err != nil {
		return err
	}

	w := resultstore.NewWriter(f, opt)
	for _, pt := range result.AsPoints() {
		if err := w.Append(pt, []byte(fmt.Sprintf("%g %g", pt.X, pt.Y))); err != nil {
			return fmt.Errorf("store: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	log.WithField("path", path).Info("wrote resultstore")
	return nil
}

func reportInvariant(log logrus.FieldLogger, err error) error {
	var ierr *geom.InvariantError
	if errors.As(err, &ierr) {
		log.WithFields(logrus.Fields{
			"kind":     ierr.Kind,
			"segments": ierr.SegmentIDs(),
		}).Error("invariant violated")
	}
	return err
}
