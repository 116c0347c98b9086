// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// The playground binary replays YAML scenarios of container operations.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/containers/scenario"
)

const (
	exitFailed = 1
	exitError  = 2
)

type config struct {
	logLevel string
	quiet    bool
}

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode returns [exitFailed] iff every error joined in `err` is a failed
// scenario step; any other error, e.g. unreadable input, is an [exitError].
func exitCode(err error) int {
	errs := []error{err}
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		errs = joined.Unwrap()
	}
	for _, e := range errs {
		if !errors.Is(e, scenario.ErrStepsFailed) {
			return exitError
		}
	}
	return exitFailed
}

func newRootCmd(logTo io.Writer) *cobra.Command {
	var cfg config

	root := &cobra.Command{
		Use:           "playground",
		Short:         "Replay scripted container operations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.logLevel, "log-level", "info", "Logging level (verbo, debug, trace, info, warn, error, fatal, off)")

	run := &cobra.Command{
		Use:   "run FILE...",
		Short: "Run every scenario in each YAML file",
		Example: `  playground run testdata/playground.yaml
  playground run --log-level=debug a.yaml b.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logging.ToLevel(cfg.logLevel)
			if err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			log := logging.NewLogger(
				"playground",
				logging.NewWrappedCore(lvl, logTo, logging.Plain.ConsoleEncoder()),
			)
			return runFiles(log, cmd.OutOrStdout(), args, cfg.quiet)
		},
	}
	run.Flags().BoolVarP(&cfg.quiet, "quiet", "q", false, "Don't print transcripts")
	root.AddCommand(run)

	return root
}

// runFiles runs every scenario in every file, even after failures. The
// returned error, if any, joins all failures.
func runFiles(log logging.Logger, out io.Writer, paths []string, quiet bool) error {
	var errs []error
	for _, p := range paths {
		scenarios, err := loadFile(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		log.Info("Loaded scenarios",
			zap.String("file", p),
			zap.Int("count", len(scenarios)),
		)

		for _, s := range scenarios {
			t, err := scenario.Run(log, s)
			if t != nil && !quiet {
				fmt.Fprint(out, t)
			}
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", p, err))
			}
		}
	}
	return errors.Join(errs...)
}

func loadFile(path string) ([]scenario.Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := scenario.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
