package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bartolsthoorn/goclp/clp"
	"github.com/bartolsthoorn/goclp/internal/problemfile"
)

// job is one validated document ready for the engine.
type job struct {
	file    string
	mode    clp.Mode
	problem *clp.Problem
}

func newSolveCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Solve problem documents and print a report for each",
		Long: `Solve loads every document, validates all of them, and only then loads
the solver library. Reports are printed in argument order. Infeasible or
abandoned solves are reported, not treated as failures.`,
		Args: cobra.MinimumNArgs(1),
		RunE: c.runSolve,
	}
	cmd.Flags().StringVar(&c.libraryPath, "library", c.cfg.LibraryPath, "Path to the solver shared library")
	cmd.Flags().StringVar(&c.symbol, "symbol", c.cfg.Symbol, "Entry point to resolve in the library")
	cmd.Flags().StringVarP(&c.format, "format", "f", "yaml", "Report format (yaml or json)")
	cmd.Flags().IntVarP(&c.jobs, "jobs", "j", c.cfg.Jobs, "Documents to solve at once")
	cmd.Flags().BoolVar(&c.reentrant, "reentrant", c.cfg.Reentrant, "Let solves run concurrently inside the library")
	return cmd
}

func (c *cli) runSolve(cmd *cobra.Command, files []string) error {
	format, err := problemfile.ParseFormat(c.format)
	if err != nil {
		return err
	}
	if c.jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1, got %d", c.jobs)
	}

	jobs, err := c.loadJobs(files)
	if err != nil {
		return err
	}

	opts := []clp.Option{clp.WithLogger(c.logger), clp.WithSymbol(c.symbol)}
	if c.reentrant {
		opts = append(opts, clp.WithReentrant())
	}
	lib, err := clp.Open(c.libraryPath, opts...)
	if err != nil {
		return err
	}
	defer lib.Close()

	reports := make([]problemfile.Report, len(jobs))
	g := new(errgroup.Group)
	g.SetLimit(c.jobs)
	for i, j := range jobs {
		g.Go(func() error {
			res, err := lib.Solve(j.problem, j.mode)
			if err != nil {
				return fmt.Errorf("%s: %w", j.file, err)
			}
			reports[i] = problemfile.NewReport(j.file, j.mode, j.problem, res)
			c.logger.Info("Solved document",
				zap.String("file", j.file),
				zap.String("mode", j.mode.String()),
				zap.Bool("proven_optimal", res.ProvenOptimal))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return problemfile.WriteReports(cmd.OutOrStdout(), format, reports)
}

// loadJobs reads and validates every file, returning all failures together.
func (c *cli) loadJobs(files []string) ([]job, error) {
	defaultMode, err := clp.ParseMode(c.cfg.Mode)
	if err != nil {
		return nil, fmt.Errorf("CLIPPY_MODE: %w", err)
	}
	var override *clp.Mode
	if c.mode != "" {
		m, err := clp.ParseMode(c.mode)
		if err != nil {
			return nil, fmt.Errorf("--mode: %w", err)
		}
		override = &m
	}

	jobs := make([]job, 0, len(files))
	var errs []error
	for _, file := range files {
		doc, err := problemfile.Load(file)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		mode := defaultMode
		switch {
		case override != nil:
			mode = *override
		case doc.Mode != "":
			if mode, err = doc.SolveMode(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", file, err))
				continue
			}
		}

		p := doc.Problem()
		if err := p.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", file, err))
			continue
		}
		jobs = append(jobs, job{file: file, mode: mode, problem: p})
	}
	if len(errs) > 0 {
		for _, err := range errs {
			c.logger.Warn("Invalid document", zap.Error(err))
		}
		return nil, errors.Join(errs...)
	}
	return jobs, nil
}
