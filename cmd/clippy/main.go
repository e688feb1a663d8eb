// Command clippy solves linear programs stored as problem documents.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bartolsthoorn/goclp/internal/config"
)

// cli holds flag values and the logger shared by the subcommands.
type cli struct {
	cfg config.Config

	libraryPath string
	symbol      string
	mode        string
	format      string
	jobs        int
	reentrant   bool
	verbose     bool

	logger *zap.Logger
}

// newRootCmd builds the command tree. With a nil logger one is built from
// the log level settings when a command runs.
func newRootCmd(cfg config.Config, logger *zap.Logger) *cobra.Command {
	c := &cli{cfg: cfg, logger: logger}

	rootCmd := &cobra.Command{
		Use:   "clippy",
		Short: "Solve sparse linear programs with COIN-OR CLP",
		Long: `clippy solves linear programs in coordinate form by calling clp_solve
from a shared library loaded at run time.

Problems are YAML or JSON documents holding the shape, the sparse matrix
triplets and the cost and bound vectors. Build the solver library with
"make -C internal/clp" and point --library or CLIPPY_LIBRARY at it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.logger != nil {
				return nil
			}
			level, err := zapcore.ParseLevel(c.cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", c.cfg.LogLevel, err)
			}
			if c.verbose {
				level = zapcore.DebugLevel
			}
			zcfg := zap.NewProductionConfig()
			zcfg.Level = zap.NewAtomicLevelAt(level)
			c.logger, err = zcfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&c.mode, "mode", "", "Force the mode for every document (primal or dual)")

	rootCmd.AddCommand(newSolveCmd(c), newCheckCmd(c))
	return rootCmd
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "clippy:", err)
		os.Exit(2)
	}
	if err := newRootCmd(cfg, nil).Execute(); err != nil {
		os.Exit(1)
	}
}
