// Command proxl1 applies the L1 proximal operator to vectors on disk and
// solves small Lasso problems with it.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hupe1980/proxgo"
	"github.com/hupe1980/proxgo/internal/config"
)

var (
	// Global flags
	configPath string
	logLevel   string
	logFormat  string

	// Operator overrides shared by apply, value and solve
	strength  float64
	positive  bool
	precision string
	kernelImp string

	cfg    *config.Config
	logger *proxgo.Logger
)

var rootCmd = &cobra.Command{
	Use:   "proxl1",
	Short: "L1 proximal operator (soft-thresholding) toolkit",
	Long: `proxl1 evaluates the proximal map and penalty of the scaled L1 norm,
optionally restricted to a coordinate range and combined with a
non-negativity projection, and runs proximal-gradient Lasso fits.

Vectors are read as JSON arrays or as .bin files; append .zst or .lz4 to a
path for compressed files. Use "-" for stdin/stdout.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configPath != "" {
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
		} else {
			cfg = config.DefaultConfig()
		}

		if cmd.Flags().Changed("log-level") {
			cfg.Logging.Level = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.Logging.Format = logFormat
		}

		logger, err = cfg.Logging.NewLogger(cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(valueCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(kernelCmd)
}

// addProxFlags registers the flags that override the prox section of the config.
func addProxFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&strength, "strength", 0, "Penalization strength (overrides config)")
	cmd.Flags().BoolVar(&positive, "positive", false, "Project onto non-negative values (overrides config)")
	cmd.Flags().StringVar(&precision, "precision", "", "Element kind: float32 or float64 (overrides config)")
	cmd.Flags().StringVar(&kernelImp, "kernel", "", "Kernel implementation: generic or unrolled (overrides config)")
}

// proxConfig returns the prox section with command-line overrides applied.
func proxConfig(cmd *cobra.Command) config.ProxConfig {
	pc := cfg.Prox
	if cmd.Flags().Changed("strength") {
		pc.Strength = strength
	}
	if cmd.Flags().Changed("positive") {
		pc.Positive = positive
	}
	if cmd.Flags().Changed("precision") {
		pc.Precision = precision
	}
	if cmd.Flags().Changed("kernel") {
		pc.Kernel = kernelImp
	}
	return pc
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
