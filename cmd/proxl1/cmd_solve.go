package main

import (
	"fmt"
	"time"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/hupe1980/proxgo"
	"github.com/hupe1980/proxgo/internal/vecio"
	"github.com/hupe1980/proxgo/solver"
)

var (
	solveProblem string
	solveCoeffs  string
	solveStart   string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Fit a Lasso model with proximal gradient descent",
	Long: `Minimizes (1/2n)||Ax - b||² + strength * sum(|x_i|) for a problem file of
the form {"a": [[...], ...], "b": [...]} and prints the fit as JSON.

Solver settings come from the solver section of the config file. The solver
always runs in float64; --precision is ignored.

Example:
  proxl1 solve --problem data.json.zst --strength 0.1 --config fista.yaml`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&solveProblem, "problem", "p", "", "Problem file (JSON, optionally .zst/.lz4)")
	solveCmd.Flags().StringVarP(&solveCoeffs, "output", "o", "", "Also write the coefficients to this vector file")
	solveCmd.Flags().StringVar(&solveStart, "start", "", "Warm-start vector file")
	_ = solveCmd.MarkFlagRequired("problem")
	addProxFlags(solveCmd)
}

type solveOutput struct {
	Coeffs     []float64 `json:"coeffs"`
	Support    []uint32  `json:"support"`
	Iterations int       `json:"iterations"`
	Objective  float64   `json:"objective"`
	Converged  bool      `json:"converged"`
	Step       float64   `json:"step"`
}

func runSolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	problem, err := vecio.ReadProblem(solveProblem)
	if err != nil {
		return fmt.Errorf("failed to read problem: %w", err)
	}

	op, err := proxConfig(cmd).NewL1()
	if err != nil {
		return fmt.Errorf("failed to build operator: %w", err)
	}

	metrics := &proxgo.BasicMetricsCollector{}
	opts := append(cfg.Solver.Options(),
		solver.WithLogger(logger, cfg.Solver.LogEvery),
		solver.WithMetricsCollector(metrics),
	)

	if solveStart != "" {
		start, err := vecio.ReadFile(solveStart, proxgo.Float64)
		if err != nil {
			return fmt.Errorf("failed to read start: %w", err)
		}
		opts = append(opts, solver.WithStart(start.(proxgo.Float64Vector)))
	}

	res, err := solver.Lasso(ctx, problem.Matrix(), problem.Target(), op, opts...)
	if err != nil {
		return fmt.Errorf("lasso failed: %w", err)
	}

	stats := metrics.GetStats()
	logger.InfoContext(ctx, "solve stats",
		"iterations", stats.IterationCount,
		"avg_iteration", time.Duration(stats.IterationAvgNanos),
	)

	if solveCoeffs != "" {
		if err := vecio.WriteFile(solveCoeffs, proxgo.Float64Vector(res.Coeffs)); err != nil {
			return fmt.Errorf("failed to write coefficients: %w", err)
		}
	}

	enc := gojson.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(solveOutput{
		Coeffs:     res.Coeffs,
		Support:    res.Support().ToArray(),
		Iterations: res.Iterations,
		Objective:  res.Objective,
		Converged:  res.Converged,
		Step:       res.Step,
	})
}
