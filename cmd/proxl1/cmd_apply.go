package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	applyInput  string
	applyOutput string
	applyStep   float64
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Write the proximal map of a vector",
	Long: `Reads a coefficient vector, applies soft-thresholding with threshold
strength*step over the active range and writes the result.

Example:
  echo '[5, -5, 1, 0]' | proxl1 apply --strength 2`,
	Args: cobra.NoArgs,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVarP(&applyInput, "input", "i", stdio, "Input vector file")
	applyCmd.Flags().StringVarP(&applyOutput, "output", "o", stdio, "Output vector file")
	applyCmd.Flags().Float64Var(&applyStep, "step", 1, "Proximal step size")
	addProxFlags(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	op, err := proxConfig(cmd).NewProx()
	if err != nil {
		return fmt.Errorf("failed to build operator: %w", err)
	}

	in, err := readVector(cmd, applyInput, op.Kind())
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	out, err := op.Proximal(in, applyStep)
	if err != nil {
		return fmt.Errorf("failed to apply %s: %w", op, err)
	}

	logger.DebugContext(cmd.Context(), "applied", "prox", op.String(), "dimension", in.Len(), "step", applyStep)

	return writeVector(cmd, applyOutput, out)
}
