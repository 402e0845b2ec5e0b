package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var valueInput string

var valueCmd = &cobra.Command{
	Use:   "value",
	Short: "Print the L1 penalty of a vector",
	Long: `Prints strength * sum(|x_i|) over the active range. The positive flag
does not change the value.

Example:
  echo '[1, -2, 3]' | proxl1 value --strength 2`,
	Args: cobra.NoArgs,
	RunE: runValue,
}

func init() {
	valueCmd.Flags().StringVarP(&valueInput, "input", "i", stdio, "Input vector file")
	addProxFlags(valueCmd)
}

func runValue(cmd *cobra.Command, args []string) error {
	op, err := proxConfig(cmd).NewProx()
	if err != nil {
		return fmt.Errorf("failed to build operator: %w", err)
	}

	in, err := readVector(cmd, valueInput, op.Kind())
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	v, err := op.Value(in)
	if err != nil {
		return fmt.Errorf("failed to evaluate %s: %w", op, err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'g', -1, 64))
	return err
}
