package main

import (
	"github.com/spf13/cobra"

	"github.com/hupe1980/proxgo"
	"github.com/hupe1980/proxgo/internal/vecio"
)

const stdio = "-"

// readVector reads a vector from path, or a JSON array from stdin for "-".
func readVector(cmd *cobra.Command, path string, kind proxgo.Kind) (proxgo.Vector, error) {
	if path == stdio {
		return vecio.Decode(cmd.InOrStdin(), vecio.FormatJSON, kind)
	}
	return vecio.ReadFile(path, kind)
}

// writeVector writes v to path, or as a JSON array to stdout for "-".
func writeVector(cmd *cobra.Command, path string, v proxgo.Vector) error {
	if path == stdio {
		return vecio.Encode(cmd.OutOrStdout(), vecio.FormatJSON, v)
	}
	return vecio.WriteFile(path, v)
}
