package main

import (
	"fmt"

	"github.com/alfredjeanlab/classkit/internal/logic"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table [gate...]",
	Short: "Print truth tables (all gates when none are named)",
	Long: `Print the truth table of each named gate, or of every gate when no
name is given. Gate names are case-insensitive: AND, OR, NOT, NAND, NOR,
XOR, XNOR.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gates, err := resolveGates(args)
		if err != nil {
			return err
		}
		logger.Debug("printing truth tables", "gates", len(gates), "json", jsonOutput)

		if jsonOutput {
			return printTablesJSON(cmd.OutOrStdout(), gates)
		}
		return printTablesText(cmd.OutOrStdout(), styler(cmd), gates)
	},
}

func resolveGates(names []string) ([]logic.Gate, error) {
	if len(names) == 0 {
		return logic.Gates(), nil
	}
	gates := make([]logic.Gate, 0, len(names))
	for _, name := range names {
		g, ok := logic.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown gate %q", name)
		}
		gates = append(gates, g)
	}
	return gates, nil
}
