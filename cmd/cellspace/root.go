package main

import (
	"context"

	"github.com/spf13/cobra"
)

// Execute wires the command tree and runs it.
func Execute(ctx context.Context) error {
	root := &cobra.Command{
		Use:   "cellspace",
		Short: "Reference-subspace integration for single-cell expression data",
		Long: "cellspace partitions a cell-by-feature expression matrix by condition,\n" +
			"centers each condition, fits a PCA basis on a reference condition, and\n" +
			"projects every condition through that basis into one shared embedding.",
	}
	root.AddCommand(demoCmd())
	root.AddCommand(integrateCmd())

	return root.ExecuteContext(ctx)
}
