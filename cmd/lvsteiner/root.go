package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lvsteiner",
		Short: "Minimum Steiner tree approximations on synthetic graphs",
		Long: `lvsteiner runs the RZLoss and Zelikovsky contraction algorithms, or the
Kou and Takahashi heuristics, on graphs produced by the builder package.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCmd(), newVersionCmd())

	return root
}
