package main

import (
	"os"

	"github.com/spf13/cobra"
)

// NewCompareCommand fits every model against one dataset, so the progression
// from the logistic baseline to the dispersed geometry model reads off a
// single run.
func NewCompareCommand() *cobra.Command {
	f := NewFitFlags()
	f.Model = "all"

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Fit all putting models on one dataset and print their summaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.OutputFlags.Validate(); err != nil {
				return err
			}
			results, _, _, err := f.runFits()
			if err != nil {
				return err
			}
			return f.OutputFlags.PrintResults(os.Stdout, results)
		},
	}

	f.DataFlags.BindFlags(cmd.Flags())
	f.SamplerFlags.BindFlags(cmd.Flags())
	f.OutputFlags.BindFlags(cmd.Flags())

	return cmd
}
