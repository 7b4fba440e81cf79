package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/puttfit/puttfit/pkg/plotting"
)

// NewPlotCommand fits the requested models and renders the comparison
// figures: fitted curves over the observed rates, and the residual
// diagnostic when the dispersed model is among the fits.
func NewPlotCommand() *cobra.Command {
	f := NewFitFlags()
	f.Model = "all"
	plotDir := "plots"

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Fit putting models and write comparison plots",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(plotDir, 0o755); err != nil {
				return errors.Wrapf(err, "could not create plot directory %s", plotDir)
			}
			results, specs, dataset, err := f.runFits()
			if err != nil {
				return err
			}

			curves := make([]plotting.Curve, 0, len(specs))
			for i, spec := range specs {
				means := make([]float64, len(results[i].Parameters))
				for j, s := range results[i].Parameters {
					means[j] = s.Mean
				}
				spec := spec
				curves = append(curves, plotting.Curve{
					Label: spec.Name(),
					Predict: func(distance float64) float64 {
						return spec.Predict(means, distance)
					},
				})
			}

			fitPath := filepath.Join(plotDir, dataset.Name+"_fits.png")
			if err := plotting.SuccessRates(dataset, curves, fitPath); err != nil {
				return err
			}

			for _, result := range results {
				if len(result.Residuals) == 0 {
					continue
				}
				residualPath := filepath.Join(plotDir, dataset.Name+"_"+result.Model+"_residuals.png")
				if err := plotting.Residuals(result.Residuals, "Residuals: "+result.Model, residualPath); err != nil {
					return err
				}
			}
			return nil
		},
	}

	f.BindFlags(cmd.Flags())
	cmd.Flags().StringVar(&plotDir, "plot-dir", plotDir, "Directory to write PNG plots into")

	return cmd
}
