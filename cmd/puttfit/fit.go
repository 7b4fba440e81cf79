package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	puttingv1 "github.com/puttfit/puttfit/pkg/apis/putting/v1"
	"github.com/puttfit/puttfit/pkg/fitter"
	"github.com/puttfit/puttfit/pkg/flags"
	"github.com/puttfit/puttfit/pkg/models"
)

type FitFlags struct {
	DataFlags    *flags.DataFlags
	SamplerFlags *flags.SamplerFlags
	OutputFlags  *flags.OutputFlags
	Model        string
	FlatPriors   bool
}

func NewFitFlags() *FitFlags {
	return &FitFlags{
		DataFlags:    flags.NewDataFlags(),
		SamplerFlags: flags.NewSamplerFlags(),
		OutputFlags:  flags.NewOutputFlags(),
		Model:        models.NameAngle,
	}
}

func (f *FitFlags) BindFlags(fs *pflag.FlagSet) {
	f.DataFlags.BindFlags(fs)
	f.SamplerFlags.BindFlags(fs)
	f.OutputFlags.BindFlags(fs)
	fs.StringVar(&f.Model, "model", f.Model,
		"Model to fit; one of "+strings.Join(models.Names(), ", ")+", or 'all'")
	fs.BoolVar(&f.FlatPriors, "flat-priors", f.FlatPriors,
		"Drop the half-normal priors on scale parameters where the model supports it; "+
			"the angle-distance model is known to mix poorly this way, which shows up as R-hat warnings")
}

// modelNames expands the --model flag to the list of models to fit.
func (f *FitFlags) modelNames() ([]string, error) {
	if f.Model == "all" {
		return models.Names(), nil
	}
	for _, name := range models.Names() {
		if name == f.Model {
			return []string{name}, nil
		}
	}
	return nil, errors.Errorf("unknown model %q; have %s or all", f.Model, strings.Join(models.Names(), ", "))
}

// runFits loads the data once and fits each requested model against it.
func (f *FitFlags) runFits() ([]*puttingv1.FitResult, []models.Spec, *puttingv1.DataSet, error) {
	names, err := f.modelNames()
	if err != nil {
		return nil, nil, nil, err
	}
	dataset, err := f.DataFlags.GetDataSet()
	if err != nil {
		return nil, nil, nil, err
	}
	geometry, err := f.DataFlags.GetGeometry()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := models.Options{Geometry: geometry, FlatPriors: f.FlatPriors}
	results := make([]*puttingv1.FitResult, 0, len(names))
	specs := make([]models.Spec, 0, len(names))
	for _, name := range names {
		spec, err := models.New(name, dataset, opts)
		if err != nil {
			return nil, nil, nil, err
		}
		result, err := fitter.Fit(spec, f.SamplerFlags.GetConfig(), dataset.Name)
		if err != nil {
			return nil, nil, nil, errors.Wrapf(err, "fitting model %q", name)
		}
		results = append(results, result)
		specs = append(specs, spec)
	}
	return results, specs, dataset, nil
}

func NewFitCommand() *cobra.Command {
	f := NewFitFlags()

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit a putting model and print its posterior summary",
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

	f.BindFlags(cmd.Flags())

	return cmd
}
