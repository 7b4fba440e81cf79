package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	puttingv1 "github.com/puttfit/puttfit/pkg/apis/putting/v1"
	"github.com/puttfit/puttfit/pkg/fitter"
	"github.com/puttfit/puttfit/pkg/flags"
	"github.com/puttfit/puttfit/pkg/models"
)

type DemoFlags struct {
	SamplerFlags *flags.SamplerFlags
	OutputFlags  *flags.OutputFlags
	Trials       int
	Successes    int
}

func NewDemoFlags() *DemoFlags {
	return &DemoFlags{
		SamplerFlags: flags.NewSamplerFlags(),
		OutputFlags:  flags.NewOutputFlags(),
		Trials:       10,
		Successes:    7,
	}
}

func (f *DemoFlags) BindFlags(fs *pflag.FlagSet) {
	f.SamplerFlags.BindFlags(fs)
	f.OutputFlags.BindFlags(fs)
	fs.IntVar(&f.Trials, "trials", f.Trials, "Number of Bernoulli trials")
	fs.IntVar(&f.Successes, "successes", f.Successes, "Number of observed successes")
}

// NewDemoCommand fits the single-parameter Bernoulli model, a quick check
// that the sampling pipeline works end to end.
func NewDemoCommand() *cobra.Command {
	f := NewDemoFlags()

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Fit the hello-world Bernoulli model to a success count",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.OutputFlags.Validate(); err != nil {
				return err
			}
			if f.Trials <= 0 || f.Successes < 0 || f.Successes > f.Trials {
				return errors.Errorf("need 0 <= successes <= trials, got %d of %d", f.Successes, f.Trials)
			}
			spec := &models.BernoulliModel{Trials: f.Trials, Successes: f.Successes}
			result, err := fitter.Fit(spec, f.SamplerFlags.GetConfig(), "demo")
			if err != nil {
				return err
			}
			return f.OutputFlags.PrintResults(os.Stdout, []*puttingv1.FitResult{result})
		},
	}

	f.BindFlags(cmd.Flags())

	return cmd
}
