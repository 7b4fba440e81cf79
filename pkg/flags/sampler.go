package flags

import (
	"github.com/spf13/pflag"

	"github.com/puttfit/puttfit/pkg/sampler"
)

// SamplerFlags holds the posterior-sampling run configuration.
type SamplerFlags struct {
	Chains     int
	Iterations int
	Warmup     int
	Seed       uint64
	Step       float64
}

func NewSamplerFlags() *SamplerFlags {
	cfg := sampler.DefaultConfig()
	return &SamplerFlags{
		Chains:     cfg.Chains,
		Iterations: cfg.Iterations,
		Warmup:     cfg.Warmup,
		Seed:       cfg.Seed,
		Step:       cfg.InitialStep,
	}
}

func (f *SamplerFlags) BindFlags(fs *pflag.FlagSet) {
	fs.IntVar(&f.Chains, "chains", f.Chains, "Number of independent chains")
	fs.IntVar(&f.Iterations, "iterations", f.Iterations, "Post-warmup draws per chain")
	fs.IntVar(&f.Warmup, "warmup", f.Warmup, "Warmup (adaptation) iterations per chain, discarded")
	fs.Uint64Var(&f.Seed, "seed", f.Seed, "Random seed; chains derive independent streams from it")
	fs.Float64Var(&f.Step, "initial-step", f.Step, "Initial proposal scale before adaptation")
}

func (f *SamplerFlags) GetConfig() sampler.Config {
	return sampler.Config{
		Chains:      f.Chains,
		Iterations:  f.Iterations,
		Warmup:      f.Warmup,
		Seed:        f.Seed,
		InitialStep: f.Step,
	}
}
