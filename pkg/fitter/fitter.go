// Package fitter runs the full fit pipeline for one model: sample the
// posterior, summarize every parameter and derived quantity, and attach
// convergence warnings and diagnostics.
package fitter

import (
	log "github.com/sirupsen/logrus"

	puttingv1 "github.com/puttfit/puttfit/pkg/apis/putting/v1"
	"github.com/puttfit/puttfit/pkg/models"
	"github.com/puttfit/puttfit/pkg/sampler"
	"github.com/puttfit/puttfit/pkg/summary"
)

// Fit samples the model's posterior and produces the summarized result.
func Fit(spec models.Spec, cfg sampler.Config, dataset string) (*puttingv1.FitResult, error) {
	logger := log.WithFields(log.Fields{"model": spec.Name(), "dataset": dataset})
	logger.Infof("fitting with %d chains of %d iterations (+%d warmup)", cfg.Chains, cfg.Iterations, cfg.Warmup)

	chains, err := sampler.New(cfg).Sample(spec)
	if err != nil {
		return nil, err
	}

	result := &puttingv1.FitResult{
		Model:      spec.Name(),
		Dataset:    dataset,
		Chains:     cfg.Chains,
		Iterations: cfg.Iterations,
		Warmup:     cfg.Warmup,
	}

	for i, name := range chains.ParameterNames {
		result.Parameters = append(result.Parameters, summary.Parameter(name, chains.Parameter(i)))
	}
	result.Derived = summarizeDerived(spec, chains)

	result.Warnings = append(
		summary.Warnings(result.Parameters),
		summary.Warnings(result.Derived)...)

	if dispersed, ok := spec.(*models.DispersedModel); ok {
		result.Residuals = dispersed.Residuals(posteriorMeans(result))
	}

	for chain, acceptance := range chains.Acceptance {
		logger.WithFields(log.Fields{"chain": chain, "acceptance": acceptance}).Debug("chain acceptance")
	}
	if len(result.Warnings) > 0 {
		logger.Warnf("fit finished with %d convergence warnings", len(result.Warnings))
	} else {
		logger.Info("fit finished, chains mixed")
	}
	return result, nil
}

// summarizeDerived turns the per-draw derived quantities into series and
// summarizes them like parameters.
func summarizeDerived(spec models.Spec, chains *sampler.Chains) []puttingv1.ParameterSummary {
	if len(chains.Draws) == 0 || len(chains.Draws[0]) == 0 {
		return nil
	}
	names := spec.Derived(chains.Draws[0][0])
	if len(names) == 0 {
		return nil
	}

	series := make([][][]float64, len(names))
	for i := range series {
		series[i] = make([][]float64, len(chains.Draws))
	}
	for ch, draws := range chains.Draws {
		for i := range names {
			series[i][ch] = make([]float64, len(draws))
		}
		for it, draw := range draws {
			for i, derived := range spec.Derived(draw) {
				series[i][ch][it] = derived.Value
			}
		}
	}

	out := make([]puttingv1.ParameterSummary, 0, len(names))
	for i, derived := range names {
		out = append(out, summary.Parameter(derived.Name, series[i]))
	}
	return out
}

// posteriorMeans reads the parameter means back out of the summaries, in
// model parameter order.
func posteriorMeans(result *puttingv1.FitResult) []float64 {
	means := make([]float64, len(result.Parameters))
	for i, s := range result.Parameters {
		means[i] = s.Mean
	}
	return means
}
