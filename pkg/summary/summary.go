// Package summary turns raw posterior draws into the per-parameter tables
// the CLI prints: mean, sd, quantiles, R-hat and effective sample size.
package summary

import (
	"fmt"

	"github.com/montanaflynn/stats"

	puttingv1 "github.com/puttfit/puttfit/pkg/apis/putting/v1"
	"github.com/puttfit/puttfit/pkg/convergence"
)

// Parameter summarizes the per-chain draws of a single quantity.
func Parameter(name string, chains [][]float64) puttingv1.ParameterSummary {
	var pooled []float64
	for _, chain := range chains {
		pooled = append(pooled, chain...)
	}

	data := stats.LoadRawData(pooled)
	mean, _ := stats.Mean(data)
	sd, _ := stats.StandardDeviationSample(data)
	q025, _ := stats.Percentile(data, 2.5)
	q25, _ := stats.Percentile(data, 25)
	median, _ := stats.Median(data)
	q75, _ := stats.Percentile(data, 75)
	q975, _ := stats.Percentile(data, 97.5)

	return puttingv1.ParameterSummary{
		Name:   name,
		Mean:   mean,
		SD:     sd,
		Q025:   q025,
		Q25:    q25,
		Median: median,
		Q75:    q75,
		Q975:   q975,
		RHat:   convergence.SplitRHat(chains),
		ESS:    convergence.ESS(chains),
	}
}

// Warnings inspects summaries for convergence trouble. The angle-distance
// model under flat priors and the free distance-parameter model are both
// expected to trip this; the warnings are part of the result, not errors.
func Warnings(summaries []puttingv1.ParameterSummary) []string {
	var out []string
	for _, s := range summaries {
		if s.RHat > convergence.RHatThreshold {
			out = append(out, fmt.Sprintf(
				"parameter %s has R-hat %.3f (above %.2f): chains have not mixed, do not trust this fit",
				s.Name, s.RHat, convergence.RHatThreshold))
		}
	}
	return out
}
