// Package convergence implements the chain diagnostics reported with every
// fit: split potential scale reduction (R-hat) and an effective sample size
// estimate. Elevated values are surfaced to the user as warnings; nothing in
// the pipeline retries or suppresses them.
package convergence

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// RHatThreshold is the value above which a parameter is flagged as not
// converged.
const RHatThreshold = 1.01

// SplitRHat computes the split potential scale reduction statistic over the
// per-chain draws of one parameter. Each chain is split in half so the
// statistic also catches within-chain drift. Values near 1 indicate the
// chains agree; it returns NaN when there are too few draws to say anything.
func SplitRHat(chains [][]float64) float64 {
	sequences := split(chains)
	if len(sequences) < 2 {
		return math.NaN()
	}
	n := len(sequences[0])
	if n < 2 {
		return math.NaN()
	}

	means := make([]float64, len(sequences))
	variances := make([]float64, len(sequences))
	for i, seq := range sequences {
		means[i] = stat.Mean(seq, nil)
		variances[i] = stat.Variance(seq, nil)
	}

	w := stat.Mean(variances, nil)
	b := float64(n) * stat.Variance(means, nil)
	if w == 0 {
		// degenerate chains, e.g. a stuck sampler; identical constants
		// across all chains count as converged
		if b == 0 {
			return 1
		}
		return math.Inf(1)
	}

	varPlus := float64(n-1)/float64(n)*w + b/float64(n)
	return math.Sqrt(varPlus / w)
}

// ESS estimates the effective number of independent draws for one parameter
// using the standard combined-chain autocorrelation estimate with Geyer's
// initial positive sequence truncation.
func ESS(chains [][]float64) float64 {
	sequences := split(chains)
	if len(sequences) == 0 {
		return math.NaN()
	}
	n := len(sequences[0])
	if n < 4 {
		return math.NaN()
	}
	m := len(sequences)

	means := make([]float64, m)
	variances := make([]float64, m)
	for i, seq := range sequences {
		means[i] = stat.Mean(seq, nil)
		variances[i] = stat.Variance(seq, nil)
	}
	w := stat.Mean(variances, nil)
	b := float64(n) * stat.Variance(means, nil)
	varPlus := float64(n-1)/float64(n)*w + b/float64(n)
	if varPlus == 0 {
		return math.NaN()
	}

	// mean autocovariance across sequences at each lag
	autocov := func(lag int) float64 {
		total := 0.0
		for i, seq := range sequences {
			acc := 0.0
			for t := 0; t+lag < n; t++ {
				acc += (seq[t] - means[i]) * (seq[t+lag] - means[i])
			}
			total += acc / float64(n)
		}
		return total / float64(m)
	}

	// sum paired autocorrelations while the pairs stay positive
	sum := 0.0
	for lag := 1; lag+1 < n; lag += 2 {
		rhoEven := 1 - (w-autocov(lag))/varPlus
		rhoOdd := 1 - (w-autocov(lag+1))/varPlus
		pair := rhoEven + rhoOdd
		if pair < 0 {
			break
		}
		sum += pair
	}

	ess := float64(m*n) / (1 + 2*sum)
	return math.Min(ess, float64(m*n))
}

// split halves every chain, dropping the middle draw of odd-length chains.
func split(chains [][]float64) [][]float64 {
	var out [][]float64
	for _, chain := range chains {
		half := len(chain) / 2
		if half == 0 {
			continue
		}
		out = append(out, chain[:half], chain[len(chain)-half:])
	}
	return out
}
