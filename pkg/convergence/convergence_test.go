package convergence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

func normalChain(seed uint64, mean float64, n int) []float64 {
	normal := distuv.Normal{Mu: mean, Sigma: 1, Src: rand.NewSource(seed)}
	out := make([]float64, n)
	for i := range out {
		out[i] = normal.Rand()
	}
	return out
}

func TestSplitRHatWellMixedChains(t *testing.T) {
	chains := [][]float64{
		normalChain(1, 0, 1000),
		normalChain(2, 0, 1000),
		normalChain(3, 0, 1000),
		normalChain(4, 0, 1000),
	}

	rhat := SplitRHat(chains)
	assert.InDelta(t, 1.0, rhat, 0.02)
}

func TestSplitRHatSeparatedChains(t *testing.T) {
	chains := [][]float64{
		normalChain(1, 0, 1000),
		normalChain(2, 5, 1000),
		normalChain(3, 0, 1000),
		normalChain(4, 5, 1000),
	}

	assert.Greater(t, SplitRHat(chains), 1.5)
}

func TestSplitRHatCatchesWithinChainDrift(t *testing.T) {
	// a single chain whose halves disagree: splitting must expose it
	drifting := make([]float64, 1000)
	copy(drifting, normalChain(1, 0, 500))
	copy(drifting[500:], normalChain(2, 5, 500))

	assert.Greater(t, SplitRHat([][]float64{drifting, drifting}), 1.5)
}

func TestSplitRHatDegenerateCases(t *testing.T) {
	assert.True(t, math.IsNaN(SplitRHat(nil)))
	assert.True(t, math.IsNaN(SplitRHat([][]float64{{1}})))

	// constant identical chains count as converged
	constant := []float64{2, 2, 2, 2, 2, 2}
	assert.Equal(t, 1.0, SplitRHat([][]float64{constant, constant}))

	// constant chains at different values never mixed
	shifted := []float64{3, 3, 3, 3, 3, 3}
	assert.True(t, math.IsInf(SplitRHat([][]float64{constant, shifted}), 1))
}

func TestESSIndependentDraws(t *testing.T) {
	chains := [][]float64{
		normalChain(1, 0, 1000),
		normalChain(2, 0, 1000),
		normalChain(3, 0, 1000),
		normalChain(4, 0, 1000),
	}

	ess := ESS(chains)
	total := 4000.0
	assert.Greater(t, ess, total/4)
	assert.LessOrEqual(t, ess, total)
}

func TestESSCorrelatedDraws(t *testing.T) {
	// an AR(1) chain with strong autocorrelation has far fewer effective
	// draws than raw draws
	ar1 := func(seed uint64, n int) []float64 {
		normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}
		out := make([]float64, n)
		for i := 1; i < n; i++ {
			out[i] = 0.95*out[i-1] + 0.1*normal.Rand()
		}
		return out
	}
	chains := [][]float64{ar1(1, 2000), ar1(2, 2000)}

	assert.Less(t, ESS(chains), 1000.0)
}

func TestESSDegenerateCases(t *testing.T) {
	assert.True(t, math.IsNaN(ESS(nil)))
	assert.True(t, math.IsNaN(ESS([][]float64{{1, 2}})))

	constant := []float64{5, 5, 5, 5, 5, 5, 5, 5, 5, 5}
	assert.True(t, math.IsNaN(ESS([][]float64{constant, constant})))
}
