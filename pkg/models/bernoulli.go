package models

import (
	"math"
)

// BernoulliModel is the hello-world model for trying out the sampling
// pipeline: a single success probability theta with a flat prior, observed
// through y successes in n trials. It is what the demo subcommand fits.
type BernoulliModel struct {
	Trials    int
	Successes int
}

func (m *BernoulliModel) Name() string { return "bernoulli" }

func (m *BernoulliModel) ParameterNames() []string { return []string{"theta"} }

func (m *BernoulliModel) Init() []float64 { return []float64{0} }

// Observe scores logit(theta); the log(theta*(1-theta)) term is the
// Jacobian that makes the flat prior on theta flat on the constrained scale.
func (m *BernoulliModel) Observe(x []float64) float64 {
	theta := clampProb(invlogit(x[0]))
	lp := math.Log(theta) + math.Log(1-theta)
	lp += binomialLogLik(m.Trials, m.Successes, theta)
	return lp
}

func (m *BernoulliModel) Transform(x []float64) []float64 {
	return []float64{invlogit(x[0])}
}

func (m *BernoulliModel) Derived(params []float64) []DerivedValue { return nil }

// Predict ignores distance; the demo model has no covariate.
func (m *BernoulliModel) Predict(params []float64, distance float64) float64 {
	return params[0]
}
