package models

import (
	puttingv1 "github.com/puttfit/puttfit/pkg/apis/putting/v1"
)

// LogisticModel is the baseline: success probability falls off with distance
// through a logistic curve, p = invlogit(a + b*x), with flat priors on the
// intercept and slope.
type LogisticModel struct {
	Data *puttingv1.DataSet
}

func (m *LogisticModel) Name() string { return NameLogistic }

func (m *LogisticModel) ParameterNames() []string { return []string{"a", "b"} }

func (m *LogisticModel) Init() []float64 {
	// roughly the fit to the classic data, so chains start in a sane region
	return []float64{2, -0.2}
}

func (m *LogisticModel) Observe(x []float64) float64 {
	a, b := x[0], x[1]
	lp := 0.0
	for _, pt := range m.Data.Points {
		lp += binomialLogLik(pt.Attempts, pt.Successes, invlogit(a+b*pt.Distance))
	}
	return lp
}

// Transform is the identity: both parameters are unconstrained.
func (m *LogisticModel) Transform(x []float64) []float64 {
	return []float64{x[0], x[1]}
}

func (m *LogisticModel) Derived(params []float64) []DerivedValue { return nil }

func (m *LogisticModel) Predict(params []float64, distance float64) float64 {
	return invlogit(params[0] + params[1]*distance)
}
