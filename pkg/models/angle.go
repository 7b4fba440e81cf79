package models

import (
	"math"

	puttingv1 "github.com/puttfit/puttfit/pkg/apis/putting/v1"
)

// AngleModel explains success from first principles with a single parameter:
// the golfer's angular error standard deviation. The putt drops iff the
// initial angle is inside the window subtended by the effective hole.
type AngleModel struct {
	Data     *puttingv1.DataSet
	Geometry puttingv1.Geometry

	// FlatPrior drops the half-normal(0,1) prior on sigma_angle. The model
	// is well identified either way; the prior is kept by default for
	// consistency with the two-parameter extensions.
	FlatPrior bool
}

func (m *AngleModel) Name() string { return NameAngle }

func (m *AngleModel) ParameterNames() []string { return []string{"sigma_angle"} }

func (m *AngleModel) Init() []float64 {
	// log(0.05): a couple of degrees of angular error
	return []float64{math.Log(0.05)}
}

// Observe scores log(sigma_angle); the Jacobian of the exp transform keeps
// the density correct on the unconstrained scale.
func (m *AngleModel) Observe(x []float64) float64 {
	sigmaAngle := math.Exp(x[0])
	lp := x[0]
	if !m.FlatPrior {
		lp += halfNormalLogp(1, sigmaAngle)
	}
	for _, pt := range m.Data.Points {
		lp += binomialLogLik(pt.Attempts, pt.Successes, ProbAngle(pt.Distance, sigmaAngle, m.Geometry))
	}
	return lp
}

func (m *AngleModel) Transform(x []float64) []float64 {
	return []float64{math.Exp(x[0])}
}

func (m *AngleModel) Derived(params []float64) []DerivedValue {
	return []DerivedValue{{Name: "sigma_degrees", Value: RadiansToDegrees(params[0])}}
}

func (m *AngleModel) Predict(params []float64, distance float64) float64 {
	return ProbAngle(distance, params[0], m.Geometry)
}
