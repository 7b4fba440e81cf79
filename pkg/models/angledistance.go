package models

import (
	"math"

	puttingv1 "github.com/puttfit/puttfit/pkg/apis/putting/v1"
)

// AngleDistanceModel extends the angle model with distance control: the putt
// must also stop between the hole and DistanceTolerance feet past it. Both
// error scales carry half-normal(0,1) priors by default; without them the
// sampler mixes poorly on the large dataset, and the resulting elevated
// R-hat values are reported to the user instead of being retried away.
type AngleDistanceModel struct {
	Data       *puttingv1.DataSet
	Geometry   puttingv1.Geometry
	FlatPriors bool
}

func (m *AngleDistanceModel) Name() string { return NameAngleDistance }

func (m *AngleDistanceModel) ParameterNames() []string {
	return []string{"sigma_angle", "sigma_distance"}
}

func (m *AngleDistanceModel) Init() []float64 {
	return []float64{math.Log(0.02), math.Log(0.1)}
}

func (m *AngleDistanceModel) Observe(x []float64) float64 {
	sigmaAngle := math.Exp(x[0])
	sigmaDistance := math.Exp(x[1])
	lp := x[0] + x[1]
	if !m.FlatPriors {
		lp += halfNormalLogp(1, sigmaAngle)
		lp += halfNormalLogp(1, sigmaDistance)
	}
	for _, pt := range m.Data.Points {
		p := ProbAngleDistance(pt.Distance, sigmaAngle, sigmaDistance, m.Geometry)
		lp += binomialLogLik(pt.Attempts, pt.Successes, p)
	}
	return lp
}

func (m *AngleDistanceModel) Transform(x []float64) []float64 {
	return []float64{math.Exp(x[0]), math.Exp(x[1])}
}

func (m *AngleDistanceModel) Derived(params []float64) []DerivedValue {
	return []DerivedValue{{Name: "sigma_degrees", Value: RadiansToDegrees(params[0])}}
}

func (m *AngleDistanceModel) Predict(params []float64, distance float64) float64 {
	return ProbAngleDistance(distance, params[0], params[1], m.Geometry)
}
