package models

import (
	"math"

	"bitbucket.org/dtolpin/infergo/dist"

	puttingv1 "github.com/puttfit/puttfit/pkg/apis/putting/v1"
)

// DispersedModel is the angle-distance model with the exact binomial
// likelihood replaced by a normal approximation on the observed rates, plus
// a free residual scale sigma_y:
//
//	y/n ~ Normal(p, sqrt(p*(1-p)/n + sigma_y^2))
//
// The binomial weights each row by its attempt count, so the huge
// short-putt buckets of the pro-tracking data dominate the fit and force a
// visible mid-range misfit. sigma_y absorbs that model misspecification with
// a term independent of sample size.
type DispersedModel struct {
	Data     *puttingv1.DataSet
	Geometry puttingv1.Geometry
}

func (m *DispersedModel) Name() string { return NameAngleDistanceDispersed }

func (m *DispersedModel) ParameterNames() []string {
	return []string{"sigma_angle", "sigma_distance", "sigma_y"}
}

func (m *DispersedModel) Init() []float64 {
	return []float64{math.Log(0.02), math.Log(0.1), math.Log(0.01)}
}

func (m *DispersedModel) Observe(x []float64) float64 {
	sigmaAngle := math.Exp(x[0])
	sigmaDistance := math.Exp(x[1])
	sigmaY := math.Exp(x[2])
	lp := x[0] + x[1] + x[2]
	lp += halfNormalLogp(1, sigmaAngle)
	lp += halfNormalLogp(1, sigmaDistance)
	lp += halfNormalLogp(1, sigmaY)
	for _, pt := range m.Data.Points {
		p := clampProb(ProbAngleDistance(pt.Distance, sigmaAngle, sigmaDistance, m.Geometry))
		sd := math.Sqrt(p*(1-p)/float64(pt.Attempts) + sigmaY*sigmaY)
		lp += dist.Normal.Logp(p, sd, pt.SuccessRate())
	}
	return lp
}

func (m *DispersedModel) Transform(x []float64) []float64 {
	return []float64{math.Exp(x[0]), math.Exp(x[1]), math.Exp(x[2])}
}

func (m *DispersedModel) Derived(params []float64) []DerivedValue {
	return []DerivedValue{{Name: "sigma_degrees", Value: RadiansToDegrees(params[0])}}
}

func (m *DispersedModel) Predict(params []float64, distance float64) float64 {
	return ProbAngleDistance(distance, params[0], params[1], m.Geometry)
}

// Residuals computes the observed-minus-predicted rates at a constrained
// draw, normally the posterior means. They are diagnostics, not modeled
// quantities.
func (m *DispersedModel) Residuals(params []float64) []puttingv1.Residual {
	out := make([]puttingv1.Residual, 0, len(m.Data.Points))
	for _, pt := range m.Data.Points {
		p := m.Predict(params, pt.Distance)
		out = append(out, puttingv1.Residual{
			Distance:  pt.Distance,
			Observed:  pt.SuccessRate(),
			Predicted: p,
			Residual:  pt.SuccessRate() - p,
		})
	}
	return out
}
