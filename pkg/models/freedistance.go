package models

import (
	"math"

	"bitbucket.org/dtolpin/infergo/dist"

	puttingv1 "github.com/puttfit/puttfit/pkg/apis/putting/v1"
)

// FreeDistanceModel is the exploratory variant of the dispersed model:
// overshot and distance tolerance are promoted from geometry constants to
// positive parameters with weak Normal(1,5) and Normal(3,5) priors. The data
// barely identify them; the expected outcome is elevated R-hat and no real
// improvement over the dispersed model, which the fit reports as is.
type FreeDistanceModel struct {
	Data     *puttingv1.DataSet
	Geometry puttingv1.Geometry
}

func (m *FreeDistanceModel) Name() string { return NameAngleDistanceFree }

func (m *FreeDistanceModel) ParameterNames() []string {
	return []string{"sigma_angle", "sigma_distance", "sigma_y", "overshot", "distance_tolerance"}
}

func (m *FreeDistanceModel) Init() []float64 {
	return []float64{
		math.Log(0.02),
		math.Log(0.1),
		math.Log(0.01),
		math.Log(m.Geometry.Overshot),
		math.Log(m.Geometry.DistanceTolerance),
	}
}

func (m *FreeDistanceModel) Observe(x []float64) float64 {
	sigmaAngle := math.Exp(x[0])
	sigmaDistance := math.Exp(x[1])
	sigmaY := math.Exp(x[2])
	overshot := math.Exp(x[3])
	tolerance := math.Exp(x[4])

	// Jacobian of the five exp transforms
	lp := x[0] + x[1] + x[2] + x[3] + x[4]
	lp += halfNormalLogp(1, sigmaAngle)
	lp += halfNormalLogp(1, sigmaDistance)
	lp += halfNormalLogp(1, sigmaY)
	lp += dist.Normal.Logp(1, 5, overshot)
	lp += dist.Normal.Logp(3, 5, tolerance)

	g := m.Geometry
	g.Overshot = overshot
	g.DistanceTolerance = tolerance
	for _, pt := range m.Data.Points {
		p := clampProb(ProbAngleDistance(pt.Distance, sigmaAngle, sigmaDistance, g))
		sd := math.Sqrt(p*(1-p)/float64(pt.Attempts) + sigmaY*sigmaY)
		lp += dist.Normal.Logp(p, sd, pt.SuccessRate())
	}
	return lp
}

func (m *FreeDistanceModel) Transform(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Exp(v)
	}
	return out
}

func (m *FreeDistanceModel) Derived(params []float64) []DerivedValue {
	return []DerivedValue{{Name: "sigma_degrees", Value: RadiansToDegrees(params[0])}}
}

func (m *FreeDistanceModel) Predict(params []float64, distance float64) float64 {
	g := m.Geometry
	g.Overshot = params[3]
	g.DistanceTolerance = params[4]
	return ProbAngleDistance(distance, params[0], params[1], g)
}
