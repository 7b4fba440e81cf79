package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	puttingv1 "github.com/puttfit/puttfit/pkg/apis/putting/v1"
)

func testDataSet() *puttingv1.DataSet {
	return &puttingv1.DataSet{
		Name: "test",
		Points: []puttingv1.DataPoint{
			{Distance: 2, Attempts: 1443, Successes: 1346},
			{Distance: 5, Attempts: 353, Successes: 208},
			{Distance: 10, Attempts: 200, Successes: 67},
			{Distance: 20, Attempts: 152, Successes: 24},
		},
	}
}

func TestNew(t *testing.T) {
	data := testDataSet()
	opts := Options{Geometry: puttingv1.DefaultGeometry()}

	tests := []struct {
		name        string
		model       string
		data        *puttingv1.DataSet
		expectedErr bool
		parameters  int
	}{
		{name: "logistic", model: NameLogistic, data: data, parameters: 2},
		{name: "angle", model: NameAngle, data: data, parameters: 1},
		{name: "angle-distance", model: NameAngleDistance, data: data, parameters: 2},
		{name: "dispersed", model: NameAngleDistanceDispersed, data: data, parameters: 3},
		{name: "free distance parameters", model: NameAngleDistanceFree, data: data, parameters: 5},
		{name: "unknown model", model: "spline", data: data, expectedErr: true},
		{name: "empty dataset", model: NameAngle, data: &puttingv1.DataSet{}, expectedErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := New(tc.model, tc.data, opts)
			if tc.expectedErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.model, spec.Name())
			assert.Len(t, spec.ParameterNames(), tc.parameters)
			assert.Len(t, spec.Init(), tc.parameters)
			assert.Len(t, spec.Transform(spec.Init()), tc.parameters)

			lp := spec.Observe(spec.Init())
			assert.Falsef(t, math.IsNaN(lp) || math.IsInf(lp, 0), "log density at init should be finite, got %v", lp)
		})
	}
}

func TestLogisticPredictDecreasesWithDistance(t *testing.T) {
	m := &LogisticModel{Data: testDataSet()}
	params := []float64{2.2, -0.25}
	last := 1.1
	for x := 1.0; x <= 20; x++ {
		p := m.Predict(params, x)
		assert.Less(t, p, last)
		assert.Greater(t, p, 0.0)
		last = p
	}
}

func TestAngleModelFlatPriorChangesDensity(t *testing.T) {
	data := testDataSet()
	g := puttingv1.DefaultGeometry()
	withPrior := &AngleModel{Data: data, Geometry: g}
	flat := &AngleModel{Data: data, Geometry: g, FlatPrior: true}

	x := []float64{math.Log(0.026)}
	// the two densities differ by exactly the half-normal prior term
	assert.InDelta(t, halfNormalLogp(1, 0.026), withPrior.Observe(x)-flat.Observe(x), 1e-10)
}

func TestAngleModelTransform(t *testing.T) {
	m := &AngleModel{Data: testDataSet(), Geometry: puttingv1.DefaultGeometry()}
	constrained := m.Transform([]float64{math.Log(0.026)})
	require.Len(t, constrained, 1)
	assert.InDelta(t, 0.026, constrained[0], 1e-12)

	derived := m.Derived(constrained)
	require.Len(t, derived, 1)
	assert.Equal(t, "sigma_degrees", derived[0].Name)
	assert.InDelta(t, 1.4897, derived[0].Value, 0.0001)
}

func TestAngleModelPrefersPlausibleSigma(t *testing.T) {
	m := &AngleModel{Data: testDataSet(), Geometry: puttingv1.DefaultGeometry()}

	// the published fit is near 0.026; both a much tighter and a much wider
	// angular error should score distinctly worse on the same data
	good := m.Observe([]float64{math.Log(0.026)})
	tooTight := m.Observe([]float64{math.Log(0.002)})
	tooWide := m.Observe([]float64{math.Log(0.3)})
	assert.Greater(t, good, tooTight)
	assert.Greater(t, good, tooWide)
}

func TestDispersedResiduals(t *testing.T) {
	data := testDataSet()
	m := &DispersedModel{Data: data, Geometry: puttingv1.DefaultGeometry()}
	residuals := m.Residuals([]float64{0.026, 0.08, 0.003})

	require.Len(t, residuals, len(data.Points))
	for i, r := range residuals {
		assert.Equal(t, data.Points[i].Distance, r.Distance)
		assert.InDelta(t, data.Points[i].SuccessRate(), r.Observed, 1e-12)
		assert.InDelta(t, r.Observed-r.Predicted, r.Residual, 1e-12)
		assert.GreaterOrEqual(t, r.Predicted, 0.0)
		assert.LessOrEqual(t, r.Predicted, 1.0)
	}
}

func TestFreeDistanceModelUsesDrawGeometry(t *testing.T) {
	m := &FreeDistanceModel{Data: testDataSet(), Geometry: puttingv1.DefaultGeometry()}

	// widening the tolerance in the draw must raise the success probability
	narrow := m.Predict([]float64{0.026, 0.08, 0.003, 1, 1.5}, 10)
	wide := m.Predict([]float64{0.026, 0.08, 0.003, 1, 6}, 10)
	assert.Greater(t, wide, narrow)
}

func TestBernoulliModelFavorsObservedRate(t *testing.T) {
	m := &BernoulliModel{Trials: 10, Successes: 7}

	logit := func(p float64) float64 { return math.Log(p / (1 - p)) }
	atRate := m.Observe([]float64{logit(0.7)})
	atTenth := m.Observe([]float64{logit(0.1)})
	assert.Greater(t, atRate, atTenth)

	constrained := m.Transform([]float64{logit(0.7)})
	assert.InDelta(t, 0.7, constrained[0], 1e-12)
}

func TestBinomialLogLikBoundary(t *testing.T) {
	// p forced to 1 at tap-in range must not produce NaN even when a miss
	// is recorded
	assert.False(t, math.IsNaN(binomialLogLik(100, 99, 1.0)))
	assert.False(t, math.IsNaN(binomialLogLik(100, 100, 1.0)))
	assert.False(t, math.IsNaN(binomialLogLik(100, 0, 0.0)))
}
