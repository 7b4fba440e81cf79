package v1

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataPointRates(t *testing.T) {
	pt := DataPoint{Distance: 5, Attempts: 400, Successes: 100}
	assert.InDelta(t, 0.25, pt.SuccessRate(), 1e-12)
	assert.InDelta(t, math.Sqrt(0.25*0.75/400), pt.SuccessRateError(), 1e-12)
}

func TestGeometryValidate(t *testing.T) {
	require.NoError(t, DefaultGeometry().Validate())

	g := DefaultGeometry()
	g.HoleRadius = g.BallRadius
	assert.Error(t, g.Validate())

	g = DefaultGeometry()
	g.DistanceTolerance = 0
	assert.Error(t, g.Validate())
}

func TestFitResultSummaryLookup(t *testing.T) {
	result := &FitResult{
		Parameters: []ParameterSummary{{Name: "sigma_angle", Mean: 0.026}},
		Derived:    []ParameterSummary{{Name: "sigma_degrees", Mean: 1.49}},
	}

	require.NotNil(t, result.Summary("sigma_angle"))
	assert.InDelta(t, 1.49, result.Summary("sigma_degrees").Mean, 1e-12)
	assert.Nil(t, result.Summary("sigma_y"))
}
