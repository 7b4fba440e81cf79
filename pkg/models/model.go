// Package models defines the putting success-rate models as infergo models:
// each one scores a vector of unconstrained parameters with the unnormalized
// log posterior through Observe. Positive-constrained scale parameters are
// sampled on the log scale, with the change-of-variable Jacobian folded into
// the returned log density.
package models

import (
	"math"

	"bitbucket.org/dtolpin/infergo/dist"
	"bitbucket.org/dtolpin/infergo/model"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"

	puttingv1 "github.com/puttfit/puttfit/pkg/apis/putting/v1"
)

// every spec is usable wherever infergo expects a model
var (
	_ model.Model = (*LogisticModel)(nil)
	_ model.Model = (*AngleModel)(nil)
	_ model.Model = (*AngleDistanceModel)(nil)
	_ model.Model = (*DispersedModel)(nil)
	_ model.Model = (*FreeDistanceModel)(nil)
	_ model.Model = (*BernoulliModel)(nil)
)

// Model names accepted by New and the CLI.
const (
	NameLogistic               = "logistic"
	NameAngle                  = "angle"
	NameAngleDistance          = "angle-distance"
	NameAngleDistanceDispersed = "angle-distance-dispersed"
	NameAngleDistanceFree      = "angle-distance-free"
)

// DerivedValue is a quantity computed from a single posterior draw but not
// itself sampled, e.g. sigma_angle converted to degrees.
type DerivedValue struct {
	Name  string
	Value float64
}

// Spec extends the infergo model contract (Observe returning the log
// density of an unconstrained parameter vector) with the metadata the
// sampler, summarizer and plotter need.
type Spec interface {
	// Observe satisfies bitbucket.org/dtolpin/infergo/model.Model.
	Observe(x []float64) float64

	// Name identifies the model in output and plots.
	Name() string

	// ParameterNames returns the constrained-scale parameter names, in the
	// order Transform emits them.
	ParameterNames() []string

	// Init returns a reasonable unconstrained starting point.
	Init() []float64

	// Transform maps an unconstrained draw to the constrained scale.
	Transform(x []float64) []float64

	// Derived computes reporting quantities from a constrained draw. May
	// return nil.
	Derived(params []float64) []DerivedValue

	// Predict returns the modeled success probability at a distance, for a
	// constrained draw.
	Predict(params []float64, distance float64) float64
}

// Options configures model construction.
type Options struct {
	Geometry puttingv1.Geometry

	// FlatPriors drops the half-normal priors on the scale parameters where
	// a model supports it. The angle-distance model is known to mix poorly
	// without the priors; the flag exists to reproduce that failure mode,
	// which surfaces through the R-hat diagnostics rather than an error.
	FlatPriors bool
}

// Names lists the distance models in their natural fitting order.
func Names() []string {
	return []string{
		NameLogistic,
		NameAngle,
		NameAngleDistance,
		NameAngleDistanceDispersed,
		NameAngleDistanceFree,
	}
}

// New builds the named model over a dataset.
func New(name string, data *puttingv1.DataSet, opts Options) (Spec, error) {
	if data == nil || len(data.Points) == 0 {
		return nil, errors.Errorf("model %q requires a non-empty dataset", name)
	}
	if err := opts.Geometry.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid geometry for model %q", name)
	}
	switch name {
	case NameLogistic:
		return &LogisticModel{Data: data}, nil
	case NameAngle:
		return &AngleModel{Data: data, Geometry: opts.Geometry, FlatPrior: opts.FlatPriors}, nil
	case NameAngleDistance:
		return &AngleDistanceModel{Data: data, Geometry: opts.Geometry, FlatPriors: opts.FlatPriors}, nil
	case NameAngleDistanceDispersed:
		return &DispersedModel{Data: data, Geometry: opts.Geometry}, nil
	case NameAngleDistanceFree:
		return &FreeDistanceModel{Data: data, Geometry: opts.Geometry}, nil
	default:
		return nil, errors.Errorf("unknown model %q", name)
	}
}

const probEps = 1e-12

func clampProb(p float64) float64 {
	if p < probEps {
		return probEps
	}
	if p > 1-probEps {
		return 1 - probEps
	}
	return p
}

func invlogit(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// binomialLogLik scores y successes in n attempts under success probability
// p. The probability is clamped away from 0 and 1 so a boundary case (e.g. a
// tap-in distance where the angle model forces p=1) cannot produce NaN.
func binomialLogLik(n, y int, p float64) float64 {
	b := distuv.Binomial{N: float64(n), P: clampProb(p)}
	return b.LogProb(float64(y))
}

// halfNormalLogp is the log density of a half-normal(0, scale) prior at x,
// x >= 0: a standard normal folded onto the non-negative reals.
func halfNormalLogp(scale, x float64) float64 {
	return dist.Normal.Logp(0, scale, x) + math.Ln2
}
