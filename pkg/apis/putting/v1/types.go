package v1

import (
	"fmt"
	"math"
)

// DataPoint is one row of a putting table: all attempts recorded at a single
// distance bucket, and how many of them went in.
type DataPoint struct {
	Distance  float64 `json:"distance" yaml:"distance"`
	Attempts  int     `json:"attempts" yaml:"attempts"`
	Successes int     `json:"successes" yaml:"successes"`
}

// SuccessRate is the observed proportion of made putts at this distance.
func (p DataPoint) SuccessRate() float64 {
	if p.Attempts == 0 {
		return 0
	}
	return float64(p.Successes) / float64(p.Attempts)
}

// SuccessRateError is the binomial standard error sqrt(p(1-p)/n) of the
// observed rate, used for error bars and the normal-approximation likelihood.
func (p DataPoint) SuccessRateError() float64 {
	if p.Attempts == 0 {
		return 0
	}
	rate := p.SuccessRate()
	return math.Sqrt(rate * (1 - rate) / float64(p.Attempts))
}

// Validate checks the row-level invariants shared by every model.
func (p DataPoint) Validate() error {
	if p.Distance <= 0 {
		return fmt.Errorf("distance must be positive, got %v", p.Distance)
	}
	if p.Attempts <= 0 {
		return fmt.Errorf("attempts must be positive, got %d", p.Attempts)
	}
	if p.Successes < 0 || p.Successes > p.Attempts {
		return fmt.Errorf("successes must be in [0, %d], got %d", p.Attempts, p.Successes)
	}
	return nil
}

// DataSet is an ordered collection of putting observations from one source.
type DataSet struct {
	Name   string      `json:"name"`
	Points []DataPoint `json:"points"`
}

func (d *DataSet) Distances() []float64 {
	out := make([]float64, len(d.Points))
	for i, p := range d.Points {
		out[i] = p.Distance
	}
	return out
}

func (d *DataSet) SuccessRates() []float64 {
	out := make([]float64, len(d.Points))
	for i, p := range d.Points {
		out[i] = p.SuccessRate()
	}
	return out
}

// TotalAttempts sums attempts over all distance buckets.
func (d *DataSet) TotalAttempts() int {
	total := 0
	for _, p := range d.Points {
		total += p.Attempts
	}
	return total
}

// Geometry holds the physical constants of the putting problem, in feet.
// Overshot and DistanceTolerance encode the domain assumption that pros aim
// past the hole and that a putt rolling up to DistanceTolerance feet beyond
// the aim point still drops. Overshot of 1 rather than DistanceTolerance/2
// is deliberate risk asymmetry, kept configurable rather than corrected.
type Geometry struct {
	BallRadius        float64 `json:"ballRadius" yaml:"ballRadius"`
	HoleRadius        float64 `json:"holeRadius" yaml:"holeRadius"`
	Overshot          float64 `json:"overshot" yaml:"overshot"`
	DistanceTolerance float64 `json:"distanceTolerance" yaml:"distanceTolerance"`
}

// DefaultGeometry returns the regulation ball and cup dimensions
// ((1.68in)/2 and (4.25in)/2 converted to feet) with the case-study
// distance-control constants.
func DefaultGeometry() Geometry {
	return Geometry{
		BallRadius:        1.68 / 2 / 12,
		HoleRadius:        4.25 / 2 / 12,
		Overshot:          1.0,
		DistanceTolerance: 3.0,
	}
}

// Threshold is the distance below which a putt cannot miss on angle alone.
func (g Geometry) Threshold() float64 {
	return g.HoleRadius - g.BallRadius
}

func (g Geometry) Validate() error {
	if g.BallRadius <= 0 || g.HoleRadius <= 0 {
		return fmt.Errorf("ball and hole radii must be positive, got %v and %v", g.BallRadius, g.HoleRadius)
	}
	if g.HoleRadius <= g.BallRadius {
		return fmt.Errorf("hole radius %v must exceed ball radius %v", g.HoleRadius, g.BallRadius)
	}
	if g.Overshot < 0 || g.DistanceTolerance <= 0 {
		return fmt.Errorf("overshot %v must be non-negative and distance tolerance %v positive", g.Overshot, g.DistanceTolerance)
	}
	return nil
}

// ParameterSummary is the posterior summary of a single model parameter or
// derived quantity over all chains.
type ParameterSummary struct {
	Name   string  `json:"name"`
	Mean   float64 `json:"mean"`
	SD     float64 `json:"sd"`
	Q025   float64 `json:"q2.5"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Q975   float64 `json:"q97.5"`
	RHat   float64 `json:"rHat"`
	ESS    float64 `json:"ess"`
}

// Residual is a per-distance diagnostic from the dispersed model: observed
// success rate minus the posterior-mean predicted rate.
type Residual struct {
	Distance  float64 `json:"distance"`
	Observed  float64 `json:"observed"`
	Predicted float64 `json:"predicted"`
	Residual  float64 `json:"residual"`
}

// FitResult is everything a single model fit produces.
type FitResult struct {
	Model      string             `json:"model"`
	Dataset    string             `json:"dataset"`
	Chains     int                `json:"chains"`
	Iterations int                `json:"iterations"`
	Warmup     int                `json:"warmup"`
	Parameters []ParameterSummary `json:"parameters"`
	Derived    []ParameterSummary `json:"derived,omitempty"`
	Residuals  []Residual         `json:"residuals,omitempty"`
	Warnings   []string           `json:"warnings,omitempty"`
}

// Summary returns the summary for the named parameter or derived quantity,
// or nil if the fit has none by that name.
func (r *FitResult) Summary(name string) *ParameterSummary {
	for i := range r.Parameters {
		if r.Parameters[i].Name == name {
			return &r.Parameters[i]
		}
	}
	for i := range r.Derived {
		if r.Derived[i].Name == name {
			return &r.Derived[i]
		}
	}
	return nil
}
