// Package plotting renders the comparison figures: observed success rates
// with binomial error bars, fitted model curves over distance, and the
// residual diagnostic for the dispersed model.
package plotting

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	puttingv1 "github.com/puttfit/puttfit/pkg/apis/putting/v1"
)

// Curve is one fitted model's success probability as a function of distance.
type Curve struct {
	Label   string
	Predict func(distance float64) float64
}

const curvePoints = 200

// SuccessRates writes the observed-versus-fitted figure to path. The data
// points carry their binomial standard errors; each curve is drawn over the
// dataset's distance range.
func SuccessRates(dataset *puttingv1.DataSet, curves []Curve, path string) error {
	p := plot.New()
	p.Title.Text = "Putting success rate: " + dataset.Name
	p.X.Label.Text = "distance from hole (feet)"
	p.Y.Label.Text = "probability of success"
	p.Y.Min, p.Y.Max = 0, 1.05

	observed := ratePoints{dataset: dataset}
	scatter, err := plotter.NewScatter(observed)
	if err != nil {
		return errors.Wrap(err, "could not plot observed rates")
	}
	bars, err := plotter.NewYErrorBars(observed)
	if err != nil {
		return errors.Wrap(err, "could not plot error bars")
	}
	p.Add(scatter, bars)
	p.Legend.Add("observed", scatter)

	xmin, xmax := distanceRange(dataset)
	for i, curve := range curves {
		line, err := plotter.NewLine(sampleCurve(curve, xmin, xmax))
		if err != nil {
			return errors.Wrapf(err, "could not plot curve %q", curve.Label)
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i)
		p.Add(line)
		p.Legend.Add(curve.Label, line)
	}
	p.Legend.Top = true

	if err := p.Save(7*vg.Inch, 5*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "could not save plot %s", path)
	}
	log.WithField("path", path).Info("wrote success-rate plot")
	return nil
}

// Residuals writes the observed-minus-predicted diagnostic figure to path.
func Residuals(residuals []puttingv1.Residual, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "distance from hole (feet)"
	p.Y.Label.Text = "observed - predicted success rate"

	xys := make(plotter.XYs, len(residuals))
	for i, r := range residuals {
		xys[i].X = r.Distance
		xys[i].Y = r.Residual
	}
	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return errors.Wrap(err, "could not plot residuals")
	}
	p.Add(scatter, zeroLine(residuals))

	if err := p.Save(7*vg.Inch, 5*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "could not save plot %s", path)
	}
	log.WithField("path", path).Info("wrote residual plot")
	return nil
}

func zeroLine(residuals []puttingv1.Residual) *plotter.Line {
	xmin, xmax := residuals[0].Distance, residuals[0].Distance
	for _, r := range residuals {
		xmin = min(xmin, r.Distance)
		xmax = max(xmax, r.Distance)
	}
	line, _ := plotter.NewLine(plotter.XYs{{X: xmin, Y: 0}, {X: xmax, Y: 0}})
	return line
}

func sampleCurve(curve Curve, xmin, xmax float64) plotter.XYs {
	xys := make(plotter.XYs, curvePoints+1)
	step := (xmax - xmin) / curvePoints
	for i := range xys {
		x := xmin + float64(i)*step
		xys[i].X = x
		xys[i].Y = curve.Predict(x)
	}
	return xys
}

func distanceRange(dataset *puttingv1.DataSet) (float64, float64) {
	xmin, xmax := dataset.Points[0].Distance, dataset.Points[0].Distance
	for _, pt := range dataset.Points {
		xmin = min(xmin, pt.Distance)
		xmax = max(xmax, pt.Distance)
	}
	return xmin, xmax
}

// ratePoints adapts a dataset to the plotter interfaces, with the binomial
// standard error as the Y error in both directions.
type ratePoints struct {
	dataset *puttingv1.DataSet
}

func (r ratePoints) Len() int {
	return len(r.dataset.Points)
}

func (r ratePoints) XY(i int) (float64, float64) {
	return r.dataset.Points[i].Distance, r.dataset.Points[i].SuccessRate()
}

func (r ratePoints) YError(i int) (float64, float64) {
	se := r.dataset.Points[i].SuccessRateError()
	return se, se
}
