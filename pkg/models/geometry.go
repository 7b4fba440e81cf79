package models

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	puttingv1 "github.com/puttfit/puttfit/pkg/apis/putting/v1"
)

// ProbAngle is the probability that a putt struck from the given distance
// stays on a line that drops, when the angular error is centered on the hole
// with standard deviation sigmaAngle radians. The ball falls whenever the
// initial angle is within +/- asin((R-r)/x) of the center line.
//
// Distances at or inside the geometric threshold R-r cannot miss on angle;
// they return exactly 1 rather than feeding asin an argument above 1.
func ProbAngle(distance, sigmaAngle float64, g puttingv1.Geometry) float64 {
	threshold := g.Threshold()
	if distance <= threshold {
		return 1
	}
	if sigmaAngle <= 0 {
		// limit of the formula as sigmaAngle -> 0+
		return 1
	}
	angle := math.Asin(threshold / distance)
	return 2*distuv.UnitNormal.CDF(angle/sigmaAngle) - 1
}

// ProbDistance is the probability that the putt's distance control is good
// enough: the ball must reach the hole but travel no more than
// DistanceTolerance feet past it. The golfer aims Overshot feet beyond the
// hole, and the realized distance error scales with the intended distance
// through sigmaDistance.
func ProbDistance(distance, sigmaDistance float64, g puttingv1.Geometry) float64 {
	if sigmaDistance <= 0 {
		// limit as sigmaDistance -> 0+: perfect distance control
		return 1
	}
	scale := (distance + g.Overshot) * sigmaDistance
	upper := (g.DistanceTolerance - g.Overshot) / scale
	lower := -g.Overshot / scale
	return distuv.UnitNormal.CDF(upper) - distuv.UnitNormal.CDF(lower)
}

// ProbAngleDistance combines both error sources: the putt must be struck on
// line and with acceptable pace, and the two errors are independent.
func ProbAngleDistance(distance, sigmaAngle, sigmaDistance float64, g puttingv1.Geometry) float64 {
	return ProbAngle(distance, sigmaAngle, g) * ProbDistance(distance, sigmaDistance, g)
}

// RadiansToDegrees converts an angular scale for reporting; posterior draws
// of sigma_angle are easier to read in degrees.
func RadiansToDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// DegreesToRadians is the inverse of RadiansToDegrees.
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
