package cosmology

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

// VarianceInterpolator evaluates a tabulated smoothed variance σ²(R) at
// arbitrary radii inside the tabulated range, using an Akima spline. It is
// the usual companion of TophatVar and GaussVar for quantities like σ₈.
type VarianceInterpolator struct {
	spline     interp.AkimaSpline
	rmin, rmax float64
}

// NewVarianceInterpolator fits a spline to the variance table (r, variance),
// typically the two outputs of a TophatVar or GaussVar Apply. The radii must
// be strictly increasing.
func NewVarianceInterpolator(r, variance []float64) (*VarianceInterpolator, error) {
	if len(r) != len(variance) {
		return nil, ErrTableMismatch
	}

	if len(r) < 2 {
		return nil, ErrShortTable
	}

	v := &VarianceInterpolator{rmin: r[0], rmax: r[len(r)-1]}

	if err := v.spline.Fit(r, variance); err != nil {
		return nil, fmt.Errorf("cosmology: spline fit failed: %w", err)
	}

	return v, nil
}

// SigmaR returns σ(R), the square root of the interpolated variance at
// smoothing radius R.
func (v *VarianceInterpolator) SigmaR(radius float64) (float64, error) {
	if radius < v.rmin || radius > v.rmax {
		return 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfRange, radius, v.rmin, v.rmax)
	}

	s := v.spline.Predict(radius)
	if s < 0 {
		return 0, fmt.Errorf("%w: σ²(%g) = %g", ErrNegativeVariance, radius, s)
	}

	return math.Sqrt(s), nil
}

// Sigma8 returns σ(8), the fluctuation amplitude at the conventional
// 8 Mpc/h smoothing radius. The grid units must match.
func (v *VarianceInterpolator) Sigma8() (float64, error) {
	return v.SigmaR(8)
}
