package cosmology

import (
	"math"

	"github.com/AZhou00/mcfit/fftlog"
	"github.com/AZhou00/mcfit/transforms"
)

// C2W transforms an angular power spectrum C(ℓ) to the angular correlation
// function,
//
//	w(θ) = 1/(2π) ∫₀^∞ C(ℓ) J_ν(ℓθ) ℓ dℓ,
//
// tabulated against the angular separation θ in radians.
type C2W struct {
	*transforms.Hankel
	ell   []float64
	theta []float64
}

// NewC2W constructs the transform of order nu on the multipole grid ell.
// The default tilt is 1.
func NewC2W(ell []float64, nu int, opts Options) (*C2W, error) {
	if nu < 0 {
		return nil, ErrNegativeOrder
	}

	k := make([]float64, len(ell))
	for i, li := range ell {
		k[i] = li / (2 * math.Pi)
	}

	h, err := transforms.NewHankel(k, float64(nu), transforms.Options{
		Q:       opts.tilt(1),
		Deriv:   opts.Deriv,
		N:       opts.N,
		LowRing: opts.LowRing,
	})
	if err != nil {
		return nil, err
	}

	theta := make([]float64, len(ell))

	for i, yi := range h.Y() {
		h.Postfac[i] *= 2 * math.Pi
		theta[i] = yi / (2 * math.Pi)
	}

	return &C2W{Hankel: h, ell: ell, theta: theta}, nil
}

// Ell returns the multipole grid.
func (t *C2W) Ell() []float64 { return t.ell }

// Theta returns the conjugate angular separation grid in radians.
func (t *C2W) Theta() []float64 { return t.theta }

// Apply evaluates w(θ) for the spectrum C tabulated on the multipole grid.
func (t *C2W) Apply(C []float64, extrap fftlog.Extrap) (theta, w []float64, err error) {
	_, w, err = t.Hankel.Apply(C, extrap)
	if err != nil {
		return nil, nil, err
	}

	return t.theta, w, nil
}

// W2C transforms an angular correlation function w(θ) to the angular power
// spectrum,
//
//	C(ℓ) = 2π ∫₀^∞ w(θ) J_ν(ℓθ) θ dθ,
//
// tabulated against the multipole ℓ.
type W2C struct {
	*transforms.Hankel
	theta []float64
	ell   []float64
}

// NewW2C constructs the transform of order nu on the angular separation
// grid theta, in radians. The default tilt is 1.
func NewW2C(theta []float64, nu int, opts Options) (*W2C, error) {
	if nu < 0 {
		return nil, ErrNegativeOrder
	}

	r := make([]float64, len(theta))
	for i, ti := range theta {
		r[i] = 2 * math.Pi * ti
	}

	h, err := transforms.NewHankel(r, float64(nu), transforms.Options{
		Q:       opts.tilt(1),
		Deriv:   opts.Deriv,
		N:       opts.N,
		LowRing: opts.LowRing,
	})
	if err != nil {
		return nil, err
	}

	ell := make([]float64, len(theta))

	for i, yi := range h.Y() {
		h.Postfac[i] /= 2 * math.Pi
		ell[i] = 2 * math.Pi * yi
	}

	return &W2C{Hankel: h, theta: theta, ell: ell}, nil
}

// Theta returns the angular separation grid in radians.
func (t *W2C) Theta() []float64 { return t.theta }

// Ell returns the conjugate multipole grid.
func (t *W2C) Ell() []float64 { return t.ell }

// Apply evaluates C(ℓ) for the correlation function w tabulated on the
// angular separation grid.
func (t *W2C) Apply(w []float64, extrap fftlog.Extrap) (ell, C []float64, err error) {
	_, C, err = t.Hankel.Apply(w, extrap)
	if err != nil {
		return nil, nil, err
	}

	return t.ell, C, nil
}
