package transforms

import (
	"errors"
	"math"

	"github.com/AZhou00/mcfit/fftlog"
	"github.com/AZhou00/mcfit/kernels"
)

// Errors returned by the transform constructors.
var (
	ErrNegativeOrder = errors.New("transforms: order must be non-negative")
	ErrInvalidDim    = errors.New("transforms: dimension must be positive")
)

// Options configures a named transform.
type Options struct {
	// Q is the power-law tilt. Zero selects the transform's default tilt.
	Q float64

	// Deriv differentiates the kernel Deriv times with respect to the log
	// of its argument before transforming.
	Deriv int

	// N is the FFT length, forwarded to the engine. Zero selects the
	// engine default.
	N int

	// LowRing is forwarded to the engine.
	LowRing bool
}

// DefaultOptions returns the default transform configuration.
func DefaultOptions() Options {
	return Options{LowRing: true}
}

func (o Options) engine() fftlog.Options {
	return fftlog.Options{N: o.N, LowRing: o.LowRing}
}

func (o Options) tilt(def float64) float64 {
	if o.Q != 0 {
		return o.Q
	}

	return def
}

// Hankel is the Hankel transform pair of order ν,
//
//	G(y) = ∫₀^∞ F(x) J_ν(xy) x dx,
//
// which is self-reciprocal on the conjugate grid.
type Hankel struct {
	*fftlog.Transform
	nu float64
}

// NewHankel constructs a Hankel transform of order nu on the grid x.
// The default tilt is 1.
func NewHankel(x []float64, nu float64, opts Options) (*Hankel, error) {
	tr, err := fftlog.New(x, kernels.BesselJ(nu, opts.Deriv), opts.tilt(1), opts.engine())
	if err != nil {
		return nil, err
	}

	for i, xi := range tr.X() {
		tr.Prefac[i] *= xi * xi
	}

	return &Hankel{Transform: tr, nu: nu}, nil
}

// Nu returns the transform order.
func (h *Hankel) Nu() float64 { return h.nu }

// SphericalBessel is the normalized spherical Bessel transform pair of
// order l,
//
//	G(y) = √(2/π) ∫₀^∞ F(x) j_l(xy) x² dx,
//
// which is self-reciprocal on the conjugate grid.
type SphericalBessel struct {
	*fftlog.Transform
	l int
}

// NewSphericalBessel constructs a spherical Bessel transform of order l on
// the grid x. The default tilt is 1.5.
func NewSphericalBessel(x []float64, l int, opts Options) (*SphericalBessel, error) {
	if l < 0 {
		return nil, ErrNegativeOrder
	}

	tr, err := fftlog.New(x, kernels.SphericalBesselJ(l, opts.Deriv), opts.tilt(1.5), opts.engine())
	if err != nil {
		return nil, err
	}

	for i, xi := range tr.X() {
		tr.Prefac[i] *= xi * xi * xi
	}

	return &SphericalBessel{Transform: tr, l: l}, nil
}

// Order returns the transform order.
func (s *SphericalBessel) Order() int { return s.l }

// FourierSine is the normalized Fourier sine transform pair,
//
//	G(y) = √(2/π) ∫₀^∞ F(x) sin(xy) dx.
type FourierSine struct {
	*fftlog.Transform
}

// NewFourierSine constructs a Fourier sine transform on the grid x.
// The default tilt is 0.5.
func NewFourierSine(x []float64, opts Options) (*FourierSine, error) {
	tr, err := fftlog.New(x, kernels.FourierSine(opts.Deriv), opts.tilt(0.5), opts.engine())
	if err != nil {
		return nil, err
	}

	for i, xi := range tr.X() {
		tr.Prefac[i] *= xi
	}

	return &FourierSine{Transform: tr}, nil
}

// FourierCosine is the normalized Fourier cosine transform pair,
//
//	G(y) = √(2/π) ∫₀^∞ F(x) cos(xy) dx.
type FourierCosine struct {
	*fftlog.Transform
}

// NewFourierCosine constructs a Fourier cosine transform on the grid x.
// The default tilt is 0.5.
func NewFourierCosine(x []float64, opts Options) (*FourierCosine, error) {
	tr, err := fftlog.New(x, kernels.FourierCosine(opts.Deriv), opts.tilt(0.5), opts.engine())
	if err != nil {
		return nil, err
	}

	for i, xi := range tr.X() {
		tr.Prefac[i] *= xi
	}

	return &FourierCosine{Transform: tr}, nil
}

// smoothPrefac returns x^d / (2^(d-1) π^(d/2) Γ(d/2)), the isotropic volume
// element of d dimensions divided by (2π)^d.
func smoothPrefac(x float64, d int) float64 {
	df := float64(d)

	return math.Pow(x, df) /
		(math.Pow(2, df-1) * math.Pow(math.Pi, 0.5*df) * math.Gamma(0.5*df))
}

// TophatSmooth smooths an isotropic d-dimensional field by a top-hat window,
//
//	G(y) = (2π)^(-d) ∫ F(|k|) W_d(|k|y) d^d k,
//
// as a function of the smoothing scale y.
type TophatSmooth struct {
	*fftlog.Transform
	d int
}

// NewTophatSmooth constructs a top-hat smoothing transform in d dimensions
// on the grid x. The window kernel is singular at tilt 0, so the default
// tilt is 1.
func NewTophatSmooth(x []float64, d int, opts Options) (*TophatSmooth, error) {
	if d < 1 {
		return nil, ErrInvalidDim
	}

	tr, err := fftlog.New(x, kernels.Tophat(d, opts.Deriv), opts.tilt(1), opts.engine())
	if err != nil {
		return nil, err
	}

	for i, xi := range tr.X() {
		tr.Prefac[i] *= smoothPrefac(xi, d)
	}

	return &TophatSmooth{Transform: tr, d: d}, nil
}

// Dim returns the field dimension.
func (s *TophatSmooth) Dim() int { return s.d }

// GaussSmooth smooths an isotropic d-dimensional field by a Gaussian window,
//
//	G(y) = (2π)^(-d) ∫ F(|k|) exp(-(|k|y)²/2) d^d k,
//
// as a function of the smoothing scale y.
type GaussSmooth struct {
	*fftlog.Transform
	d int
}

// NewGaussSmooth constructs a Gaussian smoothing transform in d dimensions
// on the grid x. The window kernel is singular at tilt 0, so the default
// tilt is 1.
func NewGaussSmooth(x []float64, d int, opts Options) (*GaussSmooth, error) {
	if d < 1 {
		return nil, ErrInvalidDim
	}

	tr, err := fftlog.New(x, kernels.Gauss(opts.Deriv), opts.tilt(1), opts.engine())
	if err != nil {
		return nil, err
	}

	for i, xi := range tr.X() {
		tr.Prefac[i] *= smoothPrefac(xi, d)
	}

	return &GaussSmooth{Transform: tr, d: d}, nil
}

// Dim returns the field dimension.
func (s *GaussSmooth) Dim() int { return s.d }
