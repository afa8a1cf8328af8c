package cosmology

import (
	"errors"
	"math"

	"github.com/AZhou00/mcfit/fftlog"
	"github.com/AZhou00/mcfit/kernels"
)

// Errors returned by the cosmology wrappers.
var (
	ErrNegativeOrder    = errors.New("cosmology: order must be non-negative")
	ErrShortTable       = errors.New("cosmology: table needs at least two points")
	ErrTableMismatch    = errors.New("cosmology: tables differ in length")
	ErrOutOfRange       = errors.New("cosmology: radius outside the tabulated range")
	ErrNegativeVariance = errors.New("cosmology: interpolated variance is negative")
)

// Options configures a cosmology transform.
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

// DefaultOptions returns the default configuration.
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

// phaseFactor returns i^l.
func phaseFactor(l int) complex128 {
	switch l % 4 {
	case 1:
		return 1i
	case 2:
		return -1
	case 3:
		return -1i
	default:
		return 1
	}
}

// phaseSign is the real part of the i^l bookkeeping that can be folded into
// Postfac: -1 when l is 2 or 3 mod 4, +1 otherwise. The leftover factor i
// for odd l is carried symbolically and reported by Phase.
func phaseSign(l int) float64 {
	if l&2 != 0 {
		return -1
	}

	return 1
}

var twoPi32 = math.Pow(2*math.Pi, 1.5)

// P2Xi transforms a power spectrum multipole P_l(k) to the correlation
// function multipole,
//
//	ξ_l(r) = i^l / (2π²) ∫₀^∞ P_l(k) j_l(kr) k² dk.
//
// The sign part of i^l is folded into Postfac, so the values returned by
// Apply are real for even l; for odd l they are the coefficient of the
// remaining factor i, which Phase reports in full. Composing with Xi2P of
// the same order cancels the phases exactly.
type P2Xi struct {
	*fftlog.Transform
	l     int
	phase complex128
}

// NewP2Xi constructs the transform of order l on the wavenumber grid k.
// The default tilt is 1.5.
func NewP2Xi(k []float64, l int, opts Options) (*P2Xi, error) {
	if l < 0 {
		return nil, ErrNegativeOrder
	}

	tr, err := fftlog.New(k, kernels.SphericalBesselJ(l, opts.Deriv), opts.tilt(1.5), opts.engine())
	if err != nil {
		return nil, err
	}

	sign := phaseSign(l)

	for i, ki := range tr.X() {
		tr.Prefac[i] *= ki * ki * ki / twoPi32
		tr.Postfac[i] *= sign
	}

	return &P2Xi{Transform: tr, l: l, phase: phaseFactor(l)}, nil
}

// NewP2XiPower generalizes the correlation function with an extra power-law
// factor k^n in the integrand. The phase factor is dropped and the tilt is
// shifted to q+n, so the transform of P equals NewP2Xi at tilt q+n applied
// to k^n P, without the i^l bookkeeping.
func NewP2XiPower(k []float64, l, n int, opts Options) (*P2Xi, error) {
	if l < 0 {
		return nil, ErrNegativeOrder
	}

	q := opts.tilt(1.5) + float64(n)

	tr, err := fftlog.New(k, kernels.SphericalBesselJ(l, opts.Deriv), q, opts.engine())
	if err != nil {
		return nil, err
	}

	for i, ki := range tr.X() {
		tr.Prefac[i] *= math.Pow(ki, 3+float64(n)) / twoPi32
	}

	return &P2Xi{Transform: tr, l: l, phase: 1}, nil
}

// L returns the multipole order.
func (t *P2Xi) L() int { return t.l }

// Phase returns the i^l phase factor, or 1 for the power-law variant.
func (t *P2Xi) Phase() complex128 { return t.phase }

// K returns the wavenumber grid.
func (t *P2Xi) K() []float64 { return t.X() }

// R returns the conjugate separation grid.
func (t *P2Xi) R() []float64 { return t.Y() }

// Xi2P transforms a correlation function multipole ξ_l(r) to the power
// spectrum multipole,
//
//	P_l(k) = 4π / i^l ∫₀^∞ ξ_l(r) j_l(kr) r² dr.
//
// The sign part of the phase is folded into Postfac as in P2Xi, so a
// P2Xi/Xi2P round trip of the returned real values is exact.
type Xi2P struct {
	*fftlog.Transform
	l     int
	phase complex128
}

// NewXi2P constructs the transform of order l on the separation grid r.
// The default tilt is 1.5.
func NewXi2P(r []float64, l int, opts Options) (*Xi2P, error) {
	if l < 0 {
		return nil, ErrNegativeOrder
	}

	tr, err := fftlog.New(r, kernels.SphericalBesselJ(l, opts.Deriv), opts.tilt(1.5), opts.engine())
	if err != nil {
		return nil, err
	}

	sign := phaseSign(l)

	for i, ri := range tr.X() {
		tr.Prefac[i] *= ri * ri * ri
		tr.Postfac[i] *= twoPi32 * sign
	}

	return &Xi2P{Transform: tr, l: l, phase: phaseFactor(l)}, nil
}

// L returns the multipole order.
func (t *Xi2P) L() int { return t.l }

// Phase returns the i^l phase factor.
func (t *Xi2P) Phase() complex128 { return t.phase }

// R returns the separation grid.
func (t *Xi2P) R() []float64 { return t.X() }

// K returns the conjugate wavenumber grid.
func (t *Xi2P) K() []float64 { return t.Y() }

// TophatVar computes the variance of the density field smoothed by a
// top-hat window of radius R,
//
//	σ²(R) = 1/(2π²) ∫₀^∞ P(k) W²(kR) k² dk,
//
// with W the 3D top-hat window.
type TophatVar struct {
	*fftlog.Transform
}

// NewTophatVar constructs the top-hat variance transform on the wavenumber
// grid k. The default tilt is 1.5.
func NewTophatVar(k []float64, opts Options) (*TophatVar, error) {
	tr, err := fftlog.New(k, kernels.TophatSq(3, opts.Deriv), opts.tilt(1.5), opts.engine())
	if err != nil {
		return nil, err
	}

	for i, ki := range tr.X() {
		tr.Prefac[i] *= ki * ki * ki / (2 * math.Pi * math.Pi)
	}

	return &TophatVar{Transform: tr}, nil
}

// K returns the wavenumber grid.
func (t *TophatVar) K() []float64 { return t.X() }

// R returns the conjugate smoothing radius grid.
func (t *TophatVar) R() []float64 { return t.Y() }

// GaussVar computes the variance of the density field smoothed by a
// Gaussian window of radius R,
//
//	σ²(R) = 1/(2π²) ∫₀^∞ P(k) exp(-(kR)²) k² dk.
type GaussVar struct {
	*fftlog.Transform
}

// NewGaussVar constructs the Gaussian variance transform on the wavenumber
// grid k. The default tilt is 1.5.
func NewGaussVar(k []float64, opts Options) (*GaussVar, error) {
	tr, err := fftlog.New(k, kernels.GaussSq(opts.Deriv), opts.tilt(1.5), opts.engine())
	if err != nil {
		return nil, err
	}

	for i, ki := range tr.X() {
		tr.Prefac[i] *= ki * ki * ki / (2 * math.Pi * math.Pi)
	}

	return &GaussVar{Transform: tr}, nil
}

// K returns the wavenumber grid.
func (t *GaussVar) K() []float64 { return t.X() }

// R returns the conjugate smoothing radius grid.
func (t *GaussVar) R() []float64 { return t.Y() }
