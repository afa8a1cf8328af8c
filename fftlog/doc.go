// Package fftlog implements the multiplicatively convolved fast integral
// transform (FFTLog) for log-evenly sampled functions.
//
// The engine evaluates integral transforms of the form
//
//	G(y) = ∫₀^∞ F(x) K(xy) dx/x
//
// by substituting the Mellin transform U_K of the kernel, so that the
// integral becomes a multiplicative convolution computed with FFTs on a
// logarithmic grid. Equivalently, with a power-law tilt q,
//
//	g(y) = ∫₀^∞ f(x) (xy)^q K(xy) dx/x
//
// where f(x) = x^−q F(x) and g(y) = y^q G(y); the tilt shifts weight between
// the two ends of the grid and must avoid the singularities of U_K.
//
// # Usage
//
//	t, err := fftlog.New(x, kernel, q, fftlog.DefaultOptions())
//	y, G, err := t.Apply(F, fftlog.ExtrapBoth)
//
// The abscissae x must be log-evenly spaced. The conjugate grid y is derived
// from x at construction; with Options.LowRing enabled it is shifted to the
// low-ringing phase that minimizes sampling artifacts. The exported Prefac
// and Postfac slices are multiplicative corrections applied before and after
// the convolution; named transforms multiply their algebraic prefactors into
// them after construction.
//
// A Transform is immutable after construction apart from Prefac/Postfac and
// may be shared by concurrent readers once configured.
//
// References:
//
//	J. D. Talman. Numerical Fourier and Bessel Transforms in Logarithmic
//	Variables. Journal of Computational Physics, 29:35-48, October 1978.
//	A. J. S. Hamilton. Uncorrelated modes of the non-linear power spectrum.
//	MNRAS, 312:257-284, February 2000.
package fftlog
