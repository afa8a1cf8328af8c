// Package kernels provides Mellin transforms of the integral kernels used by
// the FFTLog engine.
//
// For a kernel K(t), the constructors return its Mellin transform
//
//	U_K(z) = ∫₀^∞ t^(z-1) K(t) dt
//
// evaluated on the complex line z = q + iω sampled by the engine. The deriv
// argument selects the image of (d/d ln t)^deriv K(t) instead, which in
// Mellin space is a (−z)^deriv factor.
//
// Available kernels:
//
//   - BesselJ: J_ν(t), the Hankel transform kernel
//   - SphericalBesselJ: j_l(t), the spherical Bessel transform kernel
//   - FourierSine, FourierCosine: sin(t), cos(t)
//   - Tophat: the d-dimensional top-hat window
//   - TophatSq, GaussSq: squared top-hat and Gaussian windows, used for
//     smoothing-scale variance integrals
//   - Gauss: the Gaussian window exp(−t²/2)
//
// All closed forms are ratios of gamma functions and are evaluated in
// log-gamma space to avoid overflow.
package kernels
