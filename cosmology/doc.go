// Package cosmology provides integral transforms between standard
// large-scale structure statistics.
//
// The 3D pairs relate the power spectrum P(k) and the correlation function
// ξ(r) through spherical Bessel transforms, and compute the variance of the
// density field smoothed by top-hat or Gaussian windows. The 2D pairs relate
// the angular power spectrum C(ℓ) and the angular correlation function w(θ)
// through Hankel transforms.
//
// All wrappers are thin layers over the fftlog engine: they pick the Mellin
// kernel, fold the conventional algebraic factors into the Prefac and
// Postfac corrections, and relabel the conjugate grids with their physical
// names.
package cosmology
