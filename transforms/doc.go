// Package transforms provides named integral transform pairs built on the
// fftlog engine.
//
// Each transform couples a Mellin kernel with the algebraic prefactor that
// converts the engine's canonical form
//
//	G(y) = ∫₀^∞ F(x) K(xy) dx/x
//
// into the conventional definition of the named transform. The Hankel,
// SphericalBessel, FourierSine and FourierCosine pairs are self-reciprocal:
// applying the same transform to the output on its conjugate grid recovers
// the input.
//
// The wrappers embed the underlying *fftlog.Transform, so Apply, Check and
// the Prefac/Postfac corrections are available directly.
package transforms
