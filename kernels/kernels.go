package kernels

import (
	"math"
	"math/cmplx"

	"github.com/AZhou00/mcfit/internal/gammamath"
)

// Func is the Mellin image of a kernel, evaluated on complex arguments.
type Func = func(z complex128) complex128

var sqrtPi = complex(math.Sqrt(math.Pi), 0)

// lg is shorthand for the complex log-gamma.
func lg(z complex128) complex128 {
	return gammamath.LogGamma(z)
}

// lnGammaReal returns ln Γ(x) for real positive x.
func lnGammaReal(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}

// withDeriv applies the Mellin-space factor (−z)^deriv corresponding to
// deriv derivatives of the kernel with respect to ln t.
func withDeriv(uk Func, deriv int) Func {
	if deriv == 0 {
		return uk
	}

	return func(z complex128) complex128 {
		u := uk(z)
		for i := 0; i < deriv; i++ {
			u *= -z
		}

		return u
	}
}

// BesselJ returns the Mellin image of the Bessel function J_ν:
//
//	U(z) = 2^(z-1) Γ((ν+z)/2) / Γ((2+ν−z)/2)
func BesselJ(nu float64, deriv int) Func {
	n := complex(nu, 0)

	return withDeriv(func(z complex128) complex128 {
		return cmplx.Exp(complex(math.Ln2, 0)*(z-1) + lg(0.5*(n+z)) - lg(0.5*(2+n-z)))
	}, deriv)
}

// SphericalBesselJ returns the Mellin image of the self-reciprocal
// spherical Bessel kernel √(2/π) j_l:
//
//	U(z) = 2^(z-3/2) Γ((l+z)/2) / Γ((3+l−z)/2)
//
// The √(2/π) normalization makes the forward and inverse spherical Bessel
// transforms an exact pair, which is what the correlation-function wrappers
// rely on.
func SphericalBesselJ(l int, deriv int) Func {
	n := complex(float64(l), 0)

	return withDeriv(func(z complex128) complex128 {
		return cmplx.Exp(complex(math.Ln2, 0)*(z-1.5) + lg(0.5*(n+z)) - lg(0.5*(3+n-z)))
	}, deriv)
}

// FourierSine returns the Mellin image of the self-reciprocal sine kernel
// √(2/π) sin(t):
//
//	U(z) = 2^(z-1/2) Γ((1+z)/2) / Γ((2−z)/2)
func FourierSine(deriv int) Func {
	return withDeriv(func(z complex128) complex128 {
		return cmplx.Exp(complex(math.Ln2, 0)*(z-0.5) + lg(0.5*(1+z)) - lg(0.5*(2-z)))
	}, deriv)
}

// FourierCosine returns the Mellin image of the self-reciprocal cosine
// kernel √(2/π) cos(t):
//
//	U(z) = 2^(z-1/2) Γ(z/2) / Γ((1−z)/2)
func FourierCosine(deriv int) Func {
	return withDeriv(func(z complex128) complex128 {
		return cmplx.Exp(complex(math.Ln2, 0)*(z-0.5) + lg(0.5*z) - lg(0.5*(1-z)))
	}, deriv)
}

// Tophat returns the Mellin image of the d-dimensional top-hat window
// W_d(t) = 2^(d/2) Γ(1+d/2) J_(d/2)(t) / t^(d/2):
//
//	U(z) = 2^(z-1) Γ(1+d/2) Γ(z/2) / Γ((2+d−z)/2)
func Tophat(d int, deriv int) Func {
	df := float64(d)
	c := complex(lnGammaReal(1+0.5*df), 0)
	dc := complex(df, 0)

	return withDeriv(func(z complex128) complex128 {
		return cmplx.Exp(complex(math.Ln2, 0)*(z-1) + c + lg(0.5*z) - lg(0.5*(2+dc-z)))
	}, deriv)
}

// TophatSq returns the Mellin image of the squared d-dimensional top-hat
// window. The d = 1 and d = 3 cases reduce to single gamma ratios; the
// generic case uses the full product form.
func TophatSq(d int, deriv int) Func {
	switch d {
	case 1:
		return withDeriv(func(z complex128) complex128 {
			return -0.25 * sqrtPi * cmplx.Exp(lg(0.5*(z-2))-lg(0.5*(3-z)))
		}, deriv)
	case 3:
		return withDeriv(func(z complex128) complex128 {
			return 2.25 * sqrtPi * (z - 2) / (z - 6) *
				cmplx.Exp(lg(0.5*(z-4))-lg(0.5*(5-z)))
		}, deriv)
	default:
		df := float64(d)
		c := complex(math.Ln2*(df-1)+2*lnGammaReal(1+0.5*df), 0)
		dc := complex(df, 0)

		return withDeriv(func(z complex128) complex128 {
			return cmplx.Exp(c+lg(0.5*(1+dc-z))+lg(0.5*z)-
				lg(1+dc-0.5*z)-lg(0.5*(2+dc-z))) / sqrtPi
		}, deriv)
	}
}

// Gauss returns the Mellin image of the Gaussian window exp(−t²/2):
//
//	U(z) = 2^(z/2-1) Γ(z/2)
func Gauss(deriv int) Func {
	return withDeriv(func(z complex128) complex128 {
		return cmplx.Exp(complex(math.Ln2, 0)*(0.5*z-1) + lg(0.5*z))
	}, deriv)
}

// GaussSq returns the Mellin image of the squared Gaussian window exp(−t²):
//
//	U(z) = Γ(z/2) / 2
func GaussSq(deriv int) Func {
	return withDeriv(func(z complex128) complex128 {
		return 0.5 * cmplx.Exp(lg(0.5*z))
	}, deriv)
}
