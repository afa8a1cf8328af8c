package gammamath

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestLogGammaRealAxis(t *testing.T) {
	// Compare against the stdlib real log-gamma on positive arguments.
	for _, x := range []float64{0.5, 1, 1.5, 2, 3.25, 7, 12.5} {
		want, _ := math.Lgamma(x)

		got := LogGamma(complex(x, 0))
		if math.Abs(real(got)-want) > 1e-12*(1+math.Abs(want)) {
			t.Fatalf("LogGamma(%v) = %v, want %v", x, real(got), want)
		}

		if math.Abs(imag(got)) > 1e-12 {
			t.Fatalf("LogGamma(%v) has spurious imaginary part %v", x, imag(got))
		}
	}
}

func TestGammaIntegers(t *testing.T) {
	want := 1.0
	for n := 1; n <= 8; n++ {
		got := Gamma(complex(float64(n), 0))
		if math.Abs(real(got)-want) > 1e-10*want {
			t.Fatalf("Gamma(%d) = %v, want %v", n, real(got), want)
		}

		want *= float64(n)
	}
}

func TestGammaRecurrence(t *testing.T) {
	// Γ(z+1) = z Γ(z) on a sample of complex points, including the left
	// half-plane where the reflection formula kicks in.
	points := []complex128{
		1.5 + 2i,
		0.3 - 4i,
		-1.25 + 0.5i,
		-3.7 - 2.2i,
		2.5 + 31.4i,
	}

	for _, z := range points {
		lhs := Gamma(z + 1)
		rhs := z * Gamma(z)

		if cmplx.Abs(lhs-rhs) > 1e-10*cmplx.Abs(lhs) {
			t.Fatalf("recurrence failed at z=%v: Γ(z+1)=%v, zΓ(z)=%v", z, lhs, rhs)
		}
	}
}

func TestGammaReflection(t *testing.T) {
	// Γ(z) Γ(1−z) = π / sin(πz).
	for _, z := range []complex128{0.25 + 1i, -0.75 + 2i, 0.5 - 3i} {
		lhs := Gamma(z) * Gamma(1-z)
		rhs := math.Pi / cmplx.Sin(math.Pi*z)

		if cmplx.Abs(lhs-rhs) > 1e-10*cmplx.Abs(rhs) {
			t.Fatalf("reflection failed at z=%v: got %v, want %v", z, lhs, rhs)
		}
	}
}

func TestGammaHalf(t *testing.T) {
	got := Gamma(complex(0.5, 0))
	if math.Abs(real(got)-math.Sqrt(math.Pi)) > 1e-12 {
		t.Fatalf("Gamma(1/2) = %v, want sqrt(pi)", real(got))
	}
}
