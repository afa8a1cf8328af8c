package cosmology_test

import (
	"fmt"
	"math"

	"github.com/AZhou00/mcfit/cosmology"
	"github.com/AZhou00/mcfit/fftlog"
)

// Compute sigma(8) for an analytic spectrum and compare against the closed
// form of the Gaussian-window variance.
func ExampleVarianceInterpolator() {
	k := fftlog.LogSpace(1e-3, 1e3, 96)

	P := make([]float64, len(k))
	for i, ki := range k {
		P[i] = math.Exp(-ki * ki)
	}

	gv, _ := cosmology.NewGaussVar(k, cosmology.DefaultOptions())
	R, v, _ := gv.Apply(P, fftlog.ExtrapBoth)

	vi, _ := cosmology.NewVarianceInterpolator(R, v)
	sigma8, _ := vi.Sigma8()

	want := math.Sqrt(math.Sqrt(math.Pi) / (8 * math.Pi * math.Pi) * math.Pow(1+64, -1.5))

	fmt.Printf("sigma8 within 1%% of closed form: %v\n", math.Abs(sigma8-want) < 0.01*want)

	// Output:
	// sigma8 within 1% of closed form: true
}

func ExampleNewP2Xi() {
	k := fftlog.LogSpace(1e-3, 1e3, 96)

	P := make([]float64, len(k))
	for i, ki := range k {
		P[i] = ki * ki * math.Exp(-ki*ki)
	}

	p2xi, _ := cosmology.NewP2Xi(k, 0, cosmology.DefaultOptions())
	r, xi, _ := p2xi.Apply(P, fftlog.ExtrapBoth)

	xi2p, _ := cosmology.NewXi2P(r, 0, cosmology.DefaultOptions())
	_, P2, _ := xi2p.Apply(xi, fftlog.ExtrapBoth)

	maxErr := 0.0
	for i := range P {
		if e := math.Abs(P2[i] - P[i]); e > maxErr {
			maxErr = e
		}
	}

	fmt.Printf("round trip closes to 1e-5: %v\n", maxErr < 1e-5)

	// Output:
	// round trip closes to 1e-5: true
}
