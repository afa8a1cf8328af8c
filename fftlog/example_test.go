package fftlog_test

import (
	"fmt"
	"math"

	"github.com/AZhou00/mcfit/fftlog"
	"github.com/AZhou00/mcfit/kernels"
)

func ExampleTransform_Apply() {
	// Order-0 Hankel transform of 1/(1+x^2)^{3/2}, which is exp(-y).
	x := fftlog.LogSpace(1e-3, 1e3, 60)

	tr, _ := fftlog.New(x, kernels.BesselJ(0, 0), 0.5, fftlog.Options{N: 256, LowRing: true})
	for i, xi := range x {
		tr.Prefac[i] *= xi * xi
	}

	F := make([]float64, len(x))
	for i, xi := range x {
		F[i] = 1 / math.Pow(1+xi*xi, 1.5)
	}

	y, G, _ := tr.Apply(F, fftlog.ExtrapBoth)

	maxErr := 0.0
	for i := range y {
		if e := math.Abs(G[i] - math.Exp(-y[i])); e > maxErr {
			maxErr = e
		}
	}

	fmt.Printf("grid points: %d\n", len(y))
	fmt.Printf("max abs error < 1e-8: %v\n", maxErr < 1e-8)

	// Output:
	// grid points: 60
	// max abs error < 1e-8: true
}
